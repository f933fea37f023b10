package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// fileKeyValue is a [KeyValue] persisted as a single JSON object on disk.
// Every Set and Remove rewrites the file, which keeps the store synchronous
// and readable by hand.
type fileKeyValue struct {
	path     string
	inMemory bool

	mu     sync.RWMutex
	values map[string]string
}

// NewFileKeyValue opens (or lazily creates) the JSON file at path. An empty
// path, ":memory:" or "memory" yields a process-local store that is never
// written to disk.
//
// Returns [ErrCorruptedStore] (wrapped) if the file exists but is not a JSON
// object of strings.
func NewFileKeyValue(path string) (KeyValue, error) {
	if path == "" {
		path = ":memory:"
	}

	s := &fileKeyValue{
		path:     path,
		inMemory: path == ":memory:" || path == "memory",
		values:   make(map[string]string),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// resetFileKeyValue moves an unreadable file aside (path + ".corrupt") and
// opens an empty store in its place.
func resetFileKeyValue(path string) (KeyValue, error) {
	if err := os.Rename(path, path+".corrupt"); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("move corrupted key/value file: %w", err)
	}
	return NewFileKeyValue(path)
}

// NewMemoryKeyValue returns a [KeyValue] that lives only in process memory.
func NewMemoryKeyValue() KeyValue {
	return &fileKeyValue{path: ":memory:", inMemory: true, values: make(map[string]string)}
}

func (s *fileKeyValue) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	return v, ok, nil
}

func (s *fileKeyValue) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, existed := s.values[key]
	s.values[key] = value
	if err := s.persist(); err != nil {
		if existed {
			s.values[key] = prev
		} else {
			delete(s.values, key)
		}
		return err
	}
	return nil
}

func (s *fileKeyValue) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, existed := s.values[key]
	if !existed {
		return nil
	}
	delete(s.values, key)
	if err := s.persist(); err != nil {
		s.values[key] = prev
		return err
	}
	return nil
}

func (s *fileKeyValue) load() error {
	if s.inMemory {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read key/value file: %w", err)
	}
	if len(data) == 0 {
		return nil
	}

	var values map[string]string
	if err = json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("%w: %w", ErrCorruptedStore, err)
	}
	if values != nil {
		s.values = values
	}

	return nil
}

func (s *fileKeyValue) persist() error {
	if s.inMemory {
		return nil
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create key/value dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return fmt.Errorf("encode key/value store: %w", err)
	}

	tmp := s.path + ".tmp"
	if err = os.WriteFile(tmp, payload, 0o600); err != nil {
		return fmt.Errorf("write key/value file: %w", err)
	}
	if err = os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace key/value file: %w", err)
	}

	return nil
}
