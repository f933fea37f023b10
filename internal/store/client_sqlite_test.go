package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileKeyValue_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "kv.json")

	kv, err := NewFileKeyValue(path)
	require.NoError(t, err)
	require.NoError(t, kv.Set("a", "1"))
	require.NoError(t, kv.Set("b", "2"))
	require.NoError(t, kv.Remove("b"))

	reopened, err := NewFileKeyValue(path)
	require.NoError(t, err)

	v, ok, err := reopened.Get("a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	_, ok, err = reopened.Get("b")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temporary file must be renamed away")
}

func TestFileKeyValue_CorruptedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.json")
	require.NoError(t, os.WriteFile(path, []byte("[1,2,3"), 0o600))

	_, err := NewFileKeyValue(path)
	assert.ErrorIs(t, err, ErrCorruptedStore)
}

func TestFileKeyValue_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.json")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	kv, err := NewFileKeyValue(path)
	require.NoError(t, err)

	_, ok, err := kv.Get("x")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestResetFileKeyValue_MovesCorruptFileAside(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.json")
	require.NoError(t, os.WriteFile(path, []byte("nope"), 0o600))

	kv, err := resetFileKeyValue(path)
	require.NoError(t, err)
	require.NoError(t, kv.Set("k", "v"))

	corrupt, err := os.ReadFile(path + ".corrupt")
	require.NoError(t, err)
	assert.Equal(t, "nope", string(corrupt))
}

func TestMemoryKeyValue_NeverTouchesDisk(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	kv, err := NewFileKeyValue(":memory:")
	require.NoError(t, err)
	require.NoError(t, kv.Set("k", "v"))
	require.NoError(t, kv.Remove("missing"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	v, ok, err := kv.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}
