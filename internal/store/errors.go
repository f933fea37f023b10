package store

import "errors"

// Sentinel errors returned by the queue stores. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrItemNotFound is returned by Update when the item has been removed
	// (delivered, evicted or cleared) since it was listed.
	ErrItemNotFound = errors.New("queue item was not found")

	// ErrCorruptedStream is returned by the fallback store when the content of
	// a stream key cannot be parsed. Other streams are not affected.
	ErrCorruptedStream = errors.New("stream content is corrupted")

	// ErrCorruptedStore is returned when the fallback key/value file as a whole
	// cannot be decoded.
	ErrCorruptedStore = errors.New("key/value store file is corrupted")

	// ErrInvalidItem is returned when an item does not belong to a known
	// stream.
	ErrInvalidItem = errors.New("invalid queue item")
)

// Low-level database operation errors wrapped by the durable store when a SQL
// operation fails before any queue logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the driver cannot start a
	// transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing a transaction fails.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning queue rows fails.
	ErrScanningRows = errors.New("failed to scan queue item rows")
)
