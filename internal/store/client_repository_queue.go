package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-scene-outbox/internal/logger"
	"github.com/MKhiriev/go-scene-outbox/models"
)

// sqliteQueueStore is the durable [QueueStore]. It is owned by the background
// sync worker, which is its only writer.
type sqliteQueueStore struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

func NewSQLiteQueueStore(db *DB, logger *logger.Logger) QueueStore {
	return &sqliteQueueStore{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (s *sqliteQueueStore) Append(ctx context.Context, item models.QueueItem) (models.QueueItem, error) {
	log := logger.FromContext(ctx)

	if !item.Stream.Valid() {
		return models.QueueItem{}, fmt.Errorf("%w: %w", ErrInvalidItem, models.ErrInvalidStream)
	}
	if item.EnqueuedAt.IsZero() {
		item.EnqueuedAt = s.now().UTC()
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "sqliteQueueStore.Append").Msg("failed to begin transaction")
		return models.QueueItem{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	evicted, err := s.evictForAppend(ctx, tx, item.Stream)
	if err != nil {
		log.Err(err).Str("func", "sqliteQueueStore.Append").Str("stream", item.Stream.String()).Msg("failed to evict oldest items")
		return models.QueueItem{}, err
	}

	query, args, err := buildInsertItem(item)
	if err != nil {
		return models.QueueItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "sqliteQueueStore.Append").Str("stream", item.Stream.String()).Msg("failed to insert queue item")
		return models.QueueItem{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.QueueItem{}, fmt.Errorf("%w: last insert id: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "sqliteQueueStore.Append").Msg("failed to commit append")
		return models.QueueItem{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	if evicted > 0 {
		log.Info().
			Str("func", "sqliteQueueStore.Append").
			Str("stream", item.Stream.String()).
			Int("evicted", evicted).
			Msg("stream at capacity, oldest items evicted")
	}

	item.ID = id
	return item, nil
}

// evictForAppend deletes the oldest items so that one more fits under
// [models.StreamCapacity]. Returns the number of evicted items.
func (s *sqliteQueueStore) evictForAppend(ctx context.Context, tx *sql.Tx, stream models.Stream) (int, error) {
	query, args, err := buildCountItems(stream)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = tx.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: count items: %w", ErrExecutingQuery, err)
	}

	excess := count - models.StreamCapacity + 1
	if excess <= 0 {
		return 0, nil
	}

	query, args, err = buildEvictOldest(stream, excess)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: evict oldest: %w", ErrExecutingStatement, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: rows affected: %w", ErrExecutingStatement, err)
	}

	return int(n), nil
}

func (s *sqliteQueueStore) List(ctx context.Context, stream models.Stream) ([]models.QueueItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListItems(stream)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "sqliteQueueStore.List").
			Str("stream", stream.String()).
			Msg("failed to execute query for listing queue items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.QueueItem, 0)
	for rows.Next() {
		item, scanErr := scanQueueItem(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "sqliteQueueStore.List").
				Str("stream", stream.String()).
				Msg("failed to scan queue item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "sqliteQueueStore.List").
			Str("stream", stream.String()).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}

func (s *sqliteQueueStore) Delete(ctx context.Context, stream models.Stream, id int64) error {
	query, args, err := buildDeleteItem(stream, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "sqliteQueueStore.Delete").
			Str("stream", stream.String()).
			Int64("item_id", id).
			Msg("failed to delete queue item")
		return fmt.Errorf("%w: delete item %d: %w", ErrExecutingStatement, id, err)
	}

	return nil
}

func (s *sqliteQueueStore) Update(ctx context.Context, item models.QueueItem) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateRetry(item)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := s.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "sqliteQueueStore.Update").
			Str("stream", item.Stream.String()).
			Int64("item_id", item.ID).
			Msg("failed to update queue item")
		return fmt.Errorf("%w: update item %d: %w", ErrExecutingStatement, item.ID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: rows affected: %w", ErrExecutingStatement, err)
	}
	if n == 0 {
		return fmt.Errorf("%w (stream=%s, id=%d)", ErrItemNotFound, item.Stream, item.ID)
	}

	return nil
}

func (s *sqliteQueueStore) Clear(ctx context.Context, stream models.Stream) error {
	query, args, err := buildClearStream(stream)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "sqliteQueueStore.Clear").
			Str("stream", stream.String()).
			Msg("failed to clear stream")
		return fmt.Errorf("%w: clear %s: %w", ErrExecutingStatement, stream, err)
	}

	return nil
}
