// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-scene-outbox/models"
)

const queueItemsTable = "queue_items"

var queueItemColumns = []string{
	"id",
	"stream",
	"payload",
	"priority",
	"enqueued_at",
	"retry_count",
	"last_attempt_at",
}

// SQLite uses '?' placeholders, which is squirrel's default format.
var queryBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildInsertItem(item models.QueueItem) (string, []any, error) {
	return queryBuilder.
		Insert(queueItemsTable).
		Columns("stream", "payload", "priority", "enqueued_at", "retry_count", "last_attempt_at").
		Values(
			item.Stream.String(),
			[]byte(item.Payload),
			int(item.Priority),
			item.EnqueuedAt.UnixNano(),
			item.RetryCount,
			nullableUnixNano(item.LastAttemptAt),
		).
		ToSql()
}

func buildListItems(stream models.Stream) (string, []any, error) {
	return queryBuilder.
		Select(queueItemColumns...).
		From(queueItemsTable).
		Where(sq.Eq{"stream": stream.String()}).
		OrderBy("enqueued_at ASC", "id ASC").
		ToSql()
}

func buildCountItems(stream models.Stream) (string, []any, error) {
	return queryBuilder.
		Select("COUNT(*)").
		From(queueItemsTable).
		Where(sq.Eq{"stream": stream.String()}).
		ToSql()
}

// buildEvictOldest removes the n oldest items of stream.
func buildEvictOldest(stream models.Stream, n int) (string, []any, error) {
	return queryBuilder.
		Delete(queueItemsTable).
		Where(sq.Expr(
			"id IN (SELECT id FROM "+queueItemsTable+" WHERE stream = ? ORDER BY enqueued_at ASC, id ASC LIMIT ?)",
			stream.String(), n,
		)).
		ToSql()
}

func buildDeleteItem(stream models.Stream, id int64) (string, []any, error) {
	return queryBuilder.
		Delete(queueItemsTable).
		Where(sq.Eq{"stream": stream.String(), "id": id}).
		ToSql()
}

func buildUpdateRetry(item models.QueueItem) (string, []any, error) {
	return queryBuilder.
		Update(queueItemsTable).
		Set("retry_count", item.RetryCount).
		Set("last_attempt_at", nullableUnixNano(item.LastAttemptAt)).
		Where(sq.Eq{"stream": item.Stream.String(), "id": item.ID}).
		ToSql()
}

func buildClearStream(stream models.Stream) (string, []any, error) {
	return queryBuilder.
		Delete(queueItemsTable).
		Where(sq.Eq{"stream": stream.String()}).
		ToSql()
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanQueueItem(row rowScanner) (models.QueueItem, error) {
	var (
		item        models.QueueItem
		streamName  string
		payload     []byte
		priority    int
		enqueuedAt  int64
		lastAttempt sql.NullInt64
	)

	if err := row.Scan(&item.ID, &streamName, &payload, &priority, &enqueuedAt, &item.RetryCount, &lastAttempt); err != nil {
		return models.QueueItem{}, err
	}

	stream, err := models.ParseStream(streamName)
	if err != nil {
		return models.QueueItem{}, fmt.Errorf("row %d: %w", item.ID, err)
	}

	item.Stream = stream
	item.Payload = payload
	item.Priority = models.Priority(priority)
	item.EnqueuedAt = time.Unix(0, enqueuedAt).UTC()
	if lastAttempt.Valid {
		t := time.Unix(0, lastAttempt.Int64).UTC()
		item.LastAttemptAt = &t
	}

	return item, nil
}

func nullableUnixNano(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: t.UnixNano(), Valid: true}
}
