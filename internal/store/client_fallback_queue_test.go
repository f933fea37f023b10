package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-scene-outbox/internal/logger"
	"github.com/MKhiriev/go-scene-outbox/models"
)

func TestFallbackKey(t *testing.T) {
	assert.Equal(t, "outbox:snapshots", FallbackKey(models.StreamSnapshots))
	assert.Equal(t, "outbox:alerts", FallbackKey(models.StreamAlerts))
}

// TestFallbackQueueStore_CorruptedKeyIsIsolated writes garbage under one
// stream key and checks the other streams are unaffected.
func TestFallbackQueueStore_CorruptedKeyIsIsolated(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKeyValue()
	s := NewFallbackQueueStore(kv, logger.Nop())

	for _, stream := range models.Streams {
		_, err := s.Append(ctx, indexedItem(stream, 1))
		require.NoError(t, err)
	}
	require.NoError(t, kv.Set(FallbackKey(models.StreamTimeline), "{{{ not json"))

	_, err := s.List(ctx, models.StreamTimeline)
	assert.ErrorIs(t, err, ErrCorruptedStream)

	for _, stream := range []models.Stream{models.StreamSnapshots, models.StreamPreferences, models.StreamAlerts} {
		items, err := s.List(ctx, stream)
		require.NoError(t, err)
		assert.Len(t, items, 1, stream.String())
	}
}

func TestFallbackQueueStore_AppendReplacesCorruptedStream(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKeyValue()
	s := NewFallbackQueueStore(kv, logger.Nop())
	require.NoError(t, kv.Set(FallbackKey(models.StreamAlerts), "garbage"))

	item, err := s.Append(ctx, indexedItem(models.StreamAlerts, 7))
	require.NoError(t, err)
	assert.Equal(t, int64(1), item.ID)

	items, err := s.List(ctx, models.StreamAlerts)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 7, payloadIndex(t, items[0]))
}

// TestFallbackQueueStore_IDsSurviveDeletion checks ids keep growing after the
// newest item is removed.
func TestFallbackQueueStore_IDsSurviveDeletion(t *testing.T) {
	ctx := context.Background()
	s := NewFallbackQueueStore(NewMemoryKeyValue(), logger.Nop())

	a, err := s.Append(ctx, indexedItem(models.StreamSnapshots, 0))
	require.NoError(t, err)
	b, err := s.Append(ctx, indexedItem(models.StreamSnapshots, 1))
	require.NoError(t, err)
	require.NoError(t, s.Delete(ctx, models.StreamSnapshots, b.ID))

	c, err := s.Append(ctx, indexedItem(models.StreamSnapshots, 2))
	require.NoError(t, err)

	assert.Greater(t, b.ID, a.ID)
	assert.Greater(t, c.ID, b.ID)
}

func TestFallbackQueueStore_ClearMissingStream(t *testing.T) {
	s := NewFallbackQueueStore(NewMemoryKeyValue(), logger.Nop())
	assert.NoError(t, s.Clear(context.Background(), models.StreamPreferences))
}

func TestFallbackQueueStore_IDsSurviveClear(t *testing.T) {
	ctx := context.Background()
	s := NewFallbackQueueStore(NewMemoryKeyValue(), logger.Nop())

	var last models.QueueItem
	for i := range 3 {
		item, err := s.Append(ctx, indexedItem(models.StreamTimeline, i))
		require.NoError(t, err)
		last = item
	}
	require.NoError(t, s.Clear(ctx, models.StreamTimeline))

	items, err := s.List(ctx, models.StreamTimeline)
	require.NoError(t, err)
	assert.Empty(t, items)

	next, err := s.Append(ctx, indexedItem(models.StreamTimeline, 3))
	require.NoError(t, err)
	assert.Greater(t, next.ID, last.ID)
}

func TestFallbackQueueStore_ClearCorruptedStream(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKeyValue()
	s := NewFallbackQueueStore(kv, logger.Nop())
	require.NoError(t, kv.Set(FallbackKey(models.StreamSnapshots), "garbage"))

	require.NoError(t, s.Clear(ctx, models.StreamSnapshots))

	items, err := s.List(ctx, models.StreamSnapshots)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestFallbackQueueStore_ListEmpty(t *testing.T) {
	s := NewFallbackQueueStore(NewMemoryKeyValue(), logger.Nop())

	items, err := s.List(context.Background(), models.StreamTimeline)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestFallbackQueueStore_InvalidStream(t *testing.T) {
	s := NewFallbackQueueStore(NewMemoryKeyValue(), logger.Nop())

	_, err := s.List(context.Background(), models.Stream(0))
	assert.ErrorIs(t, err, ErrInvalidItem)
}
