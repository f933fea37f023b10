package service

import (
	"context"

	"github.com/MKhiriev/go-scene-outbox/internal/logger"
	"github.com/MKhiriev/go-scene-outbox/internal/store"
	"github.com/MKhiriev/go-scene-outbox/models"
)

// CollectStatus reads every stream of queue into a fresh status, items in
// drain order. A stream that cannot be read counts as empty.
func CollectStatus(ctx context.Context, queue store.QueueStore, logger *logger.Logger) models.QueueStatus {
	status := models.NewQueueStatus()

	for _, stream := range models.Streams {
		items, err := queue.List(ctx, stream)
		if err != nil {
			logger.Warn().Err(err).
				Str("func", "CollectStatus").
				Str("stream", stream.String()).
				Msg("stream unreadable, reported as empty")
			continue
		}

		DefaultPolicies[stream].Sort(items)
		status[stream] = models.StreamStatus{Count: len(items), Items: items}
	}

	return status
}

// mergeStatus adds the items of extra to base, stream by stream.
func mergeStatus(base, extra models.QueueStatus) models.QueueStatus {
	merged := models.NewQueueStatus()
	for _, stream := range models.Streams {
		items := append(append([]models.QueueItem{}, base[stream].Items...), extra[stream].Items...)
		DefaultPolicies[stream].Sort(items)
		merged[stream] = models.StreamStatus{
			Count: base[stream].Count + extra[stream].Count,
			Items: items,
		}
	}
	return merged
}
