package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-scene-outbox/internal/adapter"
	"github.com/MKhiriev/go-scene-outbox/models"
)

type deliverFunc func(p adapter.StreamProcessors, ctx context.Context, payload json.RawMessage) error

// processorRoutes binds every stream to its processor method.
var processorRoutes = map[models.Stream]deliverFunc{
	models.StreamSnapshots:   adapter.StreamProcessors.DeliverSnapshot,
	models.StreamTimeline:    adapter.StreamProcessors.DeliverTimelineEvent,
	models.StreamPreferences: adapter.StreamProcessors.DeliverPreferenceChange,
	models.StreamAlerts:      adapter.StreamProcessors.DeliverAlert,
}

// deliver hands payload to the processor of stream.
func deliver(ctx context.Context, processors adapter.StreamProcessors, stream models.Stream, payload json.RawMessage) error {
	route, ok := processorRoutes[stream]
	if !ok {
		return fmt.Errorf("%w: %s", models.ErrInvalidStream, stream)
	}
	return route(processors, ctx, payload)
}
