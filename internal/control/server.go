package control

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-scene-outbox/internal/logger"
	"github.com/MKhiriev/go-scene-outbox/models"
)

// Handler executes control requests on the background side.
type Handler interface {
	Enqueue(ctx context.Context, item models.QueueItem) (models.QueueItem, error)
	Status(ctx context.Context) models.QueueStatus
	Clear(ctx context.Context, streams []models.Stream) error
	// ManualSync blocks until one drain cycle over all streams completes.
	ManualSync(ctx context.Context) models.SyncResults
	// RequestSync starts a drain unless one is already running and must not
	// block on it.
	RequestSync(ctx context.Context) bool
}

// Server dispatches requests to a [Handler].
type Server struct {
	handler Handler
	logger  *logger.Logger

	wg sync.WaitGroup
}

func NewServer(handler Handler, logger *logger.Logger) *Server {
	return &Server{handler: handler, logger: logger}
}

// Serve answers requests until ctx is cancelled or requests is closed, then
// waits for in-flight manual syncs to reply.
func (s *Server) Serve(ctx context.Context, requests <-chan Request) {
	defer s.wg.Wait()

	for {
		select {
		case <-ctx.Done():
			return
		case req, ok := <-requests:
			if !ok {
				return
			}
			s.dispatch(ctx, req)
		}
	}
}

func (s *Server) dispatch(ctx context.Context, req Request) {
	if req.Reply == nil {
		s.logger.Warn().
			Str("func", "Server.dispatch").
			Str("request_id", req.ID).
			Str("type", string(req.Type)).
			Msg("dropping control request without reply channel")
		return
	}

	log := s.logger.GetChildLogger()
	log.Logger = log.With().Str("request_id", req.ID).Str("type", string(req.Type)).Logger()
	ctx = log.WithContext(ctx)

	resp := Response{ID: req.ID, Type: req.Type}

	switch req.Type {
	case MessageQueueForSync:
		item, err := s.handler.Enqueue(ctx, req.Item)
		if err != nil {
			log.Err(err).Str("func", "Server.dispatch").Msg("enqueue failed")
			resp.Error = err.Error()
			break
		}
		resp.Success, resp.Queued, resp.Item = true, true, item

	case MessageGetSyncStatus:
		resp.Success, resp.Status = true, s.handler.Status(ctx)

	case MessageClearQueue:
		if err := s.handler.Clear(ctx, req.Streams); err != nil {
			log.Err(err).Str("func", "Server.dispatch").Msg("clear failed")
			resp.Error = err.Error()
			break
		}
		resp.Success = true

	case MessageRequestSync:
		resp.Success, resp.Accepted = true, s.handler.RequestSync(ctx)

	case MessageTriggerManualSync:
		// a manual sync may take long; keep serving status requests meanwhile
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			resp.Success, resp.Results = true, s.handler.ManualSync(context.WithoutCancel(ctx))
			req.Reply <- resp
		}()
		return

	default:
		resp.Error = fmt.Errorf("%w: %q", ErrUnknownMessage, req.Type).Error()
	}

	req.Reply <- resp
}
