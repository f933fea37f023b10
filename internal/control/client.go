package control

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-scene-outbox/internal/utils"
	"github.com/MKhiriev/go-scene-outbox/models"
)

// Client sends requests to the background worker. It is safe for concurrent
// use.
type Client struct {
	requests chan<- Request
	ids      *utils.UUIDGenerator

	timeout           time.Duration
	manualSyncTimeout time.Duration
}

// NewClient returns a Client that waits at most timeout for routine requests
// and at most manualSyncTimeout for a manual sync round trip.
func NewClient(requests chan<- Request, timeout, manualSyncTimeout time.Duration) *Client {
	if manualSyncTimeout < timeout {
		manualSyncTimeout = timeout
	}
	return &Client{
		requests:          requests,
		ids:               utils.NewUUIDGenerator(),
		timeout:           timeout,
		manualSyncTimeout: manualSyncTimeout,
	}
}

// QueueForSync stores item in the durable queue and returns it with its
// assigned ID.
func (c *Client) QueueForSync(ctx context.Context, item models.QueueItem) (models.QueueItem, error) {
	req := NewRequest(c.ids.Generate(), MessageQueueForSync)
	req.Item = item

	resp, err := c.do(ctx, req, c.timeout)
	if err != nil {
		return models.QueueItem{}, err
	}
	return resp.Item, nil
}

// GetSyncStatus returns the worker's view of all streams.
func (c *Client) GetSyncStatus(ctx context.Context) (models.QueueStatus, error) {
	resp, err := c.do(ctx, NewRequest(c.ids.Generate(), MessageGetSyncStatus), c.timeout)
	if err != nil {
		return nil, err
	}
	return resp.Status, nil
}

// TriggerManualSync runs one drain cycle and waits for its results.
func (c *Client) TriggerManualSync(ctx context.Context) (models.SyncResults, error) {
	resp, err := c.do(ctx, NewRequest(c.ids.Generate(), MessageTriggerManualSync), c.manualSyncTimeout)
	if err != nil {
		return models.SyncResults{}, err
	}
	return resp.Results, nil
}

// ClearQueue empties the given streams.
func (c *Client) ClearQueue(ctx context.Context, streams []models.Stream) error {
	req := NewRequest(c.ids.Generate(), MessageClearQueue)
	req.Streams = streams

	_, err := c.do(ctx, req, c.timeout)
	return err
}

// RequestSync asks for an automatic drain and reports whether it was
// started.
func (c *Client) RequestSync(ctx context.Context) (bool, error) {
	resp, err := c.do(ctx, NewRequest(c.ids.Generate(), MessageRequestSync), c.timeout)
	if err != nil {
		return false, err
	}
	return resp.Accepted, nil
}

func (c *Client) do(ctx context.Context, req Request, timeout time.Duration) (Response, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case c.requests <- req:
	case <-timer.C:
		return Response{}, fmt.Errorf("%w: %s not accepted within %s", ErrUnreachable, req.Type, timeout)
	case <-ctx.Done():
		return Response{}, ctx.Err()
	}

	select {
	case resp := <-req.Reply:
		if !resp.Success {
			return resp, fmt.Errorf("%w: %s: %s", ErrRequestFailed, req.Type, resp.Error)
		}
		return resp, nil
	case <-timer.C:
		return Response{}, fmt.Errorf("%w: %s not answered within %s", ErrUnreachable, req.Type, timeout)
	case <-ctx.Done():
		return Response{}, ctx.Err()
	}
}
