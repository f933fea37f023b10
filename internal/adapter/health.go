package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-scene-outbox/internal/config"
	"github.com/MKhiriev/go-scene-outbox/internal/utils"
)

type httpHealthChecker struct {
	client *utils.HTTPClient
	path   string
}

// NewHTTPHealthChecker returns a [HealthChecker] that issues GET requests to
// cfg.HealthPath on the delivery endpoint.
func NewHTTPHealthChecker(cfg config.ClientAdapter) (HealthChecker, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpHealthChecker{client: client, path: cfg.HealthPath}, nil
}

func (h *httpHealthChecker) Check(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get(h.path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if resp.IsError() {
		return mapHTTPError(resp)
	}
	return nil
}
