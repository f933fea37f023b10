package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-scene-outbox/internal/config"
	"github.com/MKhiriev/go-scene-outbox/internal/logger"
	"github.com/MKhiriev/go-scene-outbox/internal/utils"
	"github.com/MKhiriev/go-scene-outbox/models"
)

const (
	idempotencyKeyHeader   = "Idempotency-Key"
	payloadSignatureHeader = "X-Payload-Signature"
	deviceIDHeader         = "X-Device-ID"

	deviceTokenTTL = 10 * time.Minute
	// tokens are renewed this long before they expire
	deviceTokenRenewal = time.Minute
)

// deliveryPaths maps each stream to its endpoint path.
var deliveryPaths = map[models.Stream]string{
	models.StreamSnapshots:   "/api/v1/snapshots",
	models.StreamTimeline:    "/api/v1/timeline",
	models.StreamPreferences: "/api/v1/preferences",
	models.StreamAlerts:      "/api/v1/alerts",
}

type httpStreamProcessors struct {
	client *utils.HTTPClient
	ids    *utils.UUIDGenerator

	deviceID     string
	deviceSecret string

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
	now         func() time.Time

	logger *logger.Logger
}

// NewHTTPStreamProcessors constructs an HTTP/REST implementation of
// [StreamProcessors]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPStreamProcessors(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (StreamProcessors, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpStreamProcessors{
		client:       client,
		ids:          utils.NewUUIDGenerator(),
		deviceID:     appCfg.DeviceID,
		deviceSecret: appCfg.DeviceSecret,
		now:          time.Now,
		logger:       logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpStreamProcessors) DeliverSnapshot(ctx context.Context, payload json.RawMessage) error {
	return h.deliver(ctx, models.StreamSnapshots, payload)
}

func (h *httpStreamProcessors) DeliverTimelineEvent(ctx context.Context, payload json.RawMessage) error {
	return h.deliver(ctx, models.StreamTimeline, payload)
}

func (h *httpStreamProcessors) DeliverPreferenceChange(ctx context.Context, payload json.RawMessage) error {
	return h.deliver(ctx, models.StreamPreferences, payload)
}

func (h *httpStreamProcessors) DeliverAlert(ctx context.Context, payload json.RawMessage) error {
	return h.deliver(ctx, models.StreamAlerts, payload)
}

// deliver POSTs payload to the stream's endpoint. A 409 answer means the
// endpoint already accepted this idempotency key and counts as delivered.
func (h *httpStreamProcessors) deliver(ctx context.Context, stream models.Stream, payload json.RawMessage) error {
	log := logger.FromContext(ctx)

	if !json.Valid(payload) {
		return fmt.Errorf("%w: payload is not valid JSON", ErrRejected)
	}

	key, ok := IdempotencyKeyFromContext(ctx)
	if !ok {
		key = stream.String() + "-" + h.ids.Generate()
	}

	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetHeader(idempotencyKeyHeader, key).
		SetHeader(payloadSignatureHeader, utils.HashString(string(payload), h.deviceSecret)).
		SetBody([]byte(payload)).
		Post(deliveryPaths[stream])
	if err != nil {
		log.Debug().Err(err).
			Str("func", "httpStreamProcessors.deliver").
			Str("stream", stream.String()).
			Msg("delivery request failed")
		return fmt.Errorf("%w: deliver %s: %w", ErrUnavailable, stream, err)
	}

	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrDuplicate) {
			log.Debug().
				Str("func", "httpStreamProcessors.deliver").
				Str("stream", stream.String()).
				Str("idempotency_key", key).
				Msg("endpoint reports duplicate, treating as delivered")
			return nil
		}
		return err
	}

	return nil
}

func (h *httpStreamProcessors) authedRequest(ctx context.Context) (*resty.Request, error) {
	token, err := h.deviceToken()
	if err != nil {
		return nil, err
	}

	return h.client.R().
		SetContext(ctx).
		SetHeader(deviceIDHeader, h.deviceID).
		SetAuthToken(token), nil
}

// deviceToken returns a cached device JWT, minting a new one shortly before
// the cached one expires.
func (h *httpStreamProcessors) deviceToken() (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	now := h.now()
	if h.token != "" && now.Add(deviceTokenRenewal).Before(h.tokenExpiry) {
		return h.token, nil
	}

	token, err := utils.GenerateDeviceToken(h.deviceID, deviceTokenTTL, h.deviceSecret)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	h.token = token
	h.tokenExpiry = now.Add(deviceTokenTTL)
	return token, nil
}
