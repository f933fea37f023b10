// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-scene-outbox/internal/app"
	"github.com/MKhiriev/go-scene-outbox/internal/logger"
	"github.com/MKhiriev/go-scene-outbox/internal/utils"
	"github.com/MKhiriev/go-scene-outbox/internal/validators"
	"github.com/MKhiriev/go-scene-outbox/models"
)

const (
	// maxQueueBodySize leaves room for the envelope around the largest payload.
	maxQueueBodySize = validators.MaxPayloadSize + 4<<10
	maxSmallBodySize = 4 << 10
)

// statusResponse is the body of GET /api/sync/status.
type statusResponse struct {
	Online    bool               `json:"online"`
	Indicator string             `json:"indicator"`
	Total     int                `json:"total"`
	Streams   models.QueueStatus `json:"streams"`
}

// queueRequest is the body of POST /api/sync/queue/{stream}.
type queueRequest struct {
	Payload  json.RawMessage `json:"payload"`
	Priority models.Priority `json:"priority,omitempty"`
}

func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	status := h.manager.GetQueueStatus(r.Context())
	online := h.manager.IsOnline()

	utils.WriteJSON(w, statusResponse{
		Online:    online,
		Indicator: status.Indicator(online),
		Total:     status.Total(),
		Streams:   status,
	}, http.StatusOK)
}

func (h *Handler) queueItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	stream, err := models.ParseStream(chi.URLParam(r, "stream"))
	if err != nil {
		h.writeError(w, r, err, statusFromError(err))
		return
	}

	var req queueRequest
	if err = decodeBody(w, r, &req, maxQueueBodySize); err != nil {
		log.Err(err).Str("func", "*Handler.queueItem").Msg("invalid JSON was passed")
		h.writeError(w, r, err, statusFromError(err))
		return
	}

	res, err := h.manager.Queue(r.Context(), stream, req.Payload, req.Priority)
	if err != nil {
		h.writeError(w, r, err, statusFromError(err))
		return
	}

	code := http.StatusOK
	switch {
	case res.Queued:
		code = http.StatusAccepted
	case !res.Delivered:
		code = http.StatusServiceUnavailable
	}
	utils.WriteJSON(w, res, code)
}

func (h *Handler) triggerSync(w http.ResponseWriter, r *http.Request) {
	report := h.manager.TriggerSync(r.Context())

	code := http.StatusOK
	if !report.Success {
		code = http.StatusServiceUnavailable
	}
	utils.WriteJSON(w, report, code)
}

func (h *Handler) clearQueue(w http.ResponseWriter, r *http.Request) {
	var streams []models.Stream
	if name := chi.URLParam(r, "stream"); name != "" {
		stream, err := models.ParseStream(name)
		if err != nil {
			h.writeError(w, r, err, statusFromError(err))
			return
		}
		streams = append(streams, stream)
	}

	res, err := h.manager.ClearQueue(r.Context(), streams...)
	if err != nil {
		h.writeError(w, r, err, statusFromError(err))
		return
	}

	code := http.StatusOK
	if !res.Success {
		code = http.StatusInternalServerError
	}
	utils.WriteJSON(w, res, code)
}

func (h *Handler) getPreferences(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.manager.Preferences(), http.StatusOK)
}

func (h *Handler) putPreferences(w http.ResponseWriter, r *http.Request) {
	var prefs models.SyncPreferences
	if err := decodeBody(w, r, &prefs, maxSmallBodySize); err != nil {
		h.writeError(w, r, err, statusFromError(err))
		return
	}

	if err := h.manager.SetPreferences(prefs); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.putPreferences").Msg("error saving preferences")
		h.writeMessage(w, r, app.MsgPreferencesNotSaved, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, prefs, http.StatusOK)
}

func (h *Handler) putConnectivity(w http.ResponseWriter, r *http.Request) {
	var state models.DeviceState
	if err := decodeBody(w, r, &state, maxSmallBodySize); err != nil {
		h.writeError(w, r, err, statusFromError(err))
		return
	}

	h.manager.SetDeviceState(r.Context(), state)
	utils.WriteJSON(w, h.manager.DeviceState(), http.StatusOK)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, code int) {
	if code >= http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.writeError").Msg("request failed")
		h.writeMessage(w, r, app.MsgInternalServerError, code)
		return
	}
	h.writeMessage(w, r, err.Error(), code)
}

func (h *Handler) writeMessage(w http.ResponseWriter, r *http.Request, msg string, code int) {
	if _, writeErr := utils.WriteJSON(w, errorResponse{Error: msg}, code); writeErr != nil {
		logger.FromRequest(r).Err(writeErr).Str("func", "*Handler.writeMessage").Send()
	}
}

// decodeBody decodes at most limit bytes of the request body into v.
func decodeBody(w http.ResponseWriter, r *http.Request, v any, limit int64) error {
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return fmt.Errorf("%w: limit %d bytes", ErrBodyTooLarge, tooLarge.Limit)
		}
		return fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}
	return nil
}
