// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-scene-outbox/internal/app"
	"github.com/MKhiriev/go-scene-outbox/internal/config"
	"github.com/MKhiriev/go-scene-outbox/internal/logger"
	"github.com/MKhiriev/go-scene-outbox/internal/mock"
	"github.com/MKhiriev/go-scene-outbox/internal/utils"
	"github.com/MKhiriev/go-scene-outbox/internal/validators"
	"github.com/MKhiriev/go-scene-outbox/models"
)

const (
	testDeviceID     = "phone-1"
	testDeviceSecret = "device-secret"
)

func newTestRouter(t *testing.T, ctrl *gomock.Controller, secret string) (http.Handler, *mock.MockSyncManager) {
	t.Helper()

	manager := mock.NewMockSyncManager(ctrl)
	appCfg := config.ClientApp{DeviceID: testDeviceID, DeviceSecret: secret}
	h := NewHandler(manager, appCfg, models.NewAppBuildInfo("1.2.0", "2026-10-01", "abc123"), logger.Nop())
	return h.Init(), manager
}

func serve(router http.Handler, method, target, body string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestHandler_GetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	router, manager := newTestRouter(t, ctrl, "")

	status := models.NewQueueStatus()
	status[models.StreamAlerts] = models.StreamStatus{Count: 2, Items: []models.QueueItem{{ID: 1}, {ID: 2}}}

	manager.EXPECT().GetQueueStatus(gomock.Any()).Return(status)
	manager.EXPECT().IsOnline().Return(true)

	rr := serve(router, http.MethodGet, "/api/sync/status", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Online    bool   `json:"online"`
		Indicator string `json:"indicator"`
		Total     int    `json:"total"`
		Streams   map[string]struct {
			Count int `json:"count"`
		} `json:"streams"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.True(t, body.Online)
	assert.Equal(t, "2 items queued", body.Indicator)
	assert.Equal(t, 2, body.Total)
	assert.Equal(t, 2, body.Streams["alerts"].Count)
	assert.Equal(t, 0, body.Streams["snapshots"].Count)
}

func TestHandler_QueueItem(t *testing.T) {
	tests := []struct {
		name     string
		stream   string
		body     string
		result   models.EnqueueResult
		wantCode int
	}{
		{
			name:     "delivered",
			stream:   "snapshots",
			body:     `{"payload":{"frame":1}}`,
			result:   models.EnqueueResult{Delivered: true, Message: "delivered"},
			wantCode: http.StatusOK,
		},
		{
			name:     "queued",
			stream:   "timeline",
			body:     `{"payload":{"event":"opened"}}`,
			result:   models.EnqueueResult{Queued: true, Message: "queued while offline"},
			wantCode: http.StatusAccepted,
		},
		{
			name:     "not queued",
			stream:   "preferences",
			body:     `{"payload":{"theme":"dark"}}`,
			result:   models.EnqueueResult{Message: "not queued: queue storage corrupted"},
			wantCode: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			router, manager := newTestRouter(t, ctrl, "")

			stream, err := models.ParseStream(tt.stream)
			require.NoError(t, err)
			manager.EXPECT().Queue(gomock.Any(), stream, gomock.Any(), models.PriorityNone).Return(tt.result, nil)

			rr := serve(router, http.MethodPost, "/api/sync/queue/"+tt.stream, tt.body)
			assert.Equal(t, tt.wantCode, rr.Code)

			var got models.EnqueueResult
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Equal(t, tt.result, got)
		})
	}
}

func TestHandler_QueueAlertWithPriority(t *testing.T) {
	ctrl := gomock.NewController(t)
	router, manager := newTestRouter(t, ctrl, "")

	manager.EXPECT().
		Queue(gomock.Any(), models.StreamAlerts, json.RawMessage(`{"kind":"obstacle"}`), models.PriorityDanger).
		Return(models.EnqueueResult{Queued: true}, nil)

	rr := serve(router, http.MethodPost, "/api/sync/queue/alerts", `{"payload":{"kind":"obstacle"},"priority":"danger"}`)
	assert.Equal(t, http.StatusAccepted, rr.Code)
}

func TestHandler_QueueItem_BadRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	router, manager := newTestRouter(t, ctrl, "")

	rr := serve(router, http.MethodPost, "/api/sync/queue/photos", `{"payload":{}}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = serve(router, http.MethodPost, "/api/sync/queue/alerts", `{"payload":{},"priority":"urgent"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = serve(router, http.MethodPost, "/api/sync/queue/alerts", `not json`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	manager.EXPECT().Queue(gomock.Any(), models.StreamSnapshots, gomock.Any(), models.PriorityNone).
		Return(models.EnqueueResult{}, models.ErrInvalidPayload)
	rr = serve(router, http.MethodPost, "/api/sync/queue/snapshots", `{}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandler_QueueItem_BodyLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	router, manager := newTestRouter(t, ctrl, "")

	oversized := `{"payload":"` + strings.Repeat("a", maxQueueBodySize) + `"}`
	rr := serve(router, http.MethodPost, "/api/sync/queue/snapshots", oversized)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)

	rr = serve(router, http.MethodPut, "/api/sync/connectivity", `{"online":"`+strings.Repeat("x", maxSmallBodySize)+`"}`)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)

	// a payload at the limit still reaches the manager, which validates it
	atLimit := `{"payload":"` + strings.Repeat("a", validators.MaxPayloadSize) + `"}`
	manager.EXPECT().Queue(gomock.Any(), models.StreamSnapshots, gomock.Any(), models.PriorityNone).
		Return(models.EnqueueResult{}, models.ErrInvalidPayload)
	rr = serve(router, http.MethodPost, "/api/sync/queue/snapshots", atLimit)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandler_TriggerSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	router, manager := newTestRouter(t, ctrl, "")

	manager.EXPECT().TriggerSync(gomock.Any()).Return(models.SyncReport{
		Success: true,
		Results: models.SyncResults{Successful: 3, Failed: 1},
	})

	rr := serve(router, http.MethodPost, "/api/sync/trigger", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var report models.SyncReport
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &report))
	assert.Equal(t, 3, report.Results.Successful)
	assert.Equal(t, 1, report.Results.Failed)
}

func TestHandler_ClearQueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	router, manager := newTestRouter(t, ctrl, "")

	manager.EXPECT().ClearQueue(gomock.Any()).Return(models.OperationResult{Success: true}, nil)
	rr := serve(router, http.MethodDelete, "/api/sync/queue", "")
	assert.Equal(t, http.StatusOK, rr.Code)

	manager.EXPECT().ClearQueue(gomock.Any(), models.StreamSnapshots).Return(models.OperationResult{Success: true}, nil)
	rr = serve(router, http.MethodDelete, "/api/sync/queue/snapshots", "")
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = serve(router, http.MethodDelete, "/api/sync/queue/photos", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHandler_Preferences(t *testing.T) {
	ctrl := gomock.NewController(t)
	router, manager := newTestRouter(t, ctrl, "")

	prefs := models.SyncPreferences{AutoSync: true, WiFiOnly: true}
	manager.EXPECT().Preferences().Return(prefs)
	rr := serve(router, http.MethodGet, "/api/sync/preferences", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"auto_sync":true,"wifi_only":true,"battery_saver_sync":false}`, rr.Body.String())

	manager.EXPECT().SetPreferences(models.SyncPreferences{BatterySaverSync: true}).Return(nil)
	rr = serve(router, http.MethodPut, "/api/sync/preferences", `{"battery_saver_sync":true}`)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestHandler_PutConnectivity(t *testing.T) {
	ctrl := gomock.NewController(t)
	router, manager := newTestRouter(t, ctrl, "")

	state := models.DeviceState{Online: true, OnWiFi: true}
	manager.EXPECT().SetDeviceState(gomock.Any(), state)
	manager.EXPECT().DeviceState().Return(state)

	rr := serve(router, http.MethodPut, "/api/sync/connectivity", `{"online":true,"on_wifi":true}`)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestHandler_GetVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	router, _ := newTestRouter(t, ctrl, testDeviceSecret)

	rr := serve(router, http.MethodGet, "/api/version", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"version":"1.2.0","date":"2026-10-01","commit":"abc123"}`, rr.Body.String())
}

func TestHandler_Auth(t *testing.T) {
	ownToken, err := utils.GenerateDeviceToken(testDeviceID, time.Minute, testDeviceSecret)
	require.NoError(t, err)
	foreignToken, err := utils.GenerateDeviceToken("tablet-7", time.Minute, testDeviceSecret)
	require.NoError(t, err)
	badSignature, err := utils.GenerateDeviceToken(testDeviceID, time.Minute, "other-secret")
	require.NoError(t, err)

	tests := []struct {
		name     string
		header   string
		wantCode int
		wantErr  string
	}{
		{name: "valid token", header: "Bearer " + ownToken, wantCode: http.StatusOK},
		{name: "missing header", wantCode: http.StatusUnauthorized, wantErr: ErrEmptyAuthorizationHeader.Error()},
		{name: "malformed header", header: ownToken, wantCode: http.StatusUnauthorized, wantErr: app.MsgTokenIsExpiredOrInvalid},
		{name: "wrong signature", header: "Bearer " + badSignature, wantCode: http.StatusUnauthorized, wantErr: app.MsgTokenIsExpiredOrInvalid},
		{name: "foreign device", header: "Bearer " + foreignToken, wantCode: http.StatusUnauthorized, wantErr: app.MsgAccessDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			router, manager := newTestRouter(t, ctrl, testDeviceSecret)

			if tt.wantCode == http.StatusOK {
				manager.EXPECT().Preferences().Return(models.SyncPreferences{})
			}

			var headers []string
			if tt.header != "" {
				headers = []string{"Authorization", tt.header}
			}
			rr := serve(router, http.MethodGet, "/api/sync/preferences", "", headers...)
			assert.Equal(t, tt.wantCode, rr.Code)
			if tt.wantErr != "" {
				var body errorResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
				assert.Equal(t, tt.wantErr, body.Error)
			}
		})
	}
}
