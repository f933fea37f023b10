package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-scene-outbox/internal/config"
	"github.com/MKhiriev/go-scene-outbox/internal/handler"
	"github.com/MKhiriev/go-scene-outbox/internal/logger"
	"github.com/MKhiriev/go-scene-outbox/internal/mock"
	"github.com/MKhiriev/go-scene-outbox/models"
)

func freeAddress(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestNewServer_NoHandlers(t *testing.T) {
	_, err := NewServer(nil, config.ClientServer{HTTPAddress: "localhost:7070"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestServer_RunServesUntilCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	addr := freeAddress(t)

	cfg := config.ClientConfig{Server: config.ClientServer{HTTPAddress: addr}}
	handlers, err := handler.NewHandlers(mock.NewMockSyncManager(ctrl), cfg, models.NewAppBuildInfo("1.0.0", "", ""), logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, cfg.Server, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/api/version")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not shut down")
	}
}
