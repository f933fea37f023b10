package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-scene-outbox/internal/config"
	"github.com/MKhiriev/go-scene-outbox/internal/logger"
	"github.com/MKhiriev/go-scene-outbox/internal/mock"
	"github.com/MKhiriev/go-scene-outbox/models"
)

func TestNewHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := mock.NewMockSyncManager(ctrl)

	cfg := config.ClientConfig{Server: config.ClientServer{HTTPAddress: "localhost:7070"}}

	h, err := NewHandlers(manager, cfg, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
}

func TestNewHandlers_NoAddress(t *testing.T) {
	ctrl := gomock.NewController(t)

	h, err := NewHandlers(mock.NewMockSyncManager(ctrl), config.ClientConfig{}, models.AppBuildInfo{}, logger.Nop())
	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}
