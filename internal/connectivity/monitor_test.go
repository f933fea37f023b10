package connectivity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-scene-outbox/internal/logger"
	"github.com/MKhiriev/go-scene-outbox/internal/mock"
)

func TestMonitor_Probe(t *testing.T) {
	tests := []struct {
		name     string
		checkErr error
		want     bool
	}{
		{name: "endpoint answers", want: true},
		{name: "endpoint down", checkErr: errors.New("connection refused"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			checker := mock.NewMockHealthChecker(ctrl)
			target := mock.NewMockSyncManager(ctrl)

			checker.EXPECT().Check(gomock.Any()).Return(tt.checkErr)
			target.EXPECT().IsOnline().Return(!tt.want)
			target.EXPECT().SetOnline(gomock.Any(), tt.want)

			m := NewMonitor(checker, target, time.Second, logger.Nop())
			assert.Equal(t, tt.want, m.Probe(context.Background()))
		})
	}
}

func TestMonitor_RunProbesImmediately(t *testing.T) {
	ctrl := gomock.NewController(t)
	checker := mock.NewMockHealthChecker(ctrl)
	target := mock.NewMockSyncManager(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	checker.EXPECT().Check(gomock.Any()).Return(nil).MinTimes(1)
	target.EXPECT().IsOnline().Return(true).AnyTimes()
	target.EXPECT().SetOnline(gomock.Any(), true).Do(func(context.Context, bool) { cancel() }).MinTimes(1)

	m := NewMonitor(checker, target, time.Hour, logger.Nop())

	done := make(chan error, 1)
	go func() { done <- m.Run(ctx) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("monitor did not stop")
	}
}
