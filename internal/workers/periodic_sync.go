package workers

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/MKhiriev/go-scene-outbox/internal/logger"
	"github.com/MKhiriev/go-scene-outbox/internal/service"
)

// PeriodicSync requests an automatic drain on a cron schedule. An empty
// schedule disables it.
type PeriodicSync struct {
	requester SyncRequester
	schedule  string
	logger    *logger.Logger
}

func NewPeriodicSync(requester SyncRequester, schedule string, logger *logger.Logger) *PeriodicSync {
	return &PeriodicSync{
		requester: requester,
		schedule:  schedule,
		logger:    logger,
	}
}

func (p *PeriodicSync) Run(ctx context.Context) error {
	if p.schedule == "" {
		p.logger.Info().Str("func", "PeriodicSync.Run").Msg("periodic sync disabled")
		<-ctx.Done()
		return nil
	}

	cronLog := cronLogger{p.logger}
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cronLog)), cron.WithLogger(cronLog))

	if _, err := c.AddFunc(p.schedule, func() {
		p.requester.RequestSync(ctx, service.SyncSourcePeriodic)
	}); err != nil {
		return fmt.Errorf("invalid sync schedule %q: %w", p.schedule, err)
	}

	p.logger.Info().Str("func", "PeriodicSync.Run").Str("schedule", p.schedule).Msg("periodic sync started")
	c.Start()

	<-ctx.Done()
	<-c.Stop().Done()

	p.logger.Info().Str("func", "PeriodicSync.Run").Msg("periodic sync stopped")
	return nil
}

// cronLogger routes cron's own logging into zerolog.
type cronLogger struct {
	logger *logger.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug().Fields(keysAndValues).Msg("cron: " + msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Err(err).Fields(keysAndValues).Msg("cron: " + msg)
}
