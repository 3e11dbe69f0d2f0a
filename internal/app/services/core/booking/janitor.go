package booking

import (
	"clinic-booking-service/internal/pkg/constvars"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Janitor periodically closes idle booking sessions.
type Janitor struct {
	registry *Registry
	spec     string
	cron     *cron.Cron
	log      *zap.Logger
}

func NewJanitor(registry *Registry, spec string, logger *zap.Logger) *Janitor {
	return &Janitor{registry: registry, spec: spec, log: logger}
}

func (j *Janitor) Start() {
	c := cron.New()
	_, err := c.AddFunc(j.spec, j.runOnce)
	if err != nil {
		j.log.Warn("booking.janitor: failed to schedule with provided cron spec; falling back to @every 1m", zap.Error(err))
		c = cron.New()
		_, _ = c.AddFunc("@every 1m", j.runOnce)
	}
	c.Start()
	j.cron = c
}

// Stop waits for a running sweep to finish.
func (j *Janitor) Stop() {
	if j.cron != nil {
		ctx := j.cron.Stop()
		<-ctx.Done()
	}
}

func (j *Janitor) runOnce() {
	closed := j.registry.CloseIdle()
	if closed > 0 {
		j.log.Info("booking.janitor: closed idle booking sessions",
			zap.Int(constvars.LoggingClosedSessionsKey, closed),
			zap.Int(constvars.LoggingOpenSessionsKey, j.registry.Len()),
		)
	}
}
