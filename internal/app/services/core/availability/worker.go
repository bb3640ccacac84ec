package availability

import (
	"mentor-service/internal/app/config"
	"mentor-service/internal/pkg/constvars"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Worker periodically drops editor sessions nobody has touched for a while.
type Worker struct {
	log      *zap.Logger
	cfg      *config.InternalConfig
	sessions *Sessions
	cron     *cron.Cron
}

func NewWorker(log *zap.Logger, cfg *config.InternalConfig, sessions *Sessions) *Worker {
	return &Worker{log: log, cfg: cfg, sessions: sessions}
}

// Start schedules the sweep on the configured cron spec.
func (w *Worker) Start() {
	c := cron.New()
	spec := w.cfg.Availability.EditorSweepCronSpec
	_, err := c.AddFunc(spec, w.runOnce)
	if err != nil {
		w.log.Warn("availability.worker: failed to schedule with provided cron spec; falling back to default",
			zap.String("cron_spec", spec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc(constvars.DefaultEditorSweepCronSpec, w.runOnce)
	}
	c.Start()
	w.cron = c
}

// Stop waits for a running sweep to finish.
func (w *Worker) Stop() {
	if w.cron != nil {
		ctx := w.cron.Stop()
		<-ctx.Done()
	}
}

func (w *Worker) runOnce() {
	maxIdle := time.Duration(w.cfg.Availability.EditorIdleTimeoutInMinutes) * time.Minute
	evicted := w.sessions.EvictIdle(maxIdle)
	if evicted > 0 {
		w.log.Info("availability.worker: evicted idle editor sessions",
			zap.Int(constvars.LoggingEvictedKey, evicted),
			zap.Int("remaining", w.sessions.Len()),
		)
	}
}
