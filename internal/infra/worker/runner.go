package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"postforge/internal/config"
	"postforge/internal/observability/metrics"
	newsUC "postforge/internal/usecase/news"
)

// Runner executes the scheduled news search. Each tick runs one
// search-and-persist pass with the default query; a failed run is logged
// and counted, never retried.
type Runner struct {
	Svc     *newsUC.Service
	Cfg     config.CronConfig
	Logger  *slog.Logger
	Version string
}

// Run blocks executing the cron schedule until ctx is cancelled. An
// in-flight run is allowed to finish before Run returns.
func (r *Runner) Run(ctx context.Context) error {
	loc, err := time.LoadLocation(r.Cfg.Timezone)
	if err != nil {
		r.Logger.Warn("invalid CRON_TIMEZONE, using UTC",
			slog.String("timezone", r.Cfg.Timezone),
			slog.Any("error", err))
		loc = time.UTC
	}

	c := cron.New(cron.WithLocation(loc))
	if _, err := c.AddFunc(r.Cfg.Schedule, func() { r.RunOnce(ctx) }); err != nil {
		return err
	}

	r.Logger.Info("scheduler starting",
		slog.String("schedule", r.Cfg.Schedule),
		slog.String("timezone", loc.String()),
		slog.String("version", r.Version))
	c.Start()

	<-ctx.Done()
	r.Logger.Info("stopping scheduler...")
	<-c.Stop().Done()
	return nil
}

// RunOnce performs a single search pass with the default query.
func (r *Runner) RunOnce(ctx context.Context) {
	runCtx, cancel := context.WithTimeout(ctx, r.Cfg.SearchTimeout)
	defer cancel()

	start := time.Now()
	res, err := r.Svc.Search(runCtx, "")
	if err != nil {
		metrics.RecordScheduledSearchRun(false)
		r.Logger.Error("scheduled search failed",
			slog.Duration("duration", time.Since(start)),
			slog.Any("error", err))
		return
	}

	metrics.RecordScheduledSearchRun(true)
	r.Logger.Info("scheduled search completed",
		slog.Int("items", len(res.Items)),
		slog.Int("saved", res.SavedCount),
		slog.Duration("duration", time.Since(start)))
}
