package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/grachmannico95/taxbit-export/internal/domain"
	"github.com/grachmannico95/taxbit-export/pkg/logger"
	"github.com/robfig/cron/v3"
)

// Invalidator drops derived state kept for an upload.
type Invalidator interface {
	Invalidate(uploadID string)
}

// Retention periodically deletes uploads older than maxAge.
type Retention struct {
	cron        *cron.Cron
	repo        domain.Repository
	invalidator Invalidator
	maxAge      time.Duration
	logger      *logger.Logger
	now         func() time.Time
}

func NewRetention(repo domain.Repository, invalidator Invalidator, schedule string, maxAge time.Duration, log *logger.Logger) (*Retention, error) {
	cl := cronLogger{log: log}

	r := &Retention{
		cron: cron.New(
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		repo:        repo,
		invalidator: invalidator,
		maxAge:      maxAge,
		logger:      log,
		now:         time.Now,
	}

	_, err := r.cron.AddFunc(schedule, func() {
		if _, err := r.RunOnce(context.Background()); err != nil {
			r.logger.Error(context.Background(), "Retention run failed", "error", err)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid retention schedule %q: %w", schedule, err)
	}

	return r, nil
}

func (r *Retention) Start() {
	r.logger.Info(context.Background(), "Starting retention scheduler",
		"max_age", r.maxAge.String(),
	)
	r.cron.Start()
}

// Stop halts the schedule and waits for a running purge, bounded by ctx.
func (r *Retention) Stop(ctx context.Context) error {
	done := r.cron.Stop()

	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RunOnce purges every upload created before now minus maxAge and returns
// how many were removed.
func (r *Retention) RunOnce(ctx context.Context) (int, error) {
	cutoff := r.now().Add(-r.maxAge)

	purged, err := r.repo.PurgeUploadsBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	for _, id := range purged {
		r.invalidator.Invalidate(id)
	}

	if len(purged) > 0 {
		r.logger.Info(ctx, "Purged expired uploads",
			"count", len(purged),
			"cutoff", cutoff.Format(time.RFC3339),
		)
	}

	return len(purged), nil
}

// cronLogger adapts Logger to cron.Logger.
type cronLogger struct {
	log *logger.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug(context.Background(), "cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error(context.Background(), "cron: "+msg, append(keysAndValues, "error", err)...)
}
