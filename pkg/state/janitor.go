package state

import (
	"context"
	"errors"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// ErrInvalidSchedule is returned when the janitor cron expression cannot be parsed.
var ErrInvalidSchedule = errors.New("state: invalid janitor schedule")

// Cleaner is implemented by stores that need external expiry sweeps
// (the Postgres store; Redis and Memory expire entries themselves).
type Cleaner interface {
	DeleteExpired(ctx context.Context) (int64, error)
}

// Janitor periodically removes expired attempts from a Cleaner on a cron
// schedule.
type Janitor struct {
	cron *cron.Cron
	log  *slog.Logger
}

// NewJanitor schedules periodic cleanup of expired attempts.
// The schedule accepts standard cron expressions and descriptors like
// "@every 5m".
//
// Example:
//
//	janitor, err := state.NewJanitor(store, "@every 5m", logger)
//	if err != nil {
//	    return err
//	}
//	janitor.Start()
//	defer janitor.Stop()
func NewJanitor(store Cleaner, schedule string, log *slog.Logger) (*Janitor, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		n, err := store.DeleteExpired(context.Background())
		if err != nil {
			log.Error("failed to delete expired login attempts", slog.String("error", err.Error()))
			return
		}
		if n > 0 {
			log.Debug("deleted expired login attempts", slog.Int64("count", n))
		}
	})
	if err != nil {
		return nil, errors.Join(ErrInvalidSchedule, err)
	}

	return &Janitor{cron: c, log: log}, nil
}

// Start begins running the cleanup schedule in its own goroutine.
func (j *Janitor) Start() {
	j.cron.Start()
}

// Stop halts the schedule and waits for a running cleanup to finish.
func (j *Janitor) Stop() {
	<-j.cron.Stop().Done()
}
