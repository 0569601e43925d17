package rtos

import (
	"context"
	"time"
)

// DefaultTickPeriod is the reference timer period.
const DefaultTickPeriod = time.Second

// TickSource posts one trigger event per period to a bound source.
// It plays the role of a hardware timer interrupt.
type TickSource struct {
	Dispatcher *Dispatcher
	Source     SourceID
	Period     time.Duration
}

// Name implements Named.
func (t *TickSource) Name() string {
	return string(t.Source)
}

// Run implements Runnable.
func (t *TickSource) Run(ctx context.Context) error {
	period := t.Period
	if period == 0 {
		period = DefaultTickPeriod
	}
	ticker := time.NewTicker(period)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := t.Dispatcher.Post(Event{Source: t.Source}); err != nil {
				return err
			}
		}
	}
}
