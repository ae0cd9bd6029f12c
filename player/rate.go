package player

import (
	"context"
	"time"
)

// Rate keeps a loop at a fixed cycle time, absorbing the time spent in the
// loop body.
type Rate struct {
	actualCycleTime   time.Duration
	expectedCycleTime time.Duration
	start             time.Time
}

func NewRate(frequency float64) Rate {
	return CycleTime(time.Duration(float64(time.Second) / frequency))
}

func CycleTime(d time.Duration) Rate {
	return Rate{expectedCycleTime: d, start: time.Now()}
}

// CycleTime returns how long the last cycle actually took.
func (r *Rate) CycleTime() time.Duration {
	return r.actualCycleTime
}

func (r *Rate) ExpectedCycleTime() time.Duration {
	return r.expectedCycleTime
}

func (r *Rate) Reset() {
	r.actualCycleTime = 0
	r.start = time.Now()
}

// Sleep waits out the remainder of the current cycle. It returns early with
// ctx.Err() when ctx is done.
func (r *Rate) Sleep(ctx context.Context) error {
	var remaining time.Duration
	if elapsed := time.Since(r.start); elapsed < r.expectedCycleTime {
		remaining = r.expectedCycleTime - elapsed
	}
	if err := Sleep(ctx, remaining); err != nil {
		return err
	}
	r.actualCycleTime = time.Since(r.start)
	r.start = r.start.Add(r.expectedCycleTime)
	// Don't try to catch up after a long stall.
	if time.Since(r.start) > r.expectedCycleTime {
		r.start = time.Now()
	}
	return nil
}

// Sleep pauses for d or until ctx is done, whichever comes first.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
