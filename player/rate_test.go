package player

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateSleep(t *testing.T) {
	r := NewRate(100)
	assert.Equal(t, 10*time.Millisecond, r.ExpectedCycleTime())

	start := time.Now()
	for i := 0; i < 5; i++ {
		require.NoError(t, r.Sleep(context.Background()))
	}
	elapsed := time.Since(start)
	assert.GreaterOrEqual(t, int64(elapsed), int64(40*time.Millisecond))
	assert.Greater(t, int64(r.CycleTime()), int64(0))
}

func TestRateAbsorbsLoopBody(t *testing.T) {
	r := CycleTime(30 * time.Millisecond)
	time.Sleep(20 * time.Millisecond)

	start := time.Now()
	require.NoError(t, r.Sleep(context.Background()))
	assert.Less(t, int64(time.Since(start)), int64(25*time.Millisecond))
}

func TestRateSleepCancelled(t *testing.T) {
	r := CycleTime(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, r.Sleep(ctx), context.Canceled)
}

func TestSleep(t *testing.T) {
	require.NoError(t, Sleep(context.Background(), 0))
	require.NoError(t, Sleep(context.Background(), time.Millisecond))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, Sleep(ctx, time.Hour), context.DeadlineExceeded)
}
