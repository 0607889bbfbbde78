package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	assert.True(t, t2.After(t1))
	assert.GreaterOrEqual(t, t2.Sub(t1), 10*time.Millisecond)
}

func TestSleepUntilDeadline_OnScheduleAdvancesByOneInterval(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)
	clock := NewGameClock(GameState{}, NewMailbox(), &recordingRenderer{}, 50*time.Millisecond, WithTimeProvider(mock))

	// Deadline already reached: no sleep, next deadline is one interval later
	clock.nextTickDeadline = start
	timer := time.NewTimer(time.Hour)
	defer timer.Stop()

	require.NoError(t, clock.sleepUntilDeadline(context.Background(), timer))
	assert.Equal(t, start.Add(50*time.Millisecond), clock.nextTickDeadline)
}

func TestSleepUntilDeadline_RebasesWhenFarBehind(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)
	clock := NewGameClock(GameState{}, NewMailbox(), &recordingRenderer{}, 50*time.Millisecond, WithTimeProvider(mock))

	clock.nextTickDeadline = start
	mock.Advance(time.Second)
	timer := time.NewTimer(time.Hour)
	defer timer.Stop()

	require.NoError(t, clock.sleepUntilDeadline(context.Background(), timer))
	assert.Equal(t, mock.Now().Add(50*time.Millisecond), clock.nextTickDeadline, "a stalled clock must not burst through missed ticks")
}

func TestSleepUntilDeadline_CanceledWhileWaiting(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)
	clock := NewGameClock(GameState{}, NewMailbox(), &recordingRenderer{}, time.Hour, WithTimeProvider(mock))
	clock.nextTickDeadline = start.Add(time.Hour)

	timer := time.NewTimer(0)
	<-timer.C

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := clock.sleepUntilDeadline(ctx, timer)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, start.Add(time.Hour), clock.nextTickDeadline)
}
