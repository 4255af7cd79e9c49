package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// recordingSleeper captures requested delays instead of blocking.
type recordingSleeper struct {
	waits []time.Duration
	err   error
}

func (s *recordingSleeper) Sleep(ctx context.Context, d time.Duration) error {
	s.waits = append(s.waits, d)
	return s.err
}

func TestThrottleFirstCallPassesImmediately(t *testing.T) {
	sleeper := &recordingSleeper{}
	th := NewThrottle(4*time.Second, sleeper)

	require.NoError(t, th.Pace(context.Background()))
	require.Equal(t, []time.Duration{0}, sleeper.waits)
}

func TestThrottleEnforcesGapOnBackToBackCalls(t *testing.T) {
	sleeper := &recordingSleeper{}
	th := NewThrottle(4*time.Second, sleeper)

	require.NoError(t, th.Pace(context.Background()))
	require.NoError(t, th.Pace(context.Background()))

	require.Len(t, sleeper.waits, 2)
	require.Equal(t, time.Duration(0), sleeper.waits[0])
	// The second call follows within microseconds, so nearly the whole gap
	// remains.
	require.Greater(t, sleeper.waits[1], 3*time.Second)
	require.LessOrEqual(t, sleeper.waits[1], 4*time.Second)
}

func TestThrottlePropagatesSleeperError(t *testing.T) {
	sleeper := &recordingSleeper{err: context.Canceled}
	th := NewThrottle(time.Second, sleeper)

	require.ErrorIs(t, th.Pace(context.Background()), context.Canceled)
}

func TestFixedBackoffIgnoresAttempt(t *testing.T) {
	b := FixedBackoff{Cooldown: time.Minute}
	require.Equal(t, time.Minute, b.Wait(1))
	require.Equal(t, time.Minute, b.Wait(7))
}

func TestRealSleeperHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := RealSleeper{}.Sleep(ctx, time.Minute)
	require.ErrorIs(t, err, context.Canceled)
	require.Less(t, time.Since(start), time.Second)
}

func TestRealSleeperZeroDuration(t *testing.T) {
	require.NoError(t, RealSleeper{}.Sleep(context.Background(), 0))
}
