package ratelimit

import (
	"context"
	"sync"
	"time"

	"CryptoPulse/internal/domain/repository"
)

// RealSleeper blocks on the wall clock, honoring context cancellation.
type RealSleeper struct{}

func (RealSleeper) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// FixedBackoff waits a constant cooldown regardless of attempt number. The
// upstream API asks for a flat pause on 429, not an exponential ramp.
type FixedBackoff struct {
	Cooldown time.Duration
}

func (b FixedBackoff) Wait(attempt int) time.Duration {
	return b.Cooldown
}

var _ repository.BackoffPolicy = FixedBackoff{}

// Throttle enforces a minimum gap between successive calls. The first call
// passes immediately.
type Throttle struct {
	mu      sync.Mutex
	gap     time.Duration
	sleeper repository.Sleeper
	last    time.Time
}

func NewThrottle(gap time.Duration, sleeper repository.Sleeper) *Throttle {
	return &Throttle{gap: gap, sleeper: sleeper}
}

// Pace blocks until at least the configured gap has passed since the previous
// paced call.
func (t *Throttle) Pace(ctx context.Context) error {
	t.mu.Lock()
	wait := time.Duration(0)
	now := time.Now()
	if !t.last.IsZero() {
		if elapsed := now.Sub(t.last); elapsed < t.gap {
			wait = t.gap - elapsed
		}
	}
	t.last = now.Add(wait)
	t.mu.Unlock()

	return t.sleeper.Sleep(ctx, wait)
}
