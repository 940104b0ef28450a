package downloader

import (
	"context"
	"math/rand"
	"time"
)

// Wait sleeps for a randomized politeness delay between min and max,
// returning early with the context's error if it is cancelled.
func Wait(ctx context.Context, min, max time.Duration) error {
	if max < min {
		max = min
	}
	d := min
	if span := max - min; span > 0 {
		d = min + time.Duration(rand.Int63n(int64(span)))
	}
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// backoffDelay computes the exponential delay for a zero-based attempt
// number, jittered by up to 25% and capped at max.
func backoffDelay(attempt int, base, max time.Duration) time.Duration {
	d := base << uint(attempt)
	if d > max || d <= 0 {
		d = max
	}
	jitter := time.Duration(rand.Int63n(int64(d)/4 + 1))
	if d+jitter > max {
		return max
	}
	return d + jitter
}
