package ai

import (
	"context"
	"errors"
	"time"

	"golang.org/x/time/rate"
)

// DefaultRateLimit is the default number of provider calls per second.
const DefaultRateLimit = 5

// DefaultMaxWait bounds how long a call may queue for a slot.
const DefaultMaxWait = 10 * time.Second

// ErrRateLimited is returned when a slot would not free up within the wait bound.
var ErrRateLimited = errors.New("ai rate limit exceeded")

// RateLimiter is shared by every provider call of the process.
type RateLimiter struct {
	limiter *rate.Limiter
	maxWait time.Duration
}

// NewRateLimiter allows qps calls per second with a burst of the same size.
func NewRateLimiter(qps int) *RateLimiter {
	return NewRateLimiterWithWait(qps, DefaultMaxWait)
}

func NewRateLimiterWithWait(qps int, maxWait time.Duration) *RateLimiter {
	if qps <= 0 {
		qps = DefaultRateLimit
	}
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(qps), qps),
		maxWait: maxWait,
	}
}

// Wait blocks until a call may proceed. The reserved slot is released when
// the caller gives up.
func (r *RateLimiter) Wait(ctx context.Context) error {
	reservation := r.limiter.Reserve()
	if !reservation.OK() {
		return ErrRateLimited
	}
	delay := reservation.Delay()
	if delay == 0 {
		return nil
	}
	if delay > r.maxWait {
		reservation.Cancel()
		return ErrRateLimited
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		reservation.Cancel()
		return ctx.Err()
	}
}
