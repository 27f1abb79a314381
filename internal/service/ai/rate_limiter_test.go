package ai_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"portfolio/backend/internal/service/ai"
)

func TestRateLimiter_BurstPassesImmediately(t *testing.T) {
	limiter := ai.NewRateLimiter(3)

	start := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, limiter.Wait(context.Background()))
	}
	require.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestRateLimiter_GivesUpBeyondMaxWait(t *testing.T) {
	limiter := ai.NewRateLimiterWithWait(1, 50*time.Millisecond)

	require.NoError(t, limiter.Wait(context.Background()))
	require.ErrorIs(t, limiter.Wait(context.Background()), ai.ErrRateLimited)
}

func TestRateLimiter_Cancelled(t *testing.T) {
	limiter := ai.NewRateLimiterWithWait(1, time.Minute)
	require.NoError(t, limiter.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, limiter.Wait(ctx), context.Canceled)
}
