package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/berkayoztunc/suiport/internal/logger"
	"github.com/berkayoztunc/suiport/internal/retry"
)

func init() {
	logger.InitLogger("test")
}

func TestDo_SucceedsFirstAttempt(t *testing.T) {
	calls := 0
	value, ok := retry.Do(context.Background(), 3, time.Millisecond, func(ctx context.Context) (int, error) {
		calls++
		return 42, nil
	})

	assert.True(t, ok)
	assert.Equal(t, 42, value)
	assert.Equal(t, 1, calls)
}

func TestDo_SucceedsAfterFailures(t *testing.T) {
	calls := 0
	value, ok := retry.Do(context.Background(), 3, time.Millisecond, func(ctx context.Context) (string, error) {
		calls++
		if calls < 3 {
			return "", errors.New("transient")
		}
		return "done", nil
	})

	assert.True(t, ok)
	assert.Equal(t, "done", value)
	assert.Equal(t, 3, calls)
}

func TestDo_ExhaustsAttempts(t *testing.T) {
	calls := 0
	value, ok := retry.Do(context.Background(), 3, time.Millisecond, func(ctx context.Context) (float64, error) {
		calls++
		return 0, errors.New("always fails")
	})

	assert.False(t, ok)
	assert.Zero(t, value)
	assert.Equal(t, 3, calls)
}

func TestDo_ZeroAttempts(t *testing.T) {
	value, ok := retry.Do(context.Background(), 0, time.Millisecond, func(ctx context.Context) (int, error) {
		t.Fatal("operation should not run")
		return 0, nil
	})

	assert.False(t, ok)
	assert.Zero(t, value)
}

func TestDo_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	_, ok := retry.Do(ctx, 3, 100*time.Millisecond, func(ctx context.Context) (int, error) {
		calls++
		return 0, errors.New("failure")
	})

	assert.False(t, ok)
	assert.LessOrEqual(t, calls, 1)
}
