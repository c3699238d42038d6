package retry

import (
	"context"
	"time"

	"github.com/berkayoztunc/suiport/internal/logger"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// linearBackOff waits baseDelay * attemptNumber between attempts. The
// external price sources rate-limit aggressively enough that linear spacing
// is sufficient; an exponential curve just delays the inevitable give-up.
type linearBackOff struct {
	baseDelay time.Duration
	attempt   int
}

func newLinearBackOff(baseDelay time.Duration) *linearBackOff {
	return &linearBackOff{baseDelay: baseDelay}
}

// NextBackOff implements backoff.BackOff.
func (b *linearBackOff) NextBackOff() time.Duration {
	b.attempt++
	return b.baseDelay * time.Duration(b.attempt)
}

// Reset implements backoff.BackOff.
func (b *linearBackOff) Reset() {
	b.attempt = 0
}

// Do runs op up to attempts times with linear backoff between failures.
// It returns the operation's value and true on success, or the zero value
// and false once every attempt has failed. Exhaustion is not an error:
// callers treat false as "source unavailable" and decide for themselves
// whether to continue a cascade or give up.
func Do[T any](ctx context.Context, attempts int, baseDelay time.Duration, op func(context.Context) (T, error)) (T, bool) {
	var result T

	if attempts < 1 {
		return result, false
	}

	operation := func() error {
		value, err := op(ctx)
		if err != nil {
			return err
		}
		result = value
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(newLinearBackOff(baseDelay), uint64(attempts-1)),
		ctx,
	)

	if err := backoff.Retry(operation, policy); err != nil {
		logger.Debug("operation exhausted retry attempts",
			zap.Int("attempts", attempts),
			zap.Error(err))
		var zero T
		return zero, false
	}

	return result, true
}
