package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tropicacao/leads-api/pkg/retry"
)

func fastConfig(maxRetries int) retry.Config {
	return retry.Config{
		MaxRetries:      maxRetries,
		Backoff:         retry.Linear(time.Millisecond),
		RetryableErrors: func(err error) bool { return true },
	}
}

func TestDo_SucceedsAfterFailures(t *testing.T) {
	attempts := 0
	err := retry.Do(context.Background(), fastConfig(2), "test_op", func() error {
		attempts++
		if attempts < 3 {
			return errors.New("transient")
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestDo_ExhaustsRetries(t *testing.T) {
	attempts := 0
	err := retry.Do(context.Background(), fastConfig(2), "test_op", func() error {
		attempts++
		return errors.New("persistent")
	})

	require.Error(t, err)
	assert.Equal(t, 3, attempts)
	assert.Contains(t, err.Error(), "after 2 retries")
	assert.ErrorContains(t, err, "persistent")
}

func TestDo_NonRetryableStopsImmediately(t *testing.T) {
	fatal := errors.New("fatal")
	cfg := fastConfig(5)
	cfg.RetryableErrors = func(err error) bool { return !errors.Is(err, fatal) }

	attempts := 0
	err := retry.Do(context.Background(), cfg, "test_op", func() error {
		attempts++
		return fatal
	})

	assert.ErrorIs(t, err, fatal)
	assert.Equal(t, 1, attempts)
}

func TestDoWithResult_ReturnsValue(t *testing.T) {
	got, err := retry.DoWithResult(context.Background(), fastConfig(1), "test_op", func() (string, error) {
		return "ok", nil
	})

	assert.NoError(t, err)
	assert.Equal(t, "ok", got)
}

func TestDo_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := retry.Do(ctx, fastConfig(2), "test_op", func() error {
		return errors.New("should not matter")
	})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestBackoffShapes(t *testing.T) {
	linear := retry.Linear(100 * time.Millisecond)
	assert.Equal(t, 100*time.Millisecond, linear(1))
	assert.Equal(t, 300*time.Millisecond, linear(3))

	exponential := retry.Exponential(100 * time.Millisecond)
	assert.Equal(t, 100*time.Millisecond, exponential(1))
	assert.Equal(t, 200*time.Millisecond, exponential(2))
	assert.Equal(t, 400*time.Millisecond, exponential(3))
}
