package retry

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/tropicacao/leads-api/pkg/logger"
	"go.uber.org/zap"
)

// BackoffFunc returns the delay before retry attempt n (1-based).
type BackoffFunc func(attempt int) time.Duration

// Config holds retry configuration
type Config struct {
	// MaxRetries is the maximum number of retry attempts after the first try
	MaxRetries int
	// Backoff computes the delay before each retry
	Backoff BackoffFunc
	// RetryableErrors is a function to determine if an error should be retried
	RetryableErrors func(error) bool
}

// Linear returns a backoff that grows by base each attempt (base, 2*base, ...).
func Linear(base time.Duration) BackoffFunc {
	return func(attempt int) time.Duration {
		return time.Duration(attempt) * base
	}
}

// Exponential returns a backoff that doubles each attempt (base, 2*base, 4*base, ...).
func Exponential(base time.Duration) BackoffFunc {
	return func(attempt int) time.Duration {
		return time.Duration(float64(base) * math.Pow(2, float64(attempt-1)))
	}
}

// RecaptchaConfig returns the retry policy for captcha verification calls:
// two extra attempts with linearly increasing backoff.
func RecaptchaConfig() Config {
	return Config{
		MaxRetries:      2,
		Backoff:         Linear(500 * time.Millisecond),
		RetryableErrors: func(err error) bool { return true },
	}
}

// EmailConfig returns the retry policy for email provider calls:
// two extra attempts with exponential backoff.
func EmailConfig() Config {
	return Config{
		MaxRetries:      2,
		Backoff:         Exponential(500 * time.Millisecond),
		RetryableErrors: func(err error) bool { return true },
	}
}

// Do executes the function with retry logic
func Do(ctx context.Context, config Config, operation string, fn func() error) error {
	_, err := DoWithResult(ctx, config, operation, func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}

// DoWithResult executes the function with retry logic and returns a result
func DoWithResult[T any](ctx context.Context, config Config, operation string, fn func() (T, error)) (T, error) {
	var result T
	var lastErr error

	for attempt := 0; attempt <= config.MaxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		res, err := fn()
		if err == nil {
			if attempt > 0 {
				logger.Info("Operation succeeded after retry",
					zap.String("operation", operation),
					zap.Int("attempt", attempt))
			}
			return res, nil
		}

		lastErr = err

		if config.RetryableErrors != nil && !config.RetryableErrors(err) {
			logger.Warn("Non-retryable error encountered",
				zap.String("operation", operation),
				zap.Error(err))
			return result, err
		}

		// Don't sleep after the last attempt
		if attempt == config.MaxRetries {
			break
		}

		delay := config.Backoff(attempt + 1)

		logger.Warn("Operation failed, retrying",
			zap.String("operation", operation),
			zap.Int("attempt", attempt+1),
			zap.Int("max_retries", config.MaxRetries),
			zap.Duration("delay", delay),
			zap.Error(err))

		select {
		case <-ctx.Done():
			return result, ctx.Err()
		case <-time.After(delay):
		}
	}

	logger.Error("Operation failed after all retries",
		zap.String("operation", operation),
		zap.Int("max_retries", config.MaxRetries),
		zap.Error(lastErr))

	return result, fmt.Errorf("operation failed after %d retries: %w", config.MaxRetries, lastErr)
}
