package common

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// RetryableFunc defines a function that can be retried.
type RetryableFunc func() error

// retryConfig holds the configuration for retry behavior.
type retryConfig struct {
	maxRetries   int
	initialDelay time.Duration
	maxDelay     time.Duration
}

// Option is a functional option for configuring retry behavior.
type Option func(*retryConfig)

// WithMaxRetries sets the maximum number of retry attempts.
// Default is 3 retries.
func WithMaxRetries(n int) Option {
	return func(c *retryConfig) {
		if n >= 0 {
			c.maxRetries = n
		}
	}
}

// WithInitialDelay sets the delay before the first retry.
// Default is 1 second. Each subsequent delay doubles.
func WithInitialDelay(d time.Duration) Option {
	return func(c *retryConfig) {
		if d > 0 {
			c.initialDelay = d
		}
	}
}

// WithMaxDelay caps the delay between retries.
// Default is 30 seconds.
func WithMaxDelay(d time.Duration) Option {
	return func(c *retryConfig) {
		if d > 0 {
			c.maxDelay = d
		}
	}
}

// Do executes fn with exponential backoff. The first attempt runs
// immediately; each retry doubles the previous delay up to maxDelay.
// Context cancellation aborts both the backoff sleep and further attempts.
//
// Only the notification webhook uses this: the GitHub and model calls are
// single-shot and surface their first failure directly.
func Do(ctx context.Context, fn RetryableFunc, opts ...Option) error {
	if fn == nil {
		return errors.New("retry: function cannot be nil")
	}

	cfg := &retryConfig{
		maxRetries:   3,
		initialDelay: 1 * time.Second,
		maxDelay:     30 * time.Second,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	lastErr := fn()
	if lastErr == nil {
		return nil
	}

	delay := cfg.initialDelay
	for attempt := 1; attempt <= cfg.maxRetries; attempt++ {
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("retry aborted during backoff (attempt %d/%d): %w", attempt, cfg.maxRetries, ctx.Err())
		case <-timer.C:
		}

		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
		}

		delay *= 2
		if delay > cfg.maxDelay {
			delay = cfg.maxDelay
		}
	}

	return fmt.Errorf("retry failed after %d attempts: %w", cfg.maxRetries+1, lastErr)
}
