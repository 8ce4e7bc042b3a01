package api

import (
	"context"
	"fmt"
	"time"
)

const (
	DefaultMaxAttempts  = 3
	DefaultInitialDelay = time.Second
)

// Retry re-invokes op until it succeeds, waiting between attempts with an
// exponentially doubling delay. The final failure is propagated once
// maxAttempts is exhausted. The wait is cut short when ctx is done.
func Retry(ctx context.Context, maxAttempts int, initialDelay time.Duration, op func() error) error {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var err error
	delay := initialDelay

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err = op(); err == nil {
			return nil
		}

		if attempt == maxAttempts {
			break
		}

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return fmt.Errorf("retry cancelled: %w", ctx.Err())
		}
		delay *= 2
	}

	return fmt.Errorf("failed after %d attempts: %w", maxAttempts, err)
}
