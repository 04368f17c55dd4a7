package retry

import (
	"context"
	"fmt"
	"time"
)

// Config holds the configuration for retry logic
type Config struct {
	// MaxAttempts is the total number of attempts, including the first one.
	MaxAttempts int

	// Delay is the pause between attempts. Zero means retry immediately.
	Delay time.Duration
}

// DefaultConfig returns the retry configuration used for remote completion
// calls: three attempts, no delay between them.
func DefaultConfig() Config {
	return Config{
		MaxAttempts: 3,
	}
}

// Checker decides whether a failed attempt should be retried
type Checker func(err error, statusCode int, responseBody []byte) bool

// Func is a single attempt of the operation being retried
type Func func(attempt int) (result interface{}, statusCode int, responseBody []byte, err error)

// Logger defines a function for logging retry attempts
type Logger func(message string, args ...interface{})

// Options configures retry behavior
type Options struct {
	Config  Config
	Checker Checker
	Logger  Logger
	APIName string
}

// Execute runs fn until it succeeds, it fails in a way the checker declines to
// retry, or the attempt budget is spent. A non-retryable error is returned
// as-is; a spent budget yields an *ExhaustedError carrying the last failure.
func Execute(ctx context.Context, opts Options, fn Func) (interface{}, error) {
	maxAttempts := opts.Config.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var lastErr error
	var lastStatusCode int

	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 && opts.Config.Delay > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(opts.Config.Delay):
			}
		}

		result, statusCode, responseBody, err := fn(attempt)
		lastErr = err
		lastStatusCode = statusCode

		if opts.Checker != nil && opts.Checker(err, statusCode, responseBody) {
			if opts.Logger != nil {
				if err != nil {
					opts.Logger("%s API attempt %d/%d failed: %v", opts.APIName, attempt+1, maxAttempts, err)
				} else {
					opts.Logger("%s API attempt %d/%d failed: status %d", opts.APIName, attempt+1, maxAttempts, statusCode)
				}
			}
			continue
		}

		if err == nil {
			if attempt > 0 && opts.Logger != nil {
				opts.Logger("%s API request succeeded on attempt %d/%d", opts.APIName, attempt+1, maxAttempts)
			}
			return result, nil
		}

		// Non-retryable error, return immediately
		return nil, err
	}

	return nil, &ExhaustedError{
		APIName:        opts.APIName,
		Attempts:       maxAttempts,
		LastStatusCode: lastStatusCode,
		LastErr:        lastErr,
	}
}

// ExhaustedError reports that all retry attempts have been spent
type ExhaustedError struct {
	APIName        string
	Attempts       int
	LastStatusCode int
	LastErr        error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("retry attempts exhausted for %s API after %d attempts", e.APIName, e.Attempts)
}

func (e *ExhaustedError) Unwrap() error {
	return e.LastErr
}
