package retry

// Retry with exponential backoff and full jitter for Telegram API calls.
// Retries 429 (honouring retry_after) and 5xx responses; everything else
// fails fast.

import (
	"context"
	"errors"
	"math/rand"
	"net"
	"time"

	logging "frontier-report/internal/infra/log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type Options struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
}

// apiError extracts the Telegram error from err. The library returns
// *tgbotapi.Error, but a value is accepted too.
func apiError(err error) (tgbotapi.Error, bool) {
	var pe *tgbotapi.Error
	if errors.As(err, &pe) && pe != nil {
		return *pe, true
	}
	var ve tgbotapi.Error
	if errors.As(err, &ve) {
		return ve, true
	}
	return tgbotapi.Error{}, false
}

func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if te, ok := apiError(err); ok {
		return te.Code == 429 || te.Code >= 500
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return true
	}
	return false
}

// RetryAfter is the server-requested wait carried by a 429, or 0.
func RetryAfter(err error) time.Duration {
	te, ok := apiError(err)
	if !ok || te.Code != 429 || te.RetryAfter <= 0 {
		return 0
	}
	return time.Duration(te.RetryAfter) * time.Second
}

func clamp(d, max time.Duration) time.Duration {
	if max > 0 && d > max {
		return max
	}
	return d
}

func FullJitterSleep(attempt int, baseDelay, maxDelay time.Duration) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	if baseDelay <= 0 {
		return 0
	}
	maxForAttempt := baseDelay << attempt
	if maxForAttempt <= 0 { // overflow
		maxForAttempt = maxDelay
	}
	maxForAttempt = clamp(maxForAttempt, maxDelay)
	if maxForAttempt <= 0 {
		return 0
	}
	return time.Duration(rand.Int63n(int64(maxForAttempt) + 1))
}

func Do(ctx context.Context, opts Options, fn func() error) error {
	if opts.MaxRetries < 0 {
		opts.MaxRetries = 0
	}
	if opts.BaseDelay <= 0 {
		opts.BaseDelay = 300 * time.Millisecond
	}

	totalAttempts := 1 + opts.MaxRetries
	var lastErr error

	for attempt := 0; attempt < totalAttempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		if !IsRetryable(err) || attempt == totalAttempts-1 {
			return lastErr
		}

		sleep := FullJitterSleep(attempt, opts.BaseDelay, opts.MaxDelay)
		if ra := RetryAfter(err); ra > 0 {
			sleep = clamp(ra, opts.MaxDelay)
		}
		logging.LogWarn("Retrying after error",
			zap.Int("attempt", attempt+1),
			zap.Duration("sleep", sleep),
			zap.Error(err))

		t := time.NewTimer(sleep)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
	}

	return lastErr
}
