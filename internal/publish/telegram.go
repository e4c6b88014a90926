// Package publish delivers rendered figures to a Telegram chat.
package publish

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"frontier-report/internal/figures"
	logging "frontier-report/internal/infra/log"
	"frontier-report/internal/infra/retry"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Sender is the part of *tgbotapi.BotAPI the publisher needs.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

var captions = map[string]string{
	figures.FileRegression:     "Fig 1. State-Space Expansion Dynamics vs. Urban Scale",
	figures.FileEfficiencyBox:  "Fig 2. Search Efficiency Distribution by Geographic Sector",
	figures.FileDensity:        "Fig 3. Probability Density of Node Expansion Factor",
	figures.FileEfficiencyCDF:  "Fig 4. Empirical Cumulative Distribution of Algorithmic Savings",
	figures.FileGeospatial:     "Fig 5. The Gomti Riverine Bottleneck Paradox",
	figures.FileTimeComplexity: "Fig 6. A* Performance Profile: Execution Time vs. Euclidean Magnitude",
}

// Caption returns the caption used for a figure file.
func Caption(path string) string {
	name := filepath.Base(path)
	if c, ok := captions[name]; ok {
		return c
	}
	return name
}

type Options struct {
	ChatID        int64
	RatePerSecond float64
	MaxRetries    int
	// BaseDelay and MaxDelay bound the retry backoff; zero keeps the defaults.
	BaseDelay time.Duration
	MaxDelay  time.Duration
}

type Publisher struct {
	sender         Sender
	chatID         int64
	rateLimiter    *rate.Limiter
	circuitBreaker *gobreaker.CircuitBreaker
	retry          retry.Options
}

func NewPublisher(sender Sender, opts Options) *Publisher {
	if opts.RatePerSecond <= 0 {
		opts.RatePerSecond = 1
	}
	if opts.BaseDelay <= 0 {
		opts.BaseDelay = time.Second
	}
	if opts.MaxDelay <= 0 {
		opts.MaxDelay = 30 * time.Second
	}

	circuitBreaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "TelegramPublish",
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.LogWarn("Circuit breaker state changed",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})

	return &Publisher{
		sender:         sender,
		chatID:         opts.ChatID,
		rateLimiter:    rate.NewLimiter(rate.Limit(opts.RatePerSecond), 1),
		circuitBreaker: circuitBreaker,
		retry: retry.Options{
			MaxRetries: opts.MaxRetries,
			BaseDelay:  opts.BaseDelay,
			MaxDelay:   opts.MaxDelay,
		},
	}
}

// NewTelegramPublisher connects to the Bot API with token.
func NewTelegramPublisher(token string, opts Options) (*Publisher, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	logging.LogInfo("Telegram bot authorized", zap.String("username", bot.Self.UserName))
	return NewPublisher(bot, opts), nil
}

// Publish sends summary as a text message (when not empty) followed by one
// photo per path. It keeps going past a failed photo and returns the joined
// errors, but stops once the circuit breaker opens.
func (p *Publisher) Publish(ctx context.Context, summary string, paths []string) (int, error) {
	if summary != "" {
		if err := p.send(ctx, tgbotapi.NewMessage(p.chatID, summary)); err != nil {
			return 0, fmt.Errorf("failed to send summary: %w", err)
		}
	}

	sent := 0
	var errs []error
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			logging.LogError("Figure file does not exist", zap.String("path", path), zap.Error(err))
			errs = append(errs, err)
			continue
		}

		photo := tgbotapi.NewPhoto(p.chatID, tgbotapi.FilePath(path))
		photo.Caption = Caption(path)

		if err := p.send(ctx, photo); err != nil {
			logging.LogError("Failed to send figure", zap.String("path", path), zap.Error(err))
			errs = append(errs, fmt.Errorf("%s: %w", filepath.Base(path), err))
			if errors.Is(err, gobreaker.ErrOpenState) || ctx.Err() != nil {
				break
			}
			continue
		}
		sent++
		logging.LogSuccess("Figure sent", zap.String("path", path), zap.Int64("chat_id", p.chatID))
	}
	return sent, errors.Join(errs...)
}

func (p *Publisher) send(ctx context.Context, c tgbotapi.Chattable) error {
	return retry.Do(ctx, p.retry, func() error {
		if err := p.rateLimiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter wait failed: %w", err)
		}
		_, err := p.circuitBreaker.Execute(func() (interface{}, error) {
			return p.sender.Send(c)
		})
		return err
	})
}
