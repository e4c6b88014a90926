package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"frontier-report/internal/infra/log"
	"frontier-report/internal/publish"
	"frontier-report/internal/report"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Render the figures and send them to Telegram",
	Long:  `Render all six figures, then send a run summary and each figure as a photo to telegram.chat_id.`,
	RunE:  runPublish,
}

func runPublish(cmd *cobra.Command, args []string) error {
	if err := cfg.Telegram.Validate(); err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	res, err := report.Generate(cfg)
	if err != nil {
		return err
	}

	publisher, err := publish.NewTelegramPublisher(cfg.Telegram.BotToken, publish.Options{
		ChatID:        cfg.Telegram.ChatID,
		RatePerSecond: cfg.Telegram.RatePerSecond,
		MaxRetries:    cfg.Telegram.MaxRetries,
	})
	if err != nil {
		return err
	}

	sent, err := publisher.Publish(ctx, res.Summary(), res.Figures)
	if err != nil {
		log.LogError("Some figures were not sent", zap.Int("sent", sent), zap.Error(err))
		return err
	}
	log.LogSuccess("Figures published", zap.Int("sent", sent), zap.Int64("chat_id", cfg.Telegram.ChatID))
	return nil
}
