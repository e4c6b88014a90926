package commands

import (
	"frontier-report/internal/infra/log"
	"frontier-report/internal/report"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the six figures from the trials CSV",
	RunE:  runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	res, err := report.Generate(cfg)
	if err != nil {
		return err
	}
	log.LogSuccess("All figures generated",
		zap.String("dir", cfg.Output.Dir),
		zap.Int("figures", len(res.Figures)),
		zap.Int64("duration_ms", res.Duration.Milliseconds()))
	return nil
}
