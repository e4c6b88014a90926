package commands

// Root command for the Cobra CLI
// Running the binary without a subcommand renders every figure
// Registers the render, sample and publish subcommands

import (
	"frontier-report/internal/infra/config"
	"frontier-report/internal/infra/log"

	"github.com/spf13/cobra"
)

// cfg is loaded once per invocation in PersistentPreRunE.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "frontier-report",
	Short: "Dijkstra vs A* comparison figures for the Lucknow road network",
	Long: `frontier-report reads a CSV of Dijkstra vs A* trials and renders six
publication figures, including a synthetic Gomti river frontier simulation.`,
	Version:           "1.0.0",
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	RunE:              runRender,
}

func Execute() error {
	defer log.Sync()
	return rootCmd.Execute()
}

func loadConfig(cmd *cobra.Command, args []string) error {
	loaded, err := config.LoadConfig(cmd.Flags())
	if err != nil {
		return err
	}
	if err := log.Init(loaded.Log.Dir); err != nil {
		return err
	}
	cfg = loaded
	return nil
}

func init() {
	config.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(sampleCmd)
	rootCmd.AddCommand(publishCmd)
}
