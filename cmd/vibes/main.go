package main

// #region imports
import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/danielpatrickdp/vibes-hook/internal/config"
	"github.com/danielpatrickdp/vibes-hook/internal/logging"
)

// #endregion

// #region globals

var (
	configPath string
	verbose    bool

	cfg    config.Config
	logger *zap.Logger
)

// #endregion

// #region root

var rootCmd = &cobra.Command{
	Use:   "vibes",
	Short: "Sentiment-aware emotional stabilizer hook for an AI coding assistant",
	Long: `vibes classifies each user prompt into frustrated/excited/confused/neutral
using deterministic heuristics derived from analysis of ~1,765 real user
messages, then decides whether to inject a short steering message into the
assistant's context.

Run the "hook" subcommand from the host's UserPromptSubmit hook.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = logging.NewOrNop(verbose)

		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if verbose {
			cfg.Debug = true
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// #endregion

// #region main

func main() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config (optional)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")

	rootCmd.AddCommand(hookCmd, classifyCmd, regressCmd, statusCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// #endregion
