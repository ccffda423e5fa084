package main

// #region imports
import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/danielpatrickdp/vibes-hook/internal/config"
	"github.com/danielpatrickdp/vibes-hook/internal/hook"
	"github.com/danielpatrickdp/vibes-hook/internal/inject"
	"github.com/danielpatrickdp/vibes-hook/internal/state"
)

// #endregion

// #region hook-cmd

var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "Read a prompt envelope from stdin and emit steering context",
	Long: `Reads the host's JSON envelope ({"prompt": ..., "session_id": ...})
from stdin, classifies the prompt's mood, and writes an additional-context
envelope to stdout when injecting. Always exits 0: a hook that fails
breaks the host's interactive flow.`,
	Run: func(cmd *cobra.Command, args []string) {
		store, closeStore := openStoreOrNil(cfg, logger)
		if closeStore != nil {
			defer closeStore()
		}

		policy := inject.Policy{SprinkleProbability: cfg.SprinkleProbability}
		runner := hook.NewRunner(store, policy, inject.SystemRand(), logger)
		runner.Run(os.Stdin, os.Stdout)
	},
}

// openStoreOrNil degrades to no persistence rather than failing the host.
func openStoreOrNil(c config.Config, log *zap.Logger) (state.Store, func() error) {
	store, closeStore, err := c.OpenStore()
	if err != nil {
		log.Debug("open state store failed, persisting nothing", zap.Error(err))
		return nil, nil
	}
	return store, closeStore
}

// #endregion
