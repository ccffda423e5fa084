package main

// #region imports
import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielpatrickdp/vibes-hook/internal/state"
)

// #endregion

// #region ansi

const (
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiDim    = "\x1b[90m"
	ansiReset  = "\x1b[0m"
)

// #endregion

// #region status-cmd

var statusSession string

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Render the status-line segment for a session's last mood",
	Long: `Reads the session's persisted mood record and prints a one-line
colored segment for embedding in a status line. Prints a dim placeholder
when no record exists or the record is unreadable.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeStore, err := cfg.OpenStore()
		if err != nil {
			fmt.Println(placeholder())
			return nil
		}
		if closeStore != nil {
			defer closeStore()
		}

		fmt.Println(renderStatus(store, statusSession))
		return nil
	},
}

func init() {
	statusCmd.Flags().StringVar(&statusSession, "session", "unknown", "session id to look up")
}

// #endregion

// #region render

func placeholder() string {
	return ansiDim + "--" + ansiReset
}

// renderStatus formats one session's record: the mood colored by label,
// plus a truncated quote of the injected vibe when there was one.
func renderStatus(store state.Store, sessionID string) string {
	rec, ok, err := store.Get(sessionID)
	if err != nil || !ok {
		return placeholder()
	}

	var color string
	switch rec.Mood {
	case "frustrated":
		color = ansiRed
	case "excited":
		color = ansiGreen
	case "confused":
		color = ansiYellow
	default:
		color = ansiDim
	}
	moodPart := color + rec.Mood + ansiReset

	if rec.Injected && rec.Vibe != nil {
		vibe := []rune(*rec.Vibe)
		quoted := string(vibe)
		if len(vibe) > 45 {
			quoted = string(vibe[:45]) + "..."
		}
		return fmt.Sprintf("%s %s%q%s", moodPart, ansiDim, quoted, ansiReset)
	}
	return moodPart
}

// #endregion
