package main

// #region imports
import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/danielpatrickdp/vibes-hook/internal/golden"
	"github.com/danielpatrickdp/vibes-hook/internal/mood"
)

// #endregion

// #region regress-cmd

var goldenPath string

var regressCmd = &cobra.Command{
	Use:   "regress",
	Short: "Replay the golden cases through the classifier",
	Long: `Runs every golden fixture (line-delimited JSON: {"msg", "expected",
"note"}) through the classifier and reports divergences. Exits 1 when any
case diverges. When a message is misclassified in the wild: add a case,
fix the rules, re-run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cases, err := golden.LoadCases(goldenPath)
		if err != nil {
			return err
		}

		report := golden.Run(cases, func(text string) string {
			return string(mood.Classify(text))
		})
		fmt.Print(report.Format())

		if !report.OK() {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	regressCmd.Flags().StringVar(&goldenPath, "golden", "vibes_golden.jsonl", "path to golden JSONL fixtures")
}

// #endregion
