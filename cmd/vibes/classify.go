package main

// #region imports
import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danielpatrickdp/vibes-hook/internal/mood"
)

// #endregion

// #region classify-cmd

var classifyScores bool

var classifyCmd = &cobra.Command{
	Use:   "classify [text...]",
	Short: "Print the mood label for a message",
	Long: `Classifies a message given as arguments (or on stdin when no
arguments are given) and prints the label. With --scores, also prints
each pass's score for debugging rule interactions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")
		if text == "" {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			text = string(data)
		}

		fmt.Println(mood.Classify(text))
		if classifyScores {
			b := mood.Score(text)
			fmt.Printf("  bewilderment=%v frustration=%.1f excitement=%.1f confusion=%.1f\n",
				b.Bewilderment, b.Frustration, b.Excitement, b.Confusion)
		}
		return nil
	},
}

func init() {
	classifyCmd.Flags().BoolVar(&classifyScores, "scores", false, "print per-pass scores")
}

// #endregion
