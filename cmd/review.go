package cmd

import (
	"fmt"

	"github.com/ekuzmin/vokab/internal/app"
	"github.com/ekuzmin/vokab/internal/review"
	"github.com/ekuzmin/vokab/internal/store"
	"github.com/spf13/cobra"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Start the daily review session",
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := modeFromFlag(cmd)
		if err != nil {
			return err
		}
		return runApp(cmd, &app.SessionRequest{
			Kind:   review.TypeDaily,
			Mode:   mode,
			Filter: store.WordFilter{MaxMastery: -1},
		})
	},
}

func init() {
	reviewCmd.Flags().String("mode", "recognition", "Answer mode: recognition or typed")
}

// modeFromFlag maps the --mode flag to a session mode.
func modeFromFlag(cmd *cobra.Command) (review.Mode, error) {
	raw, _ := cmd.Flags().GetString("mode")
	switch raw {
	case "recognition", "":
		return review.ModeRecognition, nil
	case "typed":
		return review.ModeTranslationInput, nil
	case "reverse":
		return review.ModeReverseInput, nil
	default:
		return "", fmt.Errorf("unknown mode %q (want recognition, typed or reverse)", raw)
	}
}
