package cmd

import (
	"github.com/ekuzmin/vokab/internal/app"
	"github.com/ekuzmin/vokab/internal/review"
	"github.com/ekuzmin/vokab/internal/store"
	"github.com/spf13/cobra"
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Start a free training session (never touches the schedule)",
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := modeFromFlag(cmd)
		if err != nil {
			return err
		}
		tags, _ := cmd.Flags().GetStringSlice("tag")
		maxMastery, _ := cmd.Flags().GetInt("mastery")
		return runApp(cmd, &app.SessionRequest{
			Kind: review.TypeTraining,
			Mode: mode,
			Filter: store.WordFilter{
				Tags:       tags,
				MaxMastery: maxMastery,
			},
		})
	},
}

func init() {
	trainCmd.Flags().String("mode", "recognition", "Answer mode: recognition or typed")
	trainCmd.Flags().StringSlice("tag", nil, "Only train words carrying one of these tags")
	trainCmd.Flags().Int("mastery", -1, "Only train words at or below this mastery level")
}
