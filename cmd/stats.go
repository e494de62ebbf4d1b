package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// recentAccuracyWindow is how many latest attempts feed the accuracy figure.
const recentAccuracyWindow = 100

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show vocabulary statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		words := st.WordRepo()

		byMastery, err := words.CountByMastery(ctx)
		if err != nil {
			return fmt.Errorf("count words: %w", err)
		}
		total := 0
		for _, n := range byMastery {
			total += n
		}
		due, err := words.DueCount(ctx, time.Now())
		if err != nil {
			return fmt.Errorf("count due words: %w", err)
		}
		accuracy, err := st.EventRepo().RecentAccuracy(ctx, recentAccuracyWindow)
		if err != nil {
			return fmt.Errorf("recent accuracy: %w", err)
		}

		fmt.Printf("Words:    %d\n", total)
		fmt.Printf("Due now:  %d\n", due)
		fmt.Printf("Retired:  %d\n", byMastery[5])
		fmt.Println()
		fmt.Println("By mastery level:")
		labels := []string{"new", "learning", "familiar", "known", "strong", "retired"}
		for level := 0; level <= 5; level++ {
			fmt.Printf("  L%d %-9s %d\n", level, labels[level], byMastery[level])
		}
		fmt.Println()
		fmt.Printf("Recent accuracy (last %d answers): %.0f%%\n",
			recentAccuracyWindow, accuracy*100)
		return nil
	},
}
