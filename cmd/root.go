package cmd

import (
	"github.com/ekuzmin/vokab/internal/store"
	"github.com/spf13/cobra"
)

// localLearnerID identifies the single local learner. The session
// manager scopes everything by learner id; the CLI always supplies
// this one.
const localLearnerID = "local"

var rootCmd = &cobra.Command{
	Use:   "vokab",
	Short: "Terminal vocabulary trainer",
	Long:  "Vokab — spaced-repetition vocabulary trainer for the terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, nil)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides VOKAB_DB env var)")

	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(trainCmd)
	rootCmd.AddCommand(wordCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(enrichCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then VOKAB_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore resolves the DB path and opens the store.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return store.Open(dbPath)
}
