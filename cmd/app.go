package cmd

import (
	"fmt"

	"github.com/ekuzmin/vokab/internal/app"
	"github.com/ekuzmin/vokab/internal/review"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds the session manager and launches the
// TUI, optionally straight into a session.
func runApp(cmd *cobra.Command, session *app.SessionRequest) error {
	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	words := st.WordRepo()
	opts := app.Options{
		Manager:   review.NewManager(words, st.EventRepo()),
		Words:     words,
		LearnerID: localLearnerID,
		Session:   session,
	}
	return app.Run(opts)
}
