package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ekuzmin/vokab/internal/enrich"
	"github.com/ekuzmin/vokab/internal/llm"
	"github.com/ekuzmin/vokab/internal/store"
	"github.com/spf13/cobra"
)

var enrichCmd = &cobra.Command{
	Use:   "enrich <term>",
	Short: "Suggest synonyms and an example sentence via an LLM",
	Long: "Asks the configured LLM provider for synonyms and an example sentence.\n" +
		"Suggestions are printed; pass --apply to merge them into the word.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		repo := st.WordRepo()

		w, err := repo.FindByTerm(ctx, args[0])
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("word %q not found", args[0])
			}
			return err
		}

		cfg, err := llm.ResolveConfig()
		if err != nil {
			return err
		}
		provider, err := llm.NewProvider(ctx, cfg, st.EventRepo())
		if err != nil {
			return fmt.Errorf("create LLM provider: %w", err)
		}

		svc := enrich.NewService(provider, repo)
		sug, err := svc.Suggest(ctx, w.Term, w.Translation)
		if err != nil {
			return fmt.Errorf("enrich %q: %w", w.Term, err)
		}

		fmt.Printf("%s -> %s\n", w.Term, w.Translation)
		if len(sug.Synonyms) > 0 {
			fmt.Println("  synonyms:", strings.Join(sug.Synonyms, ", "))
		}
		if sug.Example != "" {
			fmt.Println("  example: ", sug.Example)
			if sug.ExampleTranslation != "" {
				fmt.Println("           ", sug.ExampleTranslation)
			}
		}

		apply, _ := cmd.Flags().GetBool("apply")
		if !apply {
			fmt.Println("\nRun again with --apply to save these suggestions.")
			return nil
		}

		updated, err := svc.Apply(ctx, w.ID, sug)
		if err != nil {
			return fmt.Errorf("apply suggestions: %w", err)
		}
		fmt.Printf("Saved. %q now accepts: %s\n", updated.Term,
			strings.Join(append([]string{updated.Translation}, updated.Synonyms...), ", "))
		return nil
	},
}

func init() {
	enrichCmd.Flags().Bool("apply", false, "Merge the suggestions into the stored word")
}
