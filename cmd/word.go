package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ekuzmin/vokab/internal/store"
	"github.com/spf13/cobra"
)

var wordCmd = &cobra.Command{
	Use:   "word",
	Short: "Manage vocabulary words",
}

var wordAddCmd = &cobra.Command{
	Use:   "add <term> <translation>",
	Short: "Add a word to the vocabulary",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		synonyms, _ := cmd.Flags().GetStringSlice("synonym")
		tags, _ := cmd.Flags().GetStringSlice("tag")
		notes, _ := cmd.Flags().GetString("notes")

		repo := st.WordRepo()
		ctx := cmd.Context()

		if _, err := repo.FindByTerm(ctx, args[0]); err == nil {
			return fmt.Errorf("word %q already exists", args[0])
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		w, err := repo.Create(ctx, &store.Word{
			Term:        args[0],
			Translation: args[1],
			Synonyms:    synonyms,
			Tags:        tags,
			Notes:       notes,
		})
		if err != nil {
			return fmt.Errorf("add word: %w", err)
		}
		fmt.Printf("Added %q -> %q (id %d)\n", w.Term, w.Translation, w.ID)
		return nil
	},
}

var wordListCmd = &cobra.Command{
	Use:   "list",
	Short: "List vocabulary words",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		words, err := st.WordRepo().List(cmd.Context())
		if err != nil {
			return fmt.Errorf("list words: %w", err)
		}

		tag, _ := cmd.Flags().GetString("tag")
		shown := 0
		for _, w := range words {
			if tag != "" && !hasTag(w, tag) {
				continue
			}
			shown++
			status := fmt.Sprintf("L%d", w.MasteryLevel)
			if w.Retired() {
				status = "retired"
			}
			line := fmt.Sprintf("%4d  %-20s %-24s %s", w.ID, w.Term, w.Translation, status)
			if len(w.Synonyms) > 0 {
				line += "  (" + strings.Join(w.Synonyms, ", ") + ")"
			}
			fmt.Println(line)
		}
		if shown == 0 {
			fmt.Println("No words found.")
		}
		return nil
	},
}

var wordRemoveCmd = &cobra.Command{
	Use:   "remove <term>",
	Short: "Remove a word from the vocabulary",
	Args:  cobra.ExactArgs(1),
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
		if err := repo.Delete(ctx, w.ID); err != nil {
			return fmt.Errorf("remove word: %w", err)
		}
		fmt.Printf("Removed %q\n", w.Term)
		return nil
	},
}

func hasTag(w store.Word, tag string) bool {
	for _, t := range w.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

func init() {
	wordAddCmd.Flags().StringSlice("synonym", nil, "Accepted synonym (repeatable)")
	wordAddCmd.Flags().StringSlice("tag", nil, "Tag (repeatable)")
	wordAddCmd.Flags().String("notes", "", "Free-form notes")
	wordListCmd.Flags().String("tag", "", "Only list words carrying this tag")

	wordCmd.AddCommand(wordAddCmd)
	wordCmd.AddCommand(wordListCmd)
	wordCmd.AddCommand(wordRemoveCmd)
}
