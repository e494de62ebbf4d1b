package cmd

import (
	"fmt"

	"github.com/ekuzmin/vokab/internal/wordlist"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import words from an XLSX or CSV word list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		cfg := wordlist.DefaultConfig(args[0])
		if v, _ := cmd.Flags().GetString("sheet"); v != "" {
			cfg.Sheet = v
		}
		if v, _ := cmd.Flags().GetString("term-col"); v != "" {
			cfg.TermColumn = v
		}
		if v, _ := cmd.Flags().GetString("translation-col"); v != "" {
			cfg.TranslationColumn = v
		}
		if v, _ := cmd.Flags().GetString("synonyms-col"); v != "" {
			cfg.SynonymsColumn = v
		}
		if v, _ := cmd.Flags().GetString("tags-col"); v != "" {
			cfg.TagsColumn = v
		}
		if v, _ := cmd.Flags().GetInt("start-row"); v > 0 {
			cfg.StartRow = v
		}

		result, err := wordlist.Import(cmd.Context(), st.WordRepo(), cfg)
		if err != nil {
			return fmt.Errorf("import %s: %w", args[0], err)
		}

		fmt.Printf("Processed %d rows: %d created, %d updated, %d skipped\n",
			result.Processed, result.Created, result.Updated, result.Skipped)
		for _, e := range result.Errors {
			fmt.Println("  warning:", e)
		}
		return nil
	},
}

func init() {
	importCmd.Flags().String("sheet", "", "XLSX sheet name (default Sheet1)")
	importCmd.Flags().String("term-col", "", "Term column letter (default A)")
	importCmd.Flags().String("translation-col", "", "Translation column letter (default B)")
	importCmd.Flags().String("synonyms-col", "", "Synonyms column letter (default C)")
	importCmd.Flags().String("tags-col", "", "Tags column letter (default D)")
	importCmd.Flags().Int("start-row", 0, "First data row, 1-based (default 2)")
}
