// Package wordlist imports vocabulary from spreadsheet files. XLSX and
// CSV share the same column layout; the format is chosen by file
// extension.
package wordlist

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ekuzmin/vokab/internal/store"
)

// Config defines where the importer finds each field. Columns are
// spreadsheet letters; for CSV files "A" is the first field and so on.
type Config struct {
	Path              string
	Sheet             string // XLSX only. Default: "Sheet1"
	TermColumn        string
	TranslationColumn string
	SynonymsColumn    string // optional, ";"-separated cell
	TagsColumn        string // optional, ";"-separated cell
	StartRow          int    // 1-based; default 2 skips a header row
}

// DefaultConfig returns the layout most exported word lists use.
func DefaultConfig(path string) Config {
	return Config{
		Path:              path,
		Sheet:             "Sheet1",
		TermColumn:        "A",
		TranslationColumn: "B",
		SynonymsColumn:    "C",
		TagsColumn:        "D",
		StartRow:          2,
	}
}

// Result summarizes one import run. Row-level problems accumulate in
// Errors instead of aborting the run.
type Result struct {
	Processed int
	Created   int
	Updated   int
	Skipped   int
	Errors    []string
}

// Import reads the file and upserts every row into the word repo. Rows
// whose term already exists update the translation and merge nothing
// else; rows with an empty term or translation are skipped.
func Import(ctx context.Context, repo store.WordRepo, cfg Config) (*Result, error) {
	rows, err := readRows(cfg)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	for i, row := range rows {
		rowNum := i + 1
		if rowNum < cfg.StartRow {
			continue
		}
		result.Processed++

		if err := importRow(ctx, repo, cfg, row, result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", rowNum, err))
		}
	}
	return result, nil
}

func readRows(cfg Config) ([][]string, error) {
	if strings.EqualFold(filepath.Ext(cfg.Path), ".csv") {
		return readCSV(cfg.Path)
	}
	return readXLSX(cfg)
}

func readXLSX(cfg Config) ([][]string, error) {
	f, err := excelize.OpenFile(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer f.Close()

	sheet := cfg.Sheet
	if sheet == "" {
		sheet = "Sheet1"
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	var rows [][]string
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		rows = append(rows, record)
	}
	return rows, nil
}

func importRow(ctx context.Context, repo store.WordRepo, cfg Config, row []string, result *Result) error {
	term := strings.TrimSpace(cell(row, cfg.TermColumn))
	translation := strings.TrimSpace(cell(row, cfg.TranslationColumn))
	if term == "" || translation == "" {
		result.Skipped++
		return nil
	}

	synonyms := splitList(cell(row, cfg.SynonymsColumn))
	tags := splitList(cell(row, cfg.TagsColumn))

	existing, err := repo.FindByTerm(ctx, term)
	switch {
	case err == nil:
		upd := store.WordUpdate{Translation: &translation}
		if len(synonyms) > 0 {
			upd.Synonyms = &synonyms
		}
		if len(tags) > 0 {
			upd.Tags = &tags
		}
		if _, err := repo.Update(ctx, existing.ID, upd); err != nil {
			return err
		}
		result.Updated++
		return nil

	case errors.Is(err, store.ErrNotFound):
		_, err := repo.Create(ctx, &store.Word{
			Term:        term,
			Translation: translation,
			Synonyms:    synonyms,
			Tags:        tags,
		})
		if err != nil {
			return err
		}
		result.Created++
		return nil

	default:
		return err
	}
}

// cell resolves a column letter against a row, returning "" for columns
// beyond the row's width.
func cell(row []string, column string) string {
	if column == "" {
		return ""
	}
	idx, err := excelize.ColumnNameToNumber(column)
	if err != nil || idx-1 >= len(row) {
		return ""
	}
	return row[idx-1]
}

// splitList breaks a ";"-separated cell into trimmed entries.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ";") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
