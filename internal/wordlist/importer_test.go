package wordlist

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ekuzmin/vokab/internal/store"
)

type fakeRepo struct {
	byTerm  map[string]*store.Word
	created []store.Word
	updated []store.WordUpdate
	nextID  int
}

func newFakeRepo(existing ...store.Word) *fakeRepo {
	f := &fakeRepo{byTerm: make(map[string]*store.Word), nextID: 100}
	for i := range existing {
		w := existing[i]
		f.byTerm[w.Term] = &w
	}
	return f
}

func (f *fakeRepo) FindByTerm(ctx context.Context, term string) (*store.Word, error) {
	if w, ok := f.byTerm[term]; ok {
		return w, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeRepo) Create(ctx context.Context, w *store.Word) (*store.Word, error) {
	f.nextID++
	w.ID = f.nextID
	f.created = append(f.created, *w)
	f.byTerm[w.Term] = w
	return w, nil
}

func (f *fakeRepo) Update(ctx context.Context, id int, upd store.WordUpdate) (*store.Word, error) {
	f.updated = append(f.updated, upd)
	for _, w := range f.byTerm {
		if w.ID == id {
			return w, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeRepo) GetByID(ctx context.Context, id int) (*store.Word, error) {
	return nil, store.ErrNotFound
}
func (f *fakeRepo) List(ctx context.Context) ([]store.Word, error) { return nil, nil }
func (f *fakeRepo) Delete(ctx context.Context, id int) error       { return nil }
func (f *fakeRepo) DueWords(ctx context.Context, now time.Time, limit int) ([]store.Word, error) {
	return nil, nil
}
func (f *fakeRepo) TrainingWords(ctx context.Context, filter store.WordFilter, limit int) ([]store.Word, error) {
	return nil, nil
}
func (f *fakeRepo) ApplyReview(ctx context.Context, id int, upd store.ReviewUpdate) error {
	return nil
}
func (f *fakeRepo) RecordAttempt(ctx context.Context, id int, res store.InputResult) error {
	return nil
}
func (f *fakeRepo) CountByMastery(ctx context.Context) (map[int]int, error) { return nil, nil }
func (f *fakeRepo) DueCount(ctx context.Context, now time.Time) (int, error) {
	return 0, nil
}

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestImportCSV(t *testing.T) {
	path := writeTempCSV(t,
		"term,translation,synonyms,tags\n"+
			"диван,couch,sofa; settee,furniture\n"+
			"снег,snow,,weather\n"+
			",missing term,,\n")
	repo := newFakeRepo()

	res, err := Import(context.Background(), repo, DefaultConfig(path))
	require.NoError(t, err)

	assert.Equal(t, 3, res.Processed)
	assert.Equal(t, 2, res.Created)
	assert.Equal(t, 1, res.Skipped)
	assert.Empty(t, res.Errors)

	w := repo.byTerm["диван"]
	require.NotNil(t, w, "диван not created")
	assert.Equal(t, []string{"sofa", "settee"}, w.Synonyms)
	assert.Equal(t, []string{"furniture"}, w.Tags)
}

func TestImportUpdatesExisting(t *testing.T) {
	path := writeTempCSV(t,
		"term,translation\n"+
			"снег,snowfall\n")
	repo := newFakeRepo(store.Word{ID: 5, Term: "снег", Translation: "snow"})

	res, err := Import(context.Background(), repo, DefaultConfig(path))
	require.NoError(t, err)

	assert.Equal(t, 1, res.Updated)
	assert.Equal(t, 0, res.Created)
	require.Len(t, repo.updated, 1)
	require.NotNil(t, repo.updated[0].Translation)
	assert.Equal(t, "snowfall", *repo.updated[0].Translation)
}

func TestImportXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.xlsx")

	f := excelize.NewFile()
	rows := [][]any{
		{"term", "translation", "synonyms", "tags"},
		{"дождь", "rain", "rainfall", "weather"},
		{"ветер", "wind", "", ""},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	require.NoError(t, f.SaveAs(path))

	repo := newFakeRepo()
	res, err := Import(context.Background(), repo, DefaultConfig(path))
	require.NoError(t, err)

	assert.Equal(t, 2, res.Created)
	require.NotNil(t, repo.byTerm["дождь"])
	assert.Equal(t, []string{"rainfall"}, repo.byTerm["дождь"].Synonyms)
}

func TestImportMissingFile(t *testing.T) {
	_, err := Import(context.Background(), newFakeRepo(), DefaultConfig("/nonexistent/words.csv"))
	require.Error(t, err)
}
