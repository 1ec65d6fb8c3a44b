package services

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/student-profile-analyzer/internal/models"
)

func storedRecord(name, classification string) models.StoredAnalysis {
	return models.StoredAnalysis{
		AnalysisID:      "3f0c7a52-4d7e-4f7a-9f57-0d8f7f1f6a10",
		StudentName:     name,
		Classification:  classification,
		Recommendations: []string{"Build a portfolio of relevant projects"},
		ProfileSummary:  NewProfileSummarizer().Summarize(models.StudentProfile{PersonalInformation: models.PersonalInformation{FullName: name}}),
		Timestamp:       models.NewTimestamp(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)),
		AnalysisVersion: "1.0.0",
	}
}

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "Jane_Doe", SanitizeName("Jane Doe"))
	assert.Equal(t, "Jane_Doe", SanitizeName("Jane/Doe"))
	assert.Equal(t, "a_b_c", SanitizeName(`a\b c`))
	assert.Equal(t, SanitizeName("Jane Doe"), SanitizeName(SanitizeName("Jane Doe")))
}

func TestResultStore_SaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	store := NewResultStore(dir)

	path, err := store.Save(storedRecord("Jane Doe", "Data Scientist"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Jane_Doe_analysis.json"), path)

	loaded, err := store.Load("Jane Doe")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", loaded.StudentName)
	assert.Equal(t, "Data Scientist", loaded.Classification)
	assert.Equal(t, "1.0.0", loaded.AnalysisVersion)
	assert.True(t, loaded.Timestamp.Equal(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)))

	byKey, err := store.Load("Jane_Doe")
	require.NoError(t, err)
	assert.Equal(t, loaded, byKey)
}

func TestResultStore_SaveWritesIndentedJSON(t *testing.T) {
	dir := t.TempDir()
	store := NewResultStore(dir)

	path, err := store.Save(storedRecord("Jane Doe", "Data Scientist"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n    \"student_name\": \"Jane Doe\"")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files left behind")
}

func TestResultStore_CollidingNamesOverwrite(t *testing.T) {
	store := NewResultStore(t.TempDir())

	_, err := store.Save(storedRecord("Jane Doe", "Data Scientist"))
	require.NoError(t, err)
	_, err = store.Save(storedRecord("Jane/Doe", "Blockchain Developer"))
	require.NoError(t, err)

	loaded, err := store.Load("Jane Doe")
	require.NoError(t, err)
	assert.Equal(t, "Jane/Doe", loaded.StudentName)
	assert.Equal(t, "Blockchain Developer", loaded.Classification)
}

func TestResultStore_LoadMissing(t *testing.T) {
	store := NewResultStore(t.TempDir())

	_, err := store.Load("Nobody")

	assert.ErrorIs(t, err, ErrResultNotFound)
}

func TestResultStore_LoadCorrupt(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Broken_analysis.json"), []byte("{"), 0o644))

	_, err := NewResultStore(dir).Load("Broken")

	var storageErr *StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "decode", storageErr.Op)
}

func TestResultStore_ListSkipsUnreadable(t *testing.T) {
	dir := t.TempDir()
	store := NewResultStore(dir)

	_, err := store.Save(storedRecord("Zed Quinn", "Data Scientist"))
	require.NoError(t, err)
	_, err = store.Save(storedRecord("Amara Okafor", "AI/Machine Learning Engineer"))
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "Broken_analysis.json"), []byte("not json"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Nameless_analysis.json"), []byte(`{"classification":"x"}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	listing, err := store.List()
	require.NoError(t, err)

	assert.Equal(t, 2, listing.Total)
	assert.Equal(t, 2, listing.Skipped)
	require.Len(t, listing.Results, 2)
	assert.Equal(t, "Amara_Okafor_analysis.json", listing.Results[0].Filename)
	assert.Equal(t, "AI/Machine Learning Engineer", listing.Results[0].Classification)
	assert.Equal(t, "Zed_Quinn_analysis.json", listing.Results[1].Filename)
}

func TestResultStore_ListEmpty(t *testing.T) {
	store := NewResultStore(filepath.Join(t.TempDir(), "nested", "results"))

	listing, err := store.List()
	require.NoError(t, err)

	assert.NotNil(t, listing.Results)
	assert.Zero(t, listing.Total)
	assert.Zero(t, listing.Skipped)
}

func TestResultStore_ReadsZonelessISOTimestamps(t *testing.T) {
	dir := t.TempDir()
	record := `{
    "analysis_id": "a1",
    "student_name": "Jane Doe",
    "classification": "Data Scientist",
    "recommendations": ["Build a portfolio of relevant projects"],
    "profile_summary": {"personal_info": {"name": "Jane Doe"}},
    "timestamp": "2024-05-01T10:00:00.123456",
    "analysis_version": "1.0.0"
}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Jane_Doe_analysis.json"), []byte(record), 0o644))
	store := NewResultStore(dir)

	want := time.Date(2024, 5, 1, 10, 0, 0, 123456000, time.UTC)

	listing, err := store.List()
	require.NoError(t, err)
	assert.Equal(t, 1, listing.Total)
	assert.Zero(t, listing.Skipped)
	require.Len(t, listing.Results, 1)
	assert.True(t, listing.Results[0].Timestamp.Equal(want))

	loaded, err := store.Load("Jane Doe")
	require.NoError(t, err)
	assert.Equal(t, "Data Scientist", loaded.Classification)
	assert.True(t, loaded.Timestamp.Equal(want))
}
