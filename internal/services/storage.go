package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"alfredoptarigan/student-profile-analyzer/internal/logger"
	"alfredoptarigan/student-profile-analyzer/internal/models"
)

const resultFileSuffix = "_analysis.json"

var nameSanitizer = strings.NewReplacer(" ", "_", "/", "_", `\`, "_")

// SanitizeName maps a student's display name to its storage key. Distinct
// names can collide ("Jane Doe" and "Jane/Doe" both become "Jane_Doe").
// Sanitizing a key again returns it unchanged.
func SanitizeName(name string) string {
	return nameSanitizer.Replace(name)
}

type ResultStore interface {
	Save(record models.StoredAnalysis) (string, error)
	Load(name string) (*models.StoredAnalysis, error)
	List() (models.ResultListing, error)
	EnsureResultsDir() error
}

type resultStore struct {
	resultsPath string
}

func NewResultStore(resultsPath string) ResultStore {
	return &resultStore{
		resultsPath: resultsPath,
	}
}

func (s *resultStore) EnsureResultsDir() error {
	if err := os.MkdirAll(s.resultsPath, 0755); err != nil {
		return &StorageError{Op: "create results directory", Path: s.resultsPath, Err: err}
	}

	return nil
}

// Save overwrites the record for the student. The file is written to a
// temporary name and renamed so readers never see a partial record.
func (s *resultStore) Save(record models.StoredAnalysis) (string, error) {
	if err := s.EnsureResultsDir(); err != nil {
		return "", err
	}

	filePath := s.filePath(record.StudentName)

	data, err := json.MarshalIndent(record, "", "    ")
	if err != nil {
		return "", &StorageError{Op: "encode", Path: filePath, Err: err}
	}

	tmp, err := os.CreateTemp(s.resultsPath, ".tmp-*")
	if err != nil {
		return "", &StorageError{Op: "create", Path: filePath, Err: err}
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", &StorageError{Op: "write", Path: filePath, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return "", &StorageError{Op: "write", Path: filePath, Err: err}
	}

	if err := os.Rename(tmp.Name(), filePath); err != nil {
		return "", &StorageError{Op: "rename", Path: filePath, Err: err}
	}

	return filePath, nil
}

// Load reads the record stored for name (a display name or its key).
func (s *resultStore) Load(name string) (*models.StoredAnalysis, error) {
	filePath := s.filePath(name)

	data, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrResultNotFound
		}
		return nil, &StorageError{Op: "read", Path: filePath, Err: err}
	}

	var record models.StoredAnalysis
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, &StorageError{Op: "decode", Path: filePath, Err: err}
	}

	return &record, nil
}

// List returns the summaries of every readable record. Unreadable or
// malformed files are skipped and counted.
func (s *resultStore) List() (models.ResultListing, error) {
	listing := models.ResultListing{Results: []models.StoredAnalysisSummary{}}

	if err := s.EnsureResultsDir(); err != nil {
		return listing, err
	}

	entries, err := os.ReadDir(s.resultsPath)
	if err != nil {
		return listing, &StorageError{Op: "list", Path: s.resultsPath, Err: err}
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), resultFileSuffix) {
			continue
		}

		summary, err := s.readSummary(entry.Name())
		if err != nil {
			logger.Log.Warnf("⚠️  Skipping unreadable result %s: %v", entry.Name(), err)
			listing.Skipped++
			continue
		}
		listing.Results = append(listing.Results, summary)
	}

	sort.Slice(listing.Results, func(i, j int) bool {
		return listing.Results[i].Filename < listing.Results[j].Filename
	})
	listing.Total = len(listing.Results)

	return listing, nil
}

func (s *resultStore) readSummary(filename string) (models.StoredAnalysisSummary, error) {
	data, err := os.ReadFile(filepath.Join(s.resultsPath, filename))
	if err != nil {
		return models.StoredAnalysisSummary{}, err
	}

	summary := models.StoredAnalysisSummary{Filename: filename}
	if err := json.Unmarshal(data, &summary); err != nil {
		return models.StoredAnalysisSummary{}, err
	}
	if summary.StudentName == "" {
		return models.StoredAnalysisSummary{}, fmt.Errorf("missing student_name")
	}

	return summary, nil
}

func (s *resultStore) filePath(name string) string {
	return filepath.Join(s.resultsPath, SanitizeName(name)+resultFileSuffix)
}
