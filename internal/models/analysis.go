package models

import (
	"time"
)

type AnalysisStatus string

const (
	StatusSuccess AnalysisStatus = "success"
	StatusError   AnalysisStatus = "error"
)

// AnalysisStage is the furthest pipeline step a student reached.
type AnalysisStage string

const (
	StageReceived    AnalysisStage = "received"
	StageSummarized  AnalysisStage = "summarized"
	StageClassified  AnalysisStage = "classified"
	StageRecommended AnalysisStage = "recommended"
	StageSaved       AnalysisStage = "saved"
	StageSucceeded   AnalysisStage = "succeeded"
)

// AnalysisResult is the outcome of analysing one student. On failure Stage is
// the last step that completed and Error carries the reason.
type AnalysisResult struct {
	AnalysisID      string          `json:"analysis_id"`
	StudentName     string          `json:"student_name"`
	Classification  string          `json:"classification,omitempty"`
	Recommendations []string        `json:"recommendations"`
	ProfileSummary  *ProfileSummary `json:"profile_summary,omitempty"`
	SavedTo         string          `json:"saved_to,omitempty"`
	Status          AnalysisStatus  `json:"status"`
	Stage           AnalysisStage   `json:"stage"`
	Error           string          `json:"error,omitempty"`
	Timestamp       time.Time       `json:"timestamp"`
}

func (r AnalysisResult) Succeeded() bool {
	return r.Status == StatusSuccess
}

type BatchResult struct {
	Results   []AnalysisResult `json:"results"`
	Total     int              `json:"total"`
	Succeeded int              `json:"succeeded"`
	Failed    int              `json:"failed"`
}

// StoredAnalysis is the on-disk record written by the result store.
type StoredAnalysis struct {
	AnalysisID      string         `json:"analysis_id"`
	StudentName     string         `json:"student_name"`
	Classification  string         `json:"classification"`
	Recommendations []string       `json:"recommendations"`
	ProfileSummary  ProfileSummary `json:"profile_summary"`
	Timestamp       Timestamp      `json:"timestamp"`
	AnalysisVersion string         `json:"analysis_version"`
}

// StoredAnalysisSummary is the listing view of a stored record.
type StoredAnalysisSummary struct {
	Filename       string    `json:"filename"`
	StudentName    string    `json:"student_name"`
	Classification string    `json:"classification"`
	Timestamp      Timestamp `json:"timestamp"`
}

type ResultListing struct {
	Results []StoredAnalysisSummary `json:"results"`
	Total   int                     `json:"total"`
	Skipped int                     `json:"skipped"`
}
