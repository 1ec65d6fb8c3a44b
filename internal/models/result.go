package models

type AnalyzeRequest struct {
	Students []StudentProfile `json:"students" validate:"dive"`
}

type AnalyzeResponse struct {
	Success   bool             `json:"success"`
	Message   string           `json:"message"`
	Results   []AnalysisResult `json:"results"`
	Total     int              `json:"total"`
	Succeeded int              `json:"succeeded"`
	Failed    int              `json:"failed"`
}

type ValidateProfileResponse struct {
	Valid          bool            `json:"valid"`
	Message        string          `json:"message,omitempty"`
	ProfileSummary *ProfileSummary `json:"profile_summary,omitempty"`
}

type RunListResponse struct {
	Runs  []AnalysisRun `json:"runs"`
	Total int           `json:"total"`
}
