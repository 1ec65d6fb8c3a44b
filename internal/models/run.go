package models

import (
	"time"

	"github.com/google/uuid"
)

// AnalysisRun is one recorded execution of the pipeline for a student.
type AnalysisRun struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	StudentName    string         `gorm:"type:text;not null" json:"student_name"`
	StudentKey     string         `gorm:"type:text;not null;index" json:"student_key"`
	Status         AnalysisStatus `gorm:"type:text;not null" json:"status"`
	Stage          AnalysisStage  `gorm:"type:text;not null" json:"stage"`
	Classification *string        `gorm:"type:text" json:"classification,omitempty"`
	ErrorMessage   *string        `gorm:"type:text" json:"error_message,omitempty"`
	DurationMs     int64          `json:"duration_ms"`
	CreatedAt      time.Time      `gorm:"index" json:"created_at"`
}

func (AnalysisRun) TableName() string {
	return "analysis_runs"
}
