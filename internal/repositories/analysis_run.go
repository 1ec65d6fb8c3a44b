package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"alfredoptarigan/student-profile-analyzer/internal/models"
)

const maxRunsLimit = 500

type AnalysisRunRepository interface {
	Create(ctx context.Context, run *models.AnalysisRun) error
	FindByStudentKey(ctx context.Context, studentKey string, limit int) ([]models.AnalysisRun, error)
	FindRecent(ctx context.Context, limit int) ([]models.AnalysisRun, error)
}

type analysisRunRepository struct {
	db *gorm.DB
}

func NewAnalysisRunRepository(db *gorm.DB) AnalysisRunRepository {
	return &analysisRunRepository{db: db}
}

func (r *analysisRunRepository) Create(ctx context.Context, run *models.AnalysisRun) error {
	if err := r.db.WithContext(ctx).Create(run).Error; err != nil {
		return fmt.Errorf("failed to create analysis run: %w", err)
	}
	return nil
}

func (r *analysisRunRepository) FindByStudentKey(ctx context.Context, studentKey string, limit int) ([]models.AnalysisRun, error) {
	runs := []models.AnalysisRun{}
	err := r.db.WithContext(ctx).
		Where("student_key = ?", studentKey).
		Order("created_at DESC").
		Limit(clampLimit(limit)).
		Find(&runs).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find analysis runs: %w", err)
	}

	return runs, nil
}

func (r *analysisRunRepository) FindRecent(ctx context.Context, limit int) ([]models.AnalysisRun, error) {
	runs := []models.AnalysisRun{}
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(clampLimit(limit)).
		Find(&runs).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find recent analysis runs: %w", err)
	}

	return runs, nil
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > maxRunsLimit {
		return maxRunsLimit
	}
	return limit
}
