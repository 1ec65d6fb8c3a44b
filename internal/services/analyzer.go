package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"alfredoptarigan/student-profile-analyzer/internal/logger"
	"alfredoptarigan/student-profile-analyzer/internal/models"
	"alfredoptarigan/student-profile-analyzer/internal/repositories"
)

type AnalyzerService interface {
	// AnalyzeOne never fails: errors are reported in the returned result.
	AnalyzeOne(ctx context.Context, profile models.StudentProfile) models.AnalysisResult
	// AnalyzeBatch returns one result per profile, in input order.
	AnalyzeBatch(ctx context.Context, profiles []models.StudentProfile) models.BatchResult
}

type AnalyzerOptions struct {
	ClassifyMaxTokens  int
	RecommendMaxTokens int
	AnalysisVersion    string
}

type analyzerService struct {
	gateway       LLMGateway
	store         ResultStore
	runRepo       repositories.AnalysisRunRepository
	worker        Worker
	summarizer    *ProfileSummarizer
	promptBuilder *PromptBuilder
	opts          AnalyzerOptions
}

// NewAnalyzerService wires the pipeline. runRepo may be nil, in which case
// runs are not recorded. worker must be started before AnalyzeBatch is used.
func NewAnalyzerService(
	gateway LLMGateway,
	store ResultStore,
	runRepo repositories.AnalysisRunRepository,
	worker Worker,
	opts AnalyzerOptions,
) AnalyzerService {
	if opts.ClassifyMaxTokens <= 0 {
		opts.ClassifyMaxTokens = 100
	}
	if opts.RecommendMaxTokens <= 0 {
		opts.RecommendMaxTokens = 500
	}
	if opts.AnalysisVersion == "" {
		opts.AnalysisVersion = "1.0.0"
	}

	return &analyzerService{
		gateway:       gateway,
		store:         store,
		runRepo:       runRepo,
		worker:        worker,
		summarizer:    NewProfileSummarizer(),
		promptBuilder: NewPromptBuilder(),
		opts:          opts,
	}
}

func (a *analyzerService) AnalyzeOne(ctx context.Context, profile models.StudentProfile) (result models.AnalysisResult) {
	start := time.Now()
	result = models.AnalysisResult{
		AnalysisID:      uuid.NewString(),
		StudentName:     strings.TrimSpace(profile.PersonalInformation.FullName),
		Recommendations: []string{},
		Status:          models.StatusError,
		Stage:           models.StageReceived,
		Timestamp:       start.UTC(),
	}

	defer func() {
		if r := recover(); r != nil {
			result = fail(result, fmt.Errorf("unexpected panic: %v", r))
		}
		a.recordRun(ctx, result, time.Since(start))
	}()

	if result.StudentName == "" {
		return fail(result, &ValidationError{Message: "student full name is required"})
	}

	logger.Log.Infof("🔄 Starting analysis for %s", result.StudentName)

	// Step 1: Summarize profile
	summary := a.summarizer.Summarize(profile)
	result.ProfileSummary = &summary
	result.Stage = models.StageSummarized

	// Step 2: Classify
	logger.Log.Debugf("🤖 Classifying %s...", result.StudentName)
	raw, err := a.gateway.Complete(ctx, a.promptBuilder.BuildClassificationPrompt(summary), a.opts.ClassifyMaxTokens)
	if err != nil {
		return fail(result, fmt.Errorf("classification failed: %w", err))
	}

	classification, err := ParseClassification(raw)
	if err != nil {
		return fail(result, fmt.Errorf("classification failed: %w", err))
	}
	result.Classification = classification
	result.Stage = models.StageClassified

	// Step 3: Recommend
	logger.Log.Debugf("🤖 Generating recommendations for %s (%s)...", result.StudentName, classification)
	raw, err = a.gateway.Complete(ctx, a.promptBuilder.BuildRecommendationPrompt(summary, classification), a.opts.RecommendMaxTokens)
	if err != nil {
		return fail(result, fmt.Errorf("recommendation failed: %w", err))
	}

	recommendations := ParseRecommendations(raw)
	if len(recommendations) == 0 {
		logger.Log.Warnf("⚠️  No usable recommendations for %s, using fallback", result.StudentName)
		recommendations = FallbackRecommendations(classification)
	}
	result.Recommendations = recommendations
	result.Stage = models.StageRecommended

	// Step 4: Save
	path, err := a.store.Save(models.StoredAnalysis{
		AnalysisID:      result.AnalysisID,
		StudentName:     result.StudentName,
		Classification:  classification,
		Recommendations: recommendations,
		ProfileSummary:  summary,
		Timestamp:       models.NewTimestamp(result.Timestamp),
		AnalysisVersion: a.opts.AnalysisVersion,
	})
	if err != nil {
		return fail(result, err)
	}
	result.SavedTo = path
	result.Stage = models.StageSaved

	result.Status = models.StatusSuccess
	result.Stage = models.StageSucceeded
	logger.Log.Infof("✅ Analysis completed for %s: %s", result.StudentName, classification)

	return result
}

func (a *analyzerService) AnalyzeBatch(ctx context.Context, profiles []models.StudentProfile) models.BatchResult {
	results := make([]models.AnalysisResult, len(profiles))

	var wg sync.WaitGroup
	for i, profile := range profiles {
		wg.Add(1)
		err := a.worker.Submit(ctx, func(ctx context.Context) {
			defer wg.Done()
			results[i] = a.AnalyzeOne(ctx, profile)
		})
		if err != nil {
			wg.Done()
			results[i] = fail(models.AnalysisResult{
				AnalysisID:      uuid.NewString(),
				StudentName:     strings.TrimSpace(profile.PersonalInformation.FullName),
				Recommendations: []string{},
				Stage:           models.StageReceived,
				Timestamp:       time.Now().UTC(),
			}, fmt.Errorf("failed to schedule analysis: %w", err))
		}
	}
	wg.Wait()

	batch := models.BatchResult{
		Results: results,
		Total:   len(results),
	}
	for _, r := range results {
		if r.Succeeded() {
			batch.Succeeded++
		} else {
			batch.Failed++
		}
	}

	logger.Log.Infof("📋 Batch finished: %d successful, %d failed", batch.Succeeded, batch.Failed)

	return batch
}

func (a *analyzerService) recordRun(ctx context.Context, result models.AnalysisResult, elapsed time.Duration) {
	if a.runRepo == nil {
		return
	}

	run := &models.AnalysisRun{
		ID:          uuid.MustParse(result.AnalysisID),
		StudentName: result.StudentName,
		StudentKey:  SanitizeName(result.StudentName),
		Status:      result.Status,
		Stage:       result.Stage,
		DurationMs:  elapsed.Milliseconds(),
		CreatedAt:   result.Timestamp,
	}
	if result.Classification != "" {
		run.Classification = &result.Classification
	}
	if result.Error != "" {
		run.ErrorMessage = &result.Error
	}

	if err := a.runRepo.Create(context.WithoutCancel(ctx), run); err != nil {
		logger.Log.Warnf("⚠️  Failed to record analysis run for %s: %v", result.StudentName, err)
	}
}

func fail(result models.AnalysisResult, err error) models.AnalysisResult {
	logger.Log.Errorf("❌ Analysis failed for %s at stage %s: %v", result.StudentName, result.Stage, err)
	result.Status = models.StatusError
	result.Error = err.Error()
	return result
}
