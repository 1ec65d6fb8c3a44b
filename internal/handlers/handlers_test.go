package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/student-profile-analyzer/internal/models"
	"alfredoptarigan/student-profile-analyzer/internal/repositories"
	"alfredoptarigan/student-profile-analyzer/internal/services"
)

// stubAnalyzer fails every student whose name is listed in failing.
type stubAnalyzer struct {
	failing map[string]bool
	seen    []string
}

func (s *stubAnalyzer) AnalyzeOne(ctx context.Context, profile models.StudentProfile) models.AnalysisResult {
	name := profile.PersonalInformation.FullName
	s.seen = append(s.seen, name)

	if s.failing[name] {
		return models.AnalysisResult{
			StudentName:     name,
			Recommendations: []string{},
			Status:          models.StatusError,
			Stage:           models.StageSummarized,
			Error:           "classification failed: boom",
		}
	}
	return models.AnalysisResult{
		StudentName:     name,
		Classification:  "Data Scientist",
		Recommendations: []string{"Learn Docker and Kubernetes"},
		Status:          models.StatusSuccess,
		Stage:           models.StageSucceeded,
	}
}

func (s *stubAnalyzer) AnalyzeBatch(ctx context.Context, profiles []models.StudentProfile) models.BatchResult {
	batch := models.BatchResult{Results: []models.AnalysisResult{}}
	for _, p := range profiles {
		r := s.AnalyzeOne(ctx, p)
		batch.Results = append(batch.Results, r)
		if r.Succeeded() {
			batch.Succeeded++
		} else {
			batch.Failed++
		}
	}
	batch.Total = len(batch.Results)
	return batch
}

type stubRunRepo struct {
	runs []models.AnalysisRun
	key  string
}

func (r *stubRunRepo) Create(ctx context.Context, run *models.AnalysisRun) error {
	r.runs = append(r.runs, *run)
	return nil
}

func (r *stubRunRepo) FindByStudentKey(ctx context.Context, studentKey string, limit int) ([]models.AnalysisRun, error) {
	r.key = studentKey
	return r.runs, nil
}

func (r *stubRunRepo) FindRecent(ctx context.Context, limit int) ([]models.AnalysisRun, error) {
	if limit < len(r.runs) {
		return r.runs[:limit], nil
	}
	return r.runs, nil
}

type testServer struct {
	app      *fiber.App
	analyzer *stubAnalyzer
	store    services.ResultStore
}

func newTestServer(t *testing.T, runRepo repositories.AnalysisRunRepository) *testServer {
	t.Helper()

	analyzer := &stubAnalyzer{failing: map[string]bool{}}
	store := services.NewResultStore(t.TempDir())

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	RegisterRoutes(app, Handlers{
		Analyze: NewAnalyzeHandler(analyzer),
		Result:  NewResultHandler(store, runRepo),
		Profile: NewProfileHandler(services.NewProfileSummarizer()),
	})

	return &testServer{app: app, analyzer: analyzer, store: store}
}

func (s *testServer) do(t *testing.T, method, target string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func profileJSON(name string) map[string]any {
	return map[string]any{
		"personalInformation": map[string]any{"fullName": name},
		"skillsAndCompetencies": map[string]any{
			"technicalSkills": map[string]any{
				"programmingLanguages": []map[string]any{{"name": "Python", "level": "Advanced"}},
			},
		},
	}
}

func TestHealthAndRoot(t *testing.T) {
	s := newTestServer(t, nil)

	status, body := s.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "healthy", body["status"])

	status, body = s.do(t, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body["endpoints"], "POST /analyze")
}

func TestAnalyze_RejectsEmptyBatch(t *testing.T) {
	s := newTestServer(t, nil)

	status, body := s.do(t, http.MethodPost, "/analyze", map[string]any{"students": []any{}})

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "No student data provided", body["error"])
	assert.Empty(t, s.analyzer.seen)
}

func TestAnalyze_RejectsMalformedBody(t *testing.T) {
	s := newTestServer(t, nil)

	status, body := s.do(t, http.MethodPost, "/analyze", "{not json")

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid request payload", body["error"])
}

func TestAnalyze_RejectsInvalidProfileInBatch(t *testing.T) {
	s := newTestServer(t, nil)

	status, body := s.do(t, http.MethodPost, "/analyze", map[string]any{
		"students": []any{profileJSON("Student One"), profileJSON("")},
	})

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body["error"], "FullName")
	assert.Empty(t, s.analyzer.seen)
}

func TestAnalyze_ReportsPartialFailure(t *testing.T) {
	s := newTestServer(t, nil)
	s.analyzer.failing["Student Two"] = true

	status, body := s.do(t, http.MethodPost, "/analyze", map[string]any{
		"students": []any{profileJSON("Student One"), profileJSON("Student Two"), profileJSON("Student Three")},
	})

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Processed 3 students. 2 successful, 1 failed.", body["message"])
	assert.EqualValues(t, 3, body["total"])
	assert.EqualValues(t, 2, body["succeeded"])
	assert.EqualValues(t, 1, body["failed"])

	results := body["results"].([]any)
	require.Len(t, results, 3)
	second := results[1].(map[string]any)
	assert.Equal(t, "Student Two", second["student_name"])
	assert.Equal(t, "error", second["status"])
}

func TestAnalyze_AllFailedIsNotSuccess(t *testing.T) {
	s := newTestServer(t, nil)
	s.analyzer.failing["Student One"] = true

	status, body := s.do(t, http.MethodPost, "/analyze", map[string]any{
		"students": []any{profileJSON("Student One")},
	})

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, body["success"])
}

func TestAnalyzeSingle(t *testing.T) {
	s := newTestServer(t, nil)
	s.analyzer.failing["Student Two"] = true

	status, body := s.do(t, http.MethodPost, "/analyze-single", profileJSON("Student One"))
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Data Scientist", body["classification"])
	assert.Equal(t, "success", body["status"])

	status, body = s.do(t, http.MethodPost, "/analyze-single", profileJSON("Student Two"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Analysis failed: classification failed: boom", body["error"])
	assert.EqualValues(t, 500, body["code"])

	status, _ = s.do(t, http.MethodPost, "/analyze-single", "[]")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestValidateProfile(t *testing.T) {
	s := newTestServer(t, nil)

	status, body := s.do(t, http.MethodPost, "/validate-profile", profileJSON("Amara Okafor"))
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["valid"])
	assert.Equal(t, "Profile is valid", body["message"])
	summary := body["profile_summary"].(map[string]any)
	skills := summary["technical_skills"].(map[string]any)
	assert.Equal(t, []any{"Python (Advanced)"}, skills["programming_languages"])
	assert.Empty(t, s.analyzer.seen)

	invalid := profileJSON("Amara Okafor")
	invalid["personalInformation"] = map[string]any{"fullName": "Amara Okafor", "email": "not-an-email"}
	status, body = s.do(t, http.MethodPost, "/validate-profile", invalid)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, false, body["valid"])
	assert.Contains(t, body["message"], "Email")
}

func TestGetResult(t *testing.T) {
	s := newTestServer(t, nil)

	status, body := s.do(t, http.MethodGet, "/results/Nobody", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Results not found for this student", body["error"])

	_, err := s.store.Save(models.StoredAnalysis{
		AnalysisID:      "a1",
		StudentName:     "Jane Doe",
		Classification:  "Data Scientist",
		Recommendations: []string{"Build a portfolio of relevant projects"},
		ProfileSummary:  services.NewProfileSummarizer().Summarize(models.StudentProfile{}),
		Timestamp:       models.NewTimestamp(time.Now().UTC()),
		AnalysisVersion: "1.0.0",
	})
	require.NoError(t, err)

	status, body = s.do(t, http.MethodGet, "/results/Jane%20Doe", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Jane Doe", body["student_name"])
	assert.Equal(t, "Data Scientist", body["classification"])

	status, body = s.do(t, http.MethodGet, "/results/Jane_Doe", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Jane Doe", body["student_name"])

	status, body = s.do(t, http.MethodGet, "/results", nil)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 1, body["total"])
	assert.EqualValues(t, 0, body["skipped"])
}

func TestRuns_DisabledWithoutRepository(t *testing.T) {
	s := newTestServer(t, nil)

	status, _ := s.do(t, http.MethodGet, "/runs", nil)
	assert.Equal(t, http.StatusServiceUnavailable, status)

	status, _ = s.do(t, http.MethodGet, "/results/Jane%20Doe/runs", nil)
	assert.Equal(t, http.StatusServiceUnavailable, status)
}

func TestRuns_ListsHistory(t *testing.T) {
	repo := &stubRunRepo{runs: []models.AnalysisRun{
		{StudentName: "Jane Doe", StudentKey: "Jane_Doe", Status: models.StatusSuccess, Stage: models.StageSucceeded},
		{StudentName: "Jane Doe", StudentKey: "Jane_Doe", Status: models.StatusError, Stage: models.StageClassified},
	}}
	s := newTestServer(t, repo)

	status, body := s.do(t, http.MethodGet, "/runs?limit=1", nil)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 1, body["total"])

	status, body = s.do(t, http.MethodGet, "/results/Jane%20Doe/runs", nil)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 2, body["total"])
	assert.Equal(t, "Jane_Doe", repo.key)
}
