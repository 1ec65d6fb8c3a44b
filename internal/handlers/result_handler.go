package handlers

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/student-profile-analyzer/internal/logger"
	"alfredoptarigan/student-profile-analyzer/internal/models"
	"alfredoptarigan/student-profile-analyzer/internal/repositories"
	"alfredoptarigan/student-profile-analyzer/internal/services"
)

const defaultRunsLimit = 50

type ResultHandler struct {
	store   services.ResultStore
	runRepo repositories.AnalysisRunRepository
}

// NewResultHandler creates the handler; runRepo may be nil when run history
// is disabled.
func NewResultHandler(store services.ResultStore, runRepo repositories.AnalysisRunRepository) *ResultHandler {
	return &ResultHandler{
		store:   store,
		runRepo: runRepo,
	}
}

// HandleGetResult handles GET /results/:name
func (h *ResultHandler) HandleGetResult(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil || name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid student name",
		})
	}

	record, err := h.store.Load(name)
	if err != nil {
		if errors.Is(err, services.ErrResultNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Results not found for this student",
			})
		}
		logger.Log.Errorf("❌ Failed to read results for %s: %v", name, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error reading results",
		})
	}

	return c.JSON(record)
}

// HandleListResults handles GET /results
func (h *ResultHandler) HandleListResults(c *fiber.Ctx) error {
	listing, err := h.store.List()
	if err != nil {
		logger.Log.Errorf("❌ Failed to list results: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error listing results",
		})
	}

	return c.JSON(listing)
}

// HandleListRuns handles GET /runs
func (h *ResultHandler) HandleListRuns(c *fiber.Ctx) error {
	if h.runRepo == nil {
		return runHistoryDisabled(c)
	}

	runs, err := h.runRepo.FindRecent(c.UserContext(), c.QueryInt("limit", defaultRunsLimit))
	if err != nil {
		logger.Log.Errorf("❌ Failed to list analysis runs: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error listing analysis runs",
		})
	}

	return c.JSON(models.RunListResponse{Runs: runs, Total: len(runs)})
}

// HandleStudentRuns handles GET /results/:name/runs
func (h *ResultHandler) HandleStudentRuns(c *fiber.Ctx) error {
	if h.runRepo == nil {
		return runHistoryDisabled(c)
	}

	name, err := url.PathUnescape(c.Params("name"))
	if err != nil || name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid student name",
		})
	}

	runs, err := h.runRepo.FindByStudentKey(c.UserContext(), services.SanitizeName(name), c.QueryInt("limit", defaultRunsLimit))
	if err != nil {
		logger.Log.Errorf("❌ Failed to list analysis runs for %s: %v", name, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error listing analysis runs",
		})
	}

	return c.JSON(models.RunListResponse{Runs: runs, Total: len(runs)})
}

func runHistoryDisabled(c *fiber.Ctx) error {
	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
		"error": "Analysis run history is disabled",
	})
}
