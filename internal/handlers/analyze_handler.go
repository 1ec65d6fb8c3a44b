package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/student-profile-analyzer/internal/models"
	"alfredoptarigan/student-profile-analyzer/internal/services"
)

type AnalyzeHandler struct {
	analyzer services.AnalyzerService
}

func NewAnalyzeHandler(analyzer services.AnalyzerService) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer: analyzer,
	}
}

// HandleAnalyze handles POST /analyze
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	var req models.AnalyzeRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if len(req.Students) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No student data provided",
		})
	}

	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": validationMessage(err),
		})
	}

	for i := range req.Students {
		req.Students[i].ApplyDefaults()
	}

	batch := h.analyzer.AnalyzeBatch(c.UserContext(), req.Students)

	return c.JSON(models.AnalyzeResponse{
		Success: batch.Succeeded > 0,
		Message: fmt.Sprintf("Processed %d students. %d successful, %d failed.",
			batch.Total, batch.Succeeded, batch.Failed),
		Results:   batch.Results,
		Total:     batch.Total,
		Succeeded: batch.Succeeded,
		Failed:    batch.Failed,
	})
}

// HandleAnalyzeSingle handles POST /analyze-single
func (h *AnalyzeHandler) HandleAnalyzeSingle(c *fiber.Ctx) error {
	profile, err := parseProfile(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	result := h.analyzer.AnalyzeOne(c.UserContext(), profile)
	if !result.Succeeded() {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("Analysis failed: %s", result.Error),
			"code":  fiber.StatusInternalServerError,
		})
	}

	return c.JSON(result)
}
