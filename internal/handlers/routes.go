package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Analyze *AnalyzeHandler
	Result  *ResultHandler
	Profile *ProfileHandler
}

func RegisterRoutes(router fiber.Router, h Handlers) {
	// Health check
	router.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	router.Post("/analyze", h.Analyze.HandleAnalyze)
	router.Post("/analyze-single", h.Analyze.HandleAnalyzeSingle)
	router.Post("/validate-profile", h.Profile.HandleValidateProfile)
	router.Get("/results", h.Result.HandleListResults)
	router.Get("/results/:name/runs", h.Result.HandleStudentRuns)
	router.Get("/results/:name", h.Result.HandleGetResult)
	router.Get("/runs", h.Result.HandleListRuns)

	// Root route
	router.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Student Profile Analysis API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /analyze",
				"POST /analyze-single",
				"POST /validate-profile",
				"GET /results",
				"GET /results/:name",
				"GET /results/:name/runs",
				"GET /runs",
				"GET /health",
			},
		})
	})
}

func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
