package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/student-profile-analyzer/internal/models"
	"alfredoptarigan/student-profile-analyzer/internal/services"
)

type ProfileHandler struct {
	summarizer *services.ProfileSummarizer
}

func NewProfileHandler(summarizer *services.ProfileSummarizer) *ProfileHandler {
	return &ProfileHandler{
		summarizer: summarizer,
	}
}

// HandleValidateProfile handles POST /validate-profile. It only summarizes
// the profile and never calls the model.
func (h *ProfileHandler) HandleValidateProfile(c *fiber.Ctx) error {
	profile, err := parseProfile(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ValidateProfileResponse{
			Valid:   false,
			Message: err.Error(),
		})
	}

	summary := h.summarizer.Summarize(profile)

	return c.JSON(models.ValidateProfileResponse{
		Valid:          true,
		Message:        "Profile is valid",
		ProfileSummary: &summary,
	})
}
