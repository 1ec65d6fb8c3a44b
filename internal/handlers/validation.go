package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/student-profile-analyzer/internal/models"
)

var validate = validator.New()

// parseProfile decodes one profile from the request body, validates it and
// fills in empty collections.
func parseProfile(c *fiber.Ctx) (models.StudentProfile, error) {
	var profile models.StudentProfile
	if err := c.BodyParser(&profile); err != nil {
		return profile, fmt.Errorf("invalid request payload: %w", err)
	}

	if err := validate.Struct(&profile); err != nil {
		return profile, errors.New(validationMessage(err))
	}

	profile.ApplyDefaults()
	return profile, nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed '%s' validation", fe.Namespace(), fe.Tag()))
	}
	return strings.Join(msgs, "; ")
}
