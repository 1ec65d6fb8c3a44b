package services

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// minRecommendationLength is the shortest unmarked line kept as a recommendation.
const minRecommendationLength = 11

// listMarker matches one leading list marker ("1.", "2)", "-", "*", "•")
// and the whitespace after it. Digits not followed by "." or ")" are text.
var listMarker = regexp.MustCompile(`^(?:\d+[.)]+|[-*•]+)(?:\s+|$)`)

// ParseClassification trims the model output into a classification label.
func ParseClassification(text string) (string, error) {
	label := strings.TrimSpace(text)
	if label == "" {
		return "", ErrEmptyResponse
	}
	return label, nil
}

// ParseRecommendations splits model output into cleaned recommendation lines.
// One leading list marker is stripped per line. Empty and purely numeric
// lines are dropped, and so are unmarked lines shorter than
// minRecommendationLength.
func ParseRecommendations(text string) []string {
	recommendations := []string{}

	for _, line := range strings.Split(text, "\n") {
		raw := strings.TrimSpace(line)
		if raw == "" || isNumeric(raw) {
			continue
		}

		cleaned := strings.TrimSpace(listMarker.ReplaceAllString(raw, ""))
		if cleaned == "" {
			continue
		}

		marked := cleaned != raw
		if !marked && utf8.RuneCountInString(cleaned) < minRecommendationLength {
			continue
		}

		recommendations = append(recommendations, cleaned)
	}

	return recommendations
}

// FallbackRecommendations is the guidance used when the model's
// recommendations cannot be parsed.
func FallbackRecommendations(classification string) []string {
	return []string{
		fmt.Sprintf("Focus on strengthening core %s skills", classification),
		"Build a portfolio of relevant projects",
		"Network with professionals in your target field",
		"Consider relevant certifications for career advancement",
	}
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
