package services

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"alfredoptarigan/student-profile-analyzer/internal/models"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildClassificationPrompt creates the prompt that asks for a career category
func (pb *PromptBuilder) BuildClassificationPrompt(summary models.ProfileSummary) string {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		data = []byte(fmt.Sprintf("%+v", summary))
	}

	return fmt.Sprintf(`You are an expert career counselor and skills analyzer.

Analyze the following student profile and classify their primary career focus based on:
- Technical skills and proficiency levels
- Work experience, projects and volunteer work
- Educational background and certifications
- Stated career goals and interests

STUDENT PROFILE:
%s

Return ONLY the classification category (e.g. "AI/Machine Learning Engineer", "Full-Stack Web Developer", "Data Scientist", "Blockchain Developer").
Do not add explanations, punctuation or formatting.`, data)
}

// BuildRecommendationPrompt creates the prompt for learning recommendations
func (pb *PromptBuilder) BuildRecommendationPrompt(summary models.ProfileSummary, classification string) string {
	ts := summary.TechnicalSkills
	exp := summary.ProfessionalExperience
	goals := summary.CareerGoals
	prefs := summary.LearningPreferences
	support := summary.SupportNeeds

	var skills []string
	skills = append(skills, ts.ProgrammingLanguages...)
	skills = append(skills, ts.Frameworks...)
	skills = append(skills, ts.Tools...)
	skills = append(skills, ts.Databases...)
	skills = append(skills, ts.Other...)

	var experience []string
	experience = append(experience, exp.Work...)
	experience = append(experience, exp.Projects...)
	experience = append(experience, exp.Volunteer...)

	goalLines := optionalLines(
		labelled("Short term", goals.ShortTerm),
		labelled("Long term", goals.LongTerm),
	)
	goalLines = append(goalLines, prefixed("Desired role: ", goals.DesiredRoles)...)
	goalLines = append(goalLines, prefixed("Interest: ", goals.Interests)...)

	prefLines := optionalLines(labelled("Learning style", prefs.Style))
	prefLines = append(prefLines, prefixed("Format: ", prefs.Formats)...)
	if prefs.HoursPerWeek != nil {
		prefLines = append(prefLines, "Available hours per week: "+strconv.Itoa(*prefs.HoursPerWeek))
	}

	supportLines := prefixed("Improve: ", support.AreasForImprovement)
	if support.MentorshipInterest != nil && *support.MentorshipInterest {
		supportLines = append(supportLines, "Interested in mentorship")
	}
	supportLines = append(supportLines, optionalLines(labelled("Accommodations", support.Accommodations))...)

	return fmt.Sprintf(`You are a learning path advisor.

STUDENT: %s
CLASSIFICATION: %s

SKILLS:
%s

CERTIFICATIONS:
%s

EXPERIENCE:
%s

CAREER GOALS:
%s

LEARNING PREFERENCES:
%s

SUPPORT NEEDS:
%s

Provide 3-4 specific, actionable learning recommendations that would most advance this student's career as a %s.
Take their current skills, goals, learning preferences and support needs into account.
Format your response as a numbered list, one recommendation per line, with no introduction or closing remarks.`,
		summary.PersonalInfo.Name,
		classification,
		bulletList(skills),
		bulletList(summary.Certifications),
		bulletList(experience),
		bulletList(goalLines),
		bulletList(prefLines),
		bulletList(supportLines),
		classification,
	)
}

func bulletList(items []string) string {
	if len(items) == 0 {
		return "- None provided"
	}
	return "- " + strings.Join(items, "\n- ")
}

func labelled(label string, value *string) string {
	if !present(value) {
		return ""
	}
	return label + ": " + strings.TrimSpace(*value)
}

func prefixed(prefix string, items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, prefix+item)
	}
	return out
}

func optionalLines(lines ...string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
