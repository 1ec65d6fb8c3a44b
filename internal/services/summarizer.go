package services

import (
	"fmt"
	"strings"

	"alfredoptarigan/student-profile-analyzer/internal/models"
)

type ProfileSummarizer struct{}

func NewProfileSummarizer() *ProfileSummarizer {
	return &ProfileSummarizer{}
}

// Summarize projects a profile into its analysis-ready form. It is pure and
// deterministic; collections in the result are never nil.
func (s *ProfileSummarizer) Summarize(p models.StudentProfile) models.ProfileSummary {
	ab := p.AcademicBackground
	ts := p.SkillsAndCompetencies.TechnicalSkills

	return models.ProfileSummary{
		PersonalInfo: models.PersonalInfoSummary{
			Name:     strings.TrimSpace(p.PersonalInformation.FullName),
			Email:    p.PersonalInformation.Email,
			Location: p.PersonalInformation.Location,
		},
		Education: models.EducationSummary{
			EnrollmentStatus: ab.CurrentEnrollmentStatus,
			Institution:      ab.Institution,
			Degree:           ab.Degree,
			FieldOfStudy:     ab.FieldOfStudy,
			YearOfStudy:      ab.YearOfStudy,
			GPA:              ab.GPA,
			Coursework:       nonBlank(ab.RelevantCoursework),
			Achievements:     nonBlank(ab.AcademicAchievements),
		},
		TechnicalSkills: models.TechnicalSkillsSummary{
			ProgrammingLanguages: render(ts.ProgrammingLanguages, func(pl models.ProgrammingLanguage) (string, bool) {
				return qualified(pl.Name, pl.Level)
			}),
			Frameworks: nonBlank(ts.Frameworks),
			Tools:      nonBlank(ts.Tools),
			Databases:  nonBlank(ts.Databases),
			Other:      nonBlank(ts.Other),
		},
		SoftSkills: nonBlank(p.SkillsAndCompetencies.SoftSkills),
		Languages: render(p.SkillsAndCompetencies.Languages, func(l models.LanguageProficiency) (string, bool) {
			return qualified(l.Language, l.Proficiency, l.Certification)
		}),
		Certifications: render(p.Certifications, func(c models.Certification) (string, bool) {
			return qualified(c.Name, c.Issuer, c.Year)
		}),
		ProfessionalExperience: models.ExperienceSummary{
			Work:      render(p.Experience.WorkExperience, renderWork),
			Projects:  render(p.Experience.Projects, renderProject),
			Volunteer: render(p.Experience.VolunteerWork, renderVolunteer),
		},
		CareerGoals: models.CareerGoalsSummary{
			ShortTerm:           p.CareerGoals.ShortTerm,
			LongTerm:            p.CareerGoals.LongTerm,
			DesiredRoles:        nonBlank(p.CareerGoals.DesiredRoles),
			PreferredIndustries: nonBlank(p.CareerGoals.PreferredIndustries),
			Interests:           nonBlank(p.Interests),
		},
		LearningPreferences: models.LearningPreferencesSummary{
			Style:        p.LearningPreferences.LearningStyle,
			Formats:      nonBlank(p.LearningPreferences.PreferredFormats),
			HoursPerWeek: p.LearningPreferences.HoursPerWeek,
		},
		SupportNeeds: models.SupportNeedsSummary{
			AreasForImprovement: nonBlank(p.SupportNeeds.AreasForImprovement),
			MentorshipInterest:  p.SupportNeeds.MentorshipInterest,
			Accommodations:      p.SupportNeeds.Accommodations,
		},
	}
}

func renderWork(w models.WorkExperience) (string, bool) {
	text, ok := qualified(at(w.Title, w.Company), w.Duration)
	if ok && present(w.Description) {
		text += ": " + strings.TrimSpace(*w.Description)
	}
	return text, ok
}

func renderProject(pr models.Project) (string, bool) {
	name := strings.TrimSpace(pr.Name)
	if name == "" {
		return "", false
	}
	if present(pr.Description) {
		name += ": " + strings.TrimSpace(*pr.Description)
	}
	if tech := nonBlank(pr.Technologies); len(tech) > 0 {
		name += fmt.Sprintf(" [%s]", strings.Join(tech, ", "))
	}
	return name, true
}

func renderVolunteer(v models.VolunteerWork) (string, bool) {
	return qualified(at(v.Role, v.Organization), v.Duration)
}

// render keeps the input order and drops entries the renderer rejects.
func render[T any](items []T, fn func(T) (string, bool)) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if text, ok := fn(item); ok {
			out = append(out, text)
		}
	}
	return out
}

// qualified renders "primary (q1, q2)" skipping blank qualifiers. An entry
// with a blank primary string is rejected.
func qualified(primary string, qualifiers ...*string) (string, bool) {
	primary = strings.TrimSpace(primary)
	if primary == "" {
		return "", false
	}

	var parts []string
	for _, q := range qualifiers {
		if present(q) {
			parts = append(parts, strings.TrimSpace(*q))
		}
	}
	if len(parts) == 0 {
		return primary, true
	}
	return fmt.Sprintf("%s (%s)", primary, strings.Join(parts, ", ")), true
}

func at(role string, place *string) string {
	role = strings.TrimSpace(role)
	if role == "" || !present(place) {
		return role
	}
	return role + " at " + strings.TrimSpace(*place)
}

func present(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

func nonBlank(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
