package models

// ProfileSummary is the analysis-ready projection of a StudentProfile.
// Field order is fixed so the serialized form is deterministic.
type ProfileSummary struct {
	PersonalInfo           PersonalInfoSummary        `json:"personal_info"`
	Education              EducationSummary           `json:"education"`
	TechnicalSkills        TechnicalSkillsSummary     `json:"technical_skills"`
	SoftSkills             []string                   `json:"soft_skills"`
	Languages              []string                   `json:"languages"`
	Certifications         []string                   `json:"certifications"`
	ProfessionalExperience ExperienceSummary          `json:"professional_experience"`
	CareerGoals            CareerGoalsSummary         `json:"career_goals"`
	LearningPreferences    LearningPreferencesSummary `json:"learning_preferences"`
	SupportNeeds           SupportNeedsSummary        `json:"support_needs"`
}

type PersonalInfoSummary struct {
	Name     string  `json:"name"`
	Email    *string `json:"email,omitempty"`
	Location *string `json:"location,omitempty"`
}

type EducationSummary struct {
	EnrollmentStatus *string  `json:"enrollment_status,omitempty"`
	Institution      *string  `json:"institution,omitempty"`
	Degree           *string  `json:"degree,omitempty"`
	FieldOfStudy     *string  `json:"field_of_study,omitempty"`
	YearOfStudy      *string  `json:"year_of_study,omitempty"`
	GPA              *float64 `json:"gpa,omitempty"`
	Coursework       []string `json:"coursework"`
	Achievements     []string `json:"achievements"`
}

type TechnicalSkillsSummary struct {
	ProgrammingLanguages []string `json:"programming_languages"`
	Frameworks           []string `json:"frameworks"`
	Tools                []string `json:"tools"`
	Databases            []string `json:"databases"`
	Other                []string `json:"other"`
}

type ExperienceSummary struct {
	Work      []string `json:"work"`
	Projects  []string `json:"projects"`
	Volunteer []string `json:"volunteer"`
}

type CareerGoalsSummary struct {
	ShortTerm           *string  `json:"short_term,omitempty"`
	LongTerm            *string  `json:"long_term,omitempty"`
	DesiredRoles        []string `json:"desired_roles"`
	PreferredIndustries []string `json:"preferred_industries"`
	Interests           []string `json:"interests"`
}

type LearningPreferencesSummary struct {
	Style        *string  `json:"style,omitempty"`
	Formats      []string `json:"formats"`
	HoursPerWeek *int     `json:"hours_per_week,omitempty"`
}

type SupportNeedsSummary struct {
	AreasForImprovement []string `json:"areas_for_improvement"`
	MentorshipInterest  *bool    `json:"mentorship_interest,omitempty"`
	Accommodations      *string  `json:"accommodations,omitempty"`
}
