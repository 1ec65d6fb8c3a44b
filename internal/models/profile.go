package models

// StudentProfile is the comprehensive profile schema accepted by the API.
// Optional scalars are pointers so "unset" is distinguishable from "".
// Collections are normalised to empty slices by ApplyDefaults.
type StudentProfile struct {
	PersonalInformation   PersonalInformation   `json:"personalInformation"`
	AcademicBackground    AcademicBackground    `json:"academicBackground"`
	SkillsAndCompetencies SkillsAndCompetencies `json:"skillsAndCompetencies"`
	Certifications        []Certification       `json:"certifications"`
	Experience            Experience            `json:"experience"`
	CareerGoals           CareerGoals           `json:"careerGoals"`
	Interests             []string              `json:"interests"`
	LearningPreferences   LearningPreferences   `json:"learningPreferences"`
	SupportNeeds          SupportNeeds          `json:"supportNeeds"`
}

type PersonalInformation struct {
	FullName    string  `json:"fullName" validate:"required,max=200"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone       *string `json:"phone,omitempty"`
	Location    *string `json:"location,omitempty"`
	DateOfBirth *string `json:"dateOfBirth,omitempty"`
	Nationality *string `json:"nationality,omitempty"`
}

type AcademicBackground struct {
	CurrentEnrollmentStatus *string  `json:"currentEnrollmentStatus,omitempty"`
	Institution             *string  `json:"institution,omitempty"`
	Degree                  *string  `json:"degree,omitempty"`
	FieldOfStudy            *string  `json:"fieldOfStudy,omitempty"`
	YearOfStudy             *string  `json:"yearOfStudy,omitempty"`
	GPA                     *float64 `json:"gpa,omitempty" validate:"omitempty,gte=0,lte=10"`
	RelevantCoursework      []string `json:"relevantCoursework"`
	AcademicAchievements    []string `json:"academicAchievements"`
}

type SkillsAndCompetencies struct {
	TechnicalSkills TechnicalSkills       `json:"technicalSkills"`
	SoftSkills      []string              `json:"softSkills"`
	Languages       []LanguageProficiency `json:"languages"`
}

type TechnicalSkills struct {
	ProgrammingLanguages []ProgrammingLanguage `json:"programmingLanguages"`
	Frameworks           []string              `json:"frameworks"`
	Tools                []string              `json:"tools"`
	Databases            []string              `json:"databases"`
	Other                []string              `json:"otherTechnicalSkills"`
}

type ProgrammingLanguage struct {
	Name  string  `json:"name"`
	Level *string `json:"level,omitempty"`
}

// LanguageProficiency is a spoken-language triple.
type LanguageProficiency struct {
	Language      string  `json:"language"`
	Proficiency   *string `json:"proficiency,omitempty"`
	Certification *string `json:"certification,omitempty"`
}

type Certification struct {
	Name   string  `json:"name"`
	Issuer *string `json:"issuer,omitempty"`
	Year   *string `json:"year,omitempty"`
}

type Experience struct {
	WorkExperience []WorkExperience `json:"workExperience"`
	Projects       []Project        `json:"projects"`
	VolunteerWork  []VolunteerWork  `json:"volunteerWork"`
}

type WorkExperience struct {
	Title       string  `json:"title"`
	Company     *string `json:"company,omitempty"`
	Duration    *string `json:"duration,omitempty"`
	Description *string `json:"description,omitempty"`
}

type Project struct {
	Name         string   `json:"name"`
	Description  *string  `json:"description,omitempty"`
	Technologies []string `json:"technologies"`
}

type VolunteerWork struct {
	Role         string  `json:"role"`
	Organization *string `json:"organization,omitempty"`
	Duration     *string `json:"duration,omitempty"`
}

type CareerGoals struct {
	ShortTerm           *string  `json:"shortTerm,omitempty"`
	LongTerm            *string  `json:"longTerm,omitempty"`
	DesiredRoles        []string `json:"desiredRoles"`
	PreferredIndustries []string `json:"preferredIndustries"`
}

type LearningPreferences struct {
	LearningStyle    *string  `json:"learningStyle,omitempty"`
	PreferredFormats []string `json:"preferredFormats"`
	HoursPerWeek     *int     `json:"hoursPerWeek,omitempty" validate:"omitempty,gte=0,lte=168"`
}

type SupportNeeds struct {
	AreasForImprovement []string `json:"areasForImprovement"`
	MentorshipInterest  *bool    `json:"mentorshipInterest,omitempty"`
	Accommodations      *string  `json:"accommodations,omitempty"`
}

// ApplyDefaults replaces every absent collection with an empty one.
func (p *StudentProfile) ApplyDefaults() {
	p.AcademicBackground.RelevantCoursework = emptyIfNil(p.AcademicBackground.RelevantCoursework)
	p.AcademicBackground.AcademicAchievements = emptyIfNil(p.AcademicBackground.AcademicAchievements)

	ts := &p.SkillsAndCompetencies.TechnicalSkills
	if ts.ProgrammingLanguages == nil {
		ts.ProgrammingLanguages = []ProgrammingLanguage{}
	}
	ts.Frameworks = emptyIfNil(ts.Frameworks)
	ts.Tools = emptyIfNil(ts.Tools)
	ts.Databases = emptyIfNil(ts.Databases)
	ts.Other = emptyIfNil(ts.Other)

	p.SkillsAndCompetencies.SoftSkills = emptyIfNil(p.SkillsAndCompetencies.SoftSkills)
	if p.SkillsAndCompetencies.Languages == nil {
		p.SkillsAndCompetencies.Languages = []LanguageProficiency{}
	}

	if p.Certifications == nil {
		p.Certifications = []Certification{}
	}

	if p.Experience.WorkExperience == nil {
		p.Experience.WorkExperience = []WorkExperience{}
	}
	if p.Experience.Projects == nil {
		p.Experience.Projects = []Project{}
	}
	for i := range p.Experience.Projects {
		p.Experience.Projects[i].Technologies = emptyIfNil(p.Experience.Projects[i].Technologies)
	}
	if p.Experience.VolunteerWork == nil {
		p.Experience.VolunteerWork = []VolunteerWork{}
	}

	p.CareerGoals.DesiredRoles = emptyIfNil(p.CareerGoals.DesiredRoles)
	p.CareerGoals.PreferredIndustries = emptyIfNil(p.CareerGoals.PreferredIndustries)
	p.Interests = emptyIfNil(p.Interests)
	p.LearningPreferences.PreferredFormats = emptyIfNil(p.LearningPreferences.PreferredFormats)
	p.SupportNeeds.AreasForImprovement = emptyIfNil(p.SupportNeeds.AreasForImprovement)
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
