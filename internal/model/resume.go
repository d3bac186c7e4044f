package model

// Go models for the resume document. JSON tags match the shape stored in
// the snapshot slot and exchanged with the ai-service, so payloads round-trip
// without renaming.

type SkillCategory string

const (
	CategoryLanguage  SkillCategory = "Language"
	CategoryFramework SkillCategory = "Framework/Library"
	CategoryDatabase  SkillCategory = "Database"
	CategoryCloud     SkillCategory = "Cloud"
	CategoryTool      SkillCategory = "Tool"
	CategorySoftSkill SkillCategory = "Soft Skill"
)

// IsValid reports whether c is one of the known skill categories.
func (c SkillCategory) IsValid() bool {
	switch c {
	case CategoryLanguage, CategoryFramework, CategoryDatabase, CategoryCloud, CategoryTool, CategorySoftSkill:
		return true
	}
	return false
}

type Proficiency string

const (
	ProficiencyNative         Proficiency = "Native"
	ProficiencyFluent         Proficiency = "Fluent"
	ProficiencyConversational Proficiency = "Conversational"
	ProficiencyBasic          Proficiency = "Basic"
)

func (p Proficiency) IsValid() bool {
	switch p {
	case ProficiencyNative, ProficiencyFluent, ProficiencyConversational, ProficiencyBasic:
		return true
	}
	return false
}

// Achievement is a single bullet-point accomplishment, owned by exactly one
// Experience or Project.
type Achievement struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

type Skill struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Category SkillCategory `json:"category"`
}

type Experience struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Company      string        `json:"company"`
	Location     string        `json:"location,omitempty"`
	StartDate    string        `json:"startDate"`
	EndDate      string        `json:"endDate"`
	Achievements []Achievement `json:"achievements"`
}

type Education struct {
	ID         string `json:"id"`
	Degree     string `json:"degree"`
	School     string `json:"school"`
	Location   string `json:"location,omitempty"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	GPA        string `json:"gpa,omitempty"`
	Coursework string `json:"coursework,omitempty"`
}

type Project struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	TechStack    string        `json:"techStack"`
	GithubLink   string        `json:"githubLink,omitempty"`
	LiveLink     string        `json:"liveLink,omitempty"`
	Achievements []Achievement `json:"achievements"`
}

type Certification struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Organization string `json:"organization"`
	Date         string `json:"date"`
	URL          string `json:"url,omitempty"`
}

type Language struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Proficiency Proficiency `json:"proficiency"`
}

// ResumeDocument is the root of the entity graph. List fields are always
// non-nil after normalization; dates use the "YYYY-MM" convention and an
// empty EndDate means the entry is ongoing ("Present" in every rendering).
type ResumeDocument struct {
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	LinkedIn  string `json:"linkedin"`
	Github    string `json:"github"`
	Portfolio string `json:"portfolio"`
	Summary   string `json:"summary"`

	Skills         []Skill         `json:"skills"`
	Experiences    []Experience    `json:"experiences"`
	Education      []Education     `json:"education"`
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`
	Languages      []Language      `json:"languages"`
}
