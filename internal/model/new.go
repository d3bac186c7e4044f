package model

import "github.com/google/uuid"

// NewID returns a fresh unique identifier for a list-item entity. Ids are
// random, not time-derived, so rapid successive additions cannot collide.
func NewID() string {
	return uuid.NewString()
}

// NewDocument returns an empty document with every list present.
func NewDocument() ResumeDocument {
	return ResumeDocument{
		Skills:         []Skill{},
		Experiences:    []Experience{},
		Education:      []Education{},
		Projects:       []Project{},
		Certifications: []Certification{},
		Languages:      []Language{},
	}
}

func NewSkill() Skill {
	return Skill{ID: NewID()}
}

func NewAchievement() Achievement {
	return Achievement{ID: NewID()}
}

// NewExperience seeds one empty achievement so the editing surface always
// has a bullet to type into.
func NewExperience() Experience {
	return Experience{ID: NewID(), Achievements: []Achievement{NewAchievement()}}
}

func NewEducation() Education {
	return Education{ID: NewID()}
}

// NewProject seeds one empty achievement, same as NewExperience.
func NewProject() Project {
	return Project{ID: NewID(), Achievements: []Achievement{NewAchievement()}}
}

func NewCertification() Certification {
	return Certification{ID: NewID()}
}

func NewLanguage() Language {
	return Language{ID: NewID()}
}
