package usecase

import (
	"resume-builder/internal/model"
)

// Mutation operations over a ResumeDocument. Every operation is pure: the
// input document is never modified, and unaffected lists keep their backing
// arrays so the caller can cheaply detect what changed. Removing or updating
// an id that is not present is a deliberate silent no-op, not an error.

// ScalarField names a top-level scalar of the document.
type ScalarField string

const (
	FieldFullName  ScalarField = "fullName"
	FieldEmail     ScalarField = "email"
	FieldPhone     ScalarField = "phone"
	FieldLocation  ScalarField = "location"
	FieldLinkedIn  ScalarField = "linkedin"
	FieldGithub    ScalarField = "github"
	FieldPortfolio ScalarField = "portfolio"
	FieldSummary   ScalarField = "summary"
)

// ListName names one of the document's item lists.
type ListName string

const (
	ListSkills         ListName = "skills"
	ListExperiences    ListName = "experiences"
	ListEducation      ListName = "education"
	ListProjects       ListName = "projects"
	ListCertifications ListName = "certifications"
	ListLanguages      ListName = "languages"
)

// SetScalarField replaces one top-level scalar. Unknown field names are a
// programming error.
func SetScalarField(doc model.ResumeDocument, field ScalarField, value string) (model.ResumeDocument, error) {
	switch field {
	case FieldFullName:
		doc.FullName = value
	case FieldEmail:
		doc.Email = value
	case FieldPhone:
		doc.Phone = value
	case FieldLocation:
		doc.Location = value
	case FieldLinkedIn:
		doc.LinkedIn = value
	case FieldGithub:
		doc.Github = value
	case FieldPortfolio:
		doc.Portfolio = value
	case FieldSummary:
		doc.Summary = value
	default:
		return doc, &InvalidFieldError{Entity: "resume", Field: string(field)}
	}
	return doc, nil
}

// AddListItem appends item to the named list. The item must carry a
// pre-generated id (model.New* constructors do this); duplicate ids are not
// checked here. The item's concrete type must match the list.
func AddListItem(doc model.ResumeDocument, list ListName, item interface{}) (model.ResumeDocument, error) {
	switch list {
	case ListSkills:
		v, ok := item.(model.Skill)
		if !ok {
			return doc, &InvalidFieldError{Entity: "skills", Field: "item"}
		}
		doc.Skills = append(copySkills(doc.Skills), v)
	case ListExperiences:
		v, ok := item.(model.Experience)
		if !ok {
			return doc, &InvalidFieldError{Entity: "experiences", Field: "item"}
		}
		doc.Experiences = append(copyExperiences(doc.Experiences), v)
	case ListEducation:
		v, ok := item.(model.Education)
		if !ok {
			return doc, &InvalidFieldError{Entity: "education", Field: "item"}
		}
		doc.Education = append(copyEducation(doc.Education), v)
	case ListProjects:
		v, ok := item.(model.Project)
		if !ok {
			return doc, &InvalidFieldError{Entity: "projects", Field: "item"}
		}
		doc.Projects = append(copyProjects(doc.Projects), v)
	case ListCertifications:
		v, ok := item.(model.Certification)
		if !ok {
			return doc, &InvalidFieldError{Entity: "certifications", Field: "item"}
		}
		doc.Certifications = append(copyCertifications(doc.Certifications), v)
	case ListLanguages:
		v, ok := item.(model.Language)
		if !ok {
			return doc, &InvalidFieldError{Entity: "languages", Field: "item"}
		}
		doc.Languages = append(copyLanguages(doc.Languages), v)
	default:
		return doc, &InvalidFieldError{Entity: "resume", Field: string(list)}
	}
	return doc, nil
}

// RemoveListItem drops the entry whose id matches. Absent ids leave the
// document untouched.
func RemoveListItem(doc model.ResumeDocument, list ListName, itemID string) (model.ResumeDocument, error) {
	switch list {
	case ListSkills:
		if idx := skillIndex(doc.Skills, itemID); idx >= 0 {
			doc.Skills = append(copySkills(doc.Skills[:idx]), doc.Skills[idx+1:]...)
		}
	case ListExperiences:
		if idx := experienceIndex(doc.Experiences, itemID); idx >= 0 {
			doc.Experiences = append(copyExperiences(doc.Experiences[:idx]), doc.Experiences[idx+1:]...)
		}
	case ListEducation:
		if idx := educationIndex(doc.Education, itemID); idx >= 0 {
			doc.Education = append(copyEducation(doc.Education[:idx]), doc.Education[idx+1:]...)
		}
	case ListProjects:
		if idx := projectIndex(doc.Projects, itemID); idx >= 0 {
			doc.Projects = append(copyProjects(doc.Projects[:idx]), doc.Projects[idx+1:]...)
		}
	case ListCertifications:
		if idx := certificationIndex(doc.Certifications, itemID); idx >= 0 {
			doc.Certifications = append(copyCertifications(doc.Certifications[:idx]), doc.Certifications[idx+1:]...)
		}
	case ListLanguages:
		if idx := languageIndex(doc.Languages, itemID); idx >= 0 {
			doc.Languages = append(copyLanguages(doc.Languages[:idx]), doc.Languages[idx+1:]...)
		}
	default:
		return doc, &InvalidFieldError{Entity: "resume", Field: string(list)}
	}
	return doc, nil
}

// UpdateListItem replaces one field of the entry with the given id. Absent
// ids are a silent no-op; a field name outside the entity shape is an
// InvalidFieldError even when the id is absent.
func UpdateListItem(doc model.ResumeDocument, list ListName, itemID, field, value string) (model.ResumeDocument, error) {
	switch list {
	case ListSkills:
		if !validSkillField(field) {
			return doc, &InvalidFieldError{Entity: "skills", Field: field}
		}
		idx := skillIndex(doc.Skills, itemID)
		if idx < 0 {
			return doc, nil
		}
		skills := copySkills(doc.Skills)
		switch field {
		case "name":
			skills[idx].Name = value
		case "category":
			skills[idx].Category = model.SkillCategory(value)
		}
		doc.Skills = skills
	case ListExperiences:
		if !validExperienceField(field) {
			return doc, &InvalidFieldError{Entity: "experiences", Field: field}
		}
		idx := experienceIndex(doc.Experiences, itemID)
		if idx < 0 {
			return doc, nil
		}
		exps := copyExperiences(doc.Experiences)
		switch field {
		case "title":
			exps[idx].Title = value
		case "company":
			exps[idx].Company = value
		case "location":
			exps[idx].Location = value
		case "startDate":
			exps[idx].StartDate = value
		case "endDate":
			exps[idx].EndDate = value
		}
		doc.Experiences = exps
	case ListEducation:
		if !validEducationField(field) {
			return doc, &InvalidFieldError{Entity: "education", Field: field}
		}
		idx := educationIndex(doc.Education, itemID)
		if idx < 0 {
			return doc, nil
		}
		edus := copyEducation(doc.Education)
		switch field {
		case "degree":
			edus[idx].Degree = value
		case "school":
			edus[idx].School = value
		case "location":
			edus[idx].Location = value
		case "startDate":
			edus[idx].StartDate = value
		case "endDate":
			edus[idx].EndDate = value
		case "gpa":
			edus[idx].GPA = value
		case "coursework":
			edus[idx].Coursework = value
		}
		doc.Education = edus
	case ListProjects:
		if !validProjectField(field) {
			return doc, &InvalidFieldError{Entity: "projects", Field: field}
		}
		idx := projectIndex(doc.Projects, itemID)
		if idx < 0 {
			return doc, nil
		}
		projs := copyProjects(doc.Projects)
		switch field {
		case "name":
			projs[idx].Name = value
		case "techStack":
			projs[idx].TechStack = value
		case "githubLink":
			projs[idx].GithubLink = value
		case "liveLink":
			projs[idx].LiveLink = value
		}
		doc.Projects = projs
	case ListCertifications:
		if !validCertificationField(field) {
			return doc, &InvalidFieldError{Entity: "certifications", Field: field}
		}
		idx := certificationIndex(doc.Certifications, itemID)
		if idx < 0 {
			return doc, nil
		}
		certs := copyCertifications(doc.Certifications)
		switch field {
		case "name":
			certs[idx].Name = value
		case "organization":
			certs[idx].Organization = value
		case "date":
			certs[idx].Date = value
		case "url":
			certs[idx].URL = value
		}
		doc.Certifications = certs
	case ListLanguages:
		if !validLanguageField(field) {
			return doc, &InvalidFieldError{Entity: "languages", Field: field}
		}
		idx := languageIndex(doc.Languages, itemID)
		if idx < 0 {
			return doc, nil
		}
		langs := copyLanguages(doc.Languages)
		switch field {
		case "name":
			langs[idx].Name = value
		case "proficiency":
			langs[idx].Proficiency = model.Proficiency(value)
		}
		doc.Languages = langs
	default:
		return doc, &InvalidFieldError{Entity: "resume", Field: string(list)}
	}
	return doc, nil
}

func validSkillField(f string) bool {
	return f == "name" || f == "category"
}

func validExperienceField(f string) bool {
	switch f {
	case "title", "company", "location", "startDate", "endDate":
		return true
	}
	return false
}

func validEducationField(f string) bool {
	switch f {
	case "degree", "school", "location", "startDate", "endDate", "gpa", "coursework":
		return true
	}
	return false
}

func validProjectField(f string) bool {
	switch f {
	case "name", "techStack", "githubLink", "liveLink":
		return true
	}
	return false
}

func validCertificationField(f string) bool {
	switch f {
	case "name", "organization", "date", "url":
		return true
	}
	return false
}

func validLanguageField(f string) bool {
	return f == "name" || f == "proficiency"
}

func skillIndex(s []model.Skill, id string) int {
	for i := range s {
		if s[i].ID == id {
			return i
		}
	}
	return -1
}

func experienceIndex(s []model.Experience, id string) int {
	for i := range s {
		if s[i].ID == id {
			return i
		}
	}
	return -1
}

func educationIndex(s []model.Education, id string) int {
	for i := range s {
		if s[i].ID == id {
			return i
		}
	}
	return -1
}

func projectIndex(s []model.Project, id string) int {
	for i := range s {
		if s[i].ID == id {
			return i
		}
	}
	return -1
}

func certificationIndex(s []model.Certification, id string) int {
	for i := range s {
		if s[i].ID == id {
			return i
		}
	}
	return -1
}

func languageIndex(s []model.Language, id string) int {
	for i := range s {
		if s[i].ID == id {
			return i
		}
	}
	return -1
}

func copySkills(s []model.Skill) []model.Skill {
	return append([]model.Skill{}, s...)
}

func copyExperiences(s []model.Experience) []model.Experience {
	return append([]model.Experience{}, s...)
}

func copyEducation(s []model.Education) []model.Education {
	return append([]model.Education{}, s...)
}

func copyProjects(s []model.Project) []model.Project {
	return append([]model.Project{}, s...)
}

func copyCertifications(s []model.Certification) []model.Certification {
	return append([]model.Certification{}, s...)
}

func copyLanguages(s []model.Language) []model.Language {
	return append([]model.Language{}, s...)
}
