package usecase

import (
	"encoding/json"
	"strings"

	"resume-builder/internal/model"
)

// The import normalizer is the single place that accepts untyped external
// input: stored snapshots, ai-service responses, and legacy payloads where
// skills were a comma-joined string and experiences carried a flat
// description. It always produces a structurally complete document; the only
// failure mode is input that is not structured data at all.

// Normalize parses raw JSON and builds a best-effort document. Non-JSON
// input yields an UnparsableImportError.
func Normalize(raw []byte) (model.ResumeDocument, error) {
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return model.NewDocument(), &UnparsableImportError{Cause: err}
	}
	return NormalizeMap(m), nil
}

// NormalizeMap builds a document from an arbitrary-shaped payload. Absent or
// ill-typed list fields become empty slices, absent scalars become empty
// strings, and entries without an id get a fresh one. It never fails.
func NormalizeMap(m map[string]interface{}) model.ResumeDocument {
	doc := model.NewDocument()
	if m == nil {
		return doc
	}

	doc.FullName = strField(m, "fullName", "full_name", "name")
	doc.Email = strField(m, "email")
	doc.Phone = strField(m, "phone")
	doc.Location = strField(m, "location")
	doc.LinkedIn = strField(m, "linkedin")
	doc.Github = strField(m, "github")
	doc.Portfolio = strField(m, "portfolio")
	doc.Summary = strField(m, "summary")

	doc.Skills = normalizeSkills(m["skills"])
	doc.Experiences = normalizeExperiences(m["experiences"])
	doc.Education = normalizeEducation(m["education"])
	doc.Projects = normalizeProjects(m["projects"])
	doc.Certifications = normalizeCertifications(m["certifications"])
	doc.Languages = normalizeLanguages(m["languages"])

	return doc
}

func normalizeSkills(raw interface{}) []model.Skill {
	out := []model.Skill{}
	switch t := raw.(type) {
	case []interface{}:
		for _, itm := range t {
			entry, ok := itm.(map[string]interface{})
			if !ok {
				continue
			}
			s := model.Skill{
				ID:       idOrNew(entry),
				Name:     strField(entry, "name"),
				Category: model.SkillCategory(strField(entry, "category")),
			}
			out = append(out, s)
		}
	case string:
		// legacy shape: comma-joined skill names
		for _, name := range strings.Split(t, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			out = append(out, model.Skill{ID: model.NewID(), Name: name, Category: model.CategoryTool})
		}
	}
	return out
}

func normalizeExperiences(raw interface{}) []model.Experience {
	out := []model.Experience{}
	items, ok := raw.([]interface{})
	if !ok {
		return out
	}
	for _, itm := range items {
		entry, ok := itm.(map[string]interface{})
		if !ok {
			continue
		}
		exp := model.Experience{
			ID:           idOrNew(entry),
			Title:        strField(entry, "title"),
			Company:      strField(entry, "company"),
			Location:     strField(entry, "location"),
			StartDate:    strField(entry, "startDate", "start_date"),
			EndDate:      strField(entry, "endDate", "end_date"),
			Achievements: normalizeAchievements(entry),
		}
		out = append(out, exp)
	}
	return out
}

// normalizeAchievements reads the achievements list; a legacy flat
// description becomes a single achievement.
func normalizeAchievements(entry map[string]interface{}) []model.Achievement {
	out := []model.Achievement{}
	if items, ok := entry["achievements"].([]interface{}); ok {
		for _, itm := range items {
			switch a := itm.(type) {
			case map[string]interface{}:
				out = append(out, model.Achievement{ID: idOrNew(a), Description: strField(a, "description")})
			case string:
				out = append(out, model.Achievement{ID: model.NewID(), Description: a})
			}
		}
		return out
	}
	if desc := strField(entry, "description"); desc != "" {
		out = append(out, model.Achievement{ID: model.NewID(), Description: desc})
	}
	return out
}

func normalizeEducation(raw interface{}) []model.Education {
	out := []model.Education{}
	items, ok := raw.([]interface{})
	if !ok {
		return out
	}
	for _, itm := range items {
		entry, ok := itm.(map[string]interface{})
		if !ok {
			continue
		}
		edu := model.Education{
			ID:         idOrNew(entry),
			Degree:     strField(entry, "degree"),
			School:     strField(entry, "school"),
			Location:   strField(entry, "location"),
			StartDate:  strField(entry, "startDate", "start_date"),
			EndDate:    strField(entry, "endDate", "end_date"),
			GPA:        strField(entry, "gpa"),
			Coursework: strField(entry, "coursework"),
		}
		// legacy shape used a single graduation year
		if edu.EndDate == "" {
			edu.EndDate = strField(entry, "year")
		}
		out = append(out, edu)
	}
	return out
}

func normalizeProjects(raw interface{}) []model.Project {
	out := []model.Project{}
	items, ok := raw.([]interface{})
	if !ok {
		return out
	}
	for _, itm := range items {
		entry, ok := itm.(map[string]interface{})
		if !ok {
			continue
		}
		proj := model.Project{
			ID:           idOrNew(entry),
			Name:         strField(entry, "name", "title"),
			TechStack:    strField(entry, "techStack", "tech_stack", "stack"),
			GithubLink:   strField(entry, "githubLink", "github_link"),
			LiveLink:     strField(entry, "liveLink", "live_link", "url"),
			Achievements: normalizeAchievements(entry),
		}
		out = append(out, proj)
	}
	return out
}

func normalizeCertifications(raw interface{}) []model.Certification {
	out := []model.Certification{}
	items, ok := raw.([]interface{})
	if !ok {
		return out
	}
	for _, itm := range items {
		switch entry := itm.(type) {
		case map[string]interface{}:
			cert := model.Certification{
				ID:           idOrNew(entry),
				Name:         strField(entry, "name"),
				Organization: strField(entry, "organization"),
				Date:         strField(entry, "date"),
				URL:          strField(entry, "url"),
			}
			if cert.Organization == "" {
				cert.Organization = strField(entry, "issuer")
			}
			out = append(out, cert)
		case string:
			out = append(out, model.Certification{ID: model.NewID(), Name: entry})
		}
	}
	return out
}

func normalizeLanguages(raw interface{}) []model.Language {
	out := []model.Language{}
	items, ok := raw.([]interface{})
	if !ok {
		return out
	}
	for _, itm := range items {
		entry, ok := itm.(map[string]interface{})
		if !ok {
			continue
		}
		out = append(out, model.Language{
			ID:          idOrNew(entry),
			Name:        strField(entry, "name"),
			Proficiency: model.Proficiency(strField(entry, "proficiency")),
		})
	}
	return out
}

// strField returns the first present string value among keys, else "".
func strField(m map[string]interface{}, keys ...string) string {
	for _, k := range keys {
		if v, ok := m[k].(string); ok {
			return v
		}
	}
	return ""
}

func idOrNew(m map[string]interface{}) string {
	if id := strField(m, "id"); id != "" {
		return id
	}
	return model.NewID()
}
