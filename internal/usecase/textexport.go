package usecase

import (
	"strings"

	"resume-builder/internal/model"
)

// ExportText renders the document as a flat, line-oriented text file. The
// output is deterministic: the same document always yields byte-identical
// text. Section banners, ordering, and the "Present" substitution are a wire
// contract: the ai-service consumes this text for job matching and cover
// letters, so changes here break that collaborator.
func ExportText(doc model.ResumeDocument) string {
	lines := []string{}

	if doc.FullName != "" {
		lines = append(lines, doc.FullName)
	}
	contact := joinNonEmpty(" | ", doc.Email, doc.Phone, doc.Location, doc.LinkedIn, doc.Github, doc.Portfolio)
	if contact != "" {
		lines = append(lines, contact)
	}

	if doc.Summary != "" {
		lines = append(lines, "\nSUMMARY", doc.Summary)
	}

	if len(doc.Skills) > 0 {
		names := make([]string, 0, len(doc.Skills))
		for _, s := range doc.Skills {
			names = append(names, s.Name)
		}
		lines = append(lines, "\nSKILLS", strings.Join(names, ", "))
	}

	if len(doc.Experiences) > 0 {
		lines = append(lines, "\nEXPERIENCE")
		for _, exp := range doc.Experiences {
			lines = append(lines, exp.Title+" - "+exp.Company)
			if exp.Location != "" {
				lines = append(lines, exp.Location)
			}
			lines = append(lines, dateRange(exp.StartDate, exp.EndDate))
			for _, a := range exp.Achievements {
				lines = append(lines, "• "+a.Description)
			}
			lines = append(lines, "")
		}
	}

	if len(doc.Projects) > 0 {
		lines = append(lines, "\nPROJECTS")
		for _, proj := range doc.Projects {
			lines = append(lines, proj.Name)
			if proj.TechStack != "" {
				lines = append(lines, "Tech: "+proj.TechStack)
			}
			if proj.GithubLink != "" {
				lines = append(lines, "GitHub: "+proj.GithubLink)
			}
			if proj.LiveLink != "" {
				lines = append(lines, "Live: "+proj.LiveLink)
			}
			for _, a := range proj.Achievements {
				lines = append(lines, "• "+a.Description)
			}
			lines = append(lines, "")
		}
	}

	if len(doc.Education) > 0 {
		lines = append(lines, "\nEDUCATION")
		for _, edu := range doc.Education {
			lines = append(lines, edu.Degree+" - "+edu.School)
			if edu.Location != "" {
				lines = append(lines, edu.Location)
			}
			lines = append(lines, dateRange(edu.StartDate, edu.EndDate))
			if edu.GPA != "" {
				lines = append(lines, "GPA: "+edu.GPA)
			}
		}
	}

	if len(doc.Certifications) > 0 {
		lines = append(lines, "\nCERTIFICATIONS")
		for _, cert := range doc.Certifications {
			line := cert.Name + " - " + cert.Organization
			if cert.Date != "" {
				line += " (" + cert.Date + ")"
			}
			lines = append(lines, line)
		}
	}

	if len(doc.Languages) > 0 {
		lines = append(lines, "\nLANGUAGES")
		for _, lang := range doc.Languages {
			lines = append(lines, lang.Name+" - "+string(lang.Proficiency))
		}
	}

	return strings.Join(lines, "\n")
}

// dateRange renders "start - end", substituting "Present" for an empty end
// date. Ongoing entries must say "Present" in every serialization.
func dateRange(start, end string) string {
	if end == "" {
		end = "Present"
	}
	return start + " - " + end
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
