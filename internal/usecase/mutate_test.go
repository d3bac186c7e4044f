package usecase

import (
	"errors"
	"reflect"
	"testing"

	"resume-builder/internal/model"
)

func sampleDocument() model.ResumeDocument {
	doc := model.NewDocument()
	doc.FullName = "Ada Lovelace"
	doc.Email = "ada@example.com"
	doc.Skills = []model.Skill{
		{ID: "s1", Name: "React", Category: model.CategoryFramework},
		{ID: "s2", Name: "SQL", Category: model.CategoryDatabase},
	}
	doc.Experiences = []model.Experience{{
		ID:        "e1",
		Title:     "Engineer",
		Company:   "Acme",
		StartDate: "2020-01",
		EndDate:   "",
		Achievements: []model.Achievement{
			{ID: "a1", Description: "Shipped the thing."},
		},
	}}
	doc.Education = []model.Education{{
		ID: "ed1", Degree: "BSc", School: "Tech U", StartDate: "2014-09", EndDate: "2018-06",
	}}
	return doc
}

func TestSetScalarField_SetThenRead(t *testing.T) {
	tests := []struct {
		field ScalarField
		value string
		read  func(model.ResumeDocument) string
	}{
		{FieldFullName, "Grace Hopper", func(d model.ResumeDocument) string { return d.FullName }},
		{FieldEmail, "g@example.com", func(d model.ResumeDocument) string { return d.Email }},
		{FieldPhone, "+1 555 0100", func(d model.ResumeDocument) string { return d.Phone }},
		{FieldLocation, "Arlington", func(d model.ResumeDocument) string { return d.Location }},
		{FieldLinkedIn, "in/grace", func(d model.ResumeDocument) string { return d.LinkedIn }},
		{FieldGithub, "gh/grace", func(d model.ResumeDocument) string { return d.Github }},
		{FieldPortfolio, "grace.dev", func(d model.ResumeDocument) string { return d.Portfolio }},
		{FieldSummary, "Compiler pioneer.", func(d model.ResumeDocument) string { return d.Summary }},
	}

	for _, tt := range tests {
		t.Run(string(tt.field), func(t *testing.T) {
			doc := sampleDocument()
			out, err := SetScalarField(doc, tt.field, tt.value)
			if err != nil {
				t.Fatalf("SetScalarField: %v", err)
			}
			if got := tt.read(out); got != tt.value {
				t.Errorf("read back %q, want %q", got, tt.value)
			}
		})
	}
}

func TestSetScalarField_InvalidField(t *testing.T) {
	doc := sampleDocument()
	_, err := SetScalarField(doc, "favoriteColor", "blue")
	var invalid *InvalidFieldError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidFieldError, got %v", err)
	}
}

func TestSetScalarField_StructuralSharing(t *testing.T) {
	doc := sampleDocument()
	out, err := SetScalarField(doc, FieldSummary, "updated")
	if err != nil {
		t.Fatalf("SetScalarField: %v", err)
	}

	// untouched lists keep their backing arrays
	if &doc.Skills[0] != &out.Skills[0] {
		t.Errorf("skills backing array was copied")
	}
	if &doc.Experiences[0] != &out.Experiences[0] {
		t.Errorf("experiences backing array was copied")
	}
	if &doc.Education[0] != &out.Education[0] {
		t.Errorf("education backing array was copied")
	}
	// input document untouched
	if doc.Summary == "updated" {
		t.Errorf("input document was mutated")
	}
}

func TestAddListItem_UnaffectedListsShared(t *testing.T) {
	doc := sampleDocument()
	out, err := AddListItem(doc, ListSkills, model.Skill{ID: "s3", Name: "Go", Category: model.CategoryLanguage})
	if err != nil {
		t.Fatalf("AddListItem: %v", err)
	}
	if len(out.Skills) != 3 {
		t.Fatalf("expected 3 skills, got %d", len(out.Skills))
	}
	if len(doc.Skills) != 2 {
		t.Fatalf("input skills list changed, len=%d", len(doc.Skills))
	}
	if &doc.Experiences[0] != &out.Experiences[0] {
		t.Errorf("experiences backing array was copied")
	}
}

func TestAddThenRemove_RestoresList(t *testing.T) {
	lists := []struct {
		name ListName
		item interface{}
		id   string
	}{
		{ListSkills, model.Skill{ID: "tmp", Name: "Rust"}, "tmp"},
		{ListExperiences, model.Experience{ID: "tmp", Title: "Intern", Achievements: []model.Achievement{}}, "tmp"},
		{ListEducation, model.Education{ID: "tmp", Degree: "MSc"}, "tmp"},
		{ListProjects, model.Project{ID: "tmp", Name: "Tool", Achievements: []model.Achievement{}}, "tmp"},
		{ListCertifications, model.Certification{ID: "tmp", Name: "Cert"}, "tmp"},
		{ListLanguages, model.Language{ID: "tmp", Name: "French"}, "tmp"},
	}

	for _, tt := range lists {
		t.Run(string(tt.name), func(t *testing.T) {
			doc := sampleDocument()
			added, err := AddListItem(doc, tt.name, tt.item)
			if err != nil {
				t.Fatalf("AddListItem: %v", err)
			}
			removed, err := RemoveListItem(added, tt.name, tt.id)
			if err != nil {
				t.Fatalf("RemoveListItem: %v", err)
			}
			if !reflect.DeepEqual(doc, removed) {
				t.Errorf("add-then-remove did not restore the document\nbefore %+v\nafter  %+v", doc, removed)
			}
		})
	}
}

func TestAddListItem_WrongItemType(t *testing.T) {
	doc := sampleDocument()
	_, err := AddListItem(doc, ListSkills, model.Experience{ID: "x"})
	var invalid *InvalidFieldError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidFieldError, got %v", err)
	}
}

func TestRemoveListItem_AbsentIDIsNoOp(t *testing.T) {
	for _, list := range []ListName{ListSkills, ListExperiences, ListEducation, ListProjects, ListCertifications, ListLanguages} {
		t.Run(string(list), func(t *testing.T) {
			doc := sampleDocument()
			out, err := RemoveListItem(doc, list, "no-such-id")
			if err != nil {
				t.Fatalf("RemoveListItem: %v", err)
			}
			if !reflect.DeepEqual(doc, out) {
				t.Errorf("no-op removal changed the document")
			}
		})
	}
}

func TestUpdateListItem_AbsentIDIsNoOp(t *testing.T) {
	doc := sampleDocument()
	out, err := UpdateListItem(doc, ListSkills, "no-such-id", "name", "Svelte")
	if err != nil {
		t.Fatalf("UpdateListItem: %v", err)
	}
	if !reflect.DeepEqual(doc, out) {
		t.Errorf("no-op update changed the document")
	}
}

func TestUpdateListItem_ReplacesOneField(t *testing.T) {
	tests := []struct {
		list  ListName
		id    string
		field string
		value string
		read  func(model.ResumeDocument) string
	}{
		{ListSkills, "s1", "name", "Vue", func(d model.ResumeDocument) string { return d.Skills[0].Name }},
		{ListSkills, "s2", "category", "Tool", func(d model.ResumeDocument) string { return string(d.Skills[1].Category) }},
		{ListExperiences, "e1", "company", "Globex", func(d model.ResumeDocument) string { return d.Experiences[0].Company }},
		{ListExperiences, "e1", "endDate", "2024-01", func(d model.ResumeDocument) string { return d.Experiences[0].EndDate }},
		{ListEducation, "ed1", "gpa", "3.9", func(d model.ResumeDocument) string { return d.Education[0].GPA }},
	}

	for _, tt := range tests {
		t.Run(string(tt.list)+"/"+tt.field, func(t *testing.T) {
			doc := sampleDocument()
			out, err := UpdateListItem(doc, tt.list, tt.id, tt.field, tt.value)
			if err != nil {
				t.Fatalf("UpdateListItem: %v", err)
			}
			if got := tt.read(out); got != tt.value {
				t.Errorf("read back %q, want %q", got, tt.value)
			}
		})
	}
}

func TestUpdateListItem_SiblingEntriesUntouched(t *testing.T) {
	doc := sampleDocument()
	out, err := UpdateListItem(doc, ListSkills, "s1", "name", "Vue")
	if err != nil {
		t.Fatalf("UpdateListItem: %v", err)
	}
	if out.Skills[1] != doc.Skills[1] {
		t.Errorf("sibling skill changed: %+v", out.Skills[1])
	}
	if &doc.Experiences[0] != &out.Experiences[0] {
		t.Errorf("unrelated experiences list was copied")
	}
	if doc.Skills[0].Name != "React" {
		t.Errorf("input document was mutated")
	}
}

func TestUpdateListItem_InvalidField(t *testing.T) {
	tests := []struct {
		list  ListName
		field string
	}{
		{ListSkills, "salary"},
		{ListExperiences, "degree"},
		{ListEducation, "company"},
		{ListProjects, "proficiency"},
		{ListCertifications, "school"},
		{ListLanguages, "category"},
	}

	for _, tt := range tests {
		t.Run(string(tt.list)+"/"+tt.field, func(t *testing.T) {
			doc := sampleDocument()
			_, err := UpdateListItem(doc, tt.list, "whatever", tt.field, "x")
			var invalid *InvalidFieldError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected InvalidFieldError, got %v", err)
			}
		})
	}
}

func TestMutations_UnknownListName(t *testing.T) {
	doc := sampleDocument()
	var invalid *InvalidFieldError

	if _, err := AddListItem(doc, "awards", model.Skill{}); !errors.As(err, &invalid) {
		t.Errorf("AddListItem: expected InvalidFieldError, got %v", err)
	}
	if _, err := RemoveListItem(doc, "awards", "x"); !errors.As(err, &invalid) {
		t.Errorf("RemoveListItem: expected InvalidFieldError, got %v", err)
	}
	if _, err := UpdateListItem(doc, "awards", "x", "name", "y"); !errors.As(err, &invalid) {
		t.Errorf("UpdateListItem: expected InvalidFieldError, got %v", err)
	}
}
