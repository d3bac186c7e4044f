package model

// Starter templates users can pick instead of beginning from scratch. An
// unknown name falls back to the professional starter.

const DefaultStarter = "professional"

// StarterNames lists the available starters in display order.
func StarterNames() []string {
	return []string{"professional", "creative", "executive"}
}

// Starter returns a pre-filled document for the named starter template.
func Starter(name string) ResumeDocument {
	switch name {
	case "creative":
		return creativeStarter()
	case "executive":
		return executiveStarter()
	case "professional":
		return professionalStarter()
	}
	return professionalStarter()
}

func professionalStarter() ResumeDocument {
	doc := NewDocument()
	doc.FullName = "John Doe"
	doc.Email = "john.doe@example.com"
	doc.Phone = "+91 99999 99999"
	doc.Location = "Mumbai, India"
	doc.Summary = "Software engineer with 5 years of experience in building scalable applications."
	doc.Skills = []Skill{
		{ID: NewID(), Name: "JavaScript", Category: CategoryLanguage},
		{ID: NewID(), Name: "React", Category: CategoryFramework},
		{ID: NewID(), Name: "Node.js", Category: CategoryFramework},
		{ID: NewID(), Name: "SQL", Category: CategoryDatabase},
	}
	doc.Experiences = []Experience{{
		ID:        NewID(),
		Title:     "Software Engineer",
		Company:   "Tech Corp",
		StartDate: "2020-01",
		EndDate:   "2023-06",
		Achievements: []Achievement{
			{ID: NewID(), Description: "Developed scalable web applications and APIs."},
		},
	}}
	doc.Education = []Education{{
		ID:        NewID(),
		Degree:    "B.Tech Computer Science",
		School:    "IIT Delhi",
		StartDate: "2014-07",
		EndDate:   "2018-05",
	}}
	return doc
}

func creativeStarter() ResumeDocument {
	doc := NewDocument()
	doc.FullName = "Jane Smith"
	doc.Email = "jane.smith@example.com"
	doc.Phone = "+91 88888 77777"
	doc.Location = "Bangalore, India"
	doc.Summary = "Creative UX designer with passion for crafting intuitive digital experiences."
	doc.Skills = []Skill{
		{ID: NewID(), Name: "Figma", Category: CategoryTool},
		{ID: NewID(), Name: "Photoshop", Category: CategoryTool},
		{ID: NewID(), Name: "Illustrator", Category: CategoryTool},
		{ID: NewID(), Name: "User Research", Category: CategorySoftSkill},
	}
	doc.Experiences = []Experience{{
		ID:        NewID(),
		Title:     "UX Designer",
		Company:   "Design Studio",
		StartDate: "2019-03",
		EndDate:   "",
		Achievements: []Achievement{
			{ID: NewID(), Description: "Created wireframes, prototypes, and conducted user testing."},
		},
	}}
	doc.Education = []Education{{
		ID:        NewID(),
		Degree:    "B.Des in Interaction Design",
		School:    "NID Ahmedabad",
		StartDate: "2013-07",
		EndDate:   "2017-05",
	}}
	return doc
}

func executiveStarter() ResumeDocument {
	doc := NewDocument()
	doc.FullName = "Michael Scott"
	doc.Email = "michael.scott@example.com"
	doc.Phone = "+91 77777 66666"
	doc.Location = "Delhi, India"
	doc.Summary = "Business leader with 10+ years in executive roles driving company growth."
	doc.Skills = []Skill{
		{ID: NewID(), Name: "Leadership", Category: CategorySoftSkill},
		{ID: NewID(), Name: "Strategy", Category: CategorySoftSkill},
		{ID: NewID(), Name: "Operations", Category: CategorySoftSkill},
		{ID: NewID(), Name: "Negotiation", Category: CategorySoftSkill},
	}
	doc.Experiences = []Experience{{
		ID:        NewID(),
		Title:     "CEO",
		Company:   "Dunder Mifflin",
		StartDate: "2015-01",
		EndDate:   "",
		Achievements: []Achievement{
			{ID: NewID(), Description: "Led company operations, improved revenue by 30%."},
		},
	}}
	doc.Education = []Education{{
		ID:        NewID(),
		Degree:    "MBA",
		School:    "IIM Ahmedabad",
		StartDate: "2008-07",
		EndDate:   "2010-05",
	}}
	return doc
}
