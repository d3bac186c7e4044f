package usecase

import (
	"resume-builder/internal/model"
)

// Achievement operations, scoped to the achievements sub-list of a single
// Experience or Project. Sibling entries are never touched; an absent parent
// or achievement id is a silent no-op.

func achievementLists(list ListName) bool {
	return list == ListExperiences || list == ListProjects
}

// AddAchievement appends a fresh empty achievement to the parent entry.
func AddAchievement(doc model.ResumeDocument, parentList ListName, parentID string) (model.ResumeDocument, error) {
	if !achievementLists(parentList) {
		return doc, &InvalidFieldError{Entity: string(parentList), Field: "achievements"}
	}
	ach := model.NewAchievement()
	if parentList == ListExperiences {
		idx := experienceIndex(doc.Experiences, parentID)
		if idx < 0 {
			return doc, nil
		}
		exps := copyExperiences(doc.Experiences)
		exps[idx].Achievements = append(copyAchievements(exps[idx].Achievements), ach)
		doc.Experiences = exps
		return doc, nil
	}
	idx := projectIndex(doc.Projects, parentID)
	if idx < 0 {
		return doc, nil
	}
	projs := copyProjects(doc.Projects)
	projs[idx].Achievements = append(copyAchievements(projs[idx].Achievements), ach)
	doc.Projects = projs
	return doc, nil
}

// RemoveAchievement drops one achievement from the parent entry.
func RemoveAchievement(doc model.ResumeDocument, parentList ListName, parentID, achievementID string) (model.ResumeDocument, error) {
	if !achievementLists(parentList) {
		return doc, &InvalidFieldError{Entity: string(parentList), Field: "achievements"}
	}
	if parentList == ListExperiences {
		idx := experienceIndex(doc.Experiences, parentID)
		if idx < 0 {
			return doc, nil
		}
		aidx := achievementIndex(doc.Experiences[idx].Achievements, achievementID)
		if aidx < 0 {
			return doc, nil
		}
		exps := copyExperiences(doc.Experiences)
		achs := exps[idx].Achievements
		exps[idx].Achievements = append(copyAchievements(achs[:aidx]), achs[aidx+1:]...)
		doc.Experiences = exps
		return doc, nil
	}
	idx := projectIndex(doc.Projects, parentID)
	if idx < 0 {
		return doc, nil
	}
	aidx := achievementIndex(doc.Projects[idx].Achievements, achievementID)
	if aidx < 0 {
		return doc, nil
	}
	projs := copyProjects(doc.Projects)
	achs := projs[idx].Achievements
	projs[idx].Achievements = append(copyAchievements(achs[:aidx]), achs[aidx+1:]...)
	doc.Projects = projs
	return doc, nil
}

// UpdateAchievementDescription replaces the description of one achievement.
func UpdateAchievementDescription(doc model.ResumeDocument, parentList ListName, parentID, achievementID, description string) (model.ResumeDocument, error) {
	if !achievementLists(parentList) {
		return doc, &InvalidFieldError{Entity: string(parentList), Field: "achievements"}
	}
	if parentList == ListExperiences {
		idx := experienceIndex(doc.Experiences, parentID)
		if idx < 0 {
			return doc, nil
		}
		aidx := achievementIndex(doc.Experiences[idx].Achievements, achievementID)
		if aidx < 0 {
			return doc, nil
		}
		exps := copyExperiences(doc.Experiences)
		achs := copyAchievements(exps[idx].Achievements)
		achs[aidx].Description = description
		exps[idx].Achievements = achs
		doc.Experiences = exps
		return doc, nil
	}
	idx := projectIndex(doc.Projects, parentID)
	if idx < 0 {
		return doc, nil
	}
	aidx := achievementIndex(doc.Projects[idx].Achievements, achievementID)
	if aidx < 0 {
		return doc, nil
	}
	projs := copyProjects(doc.Projects)
	achs := copyAchievements(projs[idx].Achievements)
	achs[aidx].Description = description
	projs[idx].Achievements = achs
	doc.Projects = projs
	return doc, nil
}

func achievementIndex(s []model.Achievement, id string) int {
	for i := range s {
		if s[i].ID == id {
			return i
		}
	}
	return -1
}

func copyAchievements(s []model.Achievement) []model.Achievement {
	return append([]model.Achievement{}, s...)
}
