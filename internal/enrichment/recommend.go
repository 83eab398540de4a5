package enrichment

import "fmt"

const maxTopSkills = 3

// topSkillsToLearn picks the first missing skills in bucket priority order.
func topSkillsToLearn(res Result) []string {
	top := []string{}
	for _, bucket := range [][]string{res.High.Missing, res.Medium.Missing, res.Low.Missing} {
		for _, name := range bucket {
			if len(top) == maxTopSkills {
				return top
			}
			top = append(top, name)
		}
	}
	return top
}

// nextSteps turns the top missing skills into an ordered learning plan.
func nextSteps(topSkills []string) []map[string]any {
	steps := []map[string]any{}

	if len(topSkills) > 0 {
		steps = append(steps, map[string]any{
			"step":        1,
			"title":       fmt.Sprintf("Master %s", topSkills[0]),
			"description": "This is your highest priority skill. Focus on building strong fundamentals and practical projects.",
			"action":      "Start with basics, then build 2-3 projects",
			"timeframe":   "Week 1-4",
		})
	}
	if len(topSkills) > 1 {
		steps = append(steps, map[string]any{
			"step":        2,
			"title":       fmt.Sprintf("Learn %s", topSkills[1]),
			"description": fmt.Sprintf("Once comfortable with %s, move to this important supporting skill.", topSkills[0]),
			"action":      "Complete an online course and build integration projects",
			"timeframe":   "Week 5-8",
		})
	}
	if len(topSkills) > 2 {
		steps = append(steps, map[string]any{
			"step":        3,
			"title":       fmt.Sprintf("Add %s to your toolkit", topSkills[2]),
			"description": "Round out your skillset with this valuable addition.",
			"action":      "Learn through documentation and mini-projects",
			"timeframe":   "Week 9-12",
		})
	}

	steps = append(steps, map[string]any{
		"step":        len(steps) + 1,
		"title":       "Build Portfolio Projects",
		"description": "Create 2-3 projects that showcase your new skills in real-world scenarios.",
		"action":      "Build projects that combine multiple skills",
		"timeframe":   "Ongoing",
	})
	steps = append(steps, map[string]any{
		"step":        len(steps) + 1,
		"title":       "Prepare for Interviews",
		"description": "Practice technical interviews and system design based on your target role.",
		"action":      "Solve problems, review system design, practice mock interviews",
		"timeframe":   "Last 2-4 weeks",
	})

	return steps
}

// focusAreas summarizes where the gaps concentrate.
func focusAreas(res Result) []string {
	areas := []string{}

	highCount := len(res.High.Missing)
	switch {
	case highCount > 5:
		areas = append(areas, "Focus heavily on core fundamentals - you have significant gaps in essential skills")
	case highCount > 0:
		areas = append(areas, "Prioritize mastering the essential skills first before moving to advanced topics")
	}

	if len(res.Medium.Missing) > 8 {
		areas = append(areas, "Build strong supporting skills through projects and hands-on practice")
	}
	if len(res.Low.Missing) > 0 {
		areas = append(areas, "Learn specialized skills as you progress - these are nice-to-have additions")
	}

	if len(areas) == 0 {
		areas = append(areas, "You're on track! Focus on depth in your existing skills and build projects to showcase them")
	}
	return areas
}
