// Package enrichment derives skill-gap data from a composed roadmap tree and
// the user's self-reported skills.
package enrichment

import (
	"strings"
	"time"

	"github.com/sudhanva/roadmap-engine/internal/types"
)

// Breakdown is the have/missing split of one priority bucket. Matching is
// case-insensitive exact name equality, never fuzzy: every catalog skill lands
// in exactly one of the two sides.
type Breakdown struct {
	Have    []string
	Missing []string
}

// Result carries the derived skill-gap data attached back onto the tree.
type Result struct {
	MatchScore int
	High       Breakdown
	Medium     Breakdown
	Low        Breakdown
}

// Enrich computes the skill gap from the tree's metadata.skills catalog and
// the quiz's current skills, attaches the derived structures onto the tree in
// place, and returns the result. The tree must be the orchestrator's working
// copy.
func Enrich(tree map[string]any, quiz *types.QuizResponse) Result {
	catalog := parseCatalog(tree)
	current := normalizeSet(quiz.CurrentSkills)

	critical := filterByPriority(catalog, types.SkillPriorityCritical)
	high := filterByPriority(catalog, types.SkillPriorityHigh)
	medium := filterByPriority(catalog, types.SkillPriorityMedium)

	res := Result{
		// Catalog priorities shift one tier down in the output buckets:
		// critical feeds the high-priority bucket and so on.
		High:   split(critical, current),
		Medium: split(high, current),
		Low:    split(medium, current),
	}
	res.MatchScore = matchScore(critical, current)

	attach(tree, quiz, res)
	return res
}

// matchScore is the percentage of critical catalog skills the user already
// has, rounded to the nearest integer. No critical skills means score zero.
func matchScore(critical []string, current map[string]bool) int {
	if len(critical) == 0 {
		return 0
	}
	have := 0
	for _, name := range critical {
		if current[strings.ToLower(name)] {
			have++
		}
	}
	return int(float64(have)/float64(len(critical))*100 + 0.5)
}

// split partitions catalog skill names into held and missing, preserving
// catalog order.
func split(names []string, current map[string]bool) Breakdown {
	b := Breakdown{Have: []string{}, Missing: []string{}}
	for _, name := range names {
		if current[strings.ToLower(name)] {
			b.Have = append(b.Have, name)
		} else {
			b.Missing = append(b.Missing, name)
		}
	}
	return b
}

// parseCatalog reads metadata.skills entries, skipping malformed ones.
func parseCatalog(tree map[string]any) []types.CatalogSkill {
	metadata, _ := tree["metadata"].(map[string]any)
	if metadata == nil {
		return nil
	}
	raw, _ := metadata["skills"].([]any)

	catalog := make([]types.CatalogSkill, 0, len(raw))
	for _, entry := range raw {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		name, _ := m["name"].(string)
		priority, _ := m["priority"].(string)
		if name == "" || priority == "" {
			continue
		}
		category, _ := m["category"].(string)
		catalog = append(catalog, types.CatalogSkill{Name: name, Priority: priority, Category: category})
	}
	return catalog
}

func filterByPriority(catalog []types.CatalogSkill, priority string) []string {
	var names []string
	for _, s := range catalog {
		if s.Priority == priority {
			names = append(names, s.Name)
		}
	}
	return names
}

func normalizeSet(skills []string) map[string]bool {
	set := make(map[string]bool, len(skills))
	for _, s := range skills {
		set[strings.ToLower(strings.TrimSpace(s))] = true
	}
	return set
}

// attach writes the derived structures into the tree under the field names the
// presentation components consume.
func attach(tree map[string]any, quiz *types.QuizResponse, res Result) {
	currentSkills := quiz.CurrentSkills
	if currentSkills == nil {
		currentSkills = []string{}
	}

	skillsGap, _ := tree["skillsGap"].(map[string]any)
	if skillsGap == nil {
		skillsGap = map[string]any{}
		tree["skillsGap"] = skillsGap
	}
	skillsGap["matchScore"] = res.MatchScore
	skillsGap["personalized"] = map[string]any{
		"currentSkills":           currentSkills,
		"currentCount":            len(currentSkills),
		"highPriorityBreakdown":   map[string]any{"have": res.High.Have, "missing": res.High.Missing},
		"mediumPriorityBreakdown": map[string]any{"have": res.Medium.Have, "missing": res.Medium.Missing},
		"lowPriorityBreakdown":    map[string]any{"have": res.Low.Have, "missing": res.Low.Missing},
	}

	tree["missingSkills"] = map[string]any{
		"highPriority":   res.High.Missing,
		"mediumPriority": res.Medium.Missing,
		"lowPriority":    res.Low.Missing,
	}
	tree["existingSkills"] = map[string]any{
		"highPriority":   res.High.Have,
		"mediumPriority": res.Medium.Have,
		"lowPriority":    res.Low.Have,
	}

	// Mirror companiesInsight.tabs under .types for components that read the
	// flattened form.
	if insight, ok := tree["companiesInsight"].(map[string]any); ok {
		if _, hasTypes := insight["types"]; !hasTypes {
			if tabs, hasTabs := insight["tabs"]; hasTabs {
				insight["types"] = tabs
			}
		}
	}

	userName := quiz.UserName
	if userName == "" {
		userName = "User"
	}
	personalization := map[string]any{
		"userName":          userName,
		"targetRole":        quiz.TargetRole,
		"yearsOfExperience": quiz.YearsOfExperience,
		"generatedAt":       time.Now().UTC().Format(time.RFC3339),
	}
	if quiz.Timeline != "" {
		personalization["timeline"] = quiz.Timeline
	}
	if quiz.TimePerWeek != nil {
		personalization["timePerWeek"] = *quiz.TimePerWeek
	}
	tree["personalization"] = personalization

	tree["recommendations"] = map[string]any{
		"topSkillsToLearn": topSkillsToLearn(res),
		"nextSteps":        nextSteps(topSkillsToLearn(res)),
		"focusAreas":       focusAreas(res),
	}
}
