package overrides

import (
	"math"
	"strings"

	"github.com/sudhanva/roadmap-engine/internal/types"
)

const fundamentalsPhaseName = "DSA & Fundamentals"

const systemDesignTopic = "System Design Fundamentals"

// Apply runs every override rule against the composed tree, in place. The
// tree must be the orchestrator's private working copy. Each rule is gated by
// one quiz answer, touches only its own region of the tree, and guards
// against re-inserting content that is already present.
func Apply(tree map[string]any, quiz *types.QuizResponse, policy Policy) {
	applyProblemSolving(tree, quiz, policy)
	applyTimeBudget(tree, quiz, policy)
	applyPortfolio(tree, quiz)
	applySystemDesign(tree, quiz)
}

// applyProblemSolving prepends a remedial fundamentals phase for users with
// low problem-solving confidence.
func applyProblemSolving(tree map[string]any, quiz *types.QuizResponse, policy Policy) {
	if quiz.ProblemSolving == nil || *quiz.ProblemSolving > policy.LowProblemSolving {
		return
	}

	learningPath := childMap(tree, "learningPath")
	if learningPath == nil {
		return
	}
	phases, ok := learningPath["phases"].([]any)
	if !ok {
		return
	}

	// Idempotent: never insert the phase twice.
	for _, p := range phases {
		if phase, ok := p.(map[string]any); ok {
			if name, _ := phase["phaseName"].(string); name == fundamentalsPhaseName {
				return
			}
		}
	}

	remedial := map[string]any{
		"phaseNumber": 0,
		"phaseName":   fundamentalsPhaseName,
		"duration":    "4-6 weeks",
		"focus":       "Core data structures and algorithms",
		"topics": []any{
			"Arrays and Linked Lists",
			"Stacks and Queues",
			"Trees and Graphs",
			"Sorting and Searching",
			"Dynamic Programming basics",
		},
	}

	learningPath["phases"] = append([]any{remedial}, phases...)
	learningPath["totalPhases"] = intValue(learningPath["totalPhases"], 3) + 1
}

// applyTimeBudget stretches or compresses the estimated duration range based
// on the user's weekly time budget.
func applyTimeBudget(tree map[string]any, quiz *types.QuizResponse, policy Policy) {
	if quiz.TimePerWeek == nil {
		return
	}

	stats := childMap(childMap(tree, "hero"), "stats")
	if stats == nil {
		return
	}
	raw, ok := stats["estimatedDuration"].(string)
	if !ok {
		return
	}
	duration, err := types.ParseDuration(raw)
	if err != nil {
		// Not the structured "N-M months" form; leave the text untouched
		// rather than guess at its meaning.
		return
	}

	switch {
	case *quiz.TimePerWeek < policy.LowHoursPerWeek:
		stats["estimatedDuration"] = Extend(duration, policy.ExtendFactor).String()
	case *quiz.TimePerWeek > policy.HighHoursPerWeek:
		stats["estimatedDuration"] = Compress(duration, policy.CompressFactor, policy.MinMonthsFloor, policy.MaxMonthsFloor).String()
	}
}

// applyPortfolio sets the starting project-tier hint consumed by the projects
// UI.
func applyPortfolio(tree map[string]any, quiz *types.QuizResponse) {
	var tier string
	switch quiz.Portfolio {
	case types.PortfolioActive:
		tier = "tier2"
	case types.PortfolioNone, types.PortfolioInactive:
		tier = "tier1"
	default:
		return
	}
	adaptation := childMap(tree, "projectsAdaptation")
	if adaptation == nil {
		adaptation = map[string]any{}
		tree["projectsAdaptation"] = adaptation
	}
	adaptation["startingTier"] = tier
}

// applySystemDesign ensures users without system-design exposure meet the
// topic in their first learning phase.
func applySystemDesign(tree map[string]any, quiz *types.QuizResponse) {
	if quiz.SystemDesign != types.SystemDesignNever {
		return
	}

	learningPath := childMap(tree, "learningPath")
	if learningPath == nil {
		return
	}
	phases, ok := learningPath["phases"].([]any)
	if !ok || len(phases) == 0 {
		return
	}
	first, ok := phases[0].(map[string]any)
	if !ok {
		return
	}
	topics, ok := first["topics"].([]any)
	if !ok {
		return
	}

	for _, t := range topics {
		if s, ok := t.(string); ok && strings.Contains(s, "System Design") {
			return
		}
	}

	first["topics"] = append([]any{systemDesignTopic}, topics...)
}

// Extend scales both bounds of a duration up, rounding each bound up to whole
// months.
func Extend(d types.Duration, factor float64) types.Duration {
	return types.Duration{
		MinMonths: int(math.Ceil(float64(d.MinMonths) * factor)),
		MaxMonths: int(math.Ceil(float64(d.MaxMonths) * factor)),
	}
}

// Compress scales both bounds of a duration down, rounding each bound down to
// whole months and clamping to the given floors so the range never collapses.
func Compress(d types.Duration, factor float64, minFloor, maxFloor int) types.Duration {
	lo := int(math.Floor(float64(d.MinMonths) * factor))
	hi := int(math.Floor(float64(d.MaxMonths) * factor))
	if lo < minFloor {
		lo = minFloor
	}
	if hi < maxFloor {
		hi = maxFloor
	}
	return types.Duration{MinMonths: lo, MaxMonths: hi}
}

// childMap returns m[key] as a map, or nil when absent or of another type.
func childMap(m map[string]any, key string) map[string]any {
	if m == nil {
		return nil
	}
	child, _ := m[key].(map[string]any)
	return child
}

// intValue reads a numeric tree value, tolerating the float64 form JSON
// decoding produces.
func intValue(v any, fallback int) int {
	switch n := v.(type) {
	case int:
		return n
	case float64:
		return int(n)
	default:
		return fallback
	}
}
