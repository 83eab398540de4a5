// Package overrides applies quiz-answer-driven adjustments to a composed
// roadmap tree after the template merge.
package overrides

// Policy holds the numeric thresholds and multipliers the override rules are
// gated on. The defaults mirror observed product behavior; they are policy
// constants, not derivable values, so deployments can tune them through
// configuration.
type Policy struct {
	// LowProblemSolving is the confidence score (0-100) at or below which a
	// remedial fundamentals phase is prepended to the learning path.
	LowProblemSolving int `json:"low_problem_solving"`

	// LowHoursPerWeek and HighHoursPerWeek bound the weekly time budget.
	// Below the low bound the estimated timeline is extended; above the high
	// bound it is compressed.
	LowHoursPerWeek  int `json:"low_hours_per_week"`
	HighHoursPerWeek int `json:"high_hours_per_week"`

	// ExtendFactor and CompressFactor scale both bounds of the estimated
	// duration range.
	ExtendFactor   float64 `json:"extend_factor"`
	CompressFactor float64 `json:"compress_factor"`

	// MinMonthsFloor and MaxMonthsFloor keep compression from producing a
	// degenerate range.
	MinMonthsFloor int `json:"min_months_floor"`
	MaxMonthsFloor int `json:"max_months_floor"`
}

// DefaultPolicy returns the thresholds in production use.
func DefaultPolicy() Policy {
	return Policy{
		LowProblemSolving: 10,
		LowHoursPerWeek:   10,
		HighHoursPerWeek:  20,
		ExtendFactor:      1.4,
		CompressFactor:    0.8,
		MinMonthsFloor:    1,
		MaxMonthsFloor:    2,
	}
}
