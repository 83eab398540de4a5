// Package composition provides the high-level orchestration that turns quiz
// answers into a personalized roadmap configuration.
package composition

import "fmt"

// Stage names the pipeline step a composition failure occurred in.
type Stage string

// Pipeline stages, in execution order.
const (
	StageValidate   Stage = "validate"
	StageClassify   Stage = "classify"
	StageLoad       Stage = "load-templates"
	StageMerge      Stage = "merge"
	StageInvariants Stage = "invariants"
	StageOverrides  Stage = "overrides"
	StageEnrich     Stage = "enrich"
	StagePersonal   Stage = "personalize"
)

// Error is the umbrella composition failure wrapping the stage-specific cause.
// No stage falls back to defaults: any failure aborts the whole run and the
// caller never receives a partially-populated config.
type Error struct {
	Stage Stage
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("composition failed at %s: %v", e.Stage, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// StructuralInvariantError indicates the merged tree is missing data the
// downstream consumers require, typically a nested default shadowed away by a
// later template.
type StructuralInvariantError struct {
	Path   string
	Detail string
}

func (e *StructuralInvariantError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("structural invariant violated at %s: %s", e.Path, e.Detail)
	}
	return fmt.Sprintf("structural invariant violated: %s is missing from the merged config", e.Path)
}
