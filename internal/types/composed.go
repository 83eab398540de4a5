package types

import (
	"time"

	"github.com/google/uuid"
)

// ComposeMetadata describes how a composed config was produced.
type ComposeMetadata struct {
	RunID          uuid.UUID       `json:"runId"`
	ModularPersona *ModularPersona `json:"modularPersona"`
	SkillsGapScore int             `json:"skillsGapScore"`
	GeneratedAt    time.Time       `json:"generatedAt"`
}

// ComposedConfig is the final roadmap configuration: four templates deep-merged
// in priority order, adjusted by user-override rules and extended with derived
// skill-gap data. It is created fresh per quiz submission, consumed once by
// the presentation layer, and never persisted.
type ComposedConfig struct {
	Config   map[string]any  `json:"config"`
	Metadata ComposeMetadata `json:"metadata"`
}
