package observability

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sudhanva/roadmap-engine/internal/types"
)

func TestPrintPersona(t *testing.T) {
	var buf strings.Builder
	p := NewPrinter(&buf)

	p.PrintPersona(&types.ModularPersona{
		Role:        types.RoleBackend,
		Level:       types.LevelSenior,
		UserType:    types.UserTypeTechProfessional,
		CompanyType: types.CompanyTypeBigTech,
		Original:    types.OriginalAnswers{TargetRole: "Senior Backend Engineer", YearsOfExperience: "7"},
	})

	out := buf.String()
	assert.Contains(t, out, "Modular Persona")
	assert.Contains(t, out, "backend")
	assert.Contains(t, out, "senior")
	assert.Contains(t, out, "bigtech")
}

func TestPrintPersonaNilSafe(t *testing.T) {
	var buf strings.Builder
	NewPrinter(&buf).PrintPersona(nil)
	assert.Empty(t, buf.String())
}

func TestPrintSkillsGap(t *testing.T) {
	var buf strings.Builder
	p := NewPrinter(&buf)

	cfg := &types.ComposedConfig{
		Config: map[string]any{
			"missingSkills": map[string]any{
				"highPriority":   []string{"SQL", "Docker"},
				"mediumPriority": []string{},
				"lowPriority":    []string{"GraphQL"},
			},
		},
		Metadata: types.ComposeMetadata{SkillsGapScore: 50},
	}

	p.PrintSkillsGap(cfg)

	out := buf.String()
	assert.Contains(t, out, "Match score: 50%")
	assert.Contains(t, out, "SQL")
	assert.Contains(t, out, "GraphQL")
	assert.NotContains(t, out, "Medium priority", "empty buckets are skipped")
}

func TestPrintLearningPath(t *testing.T) {
	var buf strings.Builder
	p := NewPrinter(&buf)

	cfg := &types.ComposedConfig{
		Config: map[string]any{
			"learningPath": map[string]any{
				"phases": []any{
					map[string]any{"phaseName": "DSA & Fundamentals", "duration": "4-6 weeks"},
					map[string]any{"title": "Core Backend Foundations", "duration": "8-10 weeks"},
				},
			},
		},
	}

	p.PrintLearningPath(cfg)

	out := buf.String()
	assert.Contains(t, out, "DSA & Fundamentals (4-6 weeks)")
	assert.Contains(t, out, "Core Backend Foundations (8-10 weeks)")
}
