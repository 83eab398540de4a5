// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/sudhanva/roadmap-engine/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintPersona outputs a human-readable summary of the classified persona.
func (p *Printer) PrintPersona(persona *types.ModularPersona) {
	if persona == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Role:         %s\n", persona.Role))
	sb.WriteString(fmt.Sprintf("Level:        %s\n", persona.Level))
	sb.WriteString(fmt.Sprintf("User type:    %s\n", persona.UserType))
	sb.WriteString(fmt.Sprintf("Company type: %s\n", persona.CompanyType))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("From: %q, %s years", persona.Original.TargetRole, persona.Original.YearsOfExperience))

	p.printBox("Modular Persona", sb.String())
}

// PrintSkillsGap outputs the match score and missing skills per bucket.
func (p *Printer) PrintSkillsGap(cfg *types.ComposedConfig) {
	if cfg == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Match score: %d%%\n", cfg.Metadata.SkillsGapScore))

	missing, _ := cfg.Config["missingSkills"].(map[string]any)
	for _, bucket := range []struct {
		key   string
		label string
	}{
		{"highPriority", "High priority"},
		{"mediumPriority", "Medium priority"},
		{"lowPriority", "Low priority"},
	} {
		names, _ := missing[bucket.key].([]string)
		if len(names) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("\n%s missing:\n", bucket.label))
		count := min(len(names), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", names[i]))
		}
		if len(names) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(names)-maxItemsToShow))
		}
	}

	p.printBox("Skills Gap", sb.String())
}

// PrintLearningPath outputs the phase plan of the composed roadmap.
func (p *Printer) PrintLearningPath(cfg *types.ComposedConfig) {
	if cfg == nil {
		return
	}
	learningPath, _ := cfg.Config["learningPath"].(map[string]any)
	phases, _ := learningPath["phases"].([]any)
	if len(phases) == 0 {
		return
	}

	var sb strings.Builder
	for _, raw := range phases {
		phase, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		name, _ := phase["title"].(string)
		if name == "" {
			// Injected phases carry phaseName instead of title.
			name, _ = phase["phaseName"].(string)
		}
		duration, _ := phase["duration"].(string)
		if duration != "" {
			sb.WriteString(fmt.Sprintf("%s (%s)\n", name, duration))
		} else {
			sb.WriteString(name + "\n")
		}
	}

	p.printBox("Learning Path", sb.String())
}
