package templates

import (
	"fmt"
	"strings"
)

// NotFoundError indicates a template resource for a classified dimension value
// does not exist. This is a content bug: a valid enum value must always have a
// backing template, so the whole composition aborts.
type NotFoundError struct {
	Dimension Dimension
	Value     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("template not found: %s/%s", e.Dimension, e.Value)
}

// InvalidTemplateError indicates a template exists but its content does not
// match the expected shape.
type InvalidTemplateError struct {
	Dimension Dimension
	Value     string
	Fields    []string
}

func (e *InvalidTemplateError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "invalid template %s/%s:", e.Dimension, e.Value)
	for _, f := range e.Fields {
		sb.WriteString("\n  ")
		sb.WriteString(f)
	}
	return sb.String()
}
