package templates

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xeipuuv/gojsonschema"
)

// Validator checks template documents against the template JSON Schema.
type Validator struct {
	schema *gojsonschema.Schema
}

// NewValidator compiles the schema at the given path.
func NewValidator(schemaPath string) (*Validator, error) {
	absPath, err := filepath.Abs(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve schema path: %w", err)
	}
	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema %s: %w", absPath, err)
	}
	return NewValidatorFromBytes(data)
}

// NewValidatorFromBytes compiles a schema from raw JSON.
func NewValidatorFromBytes(schemaJSON []byte) (*Validator, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to compile template schema: %w", err)
	}
	return &Validator{schema: schema}, nil
}

// Validate checks a raw template document against the schema. Shape violations
// are reported as an *InvalidTemplateError listing each failing field.
func (v *Validator) Validate(templateJSON []byte, dimension Dimension, value string) error {
	result, err := v.schema.Validate(gojsonschema.NewBytesLoader(templateJSON))
	if err != nil {
		return &InvalidTemplateError{
			Dimension: dimension,
			Value:     value,
			Fields:    []string{fmt.Sprintf("(document): %v", err)},
		}
	}

	if result.Valid() {
		return nil
	}

	fields := make([]string, 0, len(result.Errors()))
	for _, resultErr := range result.Errors() {
		fields = append(fields, fmt.Sprintf("%s: %s", resultErr.Field(), resultErr.Description()))
	}
	return &InvalidTemplateError{Dimension: dimension, Value: value, Fields: fields}
}
