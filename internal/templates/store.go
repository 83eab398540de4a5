// Package templates provides read-only access to the JSON template fragments
// that persona composition merges, addressed by (dimension, value).
package templates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sudhanva/roadmap-engine/internal/types"
)

// Dimension names the four addressable template collections.
type Dimension string

// Template collections. Each is keyed by the corresponding persona enum.
const (
	DimensionRoles        Dimension = "roles"
	DimensionLevels       Dimension = "levels"
	DimensionUserTypes    Dimension = "user-types"
	DimensionCompanyTypes Dimension = "company-types"
)

// Store loads a template for one dimension value. Implementations must fail
// with *NotFoundError when the named resource does not exist; substituting an
// empty template is never acceptable.
type Store interface {
	Load(ctx context.Context, dimension Dimension, value string) (types.Template, error)
}

// FSStore loads templates from a directory tree laid out as
// <root>/<dimension>/<value>.json.
type FSStore struct {
	root      string
	validator *Validator
}

// NewFSStore creates a store reading from the given root directory. The
// validator is optional; when set, every loaded template is checked against
// the template schema.
func NewFSStore(root string, validator *Validator) *FSStore {
	return &FSStore{root: root, validator: validator}
}

// Load reads and decodes a single template file.
func (s *FSStore) Load(_ context.Context, dimension Dimension, value string) (types.Template, error) {
	path := filepath.Join(s.root, string(dimension), value+".json")

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Dimension: dimension, Value: value}
		}
		return nil, fmt.Errorf("failed to read template %s/%s: %w", dimension, value, err)
	}

	return decodeTemplate(data, dimension, value, s.validator)
}

// decodeTemplate parses raw JSON into a Template and optionally validates its
// shape against the schema.
func decodeTemplate(data []byte, dimension Dimension, value string, validator *Validator) (types.Template, error) {
	var tpl types.Template
	if err := json.Unmarshal(data, &tpl); err != nil {
		return nil, &InvalidTemplateError{
			Dimension: dimension,
			Value:     value,
			Fields:    []string{fmt.Sprintf("(document): %v", err)},
		}
	}

	if validator != nil {
		if err := validator.Validate(data, dimension, value); err != nil {
			return nil, err
		}
	}

	return tpl, nil
}
