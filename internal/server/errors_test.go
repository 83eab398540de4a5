package server

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sudhanva/roadmap-engine/internal/composition"
	"github.com/sudhanva/roadmap-engine/internal/persona"
	"github.com/sudhanva/roadmap-engine/internal/templates"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "missing field is client error",
			err:  &persona.MissingFieldError{Field: "targetRole"},
			want: http.StatusBadRequest,
		},
		{
			name: "unrecognized role is client error",
			err:  &persona.UnrecognizedRoleError{Input: "Chef"},
			want: http.StatusBadRequest,
		},
		{
			name: "unrecognized company type is client error",
			err:  &persona.UnrecognizedCompanyTypeError{Input: "bakery"},
			want: http.StatusBadRequest,
		},
		{
			name: "missing template is a server-side content bug",
			err:  &templates.NotFoundError{Dimension: templates.DimensionRoles, Value: "backend"},
			want: http.StatusInternalServerError,
		},
		{
			name: "invariant violation is a server error",
			err:  &composition.StructuralInvariantError{Path: "skillMap.thresholds.averageBaseline"},
			want: http.StatusInternalServerError,
		},
		{
			name: "stage wrapper is unwrapped",
			err: &composition.Error{
				Stage: composition.StageClassify,
				Err:   &persona.InvalidYearsError{Input: "many"},
			},
			want: http.StatusBadRequest,
		},
		{
			name: "unknown error defaults to internal",
			err:  errors.New("boom"),
			want: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}
