// Package server provides the HTTP REST API for the roadmap engine.
package server

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/sudhanva/roadmap-engine/internal/composition"
	"github.com/sudhanva/roadmap-engine/internal/persona"
	"github.com/sudhanva/roadmap-engine/internal/templates"
)

// HTTPStatus returns the appropriate HTTP status code for an error.
//
// Classification and validation failures are the caller's fault. Missing or
// malformed templates are server-side data problems: the catalog is supposed
// to cover every classified persona, so a miss is an internal error rather
// than a 404.
func HTTPStatus(err error) int {
	// Unwrap the pipeline stage wrapper so the cause decides the status.
	var stageErr *composition.Error
	if errors.As(err, &stageErr) {
		err = stageErr.Err
	}

	var (
		missingField    *persona.MissingFieldError
		unknownRole     *persona.UnrecognizedRoleError
		unknownCompany  *persona.UnrecognizedCompanyTypeError
		invalidYears    *persona.InvalidYearsError
		validationErrs  validator.ValidationErrors
		notFound        *templates.NotFoundError
		invalidTemplate *templates.InvalidTemplateError
		invariant       *composition.StructuralInvariantError
	)

	switch {
	case errors.As(err, &missingField),
		errors.As(err, &unknownRole),
		errors.As(err, &unknownCompany),
		errors.As(err, &invalidYears),
		errors.As(err, &validationErrs):
		return http.StatusBadRequest
	case errors.As(err, &notFound),
		errors.As(err, &invalidTemplate),
		errors.As(err, &invariant):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
