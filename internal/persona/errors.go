// Package persona maps raw quiz answers onto the four canonical persona
// dimensions: role, experience level, user type and target-company type.
package persona

import "fmt"

// MissingFieldError indicates a mandatory quiz field was absent. Classification
// never guesses a default for a missing mandatory answer.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// UnrecognizedRoleError indicates the target role matched no known role key
// after all normalization attempts.
type UnrecognizedRoleError struct {
	Input string
}

func (e *UnrecognizedRoleError) Error() string {
	return fmt.Sprintf("unrecognized target role %q: must map to one of backend, frontend, fullstack, devops, data", e.Input)
}

// UnrecognizedCompanyTypeError indicates the target company type matched no
// known company-type key.
type UnrecognizedCompanyTypeError struct {
	Input string
}

func (e *UnrecognizedCompanyTypeError) Error() string {
	return fmt.Sprintf("unrecognized target company type %q: must map to one of startup, scaleup, bigtech, service", e.Input)
}

// InvalidYearsError indicates yearsOfExperience contained no parseable number.
type InvalidYearsError struct {
	Input string
}

func (e *InvalidYearsError) Error() string {
	return fmt.Sprintf("invalid years of experience %q: expected a number or a range like \"3-5\"", e.Input)
}
