// Package types provides type definitions for structured data used throughout the roadmap-engine system.
package types

import (
	"github.com/go-playground/validator/v10"
)

// Answer vocabularies used by the quiz UI. The engine only branches on the
// values listed here; anything else passes through untouched.
const (
	BackgroundTech    = "tech"
	BackgroundNonTech = "non-tech"

	SystemDesignNever = "never"

	PortfolioNone     = "none"
	PortfolioInactive = "inactive"
	PortfolioLimited  = "limited-1-5"
	PortfolioActive   = "active-5+"
)

// QuizResponse holds the answers a user submitted through the quiz wizard.
// It is immutable for the duration of a composition run.
type QuizResponse struct {
	TargetRole        string   `json:"targetRole" validate:"required"`
	YearsOfExperience string   `json:"yearsOfExperience" validate:"required"`
	Background        string   `json:"background,omitempty"`
	UserType          string   `json:"userType,omitempty"`
	TargetCompanyType string   `json:"targetCompanyType" validate:"required"`
	CurrentSkills     []string `json:"currentSkills,omitempty"`
	ProblemSolving    *int     `json:"problemSolving,omitempty" validate:"omitempty,min=0,max=100"`
	SystemDesign      string   `json:"systemDesign,omitempty"`
	Portfolio         string   `json:"portfolio,omitempty"`
	TimePerWeek       *int     `json:"timePerWeek,omitempty" validate:"omitempty,min=0"`
	Timeline          string   `json:"timeline,omitempty"`
	UserName          string   `json:"userName,omitempty"`
}

// ProfileData carries optional profile information collected outside the quiz.
type ProfileData struct {
	UserName string `json:"userName,omitempty"`
}

// Validate validates the QuizResponse using the validator.
func (q *QuizResponse) Validate() error {
	validate := validator.New()
	return validate.Struct(q)
}
