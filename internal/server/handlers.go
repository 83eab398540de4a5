package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"regexp"
	"time"

	"github.com/sudhanva/roadmap-engine/internal/templates"
	"github.com/sudhanva/roadmap-engine/internal/types"
)

// GenerateRequest is the request body for POST /roadmap/generate.
type GenerateRequest struct {
	QuizResponses *types.QuizResponse `json:"quizResponses"`
	ProfileData   *types.ProfileData  `json:"profileData,omitempty"`
}

// GenerateResponse is the success envelope for POST /roadmap/generate.
type GenerateResponse struct {
	Success   bool                  `json:"success"`
	Data      map[string]any        `json:"data"`
	Metadata  types.ComposeMetadata `json:"metadata"`
	Timestamp string                `json:"timestamp"`
}

// handleGenerate composes a personalized roadmap from quiz responses.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid JSON in request body")
		return
	}

	if req.QuizResponses == nil {
		s.errorResponse(w, http.StatusBadRequest, "missing_quiz_responses", "quizResponses is required")
		return
	}

	result, err := s.composer.Compose(r.Context(), req.QuizResponses, req.ProfileData)
	if err != nil {
		status := HTTPStatus(err)
		if status >= http.StatusInternalServerError {
			log.Printf("[generate] Composition failed: %v", err)
		}
		s.errorResponse(w, status, "composition_failed", err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, GenerateResponse{
		Success:   true,
		Data:      result.Config,
		Metadata:  result.Metadata,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// personaValuePattern restricts path values to safe template identifiers.
// Anything else (dots, slashes, uppercase) is rejected before touching the
// store, so the filesystem store cannot be walked with traversal sequences.
var personaValuePattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

var personaDimensions = map[string]templates.Dimension{
	"roles":         templates.DimensionRoles,
	"levels":        templates.DimensionLevels,
	"user-types":    templates.DimensionUserTypes,
	"company-types": templates.DimensionCompanyTypes,
}

// handleGetPersona serves a single persona template by dimension and value.
func (s *Server) handleGetPersona(w http.ResponseWriter, r *http.Request) {
	dimension, ok := personaDimensions[r.PathValue("dimension")]
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "invalid_dimension",
			"dimension must be one of: roles, levels, user-types, company-types")
		return
	}

	value := r.PathValue("value")
	if !personaValuePattern.MatchString(value) {
		s.errorResponse(w, http.StatusBadRequest, "invalid_value", "persona value contains invalid characters")
		return
	}

	tmpl, err := s.store.Load(r.Context(), dimension, value)
	if err != nil {
		var notFound *templates.NotFoundError
		if errors.As(err, &notFound) {
			s.errorResponse(w, http.StatusNotFound, "persona_not_found", err.Error())
			return
		}
		log.Printf("[personas] Load failed for %s/%s: %v", dimension, value, err)
		s.errorResponse(w, http.StatusInternalServerError, "persona_load_failed", "failed to load persona template")
		return
	}

	s.jsonResponse(w, http.StatusOK, tmpl)
}
