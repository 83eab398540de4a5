package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sudhanva/roadmap-engine/internal/templates"
	"github.com/sudhanva/roadmap-engine/internal/types"
)

// fakeStore serves templates from memory.
type fakeStore struct {
	templates map[string]types.Template
}

func (s *fakeStore) Load(_ context.Context, dimension templates.Dimension, value string) (types.Template, error) {
	tpl, ok := s.templates[fmt.Sprintf("%s/%s", dimension, value)]
	if !ok {
		return nil, &templates.NotFoundError{Dimension: dimension, Value: value}
	}
	return tpl, nil
}

func testStore() *fakeStore {
	store := &fakeStore{templates: map[string]types.Template{}}
	for _, role := range types.AllRoles() {
		store.templates["roles/"+string(role)] = types.Template{
			"metadata": map[string]any{
				"skills": []any{map[string]any{"name": "Skill A", "priority": "critical"}},
			},
			"hero": map[string]any{
				"title": "Your {targetRole} Roadmap",
				"stats": map[string]any{"estimatedDuration": "6-9 months"},
			},
			"skillMap": map[string]any{
				"thresholds": map[string]any{"averageBaseline": 60.0},
			},
			"learningPath": map[string]any{
				"phases": []any{map[string]any{"phaseNumber": 1, "title": "Foundations", "topics": []any{"Basics"}}},
			},
		}
	}
	for _, level := range types.AllLevels() {
		store.templates["levels/"+string(level)] = types.Template{"pacing": map[string]any{}}
	}
	for _, ut := range types.AllUserTypes() {
		store.templates["user-types/"+string(ut)] = types.Template{"framing": map[string]any{}}
	}
	for _, ct := range types.AllCompanyTypes() {
		store.templates["company-types/"+string(ct)] = types.Template{"interviewPrep": map[string]any{}}
	}
	return store
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	s, err := New(Config{Port: 0, Store: testStore()})
	require.NoError(t, err)

	srv := httptest.NewServer(s.httpServer.Handler)
	t.Cleanup(srv.Close)
	t.Cleanup(s.rateLimiter.Stop)
	return srv
}

func TestHandleGenerate(t *testing.T) {
	srv := newTestServer(t)

	body := `{
		"quizResponses": {
			"targetRole": "Backend Engineer",
			"yearsOfExperience": "5",
			"targetCompanyType": "startup",
			"currentSkills": ["Skill A"],
			"userName": "Asha"
		}
	}`

	resp, err := http.Post(srv.URL+"/roadmap/generate", "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Success  bool                  `json:"success"`
		Data     map[string]any        `json:"data"`
		Metadata types.ComposeMetadata `json:"metadata"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))

	assert.True(t, out.Success)
	assert.Equal(t, types.RoleBackend, out.Metadata.ModularPersona.Role)
	assert.Equal(t, types.LevelSenior, out.Metadata.ModularPersona.Level)
	assert.Contains(t, out.Data, "skillsGap")

	hero := out.Data["hero"].(map[string]any)
	assert.Equal(t, "Hey Asha! 👋", hero["greeting"])
}

func TestHandleGenerateBadRequests(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{name: "malformed json", body: `{broken`, wantStatus: http.StatusBadRequest},
		{name: "missing quiz responses", body: `{}`, wantStatus: http.StatusBadRequest},
		{
			name:       "missing required field",
			body:       `{"quizResponses": {"yearsOfExperience": "3", "targetCompanyType": "startup"}}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unrecognized role",
			body:       `{"quizResponses": {"targetRole": "Chef", "yearsOfExperience": "3", "targetCompanyType": "startup"}}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unrecognized company type",
			body:       `{"quizResponses": {"targetRole": "backend", "yearsOfExperience": "3", "targetCompanyType": "bakery"}}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(srv.URL+"/roadmap/generate", "application/json", bytes.NewBufferString(tt.body))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			var out map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
			assert.NotEmpty(t, out["error"])
		})
	}
}

func TestHandleGetPersona(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/personas/roles/backend")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var tpl map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&tpl))
	assert.Contains(t, tpl, "learningPath")
}

func TestHandleGetPersonaErrors(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{name: "unknown dimension", path: "/personas/widgets/backend", wantStatus: http.StatusBadRequest},
		{name: "unknown value", path: "/personas/roles/astronaut", wantStatus: http.StatusNotFound},
		{name: "uppercase value rejected", path: "/personas/roles/Backend", wantStatus: http.StatusBadRequest},
		{name: "traversal characters rejected", path: "/personas/roles/..%2F..%2Fsecrets", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(srv.URL + tt.path)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "ok", out["status"])
}

func TestCORSHeaders(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/roadmap/generate", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestNewRequiresStore(t *testing.T) {
	_, err := New(Config{Port: 8080})
	assert.Error(t, err)
}
