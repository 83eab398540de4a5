package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchEndpoint(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/roadmap/generate", Method: "POST", Limit: 30, Window: time.Minute},
		{Path: "/personas/", Method: "GET", Limit: 300, Window: time.Minute},
	}

	t.Run("exact match", func(t *testing.T) {
		cfg := MatchEndpoint("/roadmap/generate", "POST", configs)
		require.NotNil(t, cfg)
		assert.Equal(t, 30, cfg.Limit)
	})

	t.Run("method mismatch", func(t *testing.T) {
		cfg := MatchEndpoint("/roadmap/generate", "GET", configs)
		assert.Nil(t, cfg)
	})

	t.Run("method match is case insensitive", func(t *testing.T) {
		cfg := MatchEndpoint("/roadmap/generate", "post", configs)
		assert.NotNil(t, cfg)
	})

	t.Run("prefix match", func(t *testing.T) {
		cfg := MatchEndpoint("/personas/roles/backend", "GET", configs)
		require.NotNil(t, cfg)
		assert.Equal(t, 300, cfg.Limit)
	})

	t.Run("no match", func(t *testing.T) {
		cfg := MatchEndpoint("/unknown", "GET", configs)
		assert.Nil(t, cfg)
	})

	t.Run("health is always unlimited", func(t *testing.T) {
		cfg := MatchEndpoint("/health", "GET", configs)
		require.NotNil(t, cfg)
		assert.LessOrEqual(t, cfg.Limit, 0)
	})
}

func TestMatchEndpointEmptyMethodMatchesAll(t *testing.T) {
	configs := []EndpointConfig{{Path: "/anything", Limit: 10, Window: time.Minute}}

	assert.NotNil(t, MatchEndpoint("/anything", "GET", configs))
	assert.NotNil(t, MatchEndpoint("/anything", "POST", configs))
}
