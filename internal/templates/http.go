package templates

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/sudhanva/roadmap-engine/internal/types"
)

// HTTPStoreConfig holds transport settings for the HTTP-backed store.
type HTTPStoreConfig struct {
	BaseURL    string
	Timeout    time.Duration
	RetryCount int
	Validator  *Validator
}

// DefaultHTTPStoreConfig returns sensible transport defaults.
func DefaultHTTPStoreConfig(baseURL string) *HTTPStoreConfig {
	return &HTTPStoreConfig{
		BaseURL:    baseURL,
		Timeout:    10 * time.Second,
		RetryCount: 2,
	}
}

// HTTPStore loads templates from a remote content endpoint exposing the same
// <base>/<dimension>/<value>.json layout the filesystem store uses.
type HTTPStore struct {
	client    *resty.Client
	validator *Validator
}

// NewHTTPStore creates a store fetching templates over HTTP.
func NewHTTPStore(cfg *HTTPStoreConfig) *HTTPStore {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.RetryCount)

	return &HTTPStore{client: client, validator: cfg.Validator}
}

// Load fetches and decodes a single template document. A 404 from the content
// source maps to *NotFoundError; transport failures are wrapped as-is.
func (s *HTTPStore) Load(ctx context.Context, dimension Dimension, value string) (types.Template, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/%s/%s.json", dimension, value))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch template %s/%s: %w", dimension, value, err)
	}

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return nil, &NotFoundError{Dimension: dimension, Value: value}
	case resp.StatusCode() != http.StatusOK:
		return nil, fmt.Errorf("failed to fetch template %s/%s: HTTP %d", dimension, value, resp.StatusCode())
	}

	return decodeTemplate(resp.Body(), dimension, value, s.validator)
}
