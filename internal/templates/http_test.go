package templates

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStoreLoad(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/roles/backend.json":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"hero": {"title": "Backend"}}`))
		case "/roles/broken.json":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	cfg := DefaultHTTPStoreConfig(srv.URL)
	cfg.RetryCount = 0
	store := NewHTTPStore(cfg)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		tpl, err := store.Load(ctx, DimensionRoles, "backend")
		require.NoError(t, err)
		assert.Equal(t, "Backend", tpl["hero"].(map[string]any)["title"])
	})

	t.Run("404 maps to NotFoundError", func(t *testing.T) {
		_, err := store.Load(ctx, DimensionRoles, "missing")
		var notFound *NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "missing", notFound.Value)
	})

	t.Run("server error is not a NotFoundError", func(t *testing.T) {
		_, err := store.Load(ctx, DimensionRoles, "broken")
		require.Error(t, err)
		var notFound *NotFoundError
		assert.False(t, errors.As(err, &notFound))
		assert.Contains(t, err.Error(), "HTTP 500")
	})
}
