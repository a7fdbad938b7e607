package playground_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/paulthomas2107/product-graphql/internal/http/playground"
)

func TestPlaygroundRoute(t *testing.T) {
	r := chi.NewRouter()
	playground.Register(r)

	t.Run("Should get playground successfully", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/playground", nil)
		resp := httptest.NewRecorder()

		r.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, resp.Body.String(), "GraphiQL")
		assert.Contains(t, resp.Body.String(), "/graphql")
	})
}
