package http_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paulthomas2107/product-graphql/internal/config"
	"github.com/paulthomas2107/product-graphql/internal/event"
	"github.com/paulthomas2107/product-graphql/internal/graph"
	svchttp "github.com/paulthomas2107/product-graphql/internal/http"
	"github.com/paulthomas2107/product-graphql/internal/http/playground"
	"github.com/paulthomas2107/product-graphql/internal/repository"
	"github.com/paulthomas2107/product-graphql/internal/storage/mq"
	"github.com/paulthomas2107/product-graphql/internal/storage/store"
	"github.com/paulthomas2107/product-graphql/pkg/validator"
)

// TestService builds the full router once; the metrics middleware registers
// collectors on the default prometheus registry and must not run twice.
func TestService(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	memStore := store.NewMemoryStore()
	resolver := graph.NewResolver(
		logger,
		repository.NewProductRepository(memStore),
		event.NewPublisher(logger, mq.NoopProducer{}),
		validator.NewDefaultValidator(),
	)

	svc, err := svchttp.New(config.HTTP{Port: 4000, Playground: true}, logger, resolver, memStore)
	require.NoError(t, err)

	r := chi.NewRouter()
	svc.RegisterMiddlewares(r)
	playground.Register(r)
	svc.RegisterHandlers(r)

	srv := httptest.NewServer(r)
	defer srv.Close()

	t.Run("healthz reports the store as healthy", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/healthz")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("graphql endpoint answers a mutation", func(t *testing.T) {
		body := `{"query": "mutation { createProduct(product: {name: \"Widget\", price: 9.99}) { name price } }"}`

		resp, err := http.Post(srv.URL+"/graphql", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		defer resp.Body.Close()

		payload, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t,
			`{"data": {"createProduct": {"name": "Widget", "price": 9.99}}}`,
			string(payload))

		keys, err := memStore.SearchKeys(context.Background(), "Widget", 2)
		require.NoError(t, err)
		assert.Len(t, keys, 1, "the document landed in the store")
	})

	t.Run("graphql endpoint rejects GET", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/graphql")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	})

	t.Run("playground serves the query editor", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/playground")
		require.NoError(t, err)
		defer resp.Body.Close()

		payload, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, string(payload), "/graphql")
	})

	t.Run("metrics endpoint is registered", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/metrics")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
