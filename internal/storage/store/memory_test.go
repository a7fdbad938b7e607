package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paulthomas2107/product-graphql/internal/storage/store"
)

type doc struct {
	Name     string `json:"name"`
	Quantity int32  `json:"quantity"`
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("insert rejects an existing key", func(t *testing.T) {
		s := store.NewMemoryStore()
		require.NoError(t, s.Insert(ctx, "k1", doc{Name: "a"}))
		assert.Error(t, s.Insert(ctx, "k1", doc{Name: "b"}))
	})

	t.Run("mutate field requires the document and the path", func(t *testing.T) {
		s := store.NewMemoryStore()

		err := s.MutateField(ctx, "missing", "quantity", 1)
		assert.ErrorIs(t, err, store.ErrKeyNotFound)

		require.NoError(t, s.Insert(ctx, "k1", map[string]any{"name": "a"}))
		assert.Error(t, s.MutateField(ctx, "k1", "quantity", 1))

		require.NoError(t, s.Insert(ctx, "k2", doc{Name: "a", Quantity: 2}))
		require.NoError(t, s.MutateField(ctx, "k2", "quantity", 7))

		var got doc
		require.NoError(t, s.Get(ctx, "k2", &got))
		assert.Equal(t, int32(7), got.Quantity)
	})

	t.Run("remove keeps the index entry behind", func(t *testing.T) {
		s := store.NewMemoryStore()
		require.NoError(t, s.Insert(ctx, "k1", doc{Name: "widget"}))
		require.NoError(t, s.Remove(ctx, "k1"))

		keys, err := s.SearchKeys(ctx, "widget", 10)
		require.NoError(t, err)
		assert.Equal(t, []string{"k1"}, keys)

		var got doc
		assert.ErrorIs(t, s.Get(ctx, "k1", &got), store.ErrKeyNotFound)
	})

	t.Run("search truncates in insertion order", func(t *testing.T) {
		s := store.NewMemoryStore()
		require.NoError(t, s.Insert(ctx, "k1", doc{Name: "widget one"}))
		require.NoError(t, s.Insert(ctx, "k2", doc{Name: "gadget"}))
		require.NoError(t, s.Insert(ctx, "k3", doc{Name: "widget three"}))
		require.NoError(t, s.Insert(ctx, "k4", doc{Name: "widget four"}))

		keys, err := s.SearchKeys(ctx, "widget", 2)
		require.NoError(t, err)
		assert.Equal(t, []string{"k1", "k3"}, keys)
	})
}
