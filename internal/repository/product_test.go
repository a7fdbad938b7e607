package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paulthomas2107/product-graphql/internal/apperr"
	"github.com/paulthomas2107/product-graphql/internal/model"
	"github.com/paulthomas2107/product-graphql/internal/repository"
	"github.com/paulthomas2107/product-graphql/internal/storage/store"
	"github.com/paulthomas2107/product-graphql/pkg/ptr"
	"github.com/paulthomas2107/product-graphql/pkg/zerror"
)

func widget() model.Product {
	return model.Product{
		Name:     ptr.New("Widget"),
		Price:    ptr.New(9.99),
		Quantity: ptr.New(int32(10)),
		Tags:     ptr.New([]*string{ptr.New("tools")}),
	}
}

func errCode(t *testing.T, err error) string {
	t.Helper()
	var zErr zerror.ZError
	require.ErrorAs(t, err, &zErr)
	return zErr.Code()
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("round-trip: create then get yields the input", func(t *testing.T) {
		repo := repository.NewProductRepository(store.NewMemoryStore())

		key, created, err := repo.Create(ctx, widget())
		require.NoError(t, err)
		assert.Equal(t, widget(), created)

		_, err = uuid.Parse(key)
		require.NoError(t, err, "keys are uuid strings")

		got, err := repo.GetByKey(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, widget(), got)
	})

	t.Run("distinct keys for identical documents", func(t *testing.T) {
		repo := repository.NewProductRepository(store.NewMemoryStore())

		k1, _, err := repo.Create(ctx, widget())
		require.NoError(t, err)
		k2, _, err := repo.Create(ctx, widget())
		require.NoError(t, err)

		assert.NotEqual(t, k1, k2)
	})

	t.Run("insert failure surfaces as store write error", func(t *testing.T) {
		repo := repository.NewProductRepository(&flakyStore{
			Store:     store.NewMemoryStore(),
			insertErr: errors.New("timeout"),
		})

		_, _, err := repo.Create(ctx, widget())
		assert.Equal(t, apperr.StoreWriteFailedCode, errCode(t, err))
	})
}

func TestGetByKey(t *testing.T) {
	ctx := context.Background()

	t.Run("absent key is not found", func(t *testing.T) {
		repo := repository.NewProductRepository(store.NewMemoryStore())

		_, err := repo.GetByKey(ctx, uuid.NewString())
		assert.Equal(t, apperr.ProductNotFoundCode, errCode(t, err))
	})

	t.Run("transport failure is a store read error, not a not-found", func(t *testing.T) {
		repo := repository.NewProductRepository(&flakyStore{
			Store:  store.NewMemoryStore(),
			getErr: errors.New("connection reset"),
		})

		_, err := repo.GetByKey(ctx, uuid.NewString())
		assert.Equal(t, apperr.StoreReadFailedCode, errCode(t, err))
	})
}

func TestReplaceByKey(t *testing.T) {
	ctx := context.Background()

	t.Run("replace discards the previous document entirely", func(t *testing.T) {
		repo := repository.NewProductRepository(store.NewMemoryStore())
		key, _, err := repo.Create(ctx, widget())
		require.NoError(t, err)

		replacement := model.Product{
			Name:  ptr.New("Gadget"),
			Price: ptr.New(19.99),
			// no quantity, no tags: nothing from the old document survives
		}
		returned, err := repo.ReplaceByKey(ctx, key, replacement)
		require.NoError(t, err)
		assert.Equal(t, replacement, returned)

		got, err := repo.GetByKey(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, replacement, got)
		assert.Nil(t, got.Quantity)
		assert.Nil(t, got.Tags)
	})

	t.Run("replacing an absent key is not found", func(t *testing.T) {
		repo := repository.NewProductRepository(store.NewMemoryStore())

		_, err := repo.ReplaceByKey(ctx, uuid.NewString(), widget())
		assert.Equal(t, apperr.ProductNotFoundCode, errCode(t, err))
	})
}

func TestSetQuantityByKey(t *testing.T) {
	ctx := context.Background()

	t.Run("patches quantity and nothing else", func(t *testing.T) {
		repo := repository.NewProductRepository(store.NewMemoryStore())
		key, _, err := repo.Create(ctx, widget())
		require.NoError(t, err)

		require.NoError(t, repo.SetQuantityByKey(ctx, key, 5))

		got, err := repo.GetByKey(ctx, key)
		require.NoError(t, err)

		want := widget()
		want.Quantity = ptr.New(int32(5))
		assert.Equal(t, want, got)
	})

	t.Run("absent key is not found", func(t *testing.T) {
		repo := repository.NewProductRepository(store.NewMemoryStore())

		err := repo.SetQuantityByKey(ctx, uuid.NewString(), 5)
		assert.Equal(t, apperr.ProductNotFoundCode, errCode(t, err))
	})
}

func TestRemoveByKey(t *testing.T) {
	ctx := context.Background()

	t.Run("delete then read is not found", func(t *testing.T) {
		repo := repository.NewProductRepository(store.NewMemoryStore())
		key, _, err := repo.Create(ctx, widget())
		require.NoError(t, err)

		require.NoError(t, repo.RemoveByKey(ctx, key))

		_, err = repo.GetByKey(ctx, key)
		assert.Equal(t, apperr.ProductNotFoundCode, errCode(t, err))
	})

	t.Run("delete is not idempotent", func(t *testing.T) {
		repo := repository.NewProductRepository(store.NewMemoryStore())
		key, _, err := repo.Create(ctx, widget())
		require.NoError(t, err)

		require.NoError(t, repo.RemoveByKey(ctx, key))

		err = repo.RemoveByKey(ctx, key)
		assert.Equal(t, apperr.ProductNotFoundCode, errCode(t, err))
	})
}

func TestSearchByTerm(t *testing.T) {
	ctx := context.Background()

	t.Run("preserves index order and truncates at limit", func(t *testing.T) {
		mem := store.NewMemoryStore()
		repo := repository.NewProductRepository(mem)

		var wantFirstTwo []model.Product
		for _, name := range []string{"Widget A", "Widget B", "Widget C"} {
			p := widget()
			p.Name = ptr.New(name)
			_, created, err := repo.Create(ctx, p)
			require.NoError(t, err)
			if len(wantFirstTwo) < 2 {
				wantFirstTwo = append(wantFirstTwo, created)
			}
		}

		got, err := repo.SearchByTerm(ctx, "Widget", 2)
		require.NoError(t, err)
		assert.Equal(t, wantFirstTwo, got)
	})

	t.Run("no matches yields an empty list, not an error", func(t *testing.T) {
		repo := repository.NewProductRepository(store.NewMemoryStore())

		got, err := repo.SearchByTerm(ctx, "nothing", 2)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("all-or-nothing when an indexed document was deleted", func(t *testing.T) {
		mem := store.NewMemoryStore()
		repo := repository.NewProductRepository(mem)

		_, _, err := repo.Create(ctx, widget())
		require.NoError(t, err)
		k2, _, err := repo.Create(ctx, widget())
		require.NoError(t, err)

		// The index still carries k2 after the document is gone; the fetch
		// race must fail the whole search instead of returning one product.
		require.NoError(t, repo.RemoveByKey(ctx, k2))

		got, err := repo.SearchByTerm(ctx, "Widget", 2)
		assert.Nil(t, got)
		assert.Equal(t, apperr.PartialFetchFailedCode, errCode(t, err))
	})

	t.Run("index query failure is a store read error", func(t *testing.T) {
		repo := repository.NewProductRepository(&flakyStore{
			Store:     store.NewMemoryStore(),
			searchErr: errors.New("index unavailable"),
		})

		_, err := repo.SearchByTerm(ctx, "Widget", 2)
		assert.Equal(t, apperr.StoreReadFailedCode, errCode(t, err))
	})
}

// flakyStore wraps a Store and fails selected primitives, standing in for
// transport-level store errors.
type flakyStore struct {
	store.Store
	getErr    error
	insertErr error
	searchErr error
}

func (s *flakyStore) Get(ctx context.Context, key string, out any) error {
	if s.getErr != nil {
		return s.getErr
	}
	return s.Store.Get(ctx, key, out)
}

func (s *flakyStore) Insert(ctx context.Context, key string, doc any) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	return s.Store.Insert(ctx, key, doc)
}

func (s *flakyStore) SearchKeys(ctx context.Context, term string, limit uint32) ([]string, error) {
	if s.searchErr != nil {
		return nil, s.searchErr
	}
	return s.Store.SearchKeys(ctx, term, limit)
}
