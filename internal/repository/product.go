package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/paulthomas2107/product-graphql/internal/apperr"
	"github.com/paulthomas2107/product-graphql/internal/model"
	"github.com/paulthomas2107/product-graphql/internal/storage/store"
)

// ProductRepository owns the translation between product operations and store
// primitives, and owns key generation. It never retries: every store failure
// propagates to the caller classified by the apperr taxonomy.
type ProductRepository interface {
	// Create mints a fresh random key, inserts the document and returns the
	// minted key plus the input unchanged. The store does not echo computed
	// fields, so no round-trip read is performed.
	Create(ctx context.Context, product model.Product) (string, model.Product, error)

	// GetByKey fetches one document by direct key lookup.
	GetByKey(ctx context.Context, key string) (model.Product, error)

	// SearchByTerm queries the full-text index for at most limit matching
	// keys, then fetches each document sequentially, preserving the index's
	// result ordering. Any failed fetch fails the whole call; no partial
	// results are returned.
	SearchByTerm(ctx context.Context, term string, limit uint32) ([]model.Product, error)

	// ReplaceByKey swaps the whole document body, discarding the previous
	// content. Last writer wins on the entire document.
	ReplaceByKey(ctx context.Context, key string, product model.Product) (model.Product, error)

	// SetQuantityByKey patches the quantity field in place, leaving every
	// other field of the stored document untouched.
	SetQuantityByKey(ctx context.Context, key string, quantity int32) error

	// RemoveByKey deletes the document. Deleting an absent key fails.
	RemoveByKey(ctx context.Context, key string) error
}

var _ ProductRepository = (*productRepository)(nil)

type productRepository struct {
	store store.Store
}

func NewProductRepository(store store.Store) ProductRepository {
	return &productRepository{store: store}
}

func (r *productRepository) Create(ctx context.Context, product model.Product) (string, model.Product, error) {
	// Random v4 key: collisions are a practical impossibility, so no
	// uniqueness check is made against the store.
	key := uuid.NewString()

	if err := r.store.Insert(ctx, key, product); err != nil {
		return "", model.Product{}, fmt.Errorf("insert product: %w", apperr.ErrStoreWrite.WrapParent(err))
	}

	return key, product, nil
}

func (r *productRepository) GetByKey(ctx context.Context, key string) (model.Product, error) {
	var product model.Product
	if err := r.store.Get(ctx, key, &product); err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return model.Product{}, fmt.Errorf("get product: %w", apperr.ErrProductNotFound.WrapParent(err))
		}
		return model.Product{}, fmt.Errorf("get product: %w", apperr.ErrStoreRead.WrapParent(err))
	}

	return product, nil
}

func (r *productRepository) SearchByTerm(ctx context.Context, term string, limit uint32) ([]model.Product, error) {
	keys, err := r.store.SearchKeys(ctx, term, limit)
	if err != nil {
		return nil, fmt.Errorf("search keys: %w", apperr.ErrStoreRead.WrapParent(err))
	}

	// The index is not transactionally coupled to the store: a returned key
	// may reference a document deleted since indexing. That fetch failing
	// fails the whole operation.
	products := make([]model.Product, 0, len(keys))
	for _, key := range keys {
		var product model.Product
		if err := r.store.Get(ctx, key, &product); err != nil {
			return nil, fmt.Errorf("fetch searched product %s: %w", key, apperr.ErrPartialFetch.WrapParent(err))
		}
		products = append(products, product)
	}

	return products, nil
}

func (r *productRepository) ReplaceByKey(ctx context.Context, key string, product model.Product) (model.Product, error) {
	if err := r.store.Replace(ctx, key, product); err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return model.Product{}, fmt.Errorf("replace product: %w", apperr.ErrProductNotFound.WrapParent(err))
		}
		return model.Product{}, fmt.Errorf("replace product: %w", apperr.ErrStoreWrite.WrapParent(err))
	}

	return product, nil
}

func (r *productRepository) SetQuantityByKey(ctx context.Context, key string, quantity int32) error {
	if err := r.store.MutateField(ctx, key, "quantity", quantity); err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return fmt.Errorf("set quantity: %w", apperr.ErrProductNotFound.WrapParent(err))
		}
		return fmt.Errorf("set quantity: %w", apperr.ErrStoreWrite.WrapParent(err))
	}

	return nil
}

func (r *productRepository) RemoveByKey(ctx context.Context, key string) error {
	if err := r.store.Remove(ctx, key); err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return fmt.Errorf("remove product: %w", apperr.ErrProductNotFound.WrapParent(err))
		}
		return fmt.Errorf("remove product: %w", apperr.ErrStoreWrite.WrapParent(err))
	}

	return nil
}
