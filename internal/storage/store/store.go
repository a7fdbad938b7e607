package store

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get, Replace, MutateField and Remove when no
// document exists under the given key.
var ErrKeyNotFound = errors.New("key not found")

// Store exposes the document-store primitives the repository is built on.
// Documents are opaque blobs addressed by a unique string key; SearchKeys
// queries the full-text index and returns matching keys in index order.
//
// The index is eventually consistent with the store: a key it returns may
// reference a document that has since been deleted.
type Store interface {
	Get(ctx context.Context, key string, out any) error
	Insert(ctx context.Context, key string, doc any) error
	Replace(ctx context.Context, key string, doc any) error
	MutateField(ctx context.Context, key, path string, value any) error
	Remove(ctx context.Context, key string) error
	SearchKeys(ctx context.Context, term string, limit uint32) ([]string, error)
}

type HealthChecker interface {
	IsHealthy(ctx context.Context) (bool, error)
}
