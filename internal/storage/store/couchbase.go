package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/couchbase/gocb/v2"
	"github.com/couchbase/gocb/v2/search"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/paulthomas2107/product-graphql/internal/config"
)

var tracer = otel.Tracer("internal/storage/store")

var (
	_ Store         = (*CouchbaseStore)(nil)
	_ HealthChecker = (*CouchbaseStore)(nil)
)

// CouchbaseStore implements Store on a single cluster connection, addressing
// one fixed bucket/scope/collection. The connection is opened once at startup
// and shared by all requests.
type CouchbaseStore struct {
	cluster     *gocb.Cluster
	collection  *gocb.Collection
	searchIndex string
}

// NewCouchbaseStore connects to the cluster and waits for the bucket to be
// ready before returning.
func NewCouchbaseStore(cfg config.Couchbase) (*CouchbaseStore, error) {
	opts := gocb.ClusterOptions{
		Authenticator: gocb.PasswordAuthenticator{
			Username: cfg.Username,
			Password: cfg.Password,
		},
	}
	if cfg.WanProfile {
		if err := opts.ApplyProfile(gocb.ClusterConfigProfileWanDevelopment); err != nil {
			return nil, fmt.Errorf("apply wan profile: %w", err)
		}
	}

	cluster, err := gocb.Connect(cfg.ConnectionString, opts)
	if err != nil {
		return nil, fmt.Errorf("connect cluster: %w", err)
	}

	bucket := cluster.Bucket(cfg.Bucket)
	if err := bucket.WaitUntilReady(cfg.ConnectTimeout, nil); err != nil {
		return nil, fmt.Errorf("wait for bucket %s: %w", cfg.Bucket, err)
	}

	return &CouchbaseStore{
		cluster:     cluster,
		collection:  bucket.Scope(cfg.Scope).Collection(cfg.Collection),
		searchIndex: cfg.SearchIndex,
	}, nil
}

func (s *CouchbaseStore) Get(ctx context.Context, key string, out any) error {
	ctx, span := s.startSpan(ctx, "CouchbaseStore.Get", key)
	defer span.End()

	res, err := s.collection.Get(key, &gocb.GetOptions{Context: ctx})
	if err != nil {
		return s.endSpan(span, mapKeyError(err, "get"))
	}

	if err := res.Content(out); err != nil {
		return s.endSpan(span, fmt.Errorf("decode document: %w", err))
	}

	span.SetStatus(codes.Ok, "")
	return nil
}

func (s *CouchbaseStore) Insert(ctx context.Context, key string, doc any) error {
	ctx, span := s.startSpan(ctx, "CouchbaseStore.Insert", key)
	defer span.End()

	if _, err := s.collection.Insert(key, doc, &gocb.InsertOptions{Context: ctx}); err != nil {
		return s.endSpan(span, fmt.Errorf("insert: %w", err))
	}

	span.SetStatus(codes.Ok, "")
	return nil
}

func (s *CouchbaseStore) Replace(ctx context.Context, key string, doc any) error {
	ctx, span := s.startSpan(ctx, "CouchbaseStore.Replace", key)
	defer span.End()

	if _, err := s.collection.Replace(key, doc, &gocb.ReplaceOptions{Context: ctx}); err != nil {
		return s.endSpan(span, mapKeyError(err, "replace"))
	}

	span.SetStatus(codes.Ok, "")
	return nil
}

func (s *CouchbaseStore) MutateField(ctx context.Context, key, path string, value any) error {
	ctx, span := s.startSpan(ctx, "CouchbaseStore.MutateField", key)
	defer span.End()

	specs := []gocb.MutateInSpec{
		gocb.ReplaceSpec(path, value, nil),
	}
	if _, err := s.collection.MutateIn(key, specs, &gocb.MutateInOptions{Context: ctx}); err != nil {
		return s.endSpan(span, mapKeyError(err, "mutate in"))
	}

	span.SetStatus(codes.Ok, "")
	return nil
}

func (s *CouchbaseStore) Remove(ctx context.Context, key string) error {
	ctx, span := s.startSpan(ctx, "CouchbaseStore.Remove", key)
	defer span.End()

	if _, err := s.collection.Remove(key, &gocb.RemoveOptions{Context: ctx}); err != nil {
		return s.endSpan(span, mapKeyError(err, "remove"))
	}

	span.SetStatus(codes.Ok, "")
	return nil
}

func (s *CouchbaseStore) SearchKeys(ctx context.Context, term string, limit uint32) ([]string, error) {
	ctx, span := tracer.Start(ctx, "CouchbaseStore.SearchKeys",
		trace.WithAttributes(
			attribute.String("search_index", s.searchIndex),
			attribute.Int("limit", int(limit)),
		),
	)
	defer span.End()

	res, err := s.cluster.SearchQuery(s.searchIndex, search.NewMatchQuery(term), &gocb.SearchOptions{
		Limit:   limit,
		Context: ctx,
	})
	if err != nil {
		return nil, s.endSpan(span, fmt.Errorf("search query: %w", err))
	}

	var keys []string
	for res.Next() {
		keys = append(keys, res.Row().ID)
	}
	if err := res.Err(); err != nil {
		return nil, s.endSpan(span, fmt.Errorf("iterate search rows: %w", err))
	}

	span.SetStatus(codes.Ok, "")
	return keys, nil
}

func (s *CouchbaseStore) IsHealthy(ctx context.Context) (bool, error) {
	if _, err := s.cluster.Ping(&gocb.PingOptions{Timeout: 5 * time.Second}); err != nil {
		return false, fmt.Errorf("ping cluster: %w", err)
	}
	return true, nil
}

// Close releases the cluster connection.
func (s *CouchbaseStore) Close() error {
	if err := s.cluster.Close(nil); err != nil {
		return fmt.Errorf("close cluster: %w", err)
	}
	return nil
}

func (s *CouchbaseStore) startSpan(ctx context.Context, name, key string) (context.Context, trace.Span) {
	return tracer.Start(ctx, name,
		trace.WithAttributes(attribute.String("document_key", key)),
	)
}

func (s *CouchbaseStore) endSpan(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

func mapKeyError(err error, op string) error {
	if errors.Is(err, gocb.ErrDocumentNotFound) {
		return fmt.Errorf("%s: %w", op, ErrKeyNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}
