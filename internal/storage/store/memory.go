package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

var _ Store = (*MemoryStore)(nil)

// MemoryStore is an in-memory Store used by tests and local development.
// Documents are held as JSON blobs. The search index is deliberately
// decoupled from the documents: removing a document leaves its index entry
// behind, mirroring the eventual consistency of a real full-text index, so a
// search can return keys whose documents are already gone.
type MemoryStore struct {
	mu      sync.RWMutex
	docs    map[string]json.RawMessage
	indexed map[string]json.RawMessage
	order   []string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		docs:    make(map[string]json.RawMessage),
		indexed: make(map[string]json.RawMessage),
	}
}

func (s *MemoryStore) Get(_ context.Context, key string, out any) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[key]
	if !ok {
		return fmt.Errorf("get: %w", ErrKeyNotFound)
	}
	if err := json.Unmarshal(doc, out); err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	return nil
}

func (s *MemoryStore) Insert(_ context.Context, key string, doc any) error {
	blob, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.docs[key]; exists {
		return fmt.Errorf("insert: document exists under key %s", key)
	}
	s.docs[key] = blob
	s.indexed[key] = blob
	s.order = append(s.order, key)
	return nil
}

func (s *MemoryStore) Replace(_ context.Context, key string, doc any) error {
	blob, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.docs[key]; !exists {
		return fmt.Errorf("replace: %w", ErrKeyNotFound)
	}
	s.docs[key] = blob
	s.indexed[key] = blob
	return nil
}

func (s *MemoryStore) MutateField(_ context.Context, key, path string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, exists := s.docs[key]
	if !exists {
		return fmt.Errorf("mutate in: %w", ErrKeyNotFound)
	}

	var doc map[string]any
	if err := json.Unmarshal(blob, &doc); err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	if _, ok := doc[path]; !ok {
		return fmt.Errorf("mutate in: path %s not found", path)
	}
	doc[path] = value

	updated, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	s.docs[key] = updated
	s.indexed[key] = updated
	return nil
}

// Remove deletes the document but not its index entry.
func (s *MemoryStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.docs[key]; !exists {
		return fmt.Errorf("remove: %w", ErrKeyNotFound)
	}
	delete(s.docs, key)
	return nil
}

// SearchKeys matches the term against indexed content, returning keys in
// insertion order truncated at limit.
func (s *MemoryStore) SearchKeys(_ context.Context, term string, limit uint32) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	termBytes := []byte(term)
	var keys []string
	for _, key := range s.order {
		if uint32(len(keys)) >= limit {
			break
		}
		if bytes.Contains(s.indexed[key], termBytes) {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

func (s *MemoryStore) IsHealthy(_ context.Context) (bool, error) {
	return true, nil
}
