// Package memory is an in-process docstore.Store. It backs the service
// and handler tests and the STORE_BACKEND=memory mode for local
// development; nothing is persisted across restarts.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"feedapi/internal/docstore"
)

type Store struct {
	mu    sync.RWMutex
	colls map[string]map[string]docstore.Document
}

var _ docstore.Store = (*Store)(nil)

func New() *Store {
	return &Store{colls: make(map[string]map[string]docstore.Document)}
}

func (s *Store) Get(ctx context.Context, collection, id string) (docstore.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.colls[collection][id]
	if !ok {
		return nil, docstore.ErrNotFound
	}
	return doc.Clone(), nil
}

func (s *Store) Insert(ctx context.Context, collection string, doc docstore.Document) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	coll, ok := s.colls[collection]
	if !ok {
		coll = make(map[string]docstore.Document)
		s.colls[collection] = coll
	}

	id := uuid.NewString()
	coll[id] = doc.Clone()
	return id, nil
}

func (s *Store) Replace(ctx context.Context, collection, id string, doc docstore.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	coll := s.colls[collection]
	if _, ok := coll[id]; !ok {
		return docstore.ErrNotFound
	}
	coll[id] = doc.Clone()
	return nil
}

func (s *Store) Delete(ctx context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	coll := s.colls[collection]
	if _, ok := coll[id]; !ok {
		return docstore.ErrNotFound
	}
	delete(coll, id)
	return nil
}

func (s *Store) Query(ctx context.Context, collection string, q docstore.Query) ([]docstore.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]docstore.Record, 0)
	for id, doc := range s.colls[collection] {
		if !matches(doc, q.Filter) {
			continue
		}
		out = append(out, docstore.Record{ID: id, Doc: doc.Clone()})
	}

	if q.OrderBy != "" {
		sort.SliceStable(out, func(i, j int) bool {
			c := out[i].Doc[q.OrderBy].Compare(out[j].Doc[q.OrderBy])
			if q.Direction == docstore.Descending {
				return c > 0
			}
			return c < 0
		})
	}
	return out, nil
}

func matches(doc docstore.Document, filter map[string]docstore.Value) bool {
	for field, want := range filter {
		if !doc[field].Equal(want) {
			return false
		}
	}
	return true
}
