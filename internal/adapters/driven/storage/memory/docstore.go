// Package memory provides in-memory implementations of the driven storage
// ports, used in tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/altwise-pvt-ltd/qms-cli/internal/core/domain"
	"github.com/altwise-pvt-ltd/qms-cli/internal/core/ports/driven"
)

// Ensure DocumentStore implements the interface.
var _ driven.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is an in-memory implementation of driven.DocumentStore.
type DocumentStore struct {
	mu        sync.RWMutex
	documents map[string]domain.Document
}

// NewDocumentStore creates a new in-memory document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		documents: make(map[string]domain.Document),
	}
}

// Insert stores a new document.
func (s *DocumentStore) Insert(_ context.Context, doc *domain.Document) error {
	if doc.ID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.documents[doc.ID]; ok {
		return domain.ErrAlreadyExists
	}
	s.documents[doc.ID] = *doc
	return nil
}

// InsertBatch stores several documents.
func (s *DocumentStore) InsertBatch(_ context.Context, docs []domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, doc := range docs {
		if _, ok := s.documents[doc.ID]; ok {
			return domain.ErrAlreadyExists
		}
	}
	for _, doc := range docs {
		s.documents[doc.ID] = doc
	}
	return nil
}

// Get retrieves a document by ID.
func (s *DocumentStore) Get(_ context.Context, id string) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.documents[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &doc, nil
}

// List returns documents matching the filter, newest first.
func (s *DocumentStore) List(_ context.Context, filter driven.DocumentFilter) ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []domain.Document
	for _, doc := range s.documents {
		if filter.Category != "" && doc.Category != filter.Category {
			continue
		}
		if filter.SubCategory != "" && doc.SubCategory != filter.SubCategory {
			continue
		}
		if filter.Department != "" && doc.Department != filter.Department {
			continue
		}
		if filter.Status != "" && doc.Status != filter.Status {
			continue
		}
		result = append(result, doc)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// Update modifies an existing document, preserving CreatedAt.
func (s *DocumentStore) Update(_ context.Context, doc *domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.documents[doc.ID]
	if !ok {
		return domain.ErrNotFound
	}
	updated := *doc
	updated.CreatedAt = existing.CreatedAt
	s.documents[doc.ID] = updated
	return nil
}

// Delete removes a document by ID.
func (s *DocumentStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.documents[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.documents, id)
	return nil
}
