package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/altwise-pvt-ltd/qms-cli/internal/core/domain"
	"github.com/altwise-pvt-ltd/qms-cli/internal/core/ports/driven"
	"github.com/altwise-pvt-ltd/qms-cli/internal/core/ports/driving"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DocumentService manages the local controlled-document register.
type DocumentService struct {
	store driven.DocumentStore
}

// NewDocumentService creates a document service over the local store.
func NewDocumentService(store driven.DocumentStore) *DocumentService {
	return &DocumentService{store: store}
}

// List returns documents matching the filter.
func (s *DocumentService) List(ctx context.Context, filter driven.DocumentFilter) ([]domain.Document, error) {
	return s.store.List(ctx, filter)
}

// Get retrieves a document by ID.
func (s *DocumentService) Get(ctx context.Context, id string) (*domain.Document, error) {
	return s.store.Get(ctx, id)
}

// Add registers a new document. A missing identity gets a fresh UUID and a
// missing creation timestamp is set to now; the timestamp is immutable
// from then on.
func (s *DocumentService) Add(ctx context.Context, doc domain.Document) (*domain.Document, error) {
	if doc.Category == "" || doc.SubCategory == "" {
		return nil, domain.ErrInvalidInput
	}
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now().UTC()
	}
	if doc.Status == "" {
		doc.Status = domain.DocumentStatusDraft
	}

	if err := s.store.Insert(ctx, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Update modifies an existing document. The store preserves CreatedAt.
func (s *DocumentService) Update(ctx context.Context, doc domain.Document) error {
	if doc.ID == "" {
		return domain.ErrInvalidInput
	}
	return s.store.Update(ctx, &doc)
}

// Remove deletes a document from the register.
func (s *DocumentService) Remove(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}
