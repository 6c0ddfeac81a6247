package driven

import (
	"context"

	"github.com/altwise-pvt-ltd/qms-cli/internal/core/domain"
)

// DocumentFilter selects documents by indexed fields.
// Zero-value fields are ignored; a zero filter matches every document.
type DocumentFilter struct {
	Category    string
	SubCategory string
	Department  string
	Status      string
}

// DocumentStore persists the controlled-document register.
// Backed by SQLite; every operation either completes or returns an error,
// it never silently drops data.
type DocumentStore interface {
	// Insert stores a new document. Fails with domain.ErrAlreadyExists if
	// the identity is taken.
	Insert(ctx context.Context, doc *domain.Document) error

	// InsertBatch stores several documents atomically.
	InsertBatch(ctx context.Context, docs []domain.Document) error

	// Get retrieves a document by ID.
	Get(ctx context.Context, id string) (*domain.Document, error)

	// List returns documents matching the filter, newest first.
	List(ctx context.Context, filter DocumentFilter) ([]domain.Document, error)

	// Update modifies an existing document. CreatedAt is never changed.
	Update(ctx context.Context, doc *domain.Document) error

	// Delete removes a document by ID.
	Delete(ctx context.Context, id string) error
}
