package driving

import (
	"context"

	"github.com/altwise-pvt-ltd/qms-cli/internal/core/domain"
	"github.com/altwise-pvt-ltd/qms-cli/internal/core/ports/driven"
)

// DocumentService manages the local controlled-document register.
type DocumentService interface {
	// List returns documents matching the filter.
	List(ctx context.Context, filter driven.DocumentFilter) ([]domain.Document, error)

	// Get retrieves a document by ID.
	Get(ctx context.Context, id string) (*domain.Document, error)

	// Add registers a new document, assigning an identity and creation
	// timestamp if absent.
	Add(ctx context.Context, doc domain.Document) (*domain.Document, error)

	// Update modifies an existing document.
	Update(ctx context.Context, doc domain.Document) error

	// Remove deletes a document from the register.
	Remove(ctx context.Context, id string) error
}
