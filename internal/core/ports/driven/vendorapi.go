package driven

import (
	"context"

	"github.com/altwise-pvt-ltd/qms-cli/internal/core/domain"
)

// VendorAPI is the remote vendor management service. Implementations are
// thin, stateless wrappers over the wire protocol: no retries, no caching,
// no deduplication. That is the orchestrating service's responsibility.
type VendorAPI interface {
	// List returns all vendors.
	List(ctx context.Context) ([]domain.Vendor, error)

	// ListByType returns vendors of the given type.
	ListByType(ctx context.Context, t domain.VendorType) ([]domain.Vendor, error)

	// Get retrieves a single vendor by ID.
	Get(ctx context.Context, id string) (*domain.Vendor, error)

	// Create registers a new vendor and returns the created record with
	// its server-assigned identity.
	Create(ctx context.Context, v domain.Vendor) (*domain.Vendor, error)

	// Update replaces an existing vendor record. v.ID must be set.
	Update(ctx context.Context, v domain.Vendor) (*domain.Vendor, error)

	// Delete removes a vendor by ID.
	Delete(ctx context.Context, id string) error
}
