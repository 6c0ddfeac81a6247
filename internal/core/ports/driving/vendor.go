package driving

import (
	"context"

	"github.com/altwise-pvt-ltd/qms-cli/internal/core/domain"
)

// View identifies which vendor screen is active.
type View string

const (
	ViewList   View = "list"
	ViewAdd    View = "add"
	ViewEdit   View = "edit"
	ViewDetail View = "view"
)

// VendorService is the sole owner of the visible vendor list, the current
// selection, the active view and the loading flag. All vendor reads and
// writes go through it.
type VendorService interface {
	// Load replaces the in-memory vendor list from the remote service.
	// An empty filter loads all vendors. On failure the previous list is
	// kept and the error recorded.
	Load(ctx context.Context, filter domain.VendorType) error

	// Vendors returns the current in-memory vendor list.
	Vendors() []domain.Vendor

	// Selected returns the currently selected vendor, or nil.
	Selected() *domain.Vendor

	// View returns the active view.
	View() View

	// Loading reports whether a load is in flight.
	Loading() bool

	// LastError returns the most recent remote failure, cleared by the
	// next successful operation.
	LastError() error

	// BeginAdd transitions to the add view with no selection.
	BeginAdd()

	// BeginEdit selects a vendor from the list and transitions to edit.
	BeginEdit(id string) error

	// BeginView selects a vendor from the list and transitions to view.
	BeginView(id string) error

	// Cancel returns to the list view and clears the selection.
	Cancel()

	// Save validates the form and creates or updates depending on whether
	// a vendor is selected. On success the list is updated (prepend for
	// create, replace in place for update) and the view returns to list.
	Save(ctx context.Context, form domain.Vendor) (*domain.Vendor, error)

	// Delete removes a vendor. confirmed must be true; this is the
	// explicit user confirmation step.
	Delete(ctx context.Context, id string, confirmed bool) error

	// Score sets one evaluation criterion for a vendor and persists the
	// recomputed evaluation remotely.
	Score(ctx context.Context, id string, criterion domain.Criterion, value int) (*domain.Vendor, error)
}
