package domain

import "time"

// Document statuses as used by the document register UI. The store does
// not enforce this set; it is owned by the presentation layer.
const (
	DocumentStatusDraft    = "Draft"
	DocumentStatusReview   = "Review"
	DocumentStatusApproved = "Approved"
	DocumentStatusExpired  = "Expired"
)

// Document is a controlled document in the local register.
type Document struct {
	// ID is the unique identifier within the store.
	ID string

	// Category is the document class (Quality Manual, SOP, Policy, Form).
	Category string

	// SubCategory is the topic within the category.
	SubCategory string

	// Department is the owning department.
	Department string

	// Status is the lifecycle status (Draft, Review, Approved, Expired).
	Status string

	// CreatedAt is when the document entered the register.
	// Immutable once set; updates must not change it.
	CreatedAt time.Time
}
