package domain

// VendorType distinguishes newly onboarded vendors from established ones.
type VendorType string

const (
	// VendorTypeNew marks a vendor still in its first evaluation cycle.
	VendorTypeNew VendorType = "New"

	// VendorTypeExisting marks a vendor with an established supply history.
	VendorTypeExisting VendorType = "Existing"
)

// DefaultVendorStatus is applied when a vendor record carries no status.
const DefaultVendorStatus = "Active"

// Vendor is a supplier record synchronised with the remote vendor
// management service.
type Vendor struct {
	// ID is assigned by the remote service. Empty for records not yet
	// created remotely.
	ID string

	// Name is the vendor's registered business name.
	Name string

	// Phone is the contact number, ten decimal digits.
	Phone string

	// Email is the contact email address.
	Email string

	// Address is the postal address.
	Address string

	// Category is the item category the vendor deals in.
	Category string

	// ContactPerson is the named contact at the vendor.
	ContactPerson string

	// Type is New or Existing.
	Type VendorType

	// Status is a free-form lifecycle status, "Active" by default.
	Status string

	// AssessmentDate is the date of the most recent assessment, as entered.
	AssessmentDate string

	// Evaluation holds the acceptance scoring, nil until the first
	// criterion is scored.
	Evaluation *Evaluation
}

// AcceptanceStatus returns the vendor's derived acceptance state.
// A vendor that has never been scored is implicitly Pending.
func (v Vendor) AcceptanceStatus() AcceptanceStatus {
	if v.Evaluation == nil {
		return AcceptancePending
	}
	return v.Evaluation.Status
}
