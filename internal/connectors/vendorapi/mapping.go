package vendorapi

import "github.com/altwise-pvt-ltd/qms-cli/internal/core/domain"

// wireVendor is the vendor record as the remote service sends and expects
// it. Field names follow the service's JSON schema exactly.
type wireVendor struct {
	VendorManagementID  string `json:"vendorManagementId,omitempty"`
	VendorName          string `json:"vendorName"`
	AssessmentDate      string `json:"assessmentDate,omitempty"`
	PhoneNumber         string `json:"phoneNumber"`
	EmailAddress        string `json:"emailAddress"`
	ItemCategoryDealt   string `json:"itemCategoryDealt"`
	ContactPersonName   string `json:"contactPersonName"`
	VendorType          string `json:"vendorType"`
	Address             string `json:"address"`
	Status              string `json:"status"`
	QualityScore        int    `json:"qualityScore"`
	DeliveryScore       int    `json:"deliveryScore"`
	PriceScore          int    `json:"priceScore"`
	EquipmentScore      int    `json:"equipmentScore"`
	ServiceSupportScore int    `json:"serviceSupportScore"`
	TotalScore          int    `json:"totalScore"`
	AcceptanceStatus    string `json:"acceptanceStatus"`
}

// toWire converts a local vendor to the wire schema. Total, field-by-field
// and deterministic: no validation, absent fields fall back to documented
// defaults (status "Active", scores 0, acceptance "Pending").
func toWire(v domain.Vendor) wireVendor {
	w := wireVendor{
		VendorManagementID: v.ID,
		VendorName:         v.Name,
		AssessmentDate:     v.AssessmentDate,
		PhoneNumber:        v.Phone,
		EmailAddress:       v.Email,
		ItemCategoryDealt:  v.Category,
		ContactPersonName:  v.ContactPerson,
		VendorType:         string(v.Type),
		Address:            v.Address,
		Status:             v.Status,
		AcceptanceStatus:   string(domain.AcceptancePending),
	}
	if w.Status == "" {
		w.Status = domain.DefaultVendorStatus
	}

	if ev := v.Evaluation; ev != nil {
		w.QualityScore = ev.Scores[domain.CriterionQuality]
		w.DeliveryScore = ev.Scores[domain.CriterionDelivery]
		w.PriceScore = ev.Scores[domain.CriterionPrice]
		w.EquipmentScore = ev.Scores[domain.CriterionEquipment]
		w.ServiceSupportScore = ev.Scores[domain.CriterionService]
		w.TotalScore = ev.TotalScore
		w.AcceptanceStatus = string(ev.Status)
	}

	return w
}

// fromWire converts a wire record to the local schema. A record with all
// five scores at zero has no evaluation yet; otherwise the evaluation's
// total and status are recomputed locally so they always agree with the
// scoring rules regardless of what the server sent.
func fromWire(w wireVendor) domain.Vendor {
	v := domain.Vendor{
		ID:             w.VendorManagementID,
		Name:           w.VendorName,
		Phone:          w.PhoneNumber,
		Email:          w.EmailAddress,
		Address:        w.Address,
		Category:       w.ItemCategoryDealt,
		ContactPerson:  w.ContactPersonName,
		Type:           domain.VendorType(w.VendorType),
		Status:         w.Status,
		AssessmentDate: w.AssessmentDate,
	}
	if v.Status == "" {
		v.Status = domain.DefaultVendorStatus
	}

	scores := map[domain.Criterion]int{
		domain.CriterionQuality:   w.QualityScore,
		domain.CriterionDelivery:  w.DeliveryScore,
		domain.CriterionPrice:     w.PriceScore,
		domain.CriterionEquipment: w.EquipmentScore,
		domain.CriterionService:   w.ServiceSupportScore,
	}
	for _, score := range scores {
		if score != 0 {
			v.Evaluation = domain.NewEvaluation(scores)
			break
		}
	}

	return v
}
