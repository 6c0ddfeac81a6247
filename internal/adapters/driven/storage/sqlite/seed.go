package sqlite

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/altwise-pvt-ltd/qms-cli/internal/core/domain"
)

// seedDateLayout is the human-readable date format used in the seed list.
const seedDateLayout = "02 Jan 2006"

// seedDocument is one entry of the demonstration register.
type seedDocument struct {
	category    string
	subCategory string
	department  string
	status      string
	created     string
}

// seedDocuments is the fixed list a fresh store is populated from.
var seedDocuments = []seedDocument{
	{"Quality Manual", "Master Copy", "Administration", domain.DocumentStatusApproved, "12 Jan 2024"},
	{"SOP", "Sample Collection", "Phlebotomy", domain.DocumentStatusApproved, "03 Feb 2024"},
	{"SOP", "CBC Analyzer Operation", "Hematology", domain.DocumentStatusReview, "21 Feb 2024"},
	{"Policy", "Document Control", "Administration", domain.DocumentStatusApproved, "15 Mar 2024"},
	{"Form", "Internal Audit Checklist", "Quality Assurance", domain.DocumentStatusDraft, "02 Apr 2024"},
	{"SOP", "Culture Plate Reading", "Microbiology", domain.DocumentStatusApproved, "18 Apr 2024"},
	{"Policy", "Equipment Calibration", "Biochemistry", domain.DocumentStatusExpired, "30 May 2023"},
	{"Form", "Vendor Evaluation Sheet", "Procurement", domain.DocumentStatusApproved, "09 Jun 2024"},
}

// seedDocumentList materialises the seed entries as documents, assigning
// each a fresh identity and converting the human-readable date to a
// timestamp.
func seedDocumentList() ([]domain.Document, error) {
	docs := make([]domain.Document, 0, len(seedDocuments))
	for _, seed := range seedDocuments {
		createdAt, err := time.Parse(seedDateLayout, seed.created)
		if err != nil {
			return nil, fmt.Errorf("parsing seed date %q: %w", seed.created, err)
		}
		docs = append(docs, domain.Document{
			ID:          uuid.NewString(),
			Category:    seed.category,
			SubCategory: seed.subCategory,
			Department:  seed.department,
			Status:      seed.status,
			CreatedAt:   createdAt.UTC(),
		})
	}
	return docs, nil
}
