package domain

import "fmt"

// Criterion is one of the fixed dimensions a vendor is scored on.
type Criterion string

const (
	CriterionQuality   Criterion = "quality"
	CriterionDelivery  Criterion = "delivery"
	CriterionPrice     Criterion = "price"
	CriterionEquipment Criterion = "equipment"
	CriterionService   Criterion = "service"
)

// Criteria lists all evaluation criteria in their fixed order.
var Criteria = []Criterion{
	CriterionQuality,
	CriterionDelivery,
	CriterionPrice,
	CriterionEquipment,
	CriterionService,
}

// AcceptanceThreshold is the minimum total score for a vendor to be accepted.
const AcceptanceThreshold = 100

// AcceptanceStatus is the derived accept/reject state of an evaluation.
type AcceptanceStatus string

const (
	// AcceptancePending means the vendor has not been scored yet.
	AcceptancePending AcceptanceStatus = "Pending"

	// AcceptanceAccepted means the total score met the threshold.
	AcceptanceAccepted AcceptanceStatus = "Accepted"

	// AcceptanceRejected means the total score fell below the threshold.
	AcceptanceRejected AcceptanceStatus = "Rejected"
)

// Evaluation holds per-criterion scores and the derived total and status.
// TotalScore and Status are never set independently; they are always
// recomputed from Scores.
type Evaluation struct {
	// Scores maps criterion to its score. Unscored criteria are absent
	// and count as zero.
	Scores map[Criterion]int

	// TotalScore is the sum of all criterion scores.
	TotalScore int

	// Status is Accepted iff TotalScore >= AcceptanceThreshold.
	Status AcceptanceStatus
}

// ValidScoreLevel reports whether v is one of the fixed score levels
// (10, 20, 30, 40, 50).
func ValidScoreLevel(v int) bool {
	return v >= 10 && v <= 50 && v%10 == 0
}

// ValidCriterion reports whether c is one of the fixed criteria.
func ValidCriterion(c Criterion) bool {
	for _, known := range Criteria {
		if c == known {
			return true
		}
	}
	return false
}

// NewEvaluation builds an Evaluation from a set of criterion scores,
// deriving TotalScore and Status. Unknown criteria and zero scores are
// dropped. The input map is not retained.
func NewEvaluation(scores map[Criterion]int) *Evaluation {
	kept := make(map[Criterion]int, len(Criteria))
	total := 0
	for _, c := range Criteria {
		if v, ok := scores[c]; ok && v != 0 {
			kept[c] = v
			total += v
		}
	}

	status := AcceptanceRejected
	if total >= AcceptanceThreshold {
		status = AcceptanceAccepted
	}

	return &Evaluation{
		Scores:     kept,
		TotalScore: total,
		Status:     status,
	}
}

// ScoreCriterion returns a new Evaluation with the named criterion set to
// value. prev may be nil for a vendor scored for the first time; it is
// never mutated. Scoring the same criterion twice is last-write-wins, so
// the operation is idempotent and order-independent across criteria.
func ScoreCriterion(criterion Criterion, value int, prev *Evaluation) (*Evaluation, error) {
	if !ValidCriterion(criterion) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCriterion, criterion)
	}
	if !ValidScoreLevel(value) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidScore, value)
	}

	scores := make(map[Criterion]int, len(Criteria))
	if prev != nil {
		for c, v := range prev.Scores {
			scores[c] = v
		}
	}
	scores[criterion] = value

	return NewEvaluation(scores), nil
}
