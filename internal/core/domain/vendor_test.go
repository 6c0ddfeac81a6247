package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVendor_AcceptanceStatus_PendingWithoutEvaluation(t *testing.T) {
	v := Vendor{Name: "Unscored Labs"}
	assert.Equal(t, AcceptancePending, v.AcceptanceStatus())
}

func TestVendor_AcceptanceStatus_FollowsEvaluation(t *testing.T) {
	ev, err := ScoreCriterion(CriterionQuality, 50, nil)
	require.NoError(t, err)
	ev, err = ScoreCriterion(CriterionDelivery, 50, ev)
	require.NoError(t, err)

	v := Vendor{Name: "Scored Labs", Evaluation: ev}
	assert.Equal(t, AcceptanceAccepted, v.AcceptanceStatus())
}
