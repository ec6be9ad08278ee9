package engine

import (
	"fmt"
	"testing"

	"biomed-maintenance-tracker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyRisk_Boundaries(t *testing.T) {
	tests := []struct {
		rpn  int
		want models.RiskLevel
	}{
		{rpn: -3, want: models.RiskNegligible},
		{rpn: 0, want: models.RiskNegligible},
		{rpn: 1, want: models.RiskNegligible},
		{rpn: 10, want: models.RiskNegligible},
		{rpn: 11, want: models.RiskLow},
		{rpn: 30, want: models.RiskLow},
		{rpn: 31, want: models.RiskModerate},
		{rpn: 50, want: models.RiskModerate},
		{rpn: 51, want: models.RiskHigh},
		{rpn: 75, want: models.RiskHigh},
		{rpn: 76, want: models.RiskCritical},
		{rpn: 100, want: models.RiskCritical},
		{rpn: 101, want: models.RiskSevere},
		{rpn: 125, want: models.RiskSevere},
		{rpn: 10000, want: models.RiskSevere},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("rpn=%d", tt.rpn), func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyRisk(tt.rpn), "rpn=%d", tt.rpn)
		})
	}
}

func TestClassifyRisk_Ranges(t *testing.T) {
	for rpn := 1; rpn <= 10; rpn++ {
		assert.Equal(t, models.RiskNegligible, ClassifyRisk(rpn), "rpn=%d", rpn)
	}
	for rpn := 101; rpn <= 500; rpn++ {
		assert.Equal(t, models.RiskSevere, ClassifyRisk(rpn), "rpn=%d", rpn)
	}
}

func TestClassifyRisk_Monotonic(t *testing.T) {
	prev := ClassifyRisk(-10).Rank()
	for rpn := -9; rpn <= 200; rpn++ {
		rank := ClassifyRisk(rpn).Rank()
		require.GreaterOrEqual(t, rank, prev, "severity dropped at rpn=%d", rpn)
		prev = rank
	}
}

func TestClassifyRisk_EveryProductOfFactors(t *testing.T) {
	seen := map[models.RiskLevel]bool{}
	for l := 1; l <= 5; l++ {
		for s := 1; s <= 5; s++ {
			for d := 1; d <= 5; d++ {
				rpn := ComputeRPN(l, s, d)
				require.True(t, rpn >= 1 && rpn <= 125)
				seen[ClassifyRisk(rpn)] = true
			}
		}
	}
	assert.Len(t, seen, len(models.RiskLevels), "every band is reachable from the 1-5 scales")
}

func TestClassifyRiskInfo(t *testing.T) {
	info := ClassifyRiskInfo(64)
	assert.Equal(t, models.RiskHigh, info.Level)
	assert.Equal(t, "High", info.Label)
	assert.Equal(t, "51-75", info.Range)
	assert.Contains(t, info.Action, "corrective maintenance")
}

func TestRiskTable_Ordered(t *testing.T) {
	table := RiskTable()
	require.Len(t, table, 6)
	for i, info := range table {
		assert.Equal(t, models.RiskLevels[i], info.Level)
		assert.NotEmpty(t, info.Action)
	}
	assert.Equal(t, ">100", table[5].Range)
}

func TestDescribeRisk_UnknownFallsBackToNegligible(t *testing.T) {
	assert.Equal(t, models.RiskNegligible, DescribeRisk("bogus").Level)
}

func TestCurrentRisk_NoAssessmentsDefaultsToNegligible(t *testing.T) {
	eq := newEquipment("eq-1")
	assert.Equal(t, models.RiskNegligible, CurrentRisk(eq))
}

func TestCurrentRisk_UsesLatestByDateNotInsertionOrder(t *testing.T) {
	eq := newEquipment("eq-1",
		withAssessment(125, daysAgo(2)),
		withAssessment(20, daysAgo(365)),
	)
	assert.Equal(t, models.RiskSevere, CurrentRisk(eq))

	latest, ok := LatestAssessment(eq)
	require.True(t, ok)
	assert.Equal(t, 125, latest.RPN)
}

func TestLatestAssessment_TieBreakPrefersLastInserted(t *testing.T) {
	date := daysAgo(5)
	eq := newEquipment("eq-1", withAssessment(8, date), withAssessment(60, date))
	eq.RiskAssessments[1].ID = "second"

	latest, ok := LatestAssessment(eq)
	require.True(t, ok)
	assert.Equal(t, "second", latest.ID)
	assert.Equal(t, models.RiskHigh, CurrentRisk(eq))
}

func TestIsHighRisk_SevereAssessment(t *testing.T) {
	eq := newEquipment("xray", withAssessment(125, daysAgo(2)))
	annotated := Annotate([]models.Equipment{eq})

	assert.Equal(t, models.RiskSevere, annotated[0].CurrentRisk)
	assert.Equal(t, 1, ComputeStats(annotated, testNow).HighRisk)
}
