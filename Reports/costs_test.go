package Reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskCosts_Empty(t *testing.T) {
	b := TaskCosts(nil, nil)
	assert.Zero(t, b.LaborCost)
	assert.Zero(t, b.MaterialCost)
	assert.Zero(t, b.TotalCost)
}

func TestTaskCosts_LaborNormalizesDailyWage(t *testing.T) {
	// 8 hours at a 160/day wage is exactly one day of pay.
	b := TaskCosts([]AssignmentCost{{HoursWorked: 8, DailyWage: 160}}, nil)
	assert.Equal(t, 160.0, b.LaborCost)
	assert.Equal(t, 160.0, b.TotalCost)
}

func TestTaskCosts_FractionalHours(t *testing.T) {
	b := TaskCosts([]AssignmentCost{
		{HoursWorked: 4, DailyWage: 160},
		{HoursWorked: 2.5, DailyWage: 80},
	}, nil)
	assert.InDelta(t, 4*20+2.5*10, b.LaborCost, 1e-9)
}

func TestTaskCosts_ZeroWageContributesNothing(t *testing.T) {
	b := TaskCosts([]AssignmentCost{{HoursWorked: 8, DailyWage: 0}}, nil)
	assert.Zero(t, b.LaborCost)
}

func TestTaskCosts_MaterialUsesStoredSnapshot(t *testing.T) {
	// 5 units recorded at unit cost 20: the stored snapshot is 100 and stays
	// 100 no matter what the catalog price becomes afterwards.
	b := TaskCosts(nil, []UsageCost{{TotalCost: 100}})
	assert.Equal(t, 100.0, b.MaterialCost)
	assert.Equal(t, 100.0, b.TotalCost)
}

func TestTaskCosts_TotalIsSum(t *testing.T) {
	b := TaskCosts(
		[]AssignmentCost{{HoursWorked: 6, DailyWage: 120}},
		[]UsageCost{{TotalCost: 55.5}, {TotalCost: 44.5}},
	)
	assert.Equal(t, b.LaborCost+b.MaterialCost, b.TotalCost)
}

func TestProjectCostSummary_Totals(t *testing.T) {
	rows := []TaskCostRow{
		{TaskID: 1, EstimatedCost: 500, MaterialCost: 300, LaborCost: 150},
		{TaskID: 2, EstimatedCost: 200, MaterialCost: 50, LaborCost: 100},
	}

	s := ProjectCostSummary(rows, SummaryOptions{})
	assert.Equal(t, 700.0, s.TotalEstimated)
	assert.Equal(t, 350.0, s.TotalMaterial)
	assert.Equal(t, 250.0, s.TotalLabor)
	assert.Equal(t, 600.0, s.TotalActual)
	assert.Equal(t, s.TotalMaterial+s.TotalLabor, s.TotalActual)

	require.Len(t, s.Tasks, 2)
	assert.Equal(t, 450.0-500.0, s.Tasks[0].CostVariance)
	assert.Equal(t, 150.0-200.0, s.Tasks[1].CostVariance)
}

func TestProjectCostSummary_FlatSumCountsParents(t *testing.T) {
	parent := uint(1)
	rows := []TaskCostRow{
		{TaskID: 1, EstimatedCost: 1000},
		{TaskID: 2, ParentTaskID: &parent, EstimatedCost: 400},
		{TaskID: 3, ParentTaskID: &parent, EstimatedCost: 600},
	}

	s := ProjectCostSummary(rows, SummaryOptions{})
	assert.Equal(t, 2000.0, s.TotalEstimated)
	assert.Len(t, s.Tasks, 3)
}

func TestProjectCostSummary_LeafTasksOnly(t *testing.T) {
	parent := uint(1)
	rows := []TaskCostRow{
		{TaskID: 1, EstimatedCost: 1000, LaborCost: 10},
		{TaskID: 2, ParentTaskID: &parent, EstimatedCost: 400, MaterialCost: 100},
		{TaskID: 3, ParentTaskID: &parent, EstimatedCost: 600, LaborCost: 200},
	}

	s := ProjectCostSummary(rows, SummaryOptions{LeafTasksOnly: true})
	assert.Equal(t, 1000.0, s.TotalEstimated)
	assert.Equal(t, 100.0, s.TotalMaterial)
	assert.Equal(t, 200.0, s.TotalLabor)
	require.Len(t, s.Tasks, 2)
	assert.Equal(t, uint(2), s.Tasks[0].TaskID)
	assert.Equal(t, uint(3), s.Tasks[1].TaskID)
}

func TestProjectCostSummary_NoTasks(t *testing.T) {
	s := ProjectCostSummary(nil, SummaryOptions{})
	assert.Zero(t, s.TotalActual)
	assert.NotNil(t, s.Tasks)
	assert.Empty(t, s.Tasks)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 33.33, Round2(100.0/3))
	assert.Equal(t, 0.1, Round2(0.1))
	assert.Equal(t, -12.35, Round2(-12.3456))
}
