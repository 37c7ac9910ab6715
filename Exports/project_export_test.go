package Exports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"Crane/Models"
	"Crane/Reports"
)

func sampleReport() ProjectReport {
	parentID := uint(1)
	return ProjectReport{
		Project: Models.Project{
			Name:            "Harbor Terminal",
			Location:        "Alexandria",
			StartDate:       "2026-01-01",
			EndDate:         "2026-12-31",
			EstimatedBudget: 250000,
			Status:          Models.ProjectInProgress,
		},
		Summary: Reports.CostSummary{
			TotalEstimated: 40000,
			TotalMaterial:  12000,
			TotalLabor:     8000,
			TotalActual:    20000,
			Tasks: []Reports.TaskCostRow{
				{TaskID: 1, TaskName: "Quay Wall", Status: Models.TaskInProgress,
					EstimatedCost: 30000, MaterialCost: 10000, LaborCost: 6000,
					TotalCost: 16000, CostVariance: -14000},
				{TaskID: 2, TaskName: "Piling", ParentTaskID: &parentID,
					ParentTaskName: "Quay Wall", Status: Models.TaskCompleted,
					EstimatedCost: 10000, MaterialCost: 2000, LaborCost: 2000,
					TotalCost: 4000, CostVariance: -6000},
			},
		},
		Forecast: Reports.Forecast{
			TotalDays: 365, DaysPassed: 100,
			CompletionPercentage: 27.4, BudgetUtilization: 8.0,
			ForecastCompletion: 68500, Variance: -48500,
		},
		Progress: []Reports.ProgressPoint{
			{Date: "2026-04-01", AverageProgress: 25},
			{Date: "2026-04-02", AverageProgress: 30},
		},
		Workers: []WorkerLine{
			{Name: "Ahmed", Specialization: "mason", TotalHours: 120, LaborCost: 2400},
		},
		Materials: []MaterialLine{
			{Name: "Concrete", Unit: "m3", Quantity: 80, TotalCost: 9600},
		},
	}
}

func TestProjectWorkbookSheets(t *testing.T) {
	buf, err := ProjectWorkbook(sampleReport())
	require.NoError(t, err)
	require.NotZero(t, buf.Len())

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	for _, name := range []string{"Project Summary", "Tasks", "Workers", "Materials", "Cost Summary"} {
		assert.Contains(t, sheets, name)
	}
	assert.NotContains(t, sheets, "Sheet1")
}

func TestProjectWorkbookContents(t *testing.T) {
	buf, err := ProjectWorkbook(sampleReport())
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	name, err := f.GetCellValue("Tasks", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Quay Wall", name)

	parent, err := f.GetCellValue("Tasks", "B3")
	require.NoError(t, err)
	assert.Equal(t, "Quay Wall", parent)

	worker, err := f.GetCellValue("Workers", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Ahmed", worker)

	budgetRow, err := f.GetCellValue("Cost Summary", "B5")
	require.NoError(t, err)
	assert.Equal(t, "20000", budgetRow)
}

func TestProjectWorkbookEmptyReport(t *testing.T) {
	report := ProjectReport{
		Project: Models.Project{Name: "Empty", StartDate: "2026-01-01", EndDate: "2026-02-01"},
	}
	buf, err := ProjectWorkbook(report)
	require.NoError(t, err)
	assert.NotZero(t, buf.Len())
}
