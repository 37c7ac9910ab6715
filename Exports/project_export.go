package Exports

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"Crane/Models"
	"Crane/Reports"
)

// WorkerLine is one worker's totals on the project over all assignments.
type WorkerLine struct {
	Name           string  `json:"name"`
	Specialization string  `json:"specialization"`
	TotalHours     float64 `json:"total_hours"`
	LaborCost      float64 `json:"labor_cost"`
}

// MaterialLine is one material's usage totals across the project's tasks.
type MaterialLine struct {
	Name      string  `json:"name"`
	Unit      string  `json:"unit"`
	Quantity  float64 `json:"quantity"`
	TotalCost float64 `json:"total_cost"`
}

// ProjectReport is the fully aggregated data an export or report view needs.
// Controllers assemble it; this package only renders.
type ProjectReport struct {
	Project   Models.Project
	Summary   Reports.CostSummary
	Forecast  Reports.Forecast
	Progress  []Reports.ProgressPoint
	Workers   []WorkerLine
	Materials []MaterialLine
}

// ProjectWorkbook renders the report as a five sheet workbook: Project
// Summary, Tasks, Workers, Materials and Cost Summary.
func ProjectWorkbook(report ProjectReport) (*bytes.Buffer, error) {
	f := excelize.NewFile()

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6E6FA"},
			Pattern: 1,
		},
	})

	if err := writeSummarySheet(f, headerStyle, report); err != nil {
		return nil, err
	}
	if err := writeTasksSheet(f, headerStyle, report.Summary.Tasks); err != nil {
		return nil, err
	}
	if err := writeWorkersSheet(f, headerStyle, report.Workers); err != nil {
		return nil, err
	}
	if err := writeMaterialsSheet(f, headerStyle, report.Materials); err != nil {
		return nil, err
	}
	if err := writeCostSheet(f, headerStyle, report); err != nil {
		return nil, err
	}

	if f.GetSheetName(0) == "Sheet1" {
		f.DeleteSheet("Sheet1")
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("error writing Excel file to buffer: %v", err)
	}
	return &buf, nil
}

func writeHeaders(f *excelize.File, sheet string, style int, headers []string) {
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheet, cell, header)
	}
	f.SetRowStyle(sheet, 1, 1, style)
	for i := range headers {
		col := string('A' + rune(i))
		f.SetColWidth(sheet, col, col, 18)
	}
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) {
	for i, value := range values {
		cell := fmt.Sprintf("%c%d", 'A'+i, row)
		f.SetCellValue(sheet, cell, value)
	}
}

func writeSummarySheet(f *excelize.File, style int, report ProjectReport) error {
	sheet := "Project Summary"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("error creating sheet: %v", err)
	}
	f.SetActiveSheet(index)
	writeHeaders(f, sheet, style, []string{"Field", "Value"})

	rows := [][]interface{}{
		{"Project Name", report.Project.Name},
		{"Location", report.Project.Location},
		{"Status", report.Project.Status},
		{"Start Date", report.Project.StartDate},
		{"End Date", report.Project.EndDate},
		{"Estimated Budget", report.Project.EstimatedBudget},
		{"Actual Cost", Reports.Round2(report.Summary.TotalActual)},
		{"Budget Utilization %", report.Forecast.BudgetUtilization},
		{"Schedule Completion %", report.Forecast.CompletionPercentage},
		{"Forecast Spend", report.Forecast.ForecastCompletion},
		{"Spend Variance", report.Forecast.Variance},
	}
	for i, values := range rows {
		writeRow(f, sheet, i+2, values)
	}
	f.SetColWidth(sheet, "A", "A", 24)
	f.SetColWidth(sheet, "B", "B", 30)
	return nil
}

func writeTasksSheet(f *excelize.File, style int, tasks []Reports.TaskCostRow) error {
	sheet := "Tasks"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("error creating sheet: %v", err)
	}
	writeHeaders(f, sheet, style, []string{
		"Task", "Parent Task", "Status", "Estimated Cost",
		"Material Cost", "Labor Cost", "Total Cost", "Variance",
	})
	for i, task := range tasks {
		writeRow(f, sheet, i+2, []interface{}{
			task.TaskName,
			task.ParentTaskName,
			task.Status,
			task.EstimatedCost,
			Reports.Round2(task.MaterialCost),
			Reports.Round2(task.LaborCost),
			Reports.Round2(task.TotalCost),
			Reports.Round2(task.CostVariance),
		})
	}
	return nil
}

func writeWorkersSheet(f *excelize.File, style int, workers []WorkerLine) error {
	sheet := "Workers"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("error creating sheet: %v", err)
	}
	writeHeaders(f, sheet, style, []string{
		"Worker", "Specialization", "Total Hours", "Labor Cost",
	})
	for i, worker := range workers {
		writeRow(f, sheet, i+2, []interface{}{
			worker.Name,
			worker.Specialization,
			worker.TotalHours,
			Reports.Round2(worker.LaborCost),
		})
	}
	return nil
}

func writeMaterialsSheet(f *excelize.File, style int, materials []MaterialLine) error {
	sheet := "Materials"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("error creating sheet: %v", err)
	}
	writeHeaders(f, sheet, style, []string{
		"Material", "Unit", "Quantity Used", "Total Cost",
	})
	for i, material := range materials {
		writeRow(f, sheet, i+2, []interface{}{
			material.Name,
			material.Unit,
			material.Quantity,
			Reports.Round2(material.TotalCost),
		})
	}
	return nil
}

func writeCostSheet(f *excelize.File, style int, report ProjectReport) error {
	sheet := "Cost Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("error creating sheet: %v", err)
	}
	writeHeaders(f, sheet, style, []string{"Category", "Amount"})

	overUnder := Reports.Round2(report.Summary.TotalActual - report.Project.EstimatedBudget)
	rows := [][]interface{}{
		{"Total Estimated (tasks)", Reports.Round2(report.Summary.TotalEstimated)},
		{"Total Material Cost", Reports.Round2(report.Summary.TotalMaterial)},
		{"Total Labor Cost", Reports.Round2(report.Summary.TotalLabor)},
		{"Total Actual Cost", Reports.Round2(report.Summary.TotalActual)},
		{"Project Budget", report.Project.EstimatedBudget},
		{"Over / Under Budget", overUnder},
	}
	for i, values := range rows {
		writeRow(f, sheet, i+2, values)
	}
	f.SetColWidth(sheet, "A", "A", 26)
	return nil
}
