package Controllers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Crane/Exports"
	"Crane/Reports"
)

// ReportController serves the project report in JSON, HTML and Excel form.
type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// taskCostRows recomputes every task's material and labor cost from the
// underlying records. Reports never trust the cached actual_cost column.
func (rc *ReportController) taskCostRows(projectID uint) ([]Reports.TaskCostRow, error) {
	var rows []Reports.TaskCostRow
	err := rc.DB.Raw(`
		SELECT
			t.id as task_id,
			t.name as task_name,
			t.parent_task_id,
			COALESCE(parent.name, '') as parent_task_name,
			t.status,
			t.estimated_cost,
			COALESCE((
				SELECT SUM(tm.total_cost)
				FROM task_materials tm
				WHERE tm.task_id = t.id AND tm.deleted_at IS NULL
			), 0) as material_cost,
			COALESCE((
				SELECT SUM(ta.hours_worked * (w.daily_wage / 8.0))
				FROM task_assignments ta
				JOIN workers w ON ta.worker_id = w.id AND w.deleted_at IS NULL
				WHERE ta.task_id = t.id AND ta.deleted_at IS NULL
			), 0) as labor_cost
		FROM tasks t
		LEFT JOIN tasks parent ON t.parent_task_id = parent.id
		WHERE t.project_id = ? AND t.deleted_at IS NULL
		ORDER BY t.id
	`, projectID).Scan(&rows).Error
	return rows, err
}

func (rc *ReportController) progressEntries(projectID uint) ([]Reports.ProgressEntry, error) {
	var entries []Reports.ProgressEntry
	err := rc.DB.Raw(`
		SELECT dp.progress_date as date, dp.percentage_completed as percentage
		FROM daily_progress dp
		JOIN tasks t ON dp.task_id = t.id
		WHERE t.project_id = ? AND dp.deleted_at IS NULL AND t.deleted_at IS NULL
	`, projectID).Scan(&entries).Error
	return entries, err
}

func (rc *ReportController) workerLines(projectID uint) ([]Exports.WorkerLine, error) {
	var lines []Exports.WorkerLine
	err := rc.DB.Raw(`
		SELECT
			w.name,
			w.specialization,
			SUM(ta.hours_worked) as total_hours,
			SUM(ta.hours_worked * (w.daily_wage / 8.0)) as labor_cost
		FROM task_assignments ta
		JOIN workers w ON ta.worker_id = w.id AND w.deleted_at IS NULL
		JOIN tasks t ON ta.task_id = t.id
		WHERE t.project_id = ? AND ta.deleted_at IS NULL AND t.deleted_at IS NULL
		GROUP BY w.id, w.name, w.specialization
		ORDER BY labor_cost DESC
	`, projectID).Scan(&lines).Error
	return lines, err
}

func (rc *ReportController) materialLines(projectID uint) ([]Exports.MaterialLine, error) {
	var lines []Exports.MaterialLine
	err := rc.DB.Raw(`
		SELECT
			m.name,
			m.unit,
			SUM(tm.quantity) as quantity,
			SUM(tm.total_cost) as total_cost
		FROM task_materials tm
		JOIN materials m ON tm.material_id = m.id
		JOIN tasks t ON tm.task_id = t.id
		WHERE t.project_id = ? AND tm.deleted_at IS NULL AND t.deleted_at IS NULL
		GROUP BY m.id, m.name, m.unit
		ORDER BY total_cost DESC
	`, projectID).Scan(&lines).Error
	return lines, err
}

// buildProjectReport assembles every aggregate the report surfaces share.
// leafOnly drops parent tasks from the cost summary so estimates carried on
// both a parent and its subtasks are not counted twice.
func (rc *ReportController) buildProjectReport(projectID uint, leafOnly bool) (Exports.ProjectReport, error) {
	var report Exports.ProjectReport

	if err := rc.DB.First(&report.Project, projectID).Error; err != nil {
		return report, err
	}

	rows, err := rc.taskCostRows(projectID)
	if err != nil {
		return report, err
	}
	report.Summary = Reports.ProjectCostSummary(rows, Reports.SummaryOptions{LeafTasksOnly: leafOnly})

	report.Forecast = Reports.BudgetForecast(
		report.Project.StartDate, report.Project.EndDate,
		report.Project.EstimatedBudget, report.Summary.TotalActual, time.Now())

	entries, err := rc.progressEntries(projectID)
	if err != nil {
		return report, err
	}
	report.Progress = Reports.ProgressSeries(entries)

	if report.Workers, err = rc.workerLines(projectID); err != nil {
		return report, err
	}
	if report.Materials, err = rc.materialLines(projectID); err != nil {
		return report, err
	}
	return report, nil
}

// GetProjectReport returns the aggregated report as JSON, including the
// label/value pairs the cost chart renders from.
func (rc *ReportController) GetProjectReport(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid project ID"})
	}
	leafOnly := ctx.Query("leaf_only") == "true"

	report, err := rc.buildProjectReport(uint(id), leafOnly)
	if err == gorm.ErrRecordNotFound {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Project not found"})
	}
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build report"})
	}

	chartLabels := make([]string, 0, len(report.Summary.Tasks))
	chartEstimated := make([]float64, 0, len(report.Summary.Tasks))
	chartActual := make([]float64, 0, len(report.Summary.Tasks))
	for _, task := range report.Summary.Tasks {
		chartLabels = append(chartLabels, task.TaskName)
		chartEstimated = append(chartEstimated, task.EstimatedCost)
		chartActual = append(chartActual, Reports.Round2(task.TotalCost))
	}

	return ctx.JSON(fiber.Map{
		"project":         report.Project,
		"cost_summary":    report.Summary,
		"budget_forecast": report.Forecast,
		"progress_series": report.Progress,
		"workers":         report.Workers,
		"materials":       report.Materials,
		"cost_chart": fiber.Map{
			"labels":    chartLabels,
			"estimated": chartEstimated,
			"actual":    chartActual,
		},
	})
}

// ViewProjectReport renders the printable HTML report.
func (rc *ReportController) ViewProjectReport(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).SendString("Invalid project ID")
	}
	leafOnly := ctx.Query("leaf_only") == "true"

	report, err := rc.buildProjectReport(uint(id), leafOnly)
	if err == gorm.ErrRecordNotFound {
		return ctx.Status(fiber.StatusNotFound).SendString("Project not found")
	}
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).SendString("Failed to build report")
	}

	return ctx.Render("project_report", fiber.Map{
		"Project":     report.Project,
		"Summary":     report.Summary,
		"Forecast":    report.Forecast,
		"Progress":    report.Progress,
		"Workers":     report.Workers,
		"Materials":   report.Materials,
		"GeneratedAt": time.Now().Format("2006-01-02 15:04"),
	})
}

// ExportProjectReport streams the report as a multi sheet xlsx download.
func (rc *ReportController) ExportProjectReport(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid project ID"})
	}
	leafOnly := ctx.Query("leaf_only") == "true"

	report, err := rc.buildProjectReport(uint(id), leafOnly)
	if err == gorm.ErrRecordNotFound {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Project not found"})
	}
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build report"})
	}

	buf, err := Exports.ProjectWorkbook(report)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate workbook"})
	}

	filename := fmt.Sprintf("project_report_%d_%s.xlsx", id, time.Now().Format("20060102"))
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return ctx.Send(buf.Bytes())
}
