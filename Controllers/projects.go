package Controllers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Crane/Models"
	"Crane/Reports"
)

// ProjectController handles project-related API endpoints
type ProjectController struct {
	DB *gorm.DB
}

// NewProjectController creates a new ProjectController
func NewProjectController(db *gorm.DB) *ProjectController {
	return &ProjectController{DB: db}
}

type ProjectInput struct {
	Name            string  `json:"project_name" validate:"required"`
	Description     string  `json:"description"`
	StartDate       string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate         string  `json:"end_date" validate:"required,datetime=2006-01-02"`
	Location        string  `json:"location"`
	EstimatedBudget float64 `json:"estimated_budget" validate:"gte=0"`
	Status          string  `json:"status" validate:"omitempty,oneof=planned in_progress on_hold completed cancelled"`
}

// validDateRange enforces end >= start so the forecast never sees a negative
// project duration written through the API.
func validDateRange(start, end string) bool {
	s, err1 := time.Parse("2006-01-02", start)
	e, err2 := time.Parse("2006-01-02", end)
	return err1 == nil && err2 == nil && !e.Before(s)
}

// GetProjects retrieves all projects, newest first
func (pc *ProjectController) GetProjects(ctx *fiber.Ctx) error {
	var projects []Models.Project
	if err := pc.DB.Order("created_at DESC").Find(&projects).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve projects"})
	}
	return ctx.JSON(projects)
}

// CreateProject creates a new project owned by the logged-in user
func (pc *ProjectController) CreateProject(ctx *fiber.Ctx) error {
	var input ProjectInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if !validDateRange(input.StartDate, input.EndDate) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "end_date must not precede start_date"})
	}

	user, _ := ctx.Locals("user").(Models.User)

	project := Models.Project{
		Name:            input.Name,
		Description:     input.Description,
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
		Location:        input.Location,
		EstimatedBudget: input.EstimatedBudget,
		Status:          Models.ProjectPlanned,
		CreatedBy:       user.ID,
	}
	if input.Status != "" {
		project.Status = input.Status
	}

	if err := pc.DB.Create(&project).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create project"})
	}
	return ctx.Status(fiber.StatusCreated).JSON(project)
}

// GetProject retrieves a single project by ID
func (pc *ProjectController) GetProject(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid project ID"})
	}

	var project Models.Project
	if err := pc.DB.First(&project, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Project not found"})
	}
	return ctx.JSON(project)
}

// UpdateProject updates an existing project
func (pc *ProjectController) UpdateProject(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid project ID"})
	}

	var project Models.Project
	if err := pc.DB.First(&project, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Project not found"})
	}

	var input ProjectInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if !validDateRange(input.StartDate, input.EndDate) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "end_date must not precede start_date"})
	}

	project.Name = input.Name
	project.Description = input.Description
	project.StartDate = input.StartDate
	project.EndDate = input.EndDate
	project.Location = input.Location
	project.EstimatedBudget = input.EstimatedBudget
	if input.Status != "" {
		project.Status = input.Status
	}

	if err := pc.DB.Save(&project).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update project"})
	}
	return ctx.JSON(project)
}

// ProjectProgressStats summarizes task completion and cost for the details view.
type ProjectProgressStats struct {
	TotalTasks     int64   `json:"total_tasks"`
	CompletedTasks int64   `json:"completed_tasks"`
	EstimatedCost  float64 `json:"estimated_cost"`
	ActualCost     float64 `json:"actual_cost"`
}

// GanttTask is the shape consumed by the schedule chart on the details page.
type GanttTask struct {
	TaskID      uint   `json:"task_id"`
	TaskName    string `json:"task_name"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Status      string `json:"status"`
	HasSubtasks int64  `json:"has_subtasks"`
}

// GetProjectDetails returns the project together with its main tasks,
// completion stats and gantt rows. ActualCost here reads the cached task
// column; it is the authoritative figure for reporting surfaces.
func (pc *ProjectController) GetProjectDetails(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid project ID"})
	}

	var project Models.Project
	if err := pc.DB.First(&project, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Project not found"})
	}

	var mainTasks []Models.Task
	pc.DB.Where("project_id = ? AND parent_task_id IS NULL", id).
		Order("planned_start_date").Find(&mainTasks)
	for i := range mainTasks {
		pc.DB.Model(&Models.Task{}).Where("parent_task_id = ?", mainTasks[i].ID).
			Count(&mainTasks[i].SubtaskCount)
	}

	var stats ProjectProgressStats
	pc.DB.Model(&Models.Task{}).Where("project_id = ?", id).Count(&stats.TotalTasks)
	pc.DB.Model(&Models.Task{}).Where("project_id = ? AND status = ?", id, Models.TaskCompleted).
		Count(&stats.CompletedTasks)
	pc.DB.Model(&Models.Task{}).Where("project_id = ?", id).
		Select("COALESCE(SUM(estimated_cost), 0)").Scan(&stats.EstimatedCost)
	pc.DB.Model(&Models.Task{}).Where("project_id = ?", id).
		Select("COALESCE(SUM(actual_cost), 0)").Scan(&stats.ActualCost)

	var ganttTasks []GanttTask
	pc.DB.Raw(`
		SELECT
			t.id as task_id,
			t.name as task_name,
			t.planned_start_date as start_date,
			t.planned_end_date as end_date,
			t.status,
			(SELECT COUNT(*) FROM tasks sub WHERE sub.parent_task_id = t.id AND sub.deleted_at IS NULL) as has_subtasks
		FROM tasks t
		WHERE t.project_id = ? AND t.deleted_at IS NULL
		ORDER BY t.planned_start_date
	`, id).Scan(&ganttTasks)

	forecast := Reports.BudgetForecast(project.StartDate, project.EndDate,
		project.EstimatedBudget, stats.ActualCost, time.Now())

	return ctx.JSON(fiber.Map{
		"project":         project,
		"main_tasks":      mainTasks,
		"progress":        stats,
		"gantt_tasks":     ganttTasks,
		"budget_forecast": forecast,
	})
}
