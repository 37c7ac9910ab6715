package Controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Crane/Models"
	"Crane/Reports"
)

// TaskController handles task-related API endpoints
type TaskController struct {
	DB *gorm.DB
}

// NewTaskController creates a new TaskController
func NewTaskController(db *gorm.DB) *TaskController {
	return &TaskController{DB: db}
}

type TaskInput struct {
	ProjectID        uint    `json:"project_id" validate:"required"`
	Name             string  `json:"task_name" validate:"required"`
	Description      string  `json:"description"`
	TaskType         string  `json:"task_type" validate:"omitempty,oneof=yearly monthly weekly daily"`
	ParentTaskID     *uint   `json:"parent_task_id"`
	PlannedStartDate string  `json:"planned_start_date" validate:"required,datetime=2006-01-02"`
	PlannedEndDate   string  `json:"planned_end_date" validate:"required,datetime=2006-01-02"`
	EstimatedDays    int     `json:"estimated_days" validate:"gte=0"`
	EstimatedCost    float64 `json:"estimated_cost" validate:"gte=0"`
	Status           string  `json:"status" validate:"omitempty,oneof=not_started in_progress completed delayed"`
}

// wouldCreateCycle reports whether setting parentID as taskID's parent would
// make the task its own ancestor. Parents are walked through a map of the
// project's tasks rather than chased through the database row by row.
func wouldCreateCycle(db *gorm.DB, projectID, taskID uint, parentID *uint) bool {
	if parentID == nil {
		return false
	}

	var tasks []Models.Task
	db.Select("id, parent_task_id").Where("project_id = ?", projectID).Find(&tasks)
	parents := make(map[uint]*uint, len(tasks))
	for _, t := range tasks {
		parents[t.ID] = t.ParentTaskID
	}

	seen := make(map[uint]bool)
	for cur := parentID; cur != nil; cur = parents[*cur] {
		if *cur == taskID {
			return true
		}
		if seen[*cur] {
			// pre-existing corruption; refuse to extend it
			return true
		}
		seen[*cur] = true
	}
	return false
}

// CreateTask creates a task, optionally as a subtask of a parent within the
// same project
func (tc *TaskController) CreateTask(ctx *fiber.Ctx) error {
	var input TaskInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var project Models.Project
	if err := tc.DB.First(&project, input.ProjectID).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Project not found"})
	}

	if input.ParentTaskID != nil {
		var parent Models.Task
		if err := tc.DB.First(&parent, *input.ParentTaskID).Error; err != nil {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Parent task not found"})
		}
		if parent.ProjectID != input.ProjectID {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Parent task belongs to a different project",
			})
		}
	}

	task := Models.Task{
		ProjectID:        input.ProjectID,
		Name:             input.Name,
		Description:      input.Description,
		TaskType:         input.TaskType,
		ParentTaskID:     input.ParentTaskID,
		PlannedStartDate: input.PlannedStartDate,
		PlannedEndDate:   input.PlannedEndDate,
		EstimatedDays:    input.EstimatedDays,
		EstimatedCost:    input.EstimatedCost,
		Status:           Models.TaskNotStarted,
	}
	if input.Status != "" {
		task.Status = input.Status
	}

	if err := tc.DB.Create(&task).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create task"})
	}
	return ctx.Status(fiber.StatusCreated).JSON(task)
}

// AssignmentRow is an assignment joined with its worker for the detail view.
type AssignmentRow struct {
	ID             uint    `json:"id"`
	WorkerID       uint    `json:"worker_id"`
	WorkerName     string  `json:"worker_name"`
	Specialization string  `json:"specialization"`
	DailyWage      float64 `json:"daily_wage"`
	AssignmentDate string  `json:"assignment_date"`
	HoursWorked    float64 `json:"hours_worked"`
	Notes          string  `json:"notes"`
}

// MaterialRow is a material usage joined with its catalog entry.
type MaterialRow struct {
	ID           uint    `json:"id"`
	MaterialID   uint    `json:"material_id"`
	MaterialName string  `json:"material_name"`
	Unit         string  `json:"unit"`
	UnitCost     float64 `json:"unit_cost"`
	Quantity     float64 `json:"quantity"`
	TotalCost    float64 `json:"total_cost"`
	DateUsed     string  `json:"date_used"`
	Notes        string  `json:"notes"`
}

// ProgressRow is a daily progress entry joined with its author.
type ProgressRow struct {
	ID                  uint    `json:"id"`
	ProgressDate        string  `json:"progress_date"`
	PercentageCompleted float64 `json:"percentage_completed"`
	Notes               string  `json:"notes"`
	CreatedByName       string  `json:"created_by_name"`
}

// GetTask returns the task with its subtasks, assignments, materials and
// progress history. Costs on this view are aggregated fresh from the child
// rows, not read from the cached actual_cost column.
func (tc *TaskController) GetTask(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid task ID"})
	}

	var task Models.Task
	if err := tc.DB.First(&task, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Task not found"})
	}

	var subtasks []Models.Task
	tc.DB.Where("parent_task_id = ?", id).Order("planned_start_date").Find(&subtasks)

	var assignments []AssignmentRow
	tc.DB.Raw(`
		SELECT ta.id, ta.worker_id, w.name as worker_name, w.specialization,
		       w.daily_wage, ta.assignment_date, ta.hours_worked, ta.notes
		FROM task_assignments ta
		JOIN workers w ON ta.worker_id = w.id
		WHERE ta.task_id = ? AND ta.deleted_at IS NULL
		ORDER BY ta.assignment_date DESC
	`, id).Scan(&assignments)

	var materials []MaterialRow
	tc.DB.Raw(`
		SELECT tm.id, tm.material_id, m.name as material_name, m.unit,
		       m.unit_cost, tm.quantity, tm.total_cost, tm.date_used, tm.notes
		FROM task_materials tm
		JOIN materials m ON tm.material_id = m.id
		WHERE tm.task_id = ? AND tm.deleted_at IS NULL
		ORDER BY tm.date_used DESC
	`, id).Scan(&materials)

	var progress []ProgressRow
	tc.DB.Raw(`
		SELECT dp.id, dp.progress_date, dp.percentage_completed, dp.notes,
		       u.username as created_by_name
		FROM daily_progress dp
		JOIN users u ON dp.created_by = u.id
		WHERE dp.task_id = ? AND dp.deleted_at IS NULL
		ORDER BY dp.progress_date DESC
	`, id).Scan(&progress)

	assignmentCosts := make([]Reports.AssignmentCost, len(assignments))
	for i, a := range assignments {
		assignmentCosts[i] = Reports.AssignmentCost{HoursWorked: a.HoursWorked, DailyWage: a.DailyWage}
	}
	usageCosts := make([]Reports.UsageCost, len(materials))
	for i, m := range materials {
		usageCosts[i] = Reports.UsageCost{TotalCost: m.TotalCost}
	}
	costs := Reports.TaskCosts(assignmentCosts, usageCosts)

	return ctx.JSON(fiber.Map{
		"task":        task,
		"subtasks":    subtasks,
		"assignments": assignments,
		"materials":   materials,
		"progress":    progress,
		"costs":       costs,
	})
}

// UpdateTask updates a task's editable fields, re-validating the parent link
func (tc *TaskController) UpdateTask(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid task ID"})
	}

	var task Models.Task
	if err := tc.DB.First(&task, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Task not found"})
	}

	var input TaskInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	input.ProjectID = task.ProjectID
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if input.ParentTaskID != nil {
		if *input.ParentTaskID == task.ID {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Task cannot be its own parent"})
		}
		var parent Models.Task
		if err := tc.DB.First(&parent, *input.ParentTaskID).Error; err != nil {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Parent task not found"})
		}
		if parent.ProjectID != task.ProjectID {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Parent task belongs to a different project",
			})
		}
		if wouldCreateCycle(tc.DB, task.ProjectID, task.ID, input.ParentTaskID) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Parent change would make the task its own ancestor",
			})
		}
	}

	task.Name = input.Name
	task.Description = input.Description
	task.TaskType = input.TaskType
	task.ParentTaskID = input.ParentTaskID
	task.PlannedStartDate = input.PlannedStartDate
	task.PlannedEndDate = input.PlannedEndDate
	task.EstimatedDays = input.EstimatedDays
	task.EstimatedCost = input.EstimatedCost
	if input.Status != "" {
		task.Status = input.Status
	}

	if err := tc.DB.Save(&task).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update task"})
	}
	return ctx.JSON(task)
}
