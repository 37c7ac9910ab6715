package Controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Crane/Models"
)

// ActivityController records the task child rows that drive costs and
// progress: worker assignments, material usage and daily progress entries.
type ActivityController struct {
	DB *gorm.DB
}

func NewActivityController(db *gorm.DB) *ActivityController {
	return &ActivityController{DB: db}
}

type AssignWorkerInput struct {
	WorkerID       uint    `json:"worker_id" validate:"required"`
	AssignmentDate string  `json:"assignment_date" validate:"required,datetime=2006-01-02"`
	HoursWorked    float64 `json:"hours_worked" validate:"gte=0"`
	Notes          string  `json:"notes"`
}

// AssignWorker records hours worked on a task. The insert, the cached cost
// rewrite and the status flip commit together or not at all; a usage recorded
// without its cost update is the failure mode this guards against.
func (ac *ActivityController) AssignWorker(ctx *fiber.Ctx) error {
	taskID, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid task ID"})
	}

	var input AssignWorkerInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var task Models.Task
	if err := ac.DB.First(&task, taskID).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Task not found"})
	}
	var worker Models.Worker
	if err := ac.DB.First(&worker, input.WorkerID).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Worker not found"})
	}

	assignment := Models.TaskAssignment{
		TaskID:         task.ID,
		WorkerID:       worker.ID,
		AssignmentDate: input.AssignmentDate,
		HoursWorked:    input.HoursWorked,
		Notes:          input.Notes,
	}

	err = ac.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&assignment).Error; err != nil {
			return err
		}
		if err := Models.RecomputeTaskActualCost(tx, task.ID); err != nil {
			return err
		}
		return tx.Model(&Models.Task{}).
			Where("id = ? AND status = ?", task.ID, Models.TaskNotStarted).
			Update("status", Models.TaskInProgress).Error
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record assignment"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(assignment)
}

type AddMaterialInput struct {
	MaterialID uint    `json:"material_id" validate:"required"`
	Quantity   float64 `json:"quantity" validate:"gte=0"`
	DateUsed   string  `json:"date_used" validate:"required,datetime=2006-01-02"`
	Notes      string  `json:"notes"`
}

// AddTaskMaterial records material consumption. The cost snapshot is taken
// from the catalog price at insert time and kept; later price edits do not
// rewrite recorded usage.
func (ac *ActivityController) AddTaskMaterial(ctx *fiber.Ctx) error {
	taskID, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid task ID"})
	}

	var input AddMaterialInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var task Models.Task
	if err := ac.DB.First(&task, taskID).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Task not found"})
	}
	var material Models.Material
	if err := ac.DB.First(&material, input.MaterialID).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Material not found"})
	}

	usage := Models.TaskMaterial{
		TaskID:     task.ID,
		MaterialID: material.ID,
		Quantity:   input.Quantity,
		TotalCost:  input.Quantity * material.UnitCost,
		DateUsed:   input.DateUsed,
		Notes:      input.Notes,
	}

	err = ac.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&usage).Error; err != nil {
			return err
		}
		return Models.RecomputeTaskActualCost(tx, task.ID)
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record material usage"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(usage)
}

type RecordProgressInput struct {
	ProgressDate        string  `json:"progress_date" validate:"required,datetime=2006-01-02"`
	PercentageCompleted float64 `json:"percentage_completed" validate:"gte=0,lte=100"`
	Notes               string  `json:"notes"`
}

// RecordProgress appends a daily progress entry, attributed to the verified
// user. An entry of 100 marks the task completed and stamps its actual end.
func (ac *ActivityController) RecordProgress(ctx *fiber.Ctx) error {
	taskID, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid task ID"})
	}

	var input RecordProgressInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var task Models.Task
	if err := ac.DB.First(&task, taskID).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Task not found"})
	}

	user, _ := ctx.Locals("user").(Models.User)

	entry := Models.DailyProgress{
		TaskID:              task.ID,
		ProgressDate:        input.ProgressDate,
		PercentageCompleted: input.PercentageCompleted,
		Notes:               input.Notes,
		CreatedBy:           user.ID,
	}

	err = ac.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}
		if input.PercentageCompleted >= 100 {
			return tx.Model(&Models.Task{}).Where("id = ?", task.ID).Updates(map[string]interface{}{
				"status":          Models.TaskCompleted,
				"actual_end_date": input.ProgressDate,
			}).Error
		}
		return nil
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record progress"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(entry)
}
