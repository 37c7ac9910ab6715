package Controllers

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"Crane/Models"
)

type WorkerInput struct {
	Name           string  `json:"name" validate:"required"`
	ContactNumber  string  `json:"contact_number"`
	Email          string  `json:"email" validate:"omitempty,email"`
	Specialization string  `json:"specialization"`
	DailyWage      float64 `json:"daily_wage" validate:"required,gt=0"`
}

func GetWorkers(c *fiber.Ctx) error {
	var workers []Models.Worker
	if err := Models.DB.Order("name").Find(&workers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve workers"})
	}
	return c.JSON(workers)
}

// RegisterWorker creates a worker. A non-positive wage is rejected here so
// the cost rollup never has to decide what a free worker means.
func RegisterWorker(c *fiber.Ctx) error {
	var input WorkerInput
	if err := c.BodyParser(&input); err != nil {
		log.Println(err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	worker := Models.Worker{
		Name:           input.Name,
		ContactNumber:  input.ContactNumber,
		Email:          input.Email,
		Specialization: input.Specialization,
		DailyWage:      input.DailyWage,
	}
	if err := Models.DB.Create(&worker).Error; err != nil {
		log.Println(err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create worker"})
	}
	return c.Status(fiber.StatusCreated).JSON(worker)
}

func UpdateWorker(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid worker ID"})
	}

	var worker Models.Worker
	if err := Models.DB.First(&worker, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Worker not found"})
	}

	var input WorkerInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	worker.Name = input.Name
	worker.ContactNumber = input.ContactNumber
	worker.Email = input.Email
	worker.Specialization = input.Specialization
	worker.DailyWage = input.DailyWage

	if err := Models.DB.Save(&worker).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update worker"})
	}
	return c.JSON(worker)
}
