package Controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"Crane/Models"
)

type EquipmentInput struct {
	Name            string  `json:"equipment_name" validate:"required"`
	Type            string  `json:"equipment_type" validate:"required"`
	SerialNumber    string  `json:"serial_number"`
	PurchaseDate    string  `json:"purchase_date" validate:"omitempty,datetime=2006-01-02"`
	PurchaseCost    float64 `json:"purchase_cost" validate:"gte=0"`
	AssignedProject *uint   `json:"assigned_project"`
	Status          string  `json:"status" validate:"required,oneof=available in_use maintenance retired"`
	Notes           string  `json:"notes"`
}

func GetEquipment(c *fiber.Ctx) error {
	var equipment []Models.Equipment
	if err := Models.DB.Order("name").Find(&equipment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve equipment"})
	}
	return c.JSON(equipment)
}

func AddEquipment(c *fiber.Ctx) error {
	var input EquipmentInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if input.AssignedProject != nil {
		var project Models.Project
		if err := Models.DB.First(&project, *input.AssignedProject).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Assigned project not found"})
		}
	}

	equipment := Models.Equipment{
		Name:            input.Name,
		Type:            input.Type,
		SerialNumber:    input.SerialNumber,
		PurchaseDate:    input.PurchaseDate,
		PurchaseCost:    input.PurchaseCost,
		AssignedProject: input.AssignedProject,
		Status:          input.Status,
		Notes:           input.Notes,
	}
	if err := Models.DB.Create(&equipment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create equipment"})
	}
	return c.Status(fiber.StatusCreated).JSON(equipment)
}

func UpdateEquipment(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid equipment ID"})
	}

	var equipment Models.Equipment
	if err := Models.DB.First(&equipment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Equipment not found"})
	}

	var input EquipmentInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	equipment.Name = input.Name
	equipment.Type = input.Type
	equipment.SerialNumber = input.SerialNumber
	equipment.PurchaseDate = input.PurchaseDate
	equipment.PurchaseCost = input.PurchaseCost
	equipment.AssignedProject = input.AssignedProject
	equipment.Status = input.Status
	equipment.Notes = input.Notes

	if err := Models.DB.Save(&equipment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update equipment"})
	}
	return c.JSON(equipment)
}

func DeleteEquipment(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid equipment ID"})
	}

	var equipment Models.Equipment
	if err := Models.DB.First(&equipment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Equipment not found"})
	}

	Models.DB.Delete(&equipment)
	return c.JSON(fiber.Map{"message": "Equipment deleted successfully"})
}
