package Controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"Crane/Models"
)

type MaterialInput struct {
	Name        string  `json:"material_name" validate:"required"`
	Unit        string  `json:"unit" validate:"required"`
	UnitCost    float64 `json:"unit_cost" validate:"gte=0"`
	Description string  `json:"description"`
}

func GetMaterials(c *fiber.Ctx) error {
	var materials []Models.Material
	if err := Models.DB.Order("name").Find(&materials).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve materials"})
	}
	return c.JSON(materials)
}

func AddMaterial(c *fiber.Ctx) error {
	var input MaterialInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	material := Models.Material{
		Name:        input.Name,
		Unit:        input.Unit,
		UnitCost:    input.UnitCost,
		Description: input.Description,
	}
	if err := Models.DB.Create(&material).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create material"})
	}
	return c.Status(fiber.StatusCreated).JSON(material)
}

// UpdateMaterial edits the catalog entry. Recorded task_materials keep their
// snapshot cost; only future usage picks up the new price.
func UpdateMaterial(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid material ID"})
	}

	var material Models.Material
	if err := Models.DB.First(&material, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Material not found"})
	}

	var input MaterialInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	material.Name = input.Name
	material.Unit = input.Unit
	material.UnitCost = input.UnitCost
	material.Description = input.Description

	if err := Models.DB.Save(&material).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update material"})
	}
	return c.JSON(material)
}
