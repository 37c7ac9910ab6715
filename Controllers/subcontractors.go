package Controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Crane/Models"
)

// SubcontractorController handles subcontractor endpoints including their
// project links.
type SubcontractorController struct {
	DB *gorm.DB
}

func NewSubcontractorController(db *gorm.DB) *SubcontractorController {
	return &SubcontractorController{DB: db}
}

type SubcontractorInput struct {
	CompanyName     string `json:"company_name" validate:"required"`
	ContactPerson   string `json:"contact_person" validate:"required"`
	Email           string `json:"email" validate:"omitempty,email"`
	Phone           string `json:"phone"`
	Specialty       string `json:"specialty" validate:"required"`
	ContractDetails string `json:"contract_details"`
	ProjectIDs      []uint `json:"project_ids"`
}

func (sc *SubcontractorController) GetSubcontractors(ctx *fiber.Ctx) error {
	var subcontractors []Models.Subcontractor
	if err := sc.DB.Preload("Projects").Order("company_name").Find(&subcontractors).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve subcontractors"})
	}
	return ctx.JSON(subcontractors)
}

// CreateSubcontractor inserts the company and its project links as one unit.
func (sc *SubcontractorController) CreateSubcontractor(ctx *fiber.Ctx) error {
	var input SubcontractorInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var projects []Models.Project
	if len(input.ProjectIDs) > 0 {
		if err := sc.DB.Find(&projects, input.ProjectIDs).Error; err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to resolve projects"})
		}
	}

	subcontractor := Models.Subcontractor{
		CompanyName:     input.CompanyName,
		ContactPerson:   input.ContactPerson,
		Email:           input.Email,
		Phone:           input.Phone,
		Specialty:       input.Specialty,
		ContractDetails: input.ContractDetails,
		Projects:        projects,
	}

	if err := sc.DB.Create(&subcontractor).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create subcontractor"})
	}
	return ctx.Status(fiber.StatusCreated).JSON(subcontractor)
}

func (sc *SubcontractorController) UpdateSubcontractor(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid subcontractor ID"})
	}

	var subcontractor Models.Subcontractor
	if err := sc.DB.First(&subcontractor, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Subcontractor not found"})
	}

	var input SubcontractorInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	subcontractor.CompanyName = input.CompanyName
	subcontractor.ContactPerson = input.ContactPerson
	subcontractor.Email = input.Email
	subcontractor.Phone = input.Phone
	subcontractor.Specialty = input.Specialty
	subcontractor.ContractDetails = input.ContractDetails

	err = sc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&subcontractor).Error; err != nil {
			return err
		}
		var projects []Models.Project
		if len(input.ProjectIDs) > 0 {
			if err := tx.Find(&projects, input.ProjectIDs).Error; err != nil {
				return err
			}
		}
		return tx.Model(&subcontractor).Association("Projects").Replace(projects)
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update subcontractor"})
	}
	return ctx.JSON(subcontractor)
}

func (sc *SubcontractorController) DeleteSubcontractor(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid subcontractor ID"})
	}

	var subcontractor Models.Subcontractor
	if err := sc.DB.First(&subcontractor, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Subcontractor not found"})
	}

	err = sc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&subcontractor).Association("Projects").Clear(); err != nil {
			return err
		}
		return tx.Delete(&subcontractor).Error
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete subcontractor"})
	}
	return ctx.JSON(fiber.Map{"message": "Subcontractor deleted successfully"})
}
