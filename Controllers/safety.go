package Controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"Crane/Models"
	"Crane/Slack"
)

type SafetyIncidentInput struct {
	IncidentType string `json:"incident_type" validate:"required"`
	IncidentDate string `json:"incident_date" validate:"required,datetime=2006-01-02"`
	ProjectID    *uint  `json:"project_id"`
	Location     string `json:"location" validate:"required"`
	Description  string `json:"description" validate:"required"`
	Severity     string `json:"severity" validate:"required,oneof=low medium high critical"`
	ActionTaken  string `json:"action_taken"`
}

// IncidentRow joins an incident with its project and reporter names.
type IncidentRow struct {
	Models.SafetyIncident
	ProjectName  string `json:"project_name"`
	ReportedName string `json:"reported_by_name"`
}

func GetSafetyIncidents(c *fiber.Ctx) error {
	var incidents []IncidentRow
	err := Models.DB.Raw(`
		SELECT s.*, COALESCE(p.name, '') as project_name, u.username as reported_name
		FROM safety_incidents s
		LEFT JOIN projects p ON s.project_id = p.id
		JOIN users u ON s.reported_by = u.id
		WHERE s.deleted_at IS NULL
		ORDER BY s.incident_date DESC
	`).Scan(&incidents).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve incidents"})
	}
	return c.JSON(incidents)
}

func AddSafetyIncident(c *fiber.Ctx) error {
	var input SafetyIncidentInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var projectName string
	if input.ProjectID != nil {
		var project Models.Project
		if err := Models.DB.First(&project, *input.ProjectID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Project not found"})
		}
		projectName = project.Name
	}

	user, _ := c.Locals("user").(Models.User)

	incident := Models.SafetyIncident{
		IncidentType: input.IncidentType,
		IncidentDate: input.IncidentDate,
		ProjectID:    input.ProjectID,
		Location:     input.Location,
		Description:  input.Description,
		Severity:     input.Severity,
		ActionTaken:  input.ActionTaken,
		ReportedBy:   user.ID,
	}
	if err := Models.DB.Create(&incident).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record incident"})
	}

	go Slack.NotifySafetyIncident(incident, projectName, user.FullName)

	return c.Status(fiber.StatusCreated).JSON(incident)
}

func UpdateSafetyIncident(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid incident ID"})
	}

	var incident Models.SafetyIncident
	if err := Models.DB.First(&incident, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Incident not found"})
	}

	var input SafetyIncidentInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	incident.IncidentType = input.IncidentType
	incident.IncidentDate = input.IncidentDate
	incident.ProjectID = input.ProjectID
	incident.Location = input.Location
	incident.Description = input.Description
	incident.Severity = input.Severity
	incident.ActionTaken = input.ActionTaken

	if err := Models.DB.Save(&incident).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update incident"})
	}
	return c.JSON(incident)
}

func DeleteSafetyIncident(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid incident ID"})
	}

	var incident Models.SafetyIncident
	if err := Models.DB.First(&incident, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Incident not found"})
	}

	Models.DB.Delete(&incident)
	return c.JSON(fiber.Map{"message": "Safety incident deleted successfully"})
}
