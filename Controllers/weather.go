package Controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"Crane/Models"
	"Crane/Weather"
)

// GetProjectWeather proxies the 5-day site forecast for a project's location.
// The client is built per request so the API key is read after the env has
// been loaded.
func GetProjectWeather(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid project ID"})
	}

	var project Models.Project
	if err := Models.DB.First(&project, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Project not found"})
	}
	if project.Location == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Project location not set"})
	}

	forecast, err := Weather.NewClient().ForecastForLocation(c.Context(), project.Location)
	switch err {
	case nil:
	case Weather.ErrNoAPIKey:
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Weather service not configured"})
	case Weather.ErrLocationNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Location not found in weather service"})
	default:
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to fetch weather data"})
	}

	return c.JSON(fiber.Map{
		"project_id":   project.ID,
		"project_name": project.Name,
		"weather":      forecast,
	})
}
