package Controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"Crane/Models"
)

type statusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type upcomingTask struct {
	Models.Task
	ProjectName string `json:"project_name"`
}

// GetDashboard summarizes the portfolio: project counts by status, the most
// recently created projects, tasks due in the next two weeks, and recent
// high severity incidents.
func GetDashboard(c *fiber.Ctx) error {
	var projectCounts []statusCount
	if err := Models.DB.Model(&Models.Project{}).
		Select("status, COUNT(*) as count").
		Group("status").Scan(&projectCounts).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load dashboard"})
	}

	var taskCounts []statusCount
	if err := Models.DB.Model(&Models.Task{}).
		Select("status, COUNT(*) as count").
		Group("status").Scan(&taskCounts).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load dashboard"})
	}

	var recentProjects []Models.Project
	if err := Models.DB.Order("created_at DESC").Limit(5).Find(&recentProjects).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load dashboard"})
	}

	today := time.Now().Format("2006-01-02")
	horizon := time.Now().AddDate(0, 0, 14).Format("2006-01-02")

	var dueTasks []upcomingTask
	err := Models.DB.Raw(`
		SELECT t.*, p.name as project_name
		FROM tasks t
		JOIN projects p ON t.project_id = p.id
		WHERE t.deleted_at IS NULL
		  AND t.status != ?
		  AND t.planned_end_date BETWEEN ? AND ?
		ORDER BY t.planned_end_date
		LIMIT 10
	`, Models.TaskCompleted, today, horizon).Scan(&dueTasks).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load dashboard"})
	}

	var recentIncidents []IncidentRow
	err = Models.DB.Raw(`
		SELECT s.*, COALESCE(p.name, '') as project_name, u.username as reported_name
		FROM safety_incidents s
		LEFT JOIN projects p ON s.project_id = p.id
		JOIN users u ON s.reported_by = u.id
		WHERE s.deleted_at IS NULL AND s.severity IN (?, ?)
		ORDER BY s.incident_date DESC
		LIMIT 5
	`, Models.SeverityHigh, Models.SeverityCritical).Scan(&recentIncidents).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load dashboard"})
	}

	return c.JSON(fiber.Map{
		"project_status_counts": projectCounts,
		"task_status_counts":    taskCounts,
		"recent_projects":       recentProjects,
		"upcoming_tasks":        dueTasks,
		"recent_incidents":      recentIncidents,
	})
}
