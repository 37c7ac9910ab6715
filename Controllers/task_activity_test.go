package Controllers

import (
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"Crane/Models"
)

func newActivityApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	ac := NewActivityController(db)
	app.Post("/api/tasks/:id/assignments", ac.AssignWorker)
	app.Post("/api/tasks/:id/materials", ac.AddTaskMaterial)
	return app
}

func seedActivityFixtures(t *testing.T, db *gorm.DB) (Models.Task, Models.Worker, Models.Material) {
	t.Helper()
	project := Models.Project{Name: "Depot Refit", StartDate: "2026-01-01", EndDate: "2026-12-31"}
	require.NoError(t, db.Create(&project).Error)
	task := createTask(t, db, project.ID, "Roofing", nil)

	worker := Models.Worker{Name: "Omar", Specialization: "roofer", DailyWage: 160}
	require.NoError(t, db.Create(&worker).Error)
	material := Models.Material{Name: "Steel Sheet", Unit: "m2", UnitCost: 25}
	require.NoError(t, db.Create(&material).Error)
	return task, worker, material
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func postJSON(t *testing.T, app *fiber.App, path, body string) int {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestAssignWorkerWriteThrough(t *testing.T) {
	db := openTestDB(t)
	task, worker, _ := seedActivityFixtures(t, db)
	app := newActivityApp(db)

	status := postJSON(t, app, "/api/tasks/"+itoa(task.ID)+"/assignments",
		`{"worker_id": `+itoa(worker.ID)+`, "assignment_date": "2026-01-10", "hours_worked": 8}`)
	require.Equal(t, fiber.StatusCreated, status)

	var got Models.Task
	require.NoError(t, db.First(&got, task.ID).Error)
	assert.InDelta(t, 160.0, got.ActualCost, 1e-9)
	assert.Equal(t, Models.TaskInProgress, got.Status)
}

func TestAssignWorkerRollsBackWhenRecomputeFails(t *testing.T) {
	db := openTestDB(t)
	task, worker, _ := seedActivityFixtures(t, db)
	app := newActivityApp(db)

	// The recompute sums task_materials inside the same transaction as the
	// insert; removing the table makes it fail after the row is written.
	require.NoError(t, db.Migrator().DropTable(&Models.TaskMaterial{}))

	status := postJSON(t, app, "/api/tasks/"+itoa(task.ID)+"/assignments",
		`{"worker_id": `+itoa(worker.ID)+`, "assignment_date": "2026-01-10", "hours_worked": 8}`)
	require.Equal(t, fiber.StatusInternalServerError, status)

	// Nothing of the failed request may survive: no row, no cost, no flip.
	var count int64
	db.Model(&Models.TaskAssignment{}).Count(&count)
	assert.Zero(t, count)

	var got Models.Task
	require.NoError(t, db.First(&got, task.ID).Error)
	assert.Zero(t, got.ActualCost)
	assert.Equal(t, Models.TaskNotStarted, got.Status)
}

func TestAddTaskMaterialRollsBackWhenRecomputeFails(t *testing.T) {
	db := openTestDB(t)
	task, _, material := seedActivityFixtures(t, db)
	app := newActivityApp(db)

	// Labor side of the recompute joins task_assignments.
	require.NoError(t, db.Migrator().DropTable(&Models.TaskAssignment{}))

	status := postJSON(t, app, "/api/tasks/"+itoa(task.ID)+"/materials",
		`{"material_id": `+itoa(material.ID)+`, "quantity": 10, "date_used": "2026-01-10"}`)
	require.Equal(t, fiber.StatusInternalServerError, status)

	var count int64
	db.Model(&Models.TaskMaterial{}).Count(&count)
	assert.Zero(t, count)
}
