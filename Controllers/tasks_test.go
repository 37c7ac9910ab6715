package Controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"Crane/Models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Named per test so pooled connections share one database and tests
	// stay isolated from each other.
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Models.Migrate(db))
	return db
}

func createTask(t *testing.T, db *gorm.DB, projectID uint, name string, parentID *uint) Models.Task {
	t.Helper()
	task := Models.Task{
		ProjectID:        projectID,
		Name:             name,
		ParentTaskID:     parentID,
		PlannedStartDate: "2026-02-01",
		PlannedEndDate:   "2026-02-28",
		Status:           Models.TaskNotStarted,
	}
	require.NoError(t, db.Create(&task).Error)
	return task
}

func TestWouldCreateCycle(t *testing.T) {
	db := openTestDB(t)

	project := Models.Project{Name: "Plant Extension", StartDate: "2026-01-01", EndDate: "2026-12-31"}
	require.NoError(t, db.Create(&project).Error)

	// root -> mid -> leaf
	root := createTask(t, db, project.ID, "Structure", nil)
	mid := createTask(t, db, project.ID, "Framing", &root.ID)
	leaf := createTask(t, db, project.ID, "Cladding", &mid.ID)
	other := createTask(t, db, project.ID, "Site Prep", nil)

	assert.False(t, wouldCreateCycle(db, project.ID, leaf.ID, nil))
	assert.False(t, wouldCreateCycle(db, project.ID, leaf.ID, &other.ID))
	assert.False(t, wouldCreateCycle(db, project.ID, other.ID, &leaf.ID))

	// Reparenting an ancestor under its own descendant closes a loop.
	assert.True(t, wouldCreateCycle(db, project.ID, root.ID, &leaf.ID))
	assert.True(t, wouldCreateCycle(db, project.ID, root.ID, &mid.ID))
	assert.True(t, wouldCreateCycle(db, project.ID, mid.ID, &leaf.ID))

	// Direct self-parenting.
	assert.True(t, wouldCreateCycle(db, project.ID, root.ID, &root.ID))
}

func TestValidDateRange(t *testing.T) {
	assert.True(t, validDateRange("2026-01-01", "2026-06-30"))
	assert.True(t, validDateRange("2026-01-01", "2026-01-01"))
	assert.False(t, validDateRange("2026-06-30", "2026-01-01"))
	assert.False(t, validDateRange("not-a-date", "2026-01-01"))
	assert.False(t, validDateRange("2026-01-01", ""))
}
