package Models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Named per test so pooled connections share one database and tests
	// stay isolated from each other.
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func seedTask(t *testing.T, db *gorm.DB) Task {
	t.Helper()
	project := Project{
		Name:            "Riverside Warehouse",
		StartDate:       "2026-01-01",
		EndDate:         "2026-06-30",
		EstimatedBudget: 100000,
		Status:          ProjectInProgress,
	}
	require.NoError(t, db.Create(&project).Error)

	task := Task{
		ProjectID:        project.ID,
		Name:             "Foundation",
		PlannedStartDate: "2026-01-01",
		PlannedEndDate:   "2026-01-31",
		EstimatedCost:    5000,
		Status:           TaskInProgress,
	}
	require.NoError(t, db.Create(&task).Error)
	return task
}

func TestRecomputeTaskActualCost(t *testing.T) {
	db := openTestDB(t)
	task := seedTask(t, db)

	worker := Worker{Name: "Ahmed", Specialization: "mason", DailyWage: 160}
	require.NoError(t, db.Create(&worker).Error)

	require.NoError(t, db.Create(&TaskAssignment{
		TaskID: task.ID, WorkerID: worker.ID,
		AssignmentDate: "2026-01-05", HoursWorked: 8,
	}).Error)
	require.NoError(t, db.Create(&TaskMaterial{
		TaskID: task.ID, MaterialID: 1,
		Quantity: 10, TotalCost: 250, DateUsed: "2026-01-05",
	}).Error)

	require.NoError(t, RecomputeTaskActualCost(db, task.ID))

	var got Task
	require.NoError(t, db.First(&got, task.ID).Error)
	// 8h at a 160 daily wage is one full day of labor, plus the snapshot.
	assert.InDelta(t, 410.0, got.ActualCost, 1e-9)
}

func TestRecomputeTaskActualCostEmptyTask(t *testing.T) {
	db := openTestDB(t)
	task := seedTask(t, db)

	require.NoError(t, RecomputeTaskActualCost(db, task.ID))

	var got Task
	require.NoError(t, db.First(&got, task.ID).Error)
	assert.Zero(t, got.ActualCost)
}

func TestMaterialSnapshotSurvivesPriceEdit(t *testing.T) {
	db := openTestDB(t)
	task := seedTask(t, db)

	material := Material{Name: "Cement", Unit: "bag", UnitCost: 10}
	require.NoError(t, db.Create(&material).Error)

	usage := TaskMaterial{
		TaskID: task.ID, MaterialID: material.ID,
		Quantity: 10, TotalCost: 10 * material.UnitCost, DateUsed: "2026-01-10",
	}
	require.NoError(t, db.Create(&usage).Error)
	require.NoError(t, RecomputeTaskActualCost(db, task.ID))

	// Doubling the catalog price must not move recorded usage.
	require.NoError(t, db.Model(&material).Update("unit_cost", 20).Error)
	require.NoError(t, RecomputeTaskActualCost(db, task.ID))

	var got Task
	require.NoError(t, db.First(&got, task.ID).Error)
	assert.InDelta(t, 100.0, got.ActualCost, 1e-9)
}

func TestRecomputeExcludesDeletedWorker(t *testing.T) {
	db := openTestDB(t)
	task := seedTask(t, db)

	kept := Worker{Name: "Omar", Specialization: "carpenter", DailyWage: 160}
	removed := Worker{Name: "Nour", Specialization: "carpenter", DailyWage: 160}
	require.NoError(t, db.Create(&kept).Error)
	require.NoError(t, db.Create(&removed).Error)

	for _, workerID := range []uint{kept.ID, removed.ID} {
		require.NoError(t, db.Create(&TaskAssignment{
			TaskID: task.ID, WorkerID: workerID,
			AssignmentDate: "2026-01-05", HoursWorked: 8,
		}).Error)
	}

	require.NoError(t, db.Delete(&removed).Error)
	require.NoError(t, RecomputeTaskActualCost(db, task.ID))

	var got Task
	require.NoError(t, db.First(&got, task.ID).Error)
	assert.InDelta(t, 160.0, got.ActualCost, 1e-9)
}

func TestRecomputeReflectsWageEdit(t *testing.T) {
	db := openTestDB(t)
	task := seedTask(t, db)

	worker := Worker{Name: "Sara", Specialization: "electrician", DailyWage: 200}
	require.NoError(t, db.Create(&worker).Error)
	require.NoError(t, db.Create(&TaskAssignment{
		TaskID: task.ID, WorkerID: worker.ID,
		AssignmentDate: "2026-01-05", HoursWorked: 4,
	}).Error)

	require.NoError(t, RecomputeTaskActualCost(db, task.ID))
	var got Task
	require.NoError(t, db.First(&got, task.ID).Error)
	assert.InDelta(t, 100.0, got.ActualCost, 1e-9)

	// Labor reads the current wage, unlike material snapshots.
	require.NoError(t, db.Model(&worker).Update("daily_wage", 400).Error)
	require.NoError(t, RecomputeTaskActualCost(db, task.ID))
	require.NoError(t, db.First(&got, task.ID).Error)
	assert.InDelta(t, 200.0, got.ActualCost, 1e-9)
}
