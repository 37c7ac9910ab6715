package Models

import (
	"gorm.io/gorm"
)

// RecomputeTaskActualCost rewrites a task's cached actual_cost as the sum of
// its material usage snapshots and its labor cost (hours * daily_wage / 8).
// Callers recording an assignment or usage must run this inside the same
// transaction as the insert so the cache can never drift from the child rows.
func RecomputeTaskActualCost(tx *gorm.DB, taskID uint) error {
	var materialCost float64
	if err := tx.Model(&TaskMaterial{}).
		Where("task_id = ?", taskID).
		Select("COALESCE(SUM(total_cost), 0)").
		Scan(&materialCost).Error; err != nil {
		return err
	}

	var laborCost float64
	if err := tx.Model(&TaskAssignment{}).
		Joins("JOIN workers ON workers.id = task_assignments.worker_id AND workers.deleted_at IS NULL").
		Where("task_assignments.task_id = ?", taskID).
		Select("COALESCE(SUM(task_assignments.hours_worked * (workers.daily_wage / 8.0)), 0)").
		Scan(&laborCost).Error; err != nil {
		return err
	}

	return tx.Model(&Task{}).Where("id = ?", taskID).
		Update("actual_cost", materialCost+laborCost).Error
}
