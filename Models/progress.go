package Models

import (
	"gorm.io/gorm"
)

// DailyProgress keeps the full reporting history per task; the detail view
// shows entries newest first and an entry of 100 or more marks the task
// completed.
type DailyProgress struct {
	gorm.Model
	TaskID              uint    `json:"task_id" gorm:"not null;index"`
	ProgressDate        string  `json:"progress_date" gorm:"not null"`
	PercentageCompleted float64 `json:"percentage_completed" gorm:"not null"`
	Notes               string  `json:"notes" gorm:"type:text"`
	CreatedBy           uint    `json:"created_by" gorm:"index"`
}

func (DailyProgress) TableName() string {
	return "daily_progress"
}
