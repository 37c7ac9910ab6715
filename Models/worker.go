package Models

import (
	"gorm.io/gorm"
)

type Worker struct {
	gorm.Model
	Name           string  `json:"name" gorm:"not null"`
	ContactNumber  string  `json:"contact_number"`
	Email          string  `json:"email"`
	Specialization string  `json:"specialization"`
	DailyWage      float64 `json:"daily_wage" gorm:"not null"`

	Assignments []TaskAssignment `json:"assignments,omitempty" gorm:"foreignKey:WorkerID"`
}

// TaskAssignment records one worker working on one task for a number of
// hours on a given date. Labor cost is hours_worked * daily_wage / 8 with
// the wage read at aggregation time.
type TaskAssignment struct {
	gorm.Model
	TaskID         uint    `json:"task_id" gorm:"not null;index"`
	WorkerID       uint    `json:"worker_id" gorm:"not null;index"`
	AssignmentDate string  `json:"assignment_date" gorm:"not null"`
	HoursWorked    float64 `json:"hours_worked" gorm:"not null"`
	Notes          string  `json:"notes" gorm:"type:text"`
}

func (TaskAssignment) TableName() string {
	return "task_assignments"
}
