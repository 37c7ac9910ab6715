package Models

import (
	"gorm.io/gorm"
)

// Task statuses
const (
	TaskNotStarted = "not_started"
	TaskInProgress = "in_progress"
	TaskCompleted  = "completed"
	TaskDelayed    = "delayed"
)

// Task is a node in a project's work breakdown. ParentTaskID is nil for main
// tasks; subtasks point at a task within the same project. ActualCost is the
// cached sum of material and labor costs, rewritten transactionally whenever
// an assignment or material usage is recorded.
type Task struct {
	gorm.Model
	ProjectID    uint   `json:"project_id" gorm:"not null;index"`
	Name         string `json:"task_name" gorm:"not null"`
	Description  string `json:"description" gorm:"type:text"`
	TaskType     string `json:"task_type" gorm:"type:varchar(20)"` // yearly, monthly, weekly, daily
	ParentTaskID *uint  `json:"parent_task_id" gorm:"index"`

	PlannedStartDate string `json:"planned_start_date" gorm:"not null"`
	PlannedEndDate   string `json:"planned_end_date" gorm:"not null"`
	ActualStartDate  string `json:"actual_start_date"`
	ActualEndDate    string `json:"actual_end_date"`

	EstimatedDays int     `json:"estimated_days"`
	EstimatedCost float64 `json:"estimated_cost"`
	ActualCost    float64 `json:"actual_cost"`
	Status        string  `json:"status" gorm:"type:varchar(20);default:'not_started'"`

	Subtasks    []Task           `json:"subtasks,omitempty" gorm:"foreignKey:ParentTaskID"`
	Assignments []TaskAssignment `json:"assignments,omitempty" gorm:"foreignKey:TaskID"`
	Materials   []TaskMaterial   `json:"materials,omitempty" gorm:"foreignKey:TaskID"`

	// Fresh aggregates for detail views, not stored
	SubtaskCount int64 `json:"subtask_count" gorm:"-"`
}

func (Task) TableName() string {
	return "tasks"
}
