package Models

import (
	"gorm.io/gorm"
)

// Project statuses
const (
	ProjectPlanned    = "planned"
	ProjectInProgress = "in_progress"
	ProjectOnHold     = "on_hold"
	ProjectCompleted  = "completed"
	ProjectCancelled  = "cancelled"
)

type Project struct {
	gorm.Model
	Name            string  `json:"project_name" gorm:"not null"`
	Description     string  `json:"description" gorm:"type:text"`
	StartDate       string  `json:"start_date" gorm:"not null"` // 2006-01-02
	EndDate         string  `json:"end_date" gorm:"not null"`   // 2006-01-02
	Location        string  `json:"location"`
	EstimatedBudget float64 `json:"estimated_budget"`
	Status          string  `json:"status" gorm:"type:varchar(20);default:'planned'"`
	CreatedBy       uint    `json:"created_by" gorm:"index"`

	Tasks []Task `json:"tasks,omitempty" gorm:"foreignKey:ProjectID"`
}

func (Project) TableName() string {
	return "projects"
}
