package Models

import (
	"gorm.io/gorm"
)

type Material struct {
	gorm.Model
	Name        string  `json:"material_name" gorm:"not null"`
	Unit        string  `json:"unit" gorm:"not null"`
	UnitCost    float64 `json:"unit_cost" gorm:"not null"`
	Description string  `json:"description" gorm:"type:text"`
}

func (Material) TableName() string {
	return "materials"
}

// TaskMaterial records material consumed by a task. TotalCost is snapshotted
// as quantity * unit_cost when the row is inserted and is never recomputed,
// so later price edits do not rewrite history.
type TaskMaterial struct {
	gorm.Model
	TaskID     uint    `json:"task_id" gorm:"not null;index"`
	MaterialID uint    `json:"material_id" gorm:"not null;index"`
	Quantity   float64 `json:"quantity" gorm:"not null"`
	TotalCost  float64 `json:"total_cost"`
	DateUsed   string  `json:"date_used" gorm:"not null"`
	Notes      string  `json:"notes" gorm:"type:text"`
}

func (TaskMaterial) TableName() string {
	return "task_materials"
}
