package Models

import (
	"gorm.io/gorm"
)

// Equipment statuses
const (
	EquipmentAvailable   = "available"
	EquipmentInUse       = "in_use"
	EquipmentMaintenance = "maintenance"
	EquipmentRetired     = "retired"
)

type Equipment struct {
	gorm.Model
	Name            string  `json:"equipment_name" gorm:"not null"`
	Type            string  `json:"equipment_type" gorm:"not null"`
	SerialNumber    string  `json:"serial_number"`
	PurchaseDate    string  `json:"purchase_date"`
	PurchaseCost    float64 `json:"purchase_cost"`
	AssignedProject *uint   `json:"assigned_project" gorm:"index"`
	Status          string  `json:"status" gorm:"type:varchar(20);default:'available'"`
	Notes           string  `json:"notes" gorm:"type:text"`
}

func (Equipment) TableName() string {
	return "equipment"
}
