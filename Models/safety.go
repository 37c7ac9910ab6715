package Models

import (
	"gorm.io/gorm"
)

// Incident severities
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

type SafetyIncident struct {
	gorm.Model
	IncidentType string `json:"incident_type" gorm:"not null"`
	IncidentDate string `json:"incident_date" gorm:"not null"`
	ProjectID    *uint  `json:"project_id" gorm:"index"`
	Location     string `json:"location" gorm:"not null"`
	Description  string `json:"description" gorm:"type:text;not null"`
	Severity     string `json:"severity" gorm:"type:varchar(20);not null"`
	ActionTaken  string `json:"action_taken" gorm:"type:text"`
	ReportedBy   uint   `json:"reported_by" gorm:"index"`
}

func (SafetyIncident) TableName() string {
	return "safety_incidents"
}
