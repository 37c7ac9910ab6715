package Models

import (
	"gorm.io/gorm"
)

type Subcontractor struct {
	gorm.Model
	CompanyName     string `json:"company_name" gorm:"not null"`
	ContactPerson   string `json:"contact_person" gorm:"not null"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Specialty       string `json:"specialty" gorm:"not null"`
	ContractDetails string `json:"contract_details" gorm:"type:text"`

	Projects []Project `json:"projects,omitempty" gorm:"many2many:subcontractor_projects"`
}

func (Subcontractor) TableName() string {
	return "subcontractors"
}
