package Models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Document struct {
	gorm.Model
	Name        string         `json:"document_name" gorm:"not null"`
	FilePath    string         `json:"file_path" gorm:"not null"` // stored name under the upload dir
	Description string         `json:"description" gorm:"type:text"`
	ProjectID   *uint          `json:"project_id" gorm:"index"`
	UploadedBy  uint           `json:"uploaded_by" gorm:"index"`
	Tags        datatypes.JSON `json:"tags,omitempty"`
	Thumbnail   string         `json:"thumbnail,omitempty"` // set for image uploads
}

func (Document) TableName() string {
	return "documents"
}
