package Models

import (
	"gorm.io/gorm"
)

// Permission levels used by middleware.Verify. Higher levels include the
// lower ones.
const (
	PermissionWorker     = 1
	PermissionSupervisor = 2
	PermissionManager    = 3
	PermissionAdmin      = 4
)

type User struct {
	gorm.Model
	Username     string `json:"username" gorm:"not null;uniqueIndex"`
	PasswordHash []byte `json:"-" gorm:"not null"`
	FullName     string `json:"full_name" gorm:"not null"`
	Email        string `json:"email" gorm:"not null;uniqueIndex"`
	Role         string `json:"role" gorm:"type:varchar(20);not null;default:'worker'"`
	Permission   int    `json:"permission" gorm:"not null;default:1"`
}

// PermissionForRole maps the role names coming from the registration form to
// numeric permission levels.
func PermissionForRole(role string) int {
	switch role {
	case "admin":
		return PermissionAdmin
	case "manager":
		return PermissionManager
	case "supervisor":
		return PermissionSupervisor
	default:
		return PermissionWorker
	}
}
