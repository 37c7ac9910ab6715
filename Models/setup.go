package Models

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect() {
	var err error
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
	} else {
		DB, err = gorm.Open(sqlite.Open("database.db"), &gorm.Config{})
	}
	if err != nil {
		log.Fatal("failed to connect database: ", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("migration failed: ", err)
	}

	seedAdmin(DB)
}

// Migrate runs AutoMigrate in dependency order.
func Migrate(db *gorm.DB) error {
	// 1. Base entities with no foreign keys
	if err := db.AutoMigrate(
		&User{},
		&Worker{},
		&Material{},
		&Subcontractor{},
	); err != nil {
		return err
	}

	// 2. Entities referencing users
	if err := db.AutoMigrate(
		&Project{},
		&Document{},
		&Equipment{},
		&SafetyIncident{},
	); err != nil {
		return err
	}

	// 3. Tasks (self-referential) and their child records
	return db.AutoMigrate(
		&Task{},
		&TaskAssignment{},
		&TaskMaterial{},
		&DailyProgress{},
	)
}

// seedAdmin creates the default admin account on a fresh database.
func seedAdmin(db *gorm.DB) {
	var count int64
	db.Model(&User{}).Count(&count)
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.Println("failed to hash default admin password:", err)
		return
	}
	admin := User{
		Username:     "admin",
		PasswordHash: hash,
		FullName:     "Admin User",
		Email:        "admin@example.com",
		Role:         "admin",
		Permission:   PermissionAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Println("failed to seed admin user:", err)
	}
}
