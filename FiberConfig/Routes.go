package FiberConfig

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/template/html"
	"gorm.io/gorm"

	"Crane/Controllers"
	"Crane/Models"
	"Crane/middleware"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Initialize handlers
	projectController := Controllers.NewProjectController(db)
	taskController := Controllers.NewTaskController(db)
	activityController := Controllers.NewActivityController(db)
	reportController := Controllers.NewReportController(db)
	subcontractorController := Controllers.NewSubcontractorController(db)

	// API group
	api := app.Group("/api")

	// Auth routes
	app.Post("/api/Register", middleware.Verify(4), Controllers.Register)
	app.Post("/api/Login", Controllers.Login)
	app.Use("/api/Logout", Controllers.Logout)
	app.Get("/api/User", middleware.Verify(1), Controllers.CurrentUser)

	// Project routes
	projects := api.Group("/projects", middleware.Verify(1))
	projects.Get("/", projectController.GetProjects)
	projects.Post("/", middleware.Verify(3), projectController.CreateProject)
	projects.Get("/:id", projectController.GetProject)
	projects.Put("/:id", middleware.Verify(3), projectController.UpdateProject)
	projects.Get("/:id/details", projectController.GetProjectDetails)
	projects.Get("/:id/weather", Controllers.GetProjectWeather)

	// Report routes under projects
	projects.Get("/:id/report", reportController.GetProjectReport)
	projects.Get("/:id/report/view", reportController.ViewProjectReport)
	projects.Get("/:id/report/export", reportController.ExportProjectReport)

	// Task routes
	tasks := api.Group("/tasks", middleware.Verify(1))
	tasks.Post("/", middleware.Verify(2), taskController.CreateTask)
	tasks.Get("/:id", taskController.GetTask)
	tasks.Put("/:id", middleware.Verify(2), taskController.UpdateTask)
	tasks.Post("/:id/assignments", middleware.Verify(2), activityController.AssignWorker)
	tasks.Post("/:id/materials", middleware.Verify(2), activityController.AddTaskMaterial)
	tasks.Post("/:id/progress", middleware.Verify(1), activityController.RecordProgress)

	// Worker routes
	workers := api.Group("/workers", middleware.Verify(1))
	workers.Get("/", Controllers.GetWorkers)
	workers.Post("/", middleware.Verify(2), Controllers.RegisterWorker)
	workers.Put("/:id", middleware.Verify(2), Controllers.UpdateWorker)

	// Material catalog routes
	materials := api.Group("/materials", middleware.Verify(1))
	materials.Get("/", Controllers.GetMaterials)
	materials.Post("/", middleware.Verify(2), Controllers.AddMaterial)
	materials.Put("/:id", middleware.Verify(2), Controllers.UpdateMaterial)

	// Equipment routes
	equipment := api.Group("/equipment", middleware.Verify(1))
	equipment.Get("/", Controllers.GetEquipment)
	equipment.Post("/", middleware.Verify(2), Controllers.AddEquipment)
	equipment.Put("/:id", middleware.Verify(2), Controllers.UpdateEquipment)
	equipment.Delete("/:id", middleware.Verify(3), Controllers.DeleteEquipment)

	// Safety incident routes
	safety := api.Group("/safety", middleware.Verify(1))
	safety.Get("/", Controllers.GetSafetyIncidents)
	safety.Post("/", Controllers.AddSafetyIncident)
	safety.Put("/:id", middleware.Verify(2), Controllers.UpdateSafetyIncident)
	safety.Delete("/:id", middleware.Verify(3), Controllers.DeleteSafetyIncident)

	// Subcontractor routes
	subcontractors := api.Group("/subcontractors", middleware.Verify(2))
	subcontractors.Get("/", subcontractorController.GetSubcontractors)
	subcontractors.Post("/", subcontractorController.CreateSubcontractor)
	subcontractors.Put("/:id", subcontractorController.UpdateSubcontractor)
	subcontractors.Delete("/:id", middleware.Verify(3), subcontractorController.DeleteSubcontractor)

	// Document routes
	documents := api.Group("/documents", middleware.Verify(1))
	documents.Get("/", Controllers.GetDocuments)
	documents.Post("/", middleware.Verify(2), Controllers.UploadDocument)
	documents.Get("/:id/download", Controllers.DownloadDocument)
	documents.Delete("/:id", middleware.Verify(3), Controllers.DeleteDocument)

	// Dashboard
	app.Get("/api/dashboard", middleware.Verify(1), Controllers.GetDashboard)

	// Logs API routes
	app.Get("/api/logs", middleware.Verify(4), Controllers.GetRequestLogs)
	app.Get("/api/logs/stats", middleware.Verify(4), Controllers.GetRequestLogStats)
}

func FiberConfig() {
	fmt.Println("Server Up...")
	engine := html.New("./Templates", ".html")
	// Html Template engine
	app := fiber.New(fiber.Config{
		Views:     engine,
		BodyLimit: 50 * 1024 * 1024, // document uploads
	})
	app.Use(middleware.RequestLogger())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestCompression, // 2
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		AllowCredentials: true,
		MaxAge:           300,
	}))

	SetupRoutes(app, Models.DB)

	// Serve uploaded documents and thumbnails
	app.Static("/uploads", Controllers.UploadDir(), fiber.Static{Compress: true, CacheDuration: time.Second * 10})
	app.Static("/static", "static/")

	app.Listen(":3001")
}
