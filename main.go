package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	_ "github.com/go-sql-driver/mysql"

	"Crane/CronJobs"
	"Crane/FiberConfig"
	"Crane/Models"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	Models.Connect()

	if path := os.Getenv("MATERIALS_XLSX"); path != "" {
		if err := Models.SetupMaterials(path); err != nil {
			log.Println("Material catalog import failed:", err)
		}
	}

	reconciler := CronJobs.NewCostReconciler(Models.DB, false)
	if err := reconciler.Start(); err != nil {
		log.Println("Failed to start cost reconciler:", err)
	}

	FiberConfig.FiberConfig()
}
