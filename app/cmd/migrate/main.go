package main

import (
	"log"

	"github.com/jupallivinaykumar/StudentManagementSystem/app/config"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/database"
)

// Applies the schema and exits. The server runs migrations on startup
// too; this exists for running them against a database without
// starting the server.
func main() {
	config.Init()
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}
	log.Println("Migrations applied")
}
