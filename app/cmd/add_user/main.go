package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/jupallivinaykumar/StudentManagementSystem/app/config"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/database"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/models"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/routes/auth"
)

// Seeds a user account directly, bypassing the approval queue. Meant
// for bootstrapping the first admin.
func main() {
	username := flag.String("username", "", "login username")
	email := flag.String("email", "", "email address")
	password := flag.String("password", "", "plaintext password, hashed before storage")
	firstName := flag.String("first-name", "", "first name")
	lastName := flag.String("last-name", "", "last name")
	role := flag.String("role", models.RoleAdmin, "admin, staff or student")
	flag.Parse()

	if *username == "" || *email == "" || *password == "" {
		log.Fatal("username, email and password are required")
	}
	if !models.ValidRole(*role) {
		log.Fatalf("invalid role %q", *role)
	}

	config.Init()
	db := config.GetDB()
	defer db.Close()

	hashed, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	user := &models.User{
		Username:  *username,
		Email:     *email,
		Password:  hashed,
		FirstName: *firstName,
		LastName:  *lastName,
		Role:      *role,
		IsActive:  true,
	}
	if err := database.CreateUser(db, user, nil, nil); err != nil {
		log.Fatal("Error creating user:", err)
	}

	fmt.Printf("User created: %s (%s, role %s)\n", user.Username, user.Email, user.Role)
}
