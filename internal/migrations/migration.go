package migrations

import (
	"log"

	"cashier_app/internal/models"
	"cashier_app/internal/repository"
	"cashier_app/internal/services"

	"gorm.io/gorm"
)

// RunMigrations runs all database migrations and creates default data
func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		return err
	}

	// Create default data
	if err := createDefaultData(db); err != nil {
		log.Printf("Warning: Failed to create default data: %v", err)
	}

	log.Println("Database migrations completed successfully!")
	return nil
}

// createDefaultData seeds the default admin account
func createDefaultData(db *gorm.DB) error {
	userRepo := repository.NewUserRepository(db)
	userService := services.NewUserService(userRepo)

	// Check if the admin already exists
	if _, err := userRepo.GetByUsername("admin"); err == nil {
		log.Println("Admin user already exists")
		return nil
	}

	log.Println("Creating default admin user...")
	_, err := userService.CreateUser("admin", "admin123", string(models.RoleAdmin))
	if err != nil {
		log.Printf("Warning: Failed to create admin user: %v", err)
	} else {
		log.Println("Admin user created successfully")
		log.Println("Username: admin")
		log.Println("Password: admin123")
	}

	return nil
}
