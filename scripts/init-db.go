package main

import (
	"fmt"
	"log"

	"cashier_app/internal/config"
	"cashier_app/internal/database"
	"cashier_app/internal/models"
	"cashier_app/internal/repository"
	"cashier_app/internal/services"

	"github.com/shopspring/decimal"
)

func main() {
	fmt.Println("Initializing database...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Force recreate all tables
	fmt.Println("Dropping existing tables...")
	err = db.Migrator().DropTable(
		&models.OrderItem{},
		&models.Order{},
		&models.Product{},
		&models.Customer{},
		&models.User{},
	)
	if err != nil {
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	// Create tables with proper schema
	fmt.Println("Creating tables...")
	err = db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Create default admin user
	fmt.Println("Creating default admin user...")
	userRepo := repository.NewUserRepository(db)
	userService := services.NewUserService(userRepo)

	if _, err := userRepo.GetByUsername("admin"); err == nil {
		fmt.Println("Admin user already exists")
	} else {
		_, err = userService.CreateUser("admin", "admin123", string(models.RoleAdmin))
		if err != nil {
			log.Printf("Warning: Failed to create admin user: %v", err)
		} else {
			fmt.Println("Admin user created successfully")
			fmt.Println("Username: admin")
			fmt.Println("Password: admin123")
		}
	}

	// Create sample catalog
	fmt.Println("Creating sample products...")
	productRepo := repository.NewProductRepository(db)
	samples := []models.Product{
		{Name: "Kopi Susu", Price: decimal.NewFromFloat(18000), Stock: 100},
		{Name: "Teh Manis", Price: decimal.NewFromFloat(8000), Stock: 150},
		{Name: "Nasi Goreng", Price: decimal.NewFromFloat(25000), Stock: 40},
	}
	for i := range samples {
		if err := productRepo.Create(&samples[i]); err != nil {
			log.Printf("Warning: Failed to create product %q: %v", samples[i].Name, err)
		}
	}

	fmt.Println("Database initialization completed successfully!")
}
