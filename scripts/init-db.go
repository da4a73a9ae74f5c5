package main

import (
	"fmt"
	"log"

	"super_crunch/internal/config"
	"super_crunch/internal/database"
	"super_crunch/internal/models"
	"super_crunch/internal/repository"
)

func main() {
	fmt.Println("Initializing database...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Force recreate all tables
	fmt.Println("Dropping existing tables...")
	err = db.Migrator().DropTable(
		&models.Dish{},
		&models.Order{},
		&models.OrderItem{},
		&models.RestaurantStatus{},
	)
	if err != nil {
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	// Create tables with proper schema
	fmt.Println("Creating tables...")
	err = db.AutoMigrate(
		&models.Dish{},
		&models.Order{},
		&models.OrderItem{},
		&models.RestaurantStatus{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Seed restaurant status (open by default)
	fmt.Println("Seeding restaurant status...")
	statusRepo := repository.NewStatusRepository(db)
	if err := statusRepo.Set(true); err != nil {
		log.Printf("Warning: Failed to seed restaurant status: %v", err)
	}

	// Seed starter menu
	fmt.Println("Seeding starter menu...")
	dishRepo := repository.NewDishRepository(db)
	dishes := []models.Dish{
		{Name: "Veg Momos", Price: 120, Description: "Steamed dumplings with spicy chutney", Category: "Snacks", IsVisible: true},
		{Name: "Peri Peri Fries", Price: 99, Description: "Crispy fries tossed in peri peri masala", Category: "Snacks", IsVisible: true},
		{Name: "Crunch Burger", Price: 149, Description: "Crispy patty, house sauce, toasted bun", Category: "Burgers", IsVisible: true},
		{Name: "Cheese Garlic Bread", Price: 129, Description: "Loaded with mozzarella and garlic butter", Category: "Snacks", IsVisible: true},
		{Name: "Cold Coffee", Price: 89, Description: "Thick blended cold coffee", Category: "Beverages", IsVisible: true},
	}
	for i := range dishes {
		if err := dishRepo.Create(&dishes[i]); err != nil {
			log.Printf("Warning: Failed to seed dish %s: %v", dishes[i].Name, err)
		}
	}

	fmt.Println("Database initialization completed successfully!")
}
