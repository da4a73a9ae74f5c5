package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"super_crunch/internal/availability"
	"super_crunch/internal/config"
	"super_crunch/internal/database"
	"super_crunch/internal/handlers"
	"super_crunch/internal/redis"
	"super_crunch/internal/repository"
	"super_crunch/internal/services"
	"super_crunch/pkg/whatsapp"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(
		cfg.RedisURL,
		time.Duration(cfg.CartTTL)*time.Second,
		time.Duration(cfg.CatalogCacheTTL)*time.Second,
	)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer redisClient.Close()

	// Initialize WhatsApp client for order notifications (optional)
	var whatsappClient *whatsapp.Client
	if cfg.WhatsAppAPIURL != "" {
		whatsappClient = whatsapp.NewClient(cfg.WhatsAppAPIURL, cfg.WhatsAppUsername, cfg.WhatsAppPassword, cfg.WhatsAppPath)
	} else {
		log.Println("WHATSAPP_API_URL not set, order notifications will be logged only")
	}

	// Initialize repositories
	orderRepo := repository.NewOrderRepository(db)
	dishRepo := repository.NewDishRepository(db)
	statusRepo := repository.NewStatusRepository(db)

	// Availability gate polls the status row for the lifetime of the server
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gate := availability.NewGate(func(context.Context) (bool, error) {
		return statusRepo.Get()
	}, time.Duration(cfg.StatusPollSecs)*time.Second)
	go gate.Run(ctx)

	// Initialize services
	notificationService := services.NewNotificationService(whatsappClient, cfg.OrderNotifyPhone)
	orderService := services.NewOrderService(orderRepo, gate, notificationService, services.AcceptAllPolicy{})
	catalogService := services.NewCatalogService(dishRepo, redisClient)
	availabilityService := services.NewAvailabilityService(statusRepo)

	// Initialize handlers
	apiHandler := handlers.NewAPIHandler(orderService, catalogService, availabilityService, gate, redisClient)

	// Setup routes
	router := gin.Default()

	api := router.Group("/api")
	{
		api.GET("/availability", apiHandler.GetAvailability)
		api.GET("/catalog", apiHandler.GetCatalog)
		api.POST("/orders", apiHandler.CreateOrder)

		api.GET("/cart", apiHandler.GetCart)
		api.POST("/cart/items", apiHandler.AddCartItem)
		api.DELETE("/cart/items", apiHandler.RemoveCartItem)
		api.DELETE("/cart", apiHandler.ClearCart)
		api.POST("/cart/checkout", apiHandler.CheckoutCart)
	}

	staff := router.Group("/api", handlers.StaffAuth(cfg.StaffTokenHash))
	{
		staff.PUT("/availability", apiHandler.UpdateAvailability)
		staff.GET("/catalog/all", apiHandler.ListAllDishes)
		staff.POST("/catalog", apiHandler.CreateDish)
		staff.PUT("/catalog/:id", apiHandler.UpdateDish)
		staff.DELETE("/catalog/:id", apiHandler.DeleteDish)
		staff.GET("/orders", apiHandler.ListOrders)
		staff.PUT("/orders", apiHandler.UpdateOrderStatus)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
