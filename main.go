package main

import (
	"context"
	"log"
	"os"
	"time"

	"dish-dash-backend/config"
	"dish-dash-backend/controllers"
	"dish-dash-backend/database"
	"dish-dash-backend/helpers"
	"dish-dash-backend/middleware"
	"dish-dash-backend/payment"
	"dish-dash-backend/repositories"
	"dish-dash-backend/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	client, err := database.Connect(cfg.MongoURI)
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("failed to disconnect from MongoDB: %v", err)
		}
	}()

	orderCollection := database.OpenCollection(client, cfg.DatabaseName, "orders")
	itemCollection := database.OpenCollection(client, cfg.DatabaseName, "items")
	userCollection := database.OpenCollection(client, cfg.DatabaseName, "users")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := repositories.EnsureItemIndexes(ctx, itemCollection); err != nil {
		log.Printf("failed to create item indexes: %v", err)
	}
	cancel()

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("failed to create upload directory: %v", err)
	}

	orderRepo := repositories.NewOrderRepository(orderCollection)
	itemRepo := repositories.NewItemRepository(itemCollection)
	userRepo := repositories.NewUserRepository(userCollection)

	provider := payment.NewStripeProvider(cfg.StripeSecretKey)
	tokens := helpers.NewTokenHelper(cfg.SecretKey)
	hub := controllers.NewNotificationHub()

	orderController := controllers.NewOrderController(orderRepo, provider, hub, cfg)
	itemController := controllers.NewItemController(itemRepo, cfg)
	userController := controllers.NewUserController(userRepo, tokens, cfg)

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"POST", "GET", "PATCH", "DELETE", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "token"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Uploaded item images are served straight from disk.
	router.Static("/uploads", cfg.UploadDir)

	authentication := middleware.Authentication(tokens)
	adminOnly := middleware.AdminOnly()

	routes.UserRoutes(router, userController, authentication, adminOnly)
	routes.ItemRoutes(router, itemController, authentication, adminOnly)
	routes.OrderRoutes(router, orderController, hub, authentication, adminOnly)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
