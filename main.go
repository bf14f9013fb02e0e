package main

import (
	"net/http"
	"os"

	"restaurant-pos-api/config"
	"restaurant-pos-api/handlers"
	"restaurant-pos-api/pos"
	"restaurant-pos-api/routes"
	"restaurant-pos-api/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	config.Load()

	// Initialize the collection store
	db, err := config.OpenDB(config.DBPath())
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to database")
	}
	store, err := storage.NewGormStore(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to migrate database")
	}

	service := pos.NewService(store)
	if err := service.Seed(); err != nil {
		logrus.WithError(err).Fatal("Failed to seed default data")
	}
	handlers.Init(service)

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Restaurant POS API",
			"version": "1.0.0",
		})
	})

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "🍽️ Welcome to the Restaurant POS API",
			"docs":    "/api/state-machine",
			"health":  "/health",
		})
	})

	// Register all routes
	routes.SetupRoutes(r)

	// Start server
	port := config.Port()
	logrus.Infof("🚀 Server running on http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		logrus.WithError(err).Fatal("Failed to start server")
	}
}
