package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"plupool-server/config"
	"plupool-server/database"
	"plupool-server/jobs"
	"plupool-server/middleware"
	"plupool-server/repository"
	"plupool-server/routes"
	"plupool-server/services"
	ws "plupool-server/websocket"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Load configuration
	config.Load()

	// Initialize database
	if err := database.Initialize(); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}

	// Seed the reference catalog on first boot
	if err := SeedReferenceData(); err != nil {
		log.Printf("⚠️ Reference data seeding failed: %v", err)
	}

	// Set Gin mode
	if config.AppConfig.Server.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.RedirectTrailingSlash = false
	router.RedirectFixedPath = false

	// Security middleware stack
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(middleware.AuditLogMiddleware())
	middleware.StartRateLimiterCleanup()

	// CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "X-Request-ID")
	router.Use(cors.New(corsConfig))

	// Notification hub
	hub := ws.NewHub()
	go hub.Run()

	// API routes
	routes.RegisterRoutes(router, hub)

	// Maintenance reminder job
	notifier := services.NewNotificationService(repository.NewNotificationRepository(), hub)
	reminderJob := jobs.NewReminderJob(repository.NewBookingRepository(), notifier)
	if err := reminderJob.Start(); err != nil {
		log.Fatal("Failed to start reminder job:", err)
	}
	defer reminderJob.Stop()

	port := os.Getenv("PORT")
	if port == "" {
		port = config.AppConfig.Server.Port
	}

	log.Printf("Server starting on port %s", port)
	if err := router.Run("0.0.0.0:" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
