package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"plupool-server/repository"
	"plupool-server/services"
	"plupool-server/websocket"
)

var (
	authService         *services.AuthService
	bookingService      *services.BookingService
	renewalService      *services.RenewalService
	taskService         *services.TaskService
	dashboardService    *services.DashboardService
	notificationService *services.NotificationService

	wsHub *websocket.Hub
)

// RegisterRoutes wires the services and registers all API routes
func RegisterRoutes(router *gin.Engine, hub *websocket.Hub) {
	wsHub = hub

	bookingRepo := repository.NewBookingRepository()
	referenceRepo := repository.NewReferenceRepository()
	taskRepo := repository.NewTaskRepository()
	userRepo := repository.NewUserRepository()
	notificationRepo := repository.NewNotificationRepository()
	homeRepo := repository.NewHomeRepository()

	notificationService = services.NewNotificationService(notificationRepo, hub)
	authService = services.NewAuthService(userRepo)
	bookingService = services.NewBookingService(bookingRepo, referenceRepo, notificationService)
	renewalService = services.NewRenewalService(bookingRepo, referenceRepo, notificationService)
	taskService = services.NewTaskService(taskRepo, homeRepo, notificationService)
	dashboardService = services.NewDashboardService(bookingRepo, taskRepo, userRepo, notificationRepo, homeRepo)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiV1 := router.Group("/api/v1")
	{
		RegisterAuthRoutes(apiV1)
		RegisterCatalogRoutes(apiV1)
		RegisterBookingRoutes(apiV1)
		RegisterTechnicianRoutes(apiV1)
		RegisterDashboardRoutes(apiV1)
		RegisterNotificationRoutes(apiV1)
		RegisterAdminRoutes(apiV1)
	}
}
