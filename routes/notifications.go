package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"plupool-server/middleware"
	"plupool-server/models"
	"plupool-server/websocket"
)

// RegisterNotificationRoutes registers the in-app feed and the push socket
func RegisterNotificationRoutes(router *gin.RouterGroup) {
	notifications := router.Group("/notifications")
	notifications.Use(middleware.AuthMiddleware())
	{
		notifications.GET("", getNotifications)
		notifications.POST("/:id/read", markNotificationRead)
		notifications.POST("/read-all", markAllNotificationsRead)
	}

	router.GET("/ws", middleware.WebSocketAuthMiddleware(), serveNotificationSocket)
}

func getNotifications(c *gin.Context) {
	userID := c.GetUint("user_id")

	feed, err := notificationService.Feed(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    feed,
	})
}

func markNotificationRead(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	userID := c.GetUint("user_id")

	if err := notificationService.MarkRead(id, userID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Notification marked as read",
	})
}

func markAllNotificationsRead(c *gin.Context) {
	userID := c.GetUint("user_id")

	if err := notificationService.MarkAllRead(userID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "All notifications marked as read",
	})
}

func serveNotificationSocket(c *gin.Context) {
	userID := c.GetUint("user_id")
	role := c.MustGet("user_role").(models.UserRole)

	websocket.ServeWebSocket(wsHub, c.Writer, c.Request, userID, string(role))
}
