package routes

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"plupool-server/middleware"
	"plupool-server/models"
)

// RegisterBookingRoutes registers the pool-owner booking routes
func RegisterBookingRoutes(router *gin.RouterGroup) {
	bookings := router.Group("/bookings")
	bookings.Use(middleware.AuthMiddleware())
	{
		bookings.POST("", createBooking)
		bookings.GET("", getMyBookings)
		bookings.GET("/reminders", getUpcomingReminders)
		bookings.GET("/:id", getBooking)
		bookings.GET("/:id/renewal", getRenewalInfo)
		bookings.POST("/:id/renew", renewBooking)
	}
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid id",
			"message": "The id parameter must be a positive integer",
		})
		return 0, false
	}
	return uint(id), true
}

func createBooking(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req models.BookingCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"message": err.Error(),
		})
		return
	}

	booking, err := bookingService.Create(userID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Booking created successfully",
		"data":    booking,
	})
}

func getMyBookings(c *gin.Context) {
	userID := c.GetUint("user_id")

	bookings, err := bookingService.ListForUser(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    bookings,
	})
}

func getBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	userID := c.GetUint("user_id")
	role := c.MustGet("user_role").(models.UserRole)

	booking, err := bookingService.Get(id, userID, role)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    booking,
	})
}

func getUpcomingReminders(c *gin.Context) {
	userID := c.GetUint("user_id")

	reminders, err := bookingService.UpcomingReminders(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    reminders,
	})
}

func getRenewalInfo(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	userID := c.GetUint("user_id")

	info, err := renewalService.Info(id, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    info,
	})
}

func renewBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	userID := c.GetUint("user_id")

	var req models.RenewalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"message": err.Error(),
		})
		return
	}

	booking, err := renewalService.Renew(id, userID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Package renewed successfully",
		"data":    booking,
	})
}
