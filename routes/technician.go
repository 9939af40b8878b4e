package routes

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"plupool-server/middleware"
	"plupool-server/models"
	"plupool-server/services"
)

// RegisterTechnicianRoutes registers the technician-facing routes
func RegisterTechnicianRoutes(router *gin.RouterGroup) {
	technician := router.Group("/technician")
	technician.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.RoleTechnician))
	{
		technician.GET("/bookings", getTechnicianBookings)
		technician.PATCH("/bookings/:id/status", updateBookingStatusByTechnician)

		technician.GET("/tasks", getTechnicianTasks)
		technician.GET("/tasks/upcoming", getUpcomingVisits)
		technician.GET("/tasks/:id", getTaskDetails)
		technician.PATCH("/tasks/:id/status", updateTaskStatus)
		technician.POST("/tasks/:id/complete", completeTask)
		technician.POST("/tasks/:id/readings", addWaterQualityReading)
	}
}

func getTechnicianBookings(c *gin.Context) {
	bookings, err := bookingService.ListForTechnician()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    bookings,
	})
}

func updateBookingStatusByTechnician(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req models.TechnicianBookingStatusUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"message": err.Error(),
		})
		return
	}

	booking, err := bookingService.UpdateByTechnician(id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking status updated",
		"data":    booking,
	})
}

func getTechnicianTasks(c *gin.Context) {
	userID := c.GetUint("user_id")

	query := parseTaskListQuery(c)
	tasks, err := taskService.List(userID, query)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    tasks,
	})
}

func parseTaskListQuery(c *gin.Context) services.TaskListQuery {
	query := services.TaskListQuery{
		ServiceTypes: c.QueryArray("service_type"),
		Locations:    c.QueryArray("location"),
		Search:       c.Query("search"),
		Page:         1,
		PageSize:     0,
	}
	for _, status := range c.QueryArray("status") {
		if status != "" {
			query.Statuses = append(query.Statuses, models.TechnicianTaskStatus(status))
		}
	}
	for _, priority := range c.QueryArray("priority") {
		if priority != "" {
			query.Priorities = append(query.Priorities, models.TaskPriority(priority))
		}
	}
	if date := c.Query("date"); date != "" {
		query.Date = &date
	}
	if from := c.Query("date_from"); from != "" {
		query.DateFrom = &from
	}
	if to := c.Query("date_to"); to != "" {
		query.DateTo = &to
	}
	if page, err := strconv.Atoi(c.Query("page")); err == nil && page > 0 {
		query.Page = page
	}
	if pageSize, err := strconv.Atoi(c.Query("page_size")); err == nil && pageSize > 0 {
		query.PageSize = pageSize
	}
	return query
}

func getUpcomingVisits(c *gin.Context) {
	userID := c.GetUint("user_id")

	feed, err := taskService.UpcomingFeed(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    feed,
	})
}

func getTaskDetails(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	userID := c.GetUint("user_id")

	details, err := taskService.Details(id, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    details,
	})
}

func updateTaskStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	userID := c.GetUint("user_id")

	var req models.TaskStatusUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"message": err.Error(),
		})
		return
	}

	task, err := taskService.UpdateStatus(id, userID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Task status updated",
		"data":    task,
	})
}

func completeTask(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	userID := c.GetUint("user_id")

	var req models.TaskCompletionUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"message": err.Error(),
		})
		return
	}

	task, err := taskService.Complete(id, userID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Task completed",
		"data":    task,
	})
}

func addWaterQualityReading(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	userID := c.GetUint("user_id")

	var req models.WaterQualityCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"message": err.Error(),
		})
		return
	}

	reading, err := taskService.AddReading(id, userID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Reading recorded",
		"data":    reading,
	})
}
