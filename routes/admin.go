package routes

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"plupool-server/database"
	"plupool-server/middleware"
	"plupool-server/models"
)

// RegisterAdminRoutes registers the staff surface: catalog management,
// booking management and task dispatch.
func RegisterAdminRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware())

	staff := admin.Group("")
	staff.Use(middleware.RequireRoles(models.RoleAdmin, models.RoleCompany))
	{
		staff.GET("/bookings", getAllBookings)
		staff.PATCH("/bookings/:id", updateBookingByStaff)
		staff.POST("/tasks", assignTask)
		staff.GET("/stats", getAdminStats)
	}

	adminOnly := admin.Group("")
	adminOnly.Use(middleware.RequireRoles(models.RoleAdmin))
	{
		adminOnly.POST("/pool-types", createPoolType)
		adminOnly.PATCH("/pool-types/:id", updatePoolType)
		adminOnly.POST("/services", createService)
		adminOnly.PATCH("/services/:id", updateService)
		adminOnly.POST("/packages", createPackage)
		adminOnly.PATCH("/packages/:id", updatePackage)
		adminOnly.POST("/offers", createOffer)
		adminOnly.POST("/products", createProduct)
		adminOnly.POST("/comments/:id/approve", approveComment)
		adminOnly.DELETE("/bookings/:id", deleteBooking)
	}
}

func getAllBookings(c *gin.Context) {
	var bookings []models.BookingResponse
	var err error
	if status := c.Query("status"); status != "" {
		bookings, err = bookingService.ListByStatus(models.BookingStatus(status))
	} else {
		bookings, err = bookingService.ListAll()
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    bookings,
	})
}

func getAdminStats(c *gin.Context) {
	usersByRole := make(map[string]int64)
	for _, role := range []models.UserRole{models.RolePoolOwner, models.RoleTechnician, models.RoleCompany, models.RoleAdmin} {
		var count int64
		if err := database.DB.Model(&models.User{}).Where("role = ? AND is_active = ?", role, true).Count(&count).Error; err != nil {
			respondServiceError(c, err)
			return
		}
		usersByRole[string(role)] = count
	}

	bookingsByStatus := make(map[string]int64)
	for _, status := range []models.BookingStatus{
		models.BookingStatusPending, models.BookingStatusConfirmed, models.BookingStatusInProgress,
		models.BookingStatusCompleted, models.BookingStatusCancelled, models.BookingStatusRejected,
	} {
		var count int64
		if err := database.DB.Model(&models.Booking{}).Where("status = ?", status).Count(&count).Error; err != nil {
			respondServiceError(c, err)
			return
		}
		bookingsByStatus[string(status)] = count
	}

	var totalTasks, completedTasks int64
	if err := database.DB.Model(&models.TechnicianTask{}).Count(&totalTasks).Error; err != nil {
		respondServiceError(c, err)
		return
	}
	if err := database.DB.Model(&models.TechnicianTask{}).Where("status = ?", models.TaskStatusCompleted).Count(&completedTasks).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"users_by_role":      usersByRole,
			"bookings_by_status": bookingsByStatus,
			"tasks": gin.H{
				"total":     totalTasks,
				"completed": completedTasks,
			},
		},
	})
}

func deleteBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result := database.DB.Delete(&models.Booking{}, id)
	if result.Error != nil {
		respondServiceError(c, result.Error)
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}

	log.Printf("🚫 Booking %d deleted by admin %d", id, c.GetUint("user_id"))
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking deleted",
	})
}

func updateBookingByStaff(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req models.BookingUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"message": err.Error(),
		})
		return
	}

	booking, err := bookingService.UpdateByStaff(id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking updated",
		"data":    booking,
	})
}

func assignTask(c *gin.Context) {
	var req models.TechnicianTaskCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"message": err.Error(),
		})
		return
	}

	task, err := taskService.Assign(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Task assigned",
		"data":    task,
	})
}

func createPoolType(c *gin.Context) {
	var req models.PoolTypeCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "message": err.Error()})
		return
	}

	poolType := models.PoolType{
		NameAr:        req.NameAr,
		NameEn:        req.NameEn,
		DescriptionAr: req.DescriptionAr,
		DescriptionEn: req.DescriptionEn,
		ImageURL:      req.ImageURL,
		VideoURL:      req.VideoURL,
		LengthMeters:  req.LengthMeters,
		WidthMeters:   req.WidthMeters,
		DepthMeters:   req.DepthMeters,
		Features:      req.Features,
		SuitableFor:   req.SuitableFor,
		BasePrice:     req.BasePrice,
		IsActive:      true,
	}
	if err := database.DB.Create(&poolType).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	log.Printf("✅ Pool type created: %s (ID: %d)", poolType.NameAr, poolType.ID)
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": poolType})
}

func updatePoolType(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req models.PoolTypeUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "message": err.Error()})
		return
	}

	var poolType models.PoolType
	if err := database.DB.First(&poolType, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pool type not found"})
		return
	}

	if req.NameAr != nil {
		poolType.NameAr = *req.NameAr
	}
	if req.NameEn != nil {
		poolType.NameEn = req.NameEn
	}
	if req.DescriptionAr != nil {
		poolType.DescriptionAr = req.DescriptionAr
	}
	if req.DescriptionEn != nil {
		poolType.DescriptionEn = req.DescriptionEn
	}
	if req.ImageURL != nil {
		poolType.ImageURL = req.ImageURL
	}
	if req.VideoURL != nil {
		poolType.VideoURL = req.VideoURL
	}
	if req.LengthMeters != nil {
		poolType.LengthMeters = req.LengthMeters
	}
	if req.WidthMeters != nil {
		poolType.WidthMeters = req.WidthMeters
	}
	if req.DepthMeters != nil {
		poolType.DepthMeters = req.DepthMeters
	}
	if req.Features != nil {
		poolType.Features = req.Features
	}
	if req.SuitableFor != nil {
		poolType.SuitableFor = req.SuitableFor
	}
	if req.BasePrice != nil {
		poolType.BasePrice = req.BasePrice
	}
	if req.IsActive != nil {
		poolType.IsActive = *req.IsActive
	}

	if err := database.DB.Save(&poolType).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": poolType})
}

func createService(c *gin.Context) {
	var req models.ServiceCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "message": err.Error()})
		return
	}

	service := models.Service{
		NameAr:        req.NameAr,
		NameEn:        req.NameEn,
		DescriptionAr: req.DescriptionAr,
		DescriptionEn: req.DescriptionEn,
		ServiceType:   req.ServiceType,
		ImageURL:      req.ImageURL,
		Icon:          req.Icon,
		Price:         req.Price,
		Status:        models.ServiceStatusActive,
	}
	if err := database.DB.Create(&service).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	log.Printf("✅ Service created: %s (ID: %d)", service.NameAr, service.ID)
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": service})
}

func updateService(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req models.ServiceUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "message": err.Error()})
		return
	}

	var service models.Service
	if err := database.DB.First(&service, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return
	}

	if req.NameAr != nil {
		service.NameAr = *req.NameAr
	}
	if req.NameEn != nil {
		service.NameEn = req.NameEn
	}
	if req.DescriptionAr != nil {
		service.DescriptionAr = req.DescriptionAr
	}
	if req.DescriptionEn != nil {
		service.DescriptionEn = req.DescriptionEn
	}
	if req.ServiceType != nil {
		service.ServiceType = *req.ServiceType
	}
	if req.ImageURL != nil {
		service.ImageURL = req.ImageURL
	}
	if req.Icon != nil {
		service.Icon = req.Icon
	}
	if req.Price != nil {
		service.Price = req.Price
	}
	if req.Status != nil {
		service.Status = *req.Status
	}

	if err := database.DB.Save(&service).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": service})
}

func createPackage(c *gin.Context) {
	var req models.MaintenancePackageCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "message": err.Error()})
		return
	}

	pkg := models.MaintenancePackage{
		NameAr:           req.NameAr,
		NameEn:           req.NameEn,
		DescriptionAr:    req.DescriptionAr,
		DescriptionEn:    req.DescriptionEn,
		Duration:         req.Duration,
		IncludedServices: req.IncludedServices,
		Price:            req.Price,
		VisitsCount:      req.VisitsCount,
		IsActive:         true,
	}
	if req.ReminderDaysBefore != nil {
		pkg.ReminderDaysBefore = *req.ReminderDaysBefore
	} else {
		pkg.ReminderDaysBefore = 3
	}

	if err := database.DB.Create(&pkg).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	log.Printf("✅ Package created: %s (ID: %d)", pkg.NameAr, pkg.ID)
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": pkg})
}

func updatePackage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req models.MaintenancePackageUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "message": err.Error()})
		return
	}

	var pkg models.MaintenancePackage
	if err := database.DB.First(&pkg, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Package not found"})
		return
	}

	if req.NameAr != nil {
		pkg.NameAr = *req.NameAr
	}
	if req.NameEn != nil {
		pkg.NameEn = req.NameEn
	}
	if req.DescriptionAr != nil {
		pkg.DescriptionAr = req.DescriptionAr
	}
	if req.DescriptionEn != nil {
		pkg.DescriptionEn = req.DescriptionEn
	}
	if req.Duration != nil {
		pkg.Duration = *req.Duration
	}
	if req.IncludedServices != nil {
		pkg.IncludedServices = req.IncludedServices
	}
	if req.Price != nil {
		pkg.Price = *req.Price
	}
	if req.VisitsCount != nil {
		pkg.VisitsCount = req.VisitsCount
	}
	if req.ReminderDaysBefore != nil {
		pkg.ReminderDaysBefore = *req.ReminderDaysBefore
	}
	if req.IsActive != nil {
		pkg.IsActive = *req.IsActive
	}

	if err := database.DB.Save(&pkg).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": pkg})
}

func createOffer(c *gin.Context) {
	var req models.ServiceOfferCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "message": err.Error()})
		return
	}

	offer := models.ServiceOffer{
		TitleAr:       req.TitleAr,
		TitleEn:       req.TitleEn,
		DescriptionAr: req.DescriptionAr,
		ImageURL:      req.ImageURL,
		BadgeText:     req.BadgeText,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Status:        models.OfferStatusActive,
	}
	if req.IsFeatured != nil {
		offer.IsFeatured = *req.IsFeatured
	}
	if req.SortOrder != nil {
		offer.SortOrder = *req.SortOrder
	}

	if err := database.DB.Create(&offer).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": offer})
}

func createProduct(c *gin.Context) {
	var req models.ProductCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "message": err.Error()})
		return
	}

	product := models.Product{
		NameAr:        req.NameAr,
		NameEn:        req.NameEn,
		DescriptionAr: req.DescriptionAr,
		ImageURL:      req.ImageURL,
		Category:      req.Category,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Rating:        req.Rating,
		Status:        models.ProductStatusActive,
	}
	if req.IsFeatured != nil {
		product.IsFeatured = *req.IsFeatured
	}

	if err := database.DB.Create(&product).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": product})
}

func approveComment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var comment models.Comment
	if err := database.DB.First(&comment, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	comment.IsApproved = true
	if err := database.DB.Save(&comment).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": comment})
}
