package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"plupool-server/database"
	"plupool-server/middleware"
	"plupool-server/models"
)

// RegisterCatalogRoutes registers the public catalog routes
func RegisterCatalogRoutes(router *gin.RouterGroup) {
	catalog := router.Group("/catalog")
	{
		catalog.GET("/pool-types", getPoolTypes)
		catalog.GET("/services", getServices)
		catalog.GET("/packages", getPackages)
		catalog.GET("/offers", getOffers)
		catalog.GET("/products", getProducts)
		catalog.GET("/comments", getComments)
		catalog.POST("/comments", middleware.AuthMiddleware(), createComment)
	}
}

func getPoolTypes(c *gin.Context) {
	var poolTypes []models.PoolType
	if err := database.DB.Where("is_active = ?", true).Order("id ASC").Find(&poolTypes).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    poolTypes,
	})
}

func getServices(c *gin.Context) {
	query := database.DB.Where("status = ?", models.ServiceStatusActive)
	if serviceType := c.Query("type"); serviceType != "" {
		query = query.Where("service_type = ?", serviceType)
	}

	var services []models.Service
	if err := query.Order("id ASC").Find(&services).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    services,
	})
}

func getPackages(c *gin.Context) {
	var packages []models.MaintenancePackage
	if err := database.DB.Where("is_active = ?", true).Order("price ASC").Find(&packages).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    packages,
	})
}

func getOffers(c *gin.Context) {
	var offers []models.ServiceOffer
	err := database.DB.
		Where("status = ?", models.OfferStatusActive).
		Order("is_featured DESC, sort_order ASC").
		Find(&offers).Error
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    offers,
	})
}

func getProducts(c *gin.Context) {
	var products []models.Product
	err := database.DB.
		Where("status = ?", models.ProductStatusActive).
		Order("is_featured DESC, created_at DESC").
		Find(&products).Error
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    products,
	})
}

func getComments(c *gin.Context) {
	var comments []models.Comment
	err := database.DB.
		Where("is_approved = ?", true).
		Order("created_at DESC").
		Limit(20).
		Find(&comments).Error
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    comments,
	})
}

func createComment(c *gin.Context) {
	var req models.CommentCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"message": err.Error(),
		})
		return
	}

	// Submitted testimonials wait for admin approval before showing up
	comment := models.Comment{
		AuthorName: req.AuthorName,
		AvatarURL:  req.AvatarURL,
		Text:       req.Text,
		Rating:     req.Rating,
	}
	if err := database.DB.Create(&comment).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Comment submitted for review",
		"data":    comment,
	})
}
