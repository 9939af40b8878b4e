package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"plupool-server/middleware"
	"plupool-server/models"
)

// RegisterDashboardRoutes registers the role-specific home screens
func RegisterDashboardRoutes(router *gin.RouterGroup) {
	dashboard := router.Group("/dashboard")
	dashboard.Use(middleware.AuthMiddleware())
	{
		dashboard.GET("/owner", middleware.RequireRoles(models.RolePoolOwner, models.RoleAdmin), getOwnerDashboard)
		dashboard.GET("/company", middleware.RequireRoles(models.RoleCompany, models.RoleAdmin), getCompanyDashboard)
		dashboard.GET("/technician", middleware.RequireRoles(models.RoleTechnician), getTechnicianDashboard)
	}
}

func getOwnerDashboard(c *gin.Context) {
	userID := c.GetUint("user_id")

	dashboard, err := dashboardService.Owner(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    dashboard,
	})
}

func getCompanyDashboard(c *gin.Context) {
	userID := c.GetUint("user_id")

	dashboard, err := dashboardService.Company(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    dashboard,
	})
}

func getTechnicianDashboard(c *gin.Context) {
	userID := c.GetUint("user_id")

	dashboard, err := dashboardService.Technician(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    dashboard,
	})
}
