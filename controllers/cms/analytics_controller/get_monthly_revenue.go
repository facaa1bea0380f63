package analytics_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/analytics"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/models"
)

// GetMonthlyRevenue godoc
// @Summary Get monthly revenue
// @Description Order revenue for the last 12 calendar months, oldest first, zero-filled
// @Tags Admin - Analytics
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]analytics.MonthlyRevenue}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/analytics/monthly-revenue [get]
func GetMonthlyRevenue(c *gin.Context) {
	snap, ok := loadSnapshot(c, "admin.analytics-monthly-revenue")
	if !ok {
		return
	}
	series := analytics.MonthlyRevenueSeries(snap.Orders, now())
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Monthly revenue retrieved successfully", series))
}
