package analytics_controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/analytics"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/models"
)

// GetTopProducts godoc
// @Summary Get top performing products
// @Description Best selling products by revenue in the window, with sales count and revenue share
// @Tags Admin - Analytics
// @Produce json
// @Param window query string false "all | today | week | month" default(month)
// @Param limit query int false "How many products" default(6)
// @Success 200 {object} models.ApiResponse{data=[]analytics.TopProduct}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/analytics/top-products [get]
func GetTopProducts(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "6"))
	if err != nil || limit < 1 || limit > 50 {
		limit = 6
	}

	snap, ok := loadSnapshot(c, "admin.analytics-top-products")
	if !ok {
		return
	}

	t := now()
	window := analytics.ParseWindow(c.DefaultQuery("window", string(analytics.WindowMonth)))
	top := analytics.TopProducts(analytics.FilterOrders(snap.Orders, window, t), snap.Products, limit)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Top products retrieved successfully", top))
}
