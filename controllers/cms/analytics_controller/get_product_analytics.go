package analytics_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/analytics"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/models"
)

// GetProductAnalytics godoc
// @Summary Product analytics table
// @Description Per-product ordered quantity, revenue and profit plus a summary, for a time window. Rebuilt on every request.
// @Tags Admin - Analytics
// @Produce json
// @Param window query string false "all | today | week | month" default(all)
// @Param sort query string false "price | cost_price | total_ordered | total_revenue | total_profit" default(total_revenue)
// @Param order query string false "asc | desc" default(desc)
// @Success 200 {object} models.ApiResponse{data=analytics.Report}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/analytics/products [get]
func GetProductAnalytics(c *gin.Context) {
	snap, ok := loadSnapshot(c, "admin.analytics-products")
	if !ok {
		return
	}

	report := analytics.BuildReport(
		snap,
		analytics.ParseWindow(c.Query("window")),
		analytics.ParseSortField(c.Query("sort")),
		analytics.ParseSortDesc(c.Query("order")),
		now(),
	)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product analytics retrieved successfully", report))
}
