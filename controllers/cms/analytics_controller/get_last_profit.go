package analytics_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/cache"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/models"
)

// GetLastProfit godoc
// @Summary Last profit calculation
// @Description The most recent successful calculator result held by this process
// @Tags Admin - Analytics
// @Produce json
// @Success 200 {object} models.ApiResponse{data=analytics.ProfitResult}
// @Failure 404 {object} models.ApiResponse "Nothing calculated yet"
// @Router /admin/analytics/profit/last [get]
func GetLastProfit(c *gin.Context) {
	res, ok := cache.GetLastProfit()
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "No profit calculation yet"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Last profit calculation", res))
}
