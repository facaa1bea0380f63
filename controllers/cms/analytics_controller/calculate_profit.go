package analytics_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/analytics"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/cache"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/models"
)

// CalculateProfit godoc
// @Summary Run the profit calculator
// @Description Single-product mode accepts a cost price override; all-products mode uses stored cost prices. A rejected run keeps the last result.
// @Tags Admin - Analytics
// @Accept json
// @Produce json
// @Param payload body models.ProfitCalculationRequest true "Calculator input"
// @Success 200 {object} models.ApiResponse{data=analytics.ProfitResult}
// @Failure 400 {object} models.ApiResponse "Invalid cost price or product"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 500 {object} models.ApiResponse
// @Router /admin/analytics/profit [post]
func CalculateProfit(c *gin.Context) {
	var req models.ProfitCalculationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	in := analytics.ProfitInput{
		Mode:         analytics.ProfitMode(req.Mode),
		ProductID:    req.ProductID,
		CostOverride: req.CostPrice,
		Window:       analytics.ParseWindow(req.Window),
	}
	if in.Mode == "" {
		in.Mode = analytics.ProfitModeAll
		if req.ProductID != "" {
			in.Mode = analytics.ProfitModeSingle
		}
	}

	// reject malformed input before touching the store
	if in.Mode == analytics.ProfitModeSingle && req.CostPrice != "" {
		if _, err := analytics.ParseCostOverride(req.CostPrice); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Please enter a valid cost price"))
			return
		}
	}

	snap, ok := loadSnapshot(c, "admin.analytics-profit")
	if !ok {
		return
	}

	res, err := analytics.CalculateProfit(snap, in, now())
	switch {
	case errors.Is(err, analytics.ErrInvalidCostPrice):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Please enter a valid cost price"))
		return
	case errors.Is(err, analytics.ErrProductRequired):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "product_id is required in single mode"))
		return
	case errors.Is(err, analytics.ErrProductNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	case err != nil:
		log.Error().Err(err).Str("op", "admin.analytics-profit").Msg("calculation failed")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to calculate profit"))
		return
	}

	cache.SetLastProfit(res)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Profit calculated successfully", res))
}
