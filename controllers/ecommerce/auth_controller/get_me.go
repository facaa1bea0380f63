package auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/middleware"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/models"
)

// GetMe godoc
// @Summary Current customer
// @Tags Auth
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.Customer}
// @Failure 401 {object} models.ApiResponse
// @Router /auth/me [get]
func GetMe(c *gin.Context) {
	customer, ok := middleware.GetCustomerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not signed in"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Customer retrieved successfully", customer))
}
