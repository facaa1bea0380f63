package order_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/config"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/models"
)

// GetOrderDetails godoc
// @Summary Get order details (admin)
// @Tags Admin - Orders
// @Produce json
// @Param id path string true "Order ID (UUID)"
// @Success 200 {object} models.ApiResponse{data=models.Order}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/orders/{id} [get]
func GetOrderDetails(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	order, ok := findOrder(ctx, c, "admin.order.get")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order retrieved successfully", order))
}
