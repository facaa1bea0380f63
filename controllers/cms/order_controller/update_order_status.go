package order_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/config"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/models"
)

// UpdateOrderStatus godoc
// @Summary Update order status
// @Description Set the status to one of Pending, Shipped, Delivered, Canceled. Last write wins.
// @Tags Admin - Orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID (UUID)"
// @Param payload body models.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} models.ApiResponse{data=models.Order}
// @Failure 400 {object} models.ApiResponse "Bad request"
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/orders/{id}/status [patch]
func UpdateOrderStatus(c *gin.Context) {
	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Debug().Err(err).Str("op", "admin.order.update").Msg("bind failed")
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Status must be one of Pending, Shipped, Delivered, Canceled"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	order, ok := findOrder(ctx, c, "admin.order.update")
	if !ok {
		return
	}

	previous := order.Status
	if err := config.DB.WithContext(ctx).Model(&order).Update("status", req.Status).Error; err != nil {
		log.Error().Err(err).Str("op", "admin.order.update").Msg("failed to update status")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update order status"))
		return
	}
	order.Status = req.Status

	log.Info().Str("op", "admin.order.update").Str("order", order.OrderNumber).
		Str("from", previous).Str("to", order.Status).Msg("order status updated")
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order status updated", order))
}
