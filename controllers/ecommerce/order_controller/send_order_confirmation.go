package order_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/config"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/models"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/services"
)

// SendOrderConfirmationEmail godoc
// @Summary Send an order confirmation email
// @Tags Storefront - Orders
// @Accept json
// @Produce json
// @Param body body models.OrderConfirmationEmailRequest true "Order to confirm"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse
// @Router /emails/order-confirmation [post]
func SendOrderConfirmationEmail(c *gin.Context) {
	var req models.OrderConfirmationEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var order models.Order
	if err := config.DB.WithContext(ctx).First(&order, "id = ?", req.OrderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
			return
		}
		log.Error().Err(err).Str("op", "store.email.confirmation").Msg("database error")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch order"))
		return
	}

	err := services.SendOrderConfirmation(ctx, order, config.Load().Server.StorefrontURL)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Confirmation email sent", nil))
	case errors.Is(err, services.ErrEmailNotConfigured):
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Email delivery is not configured"))
	case errors.Is(err, services.ErrNoRecipient):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Order has no customer email"))
	default:
		log.Error().Err(err).Str("op", "store.email.confirmation").Str("order", order.OrderNumber).Msg("email failed")
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to send confirmation email"))
	}
}
