package order_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/config"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/models"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/services"
)

// ResendOrderConfirmation godoc
// @Summary Resend order confirmation
// @Description Send the confirmation email with the invoice PDF again
// @Tags Admin - Orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse "Email provider failed"
// @Failure 503 {object} models.ApiResponse "Email not configured"
// @Router /admin/orders/{id}/resend-confirmation [post]
func ResendOrderConfirmation(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	order, ok := findOrder(ctx, c, "admin.order.resend")
	if !ok {
		return
	}

	err := services.SendOrderConfirmation(ctx, order, config.Load().Server.StorefrontURL)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Confirmation email sent", map[string]string{
			"order_number": order.OrderNumber,
			"to":           order.CustomerEmail,
		}))
	case errors.Is(err, services.ErrEmailNotConfigured):
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Email delivery is not configured"))
	case errors.Is(err, services.ErrNoRecipient):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Order has no customer email"))
	default:
		log.Error().Err(err).Str("op", "admin.order.resend").Str("order", order.OrderNumber).Msg("email failed")
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to send confirmation email"))
	}
}
