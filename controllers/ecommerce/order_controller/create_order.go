package order_controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/cart"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/config"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/middleware"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/models"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/services"
)

// CreateOrder godoc
// @Summary Checkout
// @Description Creates an order from the request items or, when none are given, from the session cart. Prices come from the catalog. The cart is cleared and a confirmation email is sent; email failure does not fail the order.
// @Tags Storefront - Orders
// @Accept json
// @Produce json
// @Param order body models.CreateOrderRequest true "Checkout details"
// @Success 201 {object} models.ApiResponse{data=models.CreateOrderResponse}
// @Failure 400 {object} models.ApiResponse "Empty cart, unknown product or invalid body"
// @Failure 500 {object} models.ApiResponse
// @Router /orders [post]
func CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	email := strings.TrimSpace(req.CustomerEmail)
	if customer, ok := middleware.GetCustomerFromContext(c); ok && email == "" {
		email = customer.Email
	}
	if email == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "customer_email is required"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	inputs := req.Items
	cartID := middleware.GetCartID(c)
	if len(inputs) == 0 && cartID != "" {
		loaded, err := cart.Default().Load(ctx, cartID)
		if err != nil {
			log.Error().Err(err).Str("op", "store.order.create").Msg("cart load failed")
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load cart"))
			return
		}
		inputs = services.CartItemsToInputs(loaded)
	}
	if len(inputs) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Cart is empty"))
		return
	}

	var products []models.Product
	if err := config.DB.WithContext(ctx).Where("id IN ?", services.ProductIDs(inputs)).Find(&products).Error; err != nil {
		log.Error().Err(err).Str("op", "store.order.create").Msg("product lookup failed")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create order"))
		return
	}

	items, total, err := services.PriceLineItems(inputs, products)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownProduct):
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "One or more products are no longer available"))
		default:
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		}
		return
	}

	order := models.Order{
		CustomerName:    strings.TrimSpace(req.CustomerName),
		CustomerEmail:   email,
		ShippingAddress: datatypes.NewJSONType(req.ShippingAddress),
		Items:           items,
		TotalAmount:     total,
		Status:          models.OrderStatusPending,
	}
	if err := config.DB.WithContext(ctx).Create(&order).Error; err != nil {
		log.Error().Err(err).Str("op", "store.order.create").Msg("insert failed")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create order"))
		return
	}

	// a placed order always empties the caller's cart, wherever the items came from
	if cartID != "" {
		if err := cart.Default().Delete(ctx, cartID); err != nil {
			log.Warn().Err(err).Str("op", "store.order.create").Str("order", order.OrderNumber).Msg("cart clear failed")
		}
	}

	emailSent := true
	if err := services.SendOrderConfirmation(ctx, order, config.Load().Server.StorefrontURL); err != nil {
		emailSent = false
		log.Warn().Err(err).Str("op", "store.order.create").Str("order", order.OrderNumber).Msg("confirmation email not sent")
	}

	log.Info().Str("op", "store.order.create").Str("order", order.OrderNumber).Float64("total", total).Msg("order placed")
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Order placed successfully", models.CreateOrderResponse{
		Order:     order,
		EmailSent: emailSent,
	}))
}
