package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/cart"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/middleware"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/models"
)

func loadCart(c *gin.Context, op string) (*cart.Cart, bool) {
	id := middleware.GetCartID(c)
	if id == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Missing cart session"))
		return nil, false
	}

	cc, err := cart.Default().Load(c.Request.Context(), id)
	if err != nil {
		log.Error().Err(err).Str("op", op).Str("cart_id", id).Msg("load failed")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load cart"))
		return nil, false
	}
	return cc, true
}

func saveCart(c *gin.Context, cc *cart.Cart, op, message string) {
	if err := cart.Default().Save(c.Request.Context(), cc); err != nil {
		log.Error().Err(err).Str("op", op).Str("cart_id", cc.ID).Msg("save failed")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save cart"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, message, cc.View()))
}
