package order_controller

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/config"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/models"
)

func findOrder(ctx context.Context, c *gin.Context, op string) (models.Order, bool) {
	var order models.Order
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order ID"))
		return order, false
	}

	if err := config.DB.WithContext(ctx).First(&order, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
		} else {
			log.Error().Err(err).Str("op", op).Msg("database error")
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		}
		return order, false
	}
	return order, true
}
