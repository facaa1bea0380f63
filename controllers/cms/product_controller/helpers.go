package product_controller

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

// collectionExists checks an optional collection reference.
func collectionExists(ctx context.Context, id *uuid.UUID) (bool, error) {
	if id == nil {
		return true, nil
	}
	var count int64
	if err := config.DB.WithContext(ctx).Model(&models.Collection{}).Where("id = ?", *id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// findProduct loads a product by the :id param and writes the error
// response itself when it cannot.
func findProduct(ctx context.Context, c *gin.Context, op string) (models.Product, bool) {
	var product models.Product
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return product, false
	}

	if err := config.DB.WithContext(ctx).First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		} else {
			log.Error().Err(err).Str("op", op).Msg("database error")
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return product, false
	}
	return product, true
}
