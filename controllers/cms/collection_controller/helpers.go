package collection_controller

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

func findCollection(ctx context.Context, c *gin.Context, op string) (models.Collection, bool) {
	var collection models.Collection
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid collection ID"))
		return collection, false
	}

	if err := config.DB.WithContext(ctx).First(&collection, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Collection not found"))
		} else {
			log.Error().Err(err).Str("op", op).Msg("database error")
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return collection, false
	}
	return collection, true
}

// slugTaken reports whether another collection already uses slug.
func slugTaken(ctx context.Context, slug string, except uuid.UUID) (bool, error) {
	var count int64
	q := config.DB.WithContext(ctx).Model(&models.Collection{}).Where("slug = ?", slug)
	if except != uuid.Nil {
		q = q.Where("id <> ?", except)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
