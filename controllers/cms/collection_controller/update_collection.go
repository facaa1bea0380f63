package collection_controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/config"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/models"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/services"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/utils"
)

// UpdateCollection godoc
// @Summary Update a collection
// @Tags Admin - Collections
// @Accept json
// @Produce json
// @Param id path string true "Collection ID (UUID)"
// @Param collection body models.UpdateCollectionRequest true "Fields to change"
// @Success 200 {object} models.ApiResponse{data=models.Collection}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "Slug already in use"
// @Router /admin/collections/{id} [patch]
func UpdateCollection(c *gin.Context) {
	var req models.UpdateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	collection, ok := findCollection(ctx, c, "admin.collection.update")
	if !ok {
		return
	}

	if req.Name != nil {
		collection.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		collection.Description = *req.Description
	}
	if req.Slug != nil {
		slug := utils.Slugify(*req.Slug)
		if slug == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid slug"))
			return
		}
		taken, err := slugTaken(ctx, slug, collection.ID)
		if err != nil {
			log.Error().Err(err).Str("op", "admin.collection.update").Msg("slug check failed")
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
			return
		}
		if taken {
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "A collection with this slug already exists"))
			return
		}
		collection.Slug = slug
	}
	oldPublicID := ""
	if req.Image != nil && req.Image.PublicID != collection.Image.PublicID {
		oldPublicID = collection.Image.PublicID
		collection.Image = *req.Image
	}

	if err := config.DB.WithContext(ctx).Save(&collection).Error; err != nil {
		log.Error().Err(err).Str("op", "admin.collection.update").Msg("failed to save collection")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update collection"))
		return
	}
	services.DeleteMediaInBackground(oldPublicID)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Collection updated successfully", collection))
}
