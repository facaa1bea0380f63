package collection_controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/config"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/models"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/utils"
)

// CreateCollection godoc
// @Summary Create a collection
// @Description Create a product collection. The slug defaults to the slugified name.
// @Tags Admin - Collections
// @Accept json
// @Produce json
// @Param collection body models.CollectionRequest true "Collection details"
// @Success 201 {object} models.ApiResponse{data=models.Collection}
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "Slug already in use"
// @Router /admin/collections [post]
func CreateCollection(c *gin.Context) {
	var req models.CollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	slug := utils.Slugify(req.Slug)
	if slug == "" {
		slug = utils.Slugify(req.Name)
	}
	if slug == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Collection name must contain letters or digits"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	taken, err := slugTaken(ctx, slug, uuid.Nil)
	if err != nil {
		log.Error().Err(err).Str("op", "admin.collection.create").Msg("slug check failed")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}
	if taken {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "A collection with this slug already exists"))
		return
	}

	collection := models.Collection{
		Name:        strings.TrimSpace(req.Name),
		Slug:        slug,
		Description: req.Description,
		Image:       req.Image,
	}
	if err := config.DB.WithContext(ctx).Create(&collection).Error; err != nil {
		log.Error().Err(err).Str("op", "admin.collection.create").Msg("failed to create collection")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create collection"))
		return
	}

	log.Info().Str("op", "admin.collection.create").Str("slug", collection.Slug).Msg("collection created")
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Collection created successfully", collection))
}
