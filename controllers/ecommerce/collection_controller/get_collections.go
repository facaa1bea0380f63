package collection_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/config"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/models"
)

// GetCollections godoc
// @Summary List collections
// @Tags Storefront - Collections
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.Collection}
// @Failure 500 {object} models.ApiResponse
// @Router /collections [get]
func GetCollections(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	collections := []models.Collection{}
	if err := config.DB.WithContext(ctx).Order("name ASC").Find(&collections).Error; err != nil {
		log.Error().Err(err).Str("op", "store.collection.list").Msg("query failed")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch collections"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Collections retrieved successfully", collections))
}

// GetCollectionBySlug godoc
// @Summary Get a collection with its products
// @Tags Storefront - Collections
// @Produce json
// @Param slug path string true "Collection slug"
// @Success 200 {object} models.ApiResponse{data=models.CollectionWithProducts}
// @Failure 404 {object} models.ApiResponse
// @Router /collections/{slug} [get]
func GetCollectionBySlug(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var collection models.Collection
	if err := config.DB.WithContext(ctx).Where("slug = ?", c.Param("slug")).First(&collection).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Collection not found"))
			return
		}
		log.Error().Err(err).Str("op", "store.collection.get").Msg("database error")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch collection"))
		return
	}

	var products []models.Product
	if err := config.DB.WithContext(ctx).Where("collection_id = ?", collection.ID).Order("created_at DESC").Find(&products).Error; err != nil {
		log.Error().Err(err).Str("op", "store.collection.get").Msg("products query failed")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch collection"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Collection retrieved successfully", models.CollectionWithProducts{
		Collection: collection,
		Products:   models.ToStorefrontProducts(products),
	}))
}
