package collection_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/config"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/models"
)

// GetCollections godoc
// @Summary List collections (admin)
// @Tags Admin - Collections
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.Collection}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/collections [get]
func GetCollections(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	collections := []models.Collection{}
	if err := config.DB.WithContext(ctx).Order("name ASC").Find(&collections).Error; err != nil {
		log.Error().Err(err).Str("op", "admin.collection.list").Msg("query failed")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch collections"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Collections retrieved successfully", collections))
}

// GetCollectionByID godoc
// @Summary Get a collection (admin)
// @Tags Admin - Collections
// @Produce json
// @Param id path string true "Collection ID (UUID)"
// @Success 200 {object} models.ApiResponse{data=models.Collection}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/collections/{id} [get]
func GetCollectionByID(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	collection, ok := findCollection(ctx, c, "admin.collection.get")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Collection retrieved successfully", collection))
}
