package collection_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/config"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/models"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/services"
)

// DeleteCollection godoc
// @Summary Delete a collection
// @Description Delete a collection. Its products stay and lose the collection reference.
// @Tags Admin - Collections
// @Produce json
// @Param id path string true "Collection ID (UUID)"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/collections/{id} [delete]
func DeleteCollection(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	collection, ok := findCollection(ctx, c, "admin.collection.delete")
	if !ok {
		return
	}

	err := config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Product{}).
			Where("collection_id = ?", collection.ID).
			Update("collection_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&collection).Error
	})
	if err != nil {
		log.Error().Err(err).Str("op", "admin.collection.delete").Msg("failed to delete collection")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete collection"))
		return
	}
	services.DeleteMediaInBackground(collection.Image.PublicID)

	log.Info().Str("op", "admin.collection.delete").Str("id", collection.ID.String()).Msg("collection deleted")
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Collection deleted successfully", map[string]string{
		"id": collection.ID.String(),
	}))
}
