package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/cache"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/config"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/models"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/services"
)

// DeleteProduct godoc
// @Summary Delete a product
// @Description Delete a product and, in the background, its hosted image. Past orders keep their line-item snapshots.
// @Tags Admin - Products
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/products/{id} [delete]
func DeleteProduct(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	product, ok := findProduct(ctx, c, "admin.product.delete")
	if !ok {
		return
	}

	if err := config.DB.WithContext(ctx).Delete(&product).Error; err != nil {
		log.Error().Err(err).Str("op", "admin.product.delete").Msg("failed to delete product")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete product"))
		return
	}
	cache.InvalidateCategories()
	services.DeleteMediaInBackground(product.Image.PublicID)

	log.Info().Str("op", "admin.product.delete").Str("id", product.ID.String()).Msg("product deleted")
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product deleted successfully", map[string]string{
		"id": product.ID.String(),
	}))
}
