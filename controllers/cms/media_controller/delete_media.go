package media_controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/config"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/models"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/services"
)

// DeleteMedia godoc
// @Summary Delete an image
// @Description Remove a hosted image by its public id
// @Tags Admin - Media
// @Produce json
// @Param public_id query string true "Public id returned by the upload"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse "Media host failed"
// @Failure 503 {object} models.ApiResponse "Media host not configured"
// @Router /admin/media [delete]
func DeleteMedia(c *gin.Context) {
	publicID := strings.TrimSpace(c.Query("public_id"))
	if publicID == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "public_id is required"))
		return
	}

	store, err := services.GetMediaStore()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Media storage is not configured"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := store.Delete(ctx, publicID); err != nil {
		log.Error().Err(err).Str("op", "admin.media.delete").Str("public_id", publicID).Msg("delete failed")
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to delete image"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Image deleted successfully", map[string]string{
		"public_id": publicID,
	}))
}
