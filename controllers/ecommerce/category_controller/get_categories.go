package category_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/cache"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/config"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/models"
)

// GetCategories godoc
// @Summary Get storefront categories
// @Description Distinct category labels across all products, alphabetical
// @Tags Storefront - Categories
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]string}
// @Failure 500 {object} models.ApiResponse
// @Router /categories [get]
func GetCategories(c *gin.Context) {
	if names, ok := cache.GetCategories(); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", names))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	names := []string{}
	err := config.DB.WithContext(ctx).
		Model(&models.Product{}).
		Where("category <> ''").
		Distinct("category").
		Order("category ASC").
		Pluck("category", &names).Error
	if err != nil {
		log.Error().Err(err).Str("op", "store.category.list").Msg("query failed")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch categories"))
		return
	}

	cache.SetCategories(names)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", names))
}
