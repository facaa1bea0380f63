package product_controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/config"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/models"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/utils"
)

// GetStorefrontProducts godoc
// @Summary List products
// @Description Public product listing, filterable by category and collection (id or slug)
// @Tags Storefront - Products
// @Produce json
// @Param category query string false "Category label"
// @Param collection query string false "Collection id or slug"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} models.ApiResponse{data=[]models.StorefrontProduct}
// @Failure 500 {object} models.ApiResponse
// @Router /products [get]
func GetStorefrontProducts(c *gin.Context) {
	page, limit, offset := utils.ParsePagination(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := config.DB.WithContext(ctx).Model(&models.Product{})
	if category := strings.TrimSpace(c.Query("category")); category != "" {
		query = query.Where("category = ?", category)
	}
	if ref := strings.TrimSpace(c.Query("collection")); ref != "" {
		collectionID, err := resolveCollection(ctx, ref)
		if errors.Is(err, errCollectionNotFound) {
			c.JSON(http.StatusOK, models.PaginatedResponse(c, "Products retrieved successfully", []models.StorefrontProduct{}, models.NewPagination(page, limit, 0)))
			return
		}
		if err != nil {
			log.Error().Err(err).Str("op", "store.product.list").Msg("collection lookup failed")
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
			return
		}
		query = query.Where("collection_id = ?", collectionID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Error().Err(err).Str("op", "store.product.list").Msg("count failed")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	var products []models.Product
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&products).Error; err != nil {
		log.Error().Err(err).Str("op", "store.product.list").Msg("query failed")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Products retrieved successfully", models.ToStorefrontProducts(products), models.NewPagination(page, limit, total)))
}
