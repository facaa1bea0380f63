package product_controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/cache"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/config"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/models"
)

// CreateProduct godoc
// @Summary Create a product
// @Description Create a product. The image is uploaded beforehand through POST /admin/media.
// @Tags Admin - Products
// @Accept json
// @Produce json
// @Param product body models.ProductRequest true "Product details"
// @Success 201 {object} models.ApiResponse{data=models.Product}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/products [post]
func CreateProduct(c *gin.Context) {
	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if ok, err := collectionExists(ctx, req.CollectionID); err != nil {
		log.Error().Err(err).Str("op", "admin.product.create").Msg("collection lookup failed")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	} else if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Collection not found"))
		return
	}

	product := models.Product{
		Name:         strings.TrimSpace(req.Name),
		Description:  req.Description,
		Price:        req.Price,
		Category:     strings.TrimSpace(req.Category),
		CollectionID: req.CollectionID,
		Image:        req.Image,
	}
	if req.CostPrice != nil {
		product.CostPrice = *req.CostPrice
	}

	if err := config.DB.WithContext(ctx).Create(&product).Error; err != nil {
		log.Error().Err(err).Str("op", "admin.product.create").Msg("failed to create product")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create product"))
		return
	}
	cache.InvalidateCategories()

	log.Info().Str("op", "admin.product.create").Str("id", product.ID.String()).Str("name", product.Name).Msg("product created")
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Product created successfully", product))
}
