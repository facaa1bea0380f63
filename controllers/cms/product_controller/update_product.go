package product_controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/cache"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/config"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/models"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/services"
)

// UpdateProduct godoc
// @Summary Update a product
// @Description Partial update. Replacing the image with a new public id deletes the previous one from the media host in the background. "collection_id": null removes the product from its collection.
// @Tags Admin - Products
// @Accept json
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Param product body models.UpdateProductRequest true "Fields to change"
// @Success 200 {object} models.ApiResponse{data=models.Product}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/products/{id} [patch]
func UpdateProduct(c *gin.Context) {
	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	product, ok := findProduct(ctx, c, "admin.product.update")
	if !ok {
		return
	}

	if ok, err := collectionExists(ctx, req.CollectionID.ID); err != nil {
		log.Error().Err(err).Str("op", "admin.product.update").Msg("collection lookup failed")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	} else if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Collection not found"))
		return
	}

	oldPublicID := ""
	if req.Name != nil {
		product.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.CostPrice != nil {
		product.CostPrice = *req.CostPrice
	}
	if req.Category != nil {
		product.Category = strings.TrimSpace(*req.Category)
	}
	if req.CollectionID.Set {
		product.CollectionID = req.CollectionID.ID
	}
	if req.Image != nil && *req.Image != product.Image {
		if req.Image.PublicID != product.Image.PublicID {
			oldPublicID = product.Image.PublicID
		}
		product.Image = *req.Image
	}

	if err := config.DB.WithContext(ctx).Save(&product).Error; err != nil {
		log.Error().Err(err).Str("op", "admin.product.update").Msg("failed to save product")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update product"))
		return
	}
	cache.InvalidateCategories()
	services.DeleteMediaInBackground(oldPublicID)

	log.Info().Str("op", "admin.product.update").Str("id", product.ID.String()).Msg("product updated")
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product updated successfully", product))
}
