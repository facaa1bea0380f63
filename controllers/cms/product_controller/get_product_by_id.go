package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/config"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/models"
)

// GetProductByID godoc
// @Summary Get a product (admin)
// @Tags Admin - Products
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Success 200 {object} models.ApiResponse{data=models.Product}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/products/{id} [get]
func GetProductByID(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	product, ok := findProduct(ctx, c, "admin.product.get")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product retrieved successfully", product))
}
