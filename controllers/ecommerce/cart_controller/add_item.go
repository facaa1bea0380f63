package cart_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/cart"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/config"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/models"
)

// AddItem godoc
// @Summary Add a product to the cart
// @Description Adds the product or increases its quantity. Name, price and image are snapshotted from the catalog.
// @Tags Storefront - Cart
// @Accept json
// @Produce json
// @Param item body models.AddCartItemRequest true "Product and quantity"
// @Success 200 {object} models.ApiResponse{data=cart.View}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /cart/items [post]
func AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var product models.Product
	if err := config.DB.WithContext(ctx).First(&product, "id = ?", req.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		log.Error().Err(err).Str("op", "store.cart.add").Msg("product lookup failed")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to add item"))
		return
	}

	cc, ok := loadCart(c, "store.cart.add")
	if !ok {
		return
	}
	if err := cc.Add(cart.Item{
		ProductID: product.ID.String(),
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  req.Quantity,
		ImageURL:  product.Image.URL,
	}); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	saveCart(c, cc, "store.cart.add", "Item added to cart")
}
