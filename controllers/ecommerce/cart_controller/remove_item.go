package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/models"
)

// RemoveItem godoc
// @Summary Remove an item from the cart
// @Tags Storefront - Cart
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} models.ApiResponse{data=cart.View}
// @Failure 404 {object} models.ApiResponse
// @Router /cart/items/{productId} [delete]
func RemoveItem(c *gin.Context) {
	cc, ok := loadCart(c, "store.cart.remove")
	if !ok {
		return
	}
	if !cc.Remove(c.Param("productId")) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Item not in cart"))
		return
	}

	saveCart(c, cc, "store.cart.remove", "Item removed from cart")
}

// ClearCart godoc
// @Summary Empty the cart
// @Tags Storefront - Cart
// @Produce json
// @Success 200 {object} models.ApiResponse{data=cart.View}
// @Router /cart [delete]
func ClearCart(c *gin.Context) {
	cc, ok := loadCart(c, "store.cart.clear")
	if !ok {
		return
	}
	cc.Clear()
	saveCart(c, cc, "store.cart.clear", "Cart cleared")
}
