package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/models"
)

// UpdateItem godoc
// @Summary Set an item's quantity
// @Description A quantity of zero or less removes the item.
// @Tags Storefront - Cart
// @Accept json
// @Produce json
// @Param productId path string true "Product ID"
// @Param body body models.UpdateCartItemRequest true "New quantity"
// @Success 200 {object} models.ApiResponse{data=cart.View}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /cart/items/{productId} [patch]
func UpdateItem(c *gin.Context) {
	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	cc, ok := loadCart(c, "store.cart.update")
	if !ok {
		return
	}
	if !cc.Update(c.Param("productId"), *req.Quantity) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Item not in cart"))
		return
	}

	saveCart(c, cc, "store.cart.update", "Cart updated")
}
