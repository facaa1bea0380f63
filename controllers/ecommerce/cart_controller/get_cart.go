package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/models"
)

// GetCart godoc
// @Summary Get the current cart
// @Tags Storefront - Cart
// @Produce json
// @Success 200 {object} models.ApiResponse{data=cart.View}
// @Router /cart [get]
func GetCart(c *gin.Context) {
	cc, ok := loadCart(c, "store.cart.get")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart retrieved successfully", cc.View()))
}
