package order_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/config"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/middleware"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/models"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/utils"
)

// GetUserOrders godoc
// @Summary My orders
// @Description Orders placed with the signed-in customer's email, newest first
// @Tags Storefront - Orders
// @Produce json
// @Security CookieAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} models.ApiResponse{data=[]models.OrderListRow}
// @Failure 401 {object} models.ApiResponse
// @Router /user/orders [get]
func GetUserOrders(c *gin.Context) {
	customer, ok := middleware.GetCustomerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authorization required"))
		return
	}
	page, limit, offset := utils.ParsePagination(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := config.DB.WithContext(ctx).Model(&models.Order{}).Where("customer_email = ?", customer.Email)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Error().Err(err).Str("op", "store.order.mine").Msg("count failed")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
		return
	}

	var orders []models.Order
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&orders).Error; err != nil {
		log.Error().Err(err).Str("op", "store.order.mine").Msg("query failed")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
		return
	}

	rows := make([]models.OrderListRow, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, o.ToListRow())
	}
	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Orders retrieved successfully", rows, models.NewPagination(page, limit, total)))
}
