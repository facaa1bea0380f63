package order_controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/config"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/models"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/utils"
)

// GetOrders godoc
// @Summary List orders (admin)
// @Description Paginated orders, newest first, optionally filtered by status or customer email.
// @Tags Admin - Orders
// @Produce json
// @Param status query string false "Pending | Shipped | Delivered | Canceled"
// @Param email query string false "Customer email"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} models.ApiResponse{data=[]models.OrderListRow}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/orders [get]
func GetOrders(c *gin.Context) {
	page, limit, offset := utils.ParsePagination(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := config.DB.WithContext(ctx).Model(&models.Order{})
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		if !models.IsValidOrderStatus(status) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid status filter"))
			return
		}
		query = query.Where("status = ?", status)
	}
	if email := strings.TrimSpace(c.Query("email")); email != "" {
		query = query.Where("LOWER(customer_email) = LOWER(?)", email)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Error().Err(err).Str("op", "admin.order.list").Msg("count failed")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
		return
	}

	var orders []models.Order
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&orders).Error; err != nil {
		log.Error().Err(err).Str("op", "admin.order.list").Msg("query failed")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
		return
	}

	rows := make([]models.OrderListRow, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, o.ToListRow())
	}
	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Orders retrieved successfully", rows, models.NewPagination(page, limit, total)))
}
