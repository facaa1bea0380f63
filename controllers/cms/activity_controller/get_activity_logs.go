package activity_controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/config"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/models"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/utils"
)

// GetActivityLogs godoc
// @Summary Admin activity log
// @Description Mutating admin requests, newest first
// @Tags Admin - Activity
// @Produce json
// @Param resource_type query string false "product | collection | order | media | analytics"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} models.ApiResponse{data=[]models.ActivityLog}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/activity [get]
func GetActivityLogs(c *gin.Context) {
	page, limit, offset := utils.ParsePagination(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := config.DB.WithContext(ctx).Model(&models.ActivityLog{})
	if rt := strings.TrimSpace(c.Query("resource_type")); rt != "" {
		query = query.Where("resource_type = ?", rt)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Error().Err(err).Str("op", "admin.activity").Msg("count failed")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch activity"))
		return
	}

	logs := []models.ActivityLog{}
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&logs).Error; err != nil {
		log.Error().Err(err).Str("op", "admin.activity").Msg("query failed")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch activity"))
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Activity retrieved successfully", logs, models.NewPagination(page, limit, total)))
}
