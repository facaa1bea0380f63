package admin_auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/middleware"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/models"
)

// GetAdminSession godoc
// @Summary Current admin session
// @Description Report the admin session attached by the auth middleware
// @Tags Admin - Auth
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.AdminSessionResponse}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Router /admin/session [get]
func GetAdminSession(c *gin.Context) {
	claims, ok := middleware.GetAdminClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - no session"))
		return
	}

	resp := models.AdminSessionResponse{Authenticated: true, Subject: claims.Subject}
	if claims.ExpiresAt != nil {
		resp.ExpiresAt = claims.ExpiresAt.Time
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Session active", resp))
}
