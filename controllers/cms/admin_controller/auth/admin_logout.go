package admin_auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/config"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/middleware"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/models"
)

// AdminLogout godoc
// @Summary Logout admin
// @Description Clear the admin_token cookie
// @Tags Admin - Auth
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /admin/logout [post]
func AdminLogout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AdminCookieName, "", -1, "/", "", config.Load().IsProduction(), true)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged out", nil))
}
