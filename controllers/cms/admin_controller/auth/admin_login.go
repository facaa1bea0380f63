package admin_auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/config"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/middleware"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/models"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/services"
)

// AdminLogin godoc
// @Summary Login as admin
// @Description Check the shared admin secret and set the admin_token cookie
// @Tags Admin - Auth
// @Accept json
// @Produce json
// @Param loginRequest body models.AdminLoginRequest true "Admin secret"
// @Success 200 {object} models.ApiResponse{data=models.AdminSessionResponse}
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 401 {object} models.ApiResponse "Invalid secret"
// @Failure 503 {object} models.ApiResponse "Admin login not configured"
// @Router /admin/login [post]
func AdminLogin(c *gin.Context) {
	var req models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request"))
		return
	}

	ok, err := services.GetAdminAuthService().VerifySecret(req.Secret)
	if err != nil {
		log.Error().Err(err).Str("op", "admin.login").Msg("admin secret not configured")
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Admin login is not configured"))
		return
	}
	if !ok {
		log.Warn().Str("op", "admin.login").Str("ip", c.ClientIP()).Msg("invalid admin secret")
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid secret"))
		return
	}

	token, expiresAt, err := services.GetJWTService().GenerateAdminJWT()
	if err != nil {
		log.Error().Err(err).Str("op", "admin.login").Msg("failed to generate token")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		middleware.AdminCookieName,
		token,
		int(services.AdminTokenTTL.Seconds()),
		"/",
		"",
		config.Load().IsProduction(),
		true,
	)

	log.Info().Str("op", "admin.login").Str("ip", c.ClientIP()).Msg("admin signed in")
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Login successful", models.AdminSessionResponse{
		Authenticated: true,
		Subject:       "admin",
		ExpiresAt:     expiresAt,
	}))
}
