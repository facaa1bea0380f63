package auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/config"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/models"
)

// GoogleLogin godoc
// @Summary Start Google sign-in
// @Description Sets a state cookie and redirects to Google's consent screen
// @Tags Auth - Google OAuth
// @Success 307 "Redirect to Google"
// @Failure 503 {object} models.ApiResponse "Google sign-in not configured"
// @Router /auth/google/login [get]
func GoogleLogin(c *gin.Context) {
	if config.GoogleOAuthConfig == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Google sign-in is not configured"))
		return
	}

	state := uuid.NewString()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(stateCookieName, state, 10*60, "/", "", secureCookies(), true)

	authURL := config.GoogleOAuthConfig.AuthCodeURL(state, oauth2.AccessTypeOnline)
	c.Redirect(http.StatusTemporaryRedirect, authURL)
}
