package auth_controller

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/config"
)

const stateCookieName = "oauth_state"

func redirectToFrontendWithError(c *gin.Context, message string) {
	target := config.Load().Server.StorefrontURL + "/login?error=" + url.QueryEscape(message)
	c.Redirect(http.StatusTemporaryRedirect, target)
}

func secureCookies() bool {
	return config.Load().IsProduction()
}
