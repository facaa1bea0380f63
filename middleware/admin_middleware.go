package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/models"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/services"
)

const (
	AdminCookieName = "admin_token"
	adminClaimsKey  = "adminClaims"
)

// AdminAuthMiddleware validates the admin session token. Browsers asking
// for HTML are redirected to loginURL; API clients get a 401 envelope.
func AdminAuthMiddleware(loginURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := tokenFromRequest(c, AdminCookieName)
		if !ok {
			rejectAdmin(c, loginURL, "Unauthorized - no token provided")
			return
		}

		claims, err := services.GetJWTService().VerifyAdminJWT(token)
		if err != nil {
			log.Debug().Err(err).Str("op", "admin.auth").Msg("invalid admin token")
			rejectAdmin(c, loginURL, "Unauthorized - invalid token")
			return
		}

		c.Set(adminClaimsKey, claims)
		c.Next()
	}
}

func rejectAdmin(c *gin.Context, loginURL, message string) {
	if loginURL != "" && wantsHTML(c) {
		c.Redirect(http.StatusFound, loginURL)
		c.Abort()
		return
	}
	c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, message))
	c.Abort()
}

func wantsHTML(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "text/html")
}

// tokenFromRequest reads the named cookie, then a Bearer header.
func tokenFromRequest(c *gin.Context, cookieName string) (string, bool) {
	if token, err := c.Cookie(cookieName); err == nil && token != "" {
		return token, true
	}
	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// GetAdminClaims returns the verified admin token claims.
func GetAdminClaims(c *gin.Context) (*services.AdminJWTClaims, bool) {
	v, ok := c.Get(adminClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*services.AdminJWTClaims)
	return claims, ok
}

func GetAdminSubject(c *gin.Context) string {
	if claims, ok := GetAdminClaims(c); ok {
		return claims.Subject
	}
	return ""
}
