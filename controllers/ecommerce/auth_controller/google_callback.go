package auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/config"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/middleware"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/models"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/services"
)

// GoogleCallback godoc
// @Summary Google OAuth callback
// @Description Verifies the state, exchanges the code, verifies the ID token, sets the auth_token cookie and redirects to the storefront.
// @Tags Auth - Google OAuth
// @Success 307 "Redirect to storefront"
// @Router /auth/google/callback [get]
func GoogleCallback(c *gin.Context) {
	if config.GoogleOAuthConfig == nil || config.OIDCVerifier == nil {
		redirectToFrontendWithError(c, "Google sign-in is not configured")
		return
	}

	state := c.Query("state")
	savedState, err := c.Cookie(stateCookieName)
	if err != nil || state == "" || state != savedState {
		log.Warn().Str("op", "auth.google-callback").Msg("state mismatch")
		redirectToFrontendWithError(c, "Invalid state token")
		return
	}
	c.SetCookie(stateCookieName, "", -1, "/", "", secureCookies(), true)

	code := c.Query("code")
	if code == "" {
		redirectToFrontendWithError(c, "No authorization code")
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	token, err := config.GoogleOAuthConfig.Exchange(ctx, code)
	if err != nil {
		log.Error().Err(err).Str("op", "auth.google-callback").Msg("code exchange failed")
		redirectToFrontendWithError(c, "Failed to exchange token")
		return
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		redirectToFrontendWithError(c, "No ID token returned")
		return
	}
	idToken, err := config.OIDCVerifier.Verify(ctx, rawIDToken)
	if err != nil {
		log.Error().Err(err).Str("op", "auth.google-callback").Msg("id token verification failed")
		redirectToFrontendWithError(c, "Invalid ID token")
		return
	}

	var claims models.GoogleIDClaims
	if err := idToken.Claims(&claims); err != nil || claims.Email == "" {
		redirectToFrontendWithError(c, "Email claim missing")
		return
	}
	if !claims.EmailVerified {
		redirectToFrontendWithError(c, "Google email is not verified")
		return
	}

	customer := models.Customer{
		ID:      idToken.Subject,
		Email:   claims.Email,
		Name:    claims.Name,
		Picture: claims.Picture,
	}
	jwtToken, err := services.GetJWTService().GenerateCustomerJWT(customer)
	if err != nil {
		log.Error().Err(err).Str("op", "auth.google-callback").Msg("failed to issue token")
		redirectToFrontendWithError(c, "Failed to generate token")
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.CustomerCookieName, jwtToken, int(services.CustomerTokenTTL.Seconds()), "/", "", secureCookies(), true)

	log.Info().Str("op", "auth.google-callback").Str("email", customer.Email).Msg("customer signed in")
	c.Redirect(http.StatusTemporaryRedirect, config.Load().Server.StorefrontURL+"/account")
}
