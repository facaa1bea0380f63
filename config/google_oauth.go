package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

var (
	GoogleOAuthConfig *oauth2.Config
	OIDCVerifier      *oidc.IDTokenVerifier
)

// InitGoogleOAuth sets up the OAuth2 client and the ID token verifier
// used for customer sign-in.
func InitGoogleOAuth(ctx context.Context, cfg GoogleConfig) error {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return errors.New("GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET must be set")
	}

	provider, err := oidc.NewProvider(ctx, "https://accounts.google.com")
	if err != nil {
		return fmt.Errorf("failed to create OIDC provider: %w", err)
	}

	GoogleOAuthConfig = &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Scopes:       []string{oidc.ScopeOpenID, "email", "profile"},
		Endpoint:     google.Endpoint,
	}

	OIDCVerifier = provider.Verifier(&oidc.Config{
		ClientID: cfg.ClientID,
	})

	log.Info().Str("op", "config.google").Str("redirect", cfg.RedirectURL).Msg("Google OAuth initialized")
	return nil
}
