package models

// GoogleIDClaims are the ID token claims we read after an OIDC exchange.
type GoogleIDClaims struct {
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// Customer is the authenticated storefront principal. It is not
// persisted; the identity provider owns the account.
type Customer struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture,omitempty"`
}
