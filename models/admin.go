package models

import "time"

// AdminLoginRequest carries the shared admin secret.
type AdminLoginRequest struct {
	Secret string `json:"secret" binding:"required"`
}

type AdminSessionResponse struct {
	Authenticated bool      `json:"authenticated"`
	Subject       string    `json:"subject,omitempty"`
	ExpiresAt     time.Time `json:"expires_at,omitempty"`
}
