package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrAdminSecretNotConfigured = errors.New("admin secret is not configured")

// AdminAuthService checks the shared admin secret against a bcrypt hash.
type AdminAuthService struct {
	secretHash []byte
}

// NewAdminAuthService takes ADMIN_SECRET_HASH, or hashes the plain
// ADMIN_SECRET when no hash is given.
func NewAdminAuthService(secretHash, plainSecret string) (*AdminAuthService, error) {
	if secretHash != "" {
		if _, err := bcrypt.Cost([]byte(secretHash)); err != nil {
			return nil, errors.New("ADMIN_SECRET_HASH is not a bcrypt hash")
		}
		return &AdminAuthService{secretHash: []byte(secretHash)}, nil
	}
	if plainSecret == "" {
		return &AdminAuthService{}, nil
	}
	hash, err := HashSecret(plainSecret)
	if err != nil {
		return nil, err
	}
	return &AdminAuthService{secretHash: []byte(hash)}, nil
}

// HashSecret hashes a secret using bcrypt
func HashSecret(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifySecret reports whether the candidate matches the configured secret.
func (s *AdminAuthService) VerifySecret(candidate string) (bool, error) {
	if len(s.secretHash) == 0 {
		return false, ErrAdminSecretNotConfigured
	}
	return bcrypt.CompareHashAndPassword(s.secretHash, []byte(candidate)) == nil, nil
}

var adminAuthService *AdminAuthService

func InitAdminAuthService(secretHash, plainSecret string) error {
	svc, err := NewAdminAuthService(secretHash, plainSecret)
	if err != nil {
		return err
	}
	adminAuthService = svc
	return nil
}

// GetAdminAuthService returns the global admin auth service instance
func GetAdminAuthService() *AdminAuthService {
	if adminAuthService == nil {
		adminAuthService = &AdminAuthService{}
	}
	return adminAuthService
}
