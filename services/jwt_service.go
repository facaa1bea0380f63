package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/models"
)

const (
	AdminTokenTTL    = 12 * time.Hour
	CustomerTokenTTL = 7 * 24 * time.Hour

	issuer       = "lumiere-store"
	adminSubject = "admin"
)

// AdminJWTClaims carries the admin session. The subject is always "admin";
// there is one shared admin identity.
type AdminJWTClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// CustomerJWTClaims carries the storefront principal after Google sign-in.
type CustomerJWTClaims struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture,omitempty"`
	jwt.RegisteredClaims
}

// JWTService handles token generation and verification
type JWTService struct {
	secretKey []byte
	now       func() time.Time
}

var jwtService *JWTService

// InitJWTService initializes the JWT service with a secret key
func InitJWTService(secretKey string) error {
	if secretKey == "" {
		return errors.New("JWT secret key cannot be empty")
	}
	jwtService = NewJWTService(secretKey)
	return nil
}

func NewJWTService(secretKey string) *JWTService {
	return &JWTService{secretKey: []byte(secretKey), now: time.Now}
}

// GetJWTService returns the initialized JWT service
func GetJWTService() *JWTService {
	if jwtService == nil {
		jwtService = NewJWTService("dev-secret-key-change-in-production")
	}
	return jwtService
}

func (j *JWTService) sign(claims jwt.Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (j *JWTService) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return j.secretKey, nil
}

func (j *JWTService) registered(subject string, ttl time.Duration) (jwt.RegisteredClaims, time.Time) {
	now := j.now()
	expiresAt := now.Add(ttl)
	return jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		Issuer:    issuer,
	}, expiresAt
}

// GenerateAdminJWT issues the admin session token (12h).
func (j *JWTService) GenerateAdminJWT() (string, time.Time, error) {
	rc, expiresAt := j.registered(adminSubject, AdminTokenTTL)
	token, err := j.sign(AdminJWTClaims{Role: "admin", RegisteredClaims: rc})
	return token, expiresAt, err
}

// VerifyAdminJWT returns the claims if the token is a valid admin token.
func (j *JWTService) VerifyAdminJWT(tokenString string) (*AdminJWTClaims, error) {
	claims := &AdminJWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, j.keyFunc, jwt.WithIssuer(issuer))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Subject != adminSubject || claims.Role != "admin" {
		return nil, errors.New("token missing required claims")
	}
	return claims, nil
}

// GenerateCustomerJWT issues a storefront session for a signed-in customer.
func (j *JWTService) GenerateCustomerJWT(c models.Customer) (string, error) {
	if c.ID == "" || c.Email == "" {
		return "", errors.New("customer id and email cannot be empty")
	}
	rc, _ := j.registered(c.ID, CustomerTokenTTL)
	return j.sign(CustomerJWTClaims{
		Email:            c.Email,
		Name:             c.Name,
		Picture:          c.Picture,
		RegisteredClaims: rc,
	})
}

func (j *JWTService) VerifyCustomerJWT(tokenString string) (*models.Customer, error) {
	claims := &CustomerJWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, j.keyFunc, jwt.WithIssuer(issuer))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Subject == "" || claims.Subject == adminSubject || claims.Email == "" {
		return nil, errors.New("token missing required claims")
	}
	return &models.Customer{
		ID:      claims.Subject,
		Email:   claims.Email,
		Name:    claims.Name,
		Picture: claims.Picture,
	}, nil
}
