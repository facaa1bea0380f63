package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/models"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/services"
)

const (
	CustomerCookieName = "auth_token"
	customerKey        = "customer"
)

// AuthMiddleware requires a signed-in storefront customer.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := tokenFromRequest(c, CustomerCookieName)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authorization required"))
			c.Abort()
			return
		}

		customer, err := services.GetJWTService().VerifyCustomerJWT(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid or expired token"))
			c.Abort()
			return
		}

		c.Set(customerKey, customer)
		c.Next()
	}
}

// OptionalAuthMiddleware attaches the customer when a valid token is
// present and never rejects the request.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := tokenFromRequest(c, CustomerCookieName); ok {
			if customer, err := services.GetJWTService().VerifyCustomerJWT(token); err == nil {
				c.Set(customerKey, customer)
			}
		}
		c.Next()
	}
}

func GetCustomerFromContext(c *gin.Context) (*models.Customer, bool) {
	v, exists := c.Get(customerKey)
	if !exists {
		return nil, false
	}
	customer, ok := v.(*models.Customer)
	return customer, ok
}
