package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/cart"
)

const (
	CartCookieName = "cart_id"
	cartIDKey      = "cartID"
)

// CartSession makes sure every storefront request carries a cart id.
// A fresh id is issued as an HTTP-only cookie when none (or a malformed
// one) is sent.
func CartSession(secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(CartCookieName)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(CartCookieName, id, int(cart.TTL.Seconds()), "/", "", secure, true)
		}
		c.Set(cartIDKey, id)
		c.Next()
	}
}

func GetCartID(c *gin.Context) string {
	if v, ok := c.Get(cartIDKey); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
