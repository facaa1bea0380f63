package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/models"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/services"
)

// pathToResourceType maps the first admin path segment to a resource type
var pathToResourceType = map[string]string{
	"products":    models.ResourceTypeProduct,
	"collections": models.ResourceTypeCollection,
	"orders":      models.ResourceTypeOrder,
	"media":       models.ResourceTypeMedia,
	"analytics":   models.ResourceTypeAnalytics,
}

var methodToActionVerb = map[string]string{
	http.MethodPost:   "created",
	http.MethodPatch:  "updated",
	http.MethodPut:    "updated",
	http.MethodDelete: "deleted",
}

const maxLoggedBody = 16 << 10

// ActivityLoggingMiddleware records mutating admin requests. Must run after
// AdminAuthMiddleware.
func ActivityLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		verb, mutating := methodToActionVerb[c.Request.Method]
		resourceType := extractResourceType(c.Request.URL.Path)
		if !mutating || resourceType == "" {
			c.Next()
			return
		}

		changes := captureJSONBody(c)

		c.Next()

		resourceID := c.Param("id")
		if resourceID == "" {
			resourceID = c.Query("public_id")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		services.LogActivity(ctx, services.LogActivityRequest{
			Actor:        GetAdminSubject(c),
			Action:       verb + "_" + resourceType,
			ResourceType: resourceType,
			ResourceID:   resourceID,
			Changes:      changes,
			StatusCode:   c.Writer.Status(),
			IPAddress:    c.ClientIP(),
			UserAgent:    c.Request.UserAgent(),
		})
	}
}

// extractResourceType reads /api/v1/admin/<resource>/...
func extractResourceType(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	for i, p := range parts {
		if p == "admin" && i+1 < len(parts) {
			return pathToResourceType[parts[i+1]]
		}
	}
	return ""
}

// captureJSONBody reads a small JSON body and puts it back for the handler.
func captureJSONBody(c *gin.Context) any {
	if c.Request.Body == nil || !strings.HasPrefix(c.ContentType(), "application/json") {
		return nil
	}
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxLoggedBody+1))
	if err != nil {
		return nil
	}
	c.Request.Body = io.NopCloser(io.MultiReader(bytes.NewReader(body), c.Request.Body))
	if len(body) == 0 || len(body) > maxLoggedBody {
		return nil
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil
	}
	// never persist the admin secret
	delete(payload, "secret")
	return payload
}
