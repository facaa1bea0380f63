package analytics_controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/analytics"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/config"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/models"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/services"
)

var now = time.Now

// loadSnapshot fetches all orders and products for one request. On failure
// it writes the error response and nothing is cached or changed.
func loadSnapshot(c *gin.Context, op string) (analytics.Snapshot, bool) {
	loader := services.GetSnapshotLoader()
	if loader == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Analytics source is not configured"))
		return analytics.Snapshot{}, false
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	start := time.Now()
	snap, err := loader.LoadSnapshot(ctx)
	if err != nil {
		log.Error().Err(err).Str("op", op).Msg("failed to load orders and products")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load analytics data"))
		return analytics.Snapshot{}, false
	}
	log.Debug().Str("op", op).Int("orders", len(snap.Orders)).Int("products", len(snap.Products)).
		Dur("took", time.Since(start)).Msg("snapshot loaded")
	return snap, true
}
