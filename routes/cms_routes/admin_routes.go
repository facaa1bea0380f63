package cms_routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/config"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/controllers/cms/activity_controller"
	admin_auth "github.com/Lumiere-Jewelry/lumiere-storefront-backend/controllers/cms/admin_controller/auth"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/middleware"
)

// SetupAdminRoutes mounts the back-office API under /admin. Only login is
// public; everything else requires the admin cookie and is rate limited
// and activity logged.
func SetupAdminRoutes(rg *gin.RouterGroup, cfg *config.Config) {
	// ════════════════════════════════════════════════════════════
	// Base Admin Group
	// ════════════════════════════════════════════════════════════

	admin := rg.Group("/admin")
	admin.Use(middleware.RateLimiter(config.RedisClient, cfg.Server.RateLimitPerMinute, time.Minute))

	// ════════════════════════════════════════════════════════════
	// Public Routes (No Auth Required)
	// ════════════════════════════════════════════════════════════

	admin.POST("/login", admin_auth.AdminLogin)

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Auth + Activity Logging)
	// ════════════════════════════════════════════════════════════

	protected := admin.Group("")
	protected.Use(middleware.AdminAuthMiddleware(cfg.Auth.AdminLoginURL))
	protected.Use(middleware.ActivityLoggingMiddleware())
	{
		protected.POST("/logout", admin_auth.AdminLogout)
		protected.GET("/session", admin_auth.GetAdminSession)

		protected.GET("/activity", activity_controller.GetActivityLogs)
	}

	SetupProductRoutes(protected)
	SetupCollectionRoutes(protected)
	SetupOrderRoutes(protected)
	SetupMediaRoutes(protected)
	SetupAnalyticsRoutes(protected)
}
