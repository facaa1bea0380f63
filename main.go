// @title Lumière Storefront API
// @version 1.0
// @description Lumière jewelry storefront and back-office API
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @securityDefinitions.apikey CookieAuth
// @in header
// @name Cookie
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/cart"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/config"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/logger"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/middleware"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/routes/cms_routes"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/routes/docs_routes"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/routes/ecommerce_routes"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/services"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Log.Level, cfg.Server.Env, cfg.Log.File)

	// Connect to DB
	if err := config.InitDB(cfg); err != nil {
		log.Fatal().Err(err).Msg("database init failed")
	}
	defer config.CloseDB()

	if cfg.Database.AutoMigrate {
		ctx, cancel := config.WithCustomTimeout(time.Minute)
		err := config.AutoMigrate(ctx)
		cancel()
		if err != nil {
			log.Fatal().Err(err).Msg("auto-migrate failed")
		}
		log.Info().Msg("schema migrated")
	}

	// Redis backs carts and rate limits; without it carts live in memory
	if err := config.ConnectRedis(cfg.Redis); err != nil {
		log.Warn().Err(err).Msg("redis unavailable, using in-memory carts and no rate limiting")
	} else {
		cart.SetDefault(cart.NewRedisStore(config.RedisClient))
		defer config.CloseRedis()
	}

	if err := services.InitCloudinary(cfg.Cloudinary.CloudName, cfg.Cloudinary.APIKey, cfg.Cloudinary.APISecret, cfg.Cloudinary.Folder); err != nil {
		log.Fatal().Err(err).Msg("cloudinary init failed")
	}

	if err := services.InitEmailSender(
		cfg.Email.Provider,
		cfg.Email.ResendAPIKey,
		cfg.Email.From,
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.SMTPUsername,
		cfg.Email.SMTPPassword,
	); err != nil {
		log.Fatal().Err(err).Msg("email init failed")
	}

	if err := services.InitJWTService(cfg.Auth.JWTSecret); err != nil {
		log.Fatal().Err(err).Msg("JWT service init failed")
	}
	if err := services.InitAdminAuthService(cfg.Auth.AdminSecretHash, cfg.Auth.AdminSecret); err != nil {
		log.Fatal().Err(err).Msg("admin auth init failed")
	}

	oauthCtx, oauthCancel := config.WithTimeout()
	if err := config.InitGoogleOAuth(oauthCtx, cfg.Google); err != nil {
		log.Warn().Err(err).Msg("Google sign-in disabled")
	}
	oauthCancel()

	services.InitSnapshotLoader(config.Pool)
	services.InitActivityRecorder(config.DB)

	if err := middleware.RegisterValidators(); err != nil {
		log.Fatal().Err(err).Msg("validator registration failed")
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.Recovery(), middleware.Logger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Register API routes
	api := router.Group("/api/v1")
	cms_routes.SetupAdminRoutes(api, cfg)
	ecommerce_routes.SetupAuthRoutes(api)
	ecommerce_routes.SetupUserRoutes(api)
	ecommerce_routes.SetupStorefrontRoutes(api, cfg)

	// Swagger docs
	if !cfg.IsProduction() {
		docs_routes.SetupSwaggerRoutes(router)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}
	log.Info().Msg("server exited")
}
