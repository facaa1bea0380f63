package config

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/models"
)

var (
	// Pool serves raw read queries (analytics snapshots).
	Pool *pgxpool.Pool
	// DB serves the CRUD surface.
	DB *gorm.DB
)

// InitDB opens both the pgx pool and the GORM handle against the same database.
func InitDB(cfg *Config) error {
	if err := initPgx(cfg.Database); err != nil {
		return err
	}
	return initGORM(cfg)
}

func initPgx(cfg DatabaseConfig) error {
	ctx, cancel := WithTimeout()
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.DSN())
	if err != nil {
		return fmt.Errorf("unable to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return fmt.Errorf("database ping failed: %w", err)
	}

	Pool = pool
	log.Info().Str("op", "config.db").Msg("database connected (pgx)")
	return nil
}

func initGORM(cfg *Config) error {
	gormLogger := logger.Default.LogMode(logger.Info)
	if cfg.IsProduction() {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{
		Logger:  gormLogger,
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return fmt.Errorf("failed to connect with GORM: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(2)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(2 * time.Minute)
	}

	DB = db
	log.Info().Str("op", "config.db").Msg("database connected (GORM)")
	return nil
}

// AutoMigrate creates or updates the tables backing the store.
func AutoMigrate(ctx context.Context) error {
	if DB == nil {
		return fmt.Errorf("database not initialized")
	}
	return DB.WithContext(ctx).AutoMigrate(
		&models.Collection{},
		&models.Product{},
		&models.Order{},
		&models.ActivityLog{},
	)
}

func CloseDB() {
	if Pool != nil {
		Pool.Close()
		log.Info().Str("op", "config.db").Msg("database connection closed (pgx)")
	}
	if DB != nil {
		if sqlDB, _ := DB.DB(); sqlDB != nil {
			sqlDB.Close()
			log.Info().Str("op", "config.db").Msg("database connection closed (GORM)")
		}
	}
}

// WithTimeout returns a context with a 10s timeout.
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func WithCustomTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}
