package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Auth       AuthConfig
	Cloudinary CloudinaryConfig
	Email      EmailConfig
	Google     GoogleConfig
	Log        LogConfig
}

type ServerConfig struct {
	Port               string
	Env                string
	AllowedOrigins     []string
	StorefrontURL      string
	RateLimitPerMinute int
}

type DatabaseConfig struct {
	URL         string
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	SSLMode     string
	AutoMigrate bool
}

type RedisConfig struct {
	URL string
}

type AuthConfig struct {
	JWTSecret       string
	AdminSecretHash string
	AdminSecret     string
	AdminLoginURL   string
}

type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
}

type EmailConfig struct {
	Provider     string // resend | smtp
	ResendAPIKey string
	From         string
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
}

type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

type LogConfig struct {
	Level string
	File  string
}

var (
	once     sync.Once
	instance *Config
)

// Load reads configuration from the environment (and .env when present).
// It is safe to call repeatedly; the first call wins.
func Load() *Config {
	once.Do(func() {
		_ = godotenv.Load()
		instance = fromViper(viper.GetViper())
	})
	return instance
}

// fromViper applies defaults and env bindings to v and builds the Config.
func fromViper(v *viper.Viper) *Config {
	v.SetDefault("SERVER_PORT", "8081")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:3001")
	v.SetDefault("STOREFRONT_URL", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT_PER_MINUTE", 100)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "lumiere_store")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_AUTO_MIGRATE", false)
	v.SetDefault("REDIS_URL", "redis://localhost:6379")
	v.SetDefault("ADMIN_LOGIN_URL", "http://localhost:3001/admin/login")
	v.SetDefault("CLOUDINARY_FOLDER", "lumiere/products")
	v.SetDefault("EMAIL_PROVIDER", "resend")
	v.SetDefault("EMAIL_FROM", "orders@lumiere.shop")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("GOOGLE_REDIRECT_URL", "http://localhost:8081/api/v1/auth/google/callback")
	v.SetDefault("LOG_LEVEL", "info")

	// the sender address is shared by both providers; RESEND_FROM_EMAIL is accepted as an alias
	_ = v.BindEnv("EMAIL_FROM", "EMAIL_FROM", "RESEND_FROM_EMAIL")
	v.AutomaticEnv()

	return &Config{
		Server: ServerConfig{
			Port:               v.GetString("SERVER_PORT"),
			Env:                v.GetString("APP_ENV"),
			AllowedOrigins:     splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
			StorefrontURL:      v.GetString("STOREFRONT_URL"),
			RateLimitPerMinute: v.GetInt("RATE_LIMIT_PER_MINUTE"),
		},
		Database: DatabaseConfig{
			URL:         v.GetString("DATABASE_URL"),
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetString("DB_PORT"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASSWORD"),
			Name:        v.GetString("DB_NAME"),
			SSLMode:     v.GetString("DB_SSLMODE"),
			AutoMigrate: v.GetBool("DB_AUTO_MIGRATE"),
		},
		Redis: RedisConfig{
			URL: v.GetString("REDIS_URL"),
		},
		Auth: AuthConfig{
			JWTSecret:       v.GetString("JWT_SECRET"),
			AdminSecretHash: v.GetString("ADMIN_SECRET_HASH"),
			AdminSecret:     v.GetString("ADMIN_SECRET"),
			AdminLoginURL:   v.GetString("ADMIN_LOGIN_URL"),
		},
		Cloudinary: CloudinaryConfig{
			CloudName: v.GetString("CLOUDINARY_CLOUD_NAME"),
			APIKey:    v.GetString("CLOUDINARY_API_KEY"),
			APISecret: v.GetString("CLOUDINARY_API_SECRET"),
			Folder:    v.GetString("CLOUDINARY_FOLDER"),
		},
		Email: EmailConfig{
			Provider:     strings.ToLower(v.GetString("EMAIL_PROVIDER")),
			ResendAPIKey: v.GetString("RESEND_API_KEY"),
			From:         v.GetString("EMAIL_FROM"),
			SMTPHost:     v.GetString("SMTP_HOST"),
			SMTPPort:     v.GetInt("SMTP_PORT"),
			SMTPUsername: v.GetString("SMTP_USERNAME"),
			SMTPPassword: v.GetString("SMTP_PASSWORD"),
		},
		Google: GoogleConfig{
			ClientID:     v.GetString("GOOGLE_CLIENT_ID"),
			ClientSecret: v.GetString("GOOGLE_CLIENT_SECRET"),
			RedirectURL:  v.GetString("GOOGLE_REDIRECT_URL"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
			File:  v.GetString("LOG_FILE"),
		},
	}
}

// IsProduction reports whether the service runs with APP_ENV=production.
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// DSN returns DATABASE_URL when set, otherwise a DSN built from DB_* keys.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
