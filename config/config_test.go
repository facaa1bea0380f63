package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg := fromViper(viper.New())

	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:3001"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "resend", cfg.Email.Provider)
	assert.Equal(t, "orders@lumiere.shop", cfg.Email.From)
	assert.Equal(t, 587, cfg.Email.SMTPPort)
	assert.False(t, cfg.IsProduction())
}

func TestFromViper_SenderAddress(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"resend key", map[string]string{"RESEND_FROM_EMAIL": "hello@lumiere.shop"}, "hello@lumiere.shop"},
		{"email key", map[string]string{"EMAIL_FROM": "orders@example.com"}, "orders@example.com"},
		{"email key wins", map[string]string{"EMAIL_FROM": "orders@example.com", "RESEND_FROM_EMAIL": "hello@lumiere.shop"}, "orders@example.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			assert.Equal(t, tt.want, fromViper(viper.New()).Email.From)
		})
	}
}

func TestFromViper_EnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("EMAIL_PROVIDER", "SMTP")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://lumiere.shop , ,https://admin.lumiere.shop")

	cfg := fromViper(viper.New())
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "smtp", cfg.Email.Provider)
	assert.Equal(t, []string{"https://lumiere.shop", "https://admin.lumiere.shop"}, cfg.Server.AllowedOrigins)
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: "5432", User: "store", Password: "pw", Name: "lumiere", SSLMode: "disable"}
	assert.Equal(t, "postgres://store:pw@db:5432/lumiere?sslmode=disable", d.DSN())

	d.URL = "postgres://override"
	assert.Equal(t, "postgres://override", d.DSN())
}
