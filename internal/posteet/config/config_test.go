package config_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"posteet/internal/posteet/config"
	"posteet/pkg/logger"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.GetAddress())
	assert.Equal(t, "access_token", cfg.Cookie.Name)
	assert.False(t, cfg.Cookie.IsSecure())
	assert.Equal(t, 3600, cfg.Cookie.MaxAge)
	assert.True(t, cfg.CORS.AllowAll())
	assert.Equal(t, time.Hour, cfg.JWT.GetAccessTokenTTL())
	assert.Equal(t, 5*time.Second, cfg.Shutdown.GetTimeout())
	assert.Equal(t, "localhost:6379", cfg.Redis.GetAddress())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("POSTEET_HTTP_PORT", "9090")
	t.Setenv("ACCESS_COOKIE_NAME", "session")
	t.Setenv("COOKIE_SECURE", "1")
	t.Setenv("ACCESS_TOKEN_EXPIRES", "600")
	t.Setenv("ALLOWED_ORIGINS", "http://a.example.com, http://b.example.com")
	t.Setenv("POSTGRES_HOST", "db.internal")
	t.Setenv("POSTGRES_DB", "posteet_prod")
	t.Setenv("POSTEET_JWT_ACCESS_TOKEN_TTL", "30m")

	cfg, err := config.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "session", cfg.Cookie.Name)
	assert.True(t, cfg.Cookie.IsSecure())
	assert.Equal(t, 600, cfg.Cookie.MaxAge)
	assert.Equal(t, []string{"http://a.example.com", "http://b.example.com"}, cfg.CORS.Origins())
	assert.False(t, cfg.CORS.AllowAll())
	assert.Contains(t, cfg.Postgres.GetDSN(), "host=db.internal")
	assert.Contains(t, cfg.Postgres.GetConnectionURL(), "/posteet_prod")
	assert.Equal(t, 30*time.Minute, cfg.JWT.GetAccessTokenTTL())
}

func TestGetEnvironment(t *testing.T) {
	devCfg := config.LoggingConfig{Mode: "development"}
	assert.Equal(t, logger.Development, devCfg.GetEnvironment())

	prodCfg := config.LoggingConfig{Mode: "production"}
	assert.Equal(t, logger.Production, prodCfg.GetEnvironment())
}
