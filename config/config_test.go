package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"APP_PORT", "PORT", "STORE_DRIVER", "JWT_EXPIRY", "MAX_UPLOAD_SIZE", "PHOTO_STORE", "DATABASE_URL"} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()

	assert.Equal(t, "8082", cfg.Port)
	assert.Equal(t, "postgres", cfg.StoreDriver)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, int64(5242880), cfg.MaxUploadSize)
	assert.Equal(t, "local", cfg.PhotoStore)
	assert.Equal(t, "sos-alerts", cfg.AlertChannel)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "")
	t.Setenv("PORT", "9000")
	t.Setenv("JWT_EXPIRY", "30m")
	t.Setenv("MAX_UPLOAD_SIZE", "1024")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("SMTP_PORT", "not-a-port")

	cfg := FromEnv()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 30*time.Minute, cfg.JWTExpiry)
	assert.Equal(t, int64(1024), cfg.MaxUploadSize)
	assert.True(t, cfg.MinioUseSSL)
	assert.Equal(t, 587, cfg.SMTPPort)
}

func TestDSN(t *testing.T) {
	cfg := &Config{DBUser: "u", DBPassword: "p", DBHost: "db", DBPort: "5432", DBName: "tourist", DBSSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@db:5432/tourist?sslmode=disable", cfg.DSN())

	cfg.DatabaseURL = "postgres://elsewhere/x"
	assert.Equal(t, "postgres://elsewhere/x", cfg.DSN())
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("debug", "json", "tourist-safety")
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	logger, err = NewLogger("bogus", "console", "")
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
}
