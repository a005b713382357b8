package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setDBEnv(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "hotel")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "hotel")
	t.Setenv("DB_SSLMODE", "")
}

func TestLoad_MissingSecret(t *testing.T) {
	setDBEnv(t)
	t.Setenv("JWT_SECRET_KEY", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_MissingDB(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "s3cret")
	t.Setenv("DB_HOST", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_Defaults(t *testing.T) {
	setDBEnv(t)
	t.Setenv("JWT_SECRET_KEY", "s3cret")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("JWT_EXPIRATION_HOURS", "not-a-number")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("INITIAL_ADMIN_EMAIL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, int64(24), cfg.JWTExpirationHours)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Nil(t, cfg.InitialAdmin)
	assert.Equal(t, "host=localhost port=5432 user=hotel password=secret dbname=hotel sslmode=disable", cfg.DB.DSN)
}

func TestLoad_Overrides(t *testing.T) {
	setDBEnv(t)
	t.Setenv("JWT_SECRET_KEY", "s3cret")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("JWT_EXPIRATION_HOURS", "2")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("INITIAL_ADMIN_EMAIL", "root@hotel.test")
	t.Setenv("INITIAL_ADMIN_PHONE", "100")
	t.Setenv("INITIAL_ADMIN_PASSWORD", "changeme")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, int64(2), cfg.JWTExpirationHours)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	require.NotNil(t, cfg.InitialAdmin)
	assert.Equal(t, "root@hotel.test", cfg.InitialAdmin.Email)
	assert.Equal(t, "Administrator", cfg.InitialAdmin.Name)
}
