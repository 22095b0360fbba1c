package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validProductionConfig() *Config {
	return &Config{
		JWTSecret:  "a-long-production-secret-at-least-32-chars",
		Port:       "5000",
		DBPassword: "s3cure-db-password",
		DBSSLMode:  "require",
		Env:        "production",
	}
}

func TestValidateRequiresPortAndSecret(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, cfg.Validate())

	cfg.Port = "5000"
	assert.Error(t, cfg.Validate())

	cfg.JWTSecret = "secret"
	assert.NoError(t, cfg.Validate())
}

func TestValidateProductionRejectsDefaults(t *testing.T) {
	cfg := validProductionConfig()
	assert.NoError(t, cfg.Validate())

	cfg = validProductionConfig()
	cfg.JWTSecret = "your-secret-key-change-in-production"
	assert.Error(t, cfg.Validate())

	cfg = validProductionConfig()
	cfg.JWTSecret = "short"
	assert.Error(t, cfg.Validate())

	cfg = validProductionConfig()
	cfg.DBPassword = "password"
	assert.Error(t, cfg.Validate())
}

func TestValidateDevelopmentIsPermissive(t *testing.T) {
	cfg := &Config{
		JWTSecret: "short-dev-secret",
		Port:      "5000",
		Env:       "development",
	}
	assert.NoError(t, cfg.Validate())
}
