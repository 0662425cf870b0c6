package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("FIREBASE_PROJECT_ID", "")
	t.Setenv("GOOGLE_CLOUD_PROJECT", "fit-demo")
	t.Setenv("FIREBASE_STORAGE_BUCKET", "")
	t.Setenv("ALLOWED_ORIGINS", " http://a.test , ,http://b.test")
	t.Setenv("PAYMENT_CURRENCY", " USD ")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "fit-demo", cfg.ProjectID)
	assert.Equal(t, "fit-demo.appspot.com", cfg.StorageBucket)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
	assert.Equal(t, "usd", cfg.PaymentCurrency)
	assert.False(t, cfg.RequireAdminAuth)
	assert.Equal(t, 10, cfg.RateLimitBurst)
}

func TestLoadProjectIDPrecedence(t *testing.T) {
	t.Setenv("FIREBASE_PROJECT_ID", "primary")
	t.Setenv("GOOGLE_CLOUD_PROJECT", "secondary")
	t.Setenv("FIREBASE_STORAGE_BUCKET", "custom-bucket")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "primary", cfg.ProjectID)
	assert.Equal(t, "custom-bucket", cfg.StorageBucket)
}

func TestLoadRejectsMalformedBool(t *testing.T) {
	t.Setenv("REQUIRE_ADMIN_AUTH", "maybe")

	_, err := Load()
	assert.Error(t, err)
}
