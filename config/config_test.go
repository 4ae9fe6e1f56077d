package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("SECRET_KEY", "jwt-secret")
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("FRONTEND_URL", "https://dishdash.example.com")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "inr", cfg.Currency)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Equal(t, "https://dishdash.example.com", cfg.FrontendURL)
}

func TestLoadMissingRequired(t *testing.T) {
	tests := []struct{ missing string }{
		{"SECRET_KEY"},
		{"STRIPE_SECRET_KEY"},
		{"FRONTEND_URL"},
	}
	for _, tt := range tests {
		t.Run(tt.missing, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.missing, "")

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.missing)
		})
	}
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "9100")
	t.Setenv("CURRENCY", "usd")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9100", cfg.Port)
	assert.Equal(t, "usd", cfg.Currency)
}
