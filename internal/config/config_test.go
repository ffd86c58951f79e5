package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://postgres@localhost:5433/postgres?sslmode=disable")
	t.Setenv("DATABASE_KEY", "testpassword")
}

func TestProcessEnvironmentVariables_Defaults(t *testing.T) {
	setRequired(t)
	t.Setenv("ALLOWED_ORIGINS", "")
	t.Setenv("PORT", "")
	t.Setenv("HOST", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("NER_MODEL", "")

	cfg, err := ProcessEnvironmentVariables()
	require.NoError(t, err)

	assert.Equal(t, "postgres://postgres@localhost:5433/postgres?sslmode=disable", cfg.DatabaseURL)
	assert.Equal(t, "testpassword", cfg.DatabaseKey)
	assert.Equal(t, DefaultAllowedOrigins, cfg.AllowedOrigins)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultNERModel, cfg.NERModel)
	assert.Equal(t, ":8000", cfg.ListenAddress())
}

func TestProcessEnvironmentVariables_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("ALLOWED_ORIGINS", "https://app.example.com, http://localhost:3000,")
	t.Setenv("HOST", "0.0.0.0")
	t.Setenv("PORT", "9000")
	t.Setenv("NER_ENDPOINT", "https://inference.example.com/models")

	cfg, err := ProcessEnvironmentVariables()
	require.NoError(t, err)

	assert.Equal(t, []string{"https://app.example.com", "http://localhost:3000"}, cfg.Origins())
	assert.Equal(t, "0.0.0.0:9000", cfg.ListenAddress())
	assert.Equal(t, "https://inference.example.com/models", cfg.NEREndpoint)
}

func TestProcessEnvironmentVariables_MissingCredentials(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://postgres@localhost:5433/postgres")
	t.Setenv("DATABASE_KEY", "")

	cfg, err := ProcessEnvironmentVariables()
	assert.ErrorIs(t, err, ErrMissingStorageCredentials)
	assert.Nil(t, cfg)

	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_KEY", "testpassword")

	_, err = ProcessEnvironmentVariables()
	assert.ErrorIs(t, err, ErrMissingStorageCredentials)
}
