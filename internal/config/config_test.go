package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, time.Hour, cfg.JWT.Expiration)
	assert.Equal(t, 6, cfg.Recommendation.DefaultCount)
	assert.Equal(t, 20, cfg.Recommendation.MaxCount)
	assert.Equal(t, 7, cfg.Recommendation.LogWindowDays)
	assert.True(t, cfg.Catalog.Seed)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
	assert.Equal(t, 8, cfg.Cache.SizeMB)
	assert.Equal(t, 5*time.Minute, cfg.Cache.CatalogTTL)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := `
server:
  address: ":9090"
  cors_origins:
    - "http://localhost:5173"
jwt:
  secret: "from-file"
  expiration: "30m"
recommendation:
  max_count: 10
cache:
  catalog_ttl: "90s"
auth:
  admin_emails:
    - "coach@example.com"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("RECOMMENDATION_DEFAULT_COUNT", "4")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, "from-env", cfg.JWT.Secret)
	assert.Equal(t, 30*time.Minute, cfg.JWT.Expiration)
	assert.Equal(t, 4, cfg.Recommendation.DefaultCount)
	assert.Equal(t, 10, cfg.Recommendation.MaxCount)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.Server.CORSOrigins)
	assert.Equal(t, 90*time.Second, cfg.Cache.CatalogTTL)
	assert.Equal(t, []string{"coach@example.com"}, cfg.Auth.AdminEmails)
}

func TestLoadConfig_InvalidRecommendationBounds(t *testing.T) {
	t.Setenv("RECOMMENDATION_DEFAULT_COUNT", "30")

	_, err := LoadConfig(t.TempDir())
	assert.Error(t, err)
}
