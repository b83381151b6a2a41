package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_EnvOnlyWithDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/marquee")
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "Local", cfg.DisplayTimezone)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.Equal(t, "marquee.events", cfg.RabbitMQ.Exchange)
}

func TestLoad_FileExpandsAndEnvOverrides(t *testing.T) {
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("SERVER_ADDRESS", ":9090")
	path := writeFile(t, `
database_url: postgres://app:${DB_PASSWORD}@db/marquee
jwt_secret: from-file
server_address: ":7000"
display_timezone: America/New_York
cache_ttl: 45s
redis:
  address: redis:6379
mqtt:
  broker_url: tcp://mqtt:1883
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "postgres://app:pw@db/marquee", cfg.DatabaseURL)
	assert.Equal(t, "from-env", cfg.JWTSecret)
	assert.Equal(t, ":9090", cfg.ServerAddress)
	assert.Equal(t, 45*time.Second, cfg.CacheTTL)
	assert.Equal(t, "redis:6379", cfg.Redis.Address)
	assert.Equal(t, "tcp://mqtt:1883", cfg.MQTT.BrokerURL)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "America/New_York", loc.String())
}

func TestLoad_MissingFileIsIgnored(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/marquee")
	t.Setenv("JWT_SECRET", "secret")

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.NoError(t, err)
}

func TestLoad_RequiresDatabaseAndSecret(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "secret")
	_, err := Load("")
	assert.ErrorContains(t, err, "DATABASE_URL")

	t.Setenv("DATABASE_URL", "postgres://localhost/marquee")
	t.Setenv("JWT_SECRET", "")
	_, err = Load("")
	assert.ErrorContains(t, err, "JWT_SECRET")
}

func TestLoad_BadTimezone(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/marquee")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DISPLAY_TIMEZONE", "Mars/Olympus")

	_, err := Load("")
	assert.ErrorContains(t, err, "DISPLAY_TIMEZONE")
}

func TestLoad_BadCacheTTL(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/marquee")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("CACHE_TTL", "soon")

	_, err := Load("")
	assert.ErrorContains(t, err, "CACHE_TTL")
}
