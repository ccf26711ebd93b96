package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAppliesDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("MONGO_URI", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("PORT", "")

	c, err := Parse([]byte("postgres:\n  dsn: postgres://local/flights\n"))
	require.NoError(t, err)

	assert.Equal(t, 8080, c.Server.Port)
	assert.Equal(t, 10*time.Second, c.Server.ShutdownTimeout)
	assert.Equal(t, "postgres://local/flights", c.Postgres.DSN)
	assert.Equal(t, 10, c.Postgres.MaxConns)
	assert.Equal(t, "flightbooking", c.Mongo.DBName)
	assert.Equal(t, "flight_session", c.Session.CookieName)
	assert.Equal(t, 24*time.Hour, c.Session.TTL)
	assert.Equal(t, "info", c.Logging.Level)
	assert.Equal(t, 3, c.Kafka.Partitions)
}

func TestParseReadsYAMLDurations(t *testing.T) {
	data := []byte(`
server:
  port: 9000
  read_timeout: 3s
session:
  ttl: 2h
  secure: true
logging:
  level: debug
  dir: /var/log/flight-booking
  max_backups: 5
cors:
  allowed_origins: ["https://booking.example.com"]
`)
	t.Setenv("PORT", "")
	t.Setenv("LOG_LEVEL", "")

	c, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, 9000, c.Server.Port)
	assert.Equal(t, 3*time.Second, c.Server.ReadTimeout)
	assert.Equal(t, 2*time.Hour, c.Session.TTL)
	assert.True(t, c.Session.Secure)
	assert.Equal(t, "debug", c.Logging.Level)
	assert.Equal(t, "/var/log/flight-booking", c.Logging.Dir)
	assert.Equal(t, 5, c.Logging.MaxBackups)
	assert.Equal(t, []string{"https://booking.example.com"}, c.CORS.AllowedOrigins)
}

func TestParseEnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env/flights")
	t.Setenv("MONGO_URI", "mongodb://env:27017")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("PORT", "7070")

	c, err := Parse([]byte("postgres:\n  dsn: postgres://file/flights\n"))
	require.NoError(t, err)

	assert.Equal(t, "postgres://env/flights", c.Postgres.DSN)
	assert.Equal(t, "mongodb://env:27017", c.Mongo.URI)
	assert.Equal(t, "warn", c.Logging.Level)
	assert.Equal(t, 7070, c.Server.Port)
}

func TestParseRejectsInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("server: [unterminated"))
	assert.Error(t, err)
}

func TestGetBasePathWalksUpToConfigFile(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, CONFIG_FILE), []byte("{}"), 0o644))

	t.Chdir(nested)

	got, err := filepath.EvalSymlinks(GetBasePath())
	require.NoError(t, err)
	want, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
