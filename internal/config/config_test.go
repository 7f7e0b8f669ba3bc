package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 8000
read_timeout = 10
write_timeout = 10
idle_timeout = 60
shutdown_timeout = 15

[database]
host = "localhost"
port = 5432
user = "postgres"
password = "secret"
dbname = "nails_booking"
sslmode = "disable"
max_open_conns = 25
max_idle_conns = 5
conn_max_lifetime = 300

[redis]
enabled = false
addr = "localhost:6379"

[metrics]
enabled = true
service_name = "nails-booking-service"
path = "/metrics"

[logs]
file = "logs/app.log"
level = "info"

[studio]
whatsapp_phone = "5511999999999"
notify_owner = true
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Server.HTTPPort)
	assert.Equal(t, "nails_booking", cfg.Database.DBName)
	assert.True(t, cfg.Metrics.Enabled)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "5511999999999", cfg.Studio.WhatsAppPhone)
	assert.True(t, cfg.Studio.NotifyOwner)
}

func TestLoad_DSN(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=secret dbname=nails_booking sslmode=disable",
		cfg.Database.DSN())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("DB_PORT", "5433")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, 5433, cfg.Database.Port)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoad_ValidationFailures(t *testing.T) {
	noPort := `
[database]
host = "localhost"
`
	_, err := Load(writeConfig(t, noPort))
	assert.ErrorContains(t, err, "http_port")

	redisWithoutAddr := `
[server]
http_port = 8000

[database]
host = "localhost"

[redis]
enabled = true
`
	_, err = Load(writeConfig(t, redisWithoutAddr))
	assert.ErrorContains(t, err, "redis.addr")
}
