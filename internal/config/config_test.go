package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envFrom(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func cosmosEnv() map[string]string {
	return map[string]string{
		"COSMOSDB_ENDPOINT": "https://example.documents.azure.com:443/",
		"COSMOSDB_KEY":      "c2VjcmV0",
		"DATABASE_ID":       "telemetry",
		"CONTAINER_ID":      "readings",
	}
}

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(envFrom(cosmosEnv()))
	require.NoError(t, err)

	assert.Equal(t, "3089", cfg.Port)
	assert.Equal(t, ":3089", cfg.Addr())
	assert.Equal(t, "hainetsukaishu-demo03", cfg.DeviceID)
	assert.Equal(t, DriverCosmos, cfg.Store.Driver)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "readings", cfg.Cosmos.ContainerID)
}

func TestLoadFrom_CosmosRequiresConnection(t *testing.T) {
	_, err := LoadFrom(envFrom(map[string]string{"COSMOSDB_ENDPOINT": "https://x"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "COSMOSDB_KEY")
	assert.Contains(t, err.Error(), "CONTAINER_ID")
}

func TestLoadFrom_Postgres(t *testing.T) {
	_, err := LoadFrom(envFrom(map[string]string{"STORE_DRIVER": "postgres"}))
	require.Error(t, err)

	cfg, err := LoadFrom(envFrom(map[string]string{"STORE_DRIVER": "postgres", "PG_DSN": "postgres://localhost/heat"}))
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/heat", cfg.Postgres.DSN)

	cfg, err = LoadFrom(envFrom(map[string]string{
		"STORE_DRIVER":   "postgres",
		"PG_DSN":         "postgres://localhost/heat",
		"DATABASE_URL":   "postgres://db/primary",
		"READINGS_TABLE": "sensor_readings",
	}))
	require.NoError(t, err)
	assert.Equal(t, "postgres://db/primary", cfg.Postgres.DSN)
	assert.Equal(t, "sensor_readings", cfg.Postgres.Table)
}

func TestLoadFrom_UnknownDriver(t *testing.T) {
	_, err := LoadFrom(envFrom(map[string]string{"STORE_DRIVER": "mongo"}))
	assert.Error(t, err)
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	values := cosmosEnv()
	values["PORT"] = "8088"
	values["DEVICE_ID"] = "demo-04"
	values["CORS_ALLOWED_ORIGINS"] = "https://a.example, https://b.example"
	values["LOG_FORMAT"] = "json"
	cfg, err := LoadFrom(envFrom(values))
	require.NoError(t, err)

	assert.Equal(t, ":8088", cfg.Addr())
	assert.Equal(t, "demo-04", cfg.DeviceID)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadFrom_YAMLOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: "9000"
device_id: plant-7
store:
  driver: memory
cors:
  allowed_origins: ["https://dash.example"]
log:
  level: debug
`), 0o600))

	values := cosmosEnv()
	values["CONFIG_FILE"] = path
	values["PORT"] = "8088"
	cfg, err := LoadFrom(envFrom(values))
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "plant-7", cfg.DeviceID)
	assert.Equal(t, DriverMemory, cfg.Store.Driver)
	assert.Equal(t, []string{"https://dash.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "telemetry", cfg.Cosmos.DatabaseID)
}

func TestLoadFrom_MissingYAML(t *testing.T) {
	values := cosmosEnv()
	values["CONFIG_FILE"] = filepath.Join(t.TempDir(), "absent.yaml")
	_, err := LoadFrom(envFrom(values))
	assert.Error(t, err)
}
