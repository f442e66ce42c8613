package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Store drivers.
const (
	DriverCosmos   = "cosmos"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

const (
	defaultPort     = "3089"
	defaultDeviceID = "hainetsukaishu-demo03"
)

// Config is the process configuration, loaded once at startup.
type Config struct {
	Port     string         `yaml:"port"`
	DeviceID string         `yaml:"device_id"`
	Store    StoreConfig    `yaml:"store"`
	Cosmos   CosmosConfig   `yaml:"cosmos"`
	Postgres PostgresConfig `yaml:"postgres"`
	CORS     CORSConfig     `yaml:"cors"`
	Log      LogConfig      `yaml:"log"`
}

// StoreConfig selects the reading store.
type StoreConfig struct {
	Driver string `yaml:"driver"`
}

// CosmosConfig holds Cosmos DB connection parameters.
type CosmosConfig struct {
	Endpoint     string `yaml:"endpoint"`
	Key          string `yaml:"key"`
	DatabaseID   string `yaml:"database_id"`
	ContainerID  string `yaml:"container_id"`
	PartitionKey string `yaml:"partition_key"`
}

// PostgresConfig holds Postgres connection parameters.
type PostgresConfig struct {
	DSN   string `yaml:"dsn"`
	Table string `yaml:"table"`
}

// CORSConfig lists allowed origins.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Addr returns the listen address.
func (c Config) Addr() string {
	return ":" + c.Port
}

// Load reads .env (if present), the environment and the optional YAML file
// named by CONFIG_FILE, then validates the result.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("config: load .env: %w", err)
	}
	return LoadFrom(os.Getenv)
}

// LoadFrom builds the config from getenv without touching .env.
func LoadFrom(getenv func(string) string) (Config, error) {
	env := func(key, fallback string) string {
		if value := getenv(key); value != "" {
			return value
		}
		return fallback
	}

	cfg := Config{
		Port:     env("PORT", defaultPort),
		DeviceID: env("DEVICE_ID", defaultDeviceID),
		Store:    StoreConfig{Driver: env("STORE_DRIVER", DriverCosmos)},
		Cosmos: CosmosConfig{
			Endpoint:     getenv("COSMOSDB_ENDPOINT"),
			Key:          getenv("COSMOSDB_KEY"),
			DatabaseID:   getenv("DATABASE_ID"),
			ContainerID:  getenv("CONTAINER_ID"),
			PartitionKey: getenv("COSMOSDB_PARTITION_KEY"),
		},
		Postgres: PostgresConfig{
			DSN:   env("DATABASE_URL", getenv("PG_DSN")),
			Table: getenv("READINGS_TABLE"),
		},
		CORS: CORSConfig{AllowedOrigins: splitCSV(env("CORS_ALLOWED_ORIGINS", "*"))},
		Log: LogConfig{
			Level:  env("LOG_LEVEL", "info"),
			Format: env("LOG_FORMAT", "text"),
		},
	}

	if path := getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
		var file Config
		if err := yaml.Unmarshal(data, &file); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
		cfg = merge(cfg, file)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the selected driver has its connection parameters.
func (c Config) Validate() error {
	if c.Port == "" {
		return errors.New("config: port is required")
	}
	if c.DeviceID == "" {
		return errors.New("config: device id is required")
	}
	switch c.Store.Driver {
	case DriverCosmos:
		var missing []string
		if c.Cosmos.Endpoint == "" {
			missing = append(missing, "COSMOSDB_ENDPOINT")
		}
		if c.Cosmos.Key == "" {
			missing = append(missing, "COSMOSDB_KEY")
		}
		if c.Cosmos.DatabaseID == "" {
			missing = append(missing, "DATABASE_ID")
		}
		if c.Cosmos.ContainerID == "" {
			missing = append(missing, "CONTAINER_ID")
		}
		if len(missing) > 0 {
			return fmt.Errorf("config: %s required for cosmos store", strings.Join(missing, ", "))
		}
	case DriverPostgres:
		if c.Postgres.DSN == "" {
			return errors.New("config: DATABASE_URL or PG_DSN required for postgres store")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("config: unknown store driver %q", c.Store.Driver)
	}
	return nil
}

func merge(base, override Config) Config {
	if override.Port != "" {
		base.Port = override.Port
	}
	if override.DeviceID != "" {
		base.DeviceID = override.DeviceID
	}
	if override.Store.Driver != "" {
		base.Store.Driver = override.Store.Driver
	}
	if override.Cosmos.Endpoint != "" {
		base.Cosmos.Endpoint = override.Cosmos.Endpoint
	}
	if override.Cosmos.Key != "" {
		base.Cosmos.Key = override.Cosmos.Key
	}
	if override.Cosmos.DatabaseID != "" {
		base.Cosmos.DatabaseID = override.Cosmos.DatabaseID
	}
	if override.Cosmos.ContainerID != "" {
		base.Cosmos.ContainerID = override.Cosmos.ContainerID
	}
	if override.Cosmos.PartitionKey != "" {
		base.Cosmos.PartitionKey = override.Cosmos.PartitionKey
	}
	if override.Postgres.DSN != "" {
		base.Postgres.DSN = override.Postgres.DSN
	}
	if override.Postgres.Table != "" {
		base.Postgres.Table = override.Postgres.Table
	}
	if len(override.CORS.AllowedOrigins) > 0 {
		base.CORS.AllowedOrigins = override.CORS.AllowedOrigins
	}
	if override.Log.Level != "" {
		base.Log.Level = override.Log.Level
	}
	if override.Log.Format != "" {
		base.Log.Format = override.Log.Format
	}
	return base
}

func splitCSV(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	var result []string
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			result = append(result, part)
		}
	}
	return result
}
