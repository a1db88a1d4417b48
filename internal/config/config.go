// Package config assembles the application configuration from TOML files
// and environment variable overrides. Resolution order: built-in defaults,
// base config file, overlay file, then DRAYMAN_-prefixed environment
// variables.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/freightdock/drayman/internal/classifier"
	"github.com/freightdock/drayman/pkg/database"
	"github.com/freightdock/drayman/pkg/storage"
)

// Config is the root application configuration.
type Config struct {
	Server     Server            `toml:"server"`
	API        API               `toml:"api"`
	Database   database.Config   `toml:"database"`
	Storage    storage.Config    `toml:"storage"`
	Classifier classifier.Config `toml:"classifier"`
}

// Load reads the base config file, applies an optional overlay, and
// finalizes every section. Missing files are tolerated; environment
// variables alone can carry a full configuration.
func Load(path, overlayPath string) (*Config, error) {
	var cfg Config

	if err := readFile(path, &cfg); err != nil {
		return nil, err
	}

	if overlayPath != "" {
		var overlay Config
		if err := readFile(overlayPath, &overlay); err != nil {
			return nil, err
		}
		cfg.merge(&overlay)
	}

	if err := cfg.Finalize(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Finalize applies defaults, environment overrides, and validation to
// every configuration section.
func (c *Config) Finalize() error {
	if err := c.Server.Finalize(&ServerEnv{
		Host:            "DRAYMAN_SERVER_HOST",
		Port:            "DRAYMAN_SERVER_PORT",
		ReadTimeout:     "DRAYMAN_SERVER_READ_TIMEOUT",
		WriteTimeout:    "DRAYMAN_SERVER_WRITE_TIMEOUT",
		IdleTimeout:     "DRAYMAN_SERVER_IDLE_TIMEOUT",
		ShutdownTimeout: "DRAYMAN_SERVER_SHUTDOWN_TIMEOUT",
	}); err != nil {
		return fmt.Errorf("server config: %w", err)
	}

	if err := c.API.Finalize(); err != nil {
		return fmt.Errorf("api config: %w", err)
	}

	if err := c.Database.Finalize(&database.Env{
		Host:            "DRAYMAN_DB_HOST",
		Port:            "DRAYMAN_DB_PORT",
		Name:            "DRAYMAN_DB_NAME",
		User:            "DRAYMAN_DB_USER",
		Password:        "DRAYMAN_DB_PASSWORD",
		SSLMode:         "DRAYMAN_DB_SSL_MODE",
		MaxOpenConns:    "DRAYMAN_DB_MAX_OPEN_CONNS",
		MaxIdleConns:    "DRAYMAN_DB_MAX_IDLE_CONNS",
		ConnMaxLifetime: "DRAYMAN_DB_CONN_MAX_LIFETIME",
		ConnTimeout:     "DRAYMAN_DB_CONN_TIMEOUT",
	}); err != nil {
		return fmt.Errorf("database config: %w", err)
	}

	if err := c.Storage.Finalize(&storage.Env{
		ContainerName:    "DRAYMAN_STORAGE_CONTAINER",
		ConnectionString: "DRAYMAN_STORAGE_CONNECTION_STRING",
		MaxListSize:      "DRAYMAN_STORAGE_MAX_LIST_SIZE",
	}); err != nil {
		return fmt.Errorf("storage config: %w", err)
	}

	if err := c.Classifier.Finalize(&classifier.Env{
		BaseURL: "DRAYMAN_CLASSIFIER_BASE_URL",
		APIKey:  "DRAYMAN_CLASSIFIER_API_KEY",
		Model:   "DRAYMAN_CLASSIFIER_MODEL",
		Timeout: "DRAYMAN_CLASSIFIER_TIMEOUT",
	}); err != nil {
		return fmt.Errorf("classifier config: %w", err)
	}

	return nil
}

func (c *Config) merge(overlay *Config) {
	c.Server.Merge(&overlay.Server)
	c.API.Merge(&overlay.API)
	c.Database.Merge(&overlay.Database)
	c.Storage.Merge(&overlay.Storage)
	c.Classifier.Merge(&overlay.Classifier)
}

func readFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	return nil
}
