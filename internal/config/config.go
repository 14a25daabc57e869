// ABOUTME: lifeos configuration management with backend selection.
// ABOUTME: Layers .env, config.json, and LIFEOS_* env vars via viper; opens storage.

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/harperreed/lifeos/internal/storage"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"

	defaultHTTPAddr = ":8001"
	defaultEnv      = "development"
)

// Config stores lifeos configuration.
type Config struct {
	// Backend selects the storage backend: "sqlite" (default) or "postgres".
	Backend string `json:"backend,omitempty" mapstructure:"backend"`

	// DataDir is where SQLite keeps lifeos.db.
	// Supports ~ expansion for home directory. Defaults to ~/.local/share/lifeos.
	DataDir string `json:"data_dir,omitempty" mapstructure:"data_dir"`

	// DatabaseURL is the postgres DSN. When empty, it is assembled from the
	// POSTGRE_* environment variables.
	DatabaseURL string `json:"database_url,omitempty" mapstructure:"database_url"`

	// Env picks the log format: "development" or "production".
	Env string `json:"env,omitempty" mapstructure:"env"`

	// HTTPAddr is the listen address for `lifeos serve`.
	HTTPAddr string `json:"http_addr,omitempty" mapstructure:"http_addr"`

	// DBPath forces a specific SQLite file, overriding Backend and DataDir.
	DBPath string `json:"-" mapstructure:"-"`
}

// GetBackend returns the configured backend, defaulting to "sqlite".
func (c *Config) GetBackend() string {
	if c.DBPath != "" || c.Backend == "" {
		return BackendSQLite
	}
	return strings.ToLower(c.Backend)
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetDBPath returns the SQLite file to open.
func (c *Config) GetDBPath() string {
	if c.DBPath != "" {
		return ExpandPath(c.DBPath)
	}
	if c.DataDir == "" {
		return storage.DefaultDBPath()
	}
	return filepath.Join(c.GetDataDir(), "lifeos.db")
}

// GetEnv returns the logging environment, defaulting to "development".
func (c *Config) GetEnv() string {
	if c.Env == "" {
		return defaultEnv
	}
	return c.Env
}

// GetHTTPAddr returns the HTTP listen address, defaulting to ":8001".
func (c *Config) GetHTTPAddr() string {
	if c.HTTPAddr == "" {
		return defaultHTTPAddr
	}
	return c.HTTPAddr
}

// GetDatabaseURL returns the postgres DSN, falling back to the discrete
// POSTGRE_USER, POSTGRE_PASS, POSTGRE_IP, POSTGRE_PORT and POSTGRE_DB_NAME
// variables.
func (c *Config) GetDatabaseURL() (string, error) {
	if c.DatabaseURL != "" {
		return c.DatabaseURL, nil
	}

	dbName := os.Getenv("POSTGRE_DB_NAME")
	if dbName == "" {
		return "", errors.New("postgres backend needs database_url or POSTGRE_DB_NAME")
	}

	host := os.Getenv("POSTGRE_IP")
	if host == "" {
		host = "127.0.0.1"
	}

	port := 5432
	if raw := os.Getenv("POSTGRE_PORT"); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil {
			return "", fmt.Errorf("invalid POSTGRE_PORT %q: %w", raw, err)
		}
		port = p
	}

	return storage.PostgresURL(os.Getenv("POSTGRE_USER"), os.Getenv("POSTGRE_PASS"), host, port, dbName), nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStorage creates a Repository implementation based on the configured backend.
func (c *Config) OpenStorage() (storage.Repository, error) {
	switch backend := c.GetBackend(); backend {
	case BackendSQLite:
		return storage.Open(c.GetDBPath())
	case BackendPostgres:
		dsn, err := c.GetDatabaseURL()
		if err != nil {
			return nil, err
		}
		return storage.OpenPostgres(dsn)
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "lifeos", "config.json")
}

// Load reads .env from the working directory, then the config file, then
// LIFEOS_* environment overrides. A missing .env or config file is not an error.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(GetConfigPath())
	v.SetConfigType("json")

	v.SetEnvPrefix("LIFEOS")
	for _, key := range []string{"backend", "data_dir", "database_url", "env", "http_addr"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
