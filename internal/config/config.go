package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/akyairhashvil/sleeplog/internal/util"
	"gopkg.in/yaml.v3"
)

type Config struct {
	DataDir  string `yaml:"data_dir"`
	Backend  string `yaml:"backend"`
	LogLevel string `yaml:"log_level"`
	Theme    string `yaml:"theme"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		DataDir:  util.DataDir(AppName),
		Backend:  BackendSQLite,
		LogLevel: "info",
		Theme:    "default",
	}
}

// DefaultPath is where Load looks for a config file when none is given.
func DefaultPath() string {
	return filepath.Join(util.ConfigDir(AppName), ConfigFileName)
}

// Load layers defaults, the optional YAML file at path and SLEEPLOG_*
// environment variables, then validates the result. A missing file is not
// an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("config: parse %s: %w", path, err)
			}
		case !errors.Is(err, os.ErrNotExist):
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
	}
	cfg.DataDir = getEnv("SLEEPLOG_DATA_DIR", cfg.DataDir)
	cfg.Backend = getEnv("SLEEPLOG_BACKEND", cfg.Backend)
	cfg.LogLevel = getEnv("SLEEPLOG_LOG_LEVEL", cfg.LogLevel)
	cfg.Theme = getEnv("SLEEPLOG_THEME", cfg.Theme)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DataDir) == "" {
		return errors.New("config: data_dir must not be empty")
	}
	if c.Backend != BackendSQLite && c.Backend != BackendJSON {
		return fmt.Errorf("config: backend must be one of: %s, %s", BackendSQLite, BackendJSON)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("config: log_level must be one of: debug, info, warn, error")
	}
	if c.Theme == "" {
		return errors.New("config: theme must not be empty")
	}
	return nil
}

// DBPath is the sqlite file inside the data dir.
func (c Config) DBPath() string { return filepath.Join(c.DataDir, DBFileName) }

// JSONPath is the flat-file store inside the data dir.
func (c Config) JSONPath() string { return filepath.Join(c.DataDir, JSONFileName) }

// LogPath is the log file inside the data dir.
func (c Config) LogPath() string { return filepath.Join(c.DataDir, LogFileName) }

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
