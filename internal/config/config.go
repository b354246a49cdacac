package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config holds process-level settings. Values load in ascending precedence:
// built-in defaults, the YAML config file, then environment variables
// (a .env file in the working directory is read first when present).
type Config struct {
	DBPath string `yaml:"db_path"`
	Debug  bool   `yaml:"debug"`
}

// DefaultConfigPath is ~/.artplan/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".artplan", "config.yaml")
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "artplan.db"
	}
	return filepath.Join(home, ".artplan", "artplan.db")
}

// Load builds the effective configuration. A missing config file or .env is
// not an error; a malformed config file is.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DBPath: defaultDBPath(),
	}

	if path == "" {
		path = DefaultConfigPath()
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config file %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	if v := getEnv("ARTPLAN_DB", ""); v != "" {
		cfg.DBPath = v
	}
	cfg.Debug = getEnvAsBool("ARTPLAN_DEBUG", cfg.Debug)

	return cfg, nil
}

// NewLogger builds the process logger. Debug mode lowers the level and adds
// caller info; otherwise only warnings and errors reach the terminal so
// command output stays clean.
func NewLogger(cfg *Config) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	if cfg.Debug {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetReportCaller(true)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}
	return logger
}

func getEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvAsBool(name string, defaultVal bool) bool {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}
	return defaultVal
}
