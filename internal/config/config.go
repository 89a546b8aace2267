package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPath     = "fishguide.yaml"
	defaultDSN      = "sqlite://./fishguide.db"
	defaultLogLevel = "info"
	defaultFormat   = "console"
	defaultAddr     = ":8080"
)

type ProjectConfig struct {
	Project   string          `yaml:"project"`
	Version   int             `yaml:"version"`
	Database  DatabaseConfig  `yaml:"database"`
	Knowledge KnowledgeConfig `yaml:"knowledge"`
	Log       LogConfig       `yaml:"log"`
	Server    ServerConfig    `yaml:"server"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

// KnowledgeConfig points at an optional YAML file replacing the embedded
// knowledge base.
type KnowledgeConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

func LoadProjectConfig(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	applyDefaults(&cfg)

	if err := validateProjectConfig(&cfg); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	return &cfg, nil
}

// LoadOrDefault loads path, falling back to a default configuration when
// the file does not exist.
func LoadOrDefault(path string) (*ProjectConfig, error) {
	cfg, err := LoadProjectConfig(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = &ProjectConfig{Project: "fishguide", Version: 1}
		applyDefaults(cfg)
		return cfg, nil
	}
	return cfg, err
}

func applyDefaults(cfg *ProjectConfig) {
	if strings.TrimSpace(cfg.Database.DSN) == "" {
		cfg.Database.DSN = defaultDSN
	}
	if strings.TrimSpace(cfg.Log.Level) == "" {
		cfg.Log.Level = defaultLogLevel
	}
	if strings.TrimSpace(cfg.Log.Format) == "" {
		cfg.Log.Format = defaultFormat
	}
	if strings.TrimSpace(cfg.Server.Addr) == "" {
		cfg.Server.Addr = defaultAddr
	}
}

func validateProjectConfig(cfg *ProjectConfig) error {
	if strings.TrimSpace(cfg.Project) == "" {
		return fmt.Errorf("project name is required")
	}
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported version: %d", cfg.Version)
	}

	scheme, _, ok := strings.Cut(cfg.Database.DSN, "://")
	if !ok {
		return fmt.Errorf("database dsn must include a scheme: %s", cfg.Database.DSN)
	}
	switch scheme {
	case "sqlite", "postgres", "postgresql", "memory":
	default:
		return fmt.Errorf("unsupported database scheme: %s", scheme)
	}

	switch strings.ToLower(cfg.Log.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("unsupported log format: %s", cfg.Log.Format)
	}

	seen := make(map[string]struct{})
	for i, origin := range cfg.Server.AllowedOrigins {
		if strings.TrimSpace(origin) == "" {
			return fmt.Errorf("allowed origin %d is empty", i)
		}
		key := strings.ToLower(origin)
		if _, exists := seen[key]; exists {
			return fmt.Errorf("duplicate allowed origin: %s", origin)
		}
		seen[key] = struct{}{}
	}

	return nil
}
