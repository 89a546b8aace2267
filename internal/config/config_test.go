package config

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func TestLoadProjectConfig(t *testing.T) {
	t.Run("valid config loads", func(t *testing.T) {
		cfg, err := LoadProjectConfig(filepath.Join("testdata", "valid_config.yaml"))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if cfg.Project != "narragansett-guide" {
			t.Fatalf("expected project name, got %q", cfg.Project)
		}
		if cfg.Database.DSN != "sqlite://./testdata/guide.db" {
			t.Fatalf("unexpected dsn %q", cfg.Database.DSN)
		}
		if len(cfg.Server.AllowedOrigins) != 2 {
			t.Fatalf("expected two origins, got %#v", cfg.Server.AllowedOrigins)
		}
	})

	t.Run("defaults applied", func(t *testing.T) {
		path := writeTempConfig(t, "project: test\nversion: 1\n")
		cfg, err := LoadProjectConfig(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if cfg.Database.DSN != defaultDSN {
			t.Fatalf("expected default dsn, got %q", cfg.Database.DSN)
		}
		if cfg.Log.Level != "info" || cfg.Log.Format != "console" {
			t.Fatalf("unexpected log defaults: %#v", cfg.Log)
		}
		if cfg.Server.Addr != ":8080" {
			t.Fatalf("expected default addr, got %q", cfg.Server.Addr)
		}
	})

	t.Run("missing project name", func(t *testing.T) {
		path := writeTempConfig(t, "version: 1\ndatabase:\n  dsn: memory://\n")
		if _, err := LoadProjectConfig(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("unsupported version", func(t *testing.T) {
		path := writeTempConfig(t, "project: test\nversion: 2\n")
		if _, err := LoadProjectConfig(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("dsn without scheme", func(t *testing.T) {
		path := writeTempConfig(t, "project: test\nversion: 1\ndatabase:\n  dsn: ./guide.db\n")
		if _, err := LoadProjectConfig(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("unknown dsn scheme", func(t *testing.T) {
		path := writeTempConfig(t, "project: test\nversion: 1\ndatabase:\n  dsn: mysql://localhost/guide\n")
		if _, err := LoadProjectConfig(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("unknown log format", func(t *testing.T) {
		path := writeTempConfig(t, "project: test\nversion: 1\nlog:\n  format: xml\n")
		if _, err := LoadProjectConfig(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("duplicate origins", func(t *testing.T) {
		path := writeTempConfig(t, "project: test\nversion: 1\nserver:\n  allowed_origins: [\"http://a\", \"HTTP://A\"]\n")
		if _, err := LoadProjectConfig(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("file not found", func(t *testing.T) {
		if _, err := LoadProjectConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeTempConfig(t, "project: [\n")
		if _, err := LoadProjectConfig(path); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestLoadOrDefault(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if cfg.Database.DSN != defaultDSN {
			t.Fatalf("expected default dsn, got %s", cfg.Database.DSN)
		}
		if cfg.Server.Addr != defaultAddr {
			t.Fatalf("expected default addr, got %s", cfg.Server.Addr)
		}
	})

	t.Run("invalid file still fails", func(t *testing.T) {
		path := writeTempConfig(t, "project: x\nversion: 2\n")
		if _, err := LoadOrDefault(path); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestInitLogger(t *testing.T) {
	t.Cleanup(func() { zap.ReplaceGlobals(zap.NewNop()) })

	t.Run("console debug", func(t *testing.T) {
		if err := InitLogger(LogConfig{Level: "debug", Format: "console"}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !zap.L().Core().Enabled(zap.DebugLevel) {
			t.Fatalf("expected debug level enabled")
		}
	})

	t.Run("json warn", func(t *testing.T) {
		if err := InitLogger(LogConfig{Level: "warn", Format: "json"}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if zap.L().Core().Enabled(zap.InfoLevel) {
			t.Fatalf("expected info level disabled")
		}
	})

	t.Run("bad level", func(t *testing.T) {
		if err := InitLogger(LogConfig{Level: "loud", Format: "json"}); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}
	return path
}
