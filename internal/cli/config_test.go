package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/consolidated/pkg/errors"
)

func TestConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")

	dir, err := configDir()
	if err != nil {
		t.Fatalf("configDir() error: %v", err)
	}

	home, _ := os.UserHomeDir()
	if !strings.HasPrefix(dir, home) {
		t.Errorf("configDir() = %q, should be under home %q", dir, home)
	}
	if filepath.Base(dir) != appName {
		t.Errorf("configDir() = %q, should end with %q", dir, appName)
	}
}

func TestConfigDirXDG(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	dir, err := configDir()
	if err != nil {
		t.Fatalf("configDir() error: %v", err)
	}
	if want := filepath.Join(xdg, appName); dir != want {
		t.Errorf("configDir() = %q, want %q", dir, want)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg != defaultConfig() {
		t.Errorf("loadConfig() = %+v, want defaults %+v", cfg, defaultConfig())
	}
}

func TestLoadConfigFromXDG(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	dir := filepath.Join(xdg, appName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := "verbose = true\nformat = \"text\"\n\n[dot]\nrankdir = \"LR\"\n\n[cache]\nttl = \"1h\"\n"
	if err := os.WriteFile(filepath.Join(dir, configFile), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if !cfg.Verbose {
		t.Error("Verbose = false, want true")
	}
	if cfg.Format != "text" {
		t.Errorf("Format = %q, want %q", cfg.Format, "text")
	}
	if cfg.Cache.TTL.Duration != time.Hour {
		t.Errorf("Cache.TTL = %v, want 1h", cfg.Cache.TTL.Duration)
	}
	if cfg.Dot.RankDir != "LR" {
		t.Errorf("Dot.RankDir = %q, want %q", cfg.Dot.RankDir, "LR")
	}
	// Unset keys keep their defaults.
	if cfg.Dot.Format != defaultConfig().Dot.Format {
		t.Errorf("Dot.Format = %q, want default %q", cfg.Dot.Format, defaultConfig().Dot.Format)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	tests := []struct {
		name string
		path string
		code errors.Code
	}{
		{"missing explicit file", filepath.Join(dir, "nope.toml"), errors.ErrCodeFileNotFound},
		{"malformed", write("bad.toml", "format = "), errors.ErrCodeInvalidFormat},
		{"unknown input format", write("fmt.toml", `format = "yaml"`), errors.ErrCodeUnsupported},
		{"unknown output format", write("out.toml", "[dot]\nformat = \"gif\"\n"), errors.ErrCodeInvalidInput},
		{"unknown rankdir", write("dir.toml", "[dot]\nrankdir = \"UP\"\n"), errors.ErrCodeInvalidInput},
		{"bad ttl", write("ttl.toml", "[cache]\nttl = \"soon\"\n"), errors.ErrCodeInvalidFormat},
		{"negative ttl", write("neg.toml", "[cache]\nttl = \"-1h\"\n"), errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(tt.path)
			if !errors.Is(err, tt.code) {
				t.Errorf("loadConfig() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestConfigureVerbose(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(cfg, []byte("verbose = true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	org := writeFile(t, "org.toml", orgTOML)

	var logs strings.Builder
	c := New(&logs, LogInfo)
	root := c.RootCommand()
	root.SetOut(&strings.Builder{})
	root.SetArgs([]string{"--config", cfg, "children", org, "1"})
	if err := root.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if c.Logger.GetLevel() != LogDebug {
		t.Errorf("level = %v, want %v", c.Logger.GetLevel(), LogDebug)
	}
}
