package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"resorg/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved != filepath.Join(tempHome, ".config", "resorg", "config.toml") {
		t.Fatalf("unexpected resolved path %q", resolved)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantLock := filepath.Join(tempHome, ".local", "state", "resorg")
	if cfg.Paths.LockDir != wantLock {
		t.Fatalf("unexpected lock dir: got %q want %q", cfg.Paths.LockDir, wantLock)
	}
	if cfg.Paths.LogDir != "" || cfg.LogFile() != "" {
		t.Fatalf("expected file logging disabled by default, got %q", cfg.Paths.LogDir)
	}
	if cfg.Placement.OnExisting != config.OnExistingOverwrite {
		t.Fatalf("expected overwrite policy by default, got %q", cfg.Placement.OnExisting)
	}
	if cfg.Placement.AllowEmptyName {
		t.Fatal("expected empty names rejected by default")
	}
	if !cfg.Placement.PreserveTimes {
		t.Fatal("expected preserve_times enabled by default")
	}
	if cfg.Placement.KeepGoing || cfg.Placement.LockDestination || cfg.Placement.VerifyCopy {
		t.Fatalf("unexpected placement defaults: %+v", cfg.Placement)
	}
	if cfg.Summary.Format != config.SummaryPlain {
		t.Fatalf("unexpected summary format %q", cfg.Summary.Format)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "resorg.toml")

	type payload struct {
		Paths struct {
			LogDir string `toml:"log_dir"`
		} `toml:"paths"`
		Placement struct {
			OnExisting string `toml:"on_existing"`
			KeepGoing  bool   `toml:"keep_going"`
		} `toml:"placement"`
		Summary struct {
			Format string `toml:"format"`
		} `toml:"summary"`
		Logging struct {
			Level string `toml:"level"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Paths.LogDir = filepath.Join(tempDir, "logs")
	custom.Placement.OnExisting = " Refuse "
	custom.Placement.KeepGoing = true
	custom.Summary.Format = "TABLE"
	custom.Logging.Level = "debug"

	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("expected custom config to be used, got %q exists=%v", resolved, exists)
	}
	if cfg.Placement.OnExisting != config.OnExistingRefuse {
		t.Fatalf("expected normalized refuse policy, got %q", cfg.Placement.OnExisting)
	}
	if !cfg.Placement.KeepGoing {
		t.Fatal("expected keep_going from file")
	}
	if cfg.Summary.Format != config.SummaryTable {
		t.Fatalf("expected table summary, got %q", cfg.Summary.Format)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected debug level, got %q", cfg.Logging.Level)
	}
	if cfg.LogFile() != filepath.Join(tempDir, "logs", "resorg.log") {
		t.Fatalf("unexpected log file %q", cfg.LogFile())
	}
	if !cfg.Placement.PreserveTimes {
		t.Fatal("expected defaults to survive for unset keys")
	}
}

func TestLoadMissingCustomPathUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")
	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists || resolved != path {
		t.Fatalf("expected absent custom path, got %q exists=%v", resolved, exists)
	}
	if cfg.Placement.OnExisting != config.OnExistingOverwrite {
		t.Fatalf("expected default policy, got %q", cfg.Placement.OnExisting)
	}
}

func TestLoadProjectConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	workDir := t.TempDir()
	t.Chdir(workDir)
	if err := os.WriteFile("resorg.toml", []byte("[summary]\nformat = \"table\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || filepath.Base(resolved) != "resorg.toml" {
		t.Fatalf("expected project config, got %q exists=%v", resolved, exists)
	}
	if cfg.Summary.Format != config.SummaryTable {
		t.Fatalf("expected table summary, got %q", cfg.Summary.Format)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"policy", "[placement]\non_existing = \"merge\"\n", "placement.on_existing"},
		{"summary", "[summary]\nformat = \"xml\"\n", "summary.format"},
		{"log format", "[logging]\nformat = \"yaml\"\n", "logging.format"},
		{"log level", "[logging]\nlevel = \"trace\"\n", "logging.level"},
		{"unknown key", "[placement]\nmystery = true\n", "parse config"},
		{"syntax", "[placement\n", "parse config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "resorg.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, _, _, err := config.Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected %q in error, got %v", tt.want, err)
			}
		})
	}
}

func TestCreateSampleLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	t.Setenv("HOME", t.TempDir())
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("sample config should load: %v", err)
	}
	if !exists {
		t.Fatal("expected sample to exist")
	}
	def := config.Default()
	if cfg.Placement.OnExisting != def.Placement.OnExisting || cfg.Summary.Format != def.Summary.Format {
		t.Fatalf("sample should match defaults, got %+v", cfg)
	}
}

func TestLockPath(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LockDir = "/var/lock/resorg"
	if got := cfg.LockPath("abc"); got != filepath.Join("/var/lock/resorg", "abc.lock") {
		t.Fatalf("unexpected lock path %q", got)
	}
}
