package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"inventoryviewer/internal/domain"

	"go.uber.org/zap/zapcore"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Version != 1 {
		t.Errorf("Version = %d, want 1", cfg.Version)
	}
	if cfg.Server.Addr != DefaultAddr {
		t.Errorf("Server.Addr = %s, want %s", cfg.Server.Addr, DefaultAddr)
	}
	if cfg.Server.BaseURL != DefaultBaseURL {
		t.Errorf("Server.BaseURL = %s, want %s", cfg.Server.BaseURL, DefaultBaseURL)
	}
	if cfg.Database.Path == "" {
		t.Error("Database.Path should not be empty")
	}
	if cfg.Snapshot.Debounce.Duration() != 500*time.Millisecond {
		t.Errorf("Snapshot.Debounce = %s, want 500ms", cfg.Snapshot.Debounce.Duration())
	}
	if cfg.Fields.YearIntroduced != domain.CustomFieldYearIntroduced {
		t.Errorf("Fields.YearIntroduced = %s", cfg.Fields.YearIntroduced)
	}
	if cfg.Fields.MeasurementPoint != domain.CustomFieldMeasurementPoint {
		t.Errorf("Fields.MeasurementPoint = %s", cfg.Fields.MeasurementPoint)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"/plugins/inventory-viewer", "/plugins/inventory-viewer"},
		{"/plugins/inventory-viewer/", "/plugins/inventory-viewer"},
		{"plugins/inventory-viewer", "/plugins/inventory-viewer"},
		{"/", ""},
		{"", ""},
		{"  /inv/ ", "/inv"},
	}

	for _, tt := range tests {
		if got := NormalizeBaseURL(tt.input); got != tt.want {
			t.Errorf("NormalizeBaseURL(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Log.Level = "loud"
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should reject an unknown log level")
	}

	cfg = DefaultConfig()
	cfg.Snapshot.Watch = true
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should reject watch without a snapshot path")
	}

	cfg.Snapshot.Path = "inventory.yaml"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
}

func TestLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		got, err := LogConfig{Level: tt.input}.ZapLevel()
		if err != nil {
			t.Fatalf("ZapLevel(%q) error: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ZapLevel(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}

	logger, err := LogConfig{Level: "debug", Development: true}.BuildLogger()
	if err != nil {
		t.Fatalf("BuildLogger() error: %v", err)
	}
	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug logger should enable debug level")
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Server.Addr = "127.0.0.1:9000"
	cfg.Server.BaseURL = "/inventory"
	cfg.Snapshot.Path = "/srv/inventory.yaml"
	cfg.Snapshot.Watch = true
	cfg.Snapshot.Debounce = Duration(2 * time.Second)
	cfg.Fields.MeasurementPoint = "measurement_point"

	if err := cfg.Save(configPath); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, path, err := LoadFromPath(configPath)
	if err != nil {
		t.Fatalf("LoadFromPath() error: %v", err)
	}
	if path != configPath {
		t.Errorf("path = %s, want %s", path, configPath)
	}

	if loaded.Server.Addr != "127.0.0.1:9000" {
		t.Errorf("Server.Addr = %s, want 127.0.0.1:9000", loaded.Server.Addr)
	}
	if loaded.Server.BaseURL != "/inventory" {
		t.Errorf("Server.BaseURL = %s, want /inventory", loaded.Server.BaseURL)
	}
	if !loaded.Snapshot.Watch || loaded.Snapshot.Path != "/srv/inventory.yaml" {
		t.Errorf("Snapshot = %+v", loaded.Snapshot)
	}
	if loaded.Snapshot.Debounce.Duration() != 2*time.Second {
		t.Errorf("Snapshot.Debounce = %s, want 2s", loaded.Snapshot.Debounce.Duration())
	}
	if loaded.Fields.MeasurementPoint != "measurement_point" {
		t.Errorf("Fields.MeasurementPoint = %s", loaded.Fields.MeasurementPoint)
	}
	if loaded.Fields.YearIntroduced != domain.CustomFieldYearIntroduced {
		t.Errorf("Fields.YearIntroduced = %s", loaded.Fields.YearIntroduced)
	}
}

func TestLoadFromPathPartial(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	data := "server:\n  base_url: /x/\n  read_timeout: 3s\n"
	if err := os.WriteFile(configPath, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, _, err := LoadFromPath(configPath)
	if err != nil {
		t.Fatalf("LoadFromPath() error: %v", err)
	}
	if cfg.Server.BaseURL != "/x" {
		t.Errorf("Server.BaseURL = %s, want /x", cfg.Server.BaseURL)
	}
	if cfg.Server.ReadTimeout.Duration() != 3*time.Second {
		t.Errorf("Server.ReadTimeout = %s, want 3s", cfg.Server.ReadTimeout.Duration())
	}
	if cfg.Server.Addr != DefaultAddr {
		t.Errorf("Server.Addr = %s, want default", cfg.Server.Addr)
	}
}

func TestLoadFromPathErrors(t *testing.T) {
	tmpDir := t.TempDir()

	if _, _, err := LoadFromPath(filepath.Join(tmpDir, "missing.yaml")); err == nil {
		t.Error("LoadFromPath() should fail for a missing file")
	}

	bad := filepath.Join(tmpDir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("server:\n  read_timeout: soon\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := LoadFromPath(bad); err == nil {
		t.Error("LoadFromPath() should fail for an invalid duration")
	}
}

func TestFindConfigPath(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ConfigFileName)

	cfg := DefaultConfig()
	if err := cfg.Save(configPath); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	t.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	t.Setenv("HOME", filepath.Join(tmpDir, "home"))

	// Should find config in working directory
	found := FindConfigPath()
	if filepath.Base(found) != ConfigFileName {
		t.Errorf("FindConfigPath() = %q, want working directory config", found)
	}

	// Explicit path doesn't exist, should fall back
	t.Setenv(EnvConfigPath, "/nonexistent/path.yaml")
	found = FindConfigPath()
	if filepath.Base(found) != ConfigFileName {
		t.Errorf("FindConfigPath() = %q, should fall back when env path doesn't exist", found)
	}

	// Explicit path that exists wins
	explicit := filepath.Join(tmpDir, "explicit.yaml")
	if err := cfg.Save(explicit); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	t.Setenv(EnvConfigPath, explicit)
	if found = FindConfigPath(); found != explicit {
		t.Errorf("FindConfigPath() = %q, want %q", found, explicit)
	}
}

func TestSearchPathsOrder(t *testing.T) {
	t.Setenv(EnvConfigPath, "/explicit.yaml")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	t.Setenv("HOME", "/home/user")

	paths := SearchPaths()
	want := []string{
		"/explicit.yaml",
		"", // working directory, absolute
		"/xdg/inventory-viewer/config.yaml",
		"/home/user/.config/inventory-viewer/config.yaml",
		"/etc/inventory-viewer/config.yaml",
	}
	if len(paths) != len(want) {
		t.Fatalf("SearchPaths() = %v, want %d entries", paths, len(want))
	}
	for i, w := range want {
		if w == "" {
			if filepath.Base(paths[i]) != ConfigFileName {
				t.Errorf("paths[%d] = %s, want %s", i, paths[i], ConfigFileName)
			}
			continue
		}
		if paths[i] != w {
			t.Errorf("paths[%d] = %s, want %s", i, paths[i], w)
		}
	}
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	if got := DefaultConfigPath(); got != "/xdg/inventory-viewer/config.yaml" {
		t.Errorf("DefaultConfigPath() = %s", got)
	}
}

func TestDuration(t *testing.T) {
	d := Duration(5 * time.Minute)

	if d.Duration() != 5*time.Minute {
		t.Errorf("Duration() = %s, want 5m", d.Duration())
	}

	// Test YAML marshaling
	marshaled, err := d.MarshalYAML()
	if err != nil {
		t.Fatalf("MarshalYAML() error: %v", err)
	}
	if marshaled != "5m0s" {
		t.Errorf("MarshalYAML() = %v, want 5m0s", marshaled)
	}
}
