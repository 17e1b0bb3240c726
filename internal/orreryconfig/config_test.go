package orreryconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

func resetViper() {
	viper.Reset()
}

func TestLoadDefaults(t *testing.T) {
	resetViper()
	dir := t.TempDir()
	old, _ := os.Getwd()
	defer os.Chdir(old)
	os.Chdir(dir)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.RefreshMillis != 1000 {
		t.Errorf("RefreshMillis = %d, want 1000", cfg.RefreshMillis)
	}
}

func TestLoadFromExplicitFile(t *testing.T) {
	resetViper()
	dir := t.TempDir()
	path := filepath.Join(dir, "orrery.toml")
	content := "ephemeris_path = \"/data/de440.bin\"\nlog_level = \"debug\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.EphemerisPath != "/data/de440.bin" {
		t.Errorf("EphemerisPath = %q, want %q", cfg.EphemerisPath, "/data/de440.bin")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
}

func TestDumpTOMLRoundTrips(t *testing.T) {
	cfg := Config{
		EphemerisPath: "/data/de440.bin",
		CatalogPath:   "/data/stars.toml",
		LogLevel:      "debug",
		RefreshMillis: 500,
	}

	data, err := DumpTOML(cfg)
	if err != nil {
		t.Fatalf("DumpTOML: %v", err)
	}
	if !strings.Contains(string(data), "ephemeris_path") {
		t.Errorf("DumpTOML output missing ephemeris_path key:\n%s", data)
	}

	var got Config
	if err := toml.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal dumped TOML: %v", err)
	}
	if got != cfg {
		t.Errorf("DumpTOML round trip: got %+v, want %+v", got, cfg)
	}
}
