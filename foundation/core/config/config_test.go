// File: config_test.go
// Title: Configuration Module Tests
// Description: Tests for TOML/YAML parsing, defaults, environment overrides
//              and file discovery.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-09-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial test implementation
// - 2026-09-14 v0.2.0: Calendar keys, nested defaults and discovery

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	mdwerror "github.com/msto63/gauss/foundation/core/error"
)

const tomlContent = `
[calendar]
weekends = ["FRIDAY", "SATURDAY"]
zone = "Asia/Jerusalem"
holiday_years = 3

[log]
level = "debug"
verbose = true
`

const yamlContent = `
calendar:
  weekends:
    - SUNDAY
  zone: Europe/Berlin
log:
  format: logfmt
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("load TOML config", func(t *testing.T) {
		cfg, err := Load(writeFile(t, dir, "gauss.toml", tomlContent))
		if err != nil {
			t.Fatalf("Load() error: %v", err)
		}

		if cfg.Format() != FormatTOML {
			t.Errorf("Format() = %v, want toml", cfg.Format())
		}
		if got := cfg.GetString("calendar.zone"); got != "Asia/Jerusalem" {
			t.Errorf("GetString(calendar.zone) = %q", got)
		}
		if got := cfg.GetInt("calendar.holiday_years"); got != 3 {
			t.Errorf("GetInt(calendar.holiday_years) = %d, want 3", got)
		}
		if !cfg.GetBool("log.verbose") {
			t.Error("GetBool(log.verbose) = false, want true")
		}
		if diff := cmp.Diff([]string{"FRIDAY", "SATURDAY"}, cfg.GetStringSlice("calendar.weekends")); diff != "" {
			t.Errorf("GetStringSlice(calendar.weekends) mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("load YAML config", func(t *testing.T) {
		cfg, err := Load(writeFile(t, dir, "gauss.yaml", yamlContent))
		if err != nil {
			t.Fatalf("Load() error: %v", err)
		}

		if cfg.Format() != FormatYAML {
			t.Errorf("Format() = %v, want yaml", cfg.Format())
		}
		if got := cfg.GetString("log.format"); got != "logfmt" {
			t.Errorf("GetString(log.format) = %q", got)
		}
		if diff := cmp.Diff([]string{"SUNDAY"}, cfg.GetStringSlice("calendar.weekends")); diff != "" {
			t.Errorf("GetStringSlice(calendar.weekends) mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "absent.toml"))
		if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
			t.Errorf("Load(absent) error = %v, want NOT_FOUND", err)
		}
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := Load("  ")
		if !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
			t.Errorf("Load(blank) error = %v, want INVALID_INPUT", err)
		}
	})

	t.Run("broken TOML", func(t *testing.T) {
		_, err := Load(writeFile(t, dir, "broken.toml", "[calendar\nzone = "))
		if !mdwerror.HasCode(err, mdwerror.CodeConfigError) {
			t.Errorf("Load(broken) error = %v, want CONFIG_ERROR", err)
		}
	})
}

func TestDefaults(t *testing.T) {
	dir := t.TempDir()
	defaults := map[string]interface{}{
		"calendar": map[string]interface{}{
			"holiday_years": 5,
			"zone":          "UTC",
		},
		"log": map[string]interface{}{"level": "info"},
	}

	cfg, err := LoadWithOptions(writeFile(t, dir, "gauss.yml", yamlContent), LoadOptions{Defaults: defaults})
	if err != nil {
		t.Fatalf("LoadWithOptions() error: %v", err)
	}

	testCases := []struct {
		key  string
		want string
	}{
		{"calendar.zone", "Europe/Berlin"},
		{"calendar.holiday_years", "5"},
		{"log.level", "info"},
		{"log.format", "logfmt"},
	}

	for _, tc := range testCases {
		t.Run(tc.key, func(t *testing.T) {
			if got := cfg.GetString(tc.key); got != tc.want {
				t.Errorf("GetString(%s) = %q, want %q", tc.key, got, tc.want)
			}
		})
	}
}

func TestEnvironmentOverride(t *testing.T) {
	t.Setenv("GAUSS_CALENDAR_ZONE", "America/New_York")
	t.Setenv("GAUSS_CALENDAR_WEEKENDS", "friday, saturday")
	t.Setenv("GAUSS_CALENDAR_HOLIDAY_YEARS", "7")

	cfg, err := LoadFromString(tomlContent, FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString() error: %v", err)
	}

	if got := cfg.GetString("calendar.zone"); got != "Asia/Jerusalem" {
		t.Errorf("without prefix env must be ignored, got %q", got)
	}

	cfg = New("gauss", nil)
	if got := cfg.GetString("calendar.zone"); got != "America/New_York" {
		t.Errorf("GetString(calendar.zone) = %q", got)
	}
	if got := cfg.GetInt("calendar.holiday_years", 5); got != 7 {
		t.Errorf("GetInt(calendar.holiday_years) = %d, want 7", got)
	}
	if diff := cmp.Diff([]string{"friday", "saturday"}, cfg.GetStringSlice("calendar.weekends")); diff != "" {
		t.Errorf("GetStringSlice() mismatch (-want +got):\n%s", diff)
	}
	if !cfg.Has("calendar.zone") {
		t.Error("Has(calendar.zone) = false, want true")
	}
}

func TestGettersWithDefaults(t *testing.T) {
	cfg := New("", nil)

	if got := cfg.GetString("missing", "fallback"); got != "fallback" {
		t.Errorf("GetString() = %q", got)
	}
	if got := cfg.GetInt("missing", 9); got != 9 {
		t.Errorf("GetInt() = %d", got)
	}
	if got := cfg.GetBool("missing", true); !got {
		t.Error("GetBool() = false")
	}
	if got := cfg.GetStringSlice("missing"); got != nil {
		t.Errorf("GetStringSlice() = %v, want nil", got)
	}

	cfg.Set("calendar.zone", "Europe/Paris")
	if got := cfg.GetString("calendar.zone"); got != "Europe/Paris" {
		t.Errorf("GetString() after Set = %q", got)
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	options := DiscoveryOptions{
		Paths:      []string{filepath.Join(dir, "none"), dir},
		Filenames:  []string{"gauss"},
		Extensions: []string{".toml", ".yaml"},
	}

	cfg, err := Discover(options)
	if err != nil {
		t.Fatalf("Discover() without file error: %v", err)
	}
	if cfg.FilePath() != "" {
		t.Errorf("FilePath() = %q, want empty", cfg.FilePath())
	}

	options.Required = true
	if _, err := Discover(options); !errors.Is(err, mdwerror.New("").WithCode(mdwerror.CodeNotFound)) {
		t.Errorf("Discover(required) error = %v, want NOT_FOUND", err)
	}

	path := writeFile(t, dir, "gauss.yaml", yamlContent)
	cfg, err = Discover(options)
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}
	if cfg.FilePath() != path {
		t.Errorf("FilePath() = %q, want %q", cfg.FilePath(), path)
	}

	if got := len(ListPossibleConfigFiles(options)); got != 4 {
		t.Errorf("ListPossibleConfigFiles() = %d entries, want 4", got)
	}
}
