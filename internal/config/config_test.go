package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Schedule.DayStart != "06:00" || cfg.Schedule.DayEnd != "22:00" {
		t.Errorf("schedule bounds = [%s, %s]", cfg.Schedule.DayStart, cfg.Schedule.DayEnd)
	}
	if cfg.Schedule.SnapMinutes != 30 {
		t.Errorf("snap_minutes = %d, want 30", cfg.Schedule.SnapMinutes)
	}
	if cfg.Schedule.HourHeight != 60 {
		t.Errorf("hour_height = %d, want 60", cfg.Schedule.HourHeight)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadFrom(t *testing.T) {
	t.Run("missing file uses defaults", func(t *testing.T) {
		cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
		if err != nil {
			t.Fatalf("LoadFrom: %v", err)
		}
		if cfg.Schedule.DayStart != "06:00" {
			t.Errorf("day_start = %s", cfg.Schedule.DayStart)
		}
	})

	t.Run("file overlays defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		content := `
[schedule]
day_start = "08:00"
snap_minutes = 15

[ui]
theme = "light"
`
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("writing config: %v", err)
		}

		cfg, err := LoadFrom(path)
		if err != nil {
			t.Fatalf("LoadFrom: %v", err)
		}
		if cfg.Schedule.DayStart != "08:00" {
			t.Errorf("day_start = %s, want 08:00", cfg.Schedule.DayStart)
		}
		if cfg.Schedule.SnapMinutes != 15 {
			t.Errorf("snap_minutes = %d, want 15", cfg.Schedule.SnapMinutes)
		}
		if cfg.Schedule.DayEnd != "22:00" {
			t.Errorf("day_end = %s, want default 22:00", cfg.Schedule.DayEnd)
		}
		if cfg.UI.Theme != "light" {
			t.Errorf("theme = %s, want light", cfg.UI.Theme)
		}
	})

	t.Run("env overrides file", func(t *testing.T) {
		t.Setenv("WAYFARER_DAY_START", "07:00")
		t.Setenv("WAYFARER_DB_PATH", filepath.Join(t.TempDir(), "x.db"))

		cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
		if err != nil {
			t.Fatalf("LoadFrom: %v", err)
		}
		if cfg.Schedule.DayStart != "07:00" {
			t.Errorf("day_start = %s, want 07:00", cfg.Schedule.DayStart)
		}
	})

	t.Run("malformed toml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte("not [valid"), 0o644); err != nil {
			t.Fatalf("writing config: %v", err)
		}
		if _, err := LoadFrom(path); err == nil {
			t.Error("expected error for malformed toml")
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad day_start", func(c *Config) { c.Schedule.DayStart = "6am" }},
		{"bad day_end", func(c *Config) { c.Schedule.DayEnd = "25:0" }},
		{"inverted day bounds", func(c *Config) { c.Schedule.DayStart = "22:00"; c.Schedule.DayEnd = "06:00" }},
		{"zero snap", func(c *Config) { c.Schedule.SnapMinutes = 0 }},
		{"snap not dividing hour", func(c *Config) { c.Schedule.SnapMinutes = 45 }},
		{"zero hour height", func(c *Config) { c.Schedule.HourHeight = 0 }},
		{"empty db path", func(c *Config) { c.Storage.DBPath = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home dir")
	}
	if got := expandPath("~/data/wayfarer.db"); got != filepath.Join(home, "data", "wayfarer.db") {
		t.Errorf("got %s", got)
	}
	if got := expandPath("/abs/path.db"); got != "/abs/path.db" {
		t.Errorf("got %s", got)
	}
}
