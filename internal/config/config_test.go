package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	wantLogDir, err := expandPath(defaultLogDir)
	if err != nil {
		t.Fatalf("expandPath(defaultLogDir) returned error: %v", err)
	}
	if cfg.LogDir != wantLogDir {
		t.Fatalf("LogDir = %q, want %q", cfg.LogDir, wantLogDir)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Fatalf("LogLevel = %v, want info", cfg.LogLevel)
	}
	if cfg.MetricsAddr != "" {
		t.Fatalf("MetricsAddr = %q, want empty", cfg.MetricsAddr)
	}
	if len(cfg.Clocks) != 0 || len(cfg.Presets) != 0 {
		t.Fatalf("expected no clocks or presets, got %d/%d", len(cfg.Clocks), len(cfg.Presets))
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := writeConfig(t, `
log_dir = "  ~/.clockwall/logs  "
log_level = "debug"
metrics_addr = " 127.0.0.1:9464 "

[presets.neon]
hand_color = "#FF00FF"
border_color = "#00FFFF"

[[clock]]
preset = "vintage"
start_time = "09:30"

[[clock]]
start_time = "now"
hand_color = "#123456"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !strings.HasPrefix(cfg.LogDir, home) {
		t.Fatalf("LogDir = %q, want it under HOME %q", cfg.LogDir, home)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Fatalf("LogLevel = %v, want debug", cfg.LogLevel)
	}
	if cfg.MetricsAddr != "127.0.0.1:9464" {
		t.Fatalf("MetricsAddr = %q", cfg.MetricsAddr)
	}
	if len(cfg.Presets) != 1 || cfg.Presets[0].Name != "neon" || cfg.Presets[0].HandColor != "#FF00FF" {
		t.Fatalf("Presets = %#v", cfg.Presets)
	}
	if len(cfg.Clocks) != 2 || cfg.Clocks[0].Preset != "vintage" {
		t.Fatalf("Clocks = %#v", cfg.Clocks)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	_, err := Load(writeConfig(t, `log_dir = [`))
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestLoad_InvalidLogLevelFails(t *testing.T) {
	_, err := Load(writeConfig(t, `log_level = "loud"`))
	if err == nil || !strings.Contains(err.Error(), "log_level") {
		t.Fatalf("Load error = %v, want log_level error", err)
	}
}

func TestSeedConfigs(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg, err := Load(writeConfig(t, `
[presets.neon]
hand_color = "#FF00FF"

[[clock]]
preset = "Vintage"
start_time = "09:30:15"

[[clock]]
preset = "neon"
start_time = "now"
background_image = " bg.png "

[[clock]]
hand_color = "#ABCDEF"
`))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	now := time.Date(2026, time.October, 17, 18, 5, 0, 0, time.UTC)
	seeds, err := cfg.SeedConfigs(cfg.Catalog(), now)
	if err != nil {
		t.Fatalf("SeedConfigs returned error: %v", err)
	}
	if len(seeds) != 3 {
		t.Fatalf("len(seeds) = %d, want 3", len(seeds))
	}

	if seeds[0].BorderColor != "#FFD700" {
		t.Fatalf("vintage border = %q", seeds[0].BorderColor)
	}
	if want := time.Date(2026, time.October, 17, 9, 30, 15, 0, time.UTC); !seeds[0].StartTime.Equal(want) {
		t.Fatalf("seed 0 start = %v, want %v", seeds[0].StartTime, want)
	}

	if seeds[1].HandColor != "#FF00FF" || !seeds[1].StartTime.Equal(now) || seeds[1].BackgroundImage != "bg.png" {
		t.Fatalf("seed 1 = %#v", seeds[1])
	}

	if seeds[2].HandColor != "#abcdef" || seeds[2].BorderColor != "#333333" {
		t.Fatalf("seed 2 = %#v, want classic with normalized hand override", seeds[2])
	}
	if want := time.Date(2026, time.October, 17, 12, 0, 0, 0, time.UTC); !seeds[2].StartTime.Equal(want) {
		t.Fatalf("seed 2 start = %v, want %v (default time on the seeding date)", seeds[2].StartTime, want)
	}
}

func TestSeedConfigs_Errors(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
		want string
	}{
		{"unknown preset", Config{Clocks: []ClockSeed{{Preset: "neon"}}}, `unknown preset "neon"`},
		{"bad time", Config{Clocks: []ClockSeed{{StartTime: "25:00"}}}, "clock 1"},
		{"signed time", Config{Clocks: []ClockSeed{{StartTime: "+1:+2"}}}, "clock 1"},
		{"bad color", Config{Clocks: []ClockSeed{{}, {HandColor: "banana"}}}, `clock 2: invalid color hand_color = "banana"`},
		{"short hex", Config{Clocks: []ClockSeed{{BorderColor: "#12345"}}}, "clock 1: invalid color border_color"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.cfg.SeedConfigs(tc.cfg.Catalog(), time.Now())
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("SeedConfigs error = %v, want it to contain %q", err, tc.want)
			}
		})
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}

func TestLogPath_DefaultsWhenLogDirEmpty(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	var cfg Config
	got := cfg.LogPath()
	if !strings.HasPrefix(got, home) {
		t.Fatalf("LogPath = %q, want it under HOME %q", got, home)
	}
	if !strings.HasSuffix(got, filepath.FromSlash("/clockwall.log")) {
		t.Fatalf("LogPath = %q, want it to end with /clockwall.log", got)
	}
}
