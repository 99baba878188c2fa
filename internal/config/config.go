package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/clockwall/internal/face"
	"github.com/five82/clockwall/internal/geometry"
	"github.com/five82/clockwall/internal/presets"
	"github.com/five82/clockwall/internal/state"
)

// Config captures clockwall's startup settings.
type Config struct {
	LogDir      string
	LogLevel    slog.Level
	MetricsAddr string // empty disables the metrics endpoint
	Presets     []presets.Preset
	Clocks      []ClockSeed
}

// ClockSeed describes a clock created at startup. Empty color fields fall
// back to the preset, and the preset falls back to classic.
type ClockSeed struct {
	Preset              string `toml:"preset"`
	StartTime           string `toml:"start_time"` // HH:MM[:SS] or "now"
	HandColor           string `toml:"hand_color"`
	MarkerColor         string `toml:"marker_color"`
	BorderColor         string `toml:"border_color"`
	AnalogNumbersColor  string `toml:"analog_numbers_color"`
	DigitalNumbersColor string `toml:"digital_numbers_color"`
	BackgroundImage     string `toml:"background_image"`
}

type rawPreset struct {
	HandColor           string `toml:"hand_color"`
	MarkerColor         string `toml:"marker_color"`
	BorderColor         string `toml:"border_color"`
	AnalogNumbersColor  string `toml:"analog_numbers_color"`
	DigitalNumbersColor string `toml:"digital_numbers_color"`
	BackgroundImage     string `toml:"background_image"`
}

const (
	defaultConfigPath = "~/.config/clockwall/config.toml"
	defaultLogDir     = "~/.local/state/clockwall"
	logFileName       = "clockwall.log"
)

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Load locates and parses the clockwall config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{LogDir: mustExpand(defaultLogDir), LogLevel: slog.LevelInfo}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		LogDir      string               `toml:"log_dir"`
		LogLevel    string               `toml:"log_level"`
		MetricsAddr string               `toml:"metrics_addr"`
		Presets     map[string]rawPreset `toml:"presets"`
		Clocks      []ClockSeed          `toml:"clock"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if dir := strings.TrimSpace(raw.LogDir); dir != "" {
		cfg.LogDir = mustExpand(dir)
	}
	if level := strings.TrimSpace(raw.LogLevel); level != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(level)); err != nil {
			return Config{}, fmt.Errorf("parse config: log_level: %w", err)
		}
	}
	cfg.MetricsAddr = strings.TrimSpace(raw.MetricsAddr)

	names := make([]string, 0, len(raw.Presets))
	for name := range raw.Presets {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		p := raw.Presets[name]
		cfg.Presets = append(cfg.Presets, presets.Preset{
			Name:                name,
			HandColor:           p.HandColor,
			MarkerColor:         p.MarkerColor,
			BorderColor:         p.BorderColor,
			AnalogNumbersColor:  p.AnalogNumbersColor,
			DigitalNumbersColor: p.DigitalNumbersColor,
			BackgroundImage:     p.BackgroundImage,
		})
	}
	cfg.Clocks = raw.Clocks

	return cfg, nil
}

// LogPath returns the path of clockwall's log file.
func (c Config) LogPath() string {
	if strings.TrimSpace(c.LogDir) == "" {
		return mustExpand(defaultLogDir + "/" + logFileName)
	}
	return filepath.Join(c.LogDir, logFileName)
}

// Catalog returns the built-in presets with the configured extras merged in.
func (c Config) Catalog() *presets.Catalog {
	catalog := presets.Builtin()
	for _, p := range c.Presets {
		catalog.Put(p)
	}
	return catalog
}

// SeedConfigs turns the [[clock]] entries into store configs. now supplies the
// time for start_time = "now" and the date every seeded clock is placed on; an
// empty start_time means the default clock time on that date. Color overrides
// are validated and stored in canonical "#rrggbb" form.
func (c Config) SeedConfigs(catalog *presets.Catalog, now time.Time) ([]state.Config, error) {
	out := make([]state.Config, 0, len(c.Clocks))
	for i, seed := range c.Clocks {
		base, err := seedBase(catalog, seed.Preset)
		if err != nil {
			return nil, fmt.Errorf("clock %d: %w", i+1, err)
		}

		start := now
		switch value := strings.TrimSpace(seed.StartTime); {
		case value == "":
			def := presets.DefaultStart()
			y, m, d := now.Date()
			start = time.Date(y, m, d, def.Hour(), def.Minute(), def.Second(), 0, now.Location())
		case strings.EqualFold(value, "now"):
		default:
			start, err = geometry.ParseClockTime(value, now)
			if err != nil {
				return nil, fmt.Errorf("clock %d: %w", i+1, err)
			}
		}

		cfg := base.Config(start)
		colors := []struct {
			name  string
			dst   *string
			value string
		}{
			{"hand_color", &cfg.HandColor, seed.HandColor},
			{"marker_color", &cfg.MarkerColor, seed.MarkerColor},
			{"border_color", &cfg.BorderColor, seed.BorderColor},
			{"analog_numbers_color", &cfg.AnalogNumbersColor, seed.AnalogNumbersColor},
			{"digital_numbers_color", &cfg.DigitalNumbersColor, seed.DigitalNumbersColor},
		}
		for _, col := range colors {
			if strings.TrimSpace(col.value) == "" {
				continue
			}
			hex, ok := face.NormalizeColor(col.value)
			if !ok {
				return nil, fmt.Errorf("clock %d: invalid color %s = %q", i+1, col.name, col.value)
			}
			*col.dst = hex
		}
		overrideString(&cfg.BackgroundImage, seed.BackgroundImage)
		out = append(out, cfg)
	}
	return out, nil
}

func seedBase(catalog *presets.Catalog, name string) (presets.Preset, error) {
	if strings.TrimSpace(name) == "" {
		name = "classic"
	}
	p, ok := catalog.Lookup(name)
	if !ok {
		return presets.Preset{}, fmt.Errorf("unknown preset %q", name)
	}
	return p, nil
}

func overrideString(dst *string, value string) {
	if v := strings.TrimSpace(value); v != "" {
		*dst = v
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
