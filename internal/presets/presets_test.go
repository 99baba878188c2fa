package presets

import (
	"reflect"
	"testing"
	"time"

	"github.com/five82/clockwall/internal/state"
)

func TestBuiltinNames(t *testing.T) {
	got := Builtin().Names()
	want := []string{"classic", "modern", "vintage"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	c := Builtin()
	p, ok := c.Lookup("  Vintage ")
	if !ok {
		t.Fatalf("Lookup(Vintage) not found")
	}
	if p.BorderColor != "#FFD700" {
		t.Fatalf("vintage border = %q, want #FFD700", p.BorderColor)
	}
	if _, ok := c.Lookup("neon"); ok {
		t.Fatalf("Lookup(neon) found, want missing")
	}
}

func TestPatchLeavesStartTime(t *testing.T) {
	p, _ := Builtin().Lookup("modern")
	start := time.Date(1970, 1, 1, 8, 30, 0, 0, time.UTC)
	got := p.Patch().Apply(state.Config{StartTime: start, HandColor: "#123456"})

	if !got.StartTime.Equal(start) {
		t.Fatalf("StartTime = %v, want %v", got.StartTime, start)
	}
	if got.HandColor != "#FFFFFF" || got.DigitalNumbersColor != "#00FF00" {
		t.Fatalf("colors not applied: %#v", got)
	}
	if got.BackgroundImage == "" {
		t.Fatalf("BackgroundImage not applied")
	}
}

func TestPutExtrasAndOverrides(t *testing.T) {
	c := Builtin()
	c.Put(Preset{Name: "Neon", HandColor: "#FF00FF"})
	c.Put(Preset{Name: "aurora", HandColor: "#00FFAA"})
	c.Put(Preset{Name: "CLASSIC", HandColor: "#FF0000"})
	c.Put(Preset{Name: "  "})

	want := []string{"classic", "modern", "vintage", "aurora", "neon"}
	if got := c.Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	if p, _ := c.Lookup("classic"); p.HandColor != "#FF0000" {
		t.Fatalf("classic override not applied: %q", p.HandColor)
	}
}

func TestNextWraps(t *testing.T) {
	c := Builtin()
	if got := c.Next("classic").Name; got != "modern" {
		t.Fatalf("Next(classic) = %q, want modern", got)
	}
	if got := c.Next("vintage").Name; got != "classic" {
		t.Fatalf("Next(vintage) = %q, want classic", got)
	}
	if got := c.Next("").Name; got != "classic" {
		t.Fatalf("Next(\"\") = %q, want classic", got)
	}
}

func TestMatch(t *testing.T) {
	c := Builtin()
	if got := c.Match(Default()); got != "classic" {
		t.Fatalf("Match(Default()) = %q, want classic", got)
	}
	cfg := Default()
	cfg.HandColor = "#ABCDEF"
	if got := c.Match(cfg); got != "" {
		t.Fatalf("Match(custom) = %q, want empty", got)
	}

	modern, _ := c.Lookup("modern")
	lower := modern.Config(DefaultStart())
	lower.HandColor = "#ffffff"
	lower.BorderColor = "#1e90ff"
	if got := c.Match(lower); got != "modern" {
		t.Fatalf("Match(lower-case modern) = %q, want modern", got)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.BorderColor != "#333333" || cfg.HandColor != "#000000" || cfg.BackgroundImage != "" {
		t.Fatalf("Default() = %#v", cfg)
	}
	if cfg.StartTime.Hour() != 12 || cfg.StartTime.Minute() != 0 {
		t.Fatalf("Default start = %v, want 12:00", cfg.StartTime)
	}
}
