// Package presets holds the catalog of named clock themes. A preset is a
// bundle of colors and a background image applied to a clock as an ordinary
// state.Patch.
package presets

import (
	"sort"
	"strings"
	"time"

	"github.com/five82/clockwall/internal/state"
)

// Preset is a named color and background bundle.
type Preset struct {
	Name                string
	HandColor           string
	MarkerColor         string
	BorderColor         string
	AnalogNumbersColor  string
	DigitalNumbersColor string
	BackgroundImage     string
}

// Patch returns the preset as a patch touching the five colors and the
// background image. Start time is never part of a preset.
func (p Preset) Patch() state.Patch {
	return state.Patch{
		HandColor:           &p.HandColor,
		MarkerColor:         &p.MarkerColor,
		BorderColor:         &p.BorderColor,
		AnalogNumbersColor:  &p.AnalogNumbersColor,
		DigitalNumbersColor: &p.DigitalNumbersColor,
		BackgroundImage:     &p.BackgroundImage,
	}
}

// Config returns a full clock config using the preset colors and start.
func (p Preset) Config(start time.Time) state.Config {
	return p.Patch().Apply(state.Config{StartTime: start})
}

func classic() Preset {
	return Preset{
		Name:                "classic",
		HandColor:           "#000000",
		MarkerColor:         "#000000",
		BorderColor:         "#333333",
		AnalogNumbersColor:  "#000000",
		DigitalNumbersColor: "#000000",
	}
}

func modern() Preset {
	return Preset{
		Name:                "modern",
		HandColor:           "#FFFFFF",
		MarkerColor:         "#FFFFFF",
		BorderColor:         "#1E90FF",
		AnalogNumbersColor:  "#FFFFFF",
		DigitalNumbersColor: "#00FF00",
		BackgroundImage:     "https://images.unsplash.com/photo-1557804506-669a67965ba0?w=400&h=400&fit=crop",
	}
}

func vintage() Preset {
	return Preset{
		Name:                "vintage",
		HandColor:           "#8B4513",
		MarkerColor:         "#8B4513",
		BorderColor:         "#FFD700",
		AnalogNumbersColor:  "#8B4513",
		DigitalNumbersColor: "#8B4513",
		BackgroundImage:     "https://images.unsplash.com/photo-1580933073521-dc49ac0d4e6a?w=400&h=400&fit=crop",
	}
}

// DefaultStart is the start time a new clock gets when none is given: 12:00
// on 1970-01-01 local time.
func DefaultStart() time.Time {
	return time.Date(1970, time.January, 1, 12, 0, 0, 0, time.Local)
}

// Default returns the config a blank add form starts from.
func Default() state.Config {
	return classic().Config(DefaultStart())
}

// Catalog is an ordered set of presets keyed by lower-cased name.
type Catalog struct {
	byName map[string]Preset
	order  []string
}

// Builtin returns the classic, modern and vintage presets.
func Builtin() *Catalog {
	c := &Catalog{byName: make(map[string]Preset)}
	for _, p := range []Preset{classic(), modern(), vintage()} {
		c.Put(p)
	}
	return c
}

// Put adds or replaces a preset. Names are stored lower-cased; redefining an
// existing name keeps its position.
func (c *Catalog) Put(p Preset) {
	key := normalize(p.Name)
	if key == "" {
		return
	}
	if _, exists := c.byName[key]; !exists {
		c.order = append(c.order, key)
	}
	p.Name = key
	c.byName[key] = p
}

// Lookup finds a preset by name.
func (c *Catalog) Lookup(name string) (Preset, bool) {
	p, ok := c.byName[normalize(name)]
	return p, ok
}

// Names returns preset names, built-ins first, then extras sorted by name.
func (c *Catalog) Names() []string {
	builtin := map[string]bool{"classic": true, "modern": true, "vintage": true}
	var head, tail []string
	for _, name := range c.order {
		if builtin[name] {
			head = append(head, name)
		} else {
			tail = append(tail, name)
		}
	}
	sort.Strings(tail)
	return append(head, tail...)
}

// All returns every preset in Names order.
func (c *Catalog) All() []Preset {
	names := c.Names()
	out := make([]Preset, 0, len(names))
	for _, name := range names {
		out = append(out, c.byName[name])
	}
	return out
}

// Next returns the preset after current in Names order, wrapping around. An
// unknown current yields the first preset.
func (c *Catalog) Next(current string) Preset {
	names := c.Names()
	key := normalize(current)
	for i, name := range names {
		if name == key {
			return c.byName[names[(i+1)%len(names)]]
		}
	}
	return c.byName[names[0]]
}

// Match returns the name of the preset whose colors and background equal
// cfg's, or "" when none does.
func (c *Catalog) Match(cfg state.Config) string {
	for _, p := range c.All() {
		if p.matches(cfg) {
			return p.Name
		}
	}
	return ""
}

// matches compares colors case-insensitively, since the form stores them in
// lower case.
func (p Preset) matches(cfg state.Config) bool {
	return strings.EqualFold(p.HandColor, cfg.HandColor) &&
		strings.EqualFold(p.MarkerColor, cfg.MarkerColor) &&
		strings.EqualFold(p.BorderColor, cfg.BorderColor) &&
		strings.EqualFold(p.AnalogNumbersColor, cfg.AnalogNumbersColor) &&
		strings.EqualFold(p.DigitalNumbersColor, cfg.DigitalNumbersColor) &&
		p.BackgroundImage == cfg.BackgroundImage
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
