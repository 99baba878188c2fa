package state

import "time"

// Config is everything a clock carries except its identity. It is the input
// to Store.Add.
type Config struct {
	HandColor           string
	MarkerColor         string
	BorderColor         string
	AnalogNumbersColor  string
	DigitalNumbersColor string
	BackgroundImage     string // empty means no image
	StartTime           time.Time
}

// Record is one managed clock: its configuration plus a store-assigned ID.
type Record struct {
	ID string
	Config
}

// HasBackground reports whether the record references a background image.
func (r Record) HasBackground() bool {
	return r.BackgroundImage != ""
}

// Patch is a partial Config. Nil fields are left untouched when the patch is
// applied.
type Patch struct {
	HandColor           *string
	MarkerColor         *string
	BorderColor         *string
	AnalogNumbersColor  *string
	DigitalNumbersColor *string
	BackgroundImage     *string
	StartTime           *time.Time
}

// Apply merges p over c field by field: a present patch field wins.
func (p Patch) Apply(c Config) Config {
	if p.HandColor != nil {
		c.HandColor = *p.HandColor
	}
	if p.MarkerColor != nil {
		c.MarkerColor = *p.MarkerColor
	}
	if p.BorderColor != nil {
		c.BorderColor = *p.BorderColor
	}
	if p.AnalogNumbersColor != nil {
		c.AnalogNumbersColor = *p.AnalogNumbersColor
	}
	if p.DigitalNumbersColor != nil {
		c.DigitalNumbersColor = *p.DigitalNumbersColor
	}
	if p.BackgroundImage != nil {
		c.BackgroundImage = *p.BackgroundImage
	}
	if p.StartTime != nil {
		c.StartTime = *p.StartTime
	}
	return c
}

// Full returns a patch that sets every field of c. The form uses it to submit
// an edit as a single Update.
func Full(c Config) Patch {
	return Patch{
		HandColor:           &c.HandColor,
		MarkerColor:         &c.MarkerColor,
		BorderColor:         &c.BorderColor,
		AnalogNumbersColor:  &c.AnalogNumbersColor,
		DigitalNumbersColor: &c.DigitalNumbersColor,
		BackgroundImage:     &c.BackgroundImage,
		StartTime:           &c.StartTime,
	}
}
