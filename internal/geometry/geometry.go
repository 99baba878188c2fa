// Package geometry derives clock hand angles and display strings from a
// timestamp. Every function is pure: the same time always yields the same
// result, and only the wall-clock fields of the time (in its own location)
// are read.
package geometry

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// HourHandAngle returns the hour hand rotation in degrees clockwise from 12.
// The minute term makes the hand creep between hour marks.
func HourHandAngle(t time.Time) float64 {
	return float64(t.Hour()%12)*30 + float64(t.Minute())*0.5
}

// MinuteHandAngle returns the minute hand rotation in degrees clockwise from 12.
func MinuteHandAngle(t time.Time) float64 {
	return float64(t.Minute())*6 + float64(t.Second())*0.1
}

// SecondHandAngle returns the second hand rotation in degrees clockwise from 12.
// There is no sub-second smoothing.
func SecondHandAngle(t time.Time) float64 {
	return float64(t.Second()) * 6
}

// FormatClockTime renders t as a zero-padded 24-hour HH:MM:SS string.
func FormatClockTime(t time.Time) string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}

// ParseClockTime parses "HH:MM" or "HH:MM:SS" and places the result on day's
// date in day's location. A zero day means 1970-01-01 in the local zone.
func ParseClockTime(value string, day time.Time) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	parts := strings.Split(trimmed, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return time.Time{}, fmt.Errorf("parse clock time %q: want HH:MM or HH:MM:SS", value)
	}

	limits := []int{23, 59, 59}
	fields := make([]int, 3)
	for i, part := range parts {
		if !isDigits(part) || len(part) > 2 {
			return time.Time{}, fmt.Errorf("parse clock time %q: invalid field %q", value, part)
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return time.Time{}, fmt.Errorf("parse clock time %q: invalid field %q", value, part)
		}
		if n < 0 || n > limits[i] {
			return time.Time{}, fmt.Errorf("parse clock time %q: field %q out of range", value, part)
		}
		fields[i] = n
	}

	if day.IsZero() {
		day = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.Local)
	}
	y, m, d := day.Date()
	return time.Date(y, m, d, fields[0], fields[1], fields[2], 0, day.Location()), nil
}

// isDigits reports whether s is non-empty and made only of ASCII digits.
// strconv.Atoi alone would accept a leading sign.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// HandOffset converts a hand angle (degrees clockwise from 12) and length into
// an x/y offset from the dial center. Y grows downward, matching screen
// coordinates.
func HandOffset(angle, length float64) (dx, dy float64) {
	rad := angle * math.Pi / 180
	return math.Sin(rad) * length, -math.Cos(rad) * length
}
