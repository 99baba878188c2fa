package state

import (
	"testing"
	"time"
)

func TestPatch_ApplyPresentFieldsWin(t *testing.T) {
	base := sampleConfig()
	later := base.StartTime.Add(time.Hour)

	got := Patch{BorderColor: ptr("#abcdef"), StartTime: &later}.Apply(base)

	want := base
	want.BorderColor = "#abcdef"
	want.StartTime = later
	if got != want {
		t.Fatalf("Apply = %#v, want %#v", got, want)
	}
}

func TestPatch_EmptyStringIsPresent(t *testing.T) {
	base := sampleConfig()
	base.BackgroundImage = "https://example.com/a.png"

	got := Patch{BackgroundImage: ptr("")}.Apply(base)
	if got.BackgroundImage != "" {
		t.Fatalf("BackgroundImage = %q, want cleared", got.BackgroundImage)
	}
}

func TestFull_RoundTrip(t *testing.T) {
	src := sampleConfig()
	src.BackgroundImage = "bg.png"
	if got := Full(src).Apply(Config{}); got != src {
		t.Fatalf("Full(c).Apply(zero) = %#v, want %#v", got, src)
	}
}
