package face

import (
	"strings"
	"testing"
	"time"

	"github.com/five82/clockwall/internal/state"
)

func recordAt(h, m, s int) state.Record {
	return state.Record{
		ID: "c1",
		Config: state.Config{
			HandColor:           "#000000",
			MarkerColor:         "#000000",
			BorderColor:         "#333333",
			AnalogNumbersColor:  "#000000",
			DigitalNumbersColor: "#000000",
			StartTime:           time.Date(1970, 1, 1, h, m, s, 0, time.UTC),
		},
	}
}

func TestSize(t *testing.T) {
	w, h := Size(5)
	if w != 23 || h != 11 {
		t.Fatalf("Size(5) = %d,%d want 23,11", w, h)
	}
	if w, h := Size(1); w != 15 || h != 7 {
		t.Fatalf("Size(1) = %d,%d want clamp to MinRadius (15,7)", w, h)
	}
}

func TestLayout_HandsFollowAngles(t *testing.T) {
	c := Layout(recordAt(3, 0, 0), 5)
	cx, cy := 11, 5

	if got := c.At(cx, cy).Part; got != PartCenter {
		t.Fatalf("center part = %v, want PartCenter", got)
	}
	for x := cx + 1; x <= cx+4; x++ {
		if got := c.At(x, cy).Part; got != PartHourHand {
			t.Fatalf("cell (%d,%d) = %v, want hour hand pointing at 3", x, cy, got)
		}
	}
	for y := cy - 3; y < cy; y++ {
		if got := c.At(cx, y).Part; got != PartMinuteHand {
			t.Fatalf("cell (%d,%d) = %v, want minute hand pointing at 12", cx, y, got)
		}
	}
	if r := c.At(cx+2, cy).Rune; r != '─' {
		t.Fatalf("hour hand rune = %q, want horizontal", r)
	}
}

func TestLayout_NineOClockPointsLeft(t *testing.T) {
	c := Layout(recordAt(9, 0, 0), 5)
	if got := c.At(9, 5).Part; got != PartHourHand {
		t.Fatalf("cell left of center = %v, want hour hand", got)
	}
	if got := c.At(13, 5).Part; got == PartHourHand {
		t.Fatalf("hour hand drawn on the wrong side")
	}
}

func TestLayout_SecondHandDrawnUnderOthers(t *testing.T) {
	c := Layout(recordAt(0, 0, 0), 5)
	if got := c.At(11, 3).Part; got != PartHourHand && got != PartMinuteHand {
		t.Fatalf("overlapping hands: top cell = %v, want hour or minute", got)
	}
	c = Layout(recordAt(0, 0, 15), 5)
	if got := c.At(15, 5).Part; got != PartSecondHand {
		t.Fatalf("cell (15,5) = %v, want second hand at 15s", got)
	}
}

func TestLayout_NumbersAndDigital(t *testing.T) {
	rec := recordAt(13, 1, 1)
	rec.BackgroundImage = "https://example.com/bg.png"
	c := Layout(rec, 5)

	if c.Caption != "https://example.com/bg.png" {
		t.Fatalf("Caption = %q, want the full URL", c.Caption)
	}
	text := c.String()
	for _, want := range []string{"12", "3", "6", "9", "13:01:01", "https://exa….com/bg.png"} {
		if !strings.Contains(text, want) {
			t.Fatalf("face text missing %q:\n%s", want, text)
		}
	}
	if c.Digital != "13:01:01" {
		t.Fatalf("Digital = %q", c.Digital)
	}

	markers := 0
	for _, row := range c.Cells {
		for _, cell := range row {
			if cell.Part == PartMarker {
				markers++
			}
		}
	}
	if markers != 8 {
		t.Fatalf("markers = %d, want 8 (12 hours minus 4 numerals)", markers)
	}
}

func TestLayout_NumeralsSitAboveHands(t *testing.T) {
	// Every hand points at 12 or 6 and the second hand is long enough to
	// reach the numeral ring.
	for _, rec := range []state.Record{recordAt(0, 0, 0), recordAt(6, 30, 30), recordAt(3, 15, 15), recordAt(9, 45, 45)} {
		for _, radius := range []int{MinRadius, 4, DefaultRadius, 8} {
			c := Layout(rec, radius)
			width, height := Size(radius)
			cx, cy := width/2, height/2
			n := radius - 1

			cells := []struct {
				x, y int
				want rune
			}{
				{cx - 1, cy - n, '1'},
				{cx, cy - n, '2'},
				{cx + xStretch*n, cy, '3'},
				{cx, cy + n, '6'},
				{cx - xStretch*n, cy, '9'},
			}
			for _, tc := range cells {
				got := c.At(tc.x, tc.y)
				if got.Rune != tc.want || got.Part != PartNumber {
					t.Fatalf("%s radius %d: cell (%d,%d) = %q/%v, want numeral %q\n%s",
						c.Digital, radius, tc.x, tc.y, got.Rune, got.Part, tc.want, c.String())
				}
			}
		}
	}
}

func TestLayout_IsDeterministic(t *testing.T) {
	a := Layout(recordAt(7, 42, 13), 6).String()
	b := Layout(recordAt(7, 42, 13), 6).String()
	if a != b {
		t.Fatalf("Layout not deterministic")
	}
}

func TestRender_ContainsDigitalTime(t *testing.T) {
	out := Render(recordAt(3, 30, 0), Options{Radius: 4, Selected: true})
	if !strings.Contains(out, "03:30:00") {
		t.Fatalf("Render output missing digital time:\n%s", out)
	}
}

func TestHandRune(t *testing.T) {
	cases := map[float64]rune{0: '│', 45: '╱', 90: '─', 135: '╲', 180: '│', 225: '╱', 270: '─', 315: '╲'}
	for angle, want := range cases {
		if got := handRune(angle); got != want {
			t.Fatalf("handRune(%v) = %q, want %q", angle, got, want)
		}
	}
}

func TestNormalizeColor(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"#FFD700", "#ffd700", true},
		{" 1e90ff ", "#1e90ff", true},
		{"#fff", "#ffffff", true},
		{"", "", false},
		{"#12345", "", false},
		{"gold", "", false},
	}
	for _, tc := range cases {
		got, ok := NormalizeColor(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("NormalizeColor(%q) = %q,%v want %q,%v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestTruncateMiddle(t *testing.T) {
	cases := []struct {
		in    string
		limit int
		want  string
	}{
		{"abcdefghij", 5, "ab…ij"},
		{"abc", 10, "abc"},
		{"  ", 10, ""},
		{"abcd", 2, "ab"},
		{"https://images.example.com/a/b/c.jpg", 12, "https…/c.jpg"},
	}
	for _, tc := range cases {
		if got := TruncateMiddle(tc.in, tc.limit); got != tc.want {
			t.Fatalf("TruncateMiddle(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
		}
	}
}
