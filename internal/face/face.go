// Package face draws an analog clock face for a terminal.
//
// Layout is a pure function of a record and a radius: it produces a grid of
// cells tagged with the part of the dial they belong to. Render colors that
// grid with the record's own palette. Terminal cells are roughly twice as
// tall as they are wide, so the dial is stretched horizontally by two.
package face

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/five82/clockwall/internal/geometry"
	"github.com/five82/clockwall/internal/state"
)

// Part identifies which element of the dial a cell belongs to.
type Part int

const (
	PartEmpty Part = iota
	PartBorder
	PartMarker
	PartNumber
	PartHourHand
	PartMinuteHand
	PartSecondHand
	PartCenter
)

// Cell is one character of the dial.
type Cell struct {
	Rune rune
	Part Part
}

// Canvas is a laid-out face.
type Canvas struct {
	Radius  int
	Cells   [][]Cell
	Digital string
	Caption string
}

const (
	// MinRadius leaves room for the numeral ring inside the border.
	MinRadius = 3
	// DefaultRadius suits a standard 80x24 terminal with two rows of clocks.
	DefaultRadius = 5

	xStretch = 2
)

// Size returns the width and height in cells of the dial for radius,
// excluding the digital and caption lines.
func Size(radius int) (width, height int) {
	radius = max(radius, MinRadius)
	return 2*xStretch*radius + 3, 2*radius + 1
}

// Layout computes the dial for rec at the given radius.
func Layout(rec state.Record, radius int) Canvas {
	radius = max(radius, MinRadius)
	width, height := Size(radius)
	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
		for x := range cells[y] {
			cells[y][x] = Cell{Rune: ' '}
		}
	}
	c := Canvas{Radius: radius, Cells: cells}
	cx, cy := float64(width/2), float64(height/2)

	r := float64(radius)
	for deg := 0.0; deg < 360; deg += 2 {
		dx, dy := geometry.HandOffset(deg, r)
		c.set(cx+dx*xStretch, cy+dy, Cell{Rune: '·', Part: PartBorder})
	}

	t := rec.StartTime
	c.hand(cx, cy, geometry.SecondHandAngle(t), r*0.85, PartSecondHand)
	c.hand(cx, cy, geometry.MinuteHandAngle(t), r*0.75, PartMinuteHand)
	c.hand(cx, cy, geometry.HourHandAngle(t), r*0.5, PartHourHand)

	// Numerals and markers sit on top of any hand passing under them.
	for hour := 1; hour <= 12; hour++ {
		dx, dy := geometry.HandOffset(float64(hour)*30, r-1)
		x, y := cx+dx*xStretch, cy+dy
		switch hour {
		case 12:
			c.set(x-1, y, Cell{Rune: '1', Part: PartNumber})
			c.set(x, y, Cell{Rune: '2', Part: PartNumber})
		case 3:
			c.set(x, y, Cell{Rune: '3', Part: PartNumber})
		case 6:
			c.set(x, y, Cell{Rune: '6', Part: PartNumber})
		case 9:
			c.set(x, y, Cell{Rune: '9', Part: PartNumber})
		default:
			c.set(x, y, Cell{Rune: '•', Part: PartMarker})
		}
	}

	c.set(cx, cy, Cell{Rune: '●', Part: PartCenter})

	c.Digital = geometry.FormatClockTime(t)
	if rec.HasBackground() {
		c.Caption = rec.BackgroundImage
	}
	return c
}

func (c *Canvas) hand(cx, cy, angle, length float64, part Part) {
	ch := handRune(angle)
	if part == PartSecondHand {
		ch = '∙'
	}
	for step := 1.0; step <= length*2; step++ {
		dx, dy := geometry.HandOffset(angle, step/2)
		c.set(cx+dx*xStretch, cy+dy, Cell{Rune: ch, Part: part})
	}
}

func (c *Canvas) set(x, y float64, cell Cell) {
	row, col := int(math.Round(y)), int(math.Round(x))
	if row < 0 || row >= len(c.Cells) || col < 0 || col >= len(c.Cells[row]) {
		return
	}
	c.Cells[row][col] = cell
}

// handRune picks a line character that follows the hand's direction.
func handRune(angle float64) rune {
	a := math.Mod(angle, 180)
	if a < 0 {
		a += 180
	}
	switch {
	case a < 22.5 || a >= 157.5:
		return '│'
	case a < 67.5:
		return '╱'
	case a < 112.5:
		return '─'
	default:
		return '╲'
	}
}

// Lines returns the dial rows as plain text, without the digital line.
func (c Canvas) Lines() []string {
	out := make([]string, len(c.Cells))
	for i, row := range c.Cells {
		var b strings.Builder
		for _, cell := range row {
			b.WriteRune(cell.Rune)
		}
		out[i] = b.String()
	}
	return out
}

// String returns the full face as plain text: dial, digital time and caption.
func (c Canvas) String() string {
	width, _ := Size(c.Radius)
	lines := c.Lines()
	lines = append(lines, centerText(c.Digital, width))
	if c.Caption != "" {
		lines = append(lines, centerText(TruncateMiddle(c.Caption, width), width))
	}
	return strings.Join(lines, "\n")
}

// At returns the cell at column x, row y.
func (c Canvas) At(x, y int) Cell {
	if y < 0 || y >= len(c.Cells) || x < 0 || x >= len(c.Cells[y]) {
		return Cell{Rune: ' '}
	}
	return c.Cells[y][x]
}

// Palette maps dial parts to colors.
type Palette struct {
	Hand    lipgloss.TerminalColor
	Marker  lipgloss.TerminalColor
	Border  lipgloss.TerminalColor
	Numbers lipgloss.TerminalColor
	Digital lipgloss.TerminalColor
	Caption lipgloss.TerminalColor
}

// PaletteFor builds a palette from the record's colors. Colors that do not
// parse fall back to the terminal default.
func PaletteFor(rec state.Record) Palette {
	return Palette{
		Hand:    terminalColor(rec.HandColor),
		Marker:  terminalColor(rec.MarkerColor),
		Border:  terminalColor(rec.BorderColor),
		Numbers: terminalColor(rec.AnalogNumbersColor),
		Digital: terminalColor(rec.DigitalNumbersColor),
		Caption: lipgloss.NoColor{},
	}
}

func (p Palette) style(part Part) lipgloss.Style {
	s := lipgloss.NewStyle()
	switch part {
	case PartBorder:
		return s.Foreground(p.Border)
	case PartMarker:
		return s.Foreground(p.Marker)
	case PartNumber:
		return s.Foreground(p.Numbers).Bold(true)
	case PartHourHand, PartCenter:
		return s.Foreground(p.Hand).Bold(true)
	case PartMinuteHand:
		return s.Foreground(p.Hand)
	case PartSecondHand:
		return s.Foreground(p.Hand).Faint(true)
	default:
		return s
	}
}

// Options control Render.
type Options struct {
	Radius   int
	Palette  *Palette // nil uses the record's own colors
	Selected bool
	Accent   lipgloss.TerminalColor // border of the selection frame
}

// Render draws rec as a colored block: dial, digital time, and the
// background image reference when set.
func Render(rec state.Record, opts Options) string {
	c := Layout(rec, opts.Radius)
	pal := PaletteFor(rec)
	if opts.Palette != nil {
		pal = *opts.Palette
	}
	width, _ := Size(c.Radius)

	lines := make([]string, 0, len(c.Cells)+2)
	for _, row := range c.Cells {
		lines = append(lines, renderRow(row, pal))
	}
	digital := lipgloss.NewStyle().Foreground(pal.Digital).Bold(true).
		Width(width).Align(lipgloss.Center).Render(c.Digital)
	lines = append(lines, digital)

	caption := ""
	if c.Caption != "" {
		caption = "▣ " + TruncateMiddle(c.Caption, width-2)
	}
	lines = append(lines, lipgloss.NewStyle().Foreground(pal.Caption).Faint(true).
		Width(width).Align(lipgloss.Center).Render(caption))

	block := strings.Join(lines, "\n")
	frame := lipgloss.NewStyle().Border(lipgloss.HiddenBorder())
	if opts.Selected {
		accent := opts.Accent
		if accent == nil {
			accent = lipgloss.NoColor{}
		}
		frame = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent)
	}
	return frame.Render(block)
}

func renderRow(row []Cell, pal Palette) string {
	var b strings.Builder
	start := 0
	for i := 1; i <= len(row); i++ {
		if i < len(row) && row[i].Part == row[start].Part {
			continue
		}
		var seg strings.Builder
		for _, cell := range row[start:i] {
			seg.WriteRune(cell.Rune)
		}
		if row[start].Part == PartEmpty {
			b.WriteString(seg.String())
		} else {
			b.WriteString(pal.style(row[start].Part).Render(seg.String()))
		}
		start = i
	}
	return b.String()
}

// NormalizeColor parses a hex color ("#rgb" or "#rrggbb", case-insensitive)
// and returns it in canonical "#rrggbb" form.
func NormalizeColor(value string) (string, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", false
	}
	if !strings.HasPrefix(trimmed, "#") {
		trimmed = "#" + trimmed
	}
	c, err := colorful.Hex(trimmed)
	if err != nil {
		return "", false
	}
	return c.Hex(), true
}

func terminalColor(value string) lipgloss.TerminalColor {
	hex, ok := NormalizeColor(value)
	if !ok {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(hex)
}

func centerText(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}

// TruncateMiddle shortens value to limit runes by replacing its middle with an
// ellipsis, keeping both ends readable.
func TruncateMiddle(value string, limit int) string {
	value = strings.TrimSpace(value)
	runes := []rune(value)
	if limit <= 0 || len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	keep := limit - 1
	prefix := keep / 2
	suffix := keep - prefix
	return string(runes[:prefix]) + "…" + string(runes[len(runes)-suffix:])
}
