package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/clockwall/internal/face"
)

// faceFrame is the extra size a rendered face carries around its dial: one
// border cell on each side, plus the digital and caption lines below.
const (
	faceFrameWidth  = 2
	faceFrameHeight = 4
)

// wallColumns returns how many faces fit side by side in width.
func wallColumns(width, radius int) int {
	w, _ := face.Size(radius)
	return max(width/(w+faceFrameWidth), 1)
}

// wallRows returns how many face rows fit in height.
func wallRows(height, radius int) int {
	_, h := face.Size(radius)
	return max(height/(h+faceFrameHeight), 1)
}

func (m Model) wallWidth() int {
	if m.form != nil {
		return max(m.width-formWidth, 0)
	}
	return m.width
}

func (m Model) handleWallKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	cols := wallColumns(m.wallWidth(), m.radius)

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.selected-cols >= 0 {
			m.selected -= cols
		}
	case key.Matches(msg, m.keys.Down):
		if m.selected+cols < len(m.session.records) {
			m.selected += cols
		}
	case key.Matches(msg, m.keys.Left):
		m.selected--
	case key.Matches(msg, m.keys.Right):
		m.selected++
	case key.Matches(msg, m.keys.Top):
		m.selected = 0
	case key.Matches(msg, m.keys.Bottom):
		m.selected = len(m.session.records) - 1

	case key.Matches(msg, m.keys.Add):
		if m.store.EditingTarget() != nil {
			m.store.SetEditingTarget(nil)
		}
		m.form = newAddForm(m.newClockConfig(), m.preset)
		m.focus = focusForm
		m.notice = ""

	case key.Matches(msg, m.keys.Edit):
		if rec, ok := m.selectedRecord(); ok {
			m.store.SetEditingTarget(&rec)
			m.metrics.CountOperation("edit")
		}

	case key.Matches(msg, m.keys.Delete):
		if rec, ok := m.selectedRecord(); ok {
			m.store.Delete(rec.ID)
			m.operation("delete", "clock deleted", "id", rec.ID)
			m.notice = "Deleted " + shortID(rec.ID)
		}

	case key.Matches(msg, m.keys.PlusSecond):
		m.nudge(time.Second)
	case key.Matches(msg, m.keys.MinusSecond):
		m.nudge(-time.Second)
	case key.Matches(msg, m.keys.PlusMinute):
		m.nudge(time.Minute)
	case key.Matches(msg, m.keys.MinusMinute):
		m.nudge(-time.Minute)

	case key.Matches(msg, m.keys.Reset):
		if rec, ok := m.selectedRecord(); ok {
			m.store.ResetTime(rec.ID, m.clock.Now())
			m.operation("reset", "clock reset", "id", rec.ID)
		}

	case key.Matches(msg, m.keys.CyclePreset):
		if rec, ok := m.selectedRecord(); ok {
			next := m.catalog.Next(m.catalog.Match(rec.Config))
			m.store.Update(rec.ID, next.Patch())
			m.operation("preset", "preset applied", "id", rec.ID, "preset", next.Name)
			m.notice = "Preset " + next.Name
		}
	}

	m.clampSelection()
	return m, nil
}

// renderWall lays the faces out in a grid, scrolled so the selected clock is
// visible.
func (m Model) renderWall(width, height int) string {
	styles := m.theme.Styles()
	box := lipgloss.NewStyle().Width(width).Height(height)

	records := m.session.records
	if len(records) == 0 {
		hint := styles.MutedText.Render("No clocks yet. Press ") +
			styles.WarningText.Render("a") +
			styles.MutedText.Render(" to add one.")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, hint)
	}

	cols := wallColumns(width, m.radius)
	visible := wallRows(height, m.radius)
	first := 0
	if row := m.selected / cols; row >= visible {
		first = row - visible + 1
	}

	editingID := ""
	if m.session.editing != nil {
		editingID = m.session.editing.ID
	}
	accent := lipgloss.Color(m.theme.BorderFocus)

	rows := make([]string, 0, visible)
	for r := first; r < first+visible; r++ {
		start := r * cols
		if start >= len(records) {
			break
		}
		end := min(start+cols, len(records))
		cells := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			opts := face.Options{Radius: m.radius, Selected: i == m.selected, Accent: accent}
			if records[i].ID == editingID {
				opts.Selected = true
				opts.Accent = lipgloss.Color(m.theme.Warning)
			}
			cells = append(cells, face.Render(records[i], opts))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return box.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
