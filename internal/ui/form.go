package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/clockwall/internal/face"
	"github.com/five82/clockwall/internal/geometry"
	"github.com/five82/clockwall/internal/presets"
	"github.com/five82/clockwall/internal/state"
)

// formWidth is the outer width of the form panel, border included.
const formWidth = 44

type formMode int

const (
	formAdd formMode = iota
	formEdit
)

type formField int

const (
	fieldPreset formField = iota
	fieldHand
	fieldMarker
	fieldBorder
	fieldAnalog
	fieldDigital
	fieldTime
	fieldImage
	fieldCount
)

var fieldLabels = [fieldCount]string{
	fieldPreset:  "Preset",
	fieldHand:    "Hands",
	fieldMarker:  "Markers",
	fieldBorder:  "Border",
	fieldAnalog:  "Numbers",
	fieldDigital: "Digital",
	fieldTime:    "Time",
	fieldImage:   "Background",
}

func isColorField(f formField) bool {
	return f >= fieldHand && f <= fieldDigital
}

type formAction int

const (
	formNone formAction = iota
	formSubmit
	formCancel
)

// clockForm collects a full clock configuration. In edit mode it is bound to
// the record that was the editing target when it opened.
type clockForm struct {
	mode     formMode
	targetID string
	day      time.Time // date and location the entered time lands on
	inputs   [fieldCount]textinput.Model
	focus    formField
	err      string
}

func newAddForm(cfg state.Config, preset string) *clockForm {
	return newClockForm(formAdd, "", cfg, preset)
}

func newEditForm(rec state.Record, preset string) *clockForm {
	return newClockForm(formEdit, rec.ID, rec.Config, preset)
}

func newClockForm(mode formMode, id string, cfg state.Config, preset string) *clockForm {
	f := &clockForm{mode: mode, targetID: id, day: cfg.StartTime}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 512
		ti.Width = formWidth - 22
		f.inputs[i] = ti
	}
	f.inputs[fieldPreset].Placeholder = "classic"
	f.inputs[fieldTime].Placeholder = "HH:MM:SS"
	f.inputs[fieldImage].Placeholder = "none"

	f.inputs[fieldPreset].SetValue(preset)
	f.setColors(cfg)
	f.inputs[fieldTime].SetValue(geometry.FormatClockTime(cfg.StartTime))
	f.inputs[fieldImage].SetValue(cfg.BackgroundImage)
	f.inputs[fieldPreset].Focus()
	return f
}

func (f *clockForm) setColors(cfg state.Config) {
	f.inputs[fieldHand].SetValue(cfg.HandColor)
	f.inputs[fieldMarker].SetValue(cfg.MarkerColor)
	f.inputs[fieldBorder].SetValue(cfg.BorderColor)
	f.inputs[fieldAnalog].SetValue(cfg.AnalogNumbersColor)
	f.inputs[fieldDigital].SetValue(cfg.DigitalNumbersColor)
}

func (f *clockForm) value(field formField) string {
	return strings.TrimSpace(f.inputs[field].Value())
}

// applyPreset copies a preset's colors and background into the fields. The
// time field is left alone.
func (f *clockForm) applyPreset(p presets.Preset) {
	f.inputs[fieldPreset].SetValue(p.Name)
	f.setColors(p.Config(time.Time{}))
	f.inputs[fieldImage].SetValue(p.BackgroundImage)
	f.err = ""
}

func (f *clockForm) setFocus(field formField) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = (field + fieldCount) % fieldCount
	return f.inputs[f.focus].Focus()
}

// Update handles a key while the form has focus.
func (f *clockForm) Update(msg tea.KeyMsg, keys keyMap, catalog *presets.Catalog) (formAction, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Escape):
		return formCancel, nil
	case key.Matches(msg, keys.NextField):
		return formNone, f.setFocus(f.focus + 1)
	case key.Matches(msg, keys.PrevField):
		return formNone, f.setFocus(f.focus - 1)
	case key.Matches(msg, keys.FormPreset):
		f.applyPreset(catalog.Next(f.value(fieldPreset)))
		return formNone, nil
	case key.Matches(msg, keys.Submit):
		if f.focus == fieldPreset {
			name := f.value(fieldPreset)
			p, ok := catalog.Lookup(name)
			if !ok {
				f.err = fmt.Sprintf("unknown preset %q", name)
				return formNone, nil
			}
			f.applyPreset(p)
			return formNone, f.setFocus(fieldHand)
		}
		if _, err := f.Config(); err != nil {
			f.err = err.Error()
			return formNone, nil
		}
		return formSubmit, nil
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	f.err = ""
	return formNone, cmd
}

// Config validates the fields and returns the configuration they describe.
// Colors are normalized to #rrggbb.
func (f *clockForm) Config() (state.Config, error) {
	var colors [fieldCount]string
	for field := fieldHand; field <= fieldDigital; field++ {
		raw := f.value(field)
		normalized, ok := face.NormalizeColor(raw)
		if !ok {
			return state.Config{}, fmt.Errorf("%s: invalid color %q", strings.ToLower(fieldLabels[field]), raw)
		}
		colors[field] = normalized
	}
	start, err := geometry.ParseClockTime(f.value(fieldTime), f.day)
	if err != nil {
		return state.Config{}, fmt.Errorf("time: %w", err)
	}
	return state.Config{
		HandColor:           colors[fieldHand],
		MarkerColor:         colors[fieldMarker],
		BorderColor:         colors[fieldBorder],
		AnalogNumbersColor:  colors[fieldAnalog],
		DigitalNumbersColor: colors[fieldDigital],
		BackgroundImage:     f.value(fieldImage),
		StartTime:           start,
	}, nil
}

// View renders the form panel.
func (f *clockForm) View(theme Theme, focused bool, height int) string {
	styles := theme.Styles()
	var b strings.Builder

	title := "New clock"
	if f.mode == formEdit {
		title = "Edit clock " + shortID(f.targetID)
	}
	b.WriteString(styles.AccentText.Bold(true).Render(title))
	b.WriteString("\n\n")

	for field := formField(0); field < fieldCount; field++ {
		labelStyle := styles.MutedText
		marker := "  "
		if field == f.focus && focused {
			labelStyle = styles.WarningText.Bold(true)
			marker = "› "
		}
		b.WriteString(labelStyle.Render(marker + padRight(fieldLabels[field], 11)))
		b.WriteString(f.inputs[field].View())
		if isColorField(field) {
			if hex, ok := face.NormalizeColor(f.value(field)); ok {
				b.WriteString(" " + lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("██"))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if cfg, err := f.Config(); err == nil {
		b.WriteString(face.Render(state.Record{Config: cfg}, face.Options{Radius: face.MinRadius}))
		b.WriteString("\n")
	}
	if f.err != "" {
		b.WriteString(styles.DangerText.Render(f.err))
		b.WriteString("\n")
	}
	b.WriteString(styles.FaintText.Render("enter save • esc cancel • ctrl+p preset"))

	panel := styles.Panel
	if focused {
		panel = styles.FocusedPanel
	}
	return panel.Width(formWidth - 2).Height(max(height-2, 0)).Render(b.String())
}

func padRight(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
