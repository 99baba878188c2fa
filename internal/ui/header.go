package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the status bar: clock count, edit state, the preset
// new clocks start from, the theme, and the latest notice.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < LayoutCompactWidth

	parts := []string{bg.Render("clockwall", styles.Logo)}

	countLabel := "Clocks:"
	if compact {
		countLabel = "N:"
	}
	parts = append(parts,
		bg.Render(countLabel, styles.MutedText)+bg.Space()+
			bg.Render(fmt.Sprintf("%d", len(m.session.records)), styles.Text),
	)

	if target := m.session.editing; target != nil {
		parts = append(parts, bg.Render("● EDIT", styles.WarningText.Bold(true))+bg.Space()+
			bg.Render(shortID(target.ID), styles.Text))
	} else if m.form != nil {
		parts = append(parts, bg.Render("● NEW", styles.SuccessText))
	} else {
		parts = append(parts, bg.Render("● IDLE", styles.MutedText))
	}

	if !compact {
		parts = append(parts,
			bg.Render("Preset:", styles.MutedText)+bg.Space()+bg.Render(m.preset, styles.AccentText),
			bg.Render("Theme:", styles.MutedText)+bg.Space()+bg.Render(m.theme.Name, styles.Text),
		)
	}

	if m.view == ViewActivity {
		parts = append(parts, bg.Render("ACTIVITY", styles.InfoText.Bold(true)))
	}

	if m.notice != "" {
		limit := 60
		if compact {
			limit = 30
		}
		parts = append(parts, bg.Render(truncate(m.notice, limit), styles.WarningText))
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Padding(0, 1).
		Width(m.width).
		Render(bg.Join(parts, "  "))
}

// renderFooter lists the short help bindings for the focused area.
func (m Model) renderFooter() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	bindings := m.keys.ShortHelp()
	switch {
	case m.view == ViewActivity:
		bindings = m.keys.ActivityHelp()
	case m.form != nil && m.focus == focusForm:
		bindings = m.keys.FormHelp()
	}

	items := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		items = append(items, bg.Render(h.Key, styles.WarningText)+bg.Space()+bg.Render(strings.ToLower(h.Desc), styles.MutedText))
	}

	return styles.Footer.Width(m.width).Render(bg.Join(items, "  "))
}
