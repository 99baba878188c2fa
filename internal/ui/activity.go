package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/clockwall/internal/face"
	"github.com/five82/clockwall/internal/logtail"
)

type activityMsg struct {
	entries []logtail.Entry
	err     error
}

// loadActivityCmd reads the tail of the log file off the UI goroutine.
func loadActivityCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			return activityMsg{}
		}
		lines, err := logtail.Read(path, ActivityLineLimit)
		if err != nil {
			return activityMsg{err: err}
		}
		return activityMsg{entries: logtail.ParseAll(lines)}
	}
}

func (m *Model) resizeActivity() {
	// header, footer, title line
	m.activity.Width = m.width
	m.activity.Height = max(m.height-3, 1)
}

func (m *Model) setActivity(msg activityMsg) {
	m.activityErr = msg.err
	if msg.err != nil {
		return
	}
	follow := m.activity.AtBottom() || m.activity.TotalLineCount() == 0
	m.activity.SetContent(m.formatEntries(msg.entries))
	if follow {
		m.activity.GotoBottom()
	}
	if n := len(msg.entries); n > 0 && !msg.entries[n-1].Time.IsZero() {
		m.lastActivity = msg.entries[n-1].Time
	}
}

func (m Model) formatEntries(entries []logtail.Entry) string {
	styles := m.theme.Styles()
	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteString("\n")
		}
		if e.Time.IsZero() && e.Level == "" {
			b.WriteString(styles.FaintText.Render(e.Raw))
			continue
		}
		b.WriteString(styles.FaintText.Render(e.Time.Local().Format("15:04:05")))
		b.WriteString(" ")
		b.WriteString(levelStyle(styles, e.Level).Render(padRight(e.Level, 5)))
		b.WriteString(" ")
		b.WriteString(styles.Text.Render(e.Message))
		for _, a := range e.Attrs {
			if a.Key == "session" {
				continue
			}
			b.WriteString(" ")
			b.WriteString(styles.MutedText.Render(a.Key + "="))
			b.WriteString(styles.InfoText.Render(a.Value))
		}
	}
	return b.String()
}

func levelStyle(styles Styles, level string) lipgloss.Style {
	switch level {
	case "ERROR":
		return styles.DangerText
	case "WARN":
		return styles.WarningText
	case "DEBUG":
		return styles.FaintText
	default:
		return styles.SuccessText
	}
}

func (m Model) handleActivityKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Activity):
		m.view = ViewWall
		return m, nil
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.Top):
		m.activity.GotoTop()
		return m, nil
	case key.Matches(msg, m.keys.Bottom):
		m.activity.GotoBottom()
		return m, nil
	case key.Matches(msg, m.keys.PageUp):
		m.activity.HalfPageUp()
		return m, nil
	case key.Matches(msg, m.keys.PageDown):
		m.activity.HalfPageDown()
		return m, nil
	}
	var cmd tea.Cmd
	m.activity, cmd = m.activity.Update(msg)
	return m, cmd
}

func (m Model) renderActivity(height int) string {
	styles := m.theme.Styles()

	title := styles.AccentText.Bold(true).Render("Activity") + " " +
		styles.FaintText.Render(face.TruncateMiddle(m.logPath, max(m.width-30, 10)))
	if !m.lastActivity.IsZero() {
		title += " " + styles.MutedText.Render("last "+humanizeDuration(m.clock.Since(m.lastActivity))+" ago")
	}

	var content string
	switch {
	case m.activityErr != nil:
		content = styles.DangerText.Render("Cannot read log: " + m.activityErr.Error())
	case m.activity.TotalLineCount() == 0:
		content = styles.MutedText.Render("No activity yet.")
	default:
		vp := m.activity
		vp.Height = max(height-1, 1)
		content = vp.View()
	}

	return lipgloss.NewStyle().Width(m.width).Height(height).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}
