package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Escape     key.Binding
	Activity   key.Binding
	FocusForm  key.Binding

	// Wall navigation
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Top    key.Binding
	Bottom key.Binding

	// Clock actions
	Add         key.Binding
	Edit        key.Binding
	Delete      key.Binding
	PlusSecond  key.Binding
	MinusSecond key.Binding
	PlusMinute  key.Binding
	MinusMinute key.Binding
	Reset       key.Binding
	CyclePreset key.Binding

	// Form
	NextField  key.Binding
	PrevField  key.Binding
	Submit     key.Binding
	FormPreset key.Binding

	// Activity view
	PageUp   key.Binding
	PageDown key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Close form / back to wall"),
		),
		Activity: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "Activity log"),
		),
		FocusForm: key.NewBinding(
			key.WithKeys("ctrl+w"),
			key.WithHelp("ctrl+w", "Switch wall/form focus"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Row up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Row down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("left", "Previous clock"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("right", "Next clock"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "First clock"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Last clock"),
		),

		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Add clock"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e/enter", "Edit clock"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x", "d", "delete"),
			key.WithHelp("x/d", "Delete clock"),
		),
		PlusSecond: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "Plus one second"),
		),
		MinusSecond: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "Minus one second"),
		),
		PlusMinute: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "Plus one minute"),
		),
		MinusMinute: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "Minus one minute"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reset to now"),
		),
		CyclePreset: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "Next preset"),
		),

		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "Next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "Previous field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Save"),
		),
		FormPreset: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "Apply next preset"),
		),

		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "Page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdown", "Page down"),
		),
	}
}

// ShortHelp returns key bindings for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.Delete, k.Activity, k.Help, k.Quit}
}

// FormHelp returns the footer bindings while the form has focus.
func (k keyMap) FormHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Submit, k.FormPreset, k.FocusForm, k.Escape}
}

// ActivityHelp returns the footer bindings of the activity view.
func (k keyMap) ActivityHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom, k.Escape}
}

// FullHelp returns key bindings grouped for the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Top, k.Bottom},
		{k.Add, k.Edit, k.Delete, k.CyclePreset},
		{k.PlusSecond, k.MinusSecond, k.PlusMinute, k.MinusMinute, k.Reset},
		{k.NextField, k.PrevField, k.Submit, k.FormPreset, k.FocusForm, k.Escape},
		{k.Activity, k.CycleTheme, k.Help, k.Quit},
	}
}
