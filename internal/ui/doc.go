// Package ui provides the terminal interface for clockwall.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model is the root state: it holds the
// store, the preset catalog, and a session that mirrors the store's records
// and editing-target channels. The store notifies synchronously, so every
// mutation made in Update is already reflected in the session when Update
// returns.
//
// # Package Structure
//
//   - app.go: Model, Options, the Update/View loop and key routing
//   - wall.go: the grid of clock faces and the wall key actions
//   - form.go: the add/edit form with color and time validation
//   - activity.go: the log tail view
//   - session.go: store subscriptions
//   - header.go, help.go, keys.go, theme.go: chrome
//
// # Editing
//
// Pressing e sets the editing target on the store; the form opens when the
// session sees the new target, and closes when the store goes back to idle.
// If the target's record disappears from a records snapshot while the form
// is open, the form leaves edit mode, shows a notice and clears the target.
//
// # Ticks
//
// The program never schedules its own ticks. The app package runs a ticker
// that sends TickMsg once a second; Update answers each one with a single
// Store.AdvanceAllByOneSecond call.
//
// # Key Bindings
//
//   - a: Add a clock
//   - e/enter: Edit the selected clock
//   - x/d: Delete the selected clock
//   - +/-: Nudge by one second; ]/[ by one minute; r resets to now
//   - p: Apply the next preset to the selected clock
//   - l: Activity log
//   - T: Cycle theme (saved to prefs)
//   - h/?: Help
//   - q or Ctrl+C: Exit
package ui
