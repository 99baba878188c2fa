// Package app is the composition root of clockwall.
//
// # Overview
//
// Run wires configuration, logging, the clock store, metrics and the UI
// together and blocks until the user quits or the context is cancelled.
//
//  1. Load ~/.config/clockwall/config.toml and the UI preferences
//  2. Open the log file and build the session-tagged logger
//  3. Create the store and seed it from the [[clock]] entries
//  4. Register metrics and, when metrics_addr is set, serve /metrics
//  5. Start the one-second ticker and run the Bubble Tea program
//
// # Ticker
//
// StartTicker is the only time source that advances clocks. It runs on a
// clockwork.Clock so tests can drive it with a fake clock, and it never
// touches the store directly: in the TUI each tick becomes a ui.TickMsg,
// and the store is advanced on the Bubble Tea goroutine that owns it.
//
//	ticker goroutine ──Send(TickMsg)──> Update ──> Store.AdvanceAllByOneSecond
//	                                                  │
//	                                                  └─> subscribers (ui, metrics)
//
// # Teardown
//
// Deferred calls stop the ticker and wait for it, release the UI and metrics
// subscriptions, shut the metrics server down, and close the log file.
package app
