// Package config loads clockwall's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/clockwall/config.toml
//  3. If the file doesn't exist, fall back to defaults
//  4. Empty fields in an existing file also use defaults
//
// # Default Values
//
//   - Config file: ~/.config/clockwall/config.toml
//   - Log directory: ~/.local/state/clockwall
//   - Log file: <log_dir>/clockwall.log
//   - Log level: info
//   - Metrics endpoint: disabled
//
// # TOML Format
//
//	log_dir = "~/.local/state/clockwall"
//	log_level = "debug"
//	metrics_addr = "127.0.0.1:9464"
//
//	[presets.neon]
//	hand_color = "#FF00FF"
//	marker_color = "#FF00FF"
//	border_color = "#00FFFF"
//	analog_numbers_color = "#FF00FF"
//	digital_numbers_color = "#00FFFF"
//
//	[[clock]]
//	preset = "vintage"
//	start_time = "09:30"
//
//	[[clock]]
//	preset = "neon"
//	start_time = "now"
//
// Presets declared here are merged over the built-in catalog (classic,
// modern, vintage). Each [[clock]] entry seeds one clock when the program
// starts; clocks themselves are never written back.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than a
// missing file, TOML syntax errors and unknown log levels. Unknown presets and
// malformed start times in [[clock]] entries are reported by SeedConfigs.
package config
