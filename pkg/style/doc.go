// Package style renders svnext results for the terminal.
//
// Text output uses pterm tables and lipgloss styles; colour is dropped
// when stdout is not a terminal. YAML and JSON output carry the same
// data for scripts.
package style
