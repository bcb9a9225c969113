// Package viz provides the terminal front end for the step visualizer.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [App]: algorithm menu that opens a visualizer per selection
//   - [Model]: bar chart of the current step driven by a playback controller
//   - Theme selection with 5 built-in color schemes
//
// # Key Bindings
//
//	Space - Play/Pause
//	←/h   - Step back
//	→/l   - Step forward
//	R     - Reset to the first step
//	N     - New random array
//	+/-   - Change speed
//	T     - Cycle color themes
//	?     - Show help overlay
//	Esc   - Back to the menu
//
// Auto-advance runs on bubbletea ticks. Each tick carries the controller's
// generation token, so ticks left over from cancelled schedules are dropped.
package viz
