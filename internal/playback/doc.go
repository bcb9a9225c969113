// Package playback moves a cursor over a precomputed [steps.Sequence].
//
// The [Controller] is a small state machine:
//
//	Idle ──Play──▶ Playing ──Pause──▶ Paused ──Play──▶ Playing
//	  ▲               │                  │
//	  └── Reset / last step reached ◀────┘
//
// Auto-advance never touches a clock directly. The controller asks a
// [Scheduler] to deliver a [Token] after a delay and the host hands the token
// back through [Controller.Fire]. Only the most recently issued token is
// honoured, so at most one advance is ever outstanding and every state change
// cancels and reschedules it.
//
// Adapters:
//
//   - [TimerScheduler]: real timers, tokens delivered on a channel
//   - the bubbletea view schedules tokens as tick messages
//
// # Thread Safety
//
// A Controller must be driven from a single goroutine.
package playback
