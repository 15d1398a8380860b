// Package viz draws sorting animations in the terminal.
//
// Frames are drawn with half-block characters, two pixel rows per line,
// on a [Canvas]. [Player] is a Bubble Tea model that steps through the
// frames of a run; [TraceChart] and [PlanChart] plot how a run's events
// were spread over rows and frames, and [MetricsChart] how quickly the
// grid approached sorted.
//
// # Key Bindings
//
//	Space      - Pause/Resume
//	Left/Right - Step one frame
//	Home/End   - Jump to first/last frame
//	+/-        - Change speed
//	L          - Toggle looping
//	t          - Cycle colour themes
//	?          - Show help overlay
package viz
