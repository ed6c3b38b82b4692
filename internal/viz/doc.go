// Package viz renders tracking runs in the terminal.
//
//   - [Canvas]: Braille-based pixel canvas with a world projection ([Bounds])
//   - [PlotSeries] and [Path]: static charts of a stored run
//   - [Model]: a Bubble Tea live view fed by a [Feed] observer
//
// # Key Bindings
//
//	Space - Pause/Resume the run
//	?     - Show help
//	Q     - Quit and cancel the run
package viz
