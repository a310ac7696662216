// Package terminal hosts the tile board in a tcell screen and feeds raw input to an input.Dispatcher.
//
// Features:
//   - 4x4 board with a single highlighted selection
//   - Restart, Hint and Run buttons hit-tested from mouse clicks
//   - Feedback line with an animated loading spinner
//   - Swipe recognition from mouse drags
//
// The game engine is not part of this package; it subscribes to the dispatcher's bus.
package terminal
