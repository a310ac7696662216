package terminal

import "github.com/lixenwraith/tile-input/input"

// DefaultSwipeThreshold is the minimum drag travel, in columns, for a swipe
const DefaultSwipeThreshold = 3

// Gesture is the outcome of a press/release pair
type Gesture struct {
	StartX, StartY int
	Tap            bool        // Travel below threshold, treat as click at start
	Swipe          input.Swipe // SwipeNone when travel has no dominant axis
}

// Recognizer turns mouse press/release pairs into taps and swipes
// Terminal cells are about twice as tall as wide, so vertical travel counts double
type Recognizer struct {
	threshold int

	pressed        bool
	startX, startY int
}

// NewRecognizer creates a recogniser; thresholds below 1 use the default
func NewRecognizer(threshold int) *Recognizer {
	if threshold < 1 {
		threshold = DefaultSwipeThreshold
	}
	return &Recognizer{threshold: threshold}
}

// Press records the start of a gesture
func (r *Recognizer) Press(x, y int) {
	r.pressed = true
	r.startX, r.startY = x, y
}

// Pressed reports whether a gesture is in progress
func (r *Recognizer) Pressed() bool {
	return r.pressed
}

// Release ends the gesture at (x, y)
// Returns false if no press was recorded
func (r *Recognizer) Release(x, y int) (Gesture, bool) {
	if !r.pressed {
		return Gesture{}, false
	}
	r.pressed = false

	g := Gesture{StartX: r.startX, StartY: r.startY}

	dx, dy := x-r.startX, y-r.startY
	wx, wy := abs(dx), 2*abs(dy)

	if max(wx, wy) < r.threshold {
		g.Tap = true
		return g, true
	}

	switch {
	case wx > wy && dx > 0:
		g.Swipe = input.SwipeRight
	case wx > wy:
		g.Swipe = input.SwipeLeft
	case wy > wx && dy > 0:
		g.Swipe = input.SwipeDown
	case wy > wx:
		g.Swipe = input.SwipeUp
	default:
		g.Swipe = input.SwipeNone
	}
	return g, true
}

// Cancel drops an in-progress gesture
func (r *Recognizer) Cancel() {
	r.pressed = false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
