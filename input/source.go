package input

// Control identifies a clickable on-screen control
type Control uint8

const (
	ControlNone Control = iota
	ControlRestart
	ControlHint
	ControlRun
)

var controlNames = [...]string{"none", "restart", "hint", "run"}

func (c Control) String() string {
	if int(c) < len(controlNames) {
		return controlNames[c]
	}
	return "none"
}

// Swipe is the physical direction reported by a gesture recogniser
// Values other than the four directions are unrecognised gestures
type Swipe uint8

const (
	SwipeNone Swipe = iota
	SwipeUp
	SwipeRight
	SwipeDown
	SwipeLeft
)

var swipeNames = [...]string{"none", "up", "right", "down", "left"}

func (s Swipe) String() string {
	if int(s) < len(swipeNames) {
		return swipeNames[s]
	}
	return "unknown"
}

// Source delivers raw input to registered callbacks
// Callbacks returning bool report whether the source's default action is suppressed
// Registering twice delivers twice
type Source interface {
	OnKey(fn func(KeyEvent) bool)
	OnCellClick(fn func(index int))
	OnControl(fn func(Control) bool)
	OnSwipe(fn func(Swipe) bool)
}

// Board is the visual grid the dispatcher marks selections on
type Board interface {
	ClearSelection()
	MarkSelected(index int)
}

// StatusArea is the feedback line under the board
type StatusArea interface {
	Clear()
	ShowLoading()
}

type nopBoard struct{}

func (nopBoard) ClearSelection()  {}
func (nopBoard) MarkSelected(int) {}

type nopStatus struct{}

func (nopStatus) Clear()       {}
func (nopStatus) ShowLoading() {}
