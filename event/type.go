package event

// EventType represents the kind of semantic game event
type EventType uint8

const (
	EventNone EventType = iota

	// EventMove requests a board shift in one direction
	// Trigger: directional key without modifiers, recognised swipe
	// Consumer: game engine | Payload: Move
	EventMove

	// EventPlaceTile requests a tile of a given value at a selected cell
	// Trigger: value key while a cell selection is pending
	// Consumer: game engine | Payload: PlaceTile
	EventPlaceTile

	// EventRestart requests a new game
	// Trigger: restart control, space
	// Consumer: game engine | Payload: Restart
	EventRestart

	// EventThink requests a single AI hint
	// Trigger: hint control
	// Consumer: solver | Payload: Think
	EventThink

	// EventRun requests continuous AI play
	// Trigger: run control
	// Consumer: solver | Payload: Run
	EventRun
)

// Direction is the ordinal move direction carried by EventMove
type Direction uint8

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

var directionNames = [...]string{"up", "right", "down", "left"}

// Valid reports whether d is one of the four ordinal directions
func (d Direction) Valid() bool {
	return d <= DirLeft
}

func (d Direction) String() string {
	if !d.Valid() {
		return "invalid"
	}
	return directionNames[d]
}
