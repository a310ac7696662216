package event

import "fmt"

// Event is the closed set of payloads the dispatcher broadcasts
// Only this package can add variants
type Event interface {
	Type() EventType
	isEvent()
}

// Move carries the ordinal direction of a board shift
type Move struct {
	Direction Direction
}

// PlaceTile carries the target cell (column X, row Y) and the tile value
type PlaceTile struct {
	X     int
	Y     int
	Value int
}

// Restart has no payload
type Restart struct{}

// Think has no payload
type Think struct{}

// Run has no payload
type Run struct{}

func (Move) Type() EventType      { return EventMove }
func (PlaceTile) Type() EventType { return EventPlaceTile }
func (Restart) Type() EventType   { return EventRestart }
func (Think) Type() EventType     { return EventThink }
func (Run) Type() EventType       { return EventRun }

func (Move) isEvent()      {}
func (PlaceTile) isEvent() {}
func (Restart) isEvent()   {}
func (Think) isEvent()     {}
func (Run) isEvent()       {}

func (m Move) String() string {
	return fmt.Sprintf("move %s", m.Direction)
}

func (p PlaceTile) String() string {
	return fmt.Sprintf("placeTile (%d,%d)=%d", p.X, p.Y, p.Value)
}
