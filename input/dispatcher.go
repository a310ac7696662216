package input

import (
	"log"

	"github.com/lixenwraith/tile-input/event"
)

const (
	BoardWidth  = 4
	BoardHeight = 4
	BoardCells  = BoardWidth * BoardHeight
)

// Cell is a board coordinate, X is the column and Y the row
type Cell struct {
	X int
	Y int
}

// CellFromIndex converts a row-major grid index into a coordinate
func CellFromIndex(index int) Cell {
	return Cell{X: index % BoardWidth, Y: index / BoardWidth}
}

var swipeDirections = map[Swipe]event.Direction{
	SwipeUp:    event.DirUp,
	SwipeRight: event.DirRight,
	SwipeDown:  event.DirDown,
	SwipeLeft:  event.DirLeft,
}

// Dispatcher translates raw input into semantic events on a Bus
// Owns the pending cell selection; all methods must run on one goroutine
type Dispatcher struct {
	bus      *event.Bus
	board    Board
	status   StatusArea
	keyTable *KeyTable

	pending    Cell
	hasPending bool
}

// Option configures a Dispatcher
type Option func(*Dispatcher)

// WithKeyTable replaces the default key bindings
func WithKeyTable(kt *KeyTable) Option {
	return func(d *Dispatcher) {
		if kt != nil {
			d.keyTable = kt.Clone()
		}
	}
}

// NewDispatcher creates a dispatcher broadcasting on bus
// Nil board or status are replaced with no-ops
func NewDispatcher(bus *event.Bus, board Board, status StatusArea, opts ...Option) *Dispatcher {
	if bus == nil {
		bus = event.NewBus()
	}
	if board == nil {
		board = nopBoard{}
	}
	if status == nil {
		status = nopStatus{}
	}
	d := &Dispatcher{
		bus:      bus,
		board:    board,
		status:   status,
		keyTable: DefaultKeyTable(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Bus returns the bus events are broadcast on
func (d *Dispatcher) Bus() *event.Bus {
	return d.bus
}

// KeyTable returns a copy of the active bindings
func (d *Dispatcher) KeyTable() *KeyTable {
	return d.keyTable.Clone()
}

// Subscribe registers h for events of type t
func (d *Dispatcher) Subscribe(t event.EventType, h event.Handler) {
	d.bus.Subscribe(t, h)
}

// Listen attaches the dispatcher to src
// Listening to a source again registers a second set of callbacks, so its input is handled twice
func (d *Dispatcher) Listen(src Source) {
	src.OnCellClick(d.HandleCellClick)
	src.OnKey(d.HandleKey)
	src.OnControl(d.HandleControl)
	src.OnSwipe(d.HandleSwipe)
}

// Pending returns the selected cell awaiting a value, if any
func (d *Dispatcher) Pending() (Cell, bool) {
	return d.pending, d.hasPending
}

// HandleCellClick selects the cell at a row-major index
// Indexes outside the grid are ignored
func (d *Dispatcher) HandleCellClick(index int) {
	if index < 0 || index >= BoardCells {
		return
	}

	d.board.ClearSelection()
	d.board.MarkSelected(index)

	d.pending = CellFromIndex(index)
	d.hasPending = true

	log.Printf("input: selected cell %d %d", d.pending.X, d.pending.Y)
}

// HandleKey processes a key-down and reports whether the default action is suppressed
func (d *Dispatcher) HandleKey(ev KeyEvent) bool {
	entry, ok := d.keyTable.Lookup(ev)
	if !ok {
		return false
	}

	// Placement ignores modifiers
	if entry.Behavior == BehaviorPlace {
		if !d.hasPending {
			return false
		}
		d.bus.Broadcast(event.PlaceTile{X: d.pending.X, Y: d.pending.Y, Value: entry.Value})
		d.hasPending = false
		d.pending = Cell{}
		return true
	}

	if ev.HasModifiers() {
		return false
	}

	switch entry.Behavior {
	case BehaviorMove:
		d.status.Clear()
		d.bus.Broadcast(event.Move{Direction: entry.Direction})
		return true
	case BehaviorRestart:
		return d.Restart()
	}
	return false
}

// HandleControl processes a control activation
func (d *Dispatcher) HandleControl(c Control) bool {
	switch c {
	case ControlRestart:
		return d.Restart()
	case ControlHint:
		d.status.ShowLoading()
		d.bus.Broadcast(event.Think{})
		return true
	case ControlRun:
		d.bus.Broadcast(event.Run{})
		return true
	}
	return false
}

// Restart broadcasts a restart request
func (d *Dispatcher) Restart() bool {
	d.bus.Broadcast(event.Restart{})
	return true
}

// HandleSwipe processes a recognised gesture
// The default action is always suppressed; unrecognised directions broadcast nothing
func (d *Dispatcher) HandleSwipe(s Swipe) bool {
	if dir, ok := swipeDirections[s]; ok {
		d.bus.Broadcast(event.Move{Direction: dir})
	} else {
		log.Printf("input: unrecognised swipe %d", s)
	}
	return true
}
