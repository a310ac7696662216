package input

import "github.com/lixenwraith/tile-input/event"

// KeyBehavior classifies how a key is processed
type KeyBehavior uint8

const (
	BehaviorNone    KeyBehavior = iota
	BehaviorMove                // Broadcast move, needs no modifiers
	BehaviorPlace               // Broadcast placeTile when a cell is pending
	BehaviorRestart             // Broadcast restart, needs no modifiers
)

// KeyEntry describes a key's behavior without function pointers
type KeyEntry struct {
	Behavior  KeyBehavior
	Direction event.Direction // BehaviorMove
	Value     int             // BehaviorPlace
}

// KeyTable maps keys to behaviors
type KeyTable struct {
	// Named keys (arrows, escape, ...)
	SpecialKeys map[Key]KeyEntry

	// Printable characters
	Runes map[rune]KeyEntry
}

func moveEntry(d event.Direction) KeyEntry {
	return KeyEntry{Behavior: BehaviorMove, Direction: d}
}

func placeEntry(v int) KeyEntry {
	return KeyEntry{Behavior: BehaviorPlace, Value: v}
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[Key]KeyEntry{
			KeyUp:    moveEntry(event.DirUp),
			KeyRight: moveEntry(event.DirRight),
			KeyDown:  moveEntry(event.DirDown),
			KeyLeft:  moveEntry(event.DirLeft),
		},

		Runes: map[rune]KeyEntry{
			// vi directions
			'k': moveEntry(event.DirUp),
			'l': moveEntry(event.DirRight),
			'j': moveEntry(event.DirDown),
			'h': moveEntry(event.DirLeft),

			// Number row, left to right
			'1': placeEntry(2),
			'2': placeEntry(4),
			'3': placeEntry(8),
			'4': placeEntry(16),
			'5': placeEntry(32),
			'6': placeEntry(64),
			'7': placeEntry(128),
			'8': placeEntry(256),
			'9': placeEntry(512),
			'0': placeEntry(1024),

			' ': {Behavior: BehaviorRestart},
		},
	}
}

// Lookup returns the entry bound to ev, ignoring modifiers
func (kt *KeyTable) Lookup(ev KeyEvent) (KeyEntry, bool) {
	var (
		entry KeyEntry
		ok    bool
	)
	if ev.Key == KeyRune {
		entry, ok = kt.Runes[ev.Rune]
	} else {
		entry, ok = kt.SpecialKeys[ev.Key]
	}
	if !ok || entry.Behavior == BehaviorNone {
		return KeyEntry{}, false
	}
	return entry, true
}

// DirectionMap returns every binding that produces a move, keyed by event
func (kt *KeyTable) DirectionMap() map[KeyEvent]event.Direction {
	m := make(map[KeyEvent]event.Direction)
	for k, e := range kt.SpecialKeys {
		if e.Behavior == BehaviorMove {
			m[NamedKey(k, ModNone)] = e.Direction
		}
	}
	for r, e := range kt.Runes {
		if e.Behavior == BehaviorMove {
			m[RuneKey(r, ModNone)] = e.Direction
		}
	}
	return m
}

// ValueMap returns every binding that places a tile, keyed by event
func (kt *KeyTable) ValueMap() map[KeyEvent]int {
	m := make(map[KeyEvent]int)
	for k, e := range kt.SpecialKeys {
		if e.Behavior == BehaviorPlace {
			m[NamedKey(k, ModNone)] = e.Value
		}
	}
	for r, e := range kt.Runes {
		if e.Behavior == BehaviorPlace {
			m[RuneKey(r, ModNone)] = e.Value
		}
	}
	return m
}

// Clone returns a deep copy of the KeyTable
func (kt *KeyTable) Clone() *KeyTable {
	c := &KeyTable{
		SpecialKeys: make(map[Key]KeyEntry, len(kt.SpecialKeys)),
		Runes:       make(map[rune]KeyEntry, len(kt.Runes)),
	}
	for k, v := range kt.SpecialKeys {
		c.SpecialKeys[k] = v
	}
	for k, v := range kt.Runes {
		c.Runes[k] = v
	}
	return c
}
