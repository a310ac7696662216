package input

import (
	"sort"
	"strconv"

	"github.com/lixenwraith/tile-input/event"
)

// MaxTileValue bounds place_<n> action names
const MaxTileValue = 1 << 16

// actionRegistry maps canonical action names to KeyEntry structs
// Used by keymap config loader to resolve action strings to bindings
var actionRegistry map[string]KeyEntry

func init() {
	actionRegistry = buildActionRegistry()
}

func buildActionRegistry() map[string]KeyEntry {
	r := map[string]KeyEntry{
		// Unbind sentinel
		"none": {},

		"move_up":    moveEntry(event.DirUp),
		"move_right": moveEntry(event.DirRight),
		"move_down":  moveEntry(event.DirDown),
		"move_left":  moveEntry(event.DirLeft),

		"restart": {Behavior: BehaviorRestart},
	}

	for v := 2; v <= MaxTileValue; v <<= 1 {
		r["place_"+strconv.Itoa(v)] = placeEntry(v)
	}
	return r
}

// ActionEntry resolves a canonical action name to its KeyEntry
// Returns zero KeyEntry and false if name is unknown
func ActionEntry(name string) (KeyEntry, bool) {
	entry, ok := actionRegistry[name]
	return entry, ok
}

// ActionNames returns all registered action names, sorted
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ActionName returns the canonical name for an entry, or "none"
func ActionName(e KeyEntry) string {
	switch e.Behavior {
	case BehaviorMove:
		return "move_" + e.Direction.String()
	case BehaviorPlace:
		return "place_" + strconv.Itoa(e.Value)
	case BehaviorRestart:
		return "restart"
	}
	return "none"
}
