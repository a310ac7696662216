package event

// Wire names match the subscription names used by the game engine front end
var typeToName = map[EventType]string{
	EventMove:      "move",
	EventPlaceTile: "placeTile",
	EventRestart:   "restart",
	EventThink:     "think",
	EventRun:       "run",
}

var nameToType = func() map[string]EventType {
	m := make(map[string]EventType, len(typeToName))
	for t, name := range typeToName {
		m[name] = t
	}
	return m
}()

// Lookup returns the EventType registered under name
func Lookup(name string) (EventType, bool) {
	et, ok := nameToType[name]
	return et, ok
}

// Types returns all broadcastable event types in declaration order
func Types() []EventType {
	return []EventType{EventMove, EventPlaceTile, EventRestart, EventThink, EventRun}
}

func (t EventType) String() string {
	if name, ok := typeToName[t]; ok {
		return name
	}
	return "none"
}
