package input

// keyToName maps Key constants to canonical config string names
var keyToName = map[Key]string{
	KeyEscape:    "escape",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",

	KeyUp:       "up",
	KeyDown:     "down",
	KeyLeft:     "left",
	KeyRight:    "right",
	KeyHome:     "home",
	KeyEnd:      "end",
	KeyPageUp:   "page_up",
	KeyPageDown: "page_down",
}

var nameToKey = func() map[string]Key {
	m := make(map[string]Key, len(keyToName)+2)
	for k, name := range keyToName {
		m[name] = k
	}
	// Aliases
	m["esc"] = KeyEscape
	m["return"] = KeyEnter
	return m
}()

// KeyByName resolves a config key name (lowercase) to a Key
func KeyByName(name string) (Key, bool) {
	k, ok := nameToKey[name]
	return k, ok
}

func (k Key) String() string {
	if k == KeyRune {
		return "rune"
	}
	if name, ok := keyToName[k]; ok {
		return name
	}
	return "none"
}
