package input

// Key represents a named, non-printable key or KeyRune for printable input
type Key uint16

const (
	KeyNone Key = iota
	KeyRune     // Printable character (check KeyEvent.Rune)

	// Control keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete

	// Navigation
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
)

// Modifier flags
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << 0
	ModAlt   Modifier = 1 << 1
	ModCtrl  Modifier = 1 << 2
	ModMeta  Modifier = 1 << 3
)

// KeyEvent is a toolkit-neutral key-down
type KeyEvent struct {
	Key  Key
	Rune rune
	Mods Modifier
}

// RuneKey builds a KeyEvent for a printable character
func RuneKey(r rune, mods Modifier) KeyEvent {
	return KeyEvent{Key: KeyRune, Rune: r, Mods: mods}
}

// NamedKey builds a KeyEvent for a named key
func NamedKey(k Key, mods Modifier) KeyEvent {
	return KeyEvent{Key: k, Mods: mods}
}

// HasModifiers reports whether any of shift, alt, ctrl or meta was held
func (ev KeyEvent) HasModifiers() bool {
	return ev.Mods != ModNone
}
