package terminal

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tile-input/input"
)

var tcellKeys = map[tcell.Key]input.Key{
	tcell.KeyEscape:    input.KeyEscape,
	tcell.KeyEnter:     input.KeyEnter,
	tcell.KeyTab:       input.KeyTab,
	tcell.KeyBackspace: input.KeyBackspace,
	tcell.KeyDelete:    input.KeyDelete,
	tcell.KeyUp:        input.KeyUp,
	tcell.KeyDown:      input.KeyDown,
	tcell.KeyLeft:      input.KeyLeft,
	tcell.KeyRight:     input.KeyRight,
	tcell.KeyHome:      input.KeyHome,
	tcell.KeyEnd:       input.KeyEnd,
	tcell.KeyPgUp:      input.KeyPageUp,
	tcell.KeyPgDn:      input.KeyPageDown,
}

// TranslateKey converts a tcell key event into an input.KeyEvent
// tcell drops shift for printable runes, so upper-case letters regain it here
func TranslateKey(ev *tcell.EventKey) (input.KeyEvent, bool) {
	mods := translateMods(ev.Modifiers())

	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if unicode.IsUpper(r) {
			mods |= input.ModShift
		}
		return input.RuneKey(r, mods), true
	}

	k, ok := tcellKeys[ev.Key()]
	if !ok {
		return input.KeyEvent{}, false
	}
	return input.NamedKey(k, mods), true
}

func translateMods(m tcell.ModMask) input.Modifier {
	var mods input.Modifier
	if m&tcell.ModShift != 0 {
		mods |= input.ModShift
	}
	if m&tcell.ModAlt != 0 {
		mods |= input.ModAlt
	}
	if m&tcell.ModCtrl != 0 {
		mods |= input.ModCtrl
	}
	if m&tcell.ModMeta != 0 {
		mods |= input.ModMeta
	}
	return mods
}
