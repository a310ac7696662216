package bubble

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lixenwraith/tile-input/input"
)

type namedKey struct {
	key  input.Key
	mods input.Modifier
}

var teaKeys = map[tea.KeyType]namedKey{
	tea.KeyEsc:        {input.KeyEscape, 0},
	tea.KeyEnter:      {input.KeyEnter, 0},
	tea.KeyTab:        {input.KeyTab, 0},
	tea.KeyBackspace:  {input.KeyBackspace, 0},
	tea.KeyDelete:     {input.KeyDelete, 0},
	tea.KeyHome:       {input.KeyHome, 0},
	tea.KeyEnd:        {input.KeyEnd, 0},
	tea.KeyPgUp:       {input.KeyPageUp, 0},
	tea.KeyPgDown:     {input.KeyPageDown, 0},
	tea.KeyUp:         {input.KeyUp, 0},
	tea.KeyDown:       {input.KeyDown, 0},
	tea.KeyLeft:       {input.KeyLeft, 0},
	tea.KeyRight:      {input.KeyRight, 0},
	tea.KeyShiftUp:    {input.KeyUp, input.ModShift},
	tea.KeyShiftDown:  {input.KeyDown, input.ModShift},
	tea.KeyShiftLeft:  {input.KeyLeft, input.ModShift},
	tea.KeyShiftRight: {input.KeyRight, input.ModShift},
	tea.KeyCtrlUp:     {input.KeyUp, input.ModCtrl},
	tea.KeyCtrlDown:   {input.KeyDown, input.ModCtrl},
	tea.KeyCtrlLeft:   {input.KeyLeft, input.ModCtrl},
	tea.KeyCtrlRight:  {input.KeyRight, input.ModCtrl},
}

// translateKey converts a bubbletea key message into an input.KeyEvent
// Pasted text and multi-rune messages are not single key presses
func translateKey(msg tea.KeyMsg) (input.KeyEvent, bool) {
	var mods input.Modifier
	if msg.Alt {
		mods |= input.ModAlt
	}

	switch msg.Type {
	case tea.KeyRunes:
		if msg.Paste || len(msg.Runes) != 1 {
			return input.KeyEvent{}, false
		}
		r := msg.Runes[0]
		if unicode.IsUpper(r) {
			mods |= input.ModShift
		}
		return input.RuneKey(r, mods), true
	case tea.KeySpace:
		return input.RuneKey(' ', mods), true
	}

	nk, ok := teaKeys[msg.Type]
	if !ok {
		return input.KeyEvent{}, false
	}
	return input.NamedKey(nk.key, mods|nk.mods), true
}
