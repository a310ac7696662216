package main

import (
	"fmt"

	"github.com/lixenwraith/tile-input/input"
	"github.com/lixenwraith/tile-input/terminal"
)

func formatMods(m input.Modifier) string {
	var mods string
	if m&input.ModShift != 0 {
		mods += "Shift+"
	}
	if m&input.ModAlt != 0 {
		mods += "Alt+"
	}
	if m&input.ModCtrl != 0 {
		mods += "Ctrl+"
	}
	if m&input.ModMeta != 0 {
		mods += "Meta+"
	}
	return mods
}

// formatKey describes a key and the action it is bound to
func formatKey(ev input.KeyEvent, kt *input.KeyTable) string {
	keyName := ev.Key.String()
	if ev.Key == input.KeyRune {
		if ev.Rune >= 0x20 && ev.Rune < 0x7f {
			keyName = fmt.Sprintf("'%c'", ev.Rune)
		} else {
			keyName = fmt.Sprintf("U+%04X", ev.Rune)
		}
	}

	action := "unbound"
	if entry, ok := kt.Lookup(ev); ok {
		action = input.ActionName(entry)
	}
	return fmt.Sprintf("KEY: %s%s -> %s", formatMods(ev.Mods), keyName, action)
}

// formatGesture describes a completed press/release pair
func formatGesture(g terminal.Gesture, x, y int) string {
	if g.Tap {
		return fmt.Sprintf("TAP @ (%d,%d)", g.StartX, g.StartY)
	}
	return fmt.Sprintf("SWIPE: %s (%d,%d) -> (%d,%d)", g.Swipe, g.StartX, g.StartY, x, y)
}

// routeTap logs what a tap hit and hands it to the dispatcher
// Taps outside the board and controls are logged only
func routeTap(layout terminal.Layout, d *input.Dispatcher, events *lineLog, x, y int) {
	if index := layout.CellAt(x, y); index >= 0 {
		c := input.CellFromIndex(index)
		events.add(fmt.Sprintf("  CELL: %d (%d,%d)", index, c.X, c.Y))
		d.HandleCellClick(index)
		return
	}
	if c := layout.ControlAt(x, y); c != input.ControlNone {
		events.add(fmt.Sprintf("  CONTROL: %s", c))
		d.HandleControl(c)
		return
	}
	events.add("  MISS")
}
