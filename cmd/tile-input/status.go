package main

import (
	"fmt"
	"log"

	"github.com/lixenwraith/tile-input/event"
	"github.com/lixenwraith/tile-input/input"
)

// describe renders an event as a host message line
func describe(ev event.Event) string {
	switch ev := ev.(type) {
	case event.Move:
		return "move " + ev.Direction.String()
	case event.PlaceTile:
		return fmt.Sprintf("place %d at %d,%d", ev.Value, ev.X, ev.Y)
	case event.Restart:
		return "restart"
	case event.Think:
		return "thinking about the next move"
	case event.Run:
		return "run"
	}
	return ""
}

// echoEvents shows every broadcast event through show
// Stands in for the game engine, which owns the real responses
func echoEvents(d *input.Dispatcher, show func(string)) {
	for _, t := range event.Types() {
		d.Subscribe(t, func(ev event.Event) {
			log.Printf("event: %s", describe(ev))
			show(describe(ev))
		})
	}
}
