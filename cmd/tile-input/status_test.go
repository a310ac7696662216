package main

import (
	"testing"

	"github.com/lixenwraith/tile-input/event"
	"github.com/lixenwraith/tile-input/input"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		ev   event.Event
		want string
	}{
		{event.Move{Direction: event.DirLeft}, "move left"},
		{event.PlaceTile{X: 1, Y: 2, Value: 8}, "place 8 at 1,2"},
		{event.Restart{}, "restart"},
		{event.Think{}, "thinking about the next move"},
		{event.Run{}, "run"},
	}

	for _, tt := range tests {
		if got := describe(tt.ev); got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
	}
}

func TestEchoEvents(t *testing.T) {
	d := input.NewDispatcher(nil, nil, nil)

	var shown []string
	echoEvents(d, func(s string) { shown = append(shown, s) })

	d.HandleKey(input.NamedKey(input.KeyUp, 0))
	d.HandleCellClick(5)
	d.HandleKey(input.RuneKey('2', 0))

	want := []string{"move up", "place 4 at 1,1"}
	if len(shown) != len(want) {
		t.Fatalf("Expected %d messages, got %v", len(want), shown)
	}
	for i := range want {
		if shown[i] != want[i] {
			t.Errorf("Expected message %d to be %q, got %q", i, want[i], shown[i])
		}
	}
}
