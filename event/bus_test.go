package event

import (
	"strings"
	"testing"
)

func TestBusBroadcastOrder(t *testing.T) {
	b := NewBus()
	var order []int

	b.Subscribe(EventMove, func(Event) { order = append(order, 1) })
	b.Subscribe(EventMove, func(Event) { order = append(order, 2) })
	b.Subscribe(EventMove, func(Event) { order = append(order, 3) })

	b.Broadcast(Move{Direction: DirUp})

	if len(order) != 3 {
		t.Fatalf("handlers called = %d, want 3", len(order))
	}
	for i, v := range order {
		if v != i+1 {
			t.Errorf("order[%d] = %d, want %d", i, v, i+1)
		}
	}
}

func TestBusNoDeduplication(t *testing.T) {
	b := NewBus()
	calls := 0
	h := func(Event) { calls++ }

	b.Subscribe(EventRestart, h)
	b.Subscribe(EventRestart, h)
	b.Broadcast(Restart{})

	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
	if got := b.HandlerCount(EventRestart); got != 2 {
		t.Errorf("HandlerCount = %d, want 2", got)
	}
}

func TestBusRoutesByType(t *testing.T) {
	b := NewBus()
	var got []EventType
	for _, et := range Types() {
		b.Subscribe(et, func(ev Event) { got = append(got, ev.Type()) })
	}

	b.Broadcast(Think{})
	b.Broadcast(Run{})
	b.Broadcast(PlaceTile{X: 1, Y: 2, Value: 8})

	want := []EventType{EventThink, EventRun, EventPlaceTile}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestBusBroadcastWithoutHandlers(t *testing.T) {
	b := NewBus()
	// Must not panic
	b.Broadcast(Run{})
	b.Broadcast(nil)
}

func TestBusNilHandlerDropped(t *testing.T) {
	b := NewBus()
	b.Subscribe(EventRun, nil)
	if got := b.HandlerCount(EventRun); got != 0 {
		t.Errorf("HandlerCount = %d, want 0", got)
	}
}

func TestBusHandlerPanicPropagates(t *testing.T) {
	b := NewBus()
	after := false
	b.Subscribe(EventThink, func(Event) { panic("solver failed") })
	b.Subscribe(EventThink, func(Event) { after = true })

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic to reach broadcaster")
		}
		if after {
			t.Error("handler after the panicking one should not run")
		}
	}()
	b.Broadcast(Think{})
}

func TestSubscribeName(t *testing.T) {
	b := NewBus()
	var placed PlaceTile

	err := b.SubscribeName("placeTile", func(ev Event) {
		placed = ev.(PlaceTile)
	})
	if err != nil {
		t.Fatalf("SubscribeName: %v", err)
	}
	b.Broadcast(PlaceTile{X: 1, Y: 1, Value: 8})

	if placed != (PlaceTile{X: 1, Y: 1, Value: 8}) {
		t.Errorf("placed = %+v", placed)
	}

	if err := b.SubscribeName("jump", func(Event) {}); err == nil {
		t.Error("expected error for unknown event name")
	}
}

func TestOnTyped(t *testing.T) {
	b := NewBus()
	var dirs []Direction

	On(b, func(m Move) { dirs = append(dirs, m.Direction) })

	b.Broadcast(Move{Direction: DirLeft})
	b.Broadcast(Restart{})
	b.Broadcast(Move{Direction: DirDown})

	if len(dirs) != 2 || dirs[0] != DirLeft || dirs[1] != DirDown {
		t.Errorf("dirs = %v, want [left down]", dirs)
	}
}

func TestOnRejectsNonValueTypes(t *testing.T) {
	tests := []struct {
		name string
		on   func(*Bus)
	}{
		{"interface", func(b *Bus) { On(b, func(Event) {}) }},
		{"pointer", func(b *Bus) { On(b, func(*Move) {}) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBus()
			defer func() {
				r := recover()
				if r == nil {
					t.Fatal("expected panic")
				}
				msg, ok := r.(string)
				if !ok || !strings.Contains(msg, "value payload type") {
					t.Errorf("panic = %v, want descriptive message", r)
				}
				for _, et := range Types() {
					if n := b.HandlerCount(et); n != 0 {
						t.Errorf("HandlerCount(%v) = %d, want 0", et, n)
					}
				}
			}()
			tt.on(b)
		})
	}
}

func TestLookupRoundTrip(t *testing.T) {
	for _, et := range Types() {
		got, ok := Lookup(et.String())
		if !ok || got != et {
			t.Errorf("Lookup(%q) = %v, %v", et.String(), got, ok)
		}
	}
	if _, ok := Lookup("none"); ok {
		t.Error("EventNone must not be subscribable by name")
	}
}

func TestDirectionOrdinals(t *testing.T) {
	tests := []struct {
		dir  Direction
		ord  int
		name string
	}{
		{DirUp, 0, "up"},
		{DirRight, 1, "right"},
		{DirDown, 2, "down"},
		{DirLeft, 3, "left"},
	}
	for _, tt := range tests {
		if int(tt.dir) != tt.ord {
			t.Errorf("%s ordinal = %d, want %d", tt.name, tt.dir, tt.ord)
		}
		if tt.dir.String() != tt.name {
			t.Errorf("String() = %q, want %q", tt.dir.String(), tt.name)
		}
	}
	if Direction(4).Valid() {
		t.Error("Direction(4) should be invalid")
	}
}
