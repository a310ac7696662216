package event

import (
	"fmt"
	"reflect"
)

// Handler receives a broadcast event
type Handler func(Event)

// Bus dispatches events to subscribed handlers
//
// Architecture:
//   - Single-threaded, synchronous dispatch on the caller's goroutine
//   - Multiple handlers can subscribe to the same event type
//   - Handlers are invoked in subscription order, no de-duplication
//   - Handler panics are not recovered and reach the broadcaster
//
// Subscriptions live as long as the Bus; there is no unsubscribe
type Bus struct {
	handlers map[EventType][]Handler
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]Handler),
	}
}

// Subscribe adds h to the handlers for t
// Nil handlers are dropped
func (b *Bus) Subscribe(t EventType, h Handler) {
	if h == nil {
		return
	}
	b.handlers[t] = append(b.handlers[t], h)
}

// SubscribeName adds h under the wire name of an event type
func (b *Bus) SubscribeName(name string, h Handler) error {
	t, ok := Lookup(name)
	if !ok {
		return fmt.Errorf("unknown event %q", name)
	}
	b.Subscribe(t, h)
	return nil
}

// On subscribes a handler typed to a single payload variant
// T must be one of the value payload types; interface and pointer types panic
func On[T Event](b *Bus, fn func(T)) {
	if k := reflect.TypeFor[T]().Kind(); k == reflect.Interface || k == reflect.Pointer {
		panic(fmt.Sprintf("event: On needs a value payload type, got %v", reflect.TypeFor[T]()))
	}
	var zero T
	b.Subscribe(zero.Type(), func(ev Event) {
		if v, ok := ev.(T); ok {
			fn(v)
		}
	})
}

// Broadcast invokes every handler for the event's type in subscription order
// All handlers have returned when Broadcast returns
func (b *Bus) Broadcast(ev Event) {
	if ev == nil {
		return
	}
	for _, h := range b.handlers[ev.Type()] {
		h(ev)
	}
}

// HandlerCount returns the number of handlers subscribed to t
func (b *Bus) HandlerCount(t EventType) int {
	return len(b.handlers[t])
}
