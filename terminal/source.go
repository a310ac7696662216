package terminal

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tile-input/input"
)

// TickInterval drives spinner animation and redraws
const TickInterval = 100 * time.Millisecond

// Source feeds tcell events to registered input callbacks
// Implements input.Source; all callbacks run on the goroutine calling HandleEvent or Run
type Source struct {
	view       *View
	recognizer *Recognizer

	keyFns     []func(input.KeyEvent) bool
	clickFns   []func(int)
	controlFns []func(input.Control) bool
	swipeFns   []func(input.Swipe) bool
}

// NewSource creates a source drawing on view; a nil recogniser uses the default threshold
func NewSource(view *View, recognizer *Recognizer) *Source {
	if recognizer == nil {
		recognizer = NewRecognizer(DefaultSwipeThreshold)
	}
	return &Source{
		view:       view,
		recognizer: recognizer,
	}
}

func (s *Source) OnKey(fn func(input.KeyEvent) bool) { s.keyFns = append(s.keyFns, fn) }

func (s *Source) OnCellClick(fn func(int)) { s.clickFns = append(s.clickFns, fn) }

func (s *Source) OnControl(fn func(input.Control) bool) { s.controlFns = append(s.controlFns, fn) }

func (s *Source) OnSwipe(fn func(input.Swipe) bool) { s.swipeFns = append(s.swipeFns, fn) }

// HandleEvent processes one tcell event and redraws
// Returns false when the application should exit
func (s *Source) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return false
		}
		kev, ok := TranslateKey(ev)
		if !ok {
			return true
		}
		if !s.fireKey(kev) && IsQuitKey(kev) {
			return false
		}

	case *tcell.EventMouse:
		s.handleMouse(ev)

	case *tcell.EventResize:
		s.view.Screen().Sync()
	}

	s.view.Draw()
	return true
}

// IsQuitKey reports whether an unsuppressed key ends the session
func IsQuitKey(ev input.KeyEvent) bool {
	if ev.Key == input.KeyEscape {
		return true
	}
	return ev.Key == input.KeyRune && ev.Rune == 'q' && !ev.HasModifiers()
}

func (s *Source) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	buttons := ev.Buttons()

	switch {
	case buttons&tcell.Button1 != 0:
		// Motion with the button held repeats the press; keep the first position
		if !s.recognizer.Pressed() {
			s.recognizer.Press(x, y)
		}

	case buttons == tcell.ButtonNone:
		g, ok := s.recognizer.Release(x, y)
		if !ok {
			return
		}
		if g.Tap {
			s.tap(g.StartX, g.StartY)
			return
		}
		s.fireSwipe(g.Swipe)

	default:
		// Other buttons abort a drag
		s.recognizer.Cancel()
	}
}

func (s *Source) tap(x, y int) {
	layout := s.view.Layout()
	if index := layout.CellAt(x, y); index >= 0 {
		for _, fn := range s.clickFns {
			fn(index)
		}
		return
	}
	if c := layout.ControlAt(x, y); c != input.ControlNone {
		for _, fn := range s.controlFns {
			fn(c)
		}
	}
}

func (s *Source) fireKey(ev input.KeyEvent) bool {
	suppressed := false
	for _, fn := range s.keyFns {
		if fn(ev) {
			suppressed = true
		}
	}
	return suppressed
}

func (s *Source) fireSwipe(sw input.Swipe) {
	for _, fn := range s.swipeFns {
		fn(sw)
	}
}

// Run polls the screen until quit, screen shutdown or ctx cancellation
func (s *Source) Run(ctx context.Context) error {
	screen := s.view.Screen()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(TickInterval)
	defer ticker.Stop()

	s.view.Draw()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-eventChan:
			if !ok {
				log.Printf("terminal: screen closed")
				return nil
			}
			if !s.HandleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			if s.view.Loading() {
				s.view.Tick()
				s.view.Draw()
			}
		}
	}
}
