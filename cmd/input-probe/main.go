// Command input-probe shows how key and mouse input resolves against the configured keymap
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tile-input/config"
	"github.com/lixenwraith/tile-input/event"
	"github.com/lixenwraith/tile-input/input"
	"github.com/lixenwraith/tile-input/terminal"
)

const (
	maxLog   = 12
	logWidth = 48
)

var configFlag = flag.String("config", "", "Path to TOML config file")

// lineLog keeps the most recent lines
type lineLog struct {
	lines []string
}

func (l *lineLog) add(s string) {
	if len(l.lines) >= maxLog {
		copy(l.lines, l.lines[1:])
		l.lines = l.lines[:maxLog-1]
	}
	l.lines = append(l.lines, s)
}

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	kt, err := cfg.KeyTable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid keymap: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "init failed: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "init failed: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)

	// Board and controls sit right of the log
	view := terminal.NewView(screen, terminal.NewLayout(logWidth+2, 2, 8, 4))

	events := &lineLog{}
	d := input.NewDispatcher(event.NewBus(), view, view, input.WithKeyTable(kt))
	for _, t := range event.Types() {
		d.Subscribe(t, func(ev event.Event) {
			events.add(fmt.Sprintf("  EVENT: %s %v", ev.Type(), ev))
		})
	}

	rec := terminal.NewRecognizer(cfg.UI.SwipeThreshold)

	for {
		render(view, events)

		switch ev := screen.PollEvent().(type) {
		case nil:
			return

		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC {
				return
			}
			kev, ok := terminal.TranslateKey(ev)
			if !ok {
				events.add(fmt.Sprintf("KEY: untranslated %s", ev.Name()))
				continue
			}
			events.add(formatKey(kev, kt))
			d.HandleKey(kev)

		case *tcell.EventMouse:
			x, y := ev.Position()
			switch {
			case ev.Buttons()&tcell.Button1 != 0:
				if !rec.Pressed() {
					rec.Press(x, y)
				}
			case ev.Buttons() == tcell.ButtonNone:
				if g, ok := rec.Release(x, y); ok {
					events.add(formatGesture(g, x, y))
					if g.Tap {
						routeTap(view.Layout(), d, events, g.StartX, g.StartY)
					} else {
						d.HandleSwipe(g.Swipe)
					}
				}
			}

		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

func render(view *terminal.View, events *lineLog) {
	view.Draw()
	screen := view.Screen()
	w, h := screen.Size()

	title := tcell.StyleDefault.Bold(true).Reverse(true)
	text := tcell.StyleDefault.Foreground(tcell.ColorSilver)

	drawText(screen, 0, 0, w, "Input Probe - press keys, click or drag - Ctrl+C to quit", title)
	for i, line := range events.lines {
		if 2+i >= h {
			break
		}
		drawText(screen, 1, 2+i, min(w, logWidth), line, text)
	}
	screen.Show()
}

func drawText(screen tcell.Screen, x, y, w int, s string, style tcell.Style) {
	for _, r := range s {
		if x >= w {
			return
		}
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
