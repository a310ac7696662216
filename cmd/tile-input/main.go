package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tile-input/audio"
	"github.com/lixenwraith/tile-input/bubble"
	"github.com/lixenwraith/tile-input/config"
	"github.com/lixenwraith/tile-input/event"
	"github.com/lixenwraith/tile-input/input"
	"github.com/lixenwraith/tile-input/terminal"
)

var (
	configFlag = flag.String("config", "", "Path to TOML config file")
	uiFlag     = flag.String("ui", "", "Front end: tcell or bubbletea")
	debugFlag  = flag.Bool("debug", false, "Write debug log")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *uiFlag != "" {
		cfg.UI.Backend = *uiFlag
	}
	if *debugFlag {
		cfg.Log.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "tile-input: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	if logFile := setupLogging(cfg.Log.Dir, cfg.Log.Debug); logFile != nil {
		defer logFile.Close()
	}

	keyTable, err := cfg.KeyTable()
	if err != nil {
		return err
	}

	bus := event.NewBus()

	closeAudio, err := audio.Setup(bus, cfg.AudioSettings())
	if err != nil {
		// Non-fatal, input works without sound
		log.Printf("Audio initialization failed: %v", err)
	}
	defer closeAudio()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("starting %s front end", cfg.UI.Backend)
	switch cfg.UI.Backend {
	case config.BackendBubbletea:
		return runBubble(ctx, cfg, bus, keyTable)
	default:
		return runTcell(ctx, cfg, bus, keyTable)
	}
}

func runTcell(ctx context.Context, cfg config.Config, bus *event.Bus, kt *input.KeyTable) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	// Restore the terminal before reporting a crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nTILE-INPUT CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)
	screen.HideCursor()

	view := terminal.NewView(screen, terminal.DefaultLayout())
	source := terminal.NewSource(view, terminal.NewRecognizer(cfg.UI.SwipeThreshold))

	d := input.NewDispatcher(bus, view, view, input.WithKeyTable(kt))
	echoEvents(d, view.SetMessage)
	d.Listen(source)

	return source.Run(ctx)
}

func runBubble(ctx context.Context, cfg config.Config, bus *event.Bus, kt *input.KeyTable) error {
	model := bubble.New(cfg.UI.SwipeThreshold)

	d := input.NewDispatcher(bus, model, model, input.WithKeyTable(kt))
	echoEvents(d, model.SetMessage)
	d.Listen(model)

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
