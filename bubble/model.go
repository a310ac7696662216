// Package bubble renders the board with bubbletea and lipgloss
// It is an alternative input source to the tcell front end and shares its geometry
package bubble

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lixenwraith/tile-input/input"
	"github.com/lixenwraith/tile-input/terminal"
)

// Cell boxes are 5x1 inside a one-cell border, one column and row apart
const (
	cellInnerW = 5
	cellInnerH = 1
	cellPitchW = cellInnerW + 3
	cellPitchH = cellInnerH + 3
)

var (
	styleCell = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#7f849c")).
			Width(cellInnerW).
			Height(cellInnerH)

	styleSelected = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("#f9e2af")).
			Width(cellInnerW).
			Height(cellInnerH)

	styleButton  = lipgloss.NewStyle().Foreground(lipgloss.Color("#1e1e2e")).Background(lipgloss.Color("#94e2d5"))
	styleStatus  = lipgloss.NewStyle().Foreground(lipgloss.Color("#89dceb"))
	styleMessage = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
)

// Ctrl+C quits regardless of bindings
var forceQuit = key.NewBinding(key.WithKeys("ctrl+c"))

// MessageMsg replaces the host message line
type MessageMsg string

// Model is a tea.Model that doubles as input.Source, input.Board and input.StatusArea
// Callbacks and collaborator calls run inside Update
type Model struct {
	layout     terminal.Layout
	recognizer *terminal.Recognizer

	selected int
	loading  bool
	spinner  spinner.Model
	message  string

	keyFns     []func(input.KeyEvent) bool
	clickFns   []func(int)
	controlFns []func(input.Control) bool
	swipeFns   []func(input.Swipe) bool
}

// New creates a model; swipeThreshold below 1 uses the default
func New(swipeThreshold int) *Model {
	return &Model{
		layout:     terminal.NewLayout(0, 0, cellPitchW, cellPitchH),
		recognizer: terminal.NewRecognizer(swipeThreshold),
		selected:   -1,
		spinner:    newSpinner(),
	}
}

// Layout returns the geometry used for hit testing
func (m *Model) Layout() terminal.Layout { return m.layout }

func (m *Model) OnKey(fn func(input.KeyEvent) bool)    { m.keyFns = append(m.keyFns, fn) }
func (m *Model) OnCellClick(fn func(int))              { m.clickFns = append(m.clickFns, fn) }
func (m *Model) OnControl(fn func(input.Control) bool) { m.controlFns = append(m.controlFns, fn) }
func (m *Model) OnSwipe(fn func(input.Swipe) bool)     { m.swipeFns = append(m.swipeFns, fn) }

func (m *Model) ClearSelection()     { m.selected = -1 }
func (m *Model) MarkSelected(i int)  { m.selected = i }
func (m *Model) Selected() int       { return m.selected }
func (m *Model) Clear()              { m.loading = false }
func (m *Model) Loading() bool       { return m.loading }
func (m *Model) SetMessage(s string) { m.message = s }

// ShowLoading restarts the spinner from its first frame
// A fresh spinner ignores ticks scheduled for the previous one
func (m *Model) ShowLoading() {
	m.loading = true
	m.spinner = newSpinner()
}

func newSpinner() spinner.Model {
	return spinner.New(spinner.WithSpinner(spinner.MiniDot), spinner.WithStyle(styleStatus))
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	spinnerID := m.spinner.ID()

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = m.updateKey(msg)
	case tea.MouseMsg:
		m.updateMouse(msg)
	case spinner.TickMsg:
		if m.loading {
			m.spinner, cmd = m.spinner.Update(msg)
		}
	case MessageMsg:
		m.message = string(msg)
	}

	// A callback restarted the spinner; start its tick chain
	if m.loading && m.spinner.ID() != spinnerID {
		if cmd == nil {
			return m, m.spinner.Tick
		}
		return m, tea.Batch(cmd, m.spinner.Tick)
	}
	return m, cmd
}

func (m *Model) updateKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, forceQuit) {
		return tea.Quit
	}
	kev, ok := translateKey(msg)
	if !ok {
		return nil
	}

	suppressed := false
	for _, fn := range m.keyFns {
		if fn(kev) {
			suppressed = true
		}
	}
	if !suppressed && terminal.IsQuitKey(kev) {
		return tea.Quit
	}
	return nil
}

func (m *Model) updateMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			m.recognizer.Cancel()
			return
		}
		m.recognizer.Press(msg.X, msg.Y)

	case tea.MouseActionRelease:
		g, ok := m.recognizer.Release(msg.X, msg.Y)
		if !ok {
			return
		}
		if !g.Tap {
			for _, fn := range m.swipeFns {
				fn(g.Swipe)
			}
			return
		}
		if index := m.layout.CellAt(g.StartX, g.StartY); index >= 0 {
			for _, fn := range m.clickFns {
				fn(index)
			}
			return
		}
		if c := m.layout.ControlAt(g.StartX, g.StartY); c != input.ControlNone {
			for _, fn := range m.controlFns {
				fn(c)
			}
		}
	}
}

func (m *Model) View() string {
	var b strings.Builder

	rows := make([]string, 0, 2*input.BoardHeight-1)
	for y := 0; y < input.BoardHeight; y++ {
		if y > 0 {
			rows = append(rows, "")
		}
		cells := make([]string, 0, 2*input.BoardWidth-1)
		for x := 0; x < input.BoardWidth; x++ {
			if x > 0 {
				cells = append(cells, " ")
			}
			style := styleCell
			if y*input.BoardWidth+x == m.selected {
				style = styleSelected
			}
			cells = append(cells, style.Render(""))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	board := lipgloss.JoinVertical(lipgloss.Left, rows...)
	b.WriteString(board)

	// Pad to the controls row
	for y := lipgloss.Height(board) - 1; y < m.layout.ControlsY(); y++ {
		b.WriteByte('\n')
	}

	for i, label := range m.layout.ButtonLabels() {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(styleButton.Render("[ " + label + " ]"))
	}
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(m.spinner.View() + styleStatus.Render(" "+terminal.LoadingText))
	}
	b.WriteByte('\n')
	b.WriteString(styleMessage.Render(m.message))
	b.WriteByte('\n')

	return b.String()
}
