package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tile-input/input"
)

// SpinnerFrames animate the loading indicator
var SpinnerFrames = []rune("⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏")

const LoadingText = "thinking"

// Box glyphs: light for idle cells, heavy for the selection
var (
	lightBox = [6]rune{'┌', '┐', '└', '┘', '─', '│'}
	heavyBox = [6]rune{'┏', '┓', '┗', '┛', '━', '┃'}
)

var (
	styleCell     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleSelected = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleButton   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorTeal)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleMessage  = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

// View draws the board, controls and feedback line
// Implements input.Board and input.StatusArea
type View struct {
	screen tcell.Screen
	layout Layout

	selected int // -1 when nothing selected

	loading   bool
	spinFrame int
	message   string
}

// NewView creates a view over an initialised screen
func NewView(screen tcell.Screen, layout Layout) *View {
	return &View{
		screen:   screen,
		layout:   layout,
		selected: -1,
	}
}

// Screen returns the underlying screen
func (v *View) Screen() tcell.Screen {
	return v.screen
}

// Layout returns the view geometry
func (v *View) Layout() Layout {
	return v.layout
}

// ClearSelection unmarks every cell
func (v *View) ClearSelection() {
	v.selected = -1
}

// MarkSelected highlights the cell at index
func (v *View) MarkSelected(index int) {
	v.selected = index
}

// Selected returns the highlighted cell index or -1
func (v *View) Selected() int {
	return v.selected
}

// Clear empties the feedback line
func (v *View) Clear() {
	v.loading = false
	v.spinFrame = 0
}

// ShowLoading replaces the feedback line with the spinner
func (v *View) ShowLoading() {
	v.loading = true
	v.spinFrame = 0
}

// Loading reports whether the spinner is shown
func (v *View) Loading() bool {
	return v.loading
}

// SetMessage sets the host text shown under the feedback line
func (v *View) SetMessage(msg string) {
	v.message = msg
}

// Tick advances the spinner animation
func (v *View) Tick() {
	if v.loading {
		v.spinFrame = (v.spinFrame + 1) % len(SpinnerFrames)
	}
}

// Draw renders the full view and shows it
func (v *View) Draw() {
	v.screen.Clear()

	for i := 0; i < input.BoardCells; i++ {
		glyphs, style := lightBox, styleCell
		if i == v.selected {
			glyphs, style = heavyBox, styleSelected
		}
		v.drawBox(v.layout.CellRect(i), glyphs, style)
	}

	for _, b := range v.layout.buttons {
		v.drawText(b.rect.X, b.rect.Y, "[ "+b.label+" ]", styleButton)
	}

	if v.loading {
		v.drawText(v.layout.OriginX, v.layout.StatusY(),
			string(SpinnerFrames[v.spinFrame])+" "+LoadingText, styleStatus)
	}

	if v.message != "" {
		v.drawText(v.layout.OriginX, v.layout.MessageY(), v.message, styleMessage)
	}

	v.screen.Show()
}

func (v *View) drawBox(r Rect, g [6]rune, style tcell.Style) {
	if r.W < 2 || r.H < 2 {
		return
	}
	x2, y2 := r.X+r.W-1, r.Y+r.H-1

	for x := r.X + 1; x < x2; x++ {
		v.screen.SetContent(x, r.Y, g[4], nil, style)
		v.screen.SetContent(x, y2, g[4], nil, style)
	}
	for y := r.Y + 1; y < y2; y++ {
		v.screen.SetContent(r.X, y, g[5], nil, style)
		v.screen.SetContent(x2, y, g[5], nil, style)
	}
	v.screen.SetContent(r.X, r.Y, g[0], nil, style)
	v.screen.SetContent(x2, r.Y, g[1], nil, style)
	v.screen.SetContent(r.X, y2, g[2], nil, style)
	v.screen.SetContent(x2, y2, g[3], nil, style)
}

func (v *View) drawText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
