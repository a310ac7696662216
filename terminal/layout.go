package terminal

import "github.com/lixenwraith/tile-input/input"

// Rect is a screen rectangle in cells
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (x, y) lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Center returns the middle cell of r
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

type controlButton struct {
	control input.Control
	label   string
	rect    Rect
}

// Layout is the fixed screen geometry of board, controls and feedback line
type Layout struct {
	OriginX, OriginY int

	// Cell pitch; boxes are one cell smaller to leave a gap
	CellW, CellH int

	buttons []controlButton
}

var buttonLabels = []struct {
	control input.Control
	label   string
}{
	{input.ControlRestart, "New Game"},
	{input.ControlHint, "Hint"},
	{input.ControlRun, "Run"},
}

// NewLayout builds a layout with the board's top-left corner at (ox, oy)
func NewLayout(ox, oy, cellW, cellH int) Layout {
	l := Layout{
		OriginX: ox,
		OriginY: oy,
		CellW:   cellW,
		CellH:   cellH,
	}

	x := ox
	y := l.ControlsY()
	for _, b := range buttonLabels {
		w := len(b.label) + 4 // "[ " + label + " ]"
		l.buttons = append(l.buttons, controlButton{
			control: b.control,
			label:   b.label,
			rect:    Rect{X: x, Y: y, W: w, H: 1},
		})
		x += w + 2
	}
	return l
}

// DefaultLayout returns the layout used by the binary
func DefaultLayout() Layout {
	return NewLayout(2, 1, 8, 4)
}

// BoardRect returns the full board area including gaps
func (l Layout) BoardRect() Rect {
	return Rect{
		X: l.OriginX,
		Y: l.OriginY,
		W: l.CellW * input.BoardWidth,
		H: l.CellH * input.BoardHeight,
	}
}

// CellRect returns the box of the cell at a row-major index
func (l Layout) CellRect(index int) Rect {
	col := index % input.BoardWidth
	row := index / input.BoardWidth
	return Rect{
		X: l.OriginX + col*l.CellW,
		Y: l.OriginY + row*l.CellH,
		W: l.CellW - 1,
		H: l.CellH - 1,
	}
}

// CellAt returns the index of the cell box containing (x, y), or -1
// Gaps between boxes belong to no cell
func (l Layout) CellAt(x, y int) int {
	if !l.BoardRect().Contains(x, y) {
		return -1
	}
	index := (y-l.OriginY)/l.CellH*input.BoardWidth + (x-l.OriginX)/l.CellW
	if !l.CellRect(index).Contains(x, y) {
		return -1
	}
	return index
}

// ControlsY is the row of the control buttons
func (l Layout) ControlsY() int {
	return l.OriginY + l.CellH*input.BoardHeight + 1
}

// StatusY is the row of the feedback line
func (l Layout) StatusY() int {
	return l.ControlsY() + 2
}

// MessageY is the row of host messages
func (l Layout) MessageY() int {
	return l.StatusY() + 1
}

// ControlAt returns the control whose button contains (x, y)
func (l Layout) ControlAt(x, y int) input.Control {
	for _, b := range l.buttons {
		if b.rect.Contains(x, y) {
			return b.control
		}
	}
	return input.ControlNone
}

// ControlRect returns the button rectangle of c
func (l Layout) ControlRect(c input.Control) (Rect, bool) {
	for _, b := range l.buttons {
		if b.control == c {
			return b.rect, true
		}
	}
	return Rect{}, false
}

// ButtonLabels returns the control labels in screen order
func (l Layout) ButtonLabels() []string {
	labels := make([]string, len(l.buttons))
	for i, b := range l.buttons {
		labels[i] = b.label
	}
	return labels
}
