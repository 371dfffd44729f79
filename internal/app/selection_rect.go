package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	selectionFill   = rl.NewColor(100, 150, 255, 50)
	selectionBorder = rl.NewColor(100, 150, 255, 200)
)

// SelectionRect is the screen rectangle dragged out with Ctrl held. Start is
// where the drag began; End follows the mouse.
type SelectionRect struct {
	Start rl.Vector2
	End   rl.Vector2
}

// NewSelectionRect creates a new selection rectangle
func NewSelectionRect(start, end rl.Vector2) SelectionRect {
	return SelectionRect{Start: start, End: end}
}

// Bounds returns the rectangle with positive width and height whatever the
// drag direction
func (s SelectionRect) Bounds() rl.Rectangle {
	x0, x1 := min(s.Start.X, s.End.X), max(s.Start.X, s.End.X)
	y0, y1 := min(s.Start.Y, s.End.Y), max(s.Start.Y, s.End.Y)
	return rl.Rectangle{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Contains reports whether a screen point lies inside the rectangle
func (s SelectionRect) Contains(p rl.Vector2) bool {
	return rl.CheckCollisionPointRec(p, s.Bounds())
}

// Draw renders the selection rectangle to the screen
func (s SelectionRect) Draw() {
	rect := s.Bounds()
	rl.DrawRectangleRec(rect, selectionFill)
	rl.DrawRectangleLinesEx(rect, 2, selectionBorder)
}
