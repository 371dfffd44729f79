package overlay

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

var labelBackground = rl.NewColor(20, 20, 20, 220)

// Label is a boxed piece of text centred horizontally on Anchor
type Label struct {
	Text   string
	Anchor rl.Vector2
	Color  rl.Color
	Bold   bool // thicker border
}

// Draw renders the label and returns its bounding rectangle
func (l Label) Draw(font rl.Font, fontSize, padding float32) rl.Rectangle {
	size := rl.MeasureTextEx(font, l.Text, fontSize, 1)
	textPos := rl.Vector2{X: l.Anchor.X - size.X/2, Y: l.Anchor.Y}

	rect := rl.Rectangle{
		X:      textPos.X - padding,
		Y:      textPos.Y - padding,
		Width:  size.X + 2*padding,
		Height: size.Y + 2*padding,
	}

	border := float32(2)
	if l.Bold {
		border = 3
	}
	rl.DrawRectangleRec(rect, labelBackground)
	rl.DrawRectangleLinesEx(rect, border, l.Color)
	rl.DrawTextEx(font, l.Text, textPos, fontSize, 1, l.Color)
	return rect
}
