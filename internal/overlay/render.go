// Package overlay draws the vertex and edge handles of the edit target in
// screen space on top of the raylib 3D view.
package overlay

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/meshedit/pkg/edit"
	"github.com/philipparndt/meshedit/pkg/mesh"
)

var (
	handleColor   = rl.NewColor(230, 230, 230, 255)
	hoverColor    = rl.NewColor(120, 200, 255, 255)
	selectedColor = rl.NewColor(255, 150, 30, 255)
	edgeColor     = rl.NewColor(180, 180, 180, 200)
)

// Renderer draws handles and the drag readout
type Renderer struct {
	HandleSize    float32
	LineThickness float32
}

// NewRenderer creates a renderer with default sizes
func NewRenderer() *Renderer {
	return &Renderer{HandleSize: 4, LineThickness: 2}
}

// HandleColor returns the color for a handle given its selection and hover state
func HandleColor(selected, hovered bool) rl.Color {
	switch {
	case selected:
		return selectedColor
	case hovered:
		return hoverColor
	}
	return handleColor
}

// DrawHandles draws the handles of the context's mode. Selected handles are
// drawn last so coincident duplicates cannot cover them.
func (r *Renderer) DrawHandles(ctx RenderContext) {
	if ctx.Mesh == nil {
		return
	}
	switch ctx.Mode {
	case edit.ModeVertex:
		r.drawVertexHandles(ctx)
	case edit.ModeEdge:
		r.drawEdgeHandles(ctx)
	}
}

func (r *Renderer) drawVertexHandles(ctx RenderContext) {
	selected := make(map[int]bool, len(ctx.Selection.Vertices))
	for _, v := range ctx.Selection.Vertices {
		selected[v] = true
	}

	draw := func(v int) {
		p := ctx.World.TransformPoint(ctx.Mesh.Position(v))
		if !InFront(ctx.Camera, p) {
			return
		}
		hovered := ctx.Hovered.Kind == edit.ElementVertex && ctx.Hovered.Index == v
		size := r.HandleSize
		if hovered {
			size += 2
		}
		s := rl.GetWorldToScreen(ToRL(p), ctx.Camera)
		rl.DrawRectangleV(rl.Vector2{X: s.X - size, Y: s.Y - size}, rl.Vector2{X: 2 * size, Y: 2 * size}, HandleColor(selected[v], hovered))
	}

	for v := 0; v < ctx.Mesh.VertexCount(); v++ {
		if !selected[v] {
			draw(v)
		}
	}
	for _, v := range ctx.Selection.Vertices {
		if v >= 0 && v < ctx.Mesh.VertexCount() {
			draw(v)
		}
	}
}

func (r *Renderer) drawEdgeHandles(ctx RenderContext) {
	selected := make(map[int]bool, len(ctx.Selection.Edges))
	for _, slot := range ctx.Selection.Edges {
		selected[slot] = true
	}

	draw := func(slot int) {
		e := ctx.Edges[slot]
		a := ctx.World.TransformPoint(ctx.Mesh.Position(e.A()))
		b := ctx.World.TransformPoint(ctx.Mesh.Position(e.B()))
		if !InFront(ctx.Camera, a) || !InFront(ctx.Camera, b) {
			return
		}
		hovered := ctx.Hovered.Kind == edit.ElementEdge && ctx.Hovered.Index == slot
		col := HandleColor(selected[slot], hovered)
		if !selected[slot] && !hovered {
			col = edgeColor
		}

		sa := rl.GetWorldToScreen(ToRL(a), ctx.Camera)
		sb := rl.GetWorldToScreen(ToRL(b), ctx.Camera)
		thickness := r.LineThickness
		if hovered || selected[slot] {
			thickness++
		}
		rl.DrawLineEx(sa, sb, thickness, col)
		mid := rl.Vector2{X: (sa.X + sb.X) / 2, Y: (sa.Y + sb.Y) / 2}
		rl.DrawCircleV(mid, r.HandleSize, col)
	}

	n := ctx.Mesh.VertexCount()
	for slot, e := range ctx.Edges {
		if e.B() < n && !selected[slot] {
			draw(slot)
		}
	}
	for _, slot := range ctx.Selection.Edges {
		if slot >= 0 && slot < len(ctx.Edges) && ctx.Edges[slot].B() < n {
			draw(slot)
		}
	}
}

// DrawDragLabel shows the world position of the drag anchor next to it
func (r *Renderer) DrawDragLabel(ctx RenderContext) {
	if !ctx.Dragging || !InFront(ctx.Camera, ctx.Anchor) {
		return
	}
	s := rl.GetWorldToScreen(ToRL(ctx.Anchor), ctx.Camera)
	label := Label{
		Text:   fmt.Sprintf("(%.3f, %.3f, %.3f)", ctx.Anchor.X, ctx.Anchor.Y, ctx.Anchor.Z),
		Anchor: rl.Vector2{X: s.X, Y: s.Y + 14},
		Color:  selectedColor,
		Bold:   true,
	}
	label.Draw(ctx.Font, 14, 4)
}

// DrawHoverLabel names the hovered handle and how many elements it moves
func (r *Renderer) DrawHoverLabel(ctx RenderContext, tolerance float64) {
	if ctx.Dragging || !ctx.Hovered.Valid() || ctx.Mesh == nil {
		return
	}

	var text string
	var anchor rl.Vector2
	switch ctx.Hovered.Kind {
	case edit.ElementVertex:
		group := mesh.GroupVertex(ctx.Mesh, ctx.Hovered.Index, tolerance)
		text = fmt.Sprintf("v%d ×%d", ctx.Hovered.Index, len(group))
		anchor = rl.GetWorldToScreen(ToRL(ctx.World.TransformPoint(ctx.Mesh.Position(ctx.Hovered.Index))), ctx.Camera)
	case edit.ElementEdge:
		if ctx.Hovered.Index >= len(ctx.Edges) {
			return
		}
		e := ctx.Edges[ctx.Hovered.Index]
		a, b := ctx.Mesh.Position(e.A()), ctx.Mesh.Position(e.B())
		text = fmt.Sprintf("e%d-%d %.3f", e.A(), e.B(), a.Distance(b))
		anchor = rl.GetWorldToScreen(ToRL(ctx.World.TransformPoint(a.Add(b).Mul(0.5))), ctx.Camera)
	}

	label := Label{Text: text, Anchor: rl.Vector2{X: anchor.X, Y: anchor.Y - 30}, Color: hoverColor}
	label.Draw(ctx.Font, 14, 4)
}
