package app

import (
	"fmt"
	"log"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/meshedit/pkg/analysis"
	"github.com/philipparndt/meshedit/pkg/edit"
	"github.com/philipparndt/meshedit/version"
)

const statusDuration = 4 * time.Second

// setStatus shows a short message in the bottom-right corner
func (app *App) setStatus(msg string) {
	log.Println(msg)
	app.UI.status = msg
	app.UI.statusTime = time.Now()
}

// targetInfo returns the analysis of the edit target's mesh
func (app *App) targetInfo() *analysis.MeasurementResult {
	t := app.target()
	if t == nil || t.Mesh() == nil {
		app.UI.info = nil
		app.UI.infoMesh = nil
		return nil
	}
	m := t.Mesh()
	if app.UI.info == nil || app.UI.infoMesh != m || app.UI.infoRevision != m.Revision() {
		app.UI.info = analysis.AnalyzeMesh(m, app.engine.Tolerance())
		app.UI.infoMesh = m
		app.UI.infoRevision = m.Revision()
	}
	return app.UI.info
}

// drawUI draws the user interface
func (app *App) drawUI() {
	y := float32(10)
	lineHeight := float32(20)
	fontSize16 := float32(16)
	fontSize18 := float32(18)
	fontSize14 := float32(14)
	fontSize12 := float32(12)

	screenWidth := float32(rl.GetScreenWidth())
	screenHeight := float32(rl.GetScreenHeight())

	text := func(s string, size float32, color rl.Color) {
		rl.DrawTextEx(app.UI.font, s, rl.Vector2{X: 10, Y: y}, size, 1, color)
		y += lineHeight
	}

	// Status message (bottom-right corner)
	if app.UI.status != "" && time.Since(app.UI.statusTime) < statusDuration {
		boxPadding := float32(10)
		textSize := rl.MeasureTextEx(app.UI.font, app.UI.status, fontSize16, 1)
		boxWidth := textSize.X + boxPadding*2
		boxHeight := textSize.Y + boxPadding*2
		boxX := screenWidth - boxWidth - 20
		boxY := screenHeight - boxHeight - 20

		rl.DrawRectangle(int32(boxX), int32(boxY), int32(boxWidth), int32(boxHeight), rl.NewColor(0, 0, 0, 200))
		rl.DrawRectangleLines(int32(boxX), int32(boxY), int32(boxWidth), int32(boxHeight), rl.Yellow)
		rl.DrawTextEx(app.UI.font, app.UI.status, rl.Vector2{X: boxX + boxPadding, Y: boxY + boxPadding}, fontSize16, 1, rl.Yellow)
	}

	// Loading indicator
	if app.FileWatch.isLoading {
		elapsed := time.Since(app.FileWatch.loadingStartTime).Seconds()
		spinnerChars := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
		spinnerIdx := int(elapsed*10) % len(spinnerChars)
		loadingText := fmt.Sprintf("%s Loading... (%.1fs)", spinnerChars[spinnerIdx], elapsed)

		boxWidth := float32(250)
		boxHeight := float32(40)
		boxX := screenWidth - boxWidth - 20
		boxY := float32(20)

		rl.DrawRectangle(int32(boxX), int32(boxY), int32(boxWidth), int32(boxHeight), rl.NewColor(0, 0, 0, 180))
		rl.DrawRectangleLines(int32(boxX), int32(boxY), int32(boxWidth), int32(boxHeight), rl.Yellow)

		textSize := rl.MeasureTextEx(app.UI.font, loadingText, fontSize18, 1)
		textX := boxX + (boxWidth-textSize.X)/2
		textY := boxY + (boxHeight-textSize.Y)/2
		rl.DrawTextEx(app.UI.font, loadingText, rl.Vector2{X: textX, Y: textY}, fontSize18, 1, rl.Yellow)
	}

	// === OBJECT ===
	text("Object:", fontSize16, rl.Yellow)
	t := app.target()
	if t == nil {
		text("  (empty scene)", fontSize14, rl.Gray)
	} else {
		text(fmt.Sprintf("  %s (%d/%d)", t.Name, app.targetIndex()+1, len(app.Scene.scene.Objects)), fontSize14, rl.White)
		if info := app.targetInfo(); info != nil {
			text(fmt.Sprintf("  Vertices: %d (%d logical)", info.VertexCount, info.LogicalVertices), fontSize14, rl.White)
			text(fmt.Sprintf("  Triangles: %d | Edges: %d", info.TriangleCount, info.EdgeCount), fontSize14, rl.White)
			text(fmt.Sprintf("  Size: %.2f × %.2f × %.2f", info.Dimensions.X, info.Dimensions.Y, info.Dimensions.Z), fontSize14, rl.White)
		}
		if t.Shape != nil {
			resolution := "fixed"
			if r := t.Shape.Resolution(); r > 0 {
				resolution = fmt.Sprintf("%d segments", r)
			}
			text(fmt.Sprintf("  Primitive: %s, %s", t.Shape.Kind(), resolution), fontSize14, rl.NewColor(100, 200, 255, 255))
		}
	}
	y += lineHeight

	// === EDIT ===
	text("Edit:", fontSize16, rl.Yellow)
	mode := app.engine.Mode()
	modeColor := rl.LightGray
	if mode != edit.ModeNone {
		modeColor = rl.Green
	}
	text(fmt.Sprintf("  Mode: %s", mode), fontSize14, modeColor)
	if state := app.engine.DragState(); state != edit.StateIdle {
		text(fmt.Sprintf("  Dragging: %s", state), fontSize14, rl.Orange)
	}
	sel := app.engine.Selection()
	if !sel.IsEmpty() {
		text(fmt.Sprintf("  Selected: %d vertices, %d edges", len(sel.Vertices), len(sel.Edges)), fontSize14, rl.NewColor(255, 200, 100, 255))
	}
	y += lineHeight

	// === HELP ===
	text("Keys:", fontSize16, rl.Yellow)
	text("  V: Vertex | E: Edge | N: Object mode", fontSize14, rl.LightGray)
	text("  Tab: Next object | +/-: Resolution", fontSize14, rl.LightGray)
	text("  Esc: Cancel drag / clear selection", fontSize14, rl.LightGray)
	text("  Ctrl+S: Save scene | Ctrl+E: Export STL", fontSize14, rl.LightGray)
	y += lineHeight

	text("Navigate:", fontSize16, rl.Yellow)
	text("  Left Drag: Rotate or move handle", fontSize14, rl.LightGray)
	text("  Shift+Drag: Pan | Ctrl+Drag: Select area", fontSize14, rl.LightGray)
	text("  Home: Reset | T: Top | 1: Front | 3: Side", fontSize14, rl.LightGray)
	text("  W: Wireframe | F: Fill | H: Handles", fontSize14, rl.LightGray)

	// Draw selection rectangle if active
	if app.Interaction.isSelectingWithRect {
		app.Interaction.selectionRect.Draw()
	}

	// Version and FPS in bottom-left corner
	bottomY := screenHeight - 30
	versionText := fmt.Sprintf("v%s", version.GetVersion())
	rl.DrawTextEx(app.UI.font, versionText, rl.Vector2{X: 10, Y: bottomY}, fontSize12, 1, rl.Gray)

	fpsText := fmt.Sprintf("FPS: %d", rl.GetFPS())
	versionWidth := rl.MeasureTextEx(app.UI.font, versionText, fontSize12, 1).X
	rl.DrawTextEx(app.UI.font, fpsText, rl.Vector2{X: 10 + versionWidth + 15, Y: bottomY}, fontSize12, 1, rl.Lime)
}
