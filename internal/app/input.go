package app

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/meshedit/pkg/edit"
)

// handleInput processes user input
func (app *App) handleInput() {
	mouse := rl.GetMousePosition()
	app.handleKeys()

	shiftPressed := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
	ctrlPressed := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		app.Interaction.mouseDownPos = mouse
		app.Interaction.mouseMoved = false

		switch {
		case shiftPressed:
			// Pan if Shift is pressed (works in any mode)
			app.Interaction.isPanning = true
		case ctrlPressed && app.engine.Mode() != edit.ModeNone:
			app.Interaction.isSelectingWithRect = true
			app.Interaction.selectionRect = NewSelectionRect(mouse, mouse)
		case app.beginHandleDrag(mouse):
		default:
			app.Interaction.isOrbiting = true
		}
	}

	delta := rl.GetMouseDelta()
	moved := delta.X != 0 || delta.Y != 0
	if rl.IsMouseButtonDown(rl.MouseLeftButton) && rl.Vector2Distance(app.Interaction.mouseDownPos, mouse) > 3 {
		app.Interaction.mouseMoved = true
	}

	switch {
	case app.engine.DragState() != edit.StateIdle && rl.IsMouseButtonDown(rl.MouseLeftButton):
		if moved {
			app.dragHandle(mouse)
		}
	case app.Interaction.isSelectingWithRect && rl.IsMouseButtonDown(rl.MouseLeftButton):
		app.Interaction.selectionRect.End = mouse
	case (app.Interaction.isPanning && rl.IsMouseButtonDown(rl.MouseLeftButton)) || rl.IsMouseButtonDown(rl.MouseMiddleButton):
		if moved {
			app.doPan(delta)
		}
	case app.Interaction.isOrbiting && rl.IsMouseButtonDown(rl.MouseLeftButton):
		if moved {
			app.doOrbit(delta)
		}
	}

	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		switch {
		case app.engine.DragState() != edit.StateIdle:
			app.engine.OnInteractionEnd()
		case app.Interaction.isSelectingWithRect:
			app.selectInRectangle()
		case app.Interaction.isOrbiting && !app.Interaction.mouseMoved && app.engine.Mode() != edit.ModeNone:
			// Click on empty space
			app.engine.ClearSelection()
		}
		app.Interaction.isSelectingWithRect = false
		app.Interaction.isPanning = false
		app.Interaction.isOrbiting = false
	}

	// Zoom with mouse wheel
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		app.doZoom(wheel)
	}

	// Update hover highlight (only when not dragging)
	if !rl.IsMouseButtonDown(rl.MouseLeftButton) {
		app.updateHover(mouse)
	}
}

// handleKeys processes keyboard shortcuts
func (app *App) handleKeys() {
	ctrlPressed := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)

	// Camera view preset shortcuts
	if rl.IsKeyPressed(rl.KeyHome) {
		app.resetCameraView()
	}
	if rl.IsKeyPressed(rl.KeyT) {
		app.setCameraTopView()
	}
	if rl.IsKeyPressed(rl.KeyOne) {
		app.setCameraFrontView()
	}
	if rl.IsKeyPressed(rl.KeyThree) {
		app.setCameraSideView()
	}

	// Display toggles
	if rl.IsKeyPressed(rl.KeyW) {
		app.View.showWireframe = !app.View.showWireframe
	}
	if rl.IsKeyPressed(rl.KeyF) {
		app.View.showFilled = !app.View.showFilled
	}
	if rl.IsKeyPressed(rl.KeyH) {
		app.View.showHandles = !app.View.showHandles
	}

	// Edit modes
	if rl.IsKeyPressed(rl.KeyV) {
		app.enterMode(edit.ModeVertex)
	}
	if rl.IsKeyPressed(rl.KeyE) && !ctrlPressed {
		app.enterMode(edit.ModeEdge)
	}
	if rl.IsKeyPressed(rl.KeyN) {
		app.engine.ExitEditMode()
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		app.selectObject(app.targetIndex() + 1)
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		switch {
		case app.engine.DragState() != edit.StateIdle:
			app.engine.OnInteractionEnd()
		case !app.engine.Selection().IsEmpty():
			app.engine.ClearSelection()
		default:
			app.engine.ExitEditMode()
		}
	}

	// Primitive resolution
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		app.stepResolution(1)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		app.stepResolution(-1)
	}

	// Files
	if ctrlPressed && rl.IsKeyPressed(rl.KeyS) {
		app.saveScene()
	}
	if ctrlPressed && rl.IsKeyPressed(rl.KeyE) {
		app.exportSTL()
	}
}

func (app *App) enterMode(m edit.Mode) {
	if app.engine.Target() == nil {
		app.setStatus("No object to edit")
		return
	}
	if err := app.engine.EnterEditMode(m); err != nil {
		app.setStatus(err.Error())
		return
	}
	app.setStatus(fmt.Sprintf("%s mode", m))
}

// stepResolution changes the segment count of a primitive target
func (app *App) stepResolution(step int) {
	t := app.target()
	if t == nil || t.Shape == nil {
		app.setStatus("Resolution: target is not a round primitive")
		return
	}
	count := t.Shape.Resolution() + step
	if err := app.engine.SetPrimitiveResolution(count); err != nil {
		app.setStatus(err.Error())
		return
	}
	app.setStatus(fmt.Sprintf("Resolution: %d segments", count))
}

// selectInRectangle replaces the selection with the handles inside the
// selection rectangle
func (app *App) selectInRectangle() {
	t := app.target()
	if t == nil || t.Mesh() == nil {
		return
	}
	rect := app.Interaction.selectionRect
	switch app.engine.Mode() {
	case edit.ModeVertex:
		app.engine.SelectVertices(verticesInRect(t.Mesh(), t.WorldMatrix(), app.project, rect))
	case edit.ModeEdge:
		app.engine.SelectEdges(edgesInRect(t.Mesh(), t.WorldMatrix(), app.engine.Edges(), app.project, rect))
	}
}

// saveScene writes the scene next to the opened file, or back into it when
// it already is a scene file
func (app *App) saveScene() {
	path := app.scenePath()
	app.suppressReload(path)
	if err := app.Scene.scene.WriteFile(path); err != nil {
		log.Printf("Error saving scene: %v", err)
		app.setStatus("Save failed: " + err.Error())
		return
	}
	app.setStatus("Saved " + path)
}

// exportSTL writes the visible objects as a binary STL
func (app *App) exportSTL() {
	path := strings.TrimSuffix(app.scenePath(), filepath.Ext(app.scenePath())) + ".stl"
	if strings.EqualFold(path, app.FileWatch.sourceFile) {
		path = strings.TrimSuffix(path, ".stl") + "-edited.stl"
	}
	if err := app.Scene.scene.WriteFile(path); err != nil {
		log.Printf("Error exporting STL: %v", err)
		app.setStatus("Export failed: " + err.Error())
		return
	}
	app.setStatus("Exported " + path)
}

func (app *App) scenePath() string {
	src := app.FileWatch.sourceFile
	switch strings.ToLower(filepath.Ext(src)) {
	case ".yaml", ".yml":
		return src
	case "":
		return "scene.yaml"
	}
	return strings.TrimSuffix(src, filepath.Ext(src)) + ".yaml"
}
