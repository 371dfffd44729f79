package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/meshedit/internal/config"
	"github.com/philipparndt/meshedit/internal/scene"
	"github.com/philipparndt/meshedit/pkg/analysis"
	"github.com/philipparndt/meshedit/pkg/edit"
	"github.com/philipparndt/meshedit/pkg/primitive"
	"github.com/philipparndt/meshedit/pkg/viewer"
	"github.com/philipparndt/meshedit/pkg/watcher"
)

type App struct {
	window  fyne.Window
	cfg     config.Config
	engine  *edit.Engine
	editor  *viewer.MeshEditor
	scene   *scene.Scene
	file    string
	watcher *watcher.FileWatcher

	objectSelect *widget.Select
	modeRadio    *widget.RadioGroup
	resolution   *widget.Slider
	infoLabel    *widget.Label
	statusLabel  *widget.Label
}

func main() {
	cfg, err := config.LoadOrDefault("meshedit.yaml")
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	cfg.Resolve(config.Flags{})

	a := app.New()
	w := a.NewWindow("meshedit")

	appInstance := &App{
		window: w,
		cfg:    cfg,
		engine: edit.NewEngine(edit.WithTolerance(cfg.Tolerance)),
		scene:  scene.New(),
	}
	appInstance.setupMainUI()

	if len(os.Args) > 1 {
		appInstance.loadFile(os.Args[1])
	} else {
		appInstance.addPrimitive(cfg.Primitive)
	}

	w.Resize(fyne.NewSize(float32(cfg.WindowWidth), float32(cfg.WindowHeight)))
	w.SetOnClosed(func() {
		if appInstance.watcher != nil {
			appInstance.watcher.Close()
		}
	})
	w.ShowAndRun()
}

func (a *App) setupMainUI() {
	a.editor = viewer.NewMeshEditor(a.engine)
	a.editor.PickRadius = a.cfg.PickRadius

	a.infoLabel = widget.NewLabel("")
	a.statusLabel = widget.NewLabel("")
	a.statusLabel.Wrapping = fyne.TextWrapWord

	a.objectSelect = widget.NewSelect(nil, func(name string) {
		if o, ok := a.scene.Find(name); ok && a.engine.Target() != edit.Node(o) {
			a.engine.SelectTarget(o)
			a.restoreMode()
		}
	})

	modes := []string{edit.ModeNone.String(), edit.ModeVertex.String(), edit.ModeEdge.String()}
	a.modeRadio = widget.NewRadioGroup(modes, func(name string) {
		mode, err := edit.ParseMode(name)
		if err != nil {
			return
		}
		if mode == edit.ModeNone {
			a.engine.ExitEditMode()
			return
		}
		if err := a.engine.EnterEditMode(mode); err != nil {
			a.setStatus(err.Error())
		}
	})
	a.modeRadio.Horizontal = true
	a.modeRadio.SetSelected(edit.ModeNone.String())

	a.resolution = widget.NewSlider(float64(primitive.MinSegments), 128)
	a.resolution.Step = 1
	a.resolution.OnChangeEnded = func(value float64) {
		if err := a.engine.SetPrimitiveResolution(int(value)); err != nil {
			a.setStatus(err.Error())
			return
		}
		a.restoreMode()
		a.setStatus(fmt.Sprintf("Resolution: %d segments", int(value)))
	}

	kinds := make([]string, 0, len(primitive.Kinds()))
	for _, k := range primitive.Kinds() {
		kinds = append(kinds, k.String())
	}
	primitiveSelect := widget.NewSelect(kinds, nil)
	primitiveSelect.SetSelected(a.cfg.Primitive)
	addButton := widget.NewButton("Add Primitive", func() {
		a.addPrimitive(primitiveSelect.Selected)
	})

	openButton := widget.NewButton("Open File", a.showOpenDialog)
	saveButton := widget.NewButton("Save", a.showSaveDialog)
	clearButton := widget.NewButton("Clear Selection", a.engine.ClearSelection)

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Pick vertex or edge mode\n" +
			"• Drag a handle to move it with everything coincident\n" +
			"• Drag empty space to rotate the view\n" +
			"• Scroll to zoom in/out",
	)
	instructions.Wrapping = fyne.TextWrapWord

	a.engine.Subscribe(func(ev edit.Event) {
		switch ev.Kind {
		case edit.EventTargetChanged, edit.EventTopologyChanged, edit.EventDragEnded:
			a.updateInfo()
		}
	})

	infoPanel := container.NewVBox(
		widget.NewLabel("Object:"),
		a.objectSelect,
		widget.NewSeparator(),
		widget.NewLabel("Edit Mode:"),
		a.modeRadio,
		widget.NewSeparator(),
		widget.NewLabel("Resolution:"),
		a.resolution,
		widget.NewSeparator(),
		primitiveSelect,
		addButton,
		widget.NewSeparator(),
		a.infoLabel,
		widget.NewSeparator(),
		instructions,
		widget.NewSeparator(),
		openButton,
		saveButton,
		clearButton,
		a.statusLabel,
	)

	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(300, 0))

	a.window.SetContent(container.NewBorder(nil, nil, nil, infoScroll, a.editor))
}

func (a *App) setStatus(text string) {
	a.statusLabel.SetText(text)
}

// restoreMode re-enters the selected radio mode after a target change
func (a *App) restoreMode() {
	mode, err := edit.ParseMode(a.modeRadio.Selected)
	if err != nil || mode == edit.ModeNone {
		return
	}
	if err := a.engine.EnterEditMode(mode); err != nil {
		a.setStatus(err.Error())
	}
}

func (a *App) refreshObjects(selected *scene.Object) {
	names := make([]string, 0, len(a.scene.Objects))
	for _, o := range a.scene.Objects {
		names = append(names, o.Name)
	}
	a.objectSelect.SetOptions(names)
	if selected != nil {
		a.objectSelect.SetSelected(selected.Name)
	}
}

func (a *App) addPrimitive(kindName string) {
	kind, err := primitive.ParseKind(kindName)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	shape, err := primitive.New(kind)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	if resized, err := shape.WithResolution(a.cfg.Segments); err == nil {
		shape = resized
	}

	o := scene.NewPrimitiveObject(fmt.Sprintf("%s%d", kind, len(a.scene.Objects)+1), shape)
	a.scene.Add(o)
	a.refreshObjects(o)
}

func (a *App) showOpenDialog() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		a.loadFile(reader.URI().Path())
	}, a.window)
}

func (a *App) showSaveDialog() {
	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		if err := a.scene.WriteFile(path); err != nil {
			dialog.ShowError(fmt.Errorf("failed to save %s: %w", filepath.Base(path), err), a.window)
			return
		}
		a.setStatus("Saved " + path)
	}, a.window)
}

// loadFile opens path in the background and swaps the scene in on the UI
// goroutine
func (a *App) loadFile(path string) {
	a.setStatus("Loading " + filepath.Base(path) + "...")
	go func() {
		s, err := scene.Open(context.Background(), path)
		fyne.Do(func() {
			if err != nil {
				dialog.ShowError(fmt.Errorf("failed to load %s: %w", filepath.Base(path), err), a.window)
				return
			}
			a.applyScene(path, s)
		})
	}()
}

func (a *App) applyScene(path string, s *scene.Scene) {
	a.scene = s
	a.file = path
	a.engine.SelectTarget(nil)

	var first *scene.Object
	if len(s.Objects) > 0 {
		first = s.Objects[0]
	}
	a.refreshObjects(first)
	a.setStatus("Loaded " + filepath.Base(path))
	a.watch(path)
}

// watch reloads the scene when the opened file or one of its OpenSCAD
// dependencies changes
func (a *App) watch(path string) {
	if a.watcher != nil {
		a.watcher.Close()
		a.watcher = nil
	}

	files, err := scene.SourceFiles(path)
	if err != nil {
		log.Printf("Not watching %s: %v", path, err)
		return
	}
	fw, err := watcher.NewFileWatcher(a.cfg.WatchDebounce)
	if err != nil {
		log.Printf("Not watching %s: %v", path, err)
		return
	}
	err = fw.Watch(files, func(changed string) {
		fyne.Do(func() {
			a.setStatus("File changed: " + filepath.Base(changed))
			a.loadFile(path)
		})
	})
	if err != nil {
		fw.Close()
		log.Printf("Not watching %s: %v", path, err)
		return
	}
	fw.Start()
	a.watcher = fw
}

func (a *App) updateInfo() {
	o, ok := a.engine.Target().(*scene.Object)
	if !ok || o.Mesh() == nil {
		a.infoLabel.SetText("No object selected")
		a.resolution.Disable()
		return
	}

	if o.Shape != nil && o.Shape.Resolution() > 0 {
		a.resolution.Enable()
		a.resolution.Value = float64(o.Shape.Resolution())
		a.resolution.Refresh()
	} else {
		a.resolution.Disable()
	}

	result := analysis.AnalyzeMesh(o.Mesh(), a.engine.Tolerance())
	a.infoLabel.SetText(fmt.Sprintf(
		"Object: %s\nVertices: %d (%d distinct)\nTriangles: %d\nEdges: %d\nSurface Area: %.2f\n\nDimensions:\n  X: %.2f\n  Y: %.2f\n  Z: %.2f",
		o.Name,
		result.VertexCount,
		result.LogicalVertices,
		result.TriangleCount,
		result.EdgeCount,
		result.SurfaceArea,
		result.Dimensions.X,
		result.Dimensions.Y,
		result.Dimensions.Z,
	))
}
