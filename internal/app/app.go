// Package app is the interactive raylib mesh editor.
package app

import (
	"context"
	"fmt"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/meshedit/internal/config"
	"github.com/philipparndt/meshedit/internal/overlay"
	"github.com/philipparndt/meshedit/internal/scene"
	"github.com/philipparndt/meshedit/pkg/edit"
	"github.com/philipparndt/meshedit/pkg/primitive"
)

var overlayRenderer = overlay.NewRenderer()

type App struct {
	Camera      CameraState
	Scene       SceneData
	View        ViewSettings
	Interaction InteractionState
	FileWatch   FileWatchState
	UI          UIState

	cfg    config.Config
	engine *edit.Engine
}

// Options select what the editor opens
type Options struct {
	// File is an .stl, .scad or .yaml scene file. Empty starts with a
	// primitive of the configured kind.
	File   string
	Config config.Config
}

// New prepares an editor without opening a window
func New(opts Options) (*App, error) {
	app := &App{
		cfg:    opts.Config,
		engine: edit.NewEngine(edit.WithTolerance(opts.Config.Tolerance)),
		View: ViewSettings{
			showWireframe: true,
			showFilled:    true,
			showHandles:   true,
		},
		Interaction: InteractionState{hovered: overlay.NoHandle},
		FileWatch:   FileWatchState{sourceFile: opts.File},
	}
	app.Scene.meshes = make(map[*scene.Object]gpuMesh)

	if opts.File == "" {
		s, err := startScene(opts.Config)
		if err != nil {
			return nil, err
		}
		app.Scene.scene = s
	} else {
		s, err := scene.Open(context.Background(), opts.File)
		if err != nil {
			return nil, fmt.Errorf("error loading file: %w", err)
		}
		app.Scene.scene = s
	}

	app.selectObject(0)
	return app, nil
}

// startScene holds one primitive of the configured kind
func startScene(cfg config.Config) (*scene.Scene, error) {
	kind, err := primitive.ParseKind(cfg.Primitive)
	if err != nil {
		return nil, err
	}
	shape, err := primitive.New(kind)
	if err != nil {
		return nil, err
	}
	if resized, err := shape.WithResolution(cfg.Segments); err == nil {
		shape = resized
	}

	s := scene.New()
	s.Add(scene.NewPrimitiveObject(kind.String(), shape))
	return s, nil
}

// Run opens the editor window and blocks until it is closed
func Run(opts Options) error {
	app, err := New(opts)
	if err != nil {
		return err
	}

	if opts.File != "" {
		if err := app.setupFileWatcher(); err != nil {
			log.Printf("Warning: Failed to set up file watching: %v", err)
			log.Println("Auto-reload will not be available")
		} else {
			defer app.FileWatch.fileWatcher.Close()
		}
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(int32(opts.Config.WindowWidth), int32(opts.Config.WindowHeight), "meshedit")
	rl.SetTargetFPS(60)
	rl.SetExitKey(0) // ESC clears the selection

	app.UI.font = rl.GetFontDefault()
	app.Scene.material = rl.LoadMaterialDefault()
	app.frameScene()
	app.Camera.camera = rl.Camera3D{
		Position:   rl.Vector3{X: 0, Y: 0, Z: app.Camera.distance},
		Target:     app.Camera.target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45.0,
		Projection: rl.CameraPerspective,
	}

	for !rl.WindowShouldClose() {
		ctrlPressed := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
		if ctrlPressed && rl.IsKeyPressed(rl.KeyQ) {
			break
		}

		// Check if the scene needs reloading (file changed)
		app.pollReload()

		// Apply loaded scene if ready (must be on main thread)
		app.applyLoadedScene()

		app.updateCamera()
		app.handleInput()
		app.syncMeshes()

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(15, 18, 25, 255))

		rl.BeginMode3D(app.Camera.camera)
		app.drawScene()
		rl.EndMode3D()

		if app.View.showHandles {
			ctx := app.overlayContext()
			overlayRenderer.DrawHandles(ctx)
			overlayRenderer.DrawHoverLabel(ctx, app.engine.Tolerance())
			overlayRenderer.DrawDragLabel(ctx)
		}

		app.drawUI()

		rl.EndDrawing()
	}

	app.unloadMeshes()
	rl.CloseWindow()
	return nil
}

// target returns the edit target as a scene object
func (app *App) target() *scene.Object {
	o, _ := app.engine.Target().(*scene.Object)
	return o
}

// selectObject makes the i-th scene object the edit target, keeping the
// current edit mode
func (app *App) selectObject(i int) {
	objects := app.Scene.scene.Objects
	if len(objects) == 0 {
		app.engine.SelectTarget(nil)
		return
	}
	i = (i%len(objects) + len(objects)) % len(objects)

	mode := app.engine.Mode()
	app.engine.SelectTarget(objects[i])
	if mode != edit.ModeNone {
		if err := app.engine.EnterEditMode(mode); err != nil {
			app.setStatus(err.Error())
		}
	}
}

// targetIndex returns the scene position of the edit target, or -1
func (app *App) targetIndex() int {
	t := app.target()
	for i, o := range app.Scene.scene.Objects {
		if o == t {
			return i
		}
	}
	return -1
}

func (app *App) overlayContext() overlay.RenderContext {
	ctx := overlay.RenderContext{
		Camera:    app.Camera.camera,
		Font:      app.UI.font,
		Mode:      app.engine.Mode(),
		Edges:     app.engine.Edges(),
		Selection: app.engine.Selection(),
		Hovered:   app.Interaction.hovered,
	}
	if t := app.target(); t != nil {
		ctx.Mesh = t.Mesh()
		ctx.World = t.WorldMatrix()
	}
	ctx.Anchor, ctx.Dragging = app.engine.DragAnchor()
	return ctx
}
