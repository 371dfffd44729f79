package app

import (
	"sync"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/meshedit/internal/overlay"
	"github.com/philipparndt/meshedit/internal/scene"
	"github.com/philipparndt/meshedit/pkg/analysis"
	"github.com/philipparndt/meshedit/pkg/geometry"
	"github.com/philipparndt/meshedit/pkg/mesh"
	"github.com/philipparndt/meshedit/pkg/watcher"
)

// CameraState holds all camera-related state
type CameraState struct {
	camera        rl.Camera3D
	distance      float32
	angleX        float32
	angleY        float32
	target        rl.Vector3 // Current camera target (can be panned)
	defaultDist   float32    // Default camera distance (for reset)
	defaultAngleX float32    // Default camera angle X (for reset)
	defaultAngleY float32    // Default camera angle Y (for reset)
}

// SceneData holds the scene and its GPU meshes
type SceneData struct {
	scene    *scene.Scene
	meshes   map[*scene.Object]gpuMesh
	material rl.Material
	center   rl.Vector3 // Scene center
	size     float32    // Scene size (max dimension)
}

// ViewSettings holds display settings
type ViewSettings struct {
	showWireframe bool
	showFilled    bool
	showHandles   bool
}

// InteractionState holds mouse and interaction state
type InteractionState struct {
	hovered      overlay.Handle
	mouseDownPos rl.Vector2
	mouseMoved   bool
	isPanning    bool
	isOrbiting   bool
	grabOffset   geometry.Vector3 // Local offset from the grab point to the dragged edge's first endpoint
	// Multi-select rectangle
	isSelectingWithRect bool
	selectionRect       SelectionRect
}

// FileWatchState holds file watching and reload state
type FileWatchState struct {
	sourceFile       string               // Opened file (.stl, .scad or .yaml)
	fileWatcher      *watcher.FileWatcher // File watcher for auto-reload
	isLoading        bool                 // A reload is in progress
	loadingStartTime time.Time

	mu            sync.Mutex
	needsReload   bool         // Set by the watcher goroutine
	suppressUntil time.Time    // Ignore changes caused by our own save
	loaded        *scene.Scene // Scene loaded in background, applied on the main thread
	loadErr       error
}

// UIState holds UI-related state
type UIState struct {
	font       rl.Font
	status     string
	statusTime time.Time

	// Analysis of the edit target, recomputed when its mesh revision changes
	info         *analysis.MeasurementResult
	infoMesh     *mesh.Mesh
	infoRevision uint64
}
