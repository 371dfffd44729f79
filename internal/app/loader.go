package app

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/philipparndt/meshedit/internal/overlay"
	"github.com/philipparndt/meshedit/internal/scene"
	"github.com/philipparndt/meshedit/pkg/watcher"
)

// setupFileWatcher sets up file watching for the source file and its dependencies
func (app *App) setupFileWatcher() error {
	fw, err := watcher.NewFileWatcher(app.cfg.WatchDebounce)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	filesToWatch, err := scene.SourceFiles(app.FileWatch.sourceFile)
	if err != nil {
		fw.Close()
		return fmt.Errorf("failed to resolve dependencies: %w", err)
	}

	log.Printf("Watching %d file(s) for changes:", len(filesToWatch))
	for _, f := range filesToWatch {
		log.Printf("  - %s", f)
	}

	if err := fw.Watch(filesToWatch, app.onSourceChanged); err != nil {
		fw.Close()
		return fmt.Errorf("failed to watch files: %w", err)
	}

	fw.Start()
	app.FileWatch.fileWatcher = fw
	return nil
}

// onSourceChanged runs on the watcher goroutine
func (app *App) onSourceChanged(changedFile string) {
	app.FileWatch.mu.Lock()
	defer app.FileWatch.mu.Unlock()

	if time.Now().Before(app.FileWatch.suppressUntil) {
		return
	}
	log.Printf("File changed: %s", changedFile)
	app.FileWatch.needsReload = true
}

// suppressReload ignores watcher events for the source file for a while
func (app *App) suppressReload(path string) {
	if filepath.Clean(path) != filepath.Clean(app.FileWatch.sourceFile) {
		return
	}
	app.FileWatch.mu.Lock()
	app.FileWatch.suppressUntil = time.Now().Add(app.cfg.WatchDebounce + time.Second)
	app.FileWatch.mu.Unlock()
}

// pollReload starts a background reload when a watched file has changed
func (app *App) pollReload() {
	app.FileWatch.mu.Lock()
	reload := app.FileWatch.needsReload && !app.FileWatch.isLoading
	if reload {
		app.FileWatch.needsReload = false
		app.FileWatch.isLoading = true
		app.FileWatch.loadingStartTime = time.Now()
	}
	app.FileWatch.mu.Unlock()

	if !reload {
		return
	}

	log.Println("Reloading scene...")
	source := app.FileWatch.sourceFile

	// Load in background; GPU meshes are created on the main thread
	go func() {
		s, err := scene.Open(context.Background(), source)

		app.FileWatch.mu.Lock()
		defer app.FileWatch.mu.Unlock()
		app.FileWatch.loaded = s
		app.FileWatch.loadErr = err
	}()
}

// applyLoadedScene swaps in a scene loaded by pollReload. It must be called
// on the main thread.
func (app *App) applyLoadedScene() {
	app.FileWatch.mu.Lock()
	s, err := app.FileWatch.loaded, app.FileWatch.loadErr
	done := s != nil || err != nil
	app.FileWatch.loaded = nil
	app.FileWatch.loadErr = nil
	if done {
		app.FileWatch.isLoading = false
	}
	app.FileWatch.mu.Unlock()

	if !done {
		return
	}
	if err != nil {
		log.Printf("Error reloading scene: %v", err)
		app.setStatus("Reload failed: " + err.Error())
		return
	}

	// The camera stays where it is; only the edit target is re-selected
	index := app.targetIndex()
	app.engine.OnInteractionEnd()
	app.Scene.scene = s
	app.Interaction.hovered = overlay.NoHandle
	app.selectObject(max(index, 0))

	// Dependencies of an OpenSCAD file may have changed
	if fw := app.FileWatch.fileWatcher; fw != nil {
		if files, err := scene.SourceFiles(app.FileWatch.sourceFile); err == nil {
			if err := fw.Watch(files, app.onSourceChanged); err != nil {
				log.Printf("Warning: %v", err)
			}
		}
	}

	elapsed := time.Since(app.FileWatch.loadingStartTime)
	app.setStatus(fmt.Sprintf("Scene reloaded in %.2fs", elapsed.Seconds()))
}
