package config

import "sync"

// ViewerSettings holds the runtime configuration of the viewer
type ViewerSettings struct {
	mu         sync.RWMutex
	fov        float32 // vertical, degrees
	fpsLimit   int     // 0 means unlimited
	wireframe  bool
	showBounds bool
}

var globalViewerSettings = &ViewerSettings{
	fov:      60.0,
	fpsLimit: 144,
}

// GetFOV returns the vertical field of view in degrees
func GetFOV() float32 {
	globalViewerSettings.mu.RLock()
	defer globalViewerSettings.mu.RUnlock()
	return globalViewerSettings.fov
}

// SetFOV sets the vertical field of view in degrees
func SetFOV(fov float32) {
	globalViewerSettings.mu.Lock()
	defer globalViewerSettings.mu.Unlock()

	if fov < 20 {
		fov = 20
	}
	if fov > 120 {
		fov = 120
	}

	globalViewerSettings.fov = fov
}

// GetFPSLimit returns the frame cap, 0 when uncapped
func GetFPSLimit() int {
	globalViewerSettings.mu.RLock()
	defer globalViewerSettings.mu.RUnlock()
	return globalViewerSettings.fpsLimit
}

// SetFPSLimit sets the frame cap. Values <= 0 disable it.
func SetFPSLimit(limit int) {
	globalViewerSettings.mu.Lock()
	defer globalViewerSettings.mu.Unlock()

	if limit < 0 {
		limit = 0
	}
	if limit > 1000 {
		limit = 1000
	}

	globalViewerSettings.fpsLimit = limit
}

// GetWireframe reports whether meshes are drawn as lines
func GetWireframe() bool {
	globalViewerSettings.mu.RLock()
	defer globalViewerSettings.mu.RUnlock()
	return globalViewerSettings.wireframe
}

// ToggleWireframe flips wireframe mode and returns the new value
func ToggleWireframe() bool {
	globalViewerSettings.mu.Lock()
	defer globalViewerSettings.mu.Unlock()
	globalViewerSettings.wireframe = !globalViewerSettings.wireframe
	return globalViewerSettings.wireframe
}

// GetShowBounds reports whether the bounding box overlay is drawn
func GetShowBounds() bool {
	globalViewerSettings.mu.RLock()
	defer globalViewerSettings.mu.RUnlock()
	return globalViewerSettings.showBounds
}

// SetShowBounds enables or disables the bounding box overlay
func SetShowBounds(show bool) {
	globalViewerSettings.mu.Lock()
	defer globalViewerSettings.mu.Unlock()
	globalViewerSettings.showBounds = show
}

// ToggleShowBounds flips the bounding box overlay and returns the new value
func ToggleShowBounds() bool {
	globalViewerSettings.mu.Lock()
	defer globalViewerSettings.mu.Unlock()
	globalViewerSettings.showBounds = !globalViewerSettings.showBounds
	return globalViewerSettings.showBounds
}
