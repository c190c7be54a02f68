package viewer

import (
	"log"

	"objview/internal/config"
	"objview/internal/graphics"
	"objview/internal/input"
)

const (
	orbitSpeed      = 90.0 // degrees per second for key orbit
	dragSensitivity = 0.3  // degrees per pixel
	zoomPerSecond   = 2.0  // distance factor per second for key zoom
	zoomPerNotch    = 0.9  // distance factor per scroll notch
)

// cameraHome is the view restored by ActionResetView
type cameraHome struct {
	yaw, pitch, distance float32
}

func homeOf(c *graphics.Camera) cameraHome {
	return cameraHome{yaw: c.Yaw, pitch: c.Pitch, distance: c.Distance}
}

// applyInput moves the camera and flips settings for the current frame.
// It reports whether anything changed so the caller can idle otherwise.
func applyInput(c *graphics.Camera, im *input.InputManager, home cameraHome, dt float64) bool {
	changed := false
	step := float32(dt)

	var dYaw, dPitch float32
	if im.IsActive(input.ActionOrbitLeft) {
		dYaw -= orbitSpeed * step
	}
	if im.IsActive(input.ActionOrbitRight) {
		dYaw += orbitSpeed * step
	}
	if im.IsActive(input.ActionOrbitUp) {
		dPitch += orbitSpeed * step
	}
	if im.IsActive(input.ActionOrbitDown) {
		dPitch -= orbitSpeed * step
	}
	if im.IsActive(input.ActionMouseLeft) {
		dx, dy := im.CursorDelta()
		dYaw -= float32(dx) * dragSensitivity
		dPitch += float32(dy) * dragSensitivity
	}
	if dYaw != 0 || dPitch != 0 {
		c.Orbit(dYaw, dPitch)
		changed = true
	}

	zoom := float32(1)
	if im.IsActive(input.ActionZoomIn) {
		zoom /= 1 + (zoomPerSecond-1)*step
	}
	if im.IsActive(input.ActionZoomOut) {
		zoom *= 1 + (zoomPerSecond-1)*step
	}
	if _, sy := im.Scroll(); sy != 0 {
		for i := 0.0; i < sy; i++ {
			zoom *= zoomPerNotch
		}
		for i := 0.0; i > sy; i-- {
			zoom /= zoomPerNotch
		}
	}
	if zoom != 1 {
		c.Zoom(zoom)
		changed = true
	}

	if im.JustPressed(input.ActionResetView) {
		c.Yaw, c.Pitch, c.Distance = home.yaw, home.pitch, home.distance
		changed = true
	}
	if im.JustPressed(input.ActionToggleWireframe) {
		log.Printf("Wireframe: %v", config.ToggleWireframe())
		changed = true
	}
	if im.JustPressed(input.ActionToggleBounds) {
		log.Printf("Bounds overlay: %v", config.ToggleShowBounds())
		changed = true
	}

	return changed
}
