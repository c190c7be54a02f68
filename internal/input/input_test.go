package input

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func TestKeyEdges(t *testing.T) {
	im := NewInputManager()

	im.HandleKeyEvent(glfw.KeyF, glfw.Press)
	if !im.IsActive(ActionToggleWireframe) || !im.JustPressed(ActionToggleWireframe) {
		t.Fatal("expected wireframe toggle to be active and just pressed")
	}

	im.PostUpdate()
	if im.JustPressed(ActionToggleWireframe) {
		t.Error("JustPressed should reset after PostUpdate")
	}

	// key repeat keeps the action held without a new edge
	im.HandleKeyEvent(glfw.KeyF, glfw.Repeat)
	if !im.IsActive(ActionToggleWireframe) || im.JustPressed(ActionToggleWireframe) {
		t.Error("repeat should not produce a new press edge")
	}

	im.HandleKeyEvent(glfw.KeyF, glfw.Release)
	if im.IsActive(ActionToggleWireframe) {
		t.Error("expected release to clear the action")
	}
}

func TestMultipleKeysOneAction(t *testing.T) {
	im := NewInputManager()

	im.HandleKeyEvent(glfw.KeyQ, glfw.Press)
	if !im.JustPressed(ActionQuit) {
		t.Error("Q should map to quit")
	}
	im.HandleKeyEvent(glfw.KeyEscape, glfw.Press)
	if !im.IsActive(ActionQuit) {
		t.Error("Escape should map to quit")
	}

	im.UnbindKey(glfw.KeyQ)
	im.HandleKeyEvent(glfw.KeyQ, glfw.Release)
	if !im.IsActive(ActionQuit) {
		t.Error("releasing an unbound key must not change state")
	}
}

func TestCursorAndScroll(t *testing.T) {
	im := NewInputManager()

	// first sample only establishes the origin
	im.HandleCursorPos(100, 100)
	if dx, dy := im.CursorDelta(); dx != 0 || dy != 0 {
		t.Errorf("first sample produced delta %v,%v", dx, dy)
	}

	im.HandleCursorPos(110, 95)
	im.HandleCursorPos(115, 90)
	if dx, dy := im.CursorDelta(); dx != 15 || dy != -10 {
		t.Errorf("delta: got %v,%v want 15,-10", dx, dy)
	}

	im.HandleScroll(0, 1)
	im.HandleScroll(0, 2)
	if _, sy := im.Scroll(); sy != 3 {
		t.Errorf("scroll: got %v, want 3", sy)
	}

	im.PostUpdate()
	if dx, dy := im.CursorDelta(); dx != 0 || dy != 0 {
		t.Error("cursor delta should reset after PostUpdate")
	}
	if _, sy := im.Scroll(); sy != 0 {
		t.Error("scroll should reset after PostUpdate")
	}
}

func TestMouseButton(t *testing.T) {
	im := NewInputManager()
	im.HandleMouseButtonEvent(glfw.MouseButtonLeft, glfw.Press)
	if !im.IsActive(ActionMouseLeft) {
		t.Error("left button should be held")
	}
	im.HandleMouseButtonEvent(glfw.MouseButtonLeft, glfw.Release)
	if im.IsActive(ActionMouseLeft) {
		t.Error("left button should be released")
	}
}
