// Package viewer runs the interactive mesh viewer loop.
package viewer

import (
	"log"
	"time"

	"objview/internal/config"
	renderer "objview/internal/graphics/renderer"
	"objview/internal/input"
	"objview/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
)

const slowFrame = 16 * time.Millisecond

type App struct {
	window       *glfw.Window
	inputManager *input.InputManager
	renderer     *renderer.Renderer

	home          cameraHome
	showProfiling bool

	pacer    framePacer
	lastTime time.Time

	frames      int
	lastFPSTime time.Time
}

// NewApp wires input and resize callbacks for window. The camera's current
// pose becomes the view ActionResetView returns to.
func NewApp(window *glfw.Window, im *input.InputManager, r *renderer.Renderer) *App {
	im.Install(window)

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		r.UpdateViewport(width, height)
	})
	width, height := window.GetFramebufferSize()
	r.UpdateViewport(width, height)

	now := time.Now()
	return &App{
		window:       window,
		inputManager: im,
		renderer:     r,
		home:         homeOf(r.GetCamera()),
		lastTime:     now,
		lastFPSTime:  now,
	}
}

func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
}

func (a *App) tick() {
	profiling.ResetFrame()
	startTick := time.Now()
	dt := startTick.Sub(a.lastTime).Seconds()
	a.lastTime = startTick

	glfw.PollEvents()

	if a.inputManager.JustPressed(input.ActionQuit) {
		a.window.SetShouldClose(true)
	}
	if a.inputManager.JustPressed(input.ActionToggleProfiling) {
		a.showProfiling = !a.showProfiling
		log.Printf("Frame profiling: %v", a.showProfiling)
	}

	changed := applyInput(a.renderer.GetCamera(), a.inputManager, a.home, dt)

	a.renderer.Render(dt)
	a.window.SwapBuffers()

	processingDuration := time.Since(startTick)
	if a.showProfiling && processingDuration > slowFrame {
		log.Printf("Slow frame: %v. Top tasks: %s", processingDuration, profiling.TopN(5))
	}

	a.frames++
	if elapsed := time.Since(a.lastFPSTime); elapsed >= time.Second {
		if a.showProfiling {
			log.Printf("FPS: %d", int(float64(a.frames)/elapsed.Seconds()+0.5))
		}
		a.frames = 0
		a.lastFPSTime = time.Now()
	}

	a.inputManager.PostUpdate()

	// a still view redraws at idleFPS and wakes early on input
	idle := !changed && !a.inputManager.IsActive(input.ActionMouseLeft)
	sleep := sleepFor
	if idle {
		sleep = waitForEvents
	}
	a.pacer.wait(frameRate(config.GetFPSLimit(), idle), sleep)
}
