package renderer

import (
	"objview/internal/config"
	"objview/internal/graphics"
	"objview/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	camera      *graphics.Camera

	wireframe bool
}

// NewRenderer configures GL state and initialises every renderable in order.
// If one fails, the ones already initialised are disposed.
func NewRenderer(camera *graphics.Camera, rs ...Renderable) (*Renderer, error) {
	// OBJ files come with either winding, so both sides are drawn
	gl.Enable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	renderer := &Renderer{
		camera: camera,
	}

	for _, r := range rs {
		if err := r.Init(); err != nil {
			renderer.Dispose()
			return nil, err
		}
		renderer.renderables = append(renderer.renderables, r)
	}

	return renderer, nil
}

// Render clears the frame and draws every renderable
func (r *Renderer) Render(dt float64) {
	defer profiling.Track("renderer.Render")()

	gl.ClearColor(0.18, 0.2, 0.23, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if wf := config.GetWireframe(); wf != r.wireframe {
		r.wireframe = wf
		if wf {
			gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		} else {
			gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
		}
	}

	r.camera.FOV = config.GetFOV()

	ctx := RenderContext{
		Camera: r.camera,
		DT:     dt,
		View:   r.camera.GetViewMatrix(),
		Proj:   r.camera.GetProjectionMatrix(),
	}

	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
	r.renderables = nil
}

// GetCamera returns the camera instance
func (r *Renderer) GetCamera() *graphics.Camera {
	return r.camera
}

// UpdateViewport updates the GL viewport, the camera and every renderable
func (r *Renderer) UpdateViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	r.camera.SetViewport(width, height)
	for _, renderable := range r.renderables {
		renderable.SetViewport(width, height)
	}
}
