package wireframe

import (
	"path/filepath"

	"objview/internal/config"
	"objview/internal/graphics"
	"objview/internal/graphics/mesh"
	renderer "objview/internal/graphics/renderer"
	"objview/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	ShadersDir = "assets/shaders/wireframe"
)

var (
	WireframeVertShader = filepath.Join(ShadersDir, "wireframe.vert")
	WireframeFragShader = filepath.Join(ShadersDir, "wireframe.frag")
)

// Wireframe outlines the bounding box of the loaded mesh
type Wireframe struct {
	shader *graphics.Shader
	lines  *mesh.GpuMesh

	min, max mgl32.Vec3
}

// NewWireframe creates a bounds outline for the box spanned by min and max
func NewWireframe(min, max mgl32.Vec3) *Wireframe {
	return &Wireframe{min: min, max: max}
}

// Init compiles the shader and uploads the 12 box edges
func (w *Wireframe) Init() error {
	var err error
	w.shader, err = graphics.NewShader(WireframeVertShader, WireframeFragShader)
	if err != nil {
		return err
	}

	w.lines, err = mesh.NewFromVertices(mesh.BoxLines(w.min, w.max), mesh.Lines)
	if err != nil {
		w.Dispose()
		return err
	}

	return nil
}

// Render draws the outline when the bounds overlay is enabled
func (w *Wireframe) Render(ctx renderer.RenderContext) {
	if !config.GetShowBounds() {
		return
	}
	defer profiling.Track("wireframe.Render")()

	w.shader.Use()
	w.shader.SetMatrix4("proj", &ctx.Proj[0])
	w.shader.SetMatrix4("view", &ctx.View[0])

	// grow slightly so the outline does not z-fight with the mesh surface
	center := w.min.Add(w.max).Mul(0.5)
	model := mgl32.Translate3D(center.X(), center.Y(), center.Z()).
		Mul4(mgl32.Scale3D(1.01, 1.01, 1.01)).
		Mul4(mgl32.Translate3D(-center.X(), -center.Y(), -center.Z()))
	w.shader.SetMatrix4("model", &model[0])
	w.shader.SetVector3("color", 1.0, 0.85, 0.2)

	gl.LineWidth(1.0)
	w.lines.Draw()
}

// SetViewport is a no-op
func (w *Wireframe) SetViewport(width, height int) {}

// Dispose cleans up OpenGL resources
func (w *Wireframe) Dispose() {
	if w.lines != nil {
		w.lines.Close()
		w.lines = nil
	}
	if w.shader != nil {
		w.shader.Delete()
		w.shader = nil
	}
}
