package model

import (
	"fmt"
	"log"
	"path/filepath"

	"objview/internal/graphics"
	"objview/internal/graphics/mesh"
	renderer "objview/internal/graphics/renderer"
	"objview/internal/profiling"
	"objview/pkg/objmesh"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	ShadersDir = "assets/shaders/model"
)

var (
	ModelVertShader = filepath.Join(ShadersDir, "model.vert")
	ModelFragShader = filepath.Join(ShadersDir, "model.frag")
)

// Model draws one uploaded mesh, optionally textured
type Model struct {
	shader  *graphics.Shader
	gpu     *mesh.GpuMesh
	texture uint32

	// source data, dropped once uploaded
	src      *objmesh.Mesh
	vertices []mesh.Vertex
	topology mesh.Topology

	texturePath string
	transform   mgl32.Mat4
}

// NewModel creates a renderable for a loaded OBJ mesh
func NewModel(m *objmesh.Mesh, topology mesh.Topology, texturePath string) *Model {
	return &Model{
		src:         m,
		topology:    topology,
		texturePath: texturePath,
		transform:   mgl32.Ident4(),
	}
}

// NewBox creates a renderable for the built-in unit cube strip
func NewBox(texturePath string) *Model {
	return &Model{
		vertices:    mesh.BoxStrip(),
		topology:    mesh.TriangleStrip,
		texturePath: texturePath,
		transform:   mgl32.Ident4(),
	}
}

// Init compiles the shader and uploads the mesh
func (m *Model) Init() error {
	var err error
	m.shader, err = graphics.NewShader(ModelVertShader, ModelFragShader)
	if err != nil {
		return err
	}

	if m.src != nil {
		m.gpu, err = mesh.New(m.src, m.topology)
	} else {
		m.gpu, err = mesh.NewFromVertices(m.vertices, m.topology)
	}
	if err != nil {
		m.Dispose()
		return fmt.Errorf("could not upload model: %w", err)
	}
	log.Printf("Uploaded %d vertices (%s)", m.gpu.VertexCount(), m.gpu.Topology())
	m.src, m.vertices = nil, nil

	if m.texturePath != "" {
		tex, w, h, err := graphics.LoadTexture(m.texturePath)
		if err != nil {
			m.Dispose()
			return err
		}
		m.texture = tex
		log.Printf("Loaded texture %s (%dx%d)", m.texturePath, w, h)
	}

	return nil
}

// SetTransform sets the model matrix
func (m *Model) SetTransform(t mgl32.Mat4) {
	m.transform = t
}

// VertexCount returns the number of uploaded vertices, 0 before Init
func (m *Model) VertexCount() int32 {
	if m.gpu == nil {
		return 0
	}
	return m.gpu.VertexCount()
}

// Render draws the mesh with a single directional light from the camera side
func (m *Model) Render(ctx renderer.RenderContext) {
	defer profiling.Track("model.Render")()

	m.shader.Use()
	m.shader.SetMatrix4("proj", &ctx.Proj[0])
	m.shader.SetMatrix4("view", &ctx.View[0])
	m.shader.SetMatrix4("model", &m.transform[0])

	eye := ctx.Camera.Position()
	light := eye.Sub(ctx.Camera.Target)
	if light.Len() > 0 {
		light = light.Normalize()
	}
	m.shader.SetVector3("lightDir", light.X(), light.Y(), light.Z())

	m.shader.SetBool("hasTexture", m.texture != 0)
	if m.texture != 0 {
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, m.texture)
		m.shader.SetInt("diffuse", 0)
	}

	m.gpu.Draw()

	if m.texture != 0 {
		gl.BindTexture(gl.TEXTURE_2D, 0)
	}
}

// SetViewport is a no-op; the projection comes from the render context
func (m *Model) SetViewport(width, height int) {}

// Dispose cleans up OpenGL resources
func (m *Model) Dispose() {
	if m.gpu != nil {
		m.gpu.Close()
		m.gpu = nil
	}
	if m.texture != 0 {
		gl.DeleteTextures(1, &m.texture)
		m.texture = 0
	}
	if m.shader != nil {
		m.shader.Delete()
		m.shader = nil
	}
}
