// Package mesh turns loaded OBJ data into drawable OpenGL vertex arrays.
//
// All functions that touch GL require a current context on the calling
// thread; nothing here checks for one.
package mesh

import (
	"fmt"
	"log"

	"objview/internal/profiling"
	"objview/pkg/objmesh"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// A lost context reports the same error forever
const maxStaleErrors = 16

// noCopy makes go vet's copylocks check flag copies of the struct embedding it
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// GpuMesh owns a vertex buffer holding an exploded vertex stream and the
// vertex array describing it. Use it through the pointer returned by New;
// a copied GpuMesh would release the same GL objects twice.
type GpuMesh struct {
	_ noCopy

	vao         uint32
	vbo         uint32
	vertexCount int32
	topology    Topology
}

// New explodes m and uploads the result.
func New(m *objmesh.Mesh, topology Topology) (*GpuMesh, error) {
	defer profiling.Track("mesh.New")()

	vertices, err := Explode(m)
	if err != nil {
		return nil, fmt.Errorf("could not explode mesh: %w", err)
	}
	return NewFromVertices(vertices, topology)
}

// NewFromVertices uploads vertices into an immutable buffer sized exactly
// len(vertices) * VertexLayout.Stride bytes. On failure nothing is leaked.
func NewFromVertices(vertices []Vertex, topology Topology) (*GpuMesh, error) {
	m := &GpuMesh{
		vertexCount: int32(len(vertices)),
		topology:    topology,
	}

	// errors left by earlier calls belong to their caller, not to this upload
	for i := 0; i < maxStaleErrors; i++ {
		code := gl.GetError()
		if code == gl.NO_ERROR {
			break
		}
		log.Printf("mesh: gl error 0x%x was pending before upload", code)
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)

	if len(vertices) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*int(VertexLayout.Stride), gl.Ptr(vertices), gl.STATIC_DRAW)
	}

	for _, a := range VertexLayout.Attributes {
		gl.EnableVertexAttribArray(a.Slot)
		gl.VertexAttribPointerWithOffset(a.Slot, a.Components, gl.FLOAT, false, VertexLayout.Stride, a.Offset)
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	if code := gl.GetError(); code != gl.NO_ERROR || m.vao == 0 || m.vbo == 0 {
		m.Close()
		return nil, fmt.Errorf("could not create vertex array (%d vertices): gl error 0x%x", len(vertices), code)
	}

	return m, nil
}

// Draw issues one non-indexed draw call for the whole stream and leaves no
// vertex array bound.
func (m *GpuMesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(uint32(m.topology), 0, m.vertexCount)
	gl.BindVertexArray(0)
}

// Close releases the vertex array and buffer together. Calls after the first
// do nothing.
func (m *GpuMesh) Close() error {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	return nil
}

// VertexCount returns the number of vertices drawn by Draw
func (m *GpuMesh) VertexCount() int32 {
	return m.vertexCount
}

// Topology returns the primitive type Draw uses
func (m *GpuMesh) Topology() Topology {
	return m.topology
}
