package mesh

import (
	"bytes"
	"errors"
	"log"
	"runtime"
	"strings"
	"testing"

	"objview/pkg/objmesh"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// withGLContext makes a hidden 4.1 core context current on the test's
// thread, skipping the test when no display is available.
func withGLContext(t *testing.T) {
	t.Helper()

	runtime.LockOSThread()
	t.Cleanup(runtime.UnlockOSThread)

	if err := glfw.Init(); err != nil {
		t.Skipf("no display: %v", err)
	}
	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(64, 64, "mesh test", nil, nil)
	if err != nil {
		glfw.Terminate()
		t.Skipf("no OpenGL 4.1 context: %v", err)
	}
	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		t.Skipf("could not load OpenGL: %v", err)
	}

	t.Cleanup(func() {
		window.Destroy()
		glfw.Terminate()
	})
}

func boundVertexArray() int32 {
	var vao int32
	gl.GetIntegerv(gl.VERTEX_ARRAY_BINDING, &vao)
	return vao
}

func TestCloseWithoutHandles(t *testing.T) {
	// no GL context exists here, so any GL call would crash
	m := &GpuMesh{}
	for i := 0; i < 2; i++ {
		if err := m.Close(); err != nil {
			t.Fatalf("close %d: %v", i, err)
		}
	}
}

func TestNewRejectsBadIndexBeforeUpload(t *testing.T) {
	src := triangleMesh()
	src.Faces[0].NI[1] = 5

	m, err := New(src, Triangles)
	if m != nil {
		t.Error("expected no mesh on failure")
	}
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestGpuMeshEmpty(t *testing.T) {
	withGLContext(t)

	m, err := New(&objmesh.Mesh{}, Triangles)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if m.VertexCount() != 0 {
		t.Errorf("vertex count: got %d, want 0", m.VertexCount())
	}

	m.Draw()
	if vao := boundVertexArray(); vao != 0 {
		t.Errorf("vertex array %d still bound after Draw", vao)
	}

	if err := m.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := m.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
	if code := gl.GetError(); code != gl.NO_ERROR {
		t.Errorf("gl error 0x%x", code)
	}
}

func TestGpuMeshUploadAndRelease(t *testing.T) {
	withGLContext(t)

	m, err := New(triangleMesh(), Triangles)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if m.VertexCount() != 3 || m.Topology() != Triangles {
		t.Errorf("got %d vertices as %v, want 3 as triangles", m.VertexCount(), m.Topology())
	}

	var size int32
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.GetBufferParameteriv(gl.ARRAY_BUFFER, gl.BUFFER_SIZE, &size)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	if want := 3 * VertexLayout.Stride; size != want {
		t.Errorf("buffer size: got %d, want %d", size, want)
	}

	m.Draw()
	if vao := boundVertexArray(); vao != 0 {
		t.Errorf("vertex array %d still bound after Draw", vao)
	}

	// the failure path of NewFromVertices relies on Close releasing both
	vao, vbo := m.vao, m.vbo
	if err := m.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if gl.IsVertexArray(vao) || gl.IsBuffer(vbo) {
		t.Error("handles still alive after Close")
	}
	if m.vao != 0 || m.vbo != 0 {
		t.Errorf("handles not cleared: vao=%d vbo=%d", m.vao, m.vbo)
	}
}

func TestPendingErrorsAreLogged(t *testing.T) {
	withGLContext(t)

	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(prev)

	// an unused name leaves GL_INVALID_OPERATION pending
	gl.BindVertexArray(0xfffff)

	m, err := NewFromVertices(BoxStrip(), TriangleStrip)
	if err != nil {
		t.Fatalf("an earlier error must not fail the upload: %v", err)
	}
	defer m.Close()

	if !strings.Contains(buf.String(), "0x502") {
		t.Errorf("pending error not logged, got %q", buf.String())
	}
}
