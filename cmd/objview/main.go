package main

import (
	"flag"
	"log"
	"runtime"

	"objview/internal/config"
	"objview/internal/graphics"
	"objview/internal/graphics/mesh"
	"objview/internal/graphics/renderables/model"
	"objview/internal/graphics/renderables/wireframe"
	renderer "objview/internal/graphics/renderer"
	"objview/internal/input"
	"objview/internal/profiling"
	"objview/internal/viewer"
	"objview/pkg/objmesh"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/xlab/closer"
)

func init() {
	runtime.LockOSThread()
}

type options struct {
	modelPath   string
	texturePath string
	box         bool
	topology    mesh.Topology
	width       int
	height      int
}

func parseFlags() options {
	var (
		opts     options
		topology string
		fps      int
		fov      float64
		bounds   bool
	)
	flag.StringVar(&opts.modelPath, "model", "", "path to a triangulated `.obj` file")
	flag.StringVar(&opts.texturePath, "texture", "", "optional diffuse texture (png, jpeg, gif, bmp, tiff, webp)")
	flag.BoolVar(&opts.box, "box", false, "show the built-in cube instead of a file")
	flag.StringVar(&topology, "topology", mesh.Triangles.String(), "primitive topology: triangles, triangle-strip, triangle-fan, lines, points")
	flag.IntVar(&opts.width, "width", 900, "window width")
	flag.IntVar(&opts.height, "height", 600, "window height")
	flag.IntVar(&fps, "fps", config.GetFPSLimit(), "frame rate cap, 0 for uncapped")
	flag.Float64Var(&fov, "fov", float64(config.GetFOV()), "vertical field of view in degrees")
	flag.BoolVar(&bounds, "bounds", false, "start with the bounding box overlay on")
	flag.Parse()

	if opts.modelPath == "" && !opts.box {
		log.Fatal("objview: -model or -box is required")
	}

	t, err := mesh.ParseTopology(topology)
	if err != nil {
		log.Fatalf("objview: %v", err)
	}
	opts.topology = t

	config.SetFPSLimit(fps)
	config.SetFOV(float32(fov))
	config.SetShowBounds(bounds)
	return opts
}

func loadMesh(path string) *objmesh.Mesh {
	defer profiling.Track("objmesh.Load")()

	m, err := objmesh.Load(path)
	if err != nil {
		log.Fatalf("objview: %v", err)
	}
	s := m.Stats()
	log.Printf("Loaded mesh %s: %d positions, %d normals, %d texcoords, %d faces", path, s.Positions, s.Normals, s.TexCoords, s.Faces)
	if s.Faces == 0 {
		log.Printf("Mesh %s has no faces, nothing will be drawn", path)
	}
	return m
}

func main() {
	opts := parseFlags()

	// The mesh is loaded before any window exists so a bad file fails fast.
	var (
		src       *objmesh.Mesh
		boundsMin = mgl32.Vec3{-1, -1, -1}
		boundsMax = mgl32.Vec3{1, 1, 1}
	)
	if !opts.box {
		src = loadMesh(opts.modelPath)
		if lo, hi, ok := src.Bounds(); ok {
			boundsMin, boundsMax = lo, hi
		}
	}

	defer closer.Close()

	if err := glfw.Init(); err != nil {
		closer.Fatalf("objview: could not initialise glfw: %v", err)
	}

	window, err := setupWindow(opts.width, opts.height)
	if err != nil {
		glfw.Terminate()
		closer.Fatalf("objview: could not create window: %v", err)
	}

	if err := gl.Init(); err != nil {
		glfw.Terminate()
		closer.Fatalf("objview: could not initialise OpenGL: %v", err)
	}
	log.Printf("OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))

	var r *renderer.Renderer
	t := newTeardown(window, func() {
		if r != nil {
			r.Dispose()
		}
		glfw.Terminate()
	})
	// SIGINT/SIGTERM ask the render loop to stop; GL teardown stays on this thread.
	closer.Bind(t.requestStop)
	// runs before closer.Close, including while a panic unwinds
	defer t.release()

	var modelRenderer *model.Model
	if opts.box {
		modelRenderer = model.NewBox(opts.texturePath)
	} else {
		modelRenderer = model.NewModel(src, opts.topology, opts.texturePath)
	}
	boundsRenderer := wireframe.NewWireframe(boundsMin, boundsMax)

	camera := graphics.NewCamera(opts.width, opts.height)
	camera.FOV = config.GetFOV()
	camera.Frame(boundsMin, boundsMax)

	r, err = renderer.NewRenderer(camera, modelRenderer, boundsRenderer)
	if err != nil {
		t.release()
		closer.Fatalf("objview: %v", err)
	}

	app := viewer.NewApp(window, input.NewInputManager(), r)
	app.Run()
}

func setupWindow(width, height int) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.Samples, 4)

	window, err := glfw.CreateWindow(width, height, "objview", nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	glfw.SwapInterval(1)

	return window, nil
}
