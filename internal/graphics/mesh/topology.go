package mesh

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Topology is the primitive type a GpuMesh is drawn with
type Topology uint32

const (
	Triangles     Topology = gl.TRIANGLES
	TriangleStrip Topology = gl.TRIANGLE_STRIP
	TriangleFan   Topology = gl.TRIANGLE_FAN
	Lines         Topology = gl.LINES
	Points        Topology = gl.POINTS
)

var topologyNames = map[Topology]string{
	Triangles:     "triangles",
	TriangleStrip: "triangle-strip",
	TriangleFan:   "triangle-fan",
	Lines:         "lines",
	Points:        "points",
}

func (t Topology) String() string {
	if name, ok := topologyNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Topology(0x%x)", uint32(t))
}

// ParseTopology accepts the names returned by Topology.String
func ParseTopology(s string) (Topology, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for t, name := range topologyNames {
		if name == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown topology %q", s)
}
