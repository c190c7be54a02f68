package objmesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Face is one triangle. Each array holds the 1-based index of a corner's
// position (VI), texture coordinate (TI) and normal (NI).
type Face struct {
	VI [3]uint32
	TI [3]uint32
	NI [3]uint32
}

// Mesh is the raw attribute data of an OBJ file. The order of each slice is
// the order of the records in the file and defines the index space faces
// refer to.
type Mesh struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	TexCoords []mgl32.Vec2
	Faces     []Face
}

// Stats summarises the size of a mesh
type Stats struct {
	Positions int
	Normals   int
	TexCoords int
	Faces     int
	// Vertices is the length of the exploded (non-indexed) vertex stream
	Vertices int
}

// Stats returns the record counts of the mesh
func (m *Mesh) Stats() Stats {
	return Stats{
		Positions: len(m.Positions),
		Normals:   len(m.Normals),
		TexCoords: len(m.TexCoords),
		Faces:     len(m.Faces),
		Vertices:  3 * len(m.Faces),
	}
}

// Empty reports whether the mesh has no records at all
func (m *Mesh) Empty() bool {
	return len(m.Positions) == 0 && len(m.Normals) == 0 && len(m.TexCoords) == 0 && len(m.Faces) == 0
}

// Bounds returns the axis-aligned bounding box of all positions.
// ok is false when the mesh has no positions.
func (m *Mesh) Bounds() (min, max mgl32.Vec3, ok bool) {
	if len(m.Positions) == 0 {
		return min, max, false
	}

	inf := float32(math.Inf(1))
	min = mgl32.Vec3{inf, inf, inf}
	max = mgl32.Vec3{-inf, -inf, -inf}
	for _, p := range m.Positions {
		for i := 0; i < 3; i++ {
			if p[i] < min[i] {
				min[i] = p[i]
			}
			if p[i] > max[i] {
				max[i] = p[i]
			}
		}
	}
	return min, max, true
}
