package mesh

import (
	"errors"
	"fmt"

	"objview/pkg/objmesh"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is one interleaved record of the exploded stream.
// Layout: Position(3) + Normal(3) + TexCoord(2), 32 bytes, no padding.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	TexCoord mgl32.Vec2
}

// ErrIndexOutOfRange is returned when a face refers past the end of an
// attribute array.
var ErrIndexOutOfRange = errors.New("face index out of range")

// IndexError locates the offending face corner
type IndexError struct {
	Face      int
	Corner    int
	Attribute string
	Index     uint32 // 1-based, as written in the file
	Len       int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("face %d corner %d: %s index %d not in [1, %d]", e.Face, e.Corner, e.Attribute, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// Explode turns the indexed faces of m into a flat vertex stream: three
// vertices per face, in face then corner order. Shared corners are duplicated.
func Explode(m *objmesh.Mesh) ([]Vertex, error) {
	vertices := make([]Vertex, 0, 3*len(m.Faces))

	for f, face := range m.Faces {
		for c := 0; c < 3; c++ {
			vi, ni, ti := face.VI[c], face.NI[c], face.TI[c]

			if err := checkIndex(f, c, "position", vi, len(m.Positions)); err != nil {
				return nil, err
			}
			if err := checkIndex(f, c, "normal", ni, len(m.Normals)); err != nil {
				return nil, err
			}
			if err := checkIndex(f, c, "texcoord", ti, len(m.TexCoords)); err != nil {
				return nil, err
			}

			vertices = append(vertices, Vertex{
				Position: m.Positions[vi-1],
				Normal:   m.Normals[ni-1],
				TexCoord: m.TexCoords[ti-1],
			})
		}
	}

	return vertices, nil
}

func checkIndex(face, corner int, attribute string, index uint32, n int) error {
	if index == 0 || int(index) > n {
		return &IndexError{Face: face, Corner: corner, Attribute: attribute, Index: index, Len: n}
	}
	return nil
}

// BoxStrip returns a unit cube (-1..1) as a 14 vertex triangle strip.
// Only positions are set; draw it with TriangleStrip.
func BoxStrip() []Vertex {
	corners := []mgl32.Vec3{
		{-1, 1, 1},   // Front-top-left
		{1, 1, 1},    // Front-top-right
		{-1, -1, 1},  // Front-bottom-left
		{1, -1, 1},   // Front-bottom-right
		{1, -1, -1},  // Back-bottom-right
		{1, 1, 1},    // Front-top-right
		{1, 1, -1},   // Back-top-right
		{-1, 1, 1},   // Front-top-left
		{-1, 1, -1},  // Back-top-left
		{-1, -1, 1},  // Front-bottom-left
		{-1, -1, -1}, // Back-bottom-left
		{1, -1, -1},  // Back-bottom-right
		{-1, 1, -1},  // Back-top-left
		{1, 1, -1},   // Back-top-right
	}

	vertices := make([]Vertex, len(corners))
	for i, p := range corners {
		vertices[i] = Vertex{Position: p}
	}
	return vertices
}

// BoxLines returns the 12 edges of the box spanned by min and max as 24 line
// vertices.
func BoxLines(min, max mgl32.Vec3) []Vertex {
	c := func(x, y, z bool) mgl32.Vec3 {
		p := min
		if x {
			p[0] = max[0]
		}
		if y {
			p[1] = max[1]
		}
		if z {
			p[2] = max[2]
		}
		return p
	}

	edges := [][2]mgl32.Vec3{
		// bottom
		{c(false, false, false), c(true, false, false)},
		{c(true, false, false), c(true, false, true)},
		{c(true, false, true), c(false, false, true)},
		{c(false, false, true), c(false, false, false)},
		// top
		{c(false, true, false), c(true, true, false)},
		{c(true, true, false), c(true, true, true)},
		{c(true, true, true), c(false, true, true)},
		{c(false, true, true), c(false, true, false)},
		// verticals
		{c(false, false, false), c(false, true, false)},
		{c(true, false, false), c(true, true, false)},
		{c(true, false, true), c(true, true, true)},
		{c(false, false, true), c(false, true, true)},
	}

	vertices := make([]Vertex, 0, 2*len(edges))
	for _, e := range edges {
		vertices = append(vertices, Vertex{Position: e[0]}, Vertex{Position: e[1]})
	}
	return vertices
}
