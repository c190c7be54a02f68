// Package objmesh reads the triangulated subset of the Wavefront OBJ format:
// positions (v), normals (vn), texture coordinates (vt) and triangular faces
// written as three v/t/n index groups (f). Every other record is ignored.
package objmesh

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// maxLineSize bounds a single record. Generated files sometimes pack very long
// comment lines, so this is well above bufio's 64KiB default.
const maxLineSize = 1 << 20

// Some Windows exporters write a UTF-8 BOM before the first record
const byteOrderMark = "\ufeff"

// Load reads the OBJ file at path.
// A file that cannot be opened is an error, so an empty mesh always means an
// empty (or record-free) file.
func Load(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open mesh file: %w", err)
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("could not parse mesh file %s: %w", path, err)
	}
	return m, nil
}

// Parse reads OBJ records from r until EOF or the first malformed record.
func Parse(r io.Reader) (*Mesh, error) {
	m := &Mesh{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := scanner.Text()
		if lineNo == 1 {
			text = strings.TrimPrefix(text, byteOrderMark)
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}

		tag := fields[0]
		var err error
		switch tag {
		case "v":
			var p mgl32.Vec3
			// an optional fourth (w) component is allowed and dropped
			if err = parseFloats(fields[1:], p[:], 1); err == nil {
				m.Positions = append(m.Positions, p)
			}
		case "vn":
			var n mgl32.Vec3
			if err = parseFloats(fields[1:], n[:], 0); err == nil {
				m.Normals = append(m.Normals, n)
			}
		case "vt":
			var t mgl32.Vec2
			if err = parseFloats(fields[1:], t[:], 1); err == nil {
				m.TexCoords = append(m.TexCoords, t)
			}
		case "f":
			var face Face
			if face, err = parseFace(fields[1:]); err == nil {
				m.Faces = append(m.Faces, face)
			}
		default:
			// comments, groups, materials, smoothing groups...
			continue
		}

		if err != nil {
			return nil, &ParseError{Line: lineNo, Tag: tag, Err: err}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read failed after line %d: %w", lineNo, err)
	}

	return m, nil
}

// parseFloats fills dst from fields. At most optional extra trailing fields
// are accepted; they are validated and dropped.
func parseFloats(fields []string, dst []float32, optional int) error {
	if len(fields) < len(dst) || len(fields) > len(dst)+optional {
		return fmt.Errorf("%w: want %d values, got %d", ErrMalformedVertex, len(dst), len(fields))
	}
	for i := range fields {
		v, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return fmt.Errorf("%w: %q is not a number", ErrMalformedVertex, fields[i])
		}
		if i < len(dst) {
			dst[i] = float32(v)
		}
	}
	return nil
}

func parseFace(groups []string) (Face, error) {
	var face Face
	if len(groups) != 3 {
		return face, fmt.Errorf("%w: want 3 corners, got %d", ErrMalformedFace, len(groups))
	}

	for corner, group := range groups {
		parts := strings.Split(group, "/")
		if len(parts) != 3 {
			return face, fmt.Errorf("%w: corner %q is not v/t/n", ErrMalformedFace, group)
		}

		var idx [3]uint32
		for i, part := range parts {
			v, err := strconv.ParseUint(part, 10, 32)
			if err != nil || v == 0 {
				return face, fmt.Errorf("%w: corner %q has an invalid index", ErrMalformedFace, group)
			}
			idx[i] = uint32(v)
		}

		face.VI[corner] = idx[0]
		face.TI[corner] = idx[1]
		face.NI[corner] = idx[2]
	}
	return face, nil
}
