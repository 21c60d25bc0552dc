package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/spf13/afero"
)

// LoadOBJFile reads a Wavefront OBJ mesh from fs.
func LoadOBJFile(fs afero.Fs, path string) (*Mesh, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open OBJ file: %w", err)
	}
	defer f.Close()
	return LoadOBJ(f, path)
}

// LoadOBJ parses the geometry of an OBJ into a flat-colored triangle list.
// Only "v" and "f" records are used; a vertex may carry an "r g b" color
// after its position (0..1 each), otherwise it is white. Polygons are fan
// triangulated and keep the OBJ counter-clockwise winding.
func LoadOBJ(r io.Reader, name string) (*Mesh, error) {
	type objVertex struct {
		pos   mgl64.Vec3
		color Color
	}
	var verts []objVertex
	mesh := &Mesh{Name: name}

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: invalid vertex (need x y z)", lineNum)
			}
			vals, err := parseFloats(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			v := objVertex{pos: mgl64.Vec3{vals[0], vals[1], vals[2]}, color: ColorWhite}
			if len(vals) >= 6 {
				v.color = RGBf(vals[3], vals[4], vals[5])
			}
			verts = append(verts, v)

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 vertices", lineNum)
			}
			idx := make([]int, 0, len(fields)-1)
			for _, ref := range fields[1:] {
				i, err := faceIndex(ref, len(verts))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNum, err)
				}
				idx = append(idx, i)
			}
			for i := 1; i < len(idx)-1; i++ {
				for _, k := range [3]int{idx[0], idx[i], idx[i+1]} {
					mesh.Vertices = append(mesh.Vertices, Vertex{Position: verts[k].pos, Color: verts[k].color})
				}
			}

		case "o", "g":
			if len(fields) > 1 {
				mesh.Name = fields[1]
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading OBJ: %w", err)
	}
	if len(mesh.Vertices) == 0 {
		return nil, fmt.Errorf("%s: no faces", name)
	}
	return mesh, nil
}

func parseFloats(fields []string) ([]float64, error) {
	vals := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", f)
		}
		vals[i] = v
	}
	return vals, nil
}

// faceIndex resolves the position part of a face reference (v, v/vt,
// v/vt/vn or v//vn) to a 0-based index. Negative indices count from the
// last vertex read so far.
func faceIndex(ref string, count int) (int, error) {
	pos, _, _ := strings.Cut(ref, "/")
	i, err := strconv.Atoi(pos)
	if err != nil {
		return 0, fmt.Errorf("invalid vertex index: %s", pos)
	}
	switch {
	case i < 0:
		i += count
	case i > 0:
		i--
	default:
		return 0, fmt.Errorf("vertex index 0 is not valid")
	}
	if i < 0 || i >= count {
		return 0, fmt.Errorf("vertex index %s out of range", pos)
	}
	return i, nil
}
