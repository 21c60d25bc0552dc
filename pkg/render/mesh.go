package render

import "github.com/go-gl/mathgl/mgl64"

// Vertex is a mesh vertex with a flat color.
type Vertex struct {
	Position mgl64.Vec3
	Color    Color
}

// Mesh is a triangle list: every three vertices form one triangle.
type Mesh struct {
	Name     string
	Vertices []Vertex
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Vertices) / 3
}

// cubeFace lists the four corners of one face, counter-clockwise seen from
// outside, with the face color.
type cubeFace struct {
	corners [4]mgl64.Vec3
	color   Color
}

var cubeFaces = [6]cubeFace{
	// back (-Z)
	{[4]mgl64.Vec3{{1, -1, -1}, {-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}}, ColorRed},
	// front (+Z)
	{[4]mgl64.Vec3{{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}}, ColorMagenta},
	// left (-X)
	{[4]mgl64.Vec3{{-1, -1, -1}, {-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}}, ColorGreen},
	// right (+X)
	{[4]mgl64.Vec3{{1, -1, 1}, {1, -1, -1}, {1, 1, -1}, {1, 1, 1}}, ColorYellow},
	// bottom (-Y)
	{[4]mgl64.Vec3{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}}, ColorBlue},
	// top (+Y)
	{[4]mgl64.Vec3{{-1, 1, 1}, {1, 1, 1}, {1, 1, -1}, {-1, 1, -1}}, ColorCyan},
}

// Cube returns a cube spanning [-1, 1] on every axis, each face a solid color.
func Cube() *Mesh {
	m := &Mesh{Name: "cube", Vertices: make([]Vertex, 0, 36)}
	for _, f := range cubeFaces {
		for _, i := range [6]int{0, 1, 2, 2, 3, 0} {
			m.Vertices = append(m.Vertices, Vertex{Position: f.corners[i], Color: f.color})
		}
	}
	return m
}
