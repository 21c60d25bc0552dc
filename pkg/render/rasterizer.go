package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Rasterizer draws meshes into a framebuffer through a camera.
type Rasterizer struct {
	Camera *Camera
	FB     *Framebuffer

	// DisableBackfaceCulling draws triangles facing away from the camera too.
	DisableBackfaceCulling bool

	depth []float64
}

// NewRasterizer creates a rasterizer for the given camera and framebuffer.
func NewRasterizer(camera *Camera, fb *Framebuffer) *Rasterizer {
	r := &Rasterizer{Camera: camera, FB: fb}
	r.ClearDepth()
	return r
}

// ClearDepth resets the depth buffer, resizing it to the framebuffer.
func (r *Rasterizer) ClearDepth() {
	n := r.FB.Width * r.FB.Height
	if len(r.depth) != n {
		r.depth = make([]float64, n)
	}
	for i := range r.depth {
		r.depth[i] = math.Inf(1)
	}
}

// screenVertex is a vertex after projection: pixel coordinates, depth in
// [0, 1], clip w for perspective correction, and color.
type screenVertex struct {
	x, y, z float64
	invW    float64
	color   Color
}

// DrawMesh draws the mesh with the given model transform and returns the
// number of triangles that reached the rasterization stage.
func (r *Rasterizer) DrawMesh(mesh *Mesh, model mgl64.Mat4) int {
	if len(r.depth) != r.FB.Width*r.FB.Height {
		r.ClearDepth()
	}
	mvp := r.Camera.ProjectionMatrix().Mul4(r.Camera.ViewMatrix()).Mul4(model)
	drawn := 0
	for i := 0; i+2 < len(mesh.Vertices); i += 3 {
		var sv [3]screenVertex
		visible := true
		for k := range 3 {
			v := mesh.Vertices[i+k]
			clip := mvp.Mul4x1(v.Position.Vec4(1))
			if clip.W() < r.Camera.Near {
				visible = false
				break
			}
			sv[k] = r.toScreen(clip, v.Color)
		}
		if !visible {
			continue
		}
		if r.drawTriangle(sv) {
			drawn++
		}
	}
	return drawn
}

func (r *Rasterizer) toScreen(clip mgl64.Vec4, c Color) screenVertex {
	invW := 1 / clip.W()
	ndc := clip.Vec3().Mul(invW)
	return screenVertex{
		x:     (ndc.X() + 1) * 0.5 * float64(r.FB.Width),
		y:     (ndc.Y() + 1) * 0.5 * float64(r.FB.Height),
		z:     ndc.Z()*0.5 + 0.5,
		invW:  invW,
		color: c,
	}
}

// edge is positive when p lies to the left of a→b (counter-clockwise, y up).
func edge(ax, ay, bx, by, px, py float64) float64 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

func (r *Rasterizer) drawTriangle(v [3]screenVertex) bool {
	area := edge(v[0].x, v[0].y, v[1].x, v[1].y, v[2].x, v[2].y)
	if area == 0 || (area < 0 && !r.DisableBackfaceCulling) {
		return false
	}

	fb := r.FB
	minX := max(0, int(math.Floor(min(v[0].x, v[1].x, v[2].x))))
	maxX := min(fb.Width-1, int(math.Ceil(max(v[0].x, v[1].x, v[2].x))))
	minY := max(0, int(math.Floor(min(v[0].y, v[1].y, v[2].y))))
	maxY := min(fb.Height-1, int(math.Ceil(max(v[0].y, v[1].y, v[2].y))))
	if minX > maxX || minY > maxY {
		return false
	}

	for y := minY; y <= maxY; y++ {
		py := float64(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float64(x) + 0.5
			w0 := edge(v[1].x, v[1].y, v[2].x, v[2].y, px, py) / area
			w1 := edge(v[2].x, v[2].y, v[0].x, v[0].y, px, py) / area
			w2 := edge(v[0].x, v[0].y, v[1].x, v[1].y, px, py) / area
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			z := w0*v[0].z + w1*v[1].z + w2*v[2].z
			if z < 0 || z > 1 {
				continue
			}
			idx := y*fb.Width + x
			if z >= r.depth[idx] {
				continue
			}
			r.depth[idx] = z
			fb.Pixels[idx] = interpolateColor(v, w0, w1, w2)
		}
	}
	return true
}

// interpolateColor blends vertex colors with perspective correction.
func interpolateColor(v [3]screenVertex, w0, w1, w2 float64) Color {
	p0 := w0 * v[0].invW
	p1 := w1 * v[1].invW
	p2 := w2 * v[2].invW
	sum := p0 + p1 + p2
	if sum == 0 {
		return v[0].color
	}
	p0, p1, p2 = p0/sum, p1/sum, p2/sum
	ch := func(a, b, c uint8) uint8 {
		f := p0*float64(a) + p1*float64(b) + p2*float64(c)
		return uint8(math.Max(0, math.Min(255, math.Round(f))))
	}
	return Color{
		R: ch(v[0].color.R, v[1].color.R, v[2].color.R),
		G: ch(v[0].color.G, v[1].color.G, v[2].color.G),
		B: ch(v[0].color.B, v[1].color.B, v[2].color.B),
	}
}
