// Package scene ties the kinematics evaluator to the renderer: it owns the
// simulated clock, the body system and the camera, and draws one frame of
// the orrery.
package scene

import (
	"github.com/ansipixels/orrery/pkg/kinematics"
	"github.com/ansipixels/orrery/pkg/render"
	"github.com/go-gl/mathgl/mgl64"
)

// Default view of the whole system.
var (
	DefaultEye    = mgl64.Vec3{50, 50, 100}
	DefaultTarget = mgl64.Vec3{0, 0, 0}
)

const (
	DefaultFOV = 30.0 // degrees
	DefaultFPS = 60
)

// Background is the clear color, (0.3, 0.4, 0.5).
var Background = render.RGBf(0.3, 0.4, 0.5)

// Options configures a new Scene.
type Options struct {
	StartDay float64
	DayStep  float64 // days per frame, kinematics.DefaultStep when 0
	FPS      int     // frame rate the camera springs are tuned for
	Aspect   float64 // width / height, 4:3 when 0
	System   *kinematics.System
}

// Scene is the simulation context passed to every frame step.
type Scene struct {
	Clock  *kinematics.Clock
	System *kinematics.System
	Camera *render.Camera
	Mesh   *render.Mesh
	Paused bool

	frame kinematics.Frame
}

// New builds the sun/earth/moon scene.
func New(opts Options) *Scene {
	sys := opts.System
	if sys == nil {
		sys = kinematics.SolarSystem()
	}
	if opts.FPS <= 0 {
		opts.FPS = DefaultFPS
	}
	if opts.Aspect <= 0 {
		opts.Aspect = 4.0 / 3.0
	}

	cam := render.NewCamera()
	cam.SetFPS(opts.FPS)
	cam.SetAspectRatio(opts.Aspect)
	cam.SetClipPlanes(0.1, 1000)
	cam.Zoom = DefaultFOV
	cam.SetPosition(DefaultEye)
	cam.LookAt(DefaultTarget)
	cam.SaveHome()

	s := &Scene{
		Clock:  kinematics.NewClock(opts.StartDay, opts.DayStep),
		System: sys,
		Camera: cam,
		Mesh:   render.Cube(),
	}
	s.frame = sys.Evaluate(s.Clock.Day)
	return s
}

// Frame returns the most recently evaluated frame.
func (s *Scene) Frame() kinematics.Frame {
	return s.frame
}

// Advance moves the clock one step (unless paused) and evaluates the bodies.
func (s *Scene) Advance() kinematics.Frame {
	if !s.Paused {
		s.Clock.Advance()
	}
	s.frame = s.System.Evaluate(s.Clock.Day)
	return s.frame
}

// Seek evaluates the bodies at the given day.
func (s *Scene) Seek(day float64) kinematics.Frame {
	s.Clock.Set(day)
	s.frame = s.System.Evaluate(day)
	return s.frame
}

// Reset returns the clock and the camera to their starting state.
func (s *Scene) Reset() {
	s.Clock.Reset()
	s.Camera.Reset()
	s.frame = s.System.Evaluate(s.Clock.Day)
}

// ModelMatrix places a body: translate to its position, spin about its axis,
// then scale the unit cube.
func ModelMatrix(st kinematics.BodyState) mgl64.Mat4 {
	b := st.Body
	return mgl64.Translate3D(st.Position.X(), st.Position.Y(), st.Position.Z()).
		Mul4(mgl64.HomogRotate3D(st.SelfRotation, b.SpinAxis())).
		Mul4(mgl64.Scale3D(b.Scale, b.Scale, b.Scale))
}

// Draw clears the rasterizer's framebuffer and draws every body of the
// current frame. It returns the number of triangles rasterized.
func (s *Scene) Draw(r *render.Rasterizer) int {
	r.FB.Clear()
	r.ClearDepth()
	drawn := 0
	for _, st := range s.frame.States {
		drawn += r.DrawMesh(s.Mesh, ModelMatrix(st))
	}
	return drawn
}

// NewRasterizer creates a framebuffer of the given size with the scene
// background and a rasterizer looking through the scene camera.
func (s *Scene) NewRasterizer(width, height int) *render.Rasterizer {
	fb := render.NewFramebuffer(width, height)
	fb.BG = Background
	fb.Clear()
	s.Camera.SetAspectRatio(float64(width) / float64(height))
	return render.NewRasterizer(s.Camera, fb)
}
