package render

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/go-gl/mathgl/mgl64"
)

// Movement is a camera movement direction.
type Movement int

const (
	Forward Movement = iota
	Backward
	Left
	Right
)

// Zoom limits, in degrees of vertical field of view.
const (
	MinZoom = 1.0
	MaxZoom = 45.0
)

// motionAxis tracks a velocity that a spring pulls back to zero.
type motionAxis struct {
	Velocity float64
	spring   harmonica.Spring
	accel    float64 // internal spring velocity (for animating Velocity toward 0)
}

func newMotionAxis(fps int) motionAxis {
	// Frequency 4.0, damping 1.0 = critically damped (no overshoot)
	return motionAxis{spring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0)}
}

func (a *motionAxis) decay() {
	a.Velocity, a.accel = a.spring.Update(a.Velocity, a.accel, 0)
}

type cameraPose struct {
	position   mgl64.Vec3
	yaw, pitch float64
	zoom       float64
}

// Camera is a first-person camera driven by keyboard movement, mouse look
// and scroll zoom. Angles are in degrees.
type Camera struct {
	Position mgl64.Vec3
	Front    mgl64.Vec3
	Up       mgl64.Vec3
	Right    mgl64.Vec3
	WorldUp  mgl64.Vec3

	Yaw   float64
	Pitch float64
	Zoom  float64 // vertical field of view

	MovementSpeed    float64 // units per second
	MouseSensitivity float64 // degrees per mouse unit

	AspectRatio float64
	Near, Far   float64

	home            cameraPose
	forward, strafe motionAxis
}

// NewCamera creates a camera at the origin looking down -Z.
func NewCamera() *Camera {
	c := &Camera{
		WorldUp:          mgl64.Vec3{0, 1, 0},
		Yaw:              -90,
		Zoom:             MaxZoom,
		MovementSpeed:    20,
		MouseSensitivity: 0.1,
		AspectRatio:      4.0 / 3.0,
		Near:             0.1,
		Far:              1000,
	}
	c.SetFPS(60)
	c.updateVectors()
	c.SaveHome()
	return c
}

// SetFPS sets the frame rate the movement springs are tuned for.
func (c *Camera) SetFPS(fps int) {
	if fps <= 0 {
		fps = 60
	}
	c.forward = newMotionAxis(fps)
	c.strafe = newMotionAxis(fps)
}

// SetPosition moves the camera without changing its orientation.
func (c *Camera) SetPosition(p mgl64.Vec3) {
	c.Position = p
}

// SetAspectRatio sets width / height of the viewport.
func (c *Camera) SetAspectRatio(aspect float64) {
	c.AspectRatio = aspect
}

// SetClipPlanes sets the near and far clip distances.
func (c *Camera) SetClipPlanes(near, far float64) {
	c.Near = near
	c.Far = far
}

// LookAt orients the camera toward target.
func (c *Camera) LookAt(target mgl64.Vec3) {
	dir := target.Sub(c.Position)
	if dir.Len() == 0 {
		return
	}
	dir = dir.Normalize()
	c.Pitch = mgl64.RadToDeg(math.Asin(dir.Y()))
	c.Yaw = mgl64.RadToDeg(math.Atan2(dir.Z(), dir.X()))
	c.updateVectors()
}

// SaveHome records the current pose for Reset.
func (c *Camera) SaveHome() {
	c.home = cameraPose{position: c.Position, yaw: c.Yaw, pitch: c.Pitch, zoom: c.Zoom}
}

// Reset restores the pose saved by SaveHome and stops any motion.
func (c *Camera) Reset() {
	c.Position = c.home.position
	c.Yaw = c.home.yaw
	c.Pitch = c.home.pitch
	c.Zoom = c.home.zoom
	c.forward.Velocity, c.forward.accel = 0, 0
	c.strafe.Velocity, c.strafe.accel = 0, 0
	c.updateVectors()
}

// ProcessKeyboard moves the camera for a key held during dt seconds.
func (c *Camera) ProcessKeyboard(dir Movement, dt float64) {
	velocity := c.MovementSpeed * dt
	switch dir {
	case Forward:
		c.Position = c.Position.Add(c.Front.Mul(velocity))
	case Backward:
		c.Position = c.Position.Sub(c.Front.Mul(velocity))
	case Left:
		c.Position = c.Position.Sub(c.Right.Mul(velocity))
	case Right:
		c.Position = c.Position.Add(c.Right.Mul(velocity))
	}
}

// Nudge gives the camera a push in dir that Update plays out and decays.
// Used where only key presses, not key holds, are reported.
func (c *Camera) Nudge(dir Movement) {
	switch dir {
	case Forward:
		c.forward.Velocity = c.MovementSpeed
	case Backward:
		c.forward.Velocity = -c.MovementSpeed
	case Left:
		c.strafe.Velocity = -c.MovementSpeed
	case Right:
		c.strafe.Velocity = c.MovementSpeed
	}
}

// Moving reports whether a nudge is still playing out.
func (c *Camera) Moving() bool {
	return math.Abs(c.forward.Velocity) > 1e-3 || math.Abs(c.strafe.Velocity) > 1e-3
}

// Update applies the nudge velocity for dt seconds and decays it.
func (c *Camera) Update(dt float64) {
	c.Position = c.Position.
		Add(c.Front.Mul(c.forward.Velocity * dt)).
		Add(c.Right.Mul(c.strafe.Velocity * dt))
	c.forward.decay()
	c.strafe.decay()
}

// ProcessMouseMovement turns the camera by a mouse offset. y grows upward.
func (c *Camera) ProcessMouseMovement(xoffset, yoffset float64, constrainPitch bool) {
	c.Yaw += xoffset * c.MouseSensitivity
	c.Pitch += yoffset * c.MouseSensitivity
	if constrainPitch {
		c.Pitch = mgl64.Clamp(c.Pitch, -89, 89)
	}
	c.updateVectors()
}

// ProcessMouseScroll zooms by narrowing or widening the field of view.
func (c *Camera) ProcessMouseScroll(yoffset float64) {
	c.Zoom = mgl64.Clamp(c.Zoom-yoffset, MinZoom, MaxZoom)
}

// ViewMatrix returns the world to camera transform.
func (c *Camera) ViewMatrix() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

// ProjectionMatrix returns the perspective projection.
func (c *Camera) ProjectionMatrix() mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.Zoom), c.AspectRatio, c.Near, c.Far)
}

func (c *Camera) updateVectors() {
	yaw := mgl64.DegToRad(c.Yaw)
	pitch := mgl64.DegToRad(c.Pitch)
	c.Front = mgl64.Vec3{
		math.Cos(yaw) * math.Cos(pitch),
		math.Sin(pitch),
		math.Sin(yaw) * math.Cos(pitch),
	}.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}
