// Package kinematics evaluates the orbital and spin state of the bodies in the
// orrery for a given simulated day.
package kinematics

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Body describes one orbiting (or fixed) body.
// A zero period means the body does not move in that sense.
type Body struct {
	Name               string
	OrbitalPeriodDays  float64 // Days per revolution around the parent
	SpinPeriodDays     float64 // Days per revolution around its own axis
	PhaseOffsetDegrees float64 // Orbital angle at day 0
	OrbitRadius        float64 // Distance from the parent (or origin)
	AxialTiltDegrees   float64 // Tilt of the spin axis away from +Y, about +Z
	Scale              float64 // Uniform scale applied to the unit cube
	Parent             string  // Name of the body this one orbits ("" = origin)
}

// SelfRotation returns the spin angle in radians at the given day.
func (b *Body) SelfRotation(day float64) float64 {
	if b.SpinPeriodDays == 0 {
		return 0
	}
	return 2 * math.Pi * day / b.SpinPeriodDays
}

// OrbitalRotation returns the orbital angle in radians at the given day,
// including the phase offset.
func (b *Body) OrbitalRotation(day float64) float64 {
	phase := mgl64.DegToRad(b.PhaseOffsetDegrees)
	if b.OrbitalPeriodDays == 0 {
		return phase
	}
	return 2*math.Pi*day/b.OrbitalPeriodDays + phase
}

// Offset returns the position relative to the parent at the given day.
func (b *Body) Offset(day float64) mgl64.Vec3 {
	theta := b.OrbitalRotation(day)
	return mgl64.Vec3{math.Sin(theta), 0, math.Cos(theta)}.Mul(b.OrbitRadius)
}

// SpinAxis returns the unit axis the body spins around.
func (b *Body) SpinAxis() mgl64.Vec3 {
	tilt := mgl64.DegToRad(b.AxialTiltDegrees)
	return mgl64.Vec3{math.Sin(tilt), math.Cos(tilt), 0}
}

func (b *Body) String() string {
	return fmt.Sprintf("%s(orbit=%gd spin=%gd r=%g)", b.Name, b.OrbitalPeriodDays, b.SpinPeriodDays, b.OrbitRadius)
}
