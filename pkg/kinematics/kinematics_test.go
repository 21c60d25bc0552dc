package kinematics

import (
	"errors"
	"math"
	"testing"
)

const eps = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < eps
}

// sameAngle reports whether two angles are equal modulo 2π.
func sameAngle(a, b float64) bool {
	d := math.Mod(a-b, 2*math.Pi)
	if d < 0 {
		d += 2 * math.Pi
	}
	return d < 1e-6 || 2*math.Pi-d < 1e-6
}

func TestDayZeroReducesToPhase(t *testing.T) {
	sys := SolarSystem()
	frame := sys.Evaluate(0)
	for _, st := range frame.States {
		phase := st.Body.PhaseOffsetDegrees * math.Pi / 180
		if !almostEqual(st.OrbitalRotation, phase) {
			t.Errorf("%s orbital rotation at day 0 = %v, want %v", st.Body.Name, st.OrbitalRotation, phase)
		}
		if !almostEqual(st.SelfRotation, 0) {
			t.Errorf("%s self rotation at day 0 = %v, want 0", st.Body.Name, st.SelfRotation)
		}
	}
}

func TestDayZeroPositions(t *testing.T) {
	frame := SolarSystem().Evaluate(0)
	tests := []struct {
		name    string
		x, y, z float64
	}{
		{Sun, 0, 0, 0},
		{Earth, 20, 0, 0},
		{Moon, 30, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, ok := frame.State(tt.name)
			if !ok {
				t.Fatalf("no state for %s", tt.name)
			}
			p := st.Position
			if !almostEqual(p.X(), tt.x) || !almostEqual(p.Y(), tt.y) || !almostEqual(p.Z(), tt.z) {
				t.Errorf("position = %v, want (%v, %v, %v)", p, tt.x, tt.y, tt.z)
			}
		})
	}
}

func TestOrbitalRotationPeriodic(t *testing.T) {
	sys := SolarSystem()
	for _, day := range []float64{0, 0.5, 13.25, 100, 364.9, -42} {
		for i := range sys.Bodies {
			b := &sys.Bodies[i]
			if b.OrbitalPeriodDays != 0 {
				a := b.OrbitalRotation(day)
				c := b.OrbitalRotation(day + b.OrbitalPeriodDays)
				if !sameAngle(a, c) {
					t.Errorf("%s orbital rotation not periodic at day %v: %v vs %v", b.Name, day, a, c)
				}
			}
			if b.SpinPeriodDays != 0 {
				a := b.SelfRotation(day)
				c := b.SelfRotation(day + b.SpinPeriodDays)
				if !sameAngle(a, c) {
					t.Errorf("%s self rotation not periodic at day %v: %v vs %v", b.Name, day, a, c)
				}
			}
		}
	}
}

func TestMoonStaysAtFixedDistanceFromEarth(t *testing.T) {
	sys := SolarSystem()
	moon := sys.Body(Moon)
	for day := -50.0; day < 800; day += 3.7 {
		frame := sys.Evaluate(day)
		e, _ := frame.State(Earth)
		m, _ := frame.State(Moon)
		d := m.Position.Sub(e.Position).Len()
		if math.Abs(d-moon.OrbitRadius) > 1e-9 {
			t.Fatalf("day %v: moon-earth distance = %v, want %v", day, d, moon.OrbitRadius)
		}
		if m.Position.Y() != 0 {
			t.Fatalf("day %v: moon left the orbital plane: %v", day, m.Position)
		}
	}
}

func TestEarthOrbitFormula(t *testing.T) {
	sys := SolarSystem()
	earth := sys.Body(Earth)
	day := 91.25
	st, _ := sys.Evaluate(day).State(Earth)
	theta := 2*math.Pi*day/365 + math.Pi/2
	if !almostEqual(st.Position.X(), 20*math.Sin(theta)) || !almostEqual(st.Position.Z(), 20*math.Cos(theta)) {
		t.Errorf("earth position = %v", st.Position)
	}
	if !almostEqual(st.SelfRotation, 2*math.Pi*day) {
		t.Errorf("earth self rotation = %v, want %v", st.SelfRotation, 2*math.Pi*day)
	}
	if earth.AxialTiltDegrees != 23.4 {
		t.Errorf("earth tilt = %v", earth.AxialTiltDegrees)
	}
}

func TestFixedBodyNeverMoves(t *testing.T) {
	sys := SolarSystem()
	for _, day := range []float64{0, 1, 1e6, math.Inf(1)} {
		st, _ := sys.Evaluate(day).State(Sun)
		if st.Position.Len() != 0 {
			t.Errorf("sun moved at day %v: %v", day, st.Position)
		}
	}
}

func TestSpinAxis(t *testing.T) {
	tests := []struct {
		name string
		tilt float64
		x, y float64
	}{
		{"upright", 0, 0, 1},
		{"sideways", 90, 1, 0},
		{"earth", 23.4, math.Sin(23.4 * math.Pi / 180), math.Cos(23.4 * math.Pi / 180)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Body{AxialTiltDegrees: tt.tilt}
			axis := b.SpinAxis()
			if !almostEqual(axis.X(), tt.x) || !almostEqual(axis.Y(), tt.y) || axis.Z() != 0 {
				t.Errorf("SpinAxis() = %v, want (%v, %v, 0)", axis, tt.x, tt.y)
			}
			if !almostEqual(axis.Len(), 1) {
				t.Errorf("SpinAxis() not unit: %v", axis.Len())
			}
		})
	}
}

func TestNewSystemValidation(t *testing.T) {
	_, err := NewSystem(Body{Name: "moon", Parent: "earth"}, Body{Name: "earth"})
	if !errors.Is(err, ErrUnknownParent) {
		t.Errorf("child before parent: err = %v, want ErrUnknownParent", err)
	}
	_, err = NewSystem(Body{Name: "a"}, Body{Name: "a"})
	if err == nil {
		t.Error("duplicate names accepted")
	}
	s, err := NewSystem(Body{Name: "a"}, Body{Name: "b", Parent: "a", OrbitRadius: 1})
	if err != nil {
		t.Fatalf("valid system rejected: %v", err)
	}
	if s.Body("b") == nil || s.Body("c") != nil {
		t.Error("Body lookup wrong")
	}
}

func TestEvaluateLiteralSystem(t *testing.T) {
	// Built without NewSystem: parents must still resolve by name.
	sys := &System{Bodies: []Body{
		{Name: "a", OrbitRadius: 3, PhaseOffsetDegrees: 90},
		{Name: "b", OrbitRadius: 1, PhaseOffsetDegrees: 90},
		{Name: "c", OrbitRadius: 1, PhaseOffsetDegrees: 90, Parent: "b"},
		{Name: "d", OrbitRadius: 1, PhaseOffsetDegrees: 90, Parent: "c"},
	}}
	f := sys.Evaluate(0)
	for name, wantX := range map[string]float64{"a": 3, "b": 1, "c": 2, "d": 3} {
		st, ok := f.State(name)
		if !ok {
			t.Fatalf("missing state for %s", name)
		}
		if !almostEqual(st.Position.X(), wantX) || !almostEqual(st.Position.Z(), 0) {
			t.Errorf("%s position = %v, want x=%v", name, st.Position, wantX)
		}
	}
	if sys.Body("d") == nil {
		t.Error("Body lookup on literal system failed")
	}
}

func TestEvaluateIgnoresUnresolvedParent(t *testing.T) {
	sys := &System{Bodies: []Body{
		{Name: "a", OrbitRadius: 2, PhaseOffsetDegrees: 90, Parent: "ghost"},
	}}
	st, _ := sys.Evaluate(0).State("a")
	if !almostEqual(st.Position.X(), 2) {
		t.Errorf("position = %v, want x=2", st.Position)
	}
}

func TestBodyString(t *testing.T) {
	earth := SolarSystem().Body(Earth)
	if got, want := earth.String(), "earth(orbit=365d spin=1d r=20)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestClock(t *testing.T) {
	c := NewClock(10, 0)
	if c.Step != DefaultStep {
		t.Errorf("zero step should fall back to DefaultStep, got %v", c.Step)
	}
	for range 24 {
		c.Advance()
	}
	if !almostEqual(c.Day, 11) {
		t.Errorf("24 hourly steps from day 10 = %v, want 11", c.Day)
	}
	c.Set(3)
	if c.Day != 3 {
		t.Errorf("Set(3) -> %v", c.Day)
	}
	c.Reset()
	if c.Day != 10 {
		t.Errorf("Reset() -> %v, want 10", c.Day)
	}
}

func BenchmarkEvaluate(b *testing.B) {
	sys := SolarSystem()
	day := 0.0
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sys.Evaluate(day)
		day += DefaultStep
	}
}
