package kinematics

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Names of the bodies in SolarSystem.
const (
	Sun   = "sun"
	Earth = "earth"
	Moon  = "moon"
)

// ErrUnknownParent is returned by Validate when a body orbits a body that is
// not listed before it.
var ErrUnknownParent = errors.New("unknown parent")

// System is an ordered set of bodies. Parents come before their children.
type System struct {
	Bodies []Body
	index  map[string]int
}

// BodyState is the evaluated state of one body.
type BodyState struct {
	Body            *Body
	SelfRotation    float64 // radians
	OrbitalRotation float64 // radians, phase included
	Position        mgl64.Vec3
}

// Frame holds the state of every body at one simulated day.
type Frame struct {
	Day    float64
	States []BodyState
}

// SolarSystem returns the sun, earth and moon with their fixed constants.
func SolarSystem() *System {
	s, err := NewSystem(
		Body{Name: Sun, SpinPeriodDays: 27, Scale: 4},
		Body{
			Name:               Earth,
			OrbitalPeriodDays:  365,
			SpinPeriodDays:     1,
			PhaseOffsetDegrees: 90,
			OrbitRadius:        20,
			AxialTiltDegrees:   23.4,
			Scale:              2.5,
		},
		Body{
			Name:               Moon,
			OrbitalPeriodDays:  28,
			SpinPeriodDays:     28,
			PhaseOffsetDegrees: 90,
			OrbitRadius:        10,
			Scale:              1.5,
			Parent:             Earth,
		},
	)
	if err != nil {
		panic(err) // constants above are known good
	}
	return s
}

// NewSystem builds a system from bodies listed parents first.
func NewSystem(bodies ...Body) (*System, error) {
	s := &System{Bodies: bodies}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks names are unique and every parent precedes its children.
// It also (re)builds the name index.
func (s *System) Validate() error {
	s.index = make(map[string]int, len(s.Bodies))
	for i := range s.Bodies {
		b := &s.Bodies[i]
		if _, dup := s.index[b.Name]; dup {
			return fmt.Errorf("duplicate body %q", b.Name)
		}
		if b.Parent != "" {
			if _, ok := s.index[b.Parent]; !ok {
				return fmt.Errorf("body %q: %w %q", b.Name, ErrUnknownParent, b.Parent)
			}
		}
		s.index[b.Name] = i
	}
	return nil
}

// ensureIndex builds the name index of a System assembled without NewSystem.
func (s *System) ensureIndex() {
	if s.index == nil {
		_ = s.Validate()
	}
}

// Body returns the named body, or nil.
func (s *System) Body(name string) *Body {
	s.ensureIndex()
	i, ok := s.index[name]
	if !ok {
		return nil
	}
	return &s.Bodies[i]
}

// Evaluate computes the state of every body at the given day. A parent
// that is unknown or listed after its child contributes no offset.
func (s *System) Evaluate(day float64) Frame {
	s.ensureIndex()
	f := Frame{Day: day, States: make([]BodyState, len(s.Bodies))}
	for i := range s.Bodies {
		b := &s.Bodies[i]
		pos := b.Offset(day)
		if b.Parent != "" {
			if pi, ok := s.index[b.Parent]; ok && pi < i {
				pos = pos.Add(f.States[pi].Position)
			}
		}
		f.States[i] = BodyState{
			Body:            b,
			SelfRotation:    b.SelfRotation(day),
			OrbitalRotation: b.OrbitalRotation(day),
			Position:        pos,
		}
	}
	return f
}

// State returns the named body's state, or false when absent.
func (f Frame) State(name string) (BodyState, bool) {
	for _, st := range f.States {
		if st.Body.Name == name {
			return st, true
		}
	}
	return BodyState{}, false
}
