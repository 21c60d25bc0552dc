package kinematics

// DefaultStep advances one simulated hour per frame.
const DefaultStep = 1.0 / 24

// Clock accumulates simulated days.
type Clock struct {
	Day   float64
	Step  float64
	start float64
}

// NewClock returns a clock starting at the given day.
// A non-positive step falls back to DefaultStep.
func NewClock(start, step float64) *Clock {
	if step <= 0 {
		step = DefaultStep
	}
	return &Clock{Day: start, Step: step, start: start}
}

// Advance moves the clock forward by one step and returns the new day.
func (c *Clock) Advance() float64 {
	c.Day += c.Step
	return c.Day
}

// Set jumps to the given day.
func (c *Clock) Set(day float64) {
	c.Day = day
}

// Reset returns to the start day.
func (c *Clock) Reset() {
	c.Day = c.start
}
