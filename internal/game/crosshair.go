package game

import (
	"math"
	"math/rand"
)

// Crosshair is the aim point steered by mouse motion. Its jitter is the only
// source of randomness in a throw; resolution of the landing point is
// deterministic.
type Crosshair struct {
	Position       Vec2
	Focused        bool
	ShakeFocused   float64
	ShakeUnfocused float64
	rng            *rand.Rand
}

// NewCrosshair places the crosshair at start. A nil rng disables shaking.
func NewCrosshair(start Vec2, rng *rand.Rand) *Crosshair {
	return &Crosshair{
		Position:       start,
		ShakeFocused:   ShakeFocused,
		ShakeUnfocused: ShakeUnfocused,
		rng:            rng,
	}
}

// Move applies one mouse motion event. Screen y grows downward, world y upward.
func (c *Crosshair) Move(dx, dy float64) {
	c.Position.X += math.Mod(dx, MaxMotionStep)
	c.Position.Y += math.Mod(-dy, MaxMotionStep)
}

// Shake nudges the crosshair by a uniform offset in (-s, s) on each axis.
func (c *Crosshair) Shake() {
	if c.rng == nil {
		return
	}
	s := c.ShakeUnfocused
	if c.Focused {
		s = c.ShakeFocused
	}
	c.Position.X += (c.rng.Float64()*2 - 1) * s
	c.Position.Y += (c.rng.Float64()*2 - 1) * s
}

// Bound keeps the crosshair inside a window of the given size centered on the origin.
func (c *Crosshair) Bound(width, height float64) {
	half := NewVec2(width/2, height/2)
	c.Position = c.Position.Clamp(half.Times(-1), half)
}

// Aim returns the current landing point.
func (c *Crosshair) Aim() Vec2 {
	return c.Position
}
