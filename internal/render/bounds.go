package render

import (
	"fmt"
	"math"

	"voxelcull/internal/world"
)

// Bounds is a vertical render window in world Y units. Min <= Max always.
type Bounds struct {
	Min, Max float32
}

// Unbounded is the sentinel returned when vertical culling is disabled.
func Unbounded() Bounds {
	return Bounds{
		Min: float32(math.Inf(-1)),
		Max: float32(math.Inf(1)),
	}
}

// IsUnbounded reports whether the window restricts nothing.
func (b Bounds) IsUnbounded() bool {
	return math.IsInf(float64(b.Min), -1) && math.IsInf(float64(b.Max), 1)
}

// Contains reports whether y falls inside the window.
func (b Bounds) Contains(y float32) bool {
	return y >= b.Min && y <= b.Max
}

func (b Bounds) String() string {
	if b.IsUnbounded() {
		return "unbounded"
	}
	return fmt.Sprintf("[%.1f, %.1f]", b.Min, b.Max)
}

// VerticalParams configure the fixed vertical-depth window.
type VerticalParams struct {
	Enabled           bool
	HeightLimit       bool
	UndergroundDepth  int
	AbovegroundHeight int
}

// clamped enforces a minimum window of one block in each direction so the
// window can never degenerate to zero height.
func (p VerticalParams) clamped() VerticalParams {
	if p.UndergroundDepth < 1 {
		p.UndergroundDepth = 1
	}
	if p.AbovegroundHeight < 1 {
		p.AbovegroundHeight = 1
	}
	return p
}

// FixedBounds computes the static window around the viewer's feet. With the
// height limit off the window is open up to the world build height.
func FixedBounds(viewerY float32, p VerticalParams) Bounds {
	if !p.Enabled {
		return Unbounded()
	}
	p = p.clamped()

	min := viewerY - float32(p.UndergroundDepth)
	max := float32(world.MaxY)
	if p.HeightLimit {
		max = viewerY + float32(p.AbovegroundHeight)
	}
	if max < min {
		max = min
	}
	return Bounds{Min: min, Max: max}
}
