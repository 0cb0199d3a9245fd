// Package reveal turns viewport intersection into sticky, one-shot "revealed"
// flags for page sections, and drives the staggered skill-bar fill that hangs
// off the skills section's reveal.
package reveal

import (
	"fmt"
	"time"
)

// Rect is a rectangular region in page coordinates. Y grows downward.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Area returns the region's area.
func (r Rect) Area() float64 {
	return r.Width * r.Height
}

// Empty reports whether the region has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the point (x, y) lies inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width && y >= r.Y && y <= r.Y+r.Height
}

// Intersect returns the overlap of r and o. The result is empty if they
// don't overlap.
func (r Rect) Intersect(o Rect) Rect {
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.X+r.Width, o.X+o.Width)
	y1 := min(r.Y+r.Height, o.Y+o.Height)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g %gx%g)", r.X, r.Y, r.Width, r.Height)
}

// VisibleFraction returns the fraction of region that lies inside viewport,
// in [0, 1]. A zero-area region counts as fully visible when its origin is
// inside the viewport.
func VisibleFraction(region, viewport Rect) float64 {
	if region.Empty() {
		if viewport.Contains(region.X, region.Y) {
			return 1
		}
		return 0
	}
	frac := region.Intersect(viewport).Area() / region.Area()
	if frac > 1 {
		return 1
	}
	return frac
}

// Delay returns the staggered delay for the item at index.
func Delay(base, step time.Duration, index int) time.Duration {
	if index < 0 {
		index = 0
	}
	return base + time.Duration(index)*step
}

// Classes picks the class set for a section element: hidden (the initial
// offset state) until revealed, visible afterwards.
func Classes(revealed bool, hidden, visible string) string {
	if revealed {
		return visible
	}
	return hidden
}
