package neogui

import (
	"fmt"
	"math"
)

var inf = math.Inf(1)

// Constraints bound the size an element may resolve to. Max components may
// be +Inf (unbounded on that axis); no component is ever negative and Min
// never exceeds Max.
type Constraints struct {
	Min, Max Vec2
}

// Tight returns constraints that only admit size.
func Tight(size Vec2) Constraints {
	return Constraints{Min: size, Max: size}.normalized()
}

// Unbounded returns constraints with a zero minimum and no maximum.
func Unbounded() Constraints {
	return Constraints{Max: Vec2{inf, inf}}
}

// Bounded reports whether the maximum on axis a is finite.
func (c Constraints) Bounded(a Axis) bool {
	return !math.IsInf(c.Max.Get(a), 1)
}

func (c Constraints) String() string {
	return fmt.Sprintf("min(%g, %g) max(%g, %g)", c.Min.X, c.Min.Y, c.Max.X, c.Max.Y)
}

// Constrain clamps size down to Max and then up to Min. Min is enforced last
// so it wins when the two disagree. A size is never grown past what it was
// unless Min requires it.
func (c Constraints) Constrain(size Vec2) Vec2 {
	return Vec2{
		constrainAxis(size.X, c.Min.X, c.Max.X),
		constrainAxis(size.Y, c.Min.Y, c.Max.Y),
	}
}

// Grow sets each axis with a finite maximum to that maximum, then raises
// the result to Min. Used by elements that fill the space they are offered.
func (c Constraints) Grow(size Vec2) Vec2 {
	return Vec2{
		growAxis(size.X, c.Min.X, c.Max.X),
		growAxis(size.Y, c.Min.Y, c.Max.Y),
	}
}

func constrainAxis(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

func growAxis(v, lo, hi float64) float64 {
	if !math.IsInf(hi, 1) {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// normalized restores the invariants: negative components become zero and
// Min is clamped down to Max.
func (c Constraints) normalized() Constraints {
	for _, a := range [...]Axis{AxisX, AxisY} {
		hi := math.Max(c.Max.Get(a), 0)
		lo := math.Min(math.Max(c.Min.Get(a), 0), hi)
		c.Max.Set(a, hi)
		c.Min.Set(a, lo)
	}
	return c
}

// deflate shrinks both bounds by the insets on each axis.
func (c Constraints) deflate(insets EdgeInsets) Constraints {
	for _, a := range [...]Axis{AxisX, AxisY} {
		total := insets.Along(a)
		c.Min.Set(a, c.Min.Get(a)-total)
		c.Max.Set(a, c.Max.Get(a)-total)
	}
	return c.normalized()
}
