package neogui

import "image/color"

// Elem identifies an element in the current frame's arena. Identifiers are
// dense and assigned in creation order; they are only meaningful until the
// next BeginFrame.
type Elem uint32

const (
	NoElem   Elem = 0 // reserved "no element" sentinel
	RootElem Elem = 1 // the frame's root; it has no parent
)

// Axis selects one component of a Vec2.
type Axis uint8

const (
	AxisX Axis = iota // horizontal
	AxisY             // vertical
)

// Cross returns the axis perpendicular to a.
func (a Axis) Cross() Axis {
	if a == AxisX {
		return AxisY
	}
	return AxisX
}

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// Vec2 is a 2D vector used for sizes, positions and alignment factors.
type Vec2 struct {
	X, Y float64
}

// Get returns the component of v along axis a.
func (v Vec2) Get(a Axis) float64 {
	if a == AxisX {
		return v.X
	}
	return v.Y
}

// Set replaces the component of v along axis a.
func (v *Vec2) Set(a Axis, f float64) {
	if a == AxisX {
		v.X = f
	} else {
		v.Y = f
	}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// EdgeInsets are the four padding distances around a child.
type EdgeInsets struct {
	Left, Top, Right, Bottom float64
}

// Along returns the total inset consumed on axis a.
func (e EdgeInsets) Along(a Axis) float64 {
	if a == AxisX {
		return e.Left + e.Right
	}
	return e.Top + e.Bottom
}

// Color is an 8-bit RGBA fill color with straight (non-premultiplied) alpha.
// Elements with A == 0 are not painted.
type Color struct {
	R, G, B, A uint8
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// Rect is an axis-aligned rectangle in world coordinates. The origin is the
// top-left corner with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}
