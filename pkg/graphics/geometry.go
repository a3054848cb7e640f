package graphics

import "math"

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.0001

// Offset represents a 2D point or vector.
type Offset struct {
	X float64
	Y float64
}

// Size represents width and height dimensions.
type Size struct {
	Width  float64
	Height float64
}

// IsEmpty returns true if either dimension is zero or negative.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// Translate returns a new rect offset by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{
		Left:   r.Left + dx,
		Top:    r.Top + dy,
		Right:  r.Right + dx,
		Bottom: r.Bottom + dy,
	}
}

// EdgeInsets describes padding applied inside a region's bounds.
type EdgeInsets struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// EdgeInsetsAll creates insets with the same value on all four sides.
func EdgeInsetsAll(value float64) EdgeInsets {
	return EdgeInsets{Left: value, Top: value, Right: value, Bottom: value}
}

// EdgeInsetsSymmetric creates insets with horizontal and vertical values.
func EdgeInsetsSymmetric(horizontal, vertical float64) EdgeInsets {
	return EdgeInsets{Left: horizontal, Top: vertical, Right: horizontal, Bottom: vertical}
}

// EdgeInsetsOnly creates insets with individual side values.
func EdgeInsetsOnly(left, top, right, bottom float64) EdgeInsets {
	return EdgeInsets{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Horizontal returns the combined left and right insets.
func (e EdgeInsets) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns the combined top and bottom insets.
func (e EdgeInsets) Vertical() float64 {
	return e.Top + e.Bottom
}

// Deflate returns the rect shrunk inward by the insets.
func (e EdgeInsets) Deflate(r Rect) Rect {
	return Rect{
		Left:   r.Left + e.Left,
		Top:    r.Top + e.Top,
		Right:  r.Right - e.Right,
		Bottom: r.Bottom - e.Bottom,
	}
}

// Outsets describes an inflation applied to a region's painted bounds.
//
// Each side extends the bounds outward when positive and pulls them inward
// when negative. Shadow layers use outsets to cover content (such as a boxed
// title) that lies outside the region's own rect.
type Outsets struct {
	Top    float64
	Left   float64
	Right  float64
	Bottom float64
}

// Inflate returns the rect grown outward by the outsets.
// A negative outset on a side moves that edge inward.
func (o Outsets) Inflate(r Rect) Rect {
	return Rect{
		Left:   r.Left - o.Left,
		Top:    r.Top - o.Top,
		Right:  r.Right + o.Right,
		Bottom: r.Bottom + o.Bottom,
	}
}

// Radius represents a corner radius for rounded rectangles.
type Radius struct {
	X float64
	Y float64
}

// CircularRadius creates a circular radius with equal X/Y values.
func CircularRadius(value float64) Radius {
	return Radius{X: value, Y: value}
}

// CornerRadii holds per-corner radii for a rounded rectangle.
type CornerRadii struct {
	TopLeft     Radius
	TopRight    Radius
	BottomRight Radius
	BottomLeft  Radius
}

// UniformCorners creates corner radii with the same circular radius on all corners.
func UniformCorners(value float64) CornerRadii {
	r := CircularRadius(value)
	return CornerRadii{TopLeft: r, TopRight: r, BottomRight: r, BottomLeft: r}
}

// Uniform returns the single radius value if all corners match, or 0 if not.
func (c CornerRadii) Uniform() float64 {
	v := c.TopLeft.X
	if !floatEqual(c.TopLeft.Y, v) ||
		!floatEqual(c.TopRight.X, v) ||
		!floatEqual(c.TopRight.Y, v) ||
		!floatEqual(c.BottomRight.X, v) ||
		!floatEqual(c.BottomRight.Y, v) ||
		!floatEqual(c.BottomLeft.X, v) ||
		!floatEqual(c.BottomLeft.Y, v) {
		return 0
	}
	return v
}

// floatEqual returns true if two float64 values are approximately equal.
func floatEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}
