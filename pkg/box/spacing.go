package box

import "fmt"

// Side identifies one edge of a rectangular region.
type Side int

const (
	SideTop Side = iota
	SideBottom
	SideLeft
	SideRight
)

// String returns a human-readable representation of the side.
func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// horizontal reports whether the side lies on the x axis.
func (s Side) horizontal() bool {
	return s == SideLeft || s == SideRight
}

// Sides lists all four sides in top, bottom, left, right order.
var Sides = [4]Side{SideTop, SideBottom, SideLeft, SideRight}

type spacingKind int

const (
	spacingUnset spacingKind = iota
	spacingScalar
	spacingMap
)

// Spacing is a length specification that is either a single scalar, applied
// to every direction, or a mapping from directions and axes to lengths.
//
// Resolution for a direction follows a fixed fallback chain: an explicit
// entry for the direction wins, then the matching axis entry (x for
// left/right, y for top/bottom), then the scalar value, then the caller's
// fallback. Only a fully absent specification yields the fallback.
//
// The zero value is absent. Construct values with [SpacingAll],
// [SpacingXY], or [SpacingSides]; mapping entries can be refined with the
// WithSide/WithX/WithY copies.
type Spacing struct {
	kind    spacingKind
	scalar  float64
	sides   [4]float64
	hasSide [4]bool
	x, y    float64
	hasX    bool
	hasY    bool
	invalid string // non-empty when the spec was built from conflicting shapes
}

// SpacingAll creates a scalar spacing applied to every direction.
func SpacingAll(value float64) Spacing {
	return Spacing{kind: spacingScalar, scalar: value}
}

// SpacingXY creates a per-axis spacing: x for left/right, y for top/bottom.
func SpacingXY(x, y float64) Spacing {
	return Spacing{kind: spacingMap, x: x, y: y, hasX: true, hasY: true}
}

// SpacingSides creates a per-side spacing from explicit entries.
// Directions not listed resolve through the axis and fallback chain.
func SpacingSides(entries map[Side]float64) Spacing {
	s := Spacing{kind: spacingMap}
	for side, v := range entries {
		if side < SideTop || side > SideRight {
			s.invalid = fmt.Sprintf("invalid side %v", side)
			continue
		}
		s.sides[side] = v
		s.hasSide[side] = true
	}
	return s
}

// WithSide returns a copy with an explicit entry for one direction.
func (s Spacing) WithSide(side Side, value float64) Spacing {
	if s.kind == spacingScalar {
		s.invalid = "cannot mix a scalar spacing with per-side entries"
		return s
	}
	if side < SideTop || side > SideRight {
		s.invalid = fmt.Sprintf("invalid side %v", side)
		return s
	}
	s.kind = spacingMap
	s.sides[side] = value
	s.hasSide[side] = true
	return s
}

// WithX returns a copy with an entry for the horizontal axis.
func (s Spacing) WithX(value float64) Spacing {
	if s.kind == spacingScalar {
		s.invalid = "cannot mix a scalar spacing with axis entries"
		return s
	}
	s.kind = spacingMap
	s.x = value
	s.hasX = true
	return s
}

// WithY returns a copy with an entry for the vertical axis.
func (s Spacing) WithY(value float64) Spacing {
	if s.kind == spacingScalar {
		s.invalid = "cannot mix a scalar spacing with axis entries"
		return s
	}
	s.kind = spacingMap
	s.y = value
	s.hasY = true
	return s
}

// IsUnset reports whether no value was specified at all.
func (s Spacing) IsUnset() bool {
	return s.kind == spacingUnset
}

// Validate reports whether the specification has a usable shape.
func (s Spacing) Validate() error {
	if s.invalid != "" {
		return fmt.Errorf("spacing: %s", s.invalid)
	}
	return nil
}

// lookup returns the value the specification holds for a direction, walking
// the direction -> axis -> scalar chain. ok is false only when the chain is
// exhausted, which is the sole case a caller-supplied fallback applies.
func (s Spacing) lookup(side Side) (float64, bool) {
	switch s.kind {
	case spacingMap:
		if s.hasSide[side] {
			return s.sides[side], true
		}
		if side.horizontal() && s.hasX {
			return s.x, true
		}
		if !side.horizontal() && s.hasY {
			return s.y, true
		}
		return 0, false
	case spacingScalar:
		return s.scalar, true
	default:
		return 0, false
	}
}

// Resolve returns the length for one direction, or fallback when the
// specification does not cover it.
func (s Spacing) Resolve(side Side, fallback float64) float64 {
	if v, ok := s.lookup(side); ok {
		return v
	}
	return fallback
}
