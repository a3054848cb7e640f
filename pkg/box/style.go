package box

import (
	"fmt"

	"github.com/go-drift/showbox/pkg/graphics"
)

// HAlign is a horizontal position: left, center, or right.
type HAlign int

const (
	HAlignLeft HAlign = iota
	HAlignCenter
	HAlignRight
)

// String returns a human-readable representation of the alignment.
func (a HAlign) String() string {
	switch a {
	case HAlignLeft:
		return "left"
	case HAlignCenter:
		return "center"
	case HAlignRight:
		return "right"
	default:
		return fmt.Sprintf("HAlign(%d)", int(a))
	}
}

// VAnchor is the vertical anchor of a boxed title relative to the body's
// top border: straddling it (horizon), fully above it (top), or fully
// inside the body (bottom).
type VAnchor int

const (
	// VAnchorHorizon bisects the title with the body's top border line.
	VAnchorHorizon VAnchor = iota
	// VAnchorTop places the title entirely above the body.
	VAnchorTop
	// VAnchorBottom places the title inline at the top of the body content.
	VAnchorBottom
)

// String returns a human-readable representation of the anchor.
func (a VAnchor) String() string {
	switch a {
	case VAnchorHorizon:
		return "horizon"
	case VAnchorTop:
		return "top"
	case VAnchorBottom:
		return "bottom"
	default:
		return fmt.Sprintf("VAnchor(%d)", int(a))
	}
}

// Anchor positions a boxed title relative to the body box.
// The zero value anchors at the left end of the horizon line.
type Anchor struct {
	X HAlign
	Y VAnchor
}

func (a Anchor) validate() error {
	if a.X < HAlignLeft || a.X > HAlignRight {
		return fmt.Errorf("invalid horizontal anchor %v", a.X)
	}
	if a.Y < VAnchorHorizon || a.Y > VAnchorBottom {
		return fmt.Errorf("invalid vertical anchor %v", a.Y)
	}
	return nil
}

// FontWeight is a CSS-style font weight (100-900).
// The engine passes it through to the host renderer uninterpreted.
type FontWeight int

const (
	FontWeightNormal FontWeight = 400
	FontWeightBold   FontWeight = 700
)

// Corner identifies one corner of a rectangular region.
type Corner int

const (
	CornerTopLeft Corner = iota
	CornerTopRight
	CornerBottomRight
	CornerBottomLeft
)

type radiiKind int

const (
	radiiUnset radiiKind = iota
	radiiScalar
	radiiMap
)

// Radii is a corner-radius specification: a single scalar applied to all
// corners, or explicit per-corner entries with unlisted corners sharp.
// The zero value is absent (all corners sharp).
type Radii struct {
	kind    radiiKind
	scalar  float64
	corners [4]float64
	has     [4]bool
	invalid string
}

// RadiiAll creates a uniform corner radius.
func RadiiAll(value float64) Radii {
	return Radii{kind: radiiScalar, scalar: value}
}

// RadiiCorners creates a per-corner radius; unlisted corners are sharp.
func RadiiCorners(entries map[Corner]float64) Radii {
	r := Radii{kind: radiiMap}
	for corner, v := range entries {
		if corner < CornerTopLeft || corner > CornerBottomLeft {
			r.invalid = fmt.Sprintf("invalid corner %d", int(corner))
			continue
		}
		r.corners[corner] = v
		r.has[corner] = true
	}
	return r
}

// IsUnset reports whether no radius was specified.
func (r Radii) IsUnset() bool {
	return r.kind == radiiUnset
}

// Validate reports whether the specification has a usable shape.
func (r Radii) Validate() error {
	if r.invalid != "" {
		return fmt.Errorf("radius: %s", r.invalid)
	}
	return nil
}

func (r Radii) at(corner Corner) float64 {
	switch r.kind {
	case radiiMap:
		return r.corners[corner]
	case radiiScalar:
		return r.scalar
	default:
		return 0
	}
}

// resolve materializes the specification into per-corner radii.
func (r Radii) resolve() graphics.CornerRadii {
	return graphics.CornerRadii{
		TopLeft:     graphics.CircularRadius(r.at(CornerTopLeft)),
		TopRight:    graphics.CircularRadius(r.at(CornerTopRight)),
		BottomRight: graphics.CircularRadius(r.at(CornerBottomRight)),
		BottomLeft:  graphics.CircularRadius(r.at(CornerBottomLeft)),
	}
}

// TitleStyle configures the title region.
//
// With Boxed false the title renders as an ordinary band across the top of
// the body, sharing the body's radius and closed off by a one-unit bottom
// seam. With Boxed true the title detaches into a separately radiused,
// separately stroked chip overlaid near the body's top border according to
// Anchor.
type TitleStyle struct {
	Color  graphics.Color
	Weight FontWeight
	// Align is the horizontal text alignment inside the title region.
	Align HAlign
	Boxed bool
	// Anchor, Offset, and Radius apply only when Boxed is true.
	Anchor Anchor
	// Offset nudges the chip away from its anchored edge. The horizontal
	// component is interpreted as "away from the anchored edge": it moves a
	// left-anchored chip right and a right-anchored chip left, and is
	// ignored for center anchoring. The vertical component shifts the chip
	// without changing the space reserved above the body.
	Offset graphics.Offset
	Radius Radii
	// Inset overrides the global inset for the title region.
	Inset Spacing
}

type shadowOffsetKind int

const (
	shadowOffsetUnset shadowOffsetKind = iota
	shadowOffsetScalar
	shadowOffsetPair
)

// defaultShadowOffset applies when a shadow is configured without an offset.
const defaultShadowOffset = 4.0

// ShadowOffset is a shadow displacement given either as one scalar applied
// to both axes or as an explicit (x, y) pair. Positive y pushes the shadow
// down and positive x pushes it right.
type ShadowOffset struct {
	kind shadowOffsetKind
	x, y float64
}

// ShadowOffsetAll creates an offset applying the same value to both axes.
func ShadowOffsetAll(value float64) ShadowOffset {
	return ShadowOffset{kind: shadowOffsetScalar, x: value, y: value}
}

// ShadowOffsetXY creates an explicit (x, y) offset.
func ShadowOffsetXY(x, y float64) ShadowOffset {
	return ShadowOffset{kind: shadowOffsetPair, x: x, y: y}
}

// normalize returns the offset as an (x, y) pair, applying the default for
// an absent specification.
func (o ShadowOffset) normalize() graphics.Offset {
	if o.kind == shadowOffsetUnset {
		return graphics.Offset{X: defaultShadowOffset, Y: defaultShadowOffset}
	}
	return graphics.Offset{X: o.x, Y: o.y}
}

// ShadowStyle configures the drop shadow. A nil *ShadowStyle means no shadow.
type ShadowStyle struct {
	Color  graphics.Color
	Offset ShadowOffset
}

// FooterStyle configures the footer band's text.
type FooterStyle struct {
	Color  graphics.Color
	Weight FontWeight
	Align  HAlign
}

// SeparatorStyle configures the line drawn between consecutive body items.
type SeparatorStyle struct {
	// Thickness of the line; 0 draws no line but Gutter still applies.
	Thickness float64
	Dash      *graphics.DashPattern
	// Gutter is the space reserved above and below the line.
	Gutter float64
	// Color of the line. Zero falls back to the frame's border color.
	Color graphics.Color
}

// Style configures every visual aspect of a decorated box.
//
// All fields are optional. Absent fields resolve to defaults (zero insets,
// sharp corners, no border); malformed fields are errors, never silently
// defaulted.
type Style struct {
	// Fills. Zero (transparent) paints nothing.
	BodyFill   graphics.Color
	TitleFill  graphics.Color
	FooterFill graphics.Color

	// Border.
	BorderColor graphics.Color
	Thickness   Spacing
	Dash        *graphics.DashPattern
	Radius      Radii

	// Inset is the global inset; the per-section overrides win where set.
	Inset       Spacing
	BodyInset   Spacing
	FooterInset Spacing

	Title     TitleStyle
	Footer    FooterStyle
	Shadow    *ShadowStyle
	Separator SeparatorStyle
}

// validate checks every polymorphic specification before any measurement is
// requested. A failure aborts the render with a configuration error.
func (s *Style) validate() error {
	if err := s.Thickness.Validate(); err != nil {
		return fmt.Errorf("thickness: %w", err)
	}
	for name, sp := range map[string]Spacing{
		"inset":        s.Inset,
		"body inset":   s.BodyInset,
		"title inset":  s.Title.Inset,
		"footer inset": s.FooterInset,
	} {
		if err := sp.Validate(); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	if err := s.Radius.Validate(); err != nil {
		return err
	}
	if err := s.Title.Radius.Validate(); err != nil {
		return fmt.Errorf("title: %w", err)
	}
	if s.Title.Boxed {
		if err := s.Title.Anchor.validate(); err != nil {
			return err
		}
	}
	return nil
}

// sectionInsets resolves the insets for one section: the section override is
// consulted first for every direction, then the global inset, then zero.
func sectionInsets(section, global Spacing) graphics.EdgeInsets {
	at := func(side Side) float64 {
		if v, ok := section.lookup(side); ok {
			return v
		}
		return global.Resolve(side, 0)
	}
	return graphics.EdgeInsets{
		Left:   at(SideLeft),
		Top:    at(SideTop),
		Right:  at(SideRight),
		Bottom: at(SideBottom),
	}
}
