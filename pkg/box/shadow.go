package box

import "github.com/go-drift/showbox/pkg/graphics"

// Shadow outsets are expressed relative to the outer assembly rect: the
// vertical stack holding the reserved title space plus the body block.
// Positive extends the painted shadow outward, negative pulls it inward.

// shadowOutsets computes the outsets of the body's shadow layer.
//
// Without a boxed title the shadow is simply the body displaced by the
// configured offset. With a boxed title anchored above the border the
// assembly rect includes the reserved strip, which the title already pays
// for; the top outset is pulled further inward by the part of the title
// above the border plus the body's top inset, so the gap between title and
// body is not counted twice.
func shadowOutsets(offset graphics.Offset, boxed bool, anchorY VAnchor, titleHeight, bodyTopInset float64) graphics.Outsets {
	out := graphics.Outsets{
		Left:   -offset.X,
		Right:  offset.X,
		Top:    -offset.Y,
		Bottom: offset.Y,
	}
	if !boxed {
		return out
	}
	switch anchorY {
	case VAnchorHorizon:
		out.Top = -(offset.Y + titleHeight/2 + bodyTopInset)
	case VAnchorTop:
		out.Top = -(offset.Y + titleHeight + bodyTopInset)
	case VAnchorBottom:
		// Inline chip: nothing rises above the body, base case holds.
	}
	return out
}

// titleShadowOutsets computes the outsets for the title chip's own shadow,
// needed when a boxed title is anchored above the border (top or horizon).
//
// The bottom outset is pulled inward past the border seam so the chip's
// shadow does not bleed into the body's shadow below the seam.
func titleShadowOutsets(offset graphics.Offset, titleHeight, bodyTopInset, topBorderThickness float64) graphics.Outsets {
	return graphics.Outsets{
		Left:   -offset.X,
		Right:  offset.X,
		Top:    -offset.Y,
		Bottom: -(titleHeight/2 + bodyTopInset + topBorderThickness/2),
	}
}
