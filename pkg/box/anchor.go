package box

import (
	"github.com/go-drift/showbox/pkg/errors"
	"github.com/go-drift/showbox/pkg/graphics"
)

// titlePlacement is the resolved position of a boxed title chip.
//
// The horizontal component of offset is relative to the chip's anchored
// edge (the host aligns the chip to the anchor first, then applies dx); the
// vertical component is relative to the body's top edge. The container
// width may be a ratio length only the host can resolve, so an absolute
// horizontal position cannot be produced here.
type titlePlacement struct {
	offset graphics.Offset
	// reserved is the vertical space to keep free above the body so the
	// part of the chip that rises above the border overlaps nothing.
	reserved float64
	// inline means the chip joins the body's content flow as its first
	// child instead of being overlaid.
	inline bool
}

// placeTitle computes where a boxed title chip of the measured height goes
// for one of the nine anchor combinations.
//
// Vertically: a top anchor lifts the chip fully above the body and reserves
// its whole height; a horizon anchor bisects the chip with the border line
// and reserves half; a bottom anchor folds the chip into the body's content
// flow with no reservation. Horizontally: the configured offset pushes the
// chip away from its anchored edge, so it is sign-flipped for a right
// anchor and ignored for center anchoring.
func placeTitle(anchor Anchor, nudge graphics.Offset, size Measurement) (titlePlacement, error) {
	const op = "box.placeTitle"
	if err := anchor.validate(); err != nil {
		return titlePlacement{}, errors.Config(op, err)
	}

	var p titlePlacement
	switch anchor.Y {
	case VAnchorTop:
		p.offset.Y = -size.Height
		p.reserved = size.Height
	case VAnchorHorizon:
		p.offset.Y = -size.Height / 2
		p.reserved = size.Height / 2
	case VAnchorBottom:
		p.inline = true
		return p, nil
	}
	p.offset.Y += nudge.Y

	switch anchor.X {
	case HAlignLeft:
		p.offset.X = nudge.X
	case HAlignRight:
		p.offset.X = -nudge.X
	case HAlignCenter:
		// The configured offset is only meaningful for edge anchors and is
		// deliberately ignored here; this mirrors the documented contract,
		// it is not an oversight.
		p.offset.X = 0
	}
	return p, nil
}
