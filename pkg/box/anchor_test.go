package box

import (
	"testing"

	"github.com/go-drift/showbox/pkg/errors"
	"github.com/go-drift/showbox/pkg/graphics"
)

func TestPlaceTitleVertical(t *testing.T) {
	size := Measurement{Width: 60, Height: 20}
	cases := []struct {
		name     string
		y        VAnchor
		dy       float64
		reserved float64
		inline   bool
	}{
		{"top", VAnchorTop, -20, 20, false},
		{"horizon", VAnchorHorizon, -10, 10, false},
		{"bottom", VAnchorBottom, 0, 0, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := placeTitle(Anchor{X: HAlignLeft, Y: c.y}, graphics.Offset{}, size)
			if err != nil {
				t.Fatalf("placeTitle: %v", err)
			}
			if p.offset.Y != c.dy {
				t.Errorf("dy = %v, want %v", p.offset.Y, c.dy)
			}
			if p.reserved != c.reserved {
				t.Errorf("reserved = %v, want %v", p.reserved, c.reserved)
			}
			if p.inline != c.inline {
				t.Errorf("inline = %v, want %v", p.inline, c.inline)
			}
		})
	}
}

// The horizon anchor must bisect the chip: the part above the border equals
// the reservation, for any measured height.
func TestPlaceTitleHorizonBisects(t *testing.T) {
	for _, h := range []float64{1, 13, 20, 37.5} {
		p, err := placeTitle(Anchor{Y: VAnchorHorizon}, graphics.Offset{}, Measurement{Height: h})
		if err != nil {
			t.Fatalf("height %v: %v", h, err)
		}
		if -p.offset.Y != p.reserved {
			t.Errorf("height %v: dy %v and reserved %v are not mirror images", h, p.offset.Y, p.reserved)
		}
		if p.reserved != h/2 {
			t.Errorf("height %v: reserved = %v, want %v", h, p.reserved, h/2)
		}
	}
}

func TestPlaceTitleHorizontalOffset(t *testing.T) {
	size := Measurement{Height: 20}
	nudge := graphics.Offset{X: 6}
	cases := []struct {
		name string
		x    HAlign
		dx   float64
	}{
		{"left pushes right", HAlignLeft, 6},
		{"right pushes left", HAlignRight, -6},
		{"center ignores", HAlignCenter, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := placeTitle(Anchor{X: c.x, Y: VAnchorHorizon}, nudge, size)
			if err != nil {
				t.Fatalf("placeTitle: %v", err)
			}
			if p.offset.X != c.dx {
				t.Errorf("dx = %v, want %v", p.offset.X, c.dx)
			}
		})
	}
}

// The vertical nudge shifts the chip but never the reservation.
func TestPlaceTitleVerticalNudgeKeepsReservation(t *testing.T) {
	size := Measurement{Height: 20}
	p, err := placeTitle(Anchor{Y: VAnchorTop}, graphics.Offset{Y: 4}, size)
	if err != nil {
		t.Fatalf("placeTitle: %v", err)
	}
	if p.offset.Y != -16 {
		t.Errorf("dy = %v, want -16", p.offset.Y)
	}
	if p.reserved != 20 {
		t.Errorf("reserved = %v, want unchanged 20", p.reserved)
	}
}

func TestPlaceTitleAllNineAnchors(t *testing.T) {
	size := Measurement{Height: 10}
	for _, x := range []HAlign{HAlignLeft, HAlignCenter, HAlignRight} {
		for _, y := range []VAnchor{VAnchorHorizon, VAnchorTop, VAnchorBottom} {
			if _, err := placeTitle(Anchor{X: x, Y: y}, graphics.Offset{}, size); err != nil {
				t.Errorf("anchor {%v, %v}: %v", x, y, err)
			}
		}
	}
}

func TestPlaceTitleInvalidAnchor(t *testing.T) {
	_, err := placeTitle(Anchor{X: HAlign(9)}, graphics.Offset{}, Measurement{Height: 10})
	if err == nil {
		t.Fatal("expected an error for an out-of-range anchor")
	}
	if errors.KindOf(err) != errors.KindConfig {
		t.Errorf("kind = %v, want KindConfig", errors.KindOf(err))
	}
}
