package box

import "github.com/go-drift/showbox/pkg/graphics"

// seamThickness closes the title/body and footer/body seams regardless of
// the configured border. A band flush against the body must always show a
// separating line, even on an otherwise borderless box.
const seamThickness = 1.0

// SideStrokes holds the stroke description for all four sides of a region.
//
// Every side is always present; an invisible side carries thickness 0
// rather than being absent, so downstream geometry math stays uniform.
type SideStrokes struct {
	Top    graphics.Stroke
	Bottom graphics.Stroke
	Left   graphics.Stroke
	Right  graphics.Stroke
}

// At returns the stroke for one side.
func (ss SideStrokes) At(side Side) graphics.Stroke {
	switch side {
	case SideTop:
		return ss.Top
	case SideBottom:
		return ss.Bottom
	case SideLeft:
		return ss.Left
	case SideRight:
		return ss.Right
	default:
		return graphics.Stroke{}
	}
}

// buildStrokes expands a border-thickness specification into per-side
// strokes. A scalar thickness applies to all four sides; a per-side mapping
// leaves unmapped sides at 0. Overrides are applied last and win
// unconditionally over both forms.
func buildStrokes(color graphics.Color, dash *graphics.DashPattern, thickness Spacing, overrides map[Side]float64) SideStrokes {
	at := func(side Side) graphics.Stroke {
		t := thickness.Resolve(side, 0)
		if o, ok := overrides[side]; ok {
			t = o
		}
		return graphics.Stroke{Color: color, Dash: dash, Thickness: t}
	}
	return SideStrokes{
		Top:    at(SideTop),
		Bottom: at(SideBottom),
		Left:   at(SideLeft),
		Right:  at(SideRight),
	}
}
