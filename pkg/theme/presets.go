package theme

import (
	"golang.org/x/image/colornames"

	"github.com/go-drift/showbox/pkg/box"
	"github.com/go-drift/showbox/pkg/graphics"
)

func named(name string) graphics.Color {
	c := colornames.Map[name]
	return graphics.RGBA(c.R, c.G, c.B, c.A)
}

// builtinPresets returns the presets every theme starts from. A theme file
// can redefine any of them by name.
func builtinPresets() map[string]box.Style {
	return map[string]box.Style{
		"plain": {
			BorderColor: named("black"),
			Thickness:   box.SpacingAll(1),
			Inset:       box.SpacingAll(10),
		},
		"note": {
			BodyFill:    named("aliceblue"),
			TitleFill:   named("steelblue"),
			BorderColor: named("steelblue"),
			Thickness:   box.SpacingAll(1),
			Radius:      box.RadiiAll(6),
			Inset:       box.SpacingAll(10),
			Title: box.TitleStyle{
				Color:  named("white"),
				Weight: box.FontWeightBold,
			},
		},
		"warning": {
			BodyFill:    named("lemonchiffon"),
			TitleFill:   named("darkorange"),
			BorderColor: named("darkorange"),
			Thickness:   box.SpacingSides(map[box.Side]float64{box.SideLeft: 4}),
			Inset:       box.SpacingXY(12, 8),
			Title: box.TitleStyle{
				Color:  named("white"),
				Weight: box.FontWeightBold,
				Boxed:  true,
				Anchor: box.Anchor{X: box.HAlignLeft, Y: box.VAnchorHorizon},
				Offset: graphics.Offset{X: 8},
				Radius: box.RadiiAll(3),
			},
			Shadow: &box.ShadowStyle{
				Color:  graphics.RGBA(0, 0, 0, 0x40),
				Offset: box.ShadowOffsetXY(3, 3),
			},
		},
	}
}
