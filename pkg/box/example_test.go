package box_test

import (
	"fmt"

	"github.com/go-drift/showbox/pkg/box"
	"github.com/go-drift/showbox/pkg/boxtest"
	"github.com/go-drift/showbox/pkg/graphics"
)

func ExampleCompose() {
	style := box.Style{
		BodyFill:    graphics.RGB(0xF4, 0xF4, 0xF4),
		BorderColor: graphics.ColorBlack,
		Thickness:   box.SpacingAll(1),
		Radius:      box.RadiiAll(6),
		Inset:       box.SpacingAll(10),
		Title: box.TitleStyle{
			Boxed:  true,
			Anchor: box.Anchor{X: box.HAlignLeft, Y: box.VAnchorHorizon},
		},
	}
	m := &boxtest.FixedMeasurer{Default: box.Measurement{Width: 48, Height: 20}}

	plan, err := box.Compose(box.Options{
		Style: style,
		Title: "Note",
		Items: []box.Content{"Remember to water the plants."},
	}, m)
	if err != nil {
		fmt.Println("compose failed:", err)
		return
	}
	fmt.Printf("reserved above: %v\n", plan.ReservedAbove)
	fmt.Printf("chip offset: (%v, %v)\n", plan.TitleChip.Offset.X, plan.TitleChip.Offset.Y)
	// Output:
	// reserved above: 10
	// chip offset: (0, -10)
}
