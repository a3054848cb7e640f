// Package box resolves decorated-box styling into a paintable render plan.
//
// A decorated box is a rectangular container with a colored body, an
// optional title region, an optional footer region, separators between
// stacked content items, and an optional drop shadow. The package does not
// paint anything: it turns a partially-specified [Style] plus a measured
// title size into a fully-resolved [RenderPlan] that a host renderer paints.
//
// The hard part is the two-pass layout for boxed titles. A title anchored on
// the body's top border ("horizon") cannot be placed until its rendered size
// is known, so [Compose] asks the host for a measurement through the
// [Measurer] interface, then derives the overlay offset, the vertical space
// to reserve above the body, and the shadow outsets from it.
//
// Composition is synchronous and carries no state across calls: each call
// owns its configuration and measurement exclusively, and the returned plan
// belongs to the caller.
//
//	plan, err := box.Compose(box.Options{
//	    Style: box.Style{
//	        BodyFill:    graphics.RGB(0xF2, 0xF2, 0xF2),
//	        BorderColor: graphics.ColorBlack,
//	        Thickness:   box.SpacingAll(1),
//	        Title:       box.TitleStyle{Boxed: true},
//	    },
//	    Title: "Hello",
//	    Items: []box.Content{para1, para2},
//	}, measurer)
package box
