package box

import (
	"fmt"

	"github.com/go-drift/showbox/pkg/errors"
	"github.com/go-drift/showbox/pkg/graphics"
)

// Options are the inputs for one composition.
type Options struct {
	Style Style
	// Title and Footer strings. An empty string suppresses the entire
	// region: no band, no chip, no reserved space.
	Title  string
	Footer string
	// Items are the body content fragments, painted in order with a
	// separator between consecutive items.
	Items []Content
	// Width of the container; ratios resolve against the page at paint time.
	Width graphics.Length
	// Breakable is passed through verbatim; page breaking is the host's job.
	Breakable bool
	// Outer alignment and spacing directives, passed through opaquely.
	Align        any
	SpacingAbove any
	SpacingBelow any
}

// Compose resolves a style and content set into a render plan.
//
// Configuration is validated before any measurement is requested; a
// malformed style aborts the render with a KindConfig error and no partial
// plan. When the title is boxed, Compose performs the single measurement
// request of the pass through m and derives the chip placement and shadow
// outsets from the result.
func Compose(opts Options, m Measurer) (*RenderPlan, error) {
	const op = "box.Compose"
	st := &opts.Style
	if err := st.validate(); err != nil {
		return nil, errors.Config(op, err)
	}

	bodyInsets := sectionInsets(st.BodyInset, st.Inset)
	bodyRadii := st.Radius.resolve()

	plan := &RenderPlan{
		Width:        opts.Width,
		Breakable:    opts.Breakable,
		Align:        opts.Align,
		SpacingAbove: opts.SpacingAbove,
		SpacingBelow: opts.SpacingBelow,
		Body: Region{
			Fill:    st.BodyFill,
			Strokes: buildStrokes(st.BorderColor, st.Dash, st.Thickness, nil),
			Radii:   bodyRadii,
			Insets:  bodyInsets,
		},
		Items: opts.Items,
	}

	if opts.Title != "" {
		textStyle := TextStyle{
			Color:  st.Title.Color,
			Weight: st.Title.Weight,
			Align:  st.Title.Align,
		}
		titleInsets := sectionInsets(st.Title.Inset, st.Inset)
		if st.Title.Boxed {
			if m == nil {
				return nil, errors.Measure(op, fmt.Errorf("boxed title %q needs a measurer", opts.Title))
			}
			size, err := m.Measure(opts.Title, textStyle)
			if err != nil {
				return nil, errors.Measure(op, err)
			}
			placement, err := placeTitle(st.Title.Anchor, st.Title.Offset, size)
			if err != nil {
				return nil, err
			}
			plan.TitleChip = &TitleChip{
				Band: Band{
					Region: Region{
						Fill:    st.TitleFill,
						Strokes: buildStrokes(st.BorderColor, st.Dash, st.Thickness, nil),
						Radii:   st.Title.Radius.resolve(),
						Insets:  titleInsets,
					},
					Text:  opts.Title,
					Style: textStyle,
				},
				Anchor: st.Title.Anchor,
				Offset: placement.offset,
				Size:   size,
				Inline: placement.inline,
			}
			plan.ReservedAbove = placement.reserved
		} else {
			// The inline band shares the body's top radii; its bottom edge
			// is squared off and closed by the seam stroke.
			plan.InlineTitle = &Band{
				Region: Region{
					Fill: st.TitleFill,
					Strokes: buildStrokes(st.BorderColor, st.Dash, st.Thickness,
						map[Side]float64{SideBottom: seamThickness}),
					Radii: graphics.CornerRadii{
						TopLeft:  bodyRadii.TopLeft,
						TopRight: bodyRadii.TopRight,
					},
					Insets: titleInsets,
				},
				Text:  opts.Title,
				Style: textStyle,
			}
		}
	}

	if opts.Footer != "" {
		plan.Footer = &Band{
			Region: Region{
				Fill: st.FooterFill,
				Strokes: buildStrokes(st.BorderColor, st.Dash, st.Thickness,
					map[Side]float64{SideTop: seamThickness}),
				Radii: graphics.CornerRadii{
					BottomLeft:  bodyRadii.BottomLeft,
					BottomRight: bodyRadii.BottomRight,
				},
				Insets: sectionInsets(st.FooterInset, st.Inset),
			},
			Text: opts.Footer,
			Style: TextStyle{
				Color:  st.Footer.Color,
				Weight: st.Footer.Weight,
				Align:  st.Footer.Align,
			},
		}
	}

	if st.Shadow != nil {
		offset := st.Shadow.Offset.normalize()
		boxed := plan.TitleChip != nil
		var titleHeight float64
		if boxed {
			titleHeight = plan.TitleChip.Size.Height
		}
		plan.BodyShadow = &ShadowLayer{
			Color:   st.Shadow.Color,
			Offset:  offset,
			Outsets: shadowOutsets(offset, boxed, st.Title.Anchor.Y, titleHeight, bodyInsets.Top),
		}
		if boxed && !plan.TitleChip.Inline {
			plan.TitleShadow = &ShadowLayer{
				Color:  st.Shadow.Color,
				Offset: offset,
				Outsets: titleShadowOutsets(offset, titleHeight, bodyInsets.Top,
					plan.Body.Strokes.Top.Thickness),
			}
		}
	}

	if len(opts.Items) > 1 {
		sep := st.Separator
		color := sep.Color
		if color == 0 {
			color = st.BorderColor
		}
		plan.Separator = &SeparatorLine{
			Stroke: graphics.Stroke{Color: color, Dash: sep.Dash, Thickness: sep.Thickness},
			Gutter: sep.Gutter,
		}
	}

	return plan, nil
}
