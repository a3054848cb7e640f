package box

import "github.com/go-drift/showbox/pkg/graphics"

// Content is an opaque content fragment. The engine never inspects it; it
// is handed to the host for measurement and carried into the plan for
// painting.
type Content any

// TextStyle is the style context under which title and footer text is
// measured and painted.
type TextStyle struct {
	Color  graphics.Color
	Weight FontWeight
	Align  HAlign
}

// Measurement is the size the host renderer reports for a content fragment
// under a given style. It is read-only input to the engine: requested at
// most once per composition (for a boxed title), consumed immediately, and
// never cached across box instances.
type Measurement struct {
	Width  float64
	Height float64
}

// Measurer is the host renderer's measurement interface.
//
// Measure must be pure with respect to the given content/style pair and
// must not mutate document state. An error means the content cannot be
// sized in the current context; the engine surfaces it without retrying.
type Measurer interface {
	Measure(content Content, style TextStyle) (Measurement, error)
}

// Region is a paintable area with fully resolved decoration parameters.
type Region struct {
	Fill    graphics.Color
	Strokes SideStrokes
	Radii   graphics.CornerRadii
	Insets  graphics.EdgeInsets
}

// Band is a full-width text region: the inline title or the footer.
type Band struct {
	Region
	Text  string
	Style TextStyle
}

// TitleChip is a boxed title: a band detached from the body and placed
// near its top border.
type TitleChip struct {
	Band
	Anchor Anchor
	// Offset places the chip: X is relative to the anchored edge (the host
	// aligns the chip to Anchor.X first, then shifts by X), Y is relative
	// to the body's top edge.
	Offset graphics.Offset
	Size   Measurement
	// Inline means the chip is the first child of the body's content flow
	// rather than an overlay; Offset is meaningless in that case.
	Inline bool
}

// ShadowLayer is one drop-shadow wrap. Outsets are relative to the outer
// assembly rect (reserved title space plus body block).
type ShadowLayer struct {
	Color   graphics.Color
	Offset  graphics.Offset
	Outsets graphics.Outsets
}

// SeparatorLine is the resolved line drawn between consecutive body items,
// spanning the full inset-adjusted width of the body.
type SeparatorLine struct {
	Stroke graphics.Stroke
	Gutter float64
}

// RenderPlan is the engine's output: every region of one decorated box
// with resolved insets, per-side strokes, per-corner radii, and placement
// offsets. Produced fresh per Compose call and owned solely by the caller.
//
// The host paints, in order: BodyShadow, the body region (containing the
// inline title band if any, the items joined by Separator, and the footer
// band), then TitleShadow and TitleChip overlaid relative to the body
// origin. ReservedAbove is the vertical space to leave before the body so
// an above-border chip overlaps nothing.
type RenderPlan struct {
	// Passed through verbatim to the host.
	Width        graphics.Length
	Breakable    bool
	Align        any
	SpacingAbove any
	SpacingBelow any

	ReservedAbove float64
	BodyShadow    *ShadowLayer
	TitleShadow   *ShadowLayer
	Body          Region
	InlineTitle   *Band
	TitleChip     *TitleChip
	Items         []Content
	Separator     *SeparatorLine
	Footer        *Band
}
