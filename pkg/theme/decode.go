package theme

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/showbox/pkg/box"
	"github.com/go-drift/showbox/pkg/graphics"
)

// colorSpec decodes a hex string or SVG color name.
type colorSpec struct {
	color graphics.Color
}

func (c *colorSpec) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("color must be a string")
	}
	parsed, err := graphics.ParseColor(s)
	if err != nil {
		return err
	}
	c.color = parsed
	return nil
}

// spacingSpec decodes a scalar or a direction/axis mapping.
type spacingSpec struct {
	spacing box.Spacing
}

func (s *spacingSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var v float64
		if err := node.Decode(&v); err != nil {
			return fmt.Errorf("spacing must be a number or a mapping")
		}
		s.spacing = box.SpacingAll(v)
		return nil
	case yaml.MappingNode:
		var raw map[string]float64
		if err := node.Decode(&raw); err != nil {
			return fmt.Errorf("spacing entries must be numbers")
		}
		sp := box.Spacing{}
		for key, v := range raw {
			switch key {
			case "top":
				sp = sp.WithSide(box.SideTop, v)
			case "bottom":
				sp = sp.WithSide(box.SideBottom, v)
			case "left":
				sp = sp.WithSide(box.SideLeft, v)
			case "right":
				sp = sp.WithSide(box.SideRight, v)
			case "x":
				sp = sp.WithX(v)
			case "y":
				sp = sp.WithY(v)
			default:
				return fmt.Errorf("unknown spacing key %q", key)
			}
		}
		if err := sp.Validate(); err != nil {
			return err
		}
		s.spacing = sp
		return nil
	default:
		return fmt.Errorf("spacing must be a number or a mapping")
	}
}

// radiiSpec decodes a scalar or a per-corner mapping.
type radiiSpec struct {
	radii box.Radii
}

func (r *radiiSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var v float64
		if err := node.Decode(&v); err != nil {
			return fmt.Errorf("radius must be a number or a mapping")
		}
		r.radii = box.RadiiAll(v)
		return nil
	case yaml.MappingNode:
		var raw map[string]float64
		if err := node.Decode(&raw); err != nil {
			return fmt.Errorf("radius entries must be numbers")
		}
		corners := make(map[box.Corner]float64, len(raw))
		for key, v := range raw {
			switch key {
			case "top-left":
				corners[box.CornerTopLeft] = v
			case "top-right":
				corners[box.CornerTopRight] = v
			case "bottom-right":
				corners[box.CornerBottomRight] = v
			case "bottom-left":
				corners[box.CornerBottomLeft] = v
			default:
				return fmt.Errorf("unknown radius key %q", key)
			}
		}
		r.radii = box.RadiiCorners(corners)
		return nil
	default:
		return fmt.Errorf("radius must be a number or a mapping")
	}
}

// shadowOffsetSpec decodes a scalar or an {x, y} mapping.
type shadowOffsetSpec struct {
	offset box.ShadowOffset
}

func (s *shadowOffsetSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var v float64
		if err := node.Decode(&v); err != nil {
			return fmt.Errorf("shadow offset must be a number or an {x, y} mapping")
		}
		s.offset = box.ShadowOffsetAll(v)
		return nil
	case yaml.MappingNode:
		var raw struct {
			X float64 `yaml:"x"`
			Y float64 `yaml:"y"`
		}
		if err := node.Decode(&raw); err != nil {
			return fmt.Errorf("shadow offset entries must be numbers")
		}
		s.offset = box.ShadowOffsetXY(raw.X, raw.Y)
		return nil
	default:
		return fmt.Errorf("shadow offset must be a number or an {x, y} mapping")
	}
}

// dashSpec decodes a dash pattern from a list of interval lengths.
type dashSpec struct {
	dash *graphics.DashPattern
}

func (d *dashSpec) UnmarshalYAML(node *yaml.Node) error {
	var intervals []float64
	if err := node.Decode(&intervals); err != nil {
		return fmt.Errorf("dash must be a list of interval lengths")
	}
	if len(intervals) > 0 {
		d.dash = &graphics.DashPattern{Intervals: intervals}
	}
	return nil
}

// weightSpec decodes "normal", "bold", or a numeric CSS weight.
type weightSpec struct {
	weight box.FontWeight
}

func (w *weightSpec) UnmarshalYAML(node *yaml.Node) error {
	var n int
	if err := node.Decode(&n); err == nil {
		if n < 100 || n > 900 {
			return fmt.Errorf("font weight %d out of range 100-900", n)
		}
		w.weight = box.FontWeight(n)
		return nil
	}
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("font weight must be a name or a number")
	}
	switch s {
	case "normal":
		w.weight = box.FontWeightNormal
	case "bold":
		w.weight = box.FontWeightBold
	default:
		return fmt.Errorf("unknown font weight %q", s)
	}
	return nil
}

// alignSpec decodes "left", "center", or "right".
type alignSpec struct {
	align box.HAlign
}

func (a *alignSpec) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("alignment must be a string")
	}
	switch s {
	case "left":
		a.align = box.HAlignLeft
	case "center":
		a.align = box.HAlignCenter
	case "right":
		a.align = box.HAlignRight
	default:
		return fmt.Errorf("unknown alignment %q", s)
	}
	return nil
}

// anchorSpec decodes an {x, y} anchor mapping.
type anchorSpec struct {
	anchor box.Anchor
}

func (a *anchorSpec) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		X string `yaml:"x"`
		Y string `yaml:"y"`
	}
	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("anchor must be an {x, y} mapping")
	}
	switch raw.X {
	case "", "left":
		a.anchor.X = box.HAlignLeft
	case "center":
		a.anchor.X = box.HAlignCenter
	case "right":
		a.anchor.X = box.HAlignRight
	default:
		return fmt.Errorf("unknown anchor x %q", raw.X)
	}
	switch raw.Y {
	case "", "horizon":
		a.anchor.Y = box.VAnchorHorizon
	case "top":
		a.anchor.Y = box.VAnchorTop
	case "bottom":
		a.anchor.Y = box.VAnchorBottom
	default:
		return fmt.Errorf("unknown anchor y %q", raw.Y)
	}
	return nil
}

// offsetDoc is a plain {x, y} displacement.
type offsetDoc struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type titleDoc struct {
	Color  *colorSpec  `yaml:"color"`
	Fill   *colorSpec  `yaml:"fill"`
	Weight *weightSpec `yaml:"weight"`
	Align  alignSpec   `yaml:"align"`
	Boxed  bool        `yaml:"boxed"`
	Anchor anchorSpec  `yaml:"anchor"`
	Offset offsetDoc   `yaml:"offset"`
	Radius radiiSpec   `yaml:"radius"`
	Inset  spacingSpec `yaml:"inset"`
}

type footerDoc struct {
	Color  *colorSpec  `yaml:"color"`
	Fill   *colorSpec  `yaml:"fill"`
	Weight *weightSpec `yaml:"weight"`
	Align  alignSpec   `yaml:"align"`
	Inset  spacingSpec `yaml:"inset"`
}

type shadowDoc struct {
	Color  *colorSpec       `yaml:"color"`
	Offset shadowOffsetSpec `yaml:"offset"`
}

type separatorDoc struct {
	Thickness float64    `yaml:"thickness"`
	Gutter    float64    `yaml:"gutter"`
	Color     *colorSpec `yaml:"color"`
	Dash      dashSpec   `yaml:"dash"`
}

// styleDoc is the YAML shape of one preset.
type styleDoc struct {
	BodyFill    *colorSpec  `yaml:"body-fill"`
	BorderColor *colorSpec  `yaml:"border-color"`
	Thickness   spacingSpec `yaml:"thickness"`
	Dash        dashSpec    `yaml:"dash"`
	Radius      radiiSpec   `yaml:"radius"`
	Inset       spacingSpec `yaml:"inset"`
	BodyInset   spacingSpec `yaml:"body-inset"`

	Title     *titleDoc     `yaml:"title"`
	Footer    *footerDoc    `yaml:"footer"`
	Shadow    *shadowDoc    `yaml:"shadow"`
	Separator *separatorDoc `yaml:"separator"`
}

func colorOf(c *colorSpec) graphics.Color {
	if c == nil {
		return graphics.ColorTransparent
	}
	return c.color
}

func weightOf(w *weightSpec) box.FontWeight {
	if w == nil {
		return box.FontWeightNormal
	}
	return w.weight
}

// build materializes the document into an engine style. The decoders have
// already rejected malformed shapes, so this is pure assembly.
func (d styleDoc) build() box.Style {
	st := box.Style{
		BodyFill:    colorOf(d.BodyFill),
		BorderColor: colorOf(d.BorderColor),
		Thickness:   d.Thickness.spacing,
		Dash:        d.Dash.dash,
		Radius:      d.Radius.radii,
		Inset:       d.Inset.spacing,
		BodyInset:   d.BodyInset.spacing,
	}
	if t := d.Title; t != nil {
		st.TitleFill = colorOf(t.Fill)
		st.Title = box.TitleStyle{
			Color:  colorOf(t.Color),
			Weight: weightOf(t.Weight),
			Align:  t.Align.align,
			Boxed:  t.Boxed,
			Anchor: t.Anchor.anchor,
			Offset: graphics.Offset{X: t.Offset.X, Y: t.Offset.Y},
			Radius: t.Radius.radii,
			Inset:  t.Inset.spacing,
		}
	}
	if f := d.Footer; f != nil {
		st.FooterFill = colorOf(f.Fill)
		st.FooterInset = f.Inset.spacing
		st.Footer = box.FooterStyle{
			Color:  colorOf(f.Color),
			Weight: weightOf(f.Weight),
			Align:  f.Align.align,
		}
	}
	if s := d.Shadow; s != nil {
		st.Shadow = &box.ShadowStyle{
			Color:  colorOf(s.Color),
			Offset: s.Offset.offset,
		}
	}
	if s := d.Separator; s != nil {
		st.Separator = box.SeparatorStyle{
			Thickness: s.Thickness,
			Gutter:    s.Gutter,
			Color:     colorOf(s.Color),
			Dash:      s.Dash.dash,
		}
	}
	return st
}
