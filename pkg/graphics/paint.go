package graphics

// DashPattern defines a stroke dash pattern as alternating on/off lengths.
//
// The pattern repeats along the stroke. For example, Intervals of [10, 5]
// draws 10 units on, 5 units off, repeating. Intervals of [10, 5, 5, 5]
// draws 10 on, 5 off, 5 on, 5 off, repeating.
type DashPattern struct {
	Intervals []float64 // Alternating on/off lengths; must have even count >= 2, all > 0
	Phase     float64   // Starting offset into the pattern
}

// Stroke describes how one edge of a region is drawn.
//
// A Thickness of 0 is a valid stroke that paints nothing; keeping zero-width
// strokes present (rather than absent) lets downstream geometry treat all
// four sides uniformly.
type Stroke struct {
	Color     Color
	Dash      *DashPattern // nil = solid stroke
	Thickness float64
}

// Visible reports whether the stroke would paint anything.
func (s Stroke) Visible() bool {
	return s.Thickness > 0 && s.Color != ColorTransparent
}
