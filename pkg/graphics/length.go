package graphics

// Length is an absolute value or a ratio of some available extent.
//
// Ratio lengths cannot be resolved by the box engine alone; the host
// renderer resolves them against the available width at paint time via
// Resolve. Absolute lengths resolve to their value regardless of the
// available extent.
type Length struct {
	Value   float64
	IsRatio bool
}

// Abs creates an absolute length.
func Abs(value float64) Length {
	return Length{Value: value}
}

// Ratio creates a length relative to the available extent (1.0 = 100%).
func Ratio(fraction float64) Length {
	return Length{Value: fraction, IsRatio: true}
}

// Resolve returns the concrete value of the length given the available extent.
func (l Length) Resolve(available float64) float64 {
	if l.IsRatio {
		return l.Value * available
	}
	return l.Value
}
