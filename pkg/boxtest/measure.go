package boxtest

import (
	"fmt"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/go-drift/showbox/pkg/box"
)

// FixedMeasurer is a box.Measurer returning canned measurements.
//
// String content is looked up in SizeOf first; anything else gets Default.
// Calls counts every Measure invocation so tests can assert how often the
// engine asked.
type FixedMeasurer struct {
	Default box.Measurement
	SizeOf  map[string]box.Measurement
	// Err, when set, is returned from every call.
	Err   error
	Calls int
}

// Measure implements box.Measurer.
func (m *FixedMeasurer) Measure(content box.Content, _ box.TextStyle) (box.Measurement, error) {
	m.Calls++
	if m.Err != nil {
		return box.Measurement{}, m.Err
	}
	if s, ok := content.(string); ok {
		if size, ok := m.SizeOf[s]; ok {
			return size, nil
		}
	}
	return m.Default, nil
}

// FontMeasurer is a box.Measurer that sizes string content against a font
// face. Multi-line strings measure as the widest line by the line count.
type FontMeasurer struct {
	// Face used for measuring. Nil falls back to basicfont.Face7x13.
	Face font.Face
	// Scale multiplies the face's raw metrics. Zero means 1.
	Scale float64
}

// Measure implements box.Measurer. Non-string content is an error.
func (m *FontMeasurer) Measure(content box.Content, _ box.TextStyle) (box.Measurement, error) {
	text, ok := content.(string)
	if !ok {
		return box.Measurement{}, fmt.Errorf("cannot measure %T, only strings are supported", content)
	}
	face := m.Face
	if face == nil {
		face = basicfont.Face7x13
	}
	scale := m.Scale
	if scale == 0 {
		scale = 1
	}

	lines := strings.Split(text, "\n")
	var widest int
	for _, line := range lines {
		if w := font.MeasureString(face, line).Ceil(); w > widest {
			widest = w
		}
	}
	lineHeight := face.Metrics().Height.Ceil()
	return box.Measurement{
		Width:  float64(widest) * scale,
		Height: float64(lineHeight*len(lines)) * scale,
	}, nil
}
