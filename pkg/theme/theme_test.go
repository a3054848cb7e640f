package theme

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-drift/showbox/pkg/box"
	"github.com/go-drift/showbox/pkg/errors"
	"github.com/go-drift/showbox/pkg/graphics"
)

const sampleTheme = `
presets:
  callout:
    body-fill: "#F4F4F4"
    border-color: steelblue
    thickness: {left: 3, y: 1}
    radius: {top-left: 6, top-right: 6}
    inset: 10
    dash: [4, 2]
    title:
      color: white
      fill: "#303030"
      weight: bold
      align: center
      boxed: true
      anchor: {x: right, y: top}
      offset: {x: 6}
      radius: 4
    footer:
      color: gray
      align: right
    shadow:
      color: "#80000000"
      offset: {x: 2, y: 5}
    separator:
      thickness: 1
      gutter: 3
`

func TestParse(t *testing.T) {
	th, err := Parse([]byte(sampleTheme))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	st, err := th.Style("callout")
	if err != nil {
		t.Fatalf("Style: %v", err)
	}

	if st.BodyFill != graphics.Color(0xFFF4F4F4) {
		t.Errorf("body fill = %08X", uint32(st.BodyFill))
	}
	if st.BorderColor != graphics.RGB(0x46, 0x82, 0xB4) {
		t.Errorf("border color = %08X", uint32(st.BorderColor))
	}
	if got := st.Thickness.Resolve(box.SideLeft, -1); got != 3 {
		t.Errorf("left thickness = %v, want 3", got)
	}
	if got := st.Thickness.Resolve(box.SideTop, -1); got != 1 {
		t.Errorf("top thickness = %v, want axis 1", got)
	}
	if got := st.Thickness.Resolve(box.SideRight, -1); got != -1 {
		t.Errorf("right thickness = %v, want fallback", got)
	}
	if st.Dash == nil || len(st.Dash.Intervals) != 2 {
		t.Errorf("dash = %+v", st.Dash)
	}

	title := st.Title
	if !title.Boxed {
		t.Error("title not boxed")
	}
	if title.Anchor != (box.Anchor{X: box.HAlignRight, Y: box.VAnchorTop}) {
		t.Errorf("anchor = %+v", title.Anchor)
	}
	if title.Offset.X != 6 {
		t.Errorf("title offset x = %v", title.Offset.X)
	}
	if title.Weight != box.FontWeightBold {
		t.Errorf("title weight = %v", title.Weight)
	}
	if st.Footer.Align != box.HAlignRight {
		t.Errorf("footer align = %v", st.Footer.Align)
	}
	if st.Shadow == nil {
		t.Fatal("no shadow")
	}
	if st.Separator.Gutter != 3 {
		t.Errorf("separator gutter = %v", st.Separator.Gutter)
	}
}

func TestParsedStyleComposes(t *testing.T) {
	th, err := Parse([]byte(sampleTheme))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	st, err := th.Style("callout")
	if err != nil {
		t.Fatalf("Style: %v", err)
	}
	plan, err := box.Compose(box.Options{Style: st, Items: []box.Content{"x"}}, nil)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if got := plan.Body.Strokes.Left.Thickness; got != 3 {
		t.Errorf("plan left stroke = %v, want 3", got)
	}
}

func TestParseMalformed(t *testing.T) {
	cases := map[string]string{
		"bad color":        "presets: {p: {body-fill: '#zzz'}}",
		"unknown color":    "presets: {p: {border-color: nosuchcolor}}",
		"bad spacing key":  "presets: {p: {inset: {middle: 3}}}",
		"bad spacing type": "presets: {p: {inset: [1, 2]}}",
		"bad radius key":   "presets: {p: {radius: {center: 3}}}",
		"bad weight":       "presets: {p: {title: {weight: heavy}}}",
		"weight range":     "presets: {p: {title: {weight: 950}}}",
		"bad align":        "presets: {p: {title: {align: justified}}}",
		"bad anchor":       "presets: {p: {title: {anchor: {y: middle}}}}",
	}
	for name, doc := range cases {
		_, err := Parse([]byte(doc))
		if err == nil {
			t.Errorf("%s: Parse accepted malformed input", name)
			continue
		}
		if errors.KindOf(err) != errors.KindConfig {
			t.Errorf("%s: kind = %v, want KindConfig", name, errors.KindOf(err))
		}
	}
}

func TestBuiltinPresets(t *testing.T) {
	th, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	for _, name := range []string{"plain", "note", "warning"} {
		if _, err := th.Style(name); err != nil {
			t.Errorf("missing built-in preset %q: %v", name, err)
		}
	}
	if _, err := th.Style("nope"); err == nil {
		t.Error("unknown preset did not error")
	}
}

func TestFilePresetOverridesBuiltin(t *testing.T) {
	th, err := Parse([]byte("presets: {plain: {inset: 42}}"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	st, err := th.Style("plain")
	if err != nil {
		t.Fatalf("Style: %v", err)
	}
	if got := st.Inset.Resolve(box.SideTop, -1); got != 42 {
		t.Errorf("inset = %v, want overriding 42", got)
	}
}

func TestLoadOptional(t *testing.T) {
	dir := t.TempDir()

	th, err := LoadOptional(dir)
	if err != nil {
		t.Fatalf("LoadOptional without a file: %v", err)
	}
	if len(th.Names()) == 0 {
		t.Error("missing file should still yield built-ins")
	}

	path := filepath.Join(dir, DefaultFile)
	if err := os.WriteFile(path, []byte(sampleTheme), 0o644); err != nil {
		t.Fatal(err)
	}
	th, err = LoadOptional(dir)
	if err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	if _, err := th.Style("callout"); err != nil {
		t.Errorf("file preset not loaded: %v", err)
	}

	if err := os.WriteFile(path, []byte("presets: {p: {inset: {q: 1}}}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadOptional(dir); err == nil {
		t.Error("malformed file did not error")
	}
}

func TestNamesSorted(t *testing.T) {
	th, err := Parse([]byte(sampleTheme))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	names := th.Names()
	if len(names) < 4 {
		t.Fatalf("names = %v", names)
	}
	joined := strings.Join(names, ",")
	if !strings.Contains(joined, "callout") {
		t.Errorf("names %v missing file preset", names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("names not sorted: %v", names)
		}
	}
}
