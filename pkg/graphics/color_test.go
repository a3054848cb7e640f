package graphics

import "testing"

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want Color
	}{
		{"#000000", ColorBlack},
		{"#fff", ColorWhite},
		{"#80FF0000", Color(0x80FF0000)},
		{"black", ColorBlack},
		{"SteelBlue", RGB(0x46, 0x82, 0xB4)},
		{" white ", ColorWhite},
	}
	for _, c := range cases {
		got, err := ParseColor(c.in)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseColor(%q) = %08X, want %08X", c.in, uint32(got), uint32(c.want))
		}
	}
}

func TestParseColorRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "#12345", "#GGGGGG", "notacolor"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q) accepted malformed input", in)
		}
	}
}

func TestWithAlpha(t *testing.T) {
	c := RGB(0x10, 0x20, 0x30).WithAlpha(0x40)
	if c != Color(0x40102030) {
		t.Errorf("got %08X", uint32(c))
	}
}
