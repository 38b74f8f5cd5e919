package retouch

import "testing"

// TestHex tests hex color parsing in all supported formats.
func TestHex(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want RGBA
	}{
		{"RGB short", "F00", RGBA{R: 1, G: 0, B: 0, A: 1}},
		{"RGB short with hash", "#0F0", RGBA{R: 0, G: 1, B: 0, A: 1}},
		{"RGBA short", "00FF", RGBA{R: 0, G: 0, B: 1, A: 1}},
		{"RRGGBB", "FF0000", RGBA{R: 1, G: 0, B: 0, A: 1}},
		{"RRGGBBAA", "00FF0080", RGBA{R: 0, G: 1, B: 0, A: 128.0 / 255}},
		{"invalid length", "F0", RGBA{R: 0, G: 0, B: 0, A: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hex(tt.hex)
			if absDiff(got.R, tt.want.R) > 0.001 ||
				absDiff(got.G, tt.want.G) > 0.001 ||
				absDiff(got.B, tt.want.B) > 0.001 ||
				absDiff(got.A, tt.want.A) > 0.001 {
				t.Errorf("Hex(%q) = %+v, want %+v", tt.hex, got, tt.want)
			}
		})
	}
}

// TestFromColorRoundtrip verifies RGBA <-> color.Color conversion.
func TestFromColorRoundtrip(t *testing.T) {
	c := RGBA2(1, 0.5, 0, 1)
	back := FromColor(c.Color())

	if absDiff(back.R, 1) > 0.01 || absDiff(back.G, 0.5) > 0.01 ||
		absDiff(back.B, 0) > 0.01 || absDiff(back.A, 1) > 0.01 {
		t.Errorf("roundtrip: got %+v, want %+v", back, c)
	}
}

// TestClamp255 tests the clamping helper.
func TestClamp255(t *testing.T) {
	if clamp255(-5) != 0 {
		t.Error("negative values should clamp to 0")
	}
	if clamp255(300) != 255 {
		t.Error("values above 255 should clamp to 255")
	}
	if clamp255(128) != 128 {
		t.Error("in-range values should pass through")
	}
}

// absDiff returns the absolute difference of two floats.
func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
