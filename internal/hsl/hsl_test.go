package hsl

import "testing"

func TestToRGB_KnownColors(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float64
		want    RGB
	}{
		{"red", 0, 100, 50, RGB{255, 0, 0}},
		{"green", 120, 100, 50, RGB{0, 255, 0}},
		{"blue", 240, 100, 50, RGB{0, 0, 255}},
		{"white", 0, 0, 100, RGB{255, 255, 255}},
		{"black", 0, 0, 0, RGB{0, 0, 0}},
		{"gray", 180, 0, 50, RGB{128, 128, 128}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToRGB(tt.h, tt.s, tt.l); got != tt.want {
				t.Errorf("ToRGB(%v, %v, %v) = %v, want %v", tt.h, tt.s, tt.l, got, tt.want)
			}
		})
	}
}

func TestToRGB_NormalizesDomains(t *testing.T) {
	// Hue wraps mod 360, negative hues wrap upward.
	if ToRGB(360, 100, 50) != ToRGB(0, 100, 50) {
		t.Error("hue 360 should equal hue 0")
	}
	if ToRGB(-120, 100, 50) != ToRGB(240, 100, 50) {
		t.Error("hue -120 should equal hue 240")
	}
	// Saturation and lightness clamp instead of wrapping.
	if ToRGB(0, 150, 50) != ToRGB(0, 100, 50) {
		t.Error("saturation above 100 should clamp")
	}
	if ToRGB(0, 100, -10) != ToRGB(0, 100, 0) {
		t.Error("lightness below 0 should clamp")
	}
}

func TestRainbow_SpansSpectrum(t *testing.T) {
	if got := Rainbow(0, 10); got != (RGB{255, 0, 0}) {
		t.Errorf("Rainbow(0, 10) = %v, want red", got)
	}
	// Later positions must differ from the start.
	if Rainbow(5, 10) == Rainbow(0, 10) {
		t.Error("Rainbow positions 0 and 5 should differ")
	}
}

func TestHex(t *testing.T) {
	if got := (RGB{255, 0, 128}).Hex(); got != "#ff0080" {
		t.Errorf("Hex() = %q, want #ff0080", got)
	}
}
