// Package hsl converts the HSL values produced by animation math into RGB
// terminal colors. Inputs are normalized before conversion so accumulated
// floating-point drift in phase arithmetic can never yield an invalid color.
package hsl

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as a #rrggbb string, the form lipgloss expects.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ToRGB converts hue (degrees), saturation and lightness (both 0-100) to RGB.
// Hue is reduced mod 360 and saturation/lightness are clamped to [0,100], so
// any finite inputs produce a valid color.
func ToRGB(h, s, l float64) RGB {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	s = clamp(s, 0, 100) / 100
	l = clamp(l, 0, 100) / 100

	r, g, b := colorful.Hsl(h, s, l).Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// Rainbow maps a position within a sequence to a fully saturated spectrum
// color. total must be positive.
func Rainbow(index, total int) RGB {
	hue := float64(index) / float64(total) * 360
	return ToRGB(hue, 100, 50)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
