package anim

import (
	"math"

	"github.com/san-kum/marquee/internal/hsl"
)

// Iris pulses lightness outward from the center: cells inside a growing
// radius are bright, the rest stay dim. Hue is fixed per position.
type Iris struct{}

func (Iris) RenderCell(ctx Context) Result {
	center := float64(ctx.TotalChars) / 2
	pos := float64(ctx.CharIndex)
	radius := ctx.HueOffset / 360 * math.Max(center, 1)
	lightness := 35.0
	if math.Abs(pos-center) <= radius {
		lightness = 60
	}
	hue := pos / float64(ctx.TotalChars) * 360
	return Result{Foreground: hsl.ToRGB(hue, 100, lightness)}
}
