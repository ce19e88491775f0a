package anim

import (
	"math"

	"github.com/san-kum/marquee/internal/hsl"
)

// Fire shades rows from red at the bottom to yellow at the top with a
// flicker that climbs over time.
type Fire struct{}

func (Fire) RenderCell(ctx Context) Result {
	verticalPos := float64(ctx.RowIndex) / math.Max(float64(ctx.TotalRows), 1)
	baseHue := verticalPos * 60

	flicker := math.Sin(ctx.HueOffset*0.1+float64(ctx.CharIndex)*0.3) * 10
	hue := clampf(baseHue+flicker, 0, 60)

	lightnessFlicker := math.Sin(ctx.HueOffset*0.15+float64(ctx.CharIndex)*0.2+float64(ctx.RowIndex)*0.4) * 10
	lightness := clampf(55+lightnessFlicker, 45, 65)

	return Result{Foreground: hsl.ToRGB(hue, 100, lightness)}
}
