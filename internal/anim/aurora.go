package anim

import (
	"math"

	"github.com/san-kum/marquee/internal/hsl"
)

// Aurora drifts two slow wave fronts over columns and rows, blending them
// into a green-to-purple hue band with shimmering saturation and lightness.
type Aurora struct{}

func (Aurora) RenderCell(ctx Context) Result {
	t := ctx.HueOffset * 0.02 // slow time
	x := float64(ctx.ColIndex)
	y := float64(ctx.RowIndex)

	// Two moving wave fronts with slight vertical parallax.
	wave1 := math.Sin(x*0.12 + t + y*0.10)
	wave2 := math.Cos(x*0.07 - t*0.8 + y*0.18)
	field := (wave1 + wave2) * 0.5 // -1..1

	const hueMin, hueMax = 120.0, 280.0
	hue := hueMin + (field+1)*0.5*(hueMax-hueMin)

	saturation := 70 + math.Sin(y*0.15+t*0.8)*15
	baseLightness := 45 + math.Abs(field)*18 // brighter on wave ridges
	lightness := baseLightness + math.Sin(y*0.25+t)*6

	return Result{Foreground: hsl.ToRGB(hue, clampf(saturation, 35, 100), clampf(lightness, 30, 80))}
}
