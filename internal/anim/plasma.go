package anim

import (
	"math"

	"github.com/san-kum/marquee/internal/hsl"
)

// Plasma blends three phase-shifted sine/cosine waves into a psychedelic
// rolling color field.
type Plasma struct{}

func (Plasma) RenderCell(ctx Context) Result {
	pos := float64(ctx.CharIndex)
	t := ctx.HueOffset

	wave1 := math.Sin(pos*0.1 + t*0.02)
	wave2 := math.Sin(pos*0.13 + t*0.03)
	wave3 := math.Cos(pos*0.08 + t*0.025)

	// Average into -1..1, then map onto 0..360.
	hue := ((wave1+wave2+wave3)/3 + 1) * 180
	return Result{Foreground: hsl.ToRGB(hue, 100, 50)}
}
