package anim

import (
	"math"

	"github.com/san-kum/marquee/internal/hsl"
)

// Wave oscillates the hue along a sine wave over character position.
type Wave struct{}

func (Wave) RenderCell(ctx Context) Result {
	const (
		base      = 200.0 // blue-ish
		amplitude = 60.0
		freq      = 0.35 // chars per cycle
	)
	phase := radians(ctx.HueOffset)
	hue := base + amplitude*math.Sin(float64(ctx.CharIndex)*freq+phase)
	return Result{Foreground: hsl.ToRGB(hue, 100, 50)}
}
