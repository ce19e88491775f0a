package anim

import (
	"math"

	"github.com/san-kum/marquee/internal/hsl"
)

// Breathe keeps hue fixed per position while every character's lightness
// pulses in sync, like slow breathing.
type Breathe struct{}

func (Breathe) RenderCell(ctx Context) Result {
	hue := float64(ctx.CharIndex) / float64(ctx.TotalChars) * 360
	lightness := 35 + 20*math.Sin(ctx.HueOffset*0.05)
	return Result{Foreground: hsl.ToRGB(hue, 65, lightness)}
}
