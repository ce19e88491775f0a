package anim

import (
	"math"

	"github.com/san-kum/marquee/internal/hsl"
)

// Sepia renders a subdued vintage monochrome tone with a gentle lightness
// wave across characters.
type Sepia struct{}

func (Sepia) RenderCell(ctx Context) Result {
	lightness := 35 + 15*math.Sin(float64(ctx.CharIndex)*0.15+ctx.HueOffset*0.05)
	return Result{Foreground: hsl.ToRGB(30, 45, lightness)}
}
