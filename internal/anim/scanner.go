package anim

import (
	"math"

	"github.com/san-kum/marquee/internal/hsl"
)

// Scanner sweeps a bright red band across the characters, lightness falling
// off with distance from the band.
type Scanner struct{}

func (Scanner) RenderCell(ctx Context) Result {
	scanPos := ctx.HueOffset / 360 * float64(ctx.TotalChars)
	dist := math.Abs(float64(ctx.CharIndex) - scanPos)
	lightness := math.Max(70-dist*8, 30)
	return Result{Foreground: hsl.ToRGB(0, 100, lightness)}
}
