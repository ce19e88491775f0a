package anim

import (
	"math"

	"github.com/san-kum/marquee/internal/hsl"
)

// Prism slides three repeating rainbow beams across the characters; cells
// near a beam center render brighter.
type Prism struct{}

func (Prism) RenderCell(ctx Context) Result {
	beamWidth := float64(ctx.TotalChars) / 3
	shiftedPos := float64(ctx.CharIndex) + ctx.HueOffset*1.5
	beamPos := math.Mod(shiftedPos, beamWidth)

	hue := beamPos / beamWidth * 360

	beamCenter := beamWidth / 2
	distFromCenter := math.Abs(beamPos - beamCenter)
	lightness := 55 - distFromCenter/beamCenter*10

	return Result{Foreground: hsl.ToRGB(hue, 100, lightness)}
}
