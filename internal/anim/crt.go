package anim

import (
	"math"

	"github.com/san-kum/marquee/internal/hsl"
)

// CRT fakes an old tube display: R/G/B phosphor triads by column, darkened
// scanline rows, a rolling retrace bar, and a touch of hashed noise.
type CRT struct{}

func (CRT) RenderCell(ctx Context) Result {
	t := ctx.HueOffset
	y := float64(ctx.RowIndex)
	x := float64(ctx.ColIndex)

	baseHue := math.Mod(180+math.Sin(x*0.5+t*0.2)*20+math.Cos(y*0.8+t*0.15)*15, 360)

	var hue float64
	switch ctx.ColIndex % 3 {
	case 0:
		hue = baseHue + 10 // slight red tint
	case 1:
		hue = baseHue + 140 // green tint
	default:
		hue = baseHue + 260 // blue tint
	}

	scanline := 0.0
	if ctx.RowIndex%2 == 0 {
		scanline = -8
	}

	// Rolling bright bar moving down the rows.
	barPos := math.Mod(t*0.35, 360)
	barRow := barPos / 360 * math.Max(float64(ctx.TotalRows), 1)
	dist := math.Abs(y - barRow)
	barBoost := (1 - math.Min(dist/2.5, 1)) * 18

	noise := frac(math.Sin(x*12.9898+y*78.233+t)*43758.5453)*4 - 2

	lightness := 42 + scanline + barBoost + noise
	return Result{Foreground: hsl.ToRGB(hue, 75, clampf(lightness, 25, 80))}
}
