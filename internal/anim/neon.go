package anim

import (
	"math"

	"github.com/san-kum/marquee/internal/hsl"
)

// Neon cycles through a four-color sign palette, interpolating between
// neighboring palette entries as the cycle position advances.
type Neon struct{}

// Hot pink, electric blue, lime green, violet.
var neonPalette = [4]float64{330, 195, 85, 280}

func (Neon) RenderCell(ctx Context) Result {
	paletteLen := float64(len(neonPalette))
	cyclePos := math.Mod(ctx.HueOffset+float64(ctx.CharIndex)*5, paletteLen*90)
	idx := int(cyclePos/90) % len(neonPalette)
	next := (idx + 1) % len(neonPalette)

	t := math.Mod(cyclePos, 90) / 90
	hue := neonPalette[idx]*(1-t) + neonPalette[next]*t

	pulse := math.Sin(ctx.HueOffset*0.1) * 5
	return Result{Foreground: hsl.ToRGB(hue, 100, 60+pulse)}
}
