package anim

import (
	"math"

	"github.com/san-kum/marquee/internal/hsl"
)

// Glitch flickers cells between cyan, magenta, and random vibrant colors
// while corrupting characters, then settles into a stable green once the
// glitch window has passed.
type Glitch struct{}

func (Glitch) RenderCell(ctx Context) Result {
	const glitchDuration = 300.0

	if ctx.HueOffset > glitchDuration {
		// Terminal recovered: clean green text.
		return Result{Foreground: hsl.ToRGB(120, 60, 55)}
	}

	glitchSeed := math.Sin(float64(ctx.CharIndex)*12.9898+ctx.HueOffset*78.233) * 43758.5453

	var hue float64
	switch int(frac(glitchSeed) * 3) {
	case 0:
		hue = 180 // cyan
	case 1:
		hue = 300 // magenta
	default:
		hue = frac(glitchSeed) * 360
	}

	lightness := 35 + frac(glitchSeed)*40
	saturation := 85 + frac(glitchSeed*1.234)*15

	charSeed := math.Sin(float64(ctx.CharIndex)*7.321+ctx.HueOffset*0.5) * 12345.6789

	// Substitution probability ramps down as the window closes.
	intensity := 1 - math.Min(ctx.HueOffset/glitchDuration, 1)
	threshold := 0.65 - intensity*0.3

	var replacement rune
	if frac(charSeed) > threshold {
		replacement = glitchGlyph(ctx.Char, charSeed)
	}

	return Result{
		Foreground:  hsl.ToRGB(hue, saturation, lightness),
		Replacement: replacement,
	}
}
