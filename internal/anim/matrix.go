package anim

import (
	"math"

	"github.com/san-kum/marquee/internal/hsl"
)

// Matrix renders digital rain: a bright cascade front falls down the rows,
// revealing the real text behind a curtain of katakana glyphs. After the
// cascade plus a short settle window the grid shows the plain text in
// stable green.
type Matrix struct{}

func (Matrix) RenderCell(ctx Context) Result {
	const hue = 120.0 // green base

	charSeed := math.Sin(float64(ctx.CharIndex)*7.919+float64(ctx.RowIndex)*3.141) * 100
	charVariation := frac(charSeed)

	// The cascade front advances one row per 8 units of phase.
	timeOffset := ctx.HueOffset / 8
	cascadePos := float64(ctx.RowIndex) - timeOffset

	complete := timeOffset > float64(ctx.TotalRows)+3
	cascadePassed := timeOffset > float64(ctx.RowIndex)
	distFromFront := math.Abs(cascadePos)

	var saturation, lightness float64
	switch {
	case complete:
		saturation, lightness = 90, 55
	case distFromFront < 1 && !cascadePassed:
		// Leading edge: bright white-green.
		saturation, lightness = 40+charVariation*20, 75+charVariation*15
	case distFromFront < 3 && !cascadePassed:
		// Bright green trail.
		saturation, lightness = 80+charVariation*20, 55+charVariation*15
	case cascadePassed:
		// Revealed and stable.
		saturation, lightness = 90, 50+charVariation*10
	default:
		// Not yet reached: dark green.
		saturation, lightness = 70, 15+charVariation*10
	}

	var replacement rune
	switch {
	case complete:
		// Final state shows the real text, no substitutions.
	case cascadePassed:
		// Rare post-cascade glitch briefly flashes a rain glyph.
		if math.Sin(charSeed*37.1+ctx.HueOffset*0.03) > 0.95 {
			replacement = matrixGlyph(charSeed + ctx.HueOffset*10)
		}
	default:
		// Ahead of the cascade everything is rain.
		replacement = matrixGlyph(charSeed + ctx.HueOffset*0.5)
	}

	return Result{
		Foreground:  hsl.ToRGB(hue, saturation, lightness),
		Replacement: replacement,
	}
}
