package anim

import (
	"math"

	"github.com/san-kum/marquee/internal/hsl"
)

// Kaleidoscope builds a six-fold symmetric pattern in polar coordinates
// around the grid center: a dark desaturated background layer and a bright
// complementary foreground. The animation has three phases: active
// (background painted), fade-out (foreground interpolates toward a plain
// rainbow while the background dims to nothing), and complete (plain
// rainbow, no background).
type Kaleidoscope struct{}

const (
	kaleidoscopeDuration = 360.0
	kaleidoscopeFadeout  = 320.0
)

func (Kaleidoscope) RenderCell(ctx Context) Result {
	if ctx.HueOffset > kaleidoscopeDuration {
		baseHue := float64(ctx.CharIndex) / float64(ctx.TotalChars) * 360
		return Result{Foreground: hsl.ToRGB(baseHue, 85, 75)}
	}

	centerX := float64(ctx.TotalChars) / 2
	x := float64(ctx.CharIndex)
	p := kaleidoscopePattern(ctx, x, centerX)

	// Foreground: complementary colors, 180 degrees from the background.
	fgPattern := math.Sin(p.radialDist*5+ctx.HueOffset*0.1)*0.5 +
		math.Cos(p.angle*0.3-ctx.HueOffset*0.3)*0.5

	var fgHue, fgSaturation float64
	if ctx.HueOffset < kaleidoscopeFadeout {
		fgHue = math.Mod(math.Mod(p.bgHue+180, 360)+fgPattern*60, 360)
		fgSaturation = clampf(88+math.Abs(fgPattern)*12, 88, 100)
	} else {
		// Fade toward a plain rainbow.
		targetHue := float64(ctx.CharIndex) / float64(ctx.TotalChars) * 360
		currentHue := math.Mod(math.Mod(p.bgHue+180, 360)+fgPattern*60, 360)
		inverse := 1 - p.fade
		fgHue = currentHue*p.fade + targetHue*inverse
		fgSaturation = 100*p.fade + 85*inverse
	}

	fgLightness := clampf(75+p.radialDist*8+math.Abs(fgPattern)*6, 75, 92)
	if math.Abs(p.radialWave+p.sectorPattern) > 0.94 {
		fgLightness += 6 * p.fade // sparkle
	}
	fg := hsl.ToRGB(fgHue, fgSaturation, clampf(fgLightness, 75, 95))

	if p.bgLightness > 0.5 {
		bg := hsl.ToRGB(p.bgHue, p.bgSaturation, p.bgLightness)
		return Result{Foreground: fg, Background: &bg}
	}
	return Result{Foreground: fg}
}

// WhitespaceBackground paints blank cells so the pattern covers the whole
// grid; whitespace uses column coordinates since it has no character index.
func (Kaleidoscope) WhitespaceBackground(ctx Context) *hsl.RGB {
	if ctx.HueOffset > kaleidoscopeDuration {
		return nil
	}
	centerX := float64(ctx.TotalCols) / 2
	p := kaleidoscopePattern(ctx, float64(ctx.ColIndex), centerX)
	if p.bgLightness <= 0.5 {
		return nil
	}
	bg := hsl.ToRGB(p.bgHue, p.bgSaturation, p.bgLightness)
	return &bg
}

type kaleidoscopeField struct {
	fade          float64
	radialDist    float64
	angle         float64
	radialWave    float64
	sectorPattern float64
	bgHue         float64
	bgSaturation  float64
	bgLightness   float64
}

func kaleidoscopePattern(ctx Context, x, centerX float64) kaleidoscopeField {
	fade := 1.0
	if ctx.HueOffset >= kaleidoscopeFadeout {
		fade = 1 - (ctx.HueOffset-kaleidoscopeFadeout)/(kaleidoscopeDuration-kaleidoscopeFadeout)
	}

	centerY := float64(ctx.TotalRows) / 2
	distX := math.Abs(x - centerX)
	distY := math.Abs(float64(ctx.RowIndex) - centerY)
	radialDist := math.Sqrt(distX*distX+distY*distY) / math.Max(centerX, 1)

	angle := math.Atan2(float64(ctx.RowIndex)-centerY, x-centerX)*180/math.Pi + 180

	radialWave := math.Sin(radialDist*6 - ctx.HueOffset*0.12)
	const sectorCount = 6.0 // six-fold symmetry
	sectorPattern := math.Sin((angle + ctx.HueOffset*2) * sectorCount / 180)

	complexity := radialWave*0.6 + sectorPattern*0.4

	bgHue := math.Mod(math.Mod(ctx.HueOffset*2.5, 360)+complexity*120, 360)
	bgSaturation := clampf(60+math.Abs(complexity)*20, 60, 80)
	bgLightness := clampf(8+radialDist*6+math.Abs(complexity)*6, 8, 20) * fade

	return kaleidoscopeField{
		fade:          fade,
		radialDist:    radialDist,
		angle:         angle,
		radialWave:    radialWave,
		sectorPattern: sectorPattern,
		bgHue:         bgHue,
		bgSaturation:  bgSaturation,
		bgLightness:   bgLightness,
	}
}
