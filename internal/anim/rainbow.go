package anim

import "github.com/san-kum/marquee/internal/hsl"

// Rainbow cycles the full spectrum across characters, shifted by phase.
type Rainbow struct{}

func (Rainbow) RenderCell(ctx Context) Result {
	baseHue := float64(ctx.CharIndex) / float64(ctx.TotalChars) * 360
	return Result{Foreground: hsl.ToRGB(baseHue+ctx.HueOffset, 100, 50)}
}
