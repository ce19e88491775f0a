package anim

import "github.com/san-kum/marquee/internal/hsl"

// Flash paints every character the same color, cycling the hue with time.
type Flash struct{}

func (Flash) RenderCell(ctx Context) Result {
	return Result{Foreground: hsl.ToRGB(ctx.HueOffset, 100, 50)}
}
