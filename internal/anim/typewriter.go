package anim

import (
	"math"

	"github.com/san-kum/marquee/internal/hsl"
)

// Typewriter reveals characters left to right: revealed cells get warm
// white ink, the cell being typed shows a block caret, and unrevealed cells
// stay blank. After typing plus a short settle window everything is ink.
type Typewriter struct{}

const (
	typingDuration = 320.0
	settleTime     = 40.0
)

func (Typewriter) RenderCell(ctx Context) Result {
	ink := hsl.ToRGB(40, 20, 85)

	if ctx.HueOffset > typingDuration+settleTime {
		return Result{Foreground: ink}
	}

	progress := clampf(ctx.HueOffset/typingDuration, 0, 1)
	revealCount := int(math.Floor(progress * float64(ctx.TotalChars)))
	if revealCount > ctx.TotalChars {
		revealCount = ctx.TotalChars
	}

	switch {
	case ctx.CharIndex < revealCount:
		return Result{Foreground: ink}
	case ctx.CharIndex == revealCount && revealCount < ctx.TotalChars:
		// Being typed right now: block caret in caret blue.
		return Result{Foreground: hsl.ToRGB(200, 85, 65), Replacement: '▌'}
	case revealCount >= ctx.TotalChars:
		// Everything revealed, still settling.
		return Result{Foreground: ink}
	default:
		// Not yet revealed: no ink.
		return Result{Foreground: hsl.ToRGB(0, 0, 0), Replacement: ' '}
	}
}
