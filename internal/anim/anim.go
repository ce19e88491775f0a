// Package anim implements the per-cell animation styles used by animated
// banners. Every style is a pure function of a Context: identical contexts
// always produce identical results, which lets the renderer call styles from
// any goroutine and lets a frame be recomputed at any phase value.
package anim

import (
	"fmt"
	"sort"

	"github.com/san-kum/marquee/internal/hsl"
)

// Context carries everything a style may inspect for one cell of one frame.
type Context struct {
	// HueOffset is the time-derived phase in [0,360] driving the animation.
	HueOffset float64
	// CharIndex is the index among non-whitespace characters; TotalChars is
	// their count across the whole grid.
	CharIndex  int
	TotalChars int
	// Row/column position within the grid.
	RowIndex  int
	TotalRows int
	ColIndex  int
	TotalCols int
	// Char is the source character being rendered.
	Char rune
}

// Result is the styling decision for a single cell.
type Result struct {
	Foreground hsl.RGB
	// Background is nil for styles that leave the cell background untouched.
	Background *hsl.RGB
	// Replacement, when non-zero, substitutes the source character.
	Replacement rune
}

// Animation renders one cell. Implementations hold no mutable state.
type Animation interface {
	RenderCell(ctx Context) Result
}

// BackgroundFiller is implemented by styles that paint whitespace cells.
// The renderer queries it for cells whose foreground is irrelevant.
type BackgroundFiller interface {
	WhitespaceBackground(ctx Context) *hsl.RGB
}

// Style identifies one of the built-in animation styles.
type Style string

const (
	StyleRainbow      Style = "rainbow"
	StyleFlash        Style = "flash"
	StyleWave         Style = "wave"
	StyleIris         Style = "iris"
	StylePlasma       Style = "plasma"
	StyleScanner      Style = "scanner"
	StyleNeon         Style = "neon"
	StyleFire         Style = "fire"
	StyleMatrix       Style = "matrix"
	StyleGlitch       Style = "glitch"
	StyleKaleidoscope Style = "kaleidoscope"
	StyleSepia        Style = "sepia"
	StylePrism        Style = "prism"
	StyleBreathe      Style = "breathe"
	StyleAurora       Style = "aurora"
	StyleCRT          Style = "crt"
	StyleTypewriter   Style = "typewriter"
)

var registry = map[Style]Animation{
	StyleRainbow:      Rainbow{},
	StyleFlash:        Flash{},
	StyleWave:         Wave{},
	StyleIris:         Iris{},
	StylePlasma:       Plasma{},
	StyleScanner:      Scanner{},
	StyleNeon:         Neon{},
	StyleFire:         Fire{},
	StyleMatrix:       Matrix{},
	StyleGlitch:       Glitch{},
	StyleKaleidoscope: Kaleidoscope{},
	StyleSepia:        Sepia{},
	StylePrism:        Prism{},
	StyleBreathe:      Breathe{},
	StyleAurora:       Aurora{},
	StyleCRT:          CRT{},
	StyleTypewriter:   Typewriter{},
}

// For returns the implementation of a style. Unknown styles fall back to
// rainbow so a stale config value degrades instead of crashing a render.
func For(style Style) Animation {
	if a, ok := registry[style]; ok {
		return a
	}
	return Rainbow{}
}

// ParseStyle validates a user-supplied style name.
func ParseStyle(name string) (Style, error) {
	s := Style(name)
	if _, ok := registry[s]; !ok {
		return "", fmt.Errorf("unknown animation style %q", name)
	}
	return s, nil
}

// Styles lists all registered styles in name order.
func Styles() []Style {
	out := make([]Style, 0, len(registry))
	for s := range registry {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
