package banner

import (
	"sync"
	"time"
	"unicode"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/marquee/internal/anim"
	"github.com/san-kum/marquee/internal/render"
)

// Animation renders an ASCII-art grid with a time-driven style. Its run
// state is shared between the scheduler (through the pollable, the only
// writer) and the renderer (the only reader), guarded by one mutex.
type Animation struct {
	lines       []string
	blockLength int
	alignment   render.Alignment
	style       anim.Style
	loop        bool
	cycle       time.Duration

	mu    sync.Mutex
	state animState

	// now is swapped out by tests.
	now func() time.Time
}

var (
	_ render.Async              = (*Animation)(nil)
	_ render.OperationsRenderer = (*Animation)(nil)
)

type animState struct {
	started   bool
	start     time.Time
	hueOffset float64
	completed bool
}

// NewAnimation builds a banner animation. The cycle duration is floored at
// one millisecond to keep the progress division well defined.
func NewAnimation(lines []string, blockLength int, alignment render.Alignment, style anim.Style, loop bool, cycle time.Duration) *Animation {
	if cycle < time.Millisecond {
		cycle = time.Millisecond
	}
	return &Animation{
		lines:       lines,
		blockLength: blockLength,
		alignment:   alignment,
		style:       style,
		loop:        loop,
		cycle:       cycle,
		now:         time.Now,
	}
}

// BlockLength returns the width of the widest row, the natural block length
// for a banner grid.
func BlockLength(lines []string) int {
	max := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > max {
			max = n
		}
	}
	return max
}

// RenderOperations produces the frame for the most recently polled phase.
func (a *Animation) RenderOperations() []render.Operation {
	a.mu.Lock()
	hue := a.state.hueOffset
	a.mu.Unlock()
	return a.renderWithOffset(hue)
}

func (a *Animation) renderWithOffset(hueOffset float64) []render.Operation {
	totalChars := 0
	for _, line := range a.lines {
		for _, ch := range line {
			if !unicode.IsSpace(ch) {
				totalChars++
			}
		}
	}
	if totalChars == 0 {
		totalChars = 1
	}

	animation := anim.For(a.style)
	filler, hasFiller := animation.(anim.BackgroundFiller)

	totalRows := len(a.lines)
	charIndex := 0
	ops := make([]render.Operation, 0, 2*totalRows)

	for rowIndex, line := range a.lines {
		runes := []rune(line)
		totalCols := len(runes)
		row := make(render.Line, 0, totalCols)

		for colIndex, ch := range runes {
			ctx := anim.Context{
				HueOffset:  hueOffset,
				CharIndex:  charIndex,
				TotalChars: totalChars,
				RowIndex:   rowIndex,
				TotalRows:  totalRows,
				ColIndex:   colIndex,
				TotalCols:  totalCols,
				Char:       ch,
			}

			style := lipgloss.NewStyle()
			display := ch
			if unicode.IsSpace(ch) {
				// Foreground is irrelevant for whitespace; only styles that
				// define a background paint anything here.
				if hasFiller {
					if bg := filler.WhitespaceBackground(ctx); bg != nil {
						style = style.Background(lipgloss.Color(bg.Hex()))
					}
				}
			} else {
				result := animation.RenderCell(ctx)
				style = style.Foreground(lipgloss.Color(result.Foreground.Hex()))
				if result.Background != nil {
					style = style.Background(lipgloss.Color(result.Background.Hex()))
				}
				if result.Replacement != 0 {
					display = result.Replacement
				}
				charIndex++
			}

			row = append(row, render.Text{Content: string(display), Style: style})
		}

		ops = append(ops, render.BlockLine{
			Text:        row,
			BlockLength: a.blockLength,
			Alignment:   a.alignment,
		})
		ops = append(ops, render.LineBreak{})
	}

	return ops
}

// Pollable returns the scheduler handle sharing this animation's state.
func (a *Animation) Pollable() render.Pollable {
	return &animationPollable{owner: a}
}

// StartPolicy: looping animations never terminate, so their start timing is
// irrelevant and they poll from session start. One-shot animations wait
// until they are viewed.
func (a *Animation) StartPolicy() render.StartPolicy {
	if a.loop {
		return render.Automatic
	}
	return render.OnDemand
}

type animationPollable struct {
	owner *Animation
}

func (p *animationPollable) Poll() render.State {
	a := p.owner
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.state.started {
		a.state.started = true
		a.state.start = a.now()
		a.state.hueOffset = 0
		return render.Modified
	}

	elapsed := a.now().Sub(a.state.start)

	if !a.loop && elapsed >= a.cycle {
		if !a.state.completed {
			a.state.hueOffset = 360
			a.state.completed = true
			return render.Done
		}
		return render.Unmodified
	}

	var progress float64
	if a.loop {
		progress = float64(elapsed%a.cycle) / float64(a.cycle)
	} else {
		progress = float64(elapsed) / float64(a.cycle)
		if progress > 1 {
			progress = 1
		}
	}
	a.state.hueOffset = progress * 360

	return render.Modified
}
