package cast

import (
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/marquee/internal/render"
)

// minSpeed keeps the elapsed-time scaling away from zero.
const minSpeed = 0.1

// Player replays a recording through the pollable contract. The scheduler
// advances playback time by polling; rendering reconstructs the frame at
// the most recently polled time and wraps it in a box-drawing border.
type Player struct {
	recording   *Recording
	blockLength int
	alignment   render.Alignment
	loop        bool
	speed       float64
	policy      render.StartPolicy

	mu    sync.Mutex
	state playbackState

	// now is swapped out by tests.
	now func() time.Time
}

var _ render.Async = (*Player)(nil)

type playbackState struct {
	started   bool
	start     time.Time
	current   float64
	completed bool
}

func NewPlayer(recording *Recording, blockLength int, alignment render.Alignment, loop bool, speed float64, policy render.StartPolicy) *Player {
	if speed < minSpeed {
		speed = minSpeed
	}
	return &Player{
		recording:   recording,
		blockLength: blockLength,
		alignment:   alignment,
		loop:        loop,
		speed:       speed,
		policy:      policy,
		now:         time.Now,
	}
}

// Progress reports the current playback position and total duration in
// seconds.
func (p *Player) Progress() (current, total float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state.current, p.recording.Duration()
}

// RenderOperations renders the frame for the most recently polled time.
func (p *Player) RenderOperations() []render.Operation {
	p.mu.Lock()
	current := p.state.current
	p.mu.Unlock()
	return p.renderFrame(current)
}

func (p *Player) renderFrame(timestamp float64) []render.Operation {
	lines := p.recording.ScreenAt(timestamp)
	plain := lipgloss.NewStyle()
	horizontal := strings.Repeat("─", p.recording.Width())

	ops := make([]render.Operation, 0, 2*(len(lines)+2))
	ops = append(ops, p.blockLine("┌"+horizontal+"┐", plain), render.LineBreak{})
	for _, line := range lines {
		ops = append(ops, p.blockLine("│"+line+"│", plain), render.LineBreak{})
	}
	ops = append(ops, p.blockLine("└"+horizontal+"┘", plain), render.LineBreak{})
	return ops
}

func (p *Player) blockLine(content string, style lipgloss.Style) render.Operation {
	return render.BlockLine{
		Text:        render.Line{{Content: content, Style: style}},
		BlockLength: p.blockLength,
		Alignment:   p.alignment,
	}
}

func (p *Player) Pollable() render.Pollable {
	return &playbackPollable{owner: p}
}

func (p *Player) StartPolicy() render.StartPolicy {
	return p.policy
}

type playbackPollable struct {
	owner *Player
}

func (pp *playbackPollable) Poll() render.State {
	p := pp.owner
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.state.started {
		p.state.started = true
		p.state.start = p.now()
		p.state.current = 0
		return render.Modified
	}

	elapsed := p.now().Sub(p.state.start).Seconds() * p.speed
	duration := p.recording.Duration()

	if elapsed >= duration {
		if p.loop {
			p.state.start = p.now()
			p.state.current = 0
			return render.Modified
		}
		if !p.state.completed {
			p.state.current = duration
			p.state.completed = true
			return render.Done
		}
		return render.Unmodified
	}

	p.state.current = elapsed
	return render.Modified
}
