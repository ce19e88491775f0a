package banner

import (
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/marquee/internal/render"
)

// Selection is the shared index choosing which of several banners is
// active. Navigation advances it; rendering and polling read it. Advance
// and Retreat saturate at the ends, they never wrap.
type Selection struct {
	mu      sync.Mutex
	current int
	total   int
}

func NewSelection(total int) *Selection {
	return &Selection{total: total}
}

// Advance moves to the next entry; it reports false at the last index.
func (s *Selection) Advance() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current >= s.total-1 {
		return false
	}
	s.current++
	return true
}

// Retreat moves to the previous entry; it reports false at index zero.
func (s *Selection) Retreat() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == 0 {
		return false
	}
	s.current--
	return true
}

// Reset jumps to the first entry.
func (s *Selection) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = 0
}

// ApplyAll jumps to the last entry.
func (s *Selection) ApplyAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = s.total - 1
}

// Position returns the current index and total count.
func (s *Selection) Position() (current, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, s.total
}

// MultiBanner cycles a shared selection across independent banner
// animations. Only the selected entry is rendered and polled; unselected
// entries keep their own paused clocks and resume from their stored start
// when reselected.
type MultiBanner struct {
	animations []*Animation
	selection  *Selection
}

var (
	_ render.Async              = (*MultiBanner)(nil)
	_ render.OperationsRenderer = (*MultiBannerStatic)(nil)
)

func NewMultiBanner(animations []*Animation, selection *Selection) *MultiBanner {
	return &MultiBanner{animations: animations, selection: selection}
}

func (m *MultiBanner) RenderOperations() []render.Operation {
	current, _ := m.selection.Position()
	if current < 0 || current >= len(m.animations) {
		return nil
	}
	return m.animations[current].RenderOperations()
}

func (m *MultiBanner) Pollable() render.Pollable {
	pollables := make([]render.Pollable, len(m.animations))
	for i, a := range m.animations {
		pollables[i] = a.Pollable()
	}
	return &multiPollable{pollables: pollables, selection: m.selection}
}

func (m *MultiBanner) StartPolicy() render.StartPolicy {
	if len(m.animations) > 0 {
		return m.animations[0].StartPolicy()
	}
	return render.OnDemand
}

type multiPollable struct {
	pollables []render.Pollable
	selection *Selection
}

func (p *multiPollable) Poll() render.State {
	current, _ := p.selection.Position()
	if current < 0 || current >= len(p.pollables) {
		return render.Unmodified
	}
	return p.pollables[current].Poll()
}

// MultiBannerStatic is the non-animated variant: pre-generated grids with
// plain styling, cycled by the same shared selection. Each grid keeps its
// own block length so every word centers on its own width.
type MultiBannerStatic struct {
	banners      [][]string
	blockLengths []int
	alignment    render.Alignment
	selection    *Selection
}

func NewMultiBannerStatic(banners [][]string, blockLengths []int, alignment render.Alignment, selection *Selection) *MultiBannerStatic {
	return &MultiBannerStatic{
		banners:      banners,
		blockLengths: blockLengths,
		alignment:    alignment,
		selection:    selection,
	}
}

func (m *MultiBannerStatic) RenderOperations() []render.Operation {
	current, _ := m.selection.Position()
	if current < 0 || current >= len(m.banners) {
		return nil
	}
	lines := m.banners[current]
	blockLength := 0
	if current < len(m.blockLengths) {
		blockLength = m.blockLengths[current]
	}

	plain := lipgloss.NewStyle()
	ops := make([]render.Operation, 0, 2*len(lines))
	for _, line := range lines {
		ops = append(ops, render.BlockLine{
			Text:        render.Line{{Content: line, Style: plain}},
			BlockLength: blockLength,
			Alignment:   m.alignment,
		})
		ops = append(ops, render.LineBreak{})
	}
	return ops
}
