package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/marquee/internal/anim"
	"github.com/san-kum/marquee/internal/banner"
	"github.com/san-kum/marquee/internal/render"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	frameStyle  = lipgloss.NewStyle().Padding(1, 2)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// PreviewModel cycles animated banners for a list of words, one visible at
// a time, navigated with the arrow keys.
type PreviewModel struct {
	words     []string
	multi     *banner.MultiBanner
	selection *banner.Selection
	pollable  render.Pollable
	style     anim.Style
	err       error
}

// NewPreviewModel generates one banner animation per word. A font or
// generation failure degrades to an error view instead of aborting.
func NewPreviewModel(words []string, font string, style anim.Style, loop bool, cycle time.Duration, alignment render.Alignment) PreviewModel {
	m := PreviewModel{words: words, style: style}

	gen, err := banner.NewGenerator(font)
	if err != nil {
		m.err = err
		return m
	}

	animations := make([]*banner.Animation, 0, len(words))
	for _, word := range words {
		lines, err := gen.Generate(word)
		if err != nil {
			m.err = err
			return m
		}
		animations = append(animations, banner.NewAnimation(lines, banner.BlockLength(lines), alignment, style, loop, cycle))
	}

	m.selection = banner.NewSelection(len(animations))
	m.multi = banner.NewMultiBanner(animations, m.selection)
	m.pollable = m.multi.Pollable()
	return m
}

func (m PreviewModel) Init() tea.Cmd {
	return tick()
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			if m.selection != nil {
				m.selection.Retreat()
			}
		case "right", "l":
			if m.selection != nil {
				m.selection.Advance()
			}
		case "home", "r":
			if m.selection != nil {
				m.selection.Reset()
			}
		case "end", "e":
			if m.selection != nil {
				m.selection.ApplyAll()
			}
		}
	case TickMsg:
		if m.pollable != nil {
			m.pollable.Poll()
		}
		return m, tick()
	}
	return m, nil
}

func (m PreviewModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("banner error: %v", m.err)) + "\n" +
			helpStyle.Render("q: quit")
	}

	current, total := m.selection.Position()

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("marquee · %s", m.style)))
	b.WriteString("\n")
	b.WriteString(frameStyle.Render(render.Frame(m.multi.RenderOperations())))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(fmt.Sprintf("%s  (%d/%d)", m.words[current], current+1, total)))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("←/→: switch  home: first  end: last  q: quit"))
	return b.String()
}
