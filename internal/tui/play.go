package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/marquee/internal/cast"
	"github.com/san-kum/marquee/internal/render"
)

// PlayModel replays a terminal recording, polling the player at the render
// cadence and redrawing whatever frame the last poll produced.
type PlayModel struct {
	path     string
	player   *cast.Player
	pollable render.Pollable
	done     bool
}

func NewPlayModel(path string, player *cast.Player) PlayModel {
	return PlayModel{
		path:     path,
		player:   player,
		pollable: player.Pollable(),
	}
}

func (m PlayModel) Init() tea.Cmd {
	return tick()
}

func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case TickMsg:
		if !m.done && m.pollable.Poll() == render.Done {
			m.done = true
		}
		return m, tick()
	}
	return m, nil
}

func (m PlayModel) View() string {
	current, total := m.player.Progress()

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("marquee · %s", m.path)))
	b.WriteString("\n")
	b.WriteString(render.Frame(m.player.RenderOperations()))
	b.WriteString("\n")
	status := fmt.Sprintf("%5.1fs / %.1fs", current, total)
	if m.done {
		status += "  (finished)"
	}
	b.WriteString(statusStyle.Render(status))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("q: quit"))
	return b.String()
}
