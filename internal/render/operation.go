package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Alignment positions a block line within its block length.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// ParseAlignment maps a config string to an Alignment; anything
// unrecognized centers.
func ParseAlignment(s string) Alignment {
	switch s {
	case "left":
		return AlignLeft
	case "right":
		return AlignRight
	default:
		return AlignCenter
	}
}

func (a Alignment) position() lipgloss.Position {
	switch a {
	case AlignLeft:
		return lipgloss.Left
	case AlignRight:
		return lipgloss.Right
	default:
		return lipgloss.Center
	}
}

// Text is one styled run of characters.
type Text struct {
	Content string
	Style   lipgloss.Style
}

// Line is a sequence of styled runs forming one row.
type Line []Text

// Render concatenates the runs with their styles applied.
func (l Line) Render() string {
	var b strings.Builder
	for _, t := range l {
		b.WriteString(t.Style.Render(t.Content))
	}
	return b.String()
}

// Operation is one instruction for the render pipeline.
type Operation interface {
	isOperation()
}

// BlockLine renders one row of styled text within a block of the given
// length, positioned by its alignment.
type BlockLine struct {
	Text        Line
	BlockLength int
	Alignment   Alignment
}

// LineBreak advances the pipeline to the next row.
type LineBreak struct{}

func (BlockLine) isOperation() {}
func (LineBreak) isOperation() {}

// Frame executes a sequence of operations into a printable string. This is
// the minimal pipeline consumer used by the TUI front end.
func Frame(ops []Operation) string {
	var b strings.Builder
	for _, op := range ops {
		switch op := op.(type) {
		case BlockLine:
			content := op.Text.Render()
			if op.BlockLength > 0 {
				content = lipgloss.PlaceHorizontal(op.BlockLength, op.Alignment.position(), content)
			}
			b.WriteString(content)
		case LineBreak:
			b.WriteByte('\n')
		}
	}
	return b.String()
}
