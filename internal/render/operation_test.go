package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestFrame_LinesAndBreaks(t *testing.T) {
	ops := []Operation{
		BlockLine{Text: Line{{Content: "abc"}}},
		LineBreak{},
		BlockLine{Text: Line{{Content: "de"}}},
		LineBreak{},
	}
	got := Frame(ops)
	if got != "abc\nde\n" {
		t.Errorf("Frame() = %q, want %q", got, "abc\nde\n")
	}
}

func TestFrame_AlignmentPadding(t *testing.T) {
	tests := []struct {
		name  string
		align Alignment
		want  string
	}{
		{"left", AlignLeft, "ab        "},
		{"center", AlignCenter, "    ab    "},
		{"right", AlignRight, "        ab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ops := []Operation{BlockLine{
				Text:        Line{{Content: "ab"}},
				BlockLength: 10,
				Alignment:   tt.align,
			}}
			if got := Frame(ops); got != tt.want {
				t.Errorf("Frame() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLine_RenderConcatenatesRuns(t *testing.T) {
	l := Line{
		{Content: "a", Style: lipgloss.NewStyle()},
		{Content: "b", Style: lipgloss.NewStyle()},
	}
	if got := l.Render(); !strings.Contains(got, "a") || !strings.Contains(got, "b") {
		t.Errorf("Render() = %q, missing runs", got)
	}
}

func TestParseAlignment(t *testing.T) {
	if ParseAlignment("left") != AlignLeft || ParseAlignment("right") != AlignRight {
		t.Error("explicit alignments should parse")
	}
	if ParseAlignment("weird") != AlignCenter {
		t.Error("unknown alignment should default to center")
	}
}

func TestState_String(t *testing.T) {
	if Modified.String() != "modified" || Done.String() != "done" || Unmodified.String() != "unmodified" {
		t.Error("State strings are wrong")
	}
}
