package cast

import (
	"github.com/charmbracelet/x/ansi"
)

// screen is a minimal terminal emulator for replaying recorded output. It
// implements only printable placement, line feed, carriage return, and
// backspace. Every other escape sequence is decoded so its bytes are
// consumed, but produces no visible effect. There is no wraparound and no
// scrolling: the cursor clamps at the screen edges.
type screen struct {
	lines  [][]rune
	row    int
	col    int
	width  int
	height int
}

func newScreen(width, height int) *screen {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &screen{
		lines:  make([][]rune, height),
		width:  width,
		height: height,
	}
}

// feed decodes a raw byte stream into screen updates.
func (s *screen) feed(b []byte) {
	p := ansi.GetParser()
	defer ansi.PutParser(p)

	var state byte
	for len(b) > 0 {
		seq, width, n, newState := ansi.DecodeSequence(b, state, p)
		if n == 0 {
			break
		}
		switch {
		case width > 0:
			for _, r := range string(seq) {
				s.put(r)
			}
		case len(seq) == 1:
			s.execute(seq[0])
		}
		b = b[n:]
		state = newState
	}
}

// put places a printable character at the cursor and advances it, clamped
// at the right edge.
func (s *screen) put(r rune) {
	if s.row >= s.height {
		return
	}
	for len(s.lines[s.row]) <= s.col {
		s.lines[s.row] = append(s.lines[s.row], ' ')
	}
	s.lines[s.row][s.col] = r
	if s.col < s.width-1 {
		s.col++
	}
}

func (s *screen) execute(b byte) {
	switch b {
	case '\n':
		if s.row < s.height-1 {
			s.row++
		}
	case '\r':
		s.col = 0
	case '\b':
		if s.col > 0 {
			s.col--
		}
	}
}

// render returns the screen rows as strings, one per line of the declared
// height.
func (s *screen) render() []string {
	out := make([]string, s.height)
	for i, line := range s.lines {
		out[i] = string(line)
	}
	return out
}
