package cast

import (
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/marquee/internal/render"
)

const helloCast = `{"version": 2, "width": 80, "height": 24}
[0.0, "o", "Hello"]
[1.0, "o", " World"]
`

var _ = Describe("Parse", func() {
	It("parses a simple recording", func() {
		rec, err := Parse(helloCast)
		Expect(err).NotTo(HaveOccurred())
		Expect(rec.Width()).To(Equal(80))
		Expect(rec.Height()).To(Equal(24))
		Expect(rec.Events()).To(HaveLen(2))
		Expect(rec.Duration()).To(Equal(1.0))
	})

	It("defaults width and height when the header omits them", func() {
		rec, err := Parse(`{"version": 2}` + "\n")
		Expect(err).NotTo(HaveOccurred())
		Expect(rec.Width()).To(Equal(80))
		Expect(rec.Height()).To(Equal(24))
	})

	It("rejects unsupported versions", func() {
		_, err := Parse(`{"version": 1, "width": 80, "height": 24}` + "\n")
		var formatErr *FormatError
		Expect(err).To(BeAssignableToTypeOf(formatErr))
		Expect(err.Error()).To(ContainSubstring("version"))
	})

	It("rejects an empty file", func() {
		_, err := Parse("")
		Expect(err).To(HaveOccurred())
	})

	It("reports the line number of a malformed event", func() {
		content := `{"version": 2}
[0.0, "o", "fine"]
not json at all
`
		_, err := Parse(content)
		Expect(err).To(HaveOccurred())
		formatErr, ok := err.(*FormatError)
		Expect(ok).To(BeTrue())
		Expect(formatErr.Line).To(Equal(3))
	})

	It("keeps only output events", func() {
		content := `{"version": 2}
[0.0, "o", "out"]
[0.5, "i", "typed"]
[1.5, "o", "more"]
`
		rec, err := Parse(content)
		Expect(err).NotTo(HaveOccurred())
		Expect(rec.Events()).To(HaveLen(2))
		Expect(rec.Duration()).To(Equal(1.5))
	})

	It("skips blank lines", func() {
		content := "{\"version\": 2}\n\n[0.0, \"o\", \"x\"]\n\n"
		rec, err := Parse(content)
		Expect(err).NotTo(HaveOccurred())
		Expect(rec.Events()).To(HaveLen(1))
	})

	It("reports zero duration with no retained events", func() {
		rec, err := Parse(`{"version": 2}` + "\n")
		Expect(err).NotTo(HaveOccurred())
		Expect(rec.Duration()).To(BeZero())
	})
})

var _ = Describe("ScreenAt", func() {
	It("reconstructs partial output at a mid-recording timestamp", func() {
		rec, err := Parse(helloCast)
		Expect(err).NotTo(HaveOccurred())
		lines := rec.ScreenAt(0.5)
		Expect(lines[0]).To(HavePrefix("Hello"))
		Expect(lines[0]).NotTo(ContainSubstring("World"))
	})

	It("reconstructs full output at the final timestamp", func() {
		rec, err := Parse(helloCast)
		Expect(err).NotTo(HaveOccurred())
		Expect(rec.ScreenAt(1.0)[0]).To(HavePrefix("Hello World"))
	})

	It("honors carriage return by overwriting from column zero", func() {
		rec, err := Parse(`{"version": 2}
[0.0, "o", "aaaa\rbb"]
`)
		Expect(err).NotTo(HaveOccurred())
		Expect(rec.ScreenAt(1.0)[0]).To(Equal("bbaa"))
	})

	It("moves down on line feed without clearing the column", func() {
		rec, err := Parse(`{"version": 2, "width": 10, "height": 3}
[0.0, "o", "ab\r\ncd"]
`)
		Expect(err).NotTo(HaveOccurred())
		lines := rec.ScreenAt(1.0)
		Expect(lines[0]).To(Equal("ab"))
		Expect(lines[1]).To(Equal("cd"))
	})

	It("backspaces the cursor without deleting", func() {
		rec, err := Parse(`{"version": 2}
[0.0, "o", "ab\bc"]
`)
		Expect(err).NotTo(HaveOccurred())
		Expect(rec.ScreenAt(1.0)[0]).To(Equal("ac"))
	})

	It("clamps the cursor at the right edge instead of wrapping", func() {
		rec, err := Parse(`{"version": 2, "width": 3, "height": 2}
[0.0, "o", "abcde"]
`)
		Expect(err).NotTo(HaveOccurred())
		lines := rec.ScreenAt(1.0)
		// Past the edge every character overwrites the last column.
		Expect(lines[0]).To(Equal("abe"))
		Expect(lines[1]).To(Equal(""))
	})

	It("clamps the cursor at the bottom edge instead of scrolling", func() {
		rec, err := Parse(`{"version": 2, "width": 10, "height": 2}
[0.0, "o", "a\r\nb\r\nc"]
`)
		Expect(err).NotTo(HaveOccurred())
		lines := rec.ScreenAt(1.0)
		Expect(lines[0]).To(Equal("a"))
		// The third row's output lands on the clamped last row.
		Expect(lines[1]).To(Equal("c"))
	})

	It("consumes escape sequences without visible effect", func() {
		rec, err := Parse(`{"version": 2}
[0.0, "o", "\u001b[31mred\u001b[0m"]
`)
		Expect(err).NotTo(HaveOccurred())
		Expect(rec.ScreenAt(1.0)[0]).To(Equal("red"))
	})
})

var _ = Describe("Player", func() {
	var (
		rec   *Recording
		clock time.Time
	)

	newClockedPlayer := func(loop bool, speed float64) *Player {
		p := NewPlayer(rec, 0, render.AlignLeft, loop, speed, render.OnDemand)
		clock = time.Unix(1000, 0)
		p.now = func() time.Time { return clock }
		return p
	}

	BeforeEach(func() {
		var err error
		rec, err = Parse(helloCast)
		Expect(err).NotTo(HaveOccurred())
	})

	It("arms on the first poll", func() {
		p := newClockedPlayer(false, 1.0)
		Expect(p.Pollable().Poll()).To(Equal(render.Modified))
		current, total := p.Progress()
		Expect(current).To(BeZero())
		Expect(total).To(Equal(1.0))
	})

	It("completes exactly once and then stays unmodified", func() {
		p := newClockedPlayer(false, 1.0)
		pollable := p.Pollable()
		pollable.Poll()

		clock = clock.Add(500 * time.Millisecond)
		Expect(pollable.Poll()).To(Equal(render.Modified))

		clock = clock.Add(time.Second)
		Expect(pollable.Poll()).To(Equal(render.Done))
		current, _ := p.Progress()
		Expect(current).To(Equal(1.0))

		clock = clock.Add(time.Hour)
		Expect(pollable.Poll()).To(Equal(render.Unmodified))
		current, _ = p.Progress()
		Expect(current).To(Equal(1.0))
	})

	It("restarts from zero when looping", func() {
		p := newClockedPlayer(true, 1.0)
		pollable := p.Pollable()
		pollable.Poll()

		clock = clock.Add(2 * time.Second)
		Expect(pollable.Poll()).To(Equal(render.Modified))
		current, _ := p.Progress()
		Expect(current).To(BeZero())
	})

	It("scales elapsed time by the speed multiplier", func() {
		p := newClockedPlayer(false, 2.0)
		pollable := p.Pollable()
		pollable.Poll()

		clock = clock.Add(250 * time.Millisecond)
		Expect(pollable.Poll()).To(Equal(render.Modified))
		current, _ := p.Progress()
		Expect(current).To(BeNumerically("~", 0.5, 1e-9))
	})

	It("floors the speed multiplier", func() {
		p := NewPlayer(rec, 0, render.AlignLeft, false, 0, render.OnDemand)
		Expect(p.speed).To(Equal(minSpeed))
	})

	It("frames the screen with a box border", func() {
		p := newClockedPlayer(false, 1.0)
		ops := p.RenderOperations()
		// Top border, 24 screen rows, bottom border, each with a break.
		Expect(ops).To(HaveLen(2 * (24 + 2)))

		top := ops[0].(render.BlockLine)
		Expect(top.Text[0].Content).To(HavePrefix("┌"))
		Expect(top.Text[0].Content).To(HaveSuffix("┐"))
		Expect(strings.Count(top.Text[0].Content, "─")).To(Equal(80))

		first := ops[2].(render.BlockLine)
		Expect(first.Text[0].Content).To(HavePrefix("│"))
		Expect(first.Text[0].Content).To(HaveSuffix("│"))
	})
})
