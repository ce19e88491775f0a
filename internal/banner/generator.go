// Package banner generates ASCII-art banners from FIGlet fonts and animates
// them through the render pipeline's pollable contract.
package banner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/common-nighthawk/go-figure"
)

// DefaultFont is the bundled font that is always accepted, even when no
// other candidate validates.
const DefaultFont = "standard"

// FontError reports a failed font load or conversion.
type FontError struct {
	Font   string
	Reason string
}

func (e *FontError) Error() string {
	return fmt.Sprintf("font %q: %s", e.Font, e.Reason)
}

// Candidate bundled fonts probed at first use. The probe discards any name
// the renderer rejects or panics on, so listing a font here does not
// guarantee availability.
var candidateFonts = []string{
	"3-d", "3x5", "5lineoblique", "alligator", "alligator2", "alphabet",
	"avatar", "banner3", "banner3-D", "banner4", "barbwire", "basic", "bell",
	"big", "bigchief", "binary", "block", "broadway", "bulbhead", "calgphy2",
	"caligraphy", "catwalk", "chunky", "coinstak", "colossal", "computer",
	"contessa", "contrast", "cosmic", "cosmike", "crawford", "cricket",
	"cursive", "cyberlarge", "cybermedium", "cybersmall", "diamond", "doh",
	"doom", "dotmatrix", "double", "drpepper", "eftifont", "eftirobot",
	"eftitalic", "eftiwall", "eftiwater", "epic", "fender", "fourtops",
	"fuzzy", "goofy", "gothic", "graceful", "graffiti", "hollywood",
	"invita", "isometric1", "isometric2", "isometric3", "isometric4",
	"italic", "jazmine", "katakana", "kban", "larry3d", "lcd", "lean",
	"letters", "linux", "lockergnome", "madrid", "marquee", "mike", "mini",
	"mirror", "nancyj", "nancyj-fancy", "nancyj-underlined", "nipples",
	"o8", "ogre", "os2", "pawp", "peaks", "pebbles", "pepper", "poison",
	"puffy", "rectangles", "relief", "relief2", "rev", "roman", "rounded",
	"rowancap", "rozzo", "runic", "runyc", "sblood", "script", "serifcap",
	"shadow", "short", "slant", "slide", "slscript", "small", "smisome1",
	"smkeyboard", "smscript", "smshadow", "smslant", "speed", "stampatello",
	"starwars", "stellar", "stop", "straight", "tanja", "thick", "thin",
	"threepoint", "ticks", "ticksslant", "tinker-toy", "tombstone", "trek",
	"twopoint", "univers", "usaflag", "weird", "whimsy",
}

// Directories scanned for .flf font files, in addition to the bundled set.
var fontDirs = []string{
	"/opt/homebrew/share/figlet/fonts",
	"/usr/local/share/figlet",
	"/usr/share/figlet",
	"/usr/share/figlet/fonts",
}

// AddFontDirs registers extra directories to scan for .flf files. It has no
// effect once the font catalog has been probed.
func AddFontDirs(dirs []string) {
	fontDirs = append(fontDirs, dirs...)
}

// fontSource records where a validated font comes from: an empty path means
// it is bundled with the renderer.
type fontSource struct {
	path string
}

var fontCatalog struct {
	once  sync.Once
	valid map[string]fontSource
}

// validFonts builds the probe-validated whitelist on first use. A font that
// fails or panics during the probe is excluded permanently; there is no
// retry and no silent substitution.
func validFonts() map[string]fontSource {
	fontCatalog.once.Do(func() {
		valid := make(map[string]fontSource)
		for _, name := range candidateFonts {
			if _, err := renderBundled(name, "TEST"); err == nil {
				valid[strings.ToLower(name)] = fontSource{}
			}
		}
		for _, dir := range fontDirs {
			entries, err := os.ReadDir(dir)
			if err != nil {
				continue
			}
			for _, entry := range entries {
				if entry.IsDir() || filepath.Ext(entry.Name()) != ".flf" {
					continue
				}
				name := strings.ToLower(strings.TrimSuffix(entry.Name(), ".flf"))
				if _, ok := valid[name]; ok {
					continue
				}
				path := filepath.Join(dir, entry.Name())
				if _, err := renderFile(path, "TEST"); err == nil {
					valid[name] = fontSource{path: path}
				}
			}
		}
		fontCatalog.valid = valid
	})
	return fontCatalog.valid
}

// FontAvailable reports whether a font passed probing. The bundled default
// is always available.
func FontAvailable(name string) bool {
	lower := strings.ToLower(name)
	if lower == DefaultFont {
		return true
	}
	_, ok := validFonts()[lower]
	return ok
}

// ValidFonts lists every probe-validated font name, default included.
func ValidFonts() []string {
	names := []string{DefaultFont}
	for name := range validFonts() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Generator produces ASCII-art grids for one validated font.
type Generator struct {
	font   string
	source fontSource
}

// NewGenerator rejects fonts outside the whitelist outright rather than
// substituting another font.
func NewGenerator(font string) (*Generator, error) {
	lower := strings.ToLower(font)
	if lower == DefaultFont {
		return &Generator{font: lower}, nil
	}
	source, ok := validFonts()[lower]
	if !ok {
		return nil, &FontError{Font: font, Reason: "not available or failed validation"}
	}
	return &Generator{font: lower, source: source}, nil
}

// Generate converts text into a multi-row ASCII-art grid.
func (g *Generator) Generate(text string) ([]string, error) {
	if g.source.path != "" {
		return renderFile(g.source.path, text)
	}
	return renderBundled(g.font, text)
}

// renderBundled invokes the FIGlet renderer on a bundled font. The renderer
// panics on fonts or characters it cannot handle, so the call is isolated
// and panics come back as errors.
func renderBundled(font, text string) (lines []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &FontError{Font: font, Reason: fmt.Sprintf("renderer panicked: %v", r)}
		}
	}()
	lines = figure.NewFigure(text, font, false).Slicify()
	if len(lines) == 0 {
		err = &FontError{Font: font, Reason: fmt.Sprintf("conversion of %q produced no output", text)}
	}
	return lines, err
}

// renderFile is renderBundled for an on-disk .flf file.
func renderFile(path, text string) (lines []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &FontError{Font: path, Reason: fmt.Sprintf("renderer panicked: %v", r)}
		}
	}()
	f, err := os.Open(path)
	if err != nil {
		return nil, &FontError{Font: path, Reason: err.Error()}
	}
	defer f.Close()
	lines = figure.NewFigureWithFont(text, f, false).Slicify()
	if len(lines) == 0 {
		err = &FontError{Font: path, Reason: fmt.Sprintf("conversion of %q produced no output", text)}
	}
	return lines, err
}
