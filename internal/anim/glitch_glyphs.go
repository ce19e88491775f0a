package anim

import "math"

// glitchSubstitutes maps characters to visually similar corruption
// candidates. Characters without an entry are never substituted.
var glitchSubstitutes = map[rune][]rune{
	'_': {'▁', '▂', '‗', '₋'},
	'-': {'–', '—', '―', '÷'},
	'|': {'┃', '║', '¦', 'ǀ'},
	'/': {'⁄', '∕', '╱', '⟋'},
	'\\': {'∖', '╲', '⟍'},
	'(': {'[', '{', '⟨', '❲'},
	')': {']', '}', '⟩', '❳'},
	'[': {'(', '{', '⟦'},
	']': {')', '}', '⟧'},
	'<': {'‹', '«', '≺'},
	'>': {'›', '»', '≻'},
	'#': {'▓', '▒', '░', '╬'},
	'=': {'≡', '≣', '⌗'},
	'+': {'†', '‡', '∓'},
	'*': {'✱', '✳', '⁎'},
	'.': {'·', '•', '∙'},
	',': {'‚', '¸'},
	'\'': {'`', '´', '‛'},
	'O': {'0', 'Ø', 'Θ', '◯'},
	'0': {'O', 'Ø', 'Φ'},
	'I': {'1', 'ǀ', '¦'},
	'1': {'I', 'l', '!'},
	'E': {'3', 'Ǝ', '€'},
	'A': {'4', '∆', 'Λ'},
	'S': {'5', '$', '§'},
	'T': {'7', '†', '┬'},
	'B': {'8', 'ß', 'Ƀ'},
}

// glitchGlyph returns a seed-selected corruption of ch, or 0 when the
// character has no substitution candidates.
func glitchGlyph(ch rune, seed float64) rune {
	candidates, ok := glitchSubstitutes[ch]
	if !ok {
		return 0
	}
	index := int(math.Abs(frac(seed))*float64(len(candidates))) % len(candidates)
	return candidates[index]
}
