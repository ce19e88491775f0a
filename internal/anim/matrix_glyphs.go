package anim

import "math"

// matrixGlyphs holds the digital-rain character set: half-width katakana,
// digits, mirrored Latin letters, and a few symbols.
var matrixGlyphs = []rune{
	// Half-width katakana
	'ｦ', 'ｱ', 'ｲ', 'ｳ', 'ｴ', 'ｵ', 'ｶ', 'ｷ', 'ｸ', 'ｹ', 'ｺ', 'ｻ', 'ｼ', 'ｽ', 'ｾ', 'ｿ',
	'ﾀ', 'ﾁ', 'ﾂ', 'ﾃ', 'ﾄ', 'ﾅ', 'ﾆ', 'ﾇ', 'ﾈ', 'ﾉ', 'ﾊ', 'ﾋ', 'ﾌ', 'ﾍ', 'ﾎ', 'ﾏ',
	'ﾐ', 'ﾑ', 'ﾒ', 'ﾓ', 'ﾔ', 'ﾕ', 'ﾖ', 'ﾗ', 'ﾘ', 'ﾙ', 'ﾚ', 'ﾛ', 'ﾜ', 'ﾝ',
	// Digits
	'0', '1', '2', '3', '4', '5', '6', '7', '8', '9',
	// Mirrored Latin letters
	'Z', 'Ǝ', 'Ɔ', 'T', 'Ǝ', 'X', 'Ɔ',
	// Symbols
	':', '.', '=', '*', '+', '-', '<', '>', '¦', '|', '¬',
}

// matrixGlyph picks a pseudo-random rain glyph for a seed.
func matrixGlyph(seed float64) rune {
	index := int(math.Abs(frac(seed))*float64(len(matrixGlyphs))) % len(matrixGlyphs)
	return matrixGlyphs[index]
}
