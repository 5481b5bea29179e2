// Package gurmukhi holds the script normalization used by the search layer
// and the seeders. Roman input is mapped through the AnmolLipi-style
// keyboard table to Gurmukhi akhars so a Latin-keyboard query can reach the
// first-letter and full-text columns, which store Unicode Gurmukhi.
package gurmukhi

import (
	"strings"
	"unicode"
)

// asciiAkhar maps AnmolLipi keyboard characters to their Unicode akhars.
var asciiAkhar = map[rune]rune{
	'a': 'ੳ', 'A': 'ਅ', 'e': 'ੲ',
	's': 'ਸ', 'h': 'ਹ',
	'k': 'ਕ', 'K': 'ਖ', 'g': 'ਗ', 'G': 'ਘ', '|': 'ਙ',
	'c': 'ਚ', 'C': 'ਛ', 'j': 'ਜ', 'J': 'ਝ', '\\': 'ਞ',
	't': 'ਟ', 'T': 'ਠ', 'f': 'ਡ', 'F': 'ਢ', 'x': 'ਣ',
	'q': 'ਤ', 'Q': 'ਥ', 'd': 'ਦ', 'D': 'ਧ', 'n': 'ਨ',
	'p': 'ਪ', 'P': 'ਫ', 'b': 'ਬ', 'B': 'ਭ', 'm': 'ਮ',
	'X': 'ਯ', 'r': 'ਰ', 'l': 'ਲ', 'v': 'ਵ', 'V': 'ੜ',
	// Nukta letters use the precomposed codepoints so each maps to one rune:
	// sha, za, ghha, lla, khha, fa.
	'S': 'ਸ਼', 'z': 'ਜ਼', 'Z': 'ਗ਼', 'L': 'ਲ਼', '^': 'ਖ਼', '&': 'ਫ਼',
}

// IsGurmukhi reports whether r belongs to the Gurmukhi Unicode block.
func IsGurmukhi(r rune) bool {
	return unicode.Is(unicode.Gurmukhi, r)
}

// Normalize converts a search term into Unicode Gurmukhi. Runes already in
// the Gurmukhi block and spaces pass through unchanged; mapped keyboard
// characters become their akhars; anything else is dropped.
func Normalize(term string) string {
	var b strings.Builder
	b.Grow(len(term))
	for _, r := range term {
		switch {
		case IsGurmukhi(r) || r == ' ':
			b.WriteRune(r)
		default:
			if akhar, ok := asciiAkhar[r]; ok {
				b.WriteRune(akhar)
			}
		}
	}
	return b.String()
}

// FirstLetters derives the phonetic search key for a line: the first akhar
// of every word. Terminators, numerals and other non-letter tokens do not
// contribute.
func FirstLetters(line string) string {
	var b strings.Builder
	for _, word := range strings.Fields(line) {
		for _, r := range word {
			if IsGurmukhi(r) && !unicode.IsDigit(r) {
				b.WriteRune(r)
			}
			break
		}
	}
	return b.String()
}
