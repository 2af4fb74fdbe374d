// Package textutil provides character classification, word boundary scanning,
// occurrence search, and visual column helpers for the editing core.
// All public indices are rune indices, never byte offsets.
package textutil

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CharType classifies a rune for word navigation.
type CharType int

const (
	Whitespace CharType = iota
	WordChar
	Punctuation
)

// punctuationSet is the fixed table of symbol runes treated as their own
// word class. Everything not whitespace and not in this set is a word rune.
var punctuationSet = map[rune]struct{}{
	'/': {}, ':': {}, ',': {}, '.': {}, '-': {},
	'(': {}, ')': {}, '{': {}, '}': {}, '[': {}, ']': {},
	';': {}, '"': {}, '\'': {}, '<': {}, '>': {},
	'=': {}, '+': {}, '*': {}, '&': {}, '|': {},
	'!': {}, '@': {}, '#': {}, '$': {}, '%': {},
	'^': {}, '~': {}, '`': {}, '\\': {}, '?': {},
}

// IsPunctuation reports whether r belongs to the fixed punctuation set.
func IsPunctuation(r rune) bool {
	_, ok := punctuationSet[r]
	return ok
}

// ClassOf returns the word-navigation class of r.
func ClassOf(r rune) CharType {
	switch {
	case unicode.IsSpace(r):
		return Whitespace
	case IsPunctuation(r):
		return Punctuation
	default:
		return WordChar
	}
}

// IsWordBoundary reports whether r separates words (whitespace or punctuation).
func IsWordBoundary(r rune) bool {
	return unicode.IsSpace(r) || IsPunctuation(r)
}

// WordStartBefore scans left from offset (a rune index into runes) to the
// start of the run of same-class characters containing the character before
// offset. Returns 0 when already at the beginning.
func WordStartBefore(runes []rune, offset int) int {
	if offset <= 0 {
		return 0
	}
	if offset > len(runes) {
		offset = len(runes)
	}
	class := ClassOf(runes[offset-1])
	i := offset
	for i > 0 && ClassOf(runes[i-1]) == class {
		i--
	}
	return i
}

// WordEndAfter scans right from offset to the end of the run of same-class
// characters starting at offset. Returns len(runes) when already at the end.
func WordEndAfter(runes []rune, offset int) int {
	if offset >= len(runes) {
		return len(runes)
	}
	if offset < 0 {
		offset = 0
	}
	class := ClassOf(runes[offset])
	i := offset
	for i < len(runes) && ClassOf(runes[i]) == class {
		i++
	}
	return i
}

// Occurrence is a rune-index match range, end exclusive.
type Occurrence struct {
	Start int
	End   int
}

// FindAllOccurrences returns every match of needle in content as rune-index
// ranges, including overlapping matches. Scanning happens over bytes but the
// boundaries are translated incrementally, so no byte offset ever leaks out.
func FindAllOccurrences(content, needle string) []Occurrence {
	var matches []Occurrence
	if needle == "" || len(needle) > len(content) {
		return matches
	}
	needleLen := utf8.RuneCountInString(needle)

	runeIdx := 0
	for byteIdx := 0; byteIdx <= len(content)-len(needle); {
		if strings.HasPrefix(content[byteIdx:], needle) {
			matches = append(matches, Occurrence{Start: runeIdx, End: runeIdx + needleLen})
		}
		_, size := utf8.DecodeRuneInString(content[byteIdx:])
		if size == 0 {
			break
		}
		byteIdx += size
		runeIdx++
	}
	return matches
}

// FindNextOccurrence returns the first match of needle at or after the rune
// offset from, wrapping around to the start of content when nothing follows.
// Callers that advance through matches must track their own last search offset.
func FindNextOccurrence(content, needle string, from int) (Occurrence, bool) {
	if needle == "" {
		return Occurrence{}, false
	}
	fromByte := RuneIndexToByteOffset(content, from)
	if idx := strings.Index(content[fromByte:], needle); idx >= 0 {
		start := from + utf8.RuneCountInString(content[fromByte:fromByte+idx])
		return Occurrence{Start: start, End: start + utf8.RuneCountInString(needle)}, true
	}
	if idx := strings.Index(content, needle); idx >= 0 {
		start := utf8.RuneCountInString(content[:idx])
		return Occurrence{Start: start, End: start + utf8.RuneCountInString(needle)}, true
	}
	return Occurrence{}, false
}

// RuneIndexToByteOffset converts a rune index into s to a byte offset,
// clamping to the valid range. The result always lies on a rune boundary.
func RuneIndexToByteOffset(s string, runeIdx int) int {
	if runeIdx <= 0 {
		return 0
	}
	count := 0
	for i := range s {
		if count == runeIdx {
			return i
		}
		count++
	}
	return len(s)
}

// ByteOffsetToRuneIndex converts a byte offset into s to a rune index.
// Offsets inside a multi-byte sequence count the rune they fall within.
func ByteOffsetToRuneIndex(s string, byteOff int) int {
	if byteOff <= 0 {
		return 0
	}
	if byteOff > len(s) {
		byteOff = len(s)
	}
	return utf8.RuneCountInString(s[:byteOff])
}

// TabWidth is the default tab expansion width for visual column math.
const TabWidth = 4

// VisualColToCharCol converts a screen column to a character column within
// text, expanding tabs to the next stop of width tabWidth.
func VisualColToCharCol(text string, visualCol, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = TabWidth
	}
	currentVisual := 0
	charCol := 0
	for _, ch := range text {
		if currentVisual >= visualCol {
			return charCol
		}
		if ch == '\t' {
			currentVisual += tabWidth - (currentVisual % tabWidth)
		} else {
			currentVisual++
		}
		charCol++
	}
	return charCol
}

// CharColToVisualCol converts a character column to a screen column within
// text, expanding tabs to the next stop of width tabWidth.
func CharColToVisualCol(text string, charCol, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = TabWidth
	}
	visualCol := 0
	i := 0
	for _, ch := range text {
		if i >= charCol {
			break
		}
		if ch == '\t' {
			visualCol += tabWidth - (visualCol % tabWidth)
		} else {
			visualCol++
		}
		i++
	}
	return visualCol
}
