// Package textbuf provides the text storage layer of the editing core.
//
// Two backends implement the same contract: StringBuffer, a flat string for
// short single-line inputs, and RopeBuffer, a balanced tree for large
// documents. All offsets crossing this package boundary are rune offsets;
// byte offsets never leak out, and every accepted offset is clamped onto a
// rune boundary. Out-of-range reads report absence instead of panicking.
package textbuf

// Buffer is the read-only view of a text buffer.
type Buffer interface {
	// LineCount returns the number of lines; an empty buffer has one line.
	LineCount() int
	// LineLength returns the rune length of a line, excluding its newline.
	// Returns 0 for out-of-range lines.
	LineLength(line int) int
	// Len returns the total rune count.
	Len() int
	// LenBytes returns the total byte count.
	LenBytes() int
	// CharAt returns the rune at (line, col), reporting absence when the
	// position does not exist.
	CharAt(line, col int) (rune, bool)
	// Line returns a line's content without the trailing newline.
	Line(line int) (string, bool)
	// PositionToOffset converts a (line, col) position to a rune offset,
	// clamping both coordinates into range.
	PositionToOffset(line, col int) int
	// OffsetToPosition converts a rune offset to a (line, col) position,
	// clamping the offset into range.
	OffsetToPosition(offset int) (line, col int)
	// Slice returns the text in the rune range [start, end), clamped.
	Slice(start, end int) string
	// Content returns the whole buffer text.
	Content() string
	// FirstNonWhitespaceColumn returns the column of the first
	// non-whitespace rune on the line (the line's indentation width).
	FirstNonWhitespaceColumn(line int) int
	// LastNonWhitespaceColumn returns the column just past the last
	// non-whitespace rune on the line.
	LastNonWhitespaceColumn(line int) int
}

// EditBuffer extends Buffer with mutation. All write offsets are clamped.
type EditBuffer interface {
	Buffer
	// Insert inserts text at a rune offset.
	Insert(offset int, text string)
	// InsertRune inserts a single rune at a rune offset.
	InsertRune(offset int, ch rune)
	// Remove deletes the rune range [start, end).
	Remove(start, end int)
	// Replace atomically substitutes the rune range [start, end) with text.
	Replace(start, end int, text string)
	// Clear empties the buffer.
	Clear()
	// SetContent replaces the whole buffer text.
	SetContent(text string)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
