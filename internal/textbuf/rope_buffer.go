package textbuf

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// RopeBuffer is the large-document backend. Line/offset conversion and edits
// at arbitrary positions run in time logarithmic in document size.
type RopeBuffer struct {
	root *node
}

// NewRopeBuffer creates an empty rope buffer.
func NewRopeBuffer() *RopeBuffer {
	return &RopeBuffer{}
}

// NewRopeBufferFromText creates a rope buffer holding text.
func NewRopeBufferFromText(text string) *RopeBuffer {
	return &RopeBuffer{root: buildTree(text)}
}

func (b *RopeBuffer) sum() summary {
	if b.root == nil {
		return summary{}
	}
	return b.root.sum
}

func (b *RopeBuffer) LineCount() int {
	return b.sum().newlines + 1
}

func (b *RopeBuffer) LineLength(line int) int {
	if line < 0 || line >= b.LineCount() {
		return 0
	}
	start := offsetOfLine(b.root, line)
	if line+1 < b.LineCount() {
		return offsetOfLine(b.root, line+1) - 1 - start
	}
	return b.Len() - start
}

func (b *RopeBuffer) Len() int {
	return b.sum().runes
}

func (b *RopeBuffer) LenBytes() int {
	return b.sum().bytes
}

func (b *RopeBuffer) CharAt(line, col int) (rune, bool) {
	if line < 0 || line >= b.LineCount() {
		return 0, false
	}
	if col < 0 || col >= b.LineLength(line) {
		return 0, false
	}
	return runeAtOffset(b.root, offsetOfLine(b.root, line)+col)
}

func (b *RopeBuffer) Line(line int) (string, bool) {
	if line < 0 || line >= b.LineCount() {
		return "", false
	}
	start := offsetOfLine(b.root, line)
	return b.Slice(start, start+b.LineLength(line)), true
}

func (b *RopeBuffer) PositionToOffset(line, col int) int {
	line = clamp(line, 0, b.LineCount()-1)
	return offsetOfLine(b.root, line) + clamp(col, 0, b.LineLength(line))
}

func (b *RopeBuffer) OffsetToPosition(offset int) (int, int) {
	offset = clamp(offset, 0, b.Len())
	line := newlinesBefore(b.root, offset)
	return line, offset - offsetOfLine(b.root, line)
}

func (b *RopeBuffer) Slice(start, end int) string {
	total := b.Len()
	start = clamp(start, 0, total)
	end = clamp(end, start, total)
	var sb strings.Builder
	collect(b.root, start, end, &sb)
	return sb.String()
}

func (b *RopeBuffer) Content() string {
	return b.Slice(0, b.Len())
}

func (b *RopeBuffer) FirstNonWhitespaceColumn(line int) int {
	text, ok := b.Line(line)
	if !ok {
		return 0
	}
	col := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			break
		}
		col++
	}
	return col
}

func (b *RopeBuffer) LastNonWhitespaceColumn(line int) int {
	text, ok := b.Line(line)
	if !ok {
		return 0
	}
	return utf8.RuneCountInString(strings.TrimRightFunc(text, unicode.IsSpace))
}

func (b *RopeBuffer) Insert(offset int, text string) {
	if text == "" {
		return
	}
	offset = clamp(offset, 0, b.Len())
	left, right := split(b.root, offset)
	b.root = concat(concat(left, buildTree(text)), right)
	b.maybeRebuild()
}

func (b *RopeBuffer) InsertRune(offset int, ch rune) {
	b.Insert(offset, string(ch))
}

func (b *RopeBuffer) Remove(start, end int) {
	total := b.Len()
	start = clamp(start, 0, total)
	end = clamp(end, start, total)
	if start == end {
		return
	}
	left, rest := split(b.root, start)
	_, right := split(rest, end-start)
	b.root = concat(left, right)
	b.maybeRebuild()
}

func (b *RopeBuffer) Replace(start, end int, text string) {
	b.Remove(start, end)
	b.Insert(start, text)
}

func (b *RopeBuffer) Clear() {
	b.root = nil
}

func (b *RopeBuffer) SetContent(text string) {
	b.root = buildTree(text)
}

func (b *RopeBuffer) maybeRebuild() {
	if b.root != nil && b.root.height > rebuildHeight {
		b.root = buildTree(b.Content())
	}
}
