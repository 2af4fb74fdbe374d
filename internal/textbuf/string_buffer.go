package textbuf

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/quellen/quill/internal/textutil"
)

// StringBuffer is the flat-string backend. It recomputes line structure on
// demand, which is linear in content size and acceptable for the short
// single-line inputs it serves (command palette, go-to-line, grid cells).
type StringBuffer struct {
	text string
}

// NewStringBuffer creates an empty flat buffer.
func NewStringBuffer() *StringBuffer {
	return &StringBuffer{}
}

// NewStringBufferFromText creates a flat buffer holding text.
func NewStringBufferFromText(text string) *StringBuffer {
	return &StringBuffer{text: text}
}

func (b *StringBuffer) lines() []string {
	return strings.Split(b.text, "\n")
}

// LineCount returns the number of lines; an empty buffer has one line.
func (b *StringBuffer) LineCount() int {
	return strings.Count(b.text, "\n") + 1
}

func (b *StringBuffer) LineLength(line int) int {
	lines := b.lines()
	if line < 0 || line >= len(lines) {
		return 0
	}
	return utf8.RuneCountInString(lines[line])
}

func (b *StringBuffer) Len() int {
	return utf8.RuneCountInString(b.text)
}

func (b *StringBuffer) LenBytes() int {
	return len(b.text)
}

func (b *StringBuffer) CharAt(line, col int) (rune, bool) {
	lines := b.lines()
	if line < 0 || line >= len(lines) {
		return 0, false
	}
	runes := []rune(lines[line])
	if col < 0 || col >= len(runes) {
		return 0, false
	}
	return runes[col], true
}

func (b *StringBuffer) Line(line int) (string, bool) {
	lines := b.lines()
	if line < 0 || line >= len(lines) {
		return "", false
	}
	return lines[line], true
}

func (b *StringBuffer) PositionToOffset(line, col int) int {
	lines := b.lines()
	line = clamp(line, 0, len(lines)-1)

	offset := 0
	for i := 0; i < line; i++ {
		offset += utf8.RuneCountInString(lines[i]) + 1 // +1 for the newline
	}
	return offset + clamp(col, 0, utf8.RuneCountInString(lines[line]))
}

func (b *StringBuffer) OffsetToPosition(offset int) (int, int) {
	offset = clamp(offset, 0, b.Len())
	lines := b.lines()
	for i, l := range lines {
		lineLen := utf8.RuneCountInString(l)
		if offset <= lineLen {
			return i, offset
		}
		offset -= lineLen + 1
	}
	last := len(lines) - 1
	return last, utf8.RuneCountInString(lines[last])
}

func (b *StringBuffer) Slice(start, end int) string {
	total := b.Len()
	start = clamp(start, 0, total)
	end = clamp(end, start, total)
	byteStart := textutil.RuneIndexToByteOffset(b.text, start)
	byteEnd := textutil.RuneIndexToByteOffset(b.text, end)
	return b.text[byteStart:byteEnd]
}

func (b *StringBuffer) Content() string {
	return b.text
}

func (b *StringBuffer) FirstNonWhitespaceColumn(line int) int {
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

func (b *StringBuffer) LastNonWhitespaceColumn(line int) int {
	text, ok := b.Line(line)
	if !ok {
		return 0
	}
	return utf8.RuneCountInString(strings.TrimRightFunc(text, unicode.IsSpace))
}

func (b *StringBuffer) Insert(offset int, text string) {
	offset = clamp(offset, 0, b.Len())
	byteOff := textutil.RuneIndexToByteOffset(b.text, offset)
	b.text = b.text[:byteOff] + text + b.text[byteOff:]
}

func (b *StringBuffer) InsertRune(offset int, ch rune) {
	b.Insert(offset, string(ch))
}

func (b *StringBuffer) Remove(start, end int) {
	total := b.Len()
	start = clamp(start, 0, total)
	end = clamp(end, start, total)
	byteStart := textutil.RuneIndexToByteOffset(b.text, start)
	byteEnd := textutil.RuneIndexToByteOffset(b.text, end)
	b.text = b.text[:byteStart] + b.text[byteEnd:]
}

func (b *StringBuffer) Replace(start, end int, text string) {
	b.Remove(start, end)
	b.Insert(start, text)
}

func (b *StringBuffer) Clear() {
	b.text = ""
}

func (b *StringBuffer) SetContent(text string) {
	b.text = text
}
