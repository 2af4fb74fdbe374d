package textbuf

import (
	"fmt"
	"strings"
	"testing"
)

// Both backends must behave identically; every contract test runs over each.
func backends(text string) map[string]EditBuffer {
	return map[string]EditBuffer{
		"string": NewStringBufferFromText(text),
		"rope":   NewRopeBufferFromText(text),
	}
}

func TestEmptyBuffer(t *testing.T) {
	for name, buf := range backends("") {
		t.Run(name, func(t *testing.T) {
			if got := buf.LineCount(); got != 1 {
				t.Errorf("LineCount() = %d, want 1", got)
			}
			if got := buf.Len(); got != 0 {
				t.Errorf("Len() = %d, want 0", got)
			}
			if got := buf.LineLength(0); got != 0 {
				t.Errorf("LineLength(0) = %d, want 0", got)
			}
			if line, ok := buf.Line(0); !ok || line != "" {
				t.Errorf("Line(0) = %q, %v", line, ok)
			}
		})
	}
}

func TestUnicodeLengths(t *testing.T) {
	for name, buf := range backends("héllo") {
		t.Run(name, func(t *testing.T) {
			if got := buf.Len(); got != 5 {
				t.Errorf("Len() = %d, want 5", got)
			}
			if got := buf.LenBytes(); got != 6 {
				t.Errorf("LenBytes() = %d, want 6", got)
			}
			if r, ok := buf.CharAt(0, 1); !ok || r != 'é' {
				t.Errorf("CharAt(0,1) = %q, %v", r, ok)
			}
		})
	}
}

func TestPositionConversions(t *testing.T) {
	for name, buf := range backends("hello\nworld") {
		t.Run(name, func(t *testing.T) {
			tests := []struct {
				line, col, offset int
			}{
				{0, 0, 0},
				{0, 5, 5},
				{1, 0, 6},
				{1, 5, 11},
			}
			for _, tt := range tests {
				if got := buf.PositionToOffset(tt.line, tt.col); got != tt.offset {
					t.Errorf("PositionToOffset(%d,%d) = %d, want %d", tt.line, tt.col, got, tt.offset)
				}
				line, col := buf.OffsetToPosition(tt.offset)
				if line != tt.line || col != tt.col {
					t.Errorf("OffsetToPosition(%d) = (%d,%d), want (%d,%d)", tt.offset, line, col, tt.line, tt.col)
				}
			}
		})
	}
}

func TestPositionClamping(t *testing.T) {
	for name, buf := range backends("ab\ncd") {
		t.Run(name, func(t *testing.T) {
			if got := buf.PositionToOffset(99, 99); got != buf.Len() {
				t.Errorf("PositionToOffset(99,99) = %d, want %d", got, buf.Len())
			}
			if got := buf.PositionToOffset(-1, -1); got != 0 {
				t.Errorf("PositionToOffset(-1,-1) = %d, want 0", got)
			}
			line, col := buf.OffsetToPosition(999)
			if line != 1 || col != 2 {
				t.Errorf("OffsetToPosition(999) = (%d,%d), want (1,2)", line, col)
			}
			if _, ok := buf.CharAt(5, 0); ok {
				t.Error("CharAt on missing line should report absence")
			}
			if _, ok := buf.Line(5); ok {
				t.Error("Line on missing line should report absence")
			}
		})
	}
}

func TestLineAccessors(t *testing.T) {
	for name, buf := range backends("one\ntwo\nthree") {
		t.Run(name, func(t *testing.T) {
			if got := buf.LineCount(); got != 3 {
				t.Fatalf("LineCount() = %d, want 3", got)
			}
			wantLines := []string{"one", "two", "three"}
			for i, want := range wantLines {
				line, ok := buf.Line(i)
				if !ok || line != want {
					t.Errorf("Line(%d) = %q, %v, want %q", i, line, ok, want)
				}
				if got := buf.LineLength(i); got != len(want) {
					t.Errorf("LineLength(%d) = %d, want %d", i, got, len(want))
				}
			}
		})
	}
}

func TestInsertRemoveReplace(t *testing.T) {
	for name, buf := range backends("hello world") {
		t.Run(name, func(t *testing.T) {
			buf.Insert(5, ",")
			if got := buf.Content(); got != "hello, world" {
				t.Fatalf("after insert: %q", got)
			}
			buf.Remove(5, 6)
			if got := buf.Content(); got != "hello world" {
				t.Fatalf("after remove: %q", got)
			}
			buf.Replace(0, 5, "goodbye")
			if got := buf.Content(); got != "goodbye world" {
				t.Fatalf("after replace: %q", got)
			}
			buf.InsertRune(buf.Len(), '!')
			if got := buf.Content(); got != "goodbye world!" {
				t.Fatalf("after insert rune: %q", got)
			}
		})
	}
}

func TestUnicodeEditing(t *testing.T) {
	for name, buf := range backends("äöü") {
		t.Run(name, func(t *testing.T) {
			buf.Insert(1, "x")
			if got := buf.Content(); got != "äxöü" {
				t.Fatalf("after insert: %q", got)
			}
			buf.Remove(2, 3)
			if got := buf.Content(); got != "äxü" {
				t.Fatalf("after remove: %q", got)
			}
			if got := buf.Slice(1, 3); got != "xü" {
				t.Fatalf("Slice(1,3) = %q", got)
			}
		})
	}
}

func TestNonWhitespaceColumns(t *testing.T) {
	for name, buf := range backends("    hello  \n  world") {
		t.Run(name, func(t *testing.T) {
			if got := buf.FirstNonWhitespaceColumn(0); got != 4 {
				t.Errorf("FirstNonWhitespaceColumn(0) = %d, want 4", got)
			}
			if got := buf.FirstNonWhitespaceColumn(1); got != 2 {
				t.Errorf("FirstNonWhitespaceColumn(1) = %d, want 2", got)
			}
			if got := buf.LastNonWhitespaceColumn(0); got != 9 {
				t.Errorf("LastNonWhitespaceColumn(0) = %d, want 9", got)
			}
		})
	}
}

func TestClearAndSetContent(t *testing.T) {
	for name, buf := range backends("hello") {
		t.Run(name, func(t *testing.T) {
			buf.Clear()
			if got := buf.Content(); got != "" {
				t.Fatalf("after clear: %q", got)
			}
			if got := buf.LineCount(); got != 1 {
				t.Fatalf("LineCount after clear = %d", got)
			}
			buf.SetContent("a\nb")
			if got := buf.LineCount(); got != 2 {
				t.Fatalf("LineCount after set = %d", got)
			}
		})
	}
}

// The rope must agree with the flat buffer over a long edit sequence that
// forces chunk splits and merges.
func TestBackendEquivalence(t *testing.T) {
	sb := NewStringBuffer()
	rb := NewRopeBuffer()

	seed := strings.Repeat("lorem ipsum dolor\n", 64)
	sb.SetContent(seed)
	rb.SetContent(seed)

	ops := []struct {
		kind       string
		start, end int
		text       string
	}{
		{"insert", 0, 0, "prefix "},
		{"insert", 100, 0, "ääüü"},
		{"remove", 50, 90, ""},
		{"insert", 500, 0, "middle\ninsert\n"},
		{"remove", 0, 7, ""},
		{"replace", 10, 20, "REPLACED"},
		{"insert", 999, 0, "tail"},
		{"remove", 200, 400, ""},
	}
	for i, op := range ops {
		switch op.kind {
		case "insert":
			sb.Insert(op.start, op.text)
			rb.Insert(op.start, op.text)
		case "remove":
			sb.Remove(op.start, op.end)
			rb.Remove(op.start, op.end)
		case "replace":
			sb.Replace(op.start, op.end, op.text)
			rb.Replace(op.start, op.end, op.text)
		}
		if sb.Content() != rb.Content() {
			t.Fatalf("op %d (%s): backends diverged", i, op.kind)
		}
		if sb.Len() != rb.Len() || sb.LineCount() != rb.LineCount() {
			t.Fatalf("op %d (%s): metrics diverged: len %d/%d lines %d/%d",
				i, op.kind, sb.Len(), rb.Len(), sb.LineCount(), rb.LineCount())
		}
	}

	for off := 0; off <= sb.Len(); off += 37 {
		sl, sc := sb.OffsetToPosition(off)
		rl, rc := rb.OffsetToPosition(off)
		if sl != rl || sc != rc {
			t.Fatalf("OffsetToPosition(%d): string (%d,%d) rope (%d,%d)", off, sl, sc, rl, rc)
		}
		if sb.PositionToOffset(sl, sc) != rb.PositionToOffset(rl, rc) {
			t.Fatalf("PositionToOffset mismatch at offset %d", off)
		}
	}
}

func TestRopeLargeDocument(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 2000; i++ {
		fmt.Fprintf(&sb, "line %04d with some content\n", i)
	}
	text := sb.String()
	buf := NewRopeBufferFromText(text)

	if got := buf.LineCount(); got != 2001 {
		t.Fatalf("LineCount() = %d, want 2001", got)
	}
	line, ok := buf.Line(1500)
	if !ok || line != "line 1500 with some content" {
		t.Fatalf("Line(1500) = %q, %v", line, ok)
	}
	if buf.Content() != text {
		t.Fatal("Content() does not round-trip")
	}

	// Hammer one position with edits to exercise split/concat/rebuild.
	for i := 0; i < 200; i++ {
		buf.Insert(buf.Len()/2, "x")
	}
	for i := 0; i < 200; i++ {
		buf.Remove(buf.Len()/2, buf.Len()/2+1)
	}
	if got := buf.Len(); got != len("line 0000 with some content\n")*2000 {
		t.Fatalf("Len() after edit storm = %d", got)
	}
}
