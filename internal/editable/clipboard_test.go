package editable

import "testing"

type captureClipboard struct {
	text string
}

func (c *captureClipboard) Write(text string) error {
	c.text = text
	return nil
}

func TestCopyJoinsSelections(t *testing.T) {
	s := newEditor("foo bar foo")
	s.PlaceCursorAt(Pos(0, 0))
	s.Apply(AddCursorsAtAllOccurrences{})

	text, ok := s.CopyText()
	if !ok || text != "foo\nfoo" {
		t.Fatalf("copy = %q, %v", text, ok)
	}
	if got := s.Content(); got != "foo bar foo" {
		t.Fatalf("copy must not mutate: %q", got)
	}
}

func TestCopyWithoutSelection(t *testing.T) {
	s := newEditor("text")
	if _, ok := s.CopyText(); ok {
		t.Fatal("copy with no selection must report nothing")
	}
}

func TestCutDeletesAsOneBatch(t *testing.T) {
	s := newEditor("foo bar foo")
	s.PlaceCursorAt(Pos(0, 0))
	s.Apply(AddCursorsAtAllOccurrences{})

	text, ok := s.CutText()
	if !ok || text != "foo\nfoo" {
		t.Fatalf("cut = %q, %v", text, ok)
	}
	if got := s.Content(); got != " bar " {
		t.Fatalf("content = %q", got)
	}
	s.Apply(Undo{})
	if got := s.Content(); got != "foo bar foo" {
		t.Fatalf("after undo: %q", got)
	}
}

func TestDispatchCopyWritesClipboard(t *testing.T) {
	clip := &captureClipboard{}
	s := NewState(EditorContext(), "hello", WithClipboard(clip))
	s.Apply(SelectAll{})
	if s.Apply(Copy{}) {
		t.Fatal("copy needs no redraw")
	}
	if clip.text != "hello" {
		t.Fatalf("clipboard = %q", clip.text)
	}

	if !s.Apply(Cut{}) {
		t.Fatal("cut reported no change")
	}
	if got := s.Content(); got != "" {
		t.Fatalf("content after cut = %q", got)
	}
}

func TestPasteDistributesLines(t *testing.T) {
	s := newEditor("a\nb\nc")
	s.PlaceCursorAt(Pos(0, 1))
	s.Apply(AddCursorBelow{})
	s.Apply(AddCursorBelow{})

	s.Apply(Paste{Text: "1\n2\n3"})
	if got := s.Content(); got != "a1\nb2\nc3" {
		t.Fatalf("content = %q", got)
	}
	checkInvariants(t, s)
}

func TestPasteFullTextPerCursor(t *testing.T) {
	s := newEditor("a\nb")
	s.PlaceCursorAt(Pos(0, 1))
	s.Apply(AddCursorBelow{})

	s.Apply(Paste{Text: "xy"})
	if got := s.Content(); got != "axy\nbxy" {
		t.Fatalf("content = %q", got)
	}
}

func TestPasteRespectsConstraints(t *testing.T) {
	n := NewState(EditContext{Kind: ContextGotoLine}, "1")
	if n.Apply(Paste{Text: "2a"}) {
		t.Fatal("paste with filtered characters must be rejected whole")
	}
	if got := n.Content(); got != "1" {
		t.Fatalf("content = %q", got)
	}
	if !n.Apply(Paste{Text: "23"}) {
		t.Fatal("valid paste rejected")
	}
	if got := n.Content(); got != "123" {
		t.Fatalf("content = %q", got)
	}
}
