package editable

import "testing"

func TestNumericContextRejectsLetters(t *testing.T) {
	n := NewState(EditContext{Kind: ContextGotoLine}, "")
	if !n.Apply(InsertChar{Ch: '4'}) {
		t.Fatal("digit rejected")
	}
	if !n.Apply(InsertChar{Ch: ':'}) {
		t.Fatal("colon rejected in goto-line")
	}
	if n.Apply(InsertChar{Ch: 'a'}) {
		t.Fatal("letter accepted in goto-line context")
	}
	if got := n.Content(); got != "4:" {
		t.Fatalf("content = %q", got)
	}
}

func TestNumericConstraintsDirect(t *testing.T) {
	c := NumericConstraints()
	if !c.IsCharAllowed('7') {
		t.Fatal("digit must pass")
	}
	if c.IsCharAllowed('x') || c.IsCharAllowed(' ') {
		t.Fatal("non-digits must fail")
	}
	if !c.WouldExceedMaxLength(10, 1) {
		t.Fatal("11th digit must exceed the cap")
	}
	if c.WouldExceedMaxLength(9, 1) {
		t.Fatal("10th digit must fit")
	}
}

func TestMaxLengthCountsTotalInsertion(t *testing.T) {
	s := NewState(EditContext{Kind: ContextGotoLine}, "123456789")
	if s.exceedsMaxLengthTotal(11) {
		t.Fatal("insertion filling the cap exactly was rejected")
	}
	if !s.exceedsMaxLengthTotal(12) {
		t.Fatal("insertion past the cap was allowed")
	}
}

func TestMaxLengthEnforced(t *testing.T) {
	s := NewState(EditContext{Kind: ContextGotoLine}, "")
	for i := 0; i < 25; i++ {
		s.Apply(InsertChar{Ch: '1'})
	}
	if got := runeLen(s.Content()); got != 20 {
		t.Fatalf("content length = %d, want cap of 20", got)
	}
}

func TestSingleLineRejectsNewline(t *testing.T) {
	s := newSingleLine("abc")
	if s.Apply(InsertNewline{}) {
		t.Fatal("newline accepted in single-line context")
	}
	if s.Apply(InsertText{Text: "x\ny"}) {
		t.Fatal("multi-line text accepted in single-line context")
	}
	if s.Apply(Move{Target: MoveLineDown}) {
		t.Fatal("vertical movement accepted in single-line context")
	}
	if s.Apply(AddCursorBelow{}) {
		t.Fatal("multi-cursor accepted in single-line context")
	}
	if got := s.Content(); got != "abc" {
		t.Fatalf("content = %q", got)
	}
}

func TestSingleLineStillSelectsAndUndoes(t *testing.T) {
	s := newSingleLine("abc")
	s.Apply(SelectAll{})
	if got := s.SelectedText(); got != "abc" {
		t.Fatalf("selected = %q", got)
	}
	s.Apply(InsertChar{Ch: 'z'})
	if got := s.Content(); got != "z" {
		t.Fatalf("content = %q", got)
	}
	s.Apply(Undo{})
	if got := s.Content(); got != "abc" {
		t.Fatalf("after undo: %q", got)
	}
}

func TestContextConstraintMapping(t *testing.T) {
	tests := []struct {
		ctx       EditContext
		multiline bool
		maxLen    int
	}{
		{EditorContext(), true, 0},
		{EditContext{Kind: ContextCommandPalette}, false, 0},
		{EditContext{Kind: ContextGotoLine}, false, 20},
		{CsvCellContext(3, 7), false, 0},
	}
	for _, tt := range tests {
		c := tt.ctx.Constraints()
		if c.AllowMultiline != tt.multiline {
			t.Errorf("%s: AllowMultiline = %v", tt.ctx, c.AllowMultiline)
		}
		if c.MaxLength != tt.maxLen {
			t.Errorf("%s: MaxLength = %d", tt.ctx, c.MaxLength)
		}
		if !c.EnableUndo {
			t.Errorf("%s: undo should be enabled", tt.ctx)
		}
	}
}

func TestCsvCellsAreIndependentContexts(t *testing.T) {
	a := CsvCellContext(0, 0)
	b := CsvCellContext(0, 1)
	if a == b {
		t.Fatal("distinct cells must compare unequal")
	}
	states := map[EditContext]*State{
		a: NewState(a, "left"),
		b: NewState(b, "right"),
	}
	states[a].Apply(InsertChar{Ch: '!'})
	if got := states[b].Content(); got != "right" {
		t.Fatalf("editing one cell leaked into another: %q", got)
	}
}
