package editable

import "testing"

func TestAddCursorBelowAndInsert(t *testing.T) {
	s := newEditor("aaa\nbbb\nccc")
	s.PlaceCursorAt(Pos(0, 1))
	s.Apply(AddCursorBelow{})
	s.Apply(AddCursorBelow{})
	if got := s.CursorCount(); got != 3 {
		t.Fatalf("cursors = %d, want 3", got)
	}

	if !s.Apply(InsertChar{Ch: 'x'}) {
		t.Fatal("insert reported no change")
	}
	if got := s.Content(); got != "axaa\nbxbb\ncxcc" {
		t.Fatalf("content = %q", got)
	}
	for i, c := range s.Cursors() {
		if c.Position() != Pos(i, 2) {
			t.Fatalf("cursor %d = %v, want (%d,2)", i, c.Position(), i)
		}
	}
	checkInvariants(t, s)
}

func TestBatchAtomicity(t *testing.T) {
	s := newEditor("aaa\nbbb\nccc")
	s.PlaceCursorAt(Pos(0, 0))
	s.Apply(AddCursorBelow{})
	s.Apply(AddCursorBelow{})
	multiBefore := s.Cursors()

	s.Apply(InsertChar{Ch: '!'})

	// One undo reverts all three insertions and restores all cursors.
	if !s.Apply(Undo{}) {
		t.Fatal("undo reported no change")
	}
	if got := s.Content(); got != "aaa\nbbb\nccc" {
		t.Fatalf("content after one undo = %q", got)
	}
	got := s.Cursors()
	if len(got) != len(multiBefore) {
		t.Fatalf("cursors after undo = %d, want %d", len(got), len(multiBefore))
	}
	for i := range got {
		if got[i].Position() != multiBefore[i].Position() {
			t.Fatalf("cursor %d = %v, want %v", i, got[i].Position(), multiBefore[i].Position())
		}
	}

	// Only that single batch exists; a second undo has nothing left.
	if s.Apply(Undo{}) {
		t.Fatal("expected exactly one history entry for the multi-cursor insert")
	}
}

func TestSameLineMultiCursorInsert(t *testing.T) {
	s := newEditor("aaaa")
	s.PlaceCursorAt(Pos(0, 1))
	s.Apply(AddCursorAt{Pos: Pos(0, 3)})

	s.Apply(InsertChar{Ch: '-'})
	if got := s.Content(); got != "a-aa-a" {
		t.Fatalf("content = %q", got)
	}
	cursors := s.Cursors()
	if cursors[0].Position() != Pos(0, 2) || cursors[1].Position() != Pos(0, 5) {
		t.Fatalf("cursors = %v, %v", cursors[0].Position(), cursors[1].Position())
	}
}

func TestOverlappingSelectionsDeleteOnlySelected(t *testing.T) {
	s := newEditor("abcdefghij")
	s.PlaceCursorAt(Pos(0, 5))
	s.Apply(AddCursorAt{Pos: Pos(0, 8)})
	// Extend both selections five characters left: [0,5) and [3,8) overlap
	// on "de"; the union is [0,8) and nothing else may go.
	for i := 0; i < 5; i++ {
		s.Apply(MoveWithSelection{Target: MoveCharLeft})
	}

	if !s.Apply(DeleteBackward{}) {
		t.Fatal("delete reported no change")
	}
	if got := s.Content(); got != "ij" {
		t.Fatalf("content = %q, want %q", got, "ij")
	}
	if s.CursorCount() != 1 || s.ActiveCursor().Position() != Pos(0, 0) {
		t.Fatalf("cursors = %v", s.Cursors())
	}
	checkInvariants(t, s)

	if !s.Apply(Undo{}) {
		t.Fatal("undo failed")
	}
	if got := s.Content(); got != "abcdefghij" {
		t.Fatalf("content after undo = %q", got)
	}
}

func TestOverlappingSelectionsReplaceOnce(t *testing.T) {
	s := newEditor("abcdefghij")
	s.PlaceCursorAt(Pos(0, 5))
	s.Apply(AddCursorAt{Pos: Pos(0, 8)})
	for i := 0; i < 5; i++ {
		s.Apply(MoveWithSelection{Target: MoveCharLeft})
	}

	if !s.Apply(InsertChar{Ch: 'X'}) {
		t.Fatal("insert reported no change")
	}
	if got := s.Content(); got != "XXij" {
		t.Fatalf("content = %q, want %q", got, "XXij")
	}
	checkInvariants(t, s)
}

func TestCursorDeduplication(t *testing.T) {
	s := newEditor("ab\ncd")
	s.PlaceCursorAt(Pos(0, 2))
	s.Apply(AddCursorAt{Pos: Pos(1, 2)})
	// Both cursors walk to document end and must collapse into one.
	s.Apply(Move{Target: MoveDocumentEnd})
	if got := s.CursorCount(); got != 1 {
		t.Fatalf("cursors = %d, want 1", got)
	}
	checkInvariants(t, s)
}

func TestToggleCursor(t *testing.T) {
	s := newEditor("abc")
	s.PlaceCursorAt(Pos(0, 0))
	s.Apply(ToggleCursorAt{Pos: Pos(0, 2)})
	if got := s.CursorCount(); got != 2 {
		t.Fatalf("cursors = %d, want 2", got)
	}
	s.Apply(ToggleCursorAt{Pos: Pos(0, 2)})
	if got := s.CursorCount(); got != 1 {
		t.Fatalf("cursors = %d, want 1", got)
	}
	if s.Apply(ToggleCursorAt{Pos: Pos(0, 0)}) {
		t.Fatal("removing the last cursor must be a no-op")
	}
}

func TestCollapseCursorsKeepsActive(t *testing.T) {
	s := newEditor("aaa\nbbb")
	s.PlaceCursorAt(Pos(0, 1))
	s.Apply(AddCursorBelow{})
	active := s.ActiveCursor().Position()
	s.Apply(CollapseCursors{})
	if got := s.CursorCount(); got != 1 {
		t.Fatalf("cursors = %d", got)
	}
	if got := s.ActiveCursor().Position(); got != active {
		t.Fatalf("active cursor = %v, want %v", got, active)
	}
}

func TestRectangleSelect(t *testing.T) {
	s := newEditor("alpha\nbeta\ngamma")
	s.Apply(RectangleSelect{Anchor: Pos(0, 1), Head: Pos(2, 3)})
	if got := s.CursorCount(); got != 3 {
		t.Fatalf("cursors = %d, want 3", got)
	}
	sels := s.Selections()
	want := []string{"lp", "et", "am"}
	for i := range sels {
		if got := s.selectedTextAt(i); got != want[i] {
			t.Fatalf("selection %d = %q, want %q", i, got, want[i])
		}
	}
	checkInvariants(t, s)
}

func TestSelectWordMergesOverlaps(t *testing.T) {
	s := newEditor("word")
	s.PlaceCursorAt(Pos(0, 1))
	s.Apply(AddCursorAt{Pos: Pos(0, 3)})
	s.Apply(SelectWord{})
	// Both cursors sit in the same word; their selections merge.
	if got := s.CursorCount(); got != 1 {
		t.Fatalf("cursors = %d, want 1", got)
	}
	if got := s.SelectedText(); got != "word" {
		t.Fatalf("selected = %q", got)
	}
}

func TestSelectNextOccurrenceCycle(t *testing.T) {
	s := newEditor("foo bar foo baz foo")
	s.PlaceCursorAt(Pos(0, 0))

	// First press selects the word under the cursor.
	s.Apply(AddCursorAtNextOccurrence{})
	if got := s.SelectedText(); got != "foo" {
		t.Fatalf("needle = %q", got)
	}
	if got := s.CursorCount(); got != 1 {
		t.Fatalf("cursors = %d, want 1", got)
	}

	s.Apply(AddCursorAtNextOccurrence{})
	if got := s.CursorCount(); got != 2 {
		t.Fatalf("cursors = %d, want 2", got)
	}
	s.Apply(AddCursorAtNextOccurrence{})
	if got := s.CursorCount(); got != 3 {
		t.Fatalf("cursors = %d, want 3", got)
	}

	// All matches taken: wrapping finds only covered ones.
	if s.Apply(AddCursorAtNextOccurrence{}) {
		t.Fatal("expected no change once every occurrence is selected")
	}
	checkInvariants(t, s)
}

func TestUnselectOccurrenceStepsBack(t *testing.T) {
	s := newEditor("x y x y x")
	s.PlaceCursorAt(Pos(0, 0))
	s.Apply(AddCursorAtNextOccurrence{})
	s.Apply(AddCursorAtNextOccurrence{})
	s.Apply(AddCursorAtNextOccurrence{})
	if got := s.CursorCount(); got != 3 {
		t.Fatalf("cursors = %d, want 3", got)
	}

	s.Apply(UnselectOccurrence{})
	if got := s.CursorCount(); got != 2 {
		t.Fatalf("after unselect: %d cursors, want 2", got)
	}
	s.Apply(UnselectOccurrence{})
	if got := s.CursorCount(); got != 1 {
		t.Fatalf("after second unselect: %d cursors, want 1", got)
	}
}

func TestSelectAllOccurrencesSingleMatch(t *testing.T) {
	s := newEditor("hello world")
	s.PlaceCursorAt(Pos(0, 0))
	s.Apply(SelectWord{})
	if got := s.SelectedText(); got != "hello" {
		t.Fatalf("selected = %q", got)
	}

	s.Apply(AddCursorsAtAllOccurrences{})
	if got := s.CursorCount(); got != 1 {
		t.Fatalf("cursors = %d, want exactly 1 for a single match", got)
	}
	checkInvariants(t, s)
}

func TestSelectAllOccurrencesUnicode(t *testing.T) {
	s := newEditor("äbc äbc")
	s.PlaceCursorAt(Pos(0, 0))
	s.Apply(AddCursorsAtAllOccurrences{})
	if got := s.CursorCount(); got != 2 {
		t.Fatalf("cursors = %d, want 2", got)
	}
	sels := s.Selections()
	if sels[0].Start() != Pos(0, 0) || sels[0].End() != Pos(0, 3) {
		t.Fatalf("first selection = %v..%v", sels[0].Start(), sels[0].End())
	}
	if sels[1].Start() != Pos(0, 4) || sels[1].End() != Pos(0, 7) {
		t.Fatalf("second selection = %v..%v", sels[1].Start(), sels[1].End())
	}
	s.Apply(InsertText{Text: "xy"})
	if got := s.Content(); got != "xy xy" {
		t.Fatalf("content = %q", got)
	}
}

func TestMovementEndsOccurrenceSession(t *testing.T) {
	s := newEditor("q w q")
	s.PlaceCursorAt(Pos(0, 0))
	s.Apply(AddCursorAtNextOccurrence{})
	s.Apply(Move{Target: MoveCharRight})
	if s.Apply(UnselectOccurrence{}) {
		t.Fatal("movement must end the occurrence session")
	}
}
