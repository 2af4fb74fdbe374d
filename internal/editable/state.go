package editable

import (
	"sort"

	"github.com/quellen/quill/internal/logger"
	"github.com/quellen/quill/internal/textbuf"
)

// Clipboard is the destination for Copy and Cut and is owned by the caller.
// The state never reads from it; Paste carries already-resolved text.
type Clipboard interface {
	Write(text string) error
}

// State owns one buffer, its cursors and selections, and the edit history
// for a single editing context. Cursors and selections are index-aligned;
// every public operation keeps them sorted and de-duplicated.
type State struct {
	context     EditContext
	constraints Constraints
	buf         textbuf.EditBuffer

	cursors    []Cursor
	selections []Selection
	active     int

	history    *History
	occurrence *occurrenceState
	clipboard  Clipboard

	// pageLines is the cursor travel of one page movement.
	pageLines int
}

// Option configures a State at construction.
type Option func(*State)

// WithHistoryLimit caps the number of undo batches kept.
func WithHistoryLimit(limit int) Option {
	return func(s *State) { s.history = NewHistory(limit) }
}

// WithPageLines sets how many lines page-up/down moves.
func WithPageLines(n int) Option {
	return func(s *State) {
		if n > 0 {
			s.pageLines = n
		}
	}
}

// WithClipboard routes Copy and Cut output to c.
func WithClipboard(c Clipboard) Option {
	return func(s *State) { s.clipboard = c }
}

const (
	defaultHistoryLimit = 1000
	defaultPageLines    = 24
)

// NewState creates a state for the given context, pre-populated with text.
// Multiline contexts store text in a rope; single-line contexts use a flat
// string. The cursor starts at the end of the content.
func NewState(ctx EditContext, text string, opts ...Option) *State {
	var buf textbuf.EditBuffer
	cons := ctx.Constraints()
	if cons.AllowMultiline {
		buf = textbuf.NewRopeBufferFromText(text)
	} else {
		buf = textbuf.NewStringBufferFromText(text)
	}

	s := &State{
		context:     ctx,
		constraints: cons,
		buf:         buf,
		history:     NewHistory(defaultHistoryLimit),
		pageLines:   defaultPageLines,
	}
	for _, opt := range opts {
		opt(s)
	}

	line, col := buf.OffsetToPosition(buf.Len())
	s.cursors = []Cursor{At(line, col)}
	s.selections = []Selection{CollapsedAt(Pos(line, col))}

	logger.DebugTagf("editable", "new state for %s (%d chars)", ctx, buf.Len())
	return s
}

// Context returns the surface this state serves.
func (s *State) Context() EditContext { return s.context }

// Constraints returns the active edit rules.
func (s *State) Constraints() Constraints { return s.constraints }

// Buffer exposes read access to the underlying text.
func (s *State) Buffer() textbuf.Buffer { return s.buf }

// Content returns the whole buffer text.
func (s *State) Content() string { return s.buf.Content() }

// Cursors returns a copy of the cursor list in document order.
func (s *State) Cursors() []Cursor { return cloneCursors(s.cursors) }

// Selections returns a copy of the selection list, index-aligned with Cursors.
func (s *State) Selections() []Selection {
	out := make([]Selection, len(s.selections))
	copy(out, s.selections)
	return out
}

// ActiveCursor returns the cursor keyboard focus follows.
func (s *State) ActiveCursor() Cursor { return s.cursors[s.active] }

// ActiveIndex returns the index of the active cursor.
func (s *State) ActiveIndex() int { return s.active }

// CursorCount returns the number of cursors.
func (s *State) CursorCount() int { return len(s.cursors) }

// CanUndo reports whether an undo step is available.
func (s *State) CanUndo() bool {
	return s.constraints.EnableUndo && s.history.CanUndo()
}

// CanRedo reports whether a redo step is available.
func (s *State) CanRedo() bool {
	return s.constraints.EnableUndo && s.history.CanRedo()
}

// SelectedText returns the active cursor's selected text.
func (s *State) SelectedText() string {
	return s.selectedTextAt(s.active)
}

// HasSelection reports whether any cursor has a non-empty selection.
func (s *State) HasSelection() bool {
	for _, sel := range s.selections {
		if !sel.IsEmpty() {
			return true
		}
	}
	return false
}

// PlaceCursorAt collapses to a single cursor at pos, clamped onto content.
// Pointer clicks land here.
func (s *State) PlaceCursorAt(pos Position) {
	p := s.clampPosition(pos)
	s.cursors = []Cursor{At(p.Line, p.Column)}
	s.selections = []Selection{CollapsedAt(p)}
	s.active = 0
	s.occurrence = nil
}

// SetContent replaces the whole buffer, resets the cursor to the end of the
// new content, and drops all history.
func (s *State) SetContent(text string) {
	s.buf.SetContent(text)
	line, col := s.buf.OffsetToPosition(s.buf.Len())
	s.cursors = []Cursor{At(line, col)}
	s.selections = []Selection{CollapsedAt(Pos(line, col))}
	s.active = 0
	s.history.Clear()
	s.occurrence = nil
}

// Clear deletes the whole content as an undoable edit.
func (s *State) Clear() bool {
	if s.buf.Len() == 0 {
		return false
	}
	before := cloneCursors(s.cursors)
	deleted := s.buf.Content()
	s.buf.Clear()
	s.cursors = []Cursor{At(0, 0)}
	s.selections = []Selection{CollapsedAt(Pos(0, 0))}
	s.active = 0
	s.occurrence = nil
	s.recordBatch(Batch{
		Ops:           []EditOperation{{Offset: 0, DeletedText: deleted}},
		CursorsBefore: before,
		CursorsAfter:  cloneCursors(s.cursors),
	})
	return true
}

// cursorOffset returns cursor i's position as a character offset.
func (s *State) cursorOffset(i int) int {
	c := s.cursors[i]
	return s.buf.PositionToOffset(c.Line, c.Column)
}

// selectionOffsets returns cursor i's selection as an ordered offset pair;
// both are equal for an empty selection.
func (s *State) selectionOffsets(i int) (int, int) {
	sel := s.selections[i]
	start := sel.Start()
	end := sel.End()
	return s.buf.PositionToOffset(start.Line, start.Column),
		s.buf.PositionToOffset(end.Line, end.Column)
}

func (s *State) selectedTextAt(i int) string {
	start, end := s.selectionOffsets(i)
	if start == end {
		return ""
	}
	return s.buf.Slice(start, end)
}

// placeCursor moves cursor i to (line, column) and collapses its selection.
func (s *State) placeCursor(i, line, column int) {
	desired := s.cursors[i].DesiredColumn
	s.cursors[i] = Cursor{Line: line, Column: column, DesiredColumn: desired}
	s.selections[i] = CollapsedAt(Pos(line, column))
}

// moveHead moves cursor i to (line, column) keeping its selection anchor.
func (s *State) moveHead(i, line, column int) {
	desired := s.cursors[i].DesiredColumn
	s.cursors[i] = Cursor{Line: line, Column: column, DesiredColumn: desired}
	s.selections[i].Head = Pos(line, column)
}

// collapseAllSelections empties every selection at its cursor.
func (s *State) collapseAllSelections() bool {
	changed := false
	for i := range s.selections {
		if !s.selections[i].IsEmpty() {
			s.selections[i] = CollapsedAt(s.cursors[i].Position())
			changed = true
		}
	}
	return changed
}

// normalize sorts cursors by position, removes duplicates, and keeps the
// active index pointing at the same cursor.
func (s *State) normalize() {
	if len(s.cursors) == 0 {
		line, col := s.buf.OffsetToPosition(0)
		s.cursors = []Cursor{At(line, col)}
		s.selections = []Selection{CollapsedAt(Pos(line, col))}
		s.active = 0
		return
	}

	activePos := s.cursors[s.active].Position()

	idx := make([]int, len(s.cursors))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return s.cursors[idx[a]].Position().Less(s.cursors[idx[b]].Position())
	})

	var cursors []Cursor
	var selections []Selection
	for _, i := range idx {
		pos := s.cursors[i].Position()
		if len(cursors) > 0 && cursors[len(cursors)-1].Position() == pos {
			continue
		}
		cursors = append(cursors, s.cursors[i])
		selections = append(selections, s.selections[i])
	}
	s.cursors = cursors
	s.selections = selections

	s.active = 0
	for i, c := range s.cursors {
		if c.Position() == activePos {
			s.active = i
			break
		}
	}
}

// descendingOrder returns cursor indices sorted by position, last first.
func (s *State) descendingOrder() []int {
	idx := make([]int, len(s.cursors))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return s.cursors[idx[b]].Position().Less(s.cursors[idx[a]].Position())
	})
	return idx
}

// recordBatch pushes an edit onto the history when undo is enabled.
func (s *State) recordBatch(b Batch) {
	if !s.constraints.EnableUndo {
		return
	}
	s.history.Push(b)
}

// coveredLines returns the sorted distinct lines any cursor or selection
// touches. A selection ending at column 0 of a line does not cover that line.
func (s *State) coveredLines() []int {
	seen := map[int]bool{}
	for i, c := range s.cursors {
		sel := s.selections[i]
		if sel.IsEmpty() {
			seen[c.Line] = true
			continue
		}
		start, end := sel.Start(), sel.End()
		last := end.Line
		if end.Column == 0 && end.Line > start.Line {
			last--
		}
		for l := start.Line; l <= last; l++ {
			seen[l] = true
		}
	}
	lines := make([]int, 0, len(seen))
	for l := range seen {
		lines = append(lines, l)
	}
	sort.Ints(lines)
	return lines
}

func cloneCursors(cs []Cursor) []Cursor {
	out := make([]Cursor, len(cs))
	copy(out, cs)
	return out
}
