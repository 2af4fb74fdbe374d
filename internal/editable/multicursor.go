package editable

import (
	"sort"

	"github.com/quellen/quill/internal/textutil"
)

// SelectAllContent collapses to a single cursor whose selection spans the
// whole buffer.
func (s *State) SelectAllContent() bool {
	if !s.constraints.AllowSelection {
		return false
	}
	line, col := s.buf.OffsetToPosition(s.buf.Len())
	s.cursors = []Cursor{At(line, col)}
	s.selections = []Selection{{Anchor: Pos(0, 0), Head: Pos(line, col)}}
	s.active = 0
	s.occurrence = nil
	return true
}

// SelectWordAll selects the word under every cursor, then merges selections
// that grew into each other.
func (s *State) SelectWordAll() bool {
	if !s.constraints.AllowSelection {
		return false
	}
	changed := false
	for i := range s.cursors {
		if s.selectWordAt(i) {
			changed = true
		}
	}
	if changed {
		s.mergeOverlappingSelections()
	}
	return changed
}

// selectWordAt expands cursor i's selection over the run of same-class
// characters around it and moves the cursor to the run's end.
func (s *State) selectWordAt(i int) bool {
	c := s.cursors[i]
	text, ok := s.buf.Line(c.Line)
	if !ok {
		return false
	}
	runes := []rune(text)
	if len(runes) == 0 {
		return false
	}
	col := min(c.Column, len(runes)-1)
	cls := textutil.ClassOf(runes[col])

	start := col
	for start > 0 && textutil.ClassOf(runes[start-1]) == cls {
		start--
	}
	end := col + 1
	for end < len(runes) && textutil.ClassOf(runes[end]) == cls {
		end++
	}

	s.selections[i] = Selection{Anchor: Pos(c.Line, start), Head: Pos(c.Line, end)}
	s.cursors[i] = At(c.Line, end)
	return true
}

// SelectLineAll selects every cursor's full line including its line break,
// so deleting the selection removes the line.
func (s *State) SelectLineAll() bool {
	if !s.constraints.AllowSelection {
		return false
	}
	for i := range s.cursors {
		line := s.cursors[i].Line
		var head Position
		if line+1 < s.buf.LineCount() {
			head = Pos(line+1, 0)
		} else {
			head = Pos(line, s.buf.LineLength(line))
		}
		s.selections[i] = Selection{Anchor: Pos(line, 0), Head: head}
		s.cursors[i] = At(head.Line, head.Column)
	}
	s.mergeOverlappingSelections()
	return true
}

// CollapseSelections empties every selection at its cursor.
func (s *State) CollapseSelections() bool {
	return s.collapseAllSelections()
}

// CollapseToActiveCursor keeps only the active cursor and drops the rest.
func (s *State) CollapseToActiveCursor() bool {
	if len(s.cursors) == 1 {
		return s.collapseAllSelections()
	}
	c := s.cursors[s.active]
	s.cursors = []Cursor{c}
	s.selections = []Selection{CollapsedAt(c.Position())}
	s.active = 0
	s.occurrence = nil
	return true
}

// AddCursorOnLineAbove adds a cursor one line above the topmost cursor,
// keeping its column where the line allows.
func (s *State) AddCursorOnLineAbove() bool {
	if !s.constraints.AllowMultiCursor || !s.constraints.AllowMultiline {
		return false
	}
	top := s.cursors[0]
	if top.Line == 0 {
		return false
	}
	line := top.Line - 1
	return s.addCursorAt(Pos(line, min(top.EffectiveColumn(), s.buf.LineLength(line))))
}

// AddCursorOnLineBelow adds a cursor one line below the bottommost cursor.
func (s *State) AddCursorOnLineBelow() bool {
	if !s.constraints.AllowMultiCursor || !s.constraints.AllowMultiline {
		return false
	}
	bottom := s.cursors[len(s.cursors)-1]
	if bottom.Line+1 >= s.buf.LineCount() {
		return false
	}
	line := bottom.Line + 1
	return s.addCursorAt(Pos(line, min(bottom.EffectiveColumn(), s.buf.LineLength(line))))
}

// AddCursorAtPosition places an extra cursor at pos (clamped to content).
func (s *State) AddCursorAtPosition(pos Position) bool {
	if !s.constraints.AllowMultiCursor {
		return false
	}
	return s.addCursorAt(s.clampPosition(pos))
}

// ToggleCursorAtPosition removes the cursor at pos when one is there and
// more than one cursor exists; otherwise it adds one.
func (s *State) ToggleCursorAtPosition(pos Position) bool {
	if !s.constraints.AllowMultiCursor {
		return false
	}
	pos = s.clampPosition(pos)
	for i, c := range s.cursors {
		if c.Position() == pos {
			if len(s.cursors) == 1 {
				return false
			}
			s.cursors = append(s.cursors[:i], s.cursors[i+1:]...)
			s.selections = append(s.selections[:i], s.selections[i+1:]...)
			if s.active >= len(s.cursors) {
				s.active = len(s.cursors) - 1
			}
			return true
		}
	}
	return s.addCursorAt(pos)
}

// addCursorAt appends a collapsed cursor and makes it active. Duplicate
// positions leave the state unchanged.
func (s *State) addCursorAt(pos Position) bool {
	for _, c := range s.cursors {
		if c.Position() == pos {
			return false
		}
	}
	s.cursors = append(s.cursors, At(pos.Line, pos.Column))
	s.selections = append(s.selections, CollapsedAt(pos))
	s.active = len(s.cursors) - 1
	s.normalize()
	for i, c := range s.cursors {
		if c.Position() == pos {
			s.active = i
			break
		}
	}
	return true
}

// SelectRectangle commits a column drag: one cursor per line between anchor
// and head, each selecting the dragged column span on its line.
func (s *State) SelectRectangle(anchor, head Position) bool {
	if !s.constraints.AllowMultiCursor || !s.constraints.AllowSelection {
		return false
	}
	first := min(anchor.Line, head.Line)
	last := min(max(anchor.Line, head.Line), s.buf.LineCount()-1)
	if first < 0 {
		first = 0
	}

	var cursors []Cursor
	var selections []Selection
	for line := first; line <= last; line++ {
		lineLen := s.buf.LineLength(line)
		from := min(anchor.Column, lineLen)
		to := min(head.Column, lineLen)
		cursors = append(cursors, At(line, to))
		selections = append(selections, Selection{
			Anchor: Pos(line, from),
			Head:   Pos(line, to),
		})
	}
	if len(cursors) == 0 {
		return false
	}
	s.cursors = cursors
	s.selections = selections
	s.active = len(cursors) - 1
	s.normalize()
	s.occurrence = nil
	return true
}

// clampPosition snaps pos onto existing content.
func (s *State) clampPosition(pos Position) Position {
	line, col := s.buf.OffsetToPosition(s.buf.PositionToOffset(pos.Line, pos.Column))
	return Pos(line, col)
}

// mergeOverlappingSelections joins selections that share characters, keeping
// one cursor at the merged end.
func (s *State) mergeOverlappingSelections() {
	if len(s.selections) < 2 {
		return
	}
	activePos := s.cursors[s.active].Position()

	idx := make([]int, len(s.selections))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return s.selections[idx[a]].Start().Less(s.selections[idx[b]].Start())
	})

	var cursors []Cursor
	var selections []Selection
	for _, i := range idx {
		sel := s.selections[i]
		if len(selections) > 0 {
			prev := &selections[len(selections)-1]
			if sel.Start().Less(prev.End()) || sel.Start() == prev.End() && sel.IsEmpty() {
				if prev.End().Less(sel.End()) {
					start := prev.Start()
					prev.Anchor = start
					prev.Head = sel.End()
					cursors[len(cursors)-1] = At(sel.End().Line, sel.End().Column)
				}
				continue
			}
		}
		cursors = append(cursors, s.cursors[i])
		selections = append(selections, sel)
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
