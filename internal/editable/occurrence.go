package editable

import (
	"github.com/quellen/quill/internal/logger"
	"github.com/quellen/quill/internal/textutil"
)

// occurrenceState tracks a repeated "select next occurrence" session. The
// search offset advances monotonically past each accepted match so repeated
// calls cycle through the document instead of rescanning from the anchor.
// Any movement or edit ends the session.
type occurrenceState struct {
	searchText string
	added      []Position
	lastOffset int
}

// SelectNextOccurrence adds a cursor on the next match of the active
// selection. With an empty selection it first selects the word under the
// active cursor and stops there, so the first press defines the needle.
func (s *State) SelectNextOccurrence() bool {
	if !s.constraints.AllowMultiCursor || !s.constraints.AllowSelection {
		return false
	}

	if s.selections[s.active].IsEmpty() {
		if !s.selectWordAt(s.active) {
			return false
		}
		sel := s.selections[s.active]
		s.occurrence = &occurrenceState{
			searchText: s.selectedTextAt(s.active),
			lastOffset: s.buf.PositionToOffset(sel.End().Line, sel.End().Column),
		}
		return true
	}

	needle := s.selectedTextAt(s.active)
	if needle == "" {
		return false
	}
	if s.occurrence == nil || s.occurrence.searchText != needle {
		sel := s.selections[s.active]
		s.occurrence = &occurrenceState{
			searchText: needle,
			lastOffset: s.buf.PositionToOffset(sel.End().Line, sel.End().Column),
		}
	}

	content := s.buf.Content()
	from := s.occurrence.lastOffset
	firstTried := -1
	for {
		occ, ok := textutil.FindNextOccurrence(content, needle, from)
		if !ok || occ.Start == firstTried {
			return false
		}
		if firstTried < 0 {
			firstTried = occ.Start
		}
		endLine, endCol := s.buf.OffsetToPosition(occ.End)
		end := Pos(endLine, endCol)
		if !s.hasCursorAt(end) {
			startLine, startCol := s.buf.OffsetToPosition(occ.Start)
			s.cursors = append(s.cursors, At(end.Line, end.Column))
			s.selections = append(s.selections, Selection{
				Anchor: Pos(startLine, startCol),
				Head:   end,
			})
			s.occurrence.added = append(s.occurrence.added, end)
			s.occurrence.lastOffset = occ.End
			s.sortKeepingOccurrence(end)
			logger.DebugTagf("editable", "%s occurrence at (%d,%d)", s.context, startLine, startCol)
			return true
		}
		from = occ.End
	}
}

// UnselectLastOccurrence removes the cursor added by the most recent
// SelectNextOccurrence, stepping the session back one match.
func (s *State) UnselectLastOccurrence() bool {
	if s.occurrence == nil || len(s.occurrence.added) == 0 {
		return false
	}
	last := s.occurrence.added[len(s.occurrence.added)-1]
	s.occurrence.added = s.occurrence.added[:len(s.occurrence.added)-1]

	if len(s.cursors) == 1 {
		return false
	}
	for i, c := range s.cursors {
		if c.Position() == last {
			s.cursors = append(s.cursors[:i], s.cursors[i+1:]...)
			s.selections = append(s.selections[:i], s.selections[i+1:]...)
			break
		}
	}
	if s.active >= len(s.cursors) {
		s.active = len(s.cursors) - 1
	}
	if n := len(s.occurrence.added); n > 0 {
		s.setActiveAt(s.occurrence.added[n-1])
	}
	return true
}

// SelectAllOccurrences replaces the cursor set with one cursor per match of
// the active selection, or of the word under the cursor when nothing is
// selected. Matches coinciding with the original selection collapse into one
// cursor, never two.
func (s *State) SelectAllOccurrences() bool {
	if !s.constraints.AllowMultiCursor || !s.constraints.AllowSelection {
		return false
	}

	needle := s.selectedTextAt(s.active)
	if needle == "" {
		if !s.selectWordAt(s.active) {
			return false
		}
		needle = s.selectedTextAt(s.active)
		if needle == "" {
			return false
		}
	}
	return s.SelectOccurrencesOf(needle)
}

// SelectOccurrencesOf replaces the cursor set with one cursor per match of
// needle, each selecting its match. Search surfaces route through here.
func (s *State) SelectOccurrencesOf(needle string) bool {
	if !s.constraints.AllowMultiCursor || !s.constraints.AllowSelection || needle == "" {
		return false
	}
	matches := textutil.FindAllOccurrences(s.buf.Content(), needle)
	if len(matches) == 0 {
		return false
	}

	activeEnd := s.selections[s.active].End()
	cursors := make([]Cursor, 0, len(matches))
	selections := make([]Selection, 0, len(matches))
	for _, m := range matches {
		startLine, startCol := s.buf.OffsetToPosition(m.Start)
		endLine, endCol := s.buf.OffsetToPosition(m.End)
		cursors = append(cursors, At(endLine, endCol))
		selections = append(selections, Selection{
			Anchor: Pos(startLine, startCol),
			Head:   Pos(endLine, endCol),
		})
	}
	s.cursors = cursors
	s.selections = selections
	s.active = 0
	s.normalize()
	s.setActiveAt(activeEnd)
	s.occurrence = nil
	logger.DebugTagf("editable", "%s selected %d occurrences", s.context, len(s.cursors))
	return true
}

func (s *State) hasCursorAt(pos Position) bool {
	for _, c := range s.cursors {
		if c.Position() == pos {
			return true
		}
	}
	return false
}

func (s *State) setActiveAt(pos Position) {
	for i, c := range s.cursors {
		if c.Position() == pos {
			s.active = i
			return
		}
	}
}

// sortKeepingOccurrence normalizes cursor order and keeps the newly added
// occurrence cursor active.
func (s *State) sortKeepingOccurrence(pos Position) {
	s.active = len(s.cursors) - 1
	s.normalize()
	s.setActiveAt(pos)
}
