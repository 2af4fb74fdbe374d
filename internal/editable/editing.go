package editable

import (
	"strings"

	"github.com/quellen/quill/internal/logger"
)

// pendingEdit is one cursor's share of a logical edit: replace the character
// range [start, end) with text. Offsets are valid in the buffer state at the
// moment the edit applies.
type pendingEdit struct {
	start, end int
	text       string

	// cursor, when set, is the cursor's post-edit offset (in the buffer as
	// it stands right after this edit) instead of the default start+len(text).
	cursor    int
	cursorSet bool
}

// editFunc produces cursor i's edit from its current selection range.
// Returning ok=false leaves that cursor untouched.
type editFunc func(i, selStart, selEnd int) (pendingEdit, bool)

// clipOffset maps a pending offset across a replace of [start, end) that
// shifted the buffer by delta characters: offsets past the range shift with
// it, offsets inside the removed range collapse to its start.
func clipOffset(p, start, end, delta int) int {
	switch {
	case p >= end:
		return p + delta
	case p > start:
		return start
	default:
		return p
	}
}

// applyToAllCursors runs one logical edit across every cursor, processing
// cursors in descending document order so pending offsets stay valid, and
// shifting already-placed cursors when a later edit lands before them.
// Selection ranges are resolved up front and shifted or clipped as edits
// apply, so an overlapping selection never deletes text outside what
// survives of it; a selection entirely consumed by an earlier edit is
// skipped. It records exactly one history batch and reports whether
// anything changed.
func (s *State) applyToAllCursors(makeEdit editFunc) bool {
	before := cloneCursors(s.cursors)
	ops := make([]EditOperation, 0, len(s.cursors))
	final := make([]int, len(s.cursors))
	starts := make([]int, len(s.cursors))
	ends := make([]int, len(s.cursors))
	consumed := make([]bool, len(s.cursors))
	for i := range s.cursors {
		final[i] = -1
		starts[i], ends[i] = s.selectionOffsets(i)
	}

	changed := false
	for _, i := range s.descendingOrder() {
		if consumed[i] {
			final[i] = starts[i]
			continue
		}
		ed, ok := makeEdit(i, starts[i], ends[i])
		if !ok {
			if starts[i] == ends[i] {
				final[i] = starts[i]
			} else {
				final[i] = s.cursorOffset(i)
			}
			continue
		}

		deleted := s.buf.Slice(ed.start, ed.end)
		if ed.end > ed.start {
			s.buf.Remove(ed.start, ed.end)
		}
		if ed.text != "" {
			s.buf.Insert(ed.start, ed.text)
		}

		insLen := runeLen(ed.text)
		delta := insLen - (ed.end - ed.start)
		for j := range final {
			switch {
			case final[j] < 0:
			case final[j] >= ed.end:
				final[j] += delta
			case final[j] > ed.start:
				final[j] = ed.start + insLen
			}
		}
		for j := range starts {
			if final[j] >= 0 || j == i {
				continue
			}
			wasRange := ends[j] > starts[j]
			starts[j] = clipOffset(starts[j], ed.start, ed.end, delta)
			ends[j] = clipOffset(ends[j], ed.start, ed.end, delta)
			if wasRange && ends[j] <= starts[j] {
				consumed[j] = true
			}
		}
		if ed.cursorSet {
			final[i] = ed.cursor
		} else {
			final[i] = ed.start + insLen
		}

		ops = append(ops, EditOperation{
			Offset:       ed.start,
			DeletedText:  deleted,
			InsertedText: ed.text,
		})
		changed = true
	}
	if !changed {
		return false
	}

	for i, off := range final {
		line, col := s.buf.OffsetToPosition(off)
		s.placeCursor(i, line, col)
		s.cursors[i].ClearDesiredColumn()
	}
	s.normalize()
	s.occurrence = nil

	s.recordBatch(Batch{
		Ops:           ops,
		CursorsBefore: before,
		CursorsAfter:  cloneCursors(s.cursors),
	})
	return true
}

// InsertCharAll inserts ch at every cursor, replacing non-empty selections.
// The whole call is rejected when the character fails the context's filter
// or the result would exceed the length cap.
func (s *State) InsertCharAll(ch rune) bool {
	if ch == '\n' {
		return s.InsertNewlineAll()
	}
	return s.InsertTextAll(string(ch))
}

// InsertNewlineAll breaks the line at every cursor; a no-op in single-line
// contexts.
func (s *State) InsertNewlineAll() bool {
	if !s.constraints.AllowMultiline {
		return false
	}
	return s.insertAll("\n")
}

// InsertTextAll inserts text at every cursor. Multi-line text requires a
// multiline context; every character must pass the filter.
func (s *State) InsertTextAll(text string) bool {
	if text == "" {
		return false
	}
	if strings.ContainsRune(text, '\n') && !s.constraints.AllowMultiline {
		return false
	}
	for _, r := range text {
		if r != '\n' && !s.constraints.IsCharAllowed(r) {
			logger.DebugTagf("editable", "%s rejected character %q", s.context, r)
			return false
		}
	}
	return s.insertAll(text)
}

func (s *State) insertAll(text string) bool {
	if s.exceedsMaxLength(runeLen(text)) {
		return false
	}
	return s.applyToAllCursors(func(i, selStart, selEnd int) (pendingEdit, bool) {
		return pendingEdit{start: selStart, end: selEnd, text: text}, true
	})
}

// exceedsMaxLength checks the cap against the length after selections are
// replaced by perCursor characters each.
func (s *State) exceedsMaxLength(perCursor int) bool {
	return s.exceedsMaxLengthTotal(perCursor * len(s.cursors))
}

// exceedsMaxLengthTotal checks the cap against the length after selections
// are replaced by inserted characters in total.
func (s *State) exceedsMaxLengthTotal(inserted int) bool {
	if s.constraints.MaxLength <= 0 {
		return false
	}
	selected := 0
	for i := range s.selections {
		start, end := s.selectionOffsets(i)
		selected += end - start
	}
	current := s.buf.Len() - selected
	return s.constraints.WouldExceedMaxLength(current, inserted)
}

// DeleteBackwardAll deletes each cursor's selection, or the character before
// the cursor when the selection is empty.
func (s *State) DeleteBackwardAll() bool {
	return s.applyToAllCursors(func(i, selStart, selEnd int) (pendingEdit, bool) {
		if selEnd > selStart {
			return pendingEdit{start: selStart, end: selEnd}, true
		}
		if selStart == 0 {
			return pendingEdit{}, false
		}
		return pendingEdit{start: selStart - 1, end: selStart}, true
	})
}

// DeleteForwardAll deletes each cursor's selection, or the character after
// the cursor when the selection is empty.
func (s *State) DeleteForwardAll() bool {
	return s.applyToAllCursors(func(i, selStart, selEnd int) (pendingEdit, bool) {
		if selEnd > selStart {
			return pendingEdit{start: selStart, end: selEnd}, true
		}
		if selStart >= s.buf.Len() {
			return pendingEdit{}, false
		}
		return pendingEdit{start: selStart, end: selStart + 1}, true
	})
}

// DeleteWordBackwardAll deletes from each cursor back to the previous word
// boundary; non-empty selections are deleted as-is.
func (s *State) DeleteWordBackwardAll() bool {
	return s.applyToAllCursors(func(i, selStart, selEnd int) (pendingEdit, bool) {
		if selEnd > selStart {
			return pendingEdit{start: selStart, end: selEnd}, true
		}
		c := s.cursors[i]
		line, col := s.wordLeftFrom(c.Line, c.Column)
		start := s.buf.PositionToOffset(line, col)
		if start >= selStart {
			return pendingEdit{}, false
		}
		return pendingEdit{start: start, end: selStart}, true
	})
}

// DeleteWordForwardAll deletes from each cursor to the next word boundary;
// non-empty selections are deleted as-is.
func (s *State) DeleteWordForwardAll() bool {
	return s.applyToAllCursors(func(i, selStart, selEnd int) (pendingEdit, bool) {
		if selEnd > selStart {
			return pendingEdit{start: selStart, end: selEnd}, true
		}
		c := s.cursors[i]
		line, col := s.wordRightFrom(c.Line, c.Column)
		end := s.buf.PositionToOffset(line, col)
		if end <= selStart {
			return pendingEdit{}, false
		}
		return pendingEdit{start: selStart, end: end}, true
	})
}

// Undo reverts the most recent edit batch and restores its cursor snapshot.
func (s *State) Undo() bool {
	if !s.constraints.EnableUndo {
		return false
	}
	b, ok := s.history.PopUndo()
	if !ok {
		return false
	}
	s.applyInverse(b)
	logger.DebugTagf("editable", "%s undo (%d ops)", s.context, len(b.Ops))
	return true
}

// Redo re-applies the most recently undone batch.
func (s *State) Redo() bool {
	if !s.constraints.EnableUndo {
		return false
	}
	b, ok := s.history.PopRedo()
	if !ok {
		return false
	}
	s.applyInverse(b)
	logger.DebugTagf("editable", "%s redo (%d ops)", s.context, len(b.Ops))
	return true
}

// applyInverse rolls a batch back: operations in reverse order, each one
// inverted, then the pre-edit cursor snapshot restored. Redo reuses this by
// feeding the already-inverted batch from the redo stack.
func (s *State) applyInverse(b Batch) {
	for i := len(b.Ops) - 1; i >= 0; i-- {
		op := b.Ops[i]
		if op.InsertedText != "" {
			s.buf.Remove(op.Offset, op.Offset+runeLen(op.InsertedText))
		}
		if op.DeletedText != "" {
			s.buf.Insert(op.Offset, op.DeletedText)
		}
	}
	if len(b.CursorsBefore) > 0 {
		s.cursors = cloneCursors(b.CursorsBefore)
		s.selections = make([]Selection, len(s.cursors))
		for i, c := range s.cursors {
			s.selections[i] = CollapsedAt(c.Position())
		}
		s.active = 0
	}
	s.occurrence = nil
}
