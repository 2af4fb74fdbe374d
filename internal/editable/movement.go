package editable

import "github.com/quellen/quill/internal/textutil"

// MoveCursors applies one movement to every cursor. With extend the
// selection head follows the cursor; without it the selection collapses.
// Vertical targets are no-ops in single-line contexts.
func (s *State) MoveCursors(target MoveTarget, extend bool) bool {
	if extend && !s.constraints.AllowSelection {
		extend = false
	}
	switch target {
	case MoveLineUp, MoveLineDown, MovePageUp, MovePageDown:
		if !s.constraints.AllowMultiline {
			return false
		}
	}

	beforeCursors := cloneCursors(s.cursors)
	beforeSelections := s.Selections()

	for i := range s.cursors {
		s.moveOne(i, target, extend)
	}
	s.normalize()
	s.occurrence = nil

	return !cursorsEqual(beforeCursors, s.cursors) ||
		!selectionsEqual(beforeSelections, s.selections)
}

func (s *State) moveOne(i int, target MoveTarget, extend bool) {
	switch target {
	case MoveCharLeft:
		s.moveCharLeft(i, extend)
	case MoveCharRight:
		s.moveCharRight(i, extend)
	case MoveLineUp:
		s.moveVertical(i, -1, extend)
	case MoveLineDown:
		s.moveVertical(i, 1, extend)
	case MovePageUp:
		s.moveVertical(i, -s.pageLines, extend)
	case MovePageDown:
		s.moveVertical(i, s.pageLines, extend)
	case MoveLineStart:
		s.setHorizontal(i, s.cursors[i].Line, 0, extend)
	case MoveLineStartSmart:
		s.moveLineStartSmart(i, extend)
	case MoveLineEnd:
		line := s.cursors[i].Line
		s.setHorizontal(i, line, s.buf.LineLength(line), extend)
	case MoveWordLeft:
		line, col := s.wordLeftFrom(s.cursors[i].Line, s.cursors[i].Column)
		s.setHorizontal(i, line, col, extend)
	case MoveWordRight:
		line, col := s.wordRightFrom(s.cursors[i].Line, s.cursors[i].Column)
		s.setHorizontal(i, line, col, extend)
	case MoveDocumentStart:
		s.setHorizontal(i, 0, 0, extend)
	case MoveDocumentEnd:
		line, col := s.buf.OffsetToPosition(s.buf.Len())
		s.setHorizontal(i, line, col, extend)
	}
}

// setHorizontal places cursor i and drops its remembered column.
func (s *State) setHorizontal(i, line, col int, extend bool) {
	if extend {
		s.moveHead(i, line, col)
	} else {
		s.placeCursor(i, line, col)
	}
	s.cursors[i].ClearDesiredColumn()
}

// moveCharLeft collapses a non-empty selection to its start without moving;
// otherwise it steps one character, wrapping to the previous line end when
// multiline is allowed.
func (s *State) moveCharLeft(i int, extend bool) {
	c := s.cursors[i]
	sel := s.selections[i]
	if !extend && !sel.IsEmpty() {
		start := sel.Start()
		s.setHorizontal(i, start.Line, start.Column, false)
		return
	}
	switch {
	case c.Column > 0:
		s.setHorizontal(i, c.Line, c.Column-1, extend)
	case s.constraints.AllowMultiline && c.Line > 0:
		s.setHorizontal(i, c.Line-1, s.buf.LineLength(c.Line-1), extend)
	default:
		s.cursors[i].ClearDesiredColumn()
	}
}

func (s *State) moveCharRight(i int, extend bool) {
	c := s.cursors[i]
	sel := s.selections[i]
	if !extend && !sel.IsEmpty() {
		end := sel.End()
		s.setHorizontal(i, end.Line, end.Column, false)
		return
	}
	switch {
	case c.Column < s.buf.LineLength(c.Line):
		s.setHorizontal(i, c.Line, c.Column+1, extend)
	case s.constraints.AllowMultiline && c.Line+1 < s.buf.LineCount():
		s.setHorizontal(i, c.Line+1, 0, extend)
	default:
		s.cursors[i].ClearDesiredColumn()
	}
}

// moveVertical steps delta lines, remembering the column so travel through
// shorter lines does not lose horizontal intent.
func (s *State) moveVertical(i, delta int, extend bool) {
	c := s.cursors[i]
	s.cursors[i].RememberColumn()

	line := c.Line + delta
	if line < 0 {
		line = 0
	}
	if last := s.buf.LineCount() - 1; line > last {
		line = last
	}
	if line == c.Line {
		return
	}
	col := min(s.cursors[i].EffectiveColumn(), s.buf.LineLength(line))
	if extend {
		s.moveHead(i, line, col)
	} else {
		s.placeCursor(i, line, col)
	}
}

// moveLineStartSmart jumps to the first non-whitespace column; a second
// press from there toggles to column 0, and from column 0 back again.
func (s *State) moveLineStartSmart(i int, extend bool) {
	c := s.cursors[i]
	first := s.buf.FirstNonWhitespaceColumn(c.Line)
	target := first
	if c.Column == first && first != 0 {
		target = 0
	} else if c.Column == 0 {
		target = first
	}
	s.setHorizontal(i, c.Line, target, extend)
}

// wordLeftFrom returns the position one word to the left: skip any non-word
// characters, then the word itself. At column 0 it wraps to the previous
// line end when multiline is allowed.
func (s *State) wordLeftFrom(line, col int) (int, int) {
	if col == 0 {
		if s.constraints.AllowMultiline && line > 0 {
			return line - 1, s.buf.LineLength(line - 1)
		}
		return line, col
	}
	text, _ := s.buf.Line(line)
	runes := []rune(text)
	if col > len(runes) {
		col = len(runes)
	}
	i := col
	for i > 0 && textutil.ClassOf(runes[i-1]) != textutil.WordChar {
		i--
	}
	for i > 0 && textutil.ClassOf(runes[i-1]) == textutil.WordChar {
		i--
	}
	return line, i
}

// wordRightFrom returns the position one word to the right: skip the run of
// the current character's class, then any whitespace. At line end it wraps
// to the next line start when multiline is allowed.
func (s *State) wordRightFrom(line, col int) (int, int) {
	text, _ := s.buf.Line(line)
	runes := []rune(text)
	if col >= len(runes) {
		if s.constraints.AllowMultiline && line+1 < s.buf.LineCount() {
			return line + 1, 0
		}
		return line, min(col, len(runes))
	}
	cls := textutil.ClassOf(runes[col])
	i := col
	for i < len(runes) && textutil.ClassOf(runes[i]) == cls {
		i++
	}
	for i < len(runes) && textutil.ClassOf(runes[i]) == textutil.Whitespace {
		i++
	}
	return line, i
}

func cursorsEqual(a, b []Cursor) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func selectionsEqual(a, b []Selection) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
