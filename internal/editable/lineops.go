package editable

import "strings"

// Line-based operations. All of them require a multiline context and apply
// to every line a cursor or selection touches.

// DeleteLinesAll removes every covered line and collapses to one cursor.
func (s *State) DeleteLinesAll() bool {
	if !s.constraints.AllowMultiline {
		return false
	}
	lines := s.coveredLines()
	before := cloneCursors(s.cursors)
	activeCol := s.cursors[s.active].Column

	// Later ranges first so earlier line numbers stay valid.
	rngs := contiguousRanges(lines)
	ops := make([]EditOperation, 0, len(rngs))
	for i := len(rngs) - 1; i >= 0; i-- {
		if op := s.removeLineRange(rngs[i][0], rngs[i][1]); op.DeletedText != "" {
			ops = append(ops, op)
		}
	}
	if len(ops) == 0 {
		return false
	}

	target := lines[0]
	if last := s.buf.LineCount() - 1; target > last {
		target = last
	}
	col := min(activeCol, s.buf.LineLength(target))
	s.cursors = []Cursor{At(target, col)}
	s.selections = []Selection{CollapsedAt(Pos(target, col))}
	s.active = 0
	s.occurrence = nil

	s.recordBatch(Batch{
		Ops:           ops,
		CursorsBefore: before,
		CursorsAfter:  cloneCursors(s.cursors),
	})
	return true
}

// removeLineRange deletes lines [first, last] including their newlines.
// Removing a trailing range consumes the newline before it instead.
func (s *State) removeLineRange(first, last int) EditOperation {
	start := s.buf.PositionToOffset(first, 0)
	var end int
	if last+1 < s.buf.LineCount() {
		end = s.buf.PositionToOffset(last+1, 0)
	} else {
		end = s.buf.Len()
		if first > 0 {
			start--
		}
	}
	deleted := s.buf.Slice(start, end)
	s.buf.Remove(start, end)
	return EditOperation{Offset: start, DeletedText: deleted}
}

// IndentLinesAll prepends one tab to every covered line.
func (s *State) IndentLinesAll() bool {
	if !s.constraints.AllowMultiline {
		return false
	}
	lines := s.coveredLines()
	before := cloneCursors(s.cursors)

	var ops []EditOperation
	for i := len(lines) - 1; i >= 0; i-- {
		off := s.buf.PositionToOffset(lines[i], 0)
		s.buf.Insert(off, "\t")
		ops = append(ops, EditOperation{Offset: off, InsertedText: "\t"})
	}
	if len(ops) == 0 {
		return false
	}

	onLine := map[int]bool{}
	for _, l := range lines {
		onLine[l] = true
	}
	for i := range s.cursors {
		if onLine[s.cursors[i].Line] {
			s.cursors[i].Column++
		}
		s.selections[i].Anchor = shiftColumn(s.selections[i].Anchor, onLine, 1)
		s.selections[i].Head = shiftColumn(s.selections[i].Head, onLine, 1)
	}
	s.finishLineOp(before, ops)
	return true
}

// UnindentLinesAll strips one leading tab, or up to four leading spaces,
// from every covered line that has either.
func (s *State) UnindentLinesAll() bool {
	if !s.constraints.AllowMultiline {
		return false
	}
	lines := s.coveredLines()
	before := cloneCursors(s.cursors)

	removed := map[int]int{}
	var ops []EditOperation
	for i := len(lines) - 1; i >= 0; i-- {
		l := lines[i]
		text, _ := s.buf.Line(l)
		n := leadingIndentWidth(text)
		if n == 0 {
			continue
		}
		off := s.buf.PositionToOffset(l, 0)
		deleted := s.buf.Slice(off, off+n)
		s.buf.Remove(off, off+n)
		ops = append(ops, EditOperation{Offset: off, DeletedText: deleted})
		removed[l] = n
	}
	if len(ops) == 0 {
		return false
	}

	for i := range s.cursors {
		if n := removed[s.cursors[i].Line]; n > 0 {
			s.cursors[i].Column = max(s.cursors[i].Column-n, 0)
		}
		s.selections[i].Anchor = unshiftColumn(s.selections[i].Anchor, removed)
		s.selections[i].Head = unshiftColumn(s.selections[i].Head, removed)
	}
	s.finishLineOp(before, ops)
	return true
}

// leadingIndentWidth returns how many characters one unindent step removes
// from text: a single tab, or up to four spaces.
func leadingIndentWidth(text string) int {
	if strings.HasPrefix(text, "\t") {
		return 1
	}
	n := 0
	for _, r := range text {
		if r != ' ' || n == 4 {
			break
		}
		n++
	}
	return n
}

// DuplicateAll copies each non-empty selection after itself; a cursor
// without a selection duplicates its line below.
func (s *State) DuplicateAll() bool {
	if !s.constraints.AllowMultiline {
		return false
	}
	return s.applyToAllCursors(func(i, selStart, selEnd int) (pendingEdit, bool) {
		if selEnd > selStart {
			return pendingEdit{start: selEnd, end: selEnd, text: s.buf.Slice(selStart, selEnd)}, true
		}
		c := s.cursors[i]
		text, _ := s.buf.Line(c.Line)
		lineEnd := s.buf.PositionToOffset(c.Line, s.buf.LineLength(c.Line))
		return pendingEdit{
			start:     lineEnd,
			end:       lineEnd,
			text:      "\n" + text,
			cursor:    lineEnd + 1 + c.Column,
			cursorSet: true,
		}, true
	})
}

// MoveCoveredLinesUp swaps every covered line with the line above it,
// moving contiguous blocks as a unit. A no-op when the topmost covered
// line is already line 0.
func (s *State) MoveCoveredLinesUp() bool {
	if !s.constraints.AllowMultiline {
		return false
	}
	lines := s.coveredLines()
	if lines[0] == 0 {
		return false
	}
	before := cloneCursors(s.cursors)

	ops := make([]EditOperation, 0, len(lines))
	for _, l := range lines {
		ops = append(ops, s.swapWithNextLine(l-1))
	}
	s.shiftCoveredPositions(lines, -1)
	s.finishLineOp(before, ops)
	return true
}

// MoveCoveredLinesDown swaps every covered line with the line below it.
// A no-op when the bottommost covered line is already the last line.
func (s *State) MoveCoveredLinesDown() bool {
	if !s.constraints.AllowMultiline {
		return false
	}
	lines := s.coveredLines()
	if lines[len(lines)-1] == s.buf.LineCount()-1 {
		return false
	}
	before := cloneCursors(s.cursors)

	ops := make([]EditOperation, 0, len(lines))
	for i := len(lines) - 1; i >= 0; i-- {
		ops = append(ops, s.swapWithNextLine(lines[i]))
	}
	s.shiftCoveredPositions(lines, 1)
	s.finishLineOp(before, ops)
	return true
}

// swapWithNextLine exchanges line top with line top+1 as one replace.
func (s *State) swapWithNextLine(top int) EditOperation {
	topText, _ := s.buf.Line(top)
	botText, _ := s.buf.Line(top + 1)
	start := s.buf.PositionToOffset(top, 0)
	end := start + runeLen(topText) + 1 + runeLen(botText)
	inserted := botText + "\n" + topText
	deleted := s.buf.Slice(start, end)
	s.buf.Replace(start, end, inserted)
	return EditOperation{Offset: start, DeletedText: deleted, InsertedText: inserted}
}

// shiftCoveredPositions moves cursors and selection endpoints on the covered
// lines by delta lines. A selection endpoint resting at column 0 of the line
// after the block travels with it.
func (s *State) shiftCoveredPositions(lines []int, delta int) {
	onLine := map[int]bool{}
	for _, l := range lines {
		onLine[l] = true
	}
	follows := func(p Position) bool {
		return onLine[p.Line] || (p.Column == 0 && p.Line > 0 && onLine[p.Line-1])
	}
	for i := range s.cursors {
		if onLine[s.cursors[i].Line] {
			s.cursors[i].Line += delta
		}
		if follows(s.selections[i].Anchor) {
			s.selections[i].Anchor.Line += delta
		}
		if follows(s.selections[i].Head) {
			s.selections[i].Head.Line += delta
		}
	}
}

// finishLineOp normalizes state and records the batch after a line operation.
func (s *State) finishLineOp(before []Cursor, ops []EditOperation) {
	s.normalize()
	s.occurrence = nil
	s.recordBatch(Batch{
		Ops:           ops,
		CursorsBefore: before,
		CursorsAfter:  cloneCursors(s.cursors),
	})
}

func shiftColumn(p Position, onLine map[int]bool, delta int) Position {
	if onLine[p.Line] {
		p.Column += delta
	}
	return p
}

func unshiftColumn(p Position, removed map[int]int) Position {
	if n := removed[p.Line]; n > 0 {
		p.Column = max(p.Column-n, 0)
	}
	return p
}

func contiguousRanges(lines []int) [][2]int {
	var out [][2]int
	for _, l := range lines {
		if len(out) > 0 && out[len(out)-1][1] == l-1 {
			out[len(out)-1][1] = l
			continue
		}
		out = append(out, [2]int{l, l})
	}
	return out
}
