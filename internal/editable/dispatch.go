package editable

// Apply routes one message to the state and reports whether anything
// changed (and the context needs a redraw). Operations the context's
// constraints disallow change nothing and return false; there is no error
// channel for routine editing.
func (s *State) Apply(msg TextEditMsg) bool {
	switch m := msg.(type) {
	case Move:
		return s.MoveCursors(m.Target, false)
	case MoveWithSelection:
		return s.MoveCursors(m.Target, true)
	case InsertChar:
		return s.InsertCharAll(m.Ch)
	case InsertText:
		return s.InsertTextAll(m.Text)
	case InsertNewline:
		return s.InsertNewlineAll()
	case DeleteBackward:
		return s.DeleteBackwardAll()
	case DeleteForward:
		return s.DeleteForwardAll()
	case DeleteWordBackward:
		return s.DeleteWordBackwardAll()
	case DeleteWordForward:
		return s.DeleteWordForwardAll()
	case DeleteLine:
		return s.DeleteLinesAll()
	case SelectAll:
		return s.SelectAllContent()
	case SelectWord:
		return s.SelectWordAll()
	case SelectLine:
		return s.SelectLineAll()
	case CollapseSelection:
		return s.CollapseSelections()
	case AddCursorAbove:
		return s.AddCursorOnLineAbove()
	case AddCursorBelow:
		return s.AddCursorOnLineBelow()
	case AddCursorAt:
		return s.AddCursorAtPosition(m.Pos)
	case ToggleCursorAt:
		return s.ToggleCursorAtPosition(m.Pos)
	case AddCursorAtNextOccurrence:
		return s.SelectNextOccurrence()
	case UnselectOccurrence:
		return s.UnselectLastOccurrence()
	case AddCursorsAtAllOccurrences:
		return s.SelectAllOccurrences()
	case RectangleSelect:
		return s.SelectRectangle(m.Anchor, m.Head)
	case CollapseCursors:
		return s.CollapseToActiveCursor()
	case Copy:
		text, ok := s.CopyText()
		if ok {
			s.copyToClipboard(text)
		}
		return false
	case Cut:
		text, ok := s.CutText()
		if ok {
			s.copyToClipboard(text)
		}
		return ok
	case Paste:
		return s.PasteText(m.Text)
	case Undo:
		return s.Undo()
	case Redo:
		return s.Redo()
	case Indent:
		return s.IndentLinesAll()
	case Unindent:
		return s.UnindentLinesAll()
	case Duplicate:
		return s.DuplicateAll()
	case MoveLinesUp:
		return s.MoveCoveredLinesUp()
	case MoveLinesDown:
		return s.MoveCoveredLinesDown()
	default:
		return false
	}
}
