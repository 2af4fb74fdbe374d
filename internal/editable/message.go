package editable

import "fmt"

// MoveTarget names where a movement message sends each cursor.
type MoveTarget int

const (
	MoveCharLeft MoveTarget = iota
	MoveCharRight
	MoveLineUp
	MoveLineDown
	MoveLineStart
	MoveLineStartSmart
	MoveLineEnd
	MoveWordLeft
	MoveWordRight
	MoveDocumentStart
	MoveDocumentEnd
	MovePageUp
	MovePageDown
)

func (t MoveTarget) String() string {
	switch t {
	case MoveCharLeft:
		return "char-left"
	case MoveCharRight:
		return "char-right"
	case MoveLineUp:
		return "line-up"
	case MoveLineDown:
		return "line-down"
	case MoveLineStart:
		return "line-start"
	case MoveLineStartSmart:
		return "line-start-smart"
	case MoveLineEnd:
		return "line-end"
	case MoveWordLeft:
		return "word-left"
	case MoveWordRight:
		return "word-right"
	case MoveDocumentStart:
		return "document-start"
	case MoveDocumentEnd:
		return "document-end"
	case MovePageUp:
		return "page-up"
	case MovePageDown:
		return "page-down"
	default:
		return fmt.Sprintf("move(%d)", int(t))
	}
}

// TextEditMsg is the single message type front ends send to an editing
// state. Dispatch through State.Apply returns whether anything changed;
// operations a context's constraints disallow are silent no-ops.
type TextEditMsg interface {
	isTextEditMsg()
}

// Move moves every cursor, collapsing its selection.
type Move struct{ Target MoveTarget }

// MoveWithSelection moves every cursor, extending its selection.
type MoveWithSelection struct{ Target MoveTarget }

// InsertChar inserts one character at every cursor.
type InsertChar struct{ Ch rune }

// InsertText inserts text at every cursor.
type InsertText struct{ Text string }

// InsertNewline breaks the line at every cursor.
type InsertNewline struct{}

// DeleteBackward deletes the selection or the character before each cursor.
type DeleteBackward struct{}

// DeleteForward deletes the selection or the character after each cursor.
type DeleteForward struct{}

// DeleteWordBackward deletes to the previous word boundary at each cursor.
type DeleteWordBackward struct{}

// DeleteWordForward deletes to the next word boundary at each cursor.
type DeleteWordForward struct{}

// DeleteLine removes every line covered by a cursor or selection.
type DeleteLine struct{}

// SelectAll selects the whole buffer with a single cursor.
type SelectAll struct{}

// SelectWord selects the word under each cursor.
type SelectWord struct{}

// SelectLine selects each cursor's full line including its newline.
type SelectLine struct{}

// CollapseSelection empties every selection at its cursor.
type CollapseSelection struct{}

// AddCursorAbove adds a cursor one line above the topmost cursor.
type AddCursorAbove struct{}

// AddCursorBelow adds a cursor one line below the bottommost cursor.
type AddCursorBelow struct{}

// AddCursorAt places an extra cursor at a position (pointer-driven).
type AddCursorAt struct{ Pos Position }

// ToggleCursorAt adds a cursor at a position, or removes the one already there.
type ToggleCursorAt struct{ Pos Position }

// AddCursorAtNextOccurrence selects the next match of the current selection
// (or of the word under the cursor) and adds a cursor on it.
type AddCursorAtNextOccurrence struct{}

// UnselectOccurrence removes the most recently added occurrence cursor.
type UnselectOccurrence struct{}

// AddCursorsAtAllOccurrences replaces the cursor set with one cursor per
// match of the current selection (or word under the cursor).
type AddCursorsAtAllOccurrences struct{}

// RectangleSelect commits a column (rectangle) drag: one cursor per line
// between Anchor and Head, each selecting the dragged column span.
type RectangleSelect struct {
	Anchor Position
	Head   Position
}

// CollapseCursors keeps only the active cursor.
type CollapseCursors struct{}

// Copy places the selected text on the clipboard; the buffer is untouched.
type Copy struct{}

// Cut places the selected text on the clipboard and deletes it.
type Cut struct{}

// Paste inserts already-resolved clipboard text at every cursor. With as
// many pasted lines as cursors, each cursor receives one line.
type Paste struct{ Text string }

// Undo reverts the most recent edit batch.
type Undo struct{}

// Redo re-applies the most recently undone edit batch.
type Redo struct{}

// Indent prepends one tab to every covered line.
type Indent struct{}

// Unindent strips one leading tab (or up to four spaces) from every covered line.
type Unindent struct{}

// Duplicate copies each selection, or each cursor's line, below itself.
type Duplicate struct{}

// MoveLinesUp swaps every covered line with the line above it.
type MoveLinesUp struct{}

// MoveLinesDown swaps every covered line with the line below it.
type MoveLinesDown struct{}

// IsEdit reports whether msg can mutate buffer content, as opposed to only
// moving cursors or changing selections.
func IsEdit(msg TextEditMsg) bool {
	switch msg.(type) {
	case InsertChar, InsertText, InsertNewline,
		DeleteBackward, DeleteForward, DeleteWordBackward, DeleteWordForward,
		DeleteLine, Cut, Paste, Undo, Redo,
		Indent, Unindent, Duplicate, MoveLinesUp, MoveLinesDown:
		return true
	default:
		return false
	}
}

func (Move) isTextEditMsg()                       {}
func (MoveWithSelection) isTextEditMsg()          {}
func (InsertChar) isTextEditMsg()                 {}
func (InsertText) isTextEditMsg()                 {}
func (InsertNewline) isTextEditMsg()              {}
func (DeleteBackward) isTextEditMsg()             {}
func (DeleteForward) isTextEditMsg()              {}
func (DeleteWordBackward) isTextEditMsg()         {}
func (DeleteWordForward) isTextEditMsg()          {}
func (DeleteLine) isTextEditMsg()                 {}
func (SelectAll) isTextEditMsg()                  {}
func (SelectWord) isTextEditMsg()                 {}
func (SelectLine) isTextEditMsg()                 {}
func (CollapseSelection) isTextEditMsg()          {}
func (AddCursorAbove) isTextEditMsg()             {}
func (AddCursorBelow) isTextEditMsg()             {}
func (AddCursorAt) isTextEditMsg()                {}
func (ToggleCursorAt) isTextEditMsg()             {}
func (AddCursorAtNextOccurrence) isTextEditMsg()  {}
func (UnselectOccurrence) isTextEditMsg()         {}
func (AddCursorsAtAllOccurrences) isTextEditMsg() {}
func (RectangleSelect) isTextEditMsg()            {}
func (CollapseCursors) isTextEditMsg()            {}
func (Copy) isTextEditMsg()                       {}
func (Cut) isTextEditMsg()                        {}
func (Paste) isTextEditMsg()                      {}
func (Undo) isTextEditMsg()                       {}
func (Redo) isTextEditMsg()                       {}
func (Indent) isTextEditMsg()                     {}
func (Unindent) isTextEditMsg()                   {}
func (Duplicate) isTextEditMsg()                  {}
func (MoveLinesUp) isTextEditMsg()                {}
func (MoveLinesDown) isTextEditMsg()              {}
