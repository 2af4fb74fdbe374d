package editable

import "unicode/utf8"

// EditOperation records one buffer mutation as a replacement at a character
// offset. Offsets are valid in the buffer state at the moment the operation
// applied; a batch therefore undoes its operations in reverse order.
type EditOperation struct {
	Offset        int
	DeletedText   string
	InsertedText  string
	CursorsBefore []Cursor
	CursorsAfter  []Cursor
}

// Inverse returns the operation that undoes op: texts and cursor snapshots
// swap places.
func (op EditOperation) Inverse() EditOperation {
	return EditOperation{
		Offset:        op.Offset,
		DeletedText:   op.InsertedText,
		InsertedText:  op.DeletedText,
		CursorsBefore: op.CursorsAfter,
		CursorsAfter:  op.CursorsBefore,
	}
}

// Batch groups the operations of one logical edit so that undo and redo
// treat a multi-cursor edit atomically. Cursor snapshots restore the full
// multi-cursor layout on either side of the edit.
type Batch struct {
	Ops           []EditOperation
	CursorsBefore []Cursor
	CursorsAfter  []Cursor
}

// Inverse returns the batch that undoes b: operations reversed and inverted,
// cursor snapshots swapped.
func (b Batch) Inverse() Batch {
	inv := Batch{
		Ops:           make([]EditOperation, len(b.Ops)),
		CursorsBefore: b.CursorsAfter,
		CursorsAfter:  b.CursorsBefore,
	}
	for i, op := range b.Ops {
		inv.Ops[len(b.Ops)-1-i] = op.Inverse()
	}
	return inv
}

// History holds undo and redo stacks of edit batches.
type History struct {
	undo  []Batch
	redo  []Batch
	limit int
}

// NewHistory creates a history keeping at most limit batches; limit <= 0
// means unlimited.
func NewHistory(limit int) *History {
	return &History{limit: limit}
}

// Push records a new edit. Any redo state becomes unreachable and is dropped.
func (h *History) Push(b Batch) {
	if len(b.Ops) == 0 {
		return
	}
	h.undo = append(h.undo, b)
	h.redo = nil
	if h.limit > 0 && len(h.undo) > h.limit {
		h.undo = h.undo[len(h.undo)-h.limit:]
	}
}

// PopUndo removes the most recent batch, moving its inverse onto the redo
// stack, and returns it.
func (h *History) PopUndo() (Batch, bool) {
	if len(h.undo) == 0 {
		return Batch{}, false
	}
	b := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, b.Inverse())
	return b, true
}

// PopRedo removes the most recently undone batch (in inverted form), moving
// its inverse back onto the undo stack, and returns it.
func (h *History) PopRedo() (Batch, bool) {
	if len(h.redo) == 0 {
		return Batch{}, false
	}
	b := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, b.Inverse())
	return b, true
}

// CanUndo reports whether an undo step is available.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether a redo step is available.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Clear drops both stacks.
func (h *History) Clear() {
	h.undo = nil
	h.redo = nil
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
