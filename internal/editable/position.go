// Package editable implements the editing core: a text buffer with one or
// more cursors and selections, per-context edit constraints, atomic batched
// undo/redo, and word/occurrence navigation. All coordinates are character
// (rune) based; byte offsets never cross this package boundary.
package editable

// Position is a (line, column) coordinate in character units.
// Positions order by line, then column.
type Position struct {
	Line   int
	Column int
}

// Pos is shorthand for constructing a Position.
func Pos(line, column int) Position {
	return Position{Line: line, Column: column}
}

// Less reports whether p orders before o.
func (p Position) Less(o Position) bool {
	if p.Line != o.Line {
		return p.Line < o.Line
	}
	return p.Column < o.Column
}

// Compare returns -1, 0, or 1 as p orders before, equal to, or after o.
func (p Position) Compare(o Position) int {
	switch {
	case p.Less(o):
		return -1
	case o.Less(p):
		return 1
	default:
		return 0
	}
}

// Cursor is an insertion point. DesiredColumn remembers the horizontal
// intent across vertical movement through shorter lines; -1 means unset.
type Cursor struct {
	Line          int
	Column        int
	DesiredColumn int
}

// At creates a cursor at (line, column) with no remembered column.
func At(line, column int) Cursor {
	return Cursor{Line: line, Column: column, DesiredColumn: -1}
}

// Position returns the cursor's position.
func (c Cursor) Position() Position {
	return Position{Line: c.Line, Column: c.Column}
}

// RememberColumn records the current column as the vertical-movement target,
// unless one is already remembered.
func (c *Cursor) RememberColumn() {
	if c.DesiredColumn < 0 {
		c.DesiredColumn = c.Column
	}
}

// ClearDesiredColumn drops the remembered column. Horizontal movement calls
// this so the next vertical move starts fresh.
func (c *Cursor) ClearDesiredColumn() {
	c.DesiredColumn = -1
}

// EffectiveColumn returns the remembered column when set, else the current one.
func (c Cursor) EffectiveColumn() int {
	if c.DesiredColumn >= 0 {
		return c.DesiredColumn
	}
	return c.Column
}
