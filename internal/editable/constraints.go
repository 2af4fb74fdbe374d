package editable

import "unicode"

// Constraints restrict what edits a field accepts. Disallowed operations are
// silent no-ops; a character failing the filter rejects the whole insertion.
type Constraints struct {
	AllowMultiline   bool
	AllowMultiCursor bool
	AllowSelection   bool
	EnableUndo       bool

	// MaxLength caps the buffer length in characters. 0 means unlimited.
	MaxLength int

	// CharFilter, when non-nil, must accept every inserted character.
	CharFilter func(rune) bool
}

// EditorConstraints allows everything; the main document uses it.
func EditorConstraints() Constraints {
	return Constraints{
		AllowMultiline:   true,
		AllowMultiCursor: true,
		AllowSelection:   true,
		EnableUndo:       true,
	}
}

// SingleLineConstraints suits prompt-style inputs: no newlines, one cursor.
func SingleLineConstraints() Constraints {
	return Constraints{
		AllowSelection: true,
		EnableUndo:     true,
	}
}

// NumericConstraints accepts only ASCII digits, up to ten of them.
func NumericConstraints() Constraints {
	return Constraints{
		AllowSelection: true,
		EnableUndo:     true,
		MaxLength:      10,
		CharFilter: func(r rune) bool {
			return r >= '0' && r <= '9'
		},
	}
}

// GotoLineConstraints accepts line[:column] input such as "42:7".
func GotoLineConstraints() Constraints {
	return Constraints{
		AllowSelection: true,
		EnableUndo:     true,
		MaxLength:      20,
		CharFilter: func(r rune) bool {
			return (r >= '0' && r <= '9') || r == ':'
		},
	}
}

// CsvCellConstraints matches single-line editing inside a grid cell.
func CsvCellConstraints() Constraints {
	return SingleLineConstraints()
}

// IsCharAllowed reports whether ch passes the filter. Control characters
// other than tab are always rejected.
func (c Constraints) IsCharAllowed(ch rune) bool {
	if ch != '\t' && ch != '\n' && unicode.IsControl(ch) {
		return false
	}
	if c.CharFilter != nil {
		return c.CharFilter(ch)
	}
	return true
}

// WouldExceedMaxLength reports whether adding inserted characters to a buffer
// currently holding current characters would pass the cap.
func (c Constraints) WouldExceedMaxLength(current, inserted int) bool {
	return c.MaxLength > 0 && current+inserted > c.MaxLength
}
