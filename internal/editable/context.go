package editable

import "fmt"

// ContextKind identifies which UI surface an editing state serves.
type ContextKind int

const (
	ContextEditor ContextKind = iota
	ContextCommandPalette
	ContextGotoLine
	ContextFindQuery
	ContextReplaceQuery
	ContextCsvCell
)

func (k ContextKind) String() string {
	switch k {
	case ContextEditor:
		return "editor"
	case ContextCommandPalette:
		return "command-palette"
	case ContextGotoLine:
		return "goto-line"
	case ContextFindQuery:
		return "find-query"
	case ContextReplaceQuery:
		return "replace-query"
	case ContextCsvCell:
		return "csv-cell"
	default:
		return fmt.Sprintf("context(%d)", int(k))
	}
}

// EditContext names one editing surface. It is comparable and usable as a
// map key; grid cells are distinguished by their coordinates.
type EditContext struct {
	Kind ContextKind
	Row  int
	Col  int
}

// EditorContext is the main document surface.
func EditorContext() EditContext {
	return EditContext{Kind: ContextEditor}
}

// CsvCellContext addresses one cell of a tabular view.
func CsvCellContext(row, col int) EditContext {
	return EditContext{Kind: ContextCsvCell, Row: row, Col: col}
}

// Constraints returns the edit rules for this surface.
func (c EditContext) Constraints() Constraints {
	switch c.Kind {
	case ContextEditor:
		return EditorConstraints()
	case ContextGotoLine:
		return GotoLineConstraints()
	case ContextCsvCell:
		return CsvCellConstraints()
	default:
		return SingleLineConstraints()
	}
}

// IsEditor reports whether this is the main document surface.
func (c EditContext) IsEditor() bool {
	return c.Kind == ContextEditor
}

func (c EditContext) String() string {
	if c.Kind == ContextCsvCell {
		return fmt.Sprintf("csv-cell(%d,%d)", c.Row, c.Col)
	}
	return c.Kind.String()
}
