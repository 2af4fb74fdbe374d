package tui

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/quellen/quill/internal/editable"
	"github.com/quellen/quill/internal/textbuf"
	"github.com/quellen/quill/internal/textutil"
)

// Viewport is the visible window over a multiline state. Follow keeps the
// active cursor inside it with a scroll-off margin.
type Viewport struct {
	TopLine   int
	LeftCol   int
	ScrollOff int
}

// Follow scrolls the viewport so the active cursor stays visible.
func (v *Viewport) Follow(s *editable.State, width, height int) {
	if height <= 0 || width <= 0 {
		return
	}
	c := s.ActiveCursor()

	if c.Line < v.TopLine+v.ScrollOff {
		v.TopLine = max(c.Line-v.ScrollOff, 0)
	}
	if c.Line >= v.TopLine+height-v.ScrollOff {
		v.TopLine = c.Line - height + 1 + v.ScrollOff
	}
	if last := s.Buffer().LineCount() - 1; v.TopLine > last {
		v.TopLine = last
	}

	line, _ := s.Buffer().Line(c.Line)
	visCol := textutil.CharColToVisualCol(line, c.Column, textutil.TabWidth)
	if visCol < v.LeftCol {
		v.LeftCol = visCol
	}
	if visCol >= v.LeftCol+width {
		v.LeftCol = visCol - width + 1
	}
}

// GutterWidth returns the width of the line number gutter for a buffer of
// the given line count, or 0 when the screen is too narrow for one.
func GutterWidth(lineCount, screenWidth int) int {
	digits := int(math.Log10(float64(max(lineCount, 1)))) + 1
	if digits+1 >= screenWidth {
		return 0
	}
	return digits + 1
}

// VisualToBufferPosition maps a visual (line, column) cell, as drawn, back to
// a buffer position, clamping to the nearest valid one.
func VisualToBufferPosition(buf textbuf.Buffer, line, visCol int) editable.Position {
	if line < 0 {
		line = 0
	}
	if last := buf.LineCount() - 1; line > last {
		line = last
	}
	text, _ := buf.Line(line)
	col := textutil.VisualColToCharCol(text, visCol, textutil.TabWidth)
	return editable.Pos(line, col)
}

// DrawState renders the visible lines of a multiline state with a line
// number gutter, selection backgrounds, and cursor cells.
func DrawState(t *TUI, s *editable.State, v Viewport, p Palette, showCursors bool) {
	width, height := t.Size()
	viewHeight := height - 1 // status bar
	if viewHeight <= 0 || width <= 0 {
		return
	}

	buf := s.Buffer()
	selections := s.Selections()
	cursorAt := cursorSet(s)

	gutterWidth := GutterWidth(buf.LineCount(), width)
	maxDigits := gutterWidth - 1
	textWidth := width - gutterWidth

	for row := 0; row < viewHeight; row++ {
		lineIdx := v.TopLine + row
		text, ok := buf.Line(lineIdx)
		if !ok {
			fillRow(t, row, 0, width, p.Base)
			continue
		}
		if gutterWidth > 0 {
			drawGutter(t, row, lineIdx+1, maxDigits, p.Gutter)
		}
		drawLine(t, row, gutterWidth, textWidth, lineIdx, text, v.LeftCol,
			selections, cursorAt, p, showCursors)
	}
}

func drawGutter(t *TUI, row, lineNum, digits int, style tcell.Style) {
	label := fmt.Sprintf("%*d ", digits, lineNum)
	col := 0
	for _, r := range label {
		t.screen.SetContent(col, row, r, nil, style)
		col++
	}
}

// drawLine renders one buffer line. Columns are visual: tabs expand to the
// next tab stop and wide clusters take two cells.
func drawLine(t *TUI, row, xOff, width, lineIdx int, text string, leftCol int,
	selections []editable.Selection, cursorAt map[editable.Position]bool,
	p Palette, showCursors bool) {

	visCol := 0
	runeIdx := 0

	drawCell := func(x int, r rune, comb []rune, style tcell.Style) {
		screenX := x - leftCol
		if screenX >= 0 && screenX < width {
			t.screen.SetContent(xOff+screenX, row, r, comb, style)
		}
	}

	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		pos := editable.Pos(lineIdx, runeIdx)
		style := p.Base
		if selected(pos, selections) {
			style = p.Selection
		}
		if showCursors && cursorAt[pos] {
			style = p.Cursor
		}

		runes := gr.Runes()
		if runes[0] == '\t' {
			next := (visCol/textutil.TabWidth + 1) * textutil.TabWidth
			for ; visCol < next; visCol++ {
				drawCell(visCol, ' ', nil, style)
			}
			runeIdx++
			continue
		}

		w := gr.Width()
		drawCell(visCol, runes[0], runes[1:], style)
		for extra := 1; extra < w; extra++ {
			drawCell(visCol+extra, ' ', nil, style)
		}
		visCol += w
		runeIdx += len(runes)
	}

	// End-of-line cell so a cursor past the last character is visible.
	eol := editable.Pos(lineIdx, runeIdx)
	style := p.Base
	if showCursors && cursorAt[eol] {
		style = p.Cursor
	} else if selected(eol, selections) {
		style = p.Selection
	}
	drawCell(visCol, ' ', nil, style)

	for x := visCol + 1 - leftCol; x < width; x++ {
		if x >= 0 {
			t.screen.SetContent(xOff+x, row, ' ', nil, p.Base)
		}
	}
}

// DrawModalField renders a single-line state (palette, go-to-line, cell
// editor) on one screen row, prefixed with a label.
func DrawModalField(t *TUI, s *editable.State, p Palette, row int, label string, showCursors bool) {
	width, _ := t.Size()
	if width <= 0 {
		return
	}
	x := 0
	for _, r := range label {
		if x >= width {
			return
		}
		t.screen.SetContent(x, row, r, nil, p.StatusBar)
		x += runewidth.RuneWidth(r)
	}

	text, _ := s.Buffer().Line(0)
	selections := s.Selections()
	cursorAt := cursorSet(s)

	runeIdx := 0
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		pos := editable.Pos(0, runeIdx)
		style := p.ModalField
		if selected(pos, selections) {
			style = p.Selection
		}
		if showCursors && cursorAt[pos] {
			style = p.Cursor
		}
		runes := gr.Runes()
		if x < width {
			t.screen.SetContent(x, row, runes[0], runes[1:], style)
		}
		x += gr.Width()
		runeIdx += len(runes)
	}

	style := p.ModalField
	if showCursors && cursorAt[editable.Pos(0, runeIdx)] {
		style = p.Cursor
	}
	if x < width {
		t.screen.SetContent(x, row, ' ', nil, style)
		x++
	}
	for ; x < width; x++ {
		t.screen.SetContent(x, row, ' ', nil, p.ModalField)
	}
}

// DrawStatusBar renders left- and right-aligned segments on the bottom row.
func DrawStatusBar(t *TUI, p Palette, left, right string) {
	width, height := t.Size()
	if height <= 0 || width <= 0 {
		return
	}
	row := height - 1

	left = runewidth.Truncate(left, width, "…")
	rightWidth := runewidth.StringWidth(right)

	x := 0
	for _, r := range left {
		t.screen.SetContent(x, row, r, nil, p.StatusBar)
		x += runewidth.RuneWidth(r)
	}
	for ; x < width-rightWidth; x++ {
		t.screen.SetContent(x, row, ' ', nil, p.StatusBar)
	}
	if rightWidth < width {
		for _, r := range right {
			t.screen.SetContent(x, row, r, nil, p.StatusBar)
			x += runewidth.RuneWidth(r)
		}
	}
}

func fillRow(t *TUI, row, from, width int, style tcell.Style) {
	for x := from; x < width; x++ {
		t.screen.SetContent(x, row, ' ', nil, style)
	}
}

func cursorSet(s *editable.State) map[editable.Position]bool {
	set := make(map[editable.Position]bool, s.CursorCount())
	for _, c := range s.Cursors() {
		set[c.Position()] = true
	}
	return set
}

// selected reports whether pos falls inside any selection's [start, end)
// range; the end position itself is not selected.
func selected(pos editable.Position, selections []editable.Selection) bool {
	for _, sel := range selections {
		if sel.IsEmpty() {
			continue
		}
		if sel.Contains(pos) {
			return true
		}
	}
	return false
}
