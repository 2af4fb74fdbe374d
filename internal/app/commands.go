package app

import (
	"strconv"
	"strings"

	"github.com/quellen/quill/internal/editable"
	"github.com/quellen/quill/internal/logger"
)

// submitModal consumes the text of a modal field and closes it. Returns
// whether anything on screen changed.
func (a *App) submitModal(ctx editable.EditContext) bool {
	text := a.session.State(ctx).Content()
	a.session.Close(ctx)

	switch ctx.Kind {
	case editable.ContextGotoLine:
		return a.gotoLine(text)
	case editable.ContextFindQuery:
		a.lastFind = text
		return a.session.Editor().SelectOccurrencesOf(text)
	case editable.ContextReplaceQuery:
		return a.replaceAll(a.lastFind, text)
	case editable.ContextCommandPalette:
		return a.runCommand(text)
	default:
		return true
	}
}

// gotoLine parses "line" or "line:col" (1-based) and places the cursor there.
func (a *App) gotoLine(text string) bool {
	lineStr, colStr, hasCol := strings.Cut(strings.TrimSpace(text), ":")
	line, err := strconv.Atoi(lineStr)
	if err != nil || line < 1 {
		return true
	}
	col := 1
	if hasCol {
		if col, err = strconv.Atoi(colStr); err != nil || col < 1 {
			col = 1
		}
	}
	a.session.Editor().PlaceCursorAt(editable.Pos(line-1, col-1))
	return true
}

// replaceAll selects every match of needle and types the replacement through
// the multi-cursor machinery, so one undo reverts the whole pass.
func (a *App) replaceAll(needle, replacement string) bool {
	ed := a.session.Editor()
	if !ed.SelectOccurrencesOf(needle) {
		return true
	}
	if replacement == "" {
		return a.session.Dispatch(editable.EditorContext(), editable.DeleteBackward{})
	}
	return a.session.Dispatch(editable.EditorContext(), editable.InsertText{Text: replacement})
}

// runCommand executes one command palette entry.
func (a *App) runCommand(text string) bool {
	name, arg, _ := strings.Cut(strings.TrimSpace(text), " ")
	ctx := editable.EditorContext()

	switch name {
	case "":
		return true
	case "goto":
		return a.gotoLine(arg)
	case "find":
		a.lastFind = arg
		return a.session.Editor().SelectOccurrencesOf(arg)
	case "replace":
		a.session.SetFocus(editable.EditContext{Kind: editable.ContextReplaceQuery})
		return true
	case "selectall":
		return a.session.Dispatch(ctx, editable.SelectAll{})
	case "undo":
		return a.session.Dispatch(ctx, editable.Undo{})
	case "redo":
		return a.session.Dispatch(ctx, editable.Redo{})
	case "quit":
		close(a.quit)
		return false
	default:
		logger.Warnf("unknown command %q", name)
		a.statusMessage = "unknown command: " + name
		return true
	}
}
