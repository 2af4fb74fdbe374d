package editable

import (
	"strings"

	"github.com/quellen/quill/internal/logger"
)

// CopyText returns the selected text, joining multiple selections with
// newlines in document order. The buffer is untouched; with nothing
// selected it returns ok=false.
func (s *State) CopyText() (string, bool) {
	if !s.HasSelection() {
		return "", false
	}
	parts := make([]string, 0, len(s.selections))
	for i := range s.selections {
		if text := s.selectedTextAt(i); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n"), true
}

// CutText returns the selected text and deletes every selection as one
// undoable batch.
func (s *State) CutText() (string, bool) {
	text, ok := s.CopyText()
	if !ok {
		return "", false
	}
	s.applyToAllCursors(func(i, selStart, selEnd int) (pendingEdit, bool) {
		if selEnd == selStart {
			return pendingEdit{}, false
		}
		return pendingEdit{start: selStart, end: selEnd}, true
	})
	return text, true
}

// copyToClipboard forwards text to the attached clipboard, if any.
func (s *State) copyToClipboard(text string) {
	if s.clipboard == nil {
		return
	}
	if err := s.clipboard.Write(text); err != nil {
		logger.Warnf("clipboard write failed: %v", err)
	}
}

// PasteText inserts text at every cursor. When the text has exactly as many
// lines as there are cursors, each cursor receives its own line; otherwise
// every cursor gets the full text. Constraint checks reject the whole paste.
func (s *State) PasteText(text string) bool {
	if text == "" {
		return false
	}
	if strings.ContainsRune(text, '\n') && !s.constraints.AllowMultiline {
		return false
	}
	for _, r := range text {
		if r != '\n' && !s.constraints.IsCharAllowed(r) {
			return false
		}
	}

	lines := strings.Split(text, "\n")
	if len(s.cursors) > 1 && len(lines) == len(s.cursors) {
		if s.exceedsMaxLengthTotal(totalRuneLen(lines)) {
			return false
		}
		return s.applyToAllCursors(func(i, selStart, selEnd int) (pendingEdit, bool) {
			return pendingEdit{start: selStart, end: selEnd, text: lines[i]}, true
		})
	}
	return s.insertAll(text)
}

func totalRuneLen(lines []string) int {
	total := 0
	for _, l := range lines {
		total += runeLen(l)
	}
	return total
}
