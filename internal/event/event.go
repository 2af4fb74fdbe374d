package event

import (
	"github.com/gdamore/tcell/v2"

	"github.com/quellen/quill/internal/editable"
)

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	// Editing events
	TypeBufferModified // buffer content changed in some context
	TypeCursorMoved    // cursor layout changed without a buffer edit
	TypeFocusChanged   // a different edit context took keyboard focus
	TypeClipboardSet   // copy/cut placed new text on the clipboard

	// Input events
	TypeKeyPressed // raw key press forwarded after dispatch

	// Application lifecycle
	TypeAppReady
	TypeAppQuit
)

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// BufferModifiedData names the context whose buffer changed.
type BufferModifiedData struct {
	Context editable.EditContext
}

// CursorMovedData carries the new active cursor position of a context.
type CursorMovedData struct {
	Context  editable.EditContext
	Position editable.Position
	Cursors  int
}

// FocusChangedData carries the previous and new focus.
type FocusChangedData struct {
	From editable.EditContext
	To   editable.EditContext
}

// ClipboardSetData carries the text placed on the clipboard.
type ClipboardSetData struct {
	Text string
}

// KeyPressedData contains the raw tcell key event.
type KeyPressedData struct {
	KeyEvent *tcell.EventKey
}

// AppReadyData is fired once startup completes.
type AppReadyData struct{}

// AppQuitData is fired just before shutdown.
type AppQuitData struct{}
