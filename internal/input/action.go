package input

// Action is an application-level command decoded from input. Editing itself
// travels as an editable.TextEditMsg; actions cover everything the editing
// core does not own (focus, modals, shutdown, clipboard reads).
type Action int

const (
	ActionUnknown Action = iota
	ActionQuit
	ActionForceQuit

	// Modal surfaces
	ActionOpenCommandPalette
	ActionOpenGotoLine
	ActionOpenFind
	ActionSubmit // Enter in a modal field
	ActionCancel // Escape: close modal, or collapse cursors in the editor

	// ActionPasteRequest asks the app to resolve clipboard text and send a
	// Paste message; the processor never touches the clipboard itself.
	ActionPasteRequest
)
