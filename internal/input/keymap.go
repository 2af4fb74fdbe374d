package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/quellen/quill/internal/editable"
)

// Result is a decoded input event: either an editing message for the focused
// context, or an application action, or neither when the event is unmapped.
type Result struct {
	Msg    editable.TextEditMsg
	Action Action
}

// binding is one keymap entry. Movement entries carry a MoveTarget so the
// shift modifier can flip them between plain and selecting moves.
type binding struct {
	msg    editable.TextEditMsg
	action Action
	move   editable.MoveTarget
	isMove bool
}

type keymap map[tcell.Key]binding
type modKeymap map[tcell.ModMask]keymap

// Processor translates tcell key events into Results. It is stateless and
// context-agnostic; the app routes the Result to whichever context has focus.
type Processor struct {
	keys keymap
	mods modKeymap
}

// NewProcessor creates a processor with the default bindings.
func NewProcessor() *Processor {
	p := &Processor{
		keys: make(keymap),
		mods: make(modKeymap),
	}
	p.loadDefaultBindings()
	return p
}

func moveBinding(t editable.MoveTarget) binding {
	return binding{move: t, isMove: true}
}

func msgBinding(m editable.TextEditMsg) binding {
	return binding{msg: m}
}

func actionBinding(a Action) binding {
	return binding{action: a}
}

func (p *Processor) loadDefaultBindings() {
	p.keys[tcell.KeyUp] = moveBinding(editable.MoveLineUp)
	p.keys[tcell.KeyDown] = moveBinding(editable.MoveLineDown)
	p.keys[tcell.KeyLeft] = moveBinding(editable.MoveCharLeft)
	p.keys[tcell.KeyRight] = moveBinding(editable.MoveCharRight)
	p.keys[tcell.KeyPgUp] = moveBinding(editable.MovePageUp)
	p.keys[tcell.KeyPgDn] = moveBinding(editable.MovePageDown)
	p.keys[tcell.KeyHome] = moveBinding(editable.MoveLineStartSmart)
	p.keys[tcell.KeyEnd] = moveBinding(editable.MoveLineEnd)

	p.keys[tcell.KeyBackspace] = msgBinding(editable.DeleteBackward{})
	p.keys[tcell.KeyBackspace2] = msgBinding(editable.DeleteBackward{})
	p.keys[tcell.KeyDelete] = msgBinding(editable.DeleteForward{})
	p.keys[tcell.KeyTab] = msgBinding(editable.InsertChar{Ch: '\t'})
	p.keys[tcell.KeyBacktab] = msgBinding(editable.Unindent{})
	p.keys[tcell.KeyEnter] = msgBinding(editable.InsertNewline{})
	p.keys[tcell.KeyEscape] = actionBinding(ActionCancel)

	ctrl := make(keymap)
	ctrl[tcell.KeyLeft] = moveBinding(editable.MoveWordLeft)
	ctrl[tcell.KeyRight] = moveBinding(editable.MoveWordRight)
	ctrl[tcell.KeyHome] = moveBinding(editable.MoveDocumentStart)
	ctrl[tcell.KeyEnd] = moveBinding(editable.MoveDocumentEnd)
	ctrl[tcell.KeyBackspace] = msgBinding(editable.DeleteWordBackward{})
	ctrl[tcell.KeyBackspace2] = msgBinding(editable.DeleteWordBackward{})
	ctrl[tcell.KeyDelete] = msgBinding(editable.DeleteWordForward{})
	ctrl[tcell.KeyCtrlA] = msgBinding(editable.SelectAll{})
	ctrl[tcell.KeyCtrlW] = msgBinding(editable.SelectWord{})
	ctrl[tcell.KeyCtrlL] = msgBinding(editable.SelectLine{})
	ctrl[tcell.KeyCtrlD] = msgBinding(editable.AddCursorAtNextOccurrence{})
	ctrl[tcell.KeyCtrlU] = msgBinding(editable.UnselectOccurrence{})
	ctrl[tcell.KeyCtrlZ] = msgBinding(editable.Undo{})
	ctrl[tcell.KeyCtrlY] = msgBinding(editable.Redo{})
	ctrl[tcell.KeyCtrlC] = msgBinding(editable.Copy{})
	ctrl[tcell.KeyCtrlX] = msgBinding(editable.Cut{})
	ctrl[tcell.KeyCtrlV] = actionBinding(ActionPasteRequest)
	ctrl[tcell.KeyCtrlP] = actionBinding(ActionOpenCommandPalette)
	ctrl[tcell.KeyCtrlG] = actionBinding(ActionOpenGotoLine)
	ctrl[tcell.KeyCtrlF] = actionBinding(ActionOpenFind)
	ctrl[tcell.KeyCtrlQ] = actionBinding(ActionQuit)
	p.mods[tcell.ModCtrl] = ctrl

	ctrlShift := make(keymap)
	ctrlShift[tcell.KeyCtrlL] = msgBinding(editable.AddCursorsAtAllOccurrences{})
	ctrlShift[tcell.KeyCtrlD] = msgBinding(editable.Duplicate{})
	ctrlShift[tcell.KeyCtrlK] = msgBinding(editable.DeleteLine{})
	ctrlShift[tcell.KeyCtrlQ] = actionBinding(ActionForceQuit)
	p.mods[tcell.ModCtrl|tcell.ModShift] = ctrlShift

	alt := make(keymap)
	alt[tcell.KeyUp] = msgBinding(editable.MoveLinesUp{})
	alt[tcell.KeyDown] = msgBinding(editable.MoveLinesDown{})
	p.mods[tcell.ModAlt] = alt

	ctrlAlt := make(keymap)
	ctrlAlt[tcell.KeyUp] = msgBinding(editable.AddCursorAbove{})
	ctrlAlt[tcell.KeyDown] = msgBinding(editable.AddCursorBelow{})
	p.mods[tcell.ModCtrl|tcell.ModAlt] = ctrlAlt
}

// ProcessEvent decodes one key event. Shift on a movement binding turns the
// move into a selecting move; plain printable runes become InsertChar.
func (p *Processor) ProcessEvent(ev *tcell.EventKey) Result {
	key := ev.Key()
	mod := ev.Modifiers()

	// An exact modifier match wins, so Ctrl+Shift chords bind separately
	// from Ctrl chords.
	if mod != tcell.ModNone {
		if km, ok := p.mods[mod]; ok {
			if b, ok := km[key]; ok {
				return resolve(b, false)
			}
		}
	}

	// Otherwise shift participates in movement extension, not in map lookup.
	lookupMod := mod &^ tcell.ModShift
	extend := mod&tcell.ModShift != 0

	if lookupMod != tcell.ModNone {
		if lookupMod != mod {
			if km, ok := p.mods[lookupMod]; ok {
				if b, ok := km[key]; ok {
					return resolve(b, extend)
				}
			}
		}
		if key == tcell.KeyRune {
			return Result{}
		}
	}

	if b, ok := p.keys[key]; ok {
		return resolve(b, extend)
	}

	if key == tcell.KeyRune {
		return Result{Msg: editable.InsertChar{Ch: ev.Rune()}}
	}
	return Result{}
}

func resolve(b binding, extend bool) Result {
	if b.isMove {
		if extend {
			return Result{Msg: editable.MoveWithSelection{Target: b.move}}
		}
		return Result{Msg: editable.Move{Target: b.move}}
	}
	return Result{Msg: b.msg, Action: b.action}
}
