package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/quellen/quill/internal/editable"
)

func TestPlainRuneInserts(t *testing.T) {
	p := NewProcessor()
	r := p.ProcessEvent(tcell.NewEventKey(tcell.KeyRune, 'ä', tcell.ModNone))
	msg, ok := r.Msg.(editable.InsertChar)
	if !ok || msg.Ch != 'ä' {
		t.Fatalf("result = %+v", r)
	}
}

func TestShiftFlipsMovementToSelection(t *testing.T) {
	p := NewProcessor()

	r := p.ProcessEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	if m, ok := r.Msg.(editable.Move); !ok || m.Target != editable.MoveCharRight {
		t.Fatalf("plain right = %+v", r)
	}

	r = p.ProcessEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModShift))
	if m, ok := r.Msg.(editable.MoveWithSelection); !ok || m.Target != editable.MoveCharRight {
		t.Fatalf("shift right = %+v", r)
	}

	r = p.ProcessEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModCtrl|tcell.ModShift))
	if m, ok := r.Msg.(editable.MoveWithSelection); !ok || m.Target != editable.MoveWordLeft {
		t.Fatalf("ctrl+shift left = %+v", r)
	}
}

func TestCtrlBindings(t *testing.T) {
	p := NewProcessor()

	r := p.ProcessEvent(tcell.NewEventKey(tcell.KeyCtrlZ, 0, tcell.ModCtrl))
	if _, ok := r.Msg.(editable.Undo); !ok {
		t.Fatalf("ctrl+z = %+v", r)
	}

	r = p.ProcessEvent(tcell.NewEventKey(tcell.KeyCtrlD, 0, tcell.ModCtrl))
	if _, ok := r.Msg.(editable.AddCursorAtNextOccurrence); !ok {
		t.Fatalf("ctrl+d = %+v", r)
	}

	r = p.ProcessEvent(tcell.NewEventKey(tcell.KeyCtrlD, 0, tcell.ModCtrl|tcell.ModShift))
	if _, ok := r.Msg.(editable.Duplicate); !ok {
		t.Fatalf("ctrl+shift+d = %+v", r)
	}

	r = p.ProcessEvent(tcell.NewEventKey(tcell.KeyCtrlV, 0, tcell.ModCtrl))
	if r.Action != ActionPasteRequest {
		t.Fatalf("ctrl+v = %+v", r)
	}
}

func TestEscapeAndEnter(t *testing.T) {
	p := NewProcessor()

	r := p.ProcessEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	if r.Action != ActionCancel {
		t.Fatalf("escape = %+v", r)
	}

	r = p.ProcessEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if _, ok := r.Msg.(editable.InsertNewline); !ok {
		t.Fatalf("enter = %+v", r)
	}
}

func TestUnmappedKeyIsEmpty(t *testing.T) {
	p := NewProcessor()
	r := p.ProcessEvent(tcell.NewEventKey(tcell.KeyF12, 0, tcell.ModNone))
	if r.Msg != nil || r.Action != ActionUnknown {
		t.Fatalf("F12 = %+v", r)
	}
}
