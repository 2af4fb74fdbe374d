package app

import (
	"testing"

	"github.com/quellen/quill/internal/clipboard"
	"github.com/quellen/quill/internal/config"
	"github.com/quellen/quill/internal/editable"
	"github.com/quellen/quill/internal/event"
)

func newTestSession(text string) (*Session, *event.Manager) {
	events := event.NewManager()
	clip := clipboard.NewManager(false, events)
	cfg := config.EditorConfig{
		TabWidth:     4,
		ScrollOff:    3,
		HistoryLimit: 100,
		PageLines:    10,
	}
	return NewSession(text, cfg, events, clip), events
}

func TestSessionStartsFocusedOnEditor(t *testing.T) {
	s, _ := newTestSession("hello")

	if !s.Focus().IsEditor() {
		t.Fatalf("initial focus = %s, want editor", s.Focus())
	}
	if got := s.Editor().Content(); got != "hello" {
		t.Errorf("editor content = %q, want %q", got, "hello")
	}
}

func TestSessionLazyCreatesModalStates(t *testing.T) {
	s, _ := newTestSession("")
	ctx := editable.EditContext{Kind: editable.ContextGotoLine}

	st := s.State(ctx)
	if st == nil {
		t.Fatal("State returned nil")
	}
	if st.Content() != "" {
		t.Errorf("new modal state content = %q, want empty", st.Content())
	}
	if st.Constraints().AllowMultiline {
		t.Error("goto-line state should not allow multiline")
	}
	if again := s.State(ctx); again != st {
		t.Error("State created a second state for the same context")
	}
}

func TestSessionFocusChangeDispatchesEvent(t *testing.T) {
	s, events := newTestSession("")

	var got event.FocusChangedData
	fired := 0
	events.Subscribe(event.TypeFocusChanged, func(e event.Event) bool {
		got = e.Data.(event.FocusChangedData)
		fired++
		return false
	})

	find := editable.EditContext{Kind: editable.ContextFindQuery}
	s.SetFocus(find)

	if fired != 1 {
		t.Fatalf("focus events fired = %d, want 1", fired)
	}
	if !got.From.IsEditor() || got.To != find {
		t.Errorf("focus change %s -> %s, want editor -> %s", got.From, got.To, find)
	}

	s.SetFocus(find)
	if fired != 1 {
		t.Error("refocusing the same context should not fire an event")
	}
}

func TestSessionCloseDiscardsModalState(t *testing.T) {
	s, _ := newTestSession("")
	ctx := editable.EditContext{Kind: editable.ContextCommandPalette}

	s.SetFocus(ctx)
	s.Dispatch(ctx, editable.InsertText{Text: "goto 3"})
	s.Close(ctx)

	if !s.Focus().IsEditor() {
		t.Errorf("focus after close = %s, want editor", s.Focus())
	}
	if got := s.State(ctx).Content(); got != "" {
		t.Errorf("reopened modal content = %q, want empty", got)
	}
}

func TestSessionCloseNeverDiscardsEditor(t *testing.T) {
	s, _ := newTestSession("keep me")

	s.Close(editable.EditorContext())

	if got := s.Editor().Content(); got != "keep me" {
		t.Errorf("editor content after close = %q, want %q", got, "keep me")
	}
}

func TestSessionDispatchFiresChangeEvents(t *testing.T) {
	s, events := newTestSession("abc")
	ctx := editable.EditorContext()

	modified, moved := 0, 0
	events.Subscribe(event.TypeBufferModified, func(event.Event) bool {
		modified++
		return false
	})
	events.Subscribe(event.TypeCursorMoved, func(event.Event) bool {
		moved++
		return false
	})

	if !s.Dispatch(ctx, editable.InsertChar{Ch: 'x'}) {
		t.Fatal("insert reported no change")
	}
	if modified != 1 || moved != 0 {
		t.Errorf("after insert: modified=%d moved=%d, want 1,0", modified, moved)
	}

	if !s.Dispatch(ctx, editable.Move{Target: editable.MoveCharLeft}) {
		t.Fatal("move reported no change")
	}
	if modified != 1 || moved != 1 {
		t.Errorf("after move: modified=%d moved=%d, want 1,1", modified, moved)
	}

	// Redo with empty redo stack changes nothing and fires nothing.
	if s.Dispatch(ctx, editable.Redo{}) {
		t.Error("redo on empty stack reported a change")
	}
	if modified != 1 || moved != 1 {
		t.Errorf("after no-op: modified=%d moved=%d, want 1,1", modified, moved)
	}
}
