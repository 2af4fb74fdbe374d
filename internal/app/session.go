package app

import (
	"github.com/quellen/quill/internal/clipboard"
	"github.com/quellen/quill/internal/config"
	"github.com/quellen/quill/internal/editable"
	"github.com/quellen/quill/internal/event"
	"github.com/quellen/quill/internal/logger"
)

// Session owns one editing state per live context and the keyboard focus.
// Every context gets an independent state; modal states are discarded when
// their context closes.
type Session struct {
	states map[editable.EditContext]*editable.State
	focus  editable.EditContext

	cfg    config.EditorConfig
	events *event.Manager
	clip   *clipboard.Manager
}

// NewSession creates a session focused on the document editor.
func NewSession(text string, cfg config.EditorConfig, events *event.Manager, clip *clipboard.Manager) *Session {
	s := &Session{
		states: make(map[editable.EditContext]*editable.State),
		focus:  editable.EditorContext(),
		cfg:    cfg,
		events: events,
		clip:   clip,
	}
	s.states[s.focus] = s.newState(s.focus, text)
	return s
}

func (s *Session) newState(ctx editable.EditContext, text string) *editable.State {
	return editable.NewState(ctx, text,
		editable.WithHistoryLimit(s.cfg.HistoryLimit),
		editable.WithPageLines(s.cfg.PageLines),
		editable.WithClipboard(s.clip),
	)
}

// State returns the live state for ctx, creating an empty one on first use.
func (s *Session) State(ctx editable.EditContext) *editable.State {
	if st, ok := s.states[ctx]; ok {
		return st
	}
	st := s.newState(ctx, "")
	s.states[ctx] = st
	return st
}

// Editor returns the document editor's state.
func (s *Session) Editor() *editable.State {
	return s.State(editable.EditorContext())
}

// Focus returns the context that receives keyboard input.
func (s *Session) Focus() editable.EditContext {
	return s.focus
}

// Focused returns the state keyboard input goes to.
func (s *Session) Focused() *editable.State {
	return s.State(s.focus)
}

// SetFocus moves keyboard focus to ctx, creating its state if needed.
func (s *Session) SetFocus(ctx editable.EditContext) {
	if ctx == s.focus {
		return
	}
	from := s.focus
	s.focus = ctx
	s.State(ctx)
	if s.events != nil {
		s.events.Dispatch(event.TypeFocusChanged, event.FocusChangedData{From: from, To: ctx})
	}
	logger.DebugTagf("session", "focus %s -> %s", from, ctx)
}

// Close discards a modal context's state and returns focus to the editor.
// The editor context itself is never discarded.
func (s *Session) Close(ctx editable.EditContext) {
	if ctx.IsEditor() {
		return
	}
	delete(s.states, ctx)
	if s.focus == ctx {
		s.SetFocus(editable.EditorContext())
	}
}

// Dispatch routes a message to the state owned by ctx and fires the
// matching change event. It reports whether a redraw is needed.
func (s *Session) Dispatch(ctx editable.EditContext, msg editable.TextEditMsg) bool {
	st := s.State(ctx)
	changed := st.Apply(msg)
	if !changed || s.events == nil {
		return changed
	}

	if editable.IsEdit(msg) {
		s.events.Dispatch(event.TypeBufferModified, event.BufferModifiedData{Context: ctx})
	} else {
		s.events.Dispatch(event.TypeCursorMoved, event.CursorMovedData{
			Context:  ctx,
			Position: st.ActiveCursor().Position(),
			Cursors:  st.CursorCount(),
		})
	}
	return true
}
