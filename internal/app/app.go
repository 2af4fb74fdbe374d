package app

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/quellen/quill/internal/clipboard"
	"github.com/quellen/quill/internal/config"
	"github.com/quellen/quill/internal/editable"
	"github.com/quellen/quill/internal/event"
	"github.com/quellen/quill/internal/input"
	"github.com/quellen/quill/internal/logger"
	"github.com/quellen/quill/internal/tui"
)

const cursorBlinkInterval = 500 * time.Millisecond

// App wires the terminal, input processor, event bus, and editing session
// into the main loop.
type App struct {
	tuiManager *tui.TUI
	session    *Session
	events     *event.Manager
	clip       *clipboard.Manager
	processor  *input.Processor
	palette    tui.Palette
	viewport   tui.Viewport

	quit          chan struct{}
	redrawRequest chan struct{}

	cursorsVisible bool
	lastFind       string
	statusMessage  string
}

// New creates an application editing the given initial text.
func New(text string) (*App, error) {
	cfg := config.Get()

	tuiManager, err := tui.New()
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	events := event.NewManager()
	clip := clipboard.NewManager(cfg.Editor.SystemClipboard, events)

	a := &App{
		tuiManager:     tuiManager,
		session:        NewSession(text, cfg.Editor, events, clip),
		events:         events,
		clip:           clip,
		processor:      input.NewProcessor(),
		palette:        tui.DefaultPalette,
		viewport:       tui.Viewport{ScrollOff: cfg.Editor.ScrollOff},
		quit:           make(chan struct{}),
		redrawRequest:  make(chan struct{}, 1),
		cursorsVisible: true,
	}

	events.Subscribe(event.TypeBufferModified, func(event.Event) bool {
		a.requestRedraw()
		return false
	})
	events.Subscribe(event.TypeCursorMoved, func(event.Event) bool {
		a.requestRedraw()
		return false
	})

	return a, nil
}

// Run starts the event and drawing loops and blocks until quit.
func (a *App) Run() error {
	defer a.tuiManager.Close()

	go a.eventLoop()

	a.events.Dispatch(event.TypeAppReady, event.AppReadyData{})
	a.statusMessage = "Ctrl+P palette | Ctrl+G goto | Ctrl+F find | Ctrl+Q quit"
	a.requestRedraw()

	blink := time.NewTicker(cursorBlinkInterval)
	defer blink.Stop()

	for {
		select {
		case <-a.quit:
			a.events.Dispatch(event.TypeAppQuit, event.AppQuitData{})
			logger.Infof("exiting")
			return nil
		case <-a.redrawRequest:
			a.draw()
		case <-blink.C:
			a.cursorsVisible = !a.cursorsVisible
			a.draw()
		}
	}
}

// Content returns the current document text.
func (a *App) Content() string {
	return a.session.Editor().Content()
}

// eventLoop polls terminal events and routes them.
func (a *App) eventLoop() {
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return
		}

		needsRedraw := false
		switch eventData := ev.(type) {
		case *tcell.EventResize:
			a.tuiManager.GetScreen().Sync()
			needsRedraw = true
		case *tcell.EventKey:
			needsRedraw = a.handleKey(eventData)
		case *tcell.EventMouse:
			needsRedraw = a.handleMouse(eventData)
		}

		if needsRedraw {
			a.requestRedraw()
		}
	}
}

// handleKey decodes and dispatches one key event to the focused context.
func (a *App) handleKey(ev *tcell.EventKey) bool {
	a.cursorsVisible = true
	a.events.Dispatch(event.TypeKeyPressed, event.KeyPressedData{KeyEvent: ev})

	r := a.processor.ProcessEvent(ev)
	if r.Action != input.ActionUnknown {
		return a.handleAction(r.Action)
	}
	if r.Msg == nil {
		return false
	}

	focus := a.session.Focus()
	// Enter submits modal fields instead of inserting a newline.
	if _, isNewline := r.Msg.(editable.InsertNewline); isNewline && !focus.IsEditor() {
		return a.submitModal(focus)
	}
	return a.session.Dispatch(focus, r.Msg)
}

func (a *App) handleAction(action input.Action) bool {
	focus := a.session.Focus()
	switch action {
	case input.ActionQuit, input.ActionForceQuit:
		close(a.quit)
		return false
	case input.ActionCancel:
		if !focus.IsEditor() {
			a.session.Close(focus)
			return true
		}
		ed := a.session.Editor()
		if ed.CursorCount() > 1 {
			return ed.Apply(editable.CollapseCursors{})
		}
		return ed.Apply(editable.CollapseSelection{})
	case input.ActionOpenCommandPalette:
		a.session.SetFocus(editable.EditContext{Kind: editable.ContextCommandPalette})
		return true
	case input.ActionOpenGotoLine:
		a.session.SetFocus(editable.EditContext{Kind: editable.ContextGotoLine})
		return true
	case input.ActionOpenFind:
		a.session.SetFocus(editable.EditContext{Kind: editable.ContextFindQuery})
		return true
	case input.ActionPasteRequest:
		text, err := a.clip.Read()
		if err != nil || text == "" {
			return false
		}
		return a.session.Dispatch(focus, editable.Paste{Text: text})
	default:
		return false
	}
}

// handleMouse places, toggles, and rectangle-selects cursors in the editor.
func (a *App) handleMouse(ev *tcell.EventMouse) bool {
	if ev.Buttons()&tcell.Button1 == 0 {
		return false
	}
	pos, ok := a.screenToBuffer(ev.Position())
	if !ok {
		return false
	}
	a.session.SetFocus(editable.EditorContext())
	ed := a.session.Editor()

	switch {
	case ev.Modifiers()&tcell.ModCtrl != 0:
		return ed.Apply(editable.ToggleCursorAt{Pos: pos})
	case ev.Modifiers()&tcell.ModAlt != 0:
		anchor := ed.ActiveCursor().Position()
		return ed.Apply(editable.RectangleSelect{Anchor: anchor, Head: pos})
	default:
		ed.PlaceCursorAt(pos)
		return true
	}
}

// screenToBuffer converts a screen cell to a buffer position, accounting for
// the gutter and viewport.
func (a *App) screenToBuffer(x, y int) (editable.Position, bool) {
	width, height := a.tuiManager.Size()
	if y >= height-1 {
		return editable.Position{}, false
	}
	gutter := tui.GutterWidth(a.session.Editor().Buffer().LineCount(), width)
	line := a.viewport.TopLine + y
	visCol := a.viewport.LeftCol + x - gutter
	if visCol < 0 {
		visCol = 0
	}
	return tui.VisualToBufferPosition(a.session.Editor().Buffer(), line, visCol), true
}

// draw renders the editor view, any open modal field, and the status bar.
func (a *App) draw() {
	width, height := a.tuiManager.Size()
	ed := a.session.Editor()
	gutter := tui.GutterWidth(ed.Buffer().LineCount(), width)
	a.viewport.Follow(ed, width-gutter, height-1)

	a.tuiManager.Clear()
	focus := a.session.Focus()
	editorFocused := focus.IsEditor()

	tui.DrawState(a.tuiManager, ed, a.viewport, a.palette, editorFocused && a.cursorsVisible)

	if editorFocused {
		c := ed.ActiveCursor()
		right := fmt.Sprintf("%d:%d", c.Line+1, c.Column+1)
		if n := ed.CursorCount(); n > 1 {
			right = fmt.Sprintf("%d cursors  %s", n, right)
		}
		tui.DrawStatusBar(a.tuiManager, a.palette, a.statusMessage, right)
	} else {
		tui.DrawModalField(a.tuiManager, a.session.Focused(), a.palette,
			height-1, modalLabel(focus), a.cursorsVisible)
	}

	a.tuiManager.Show()
}

func modalLabel(ctx editable.EditContext) string {
	switch ctx.Kind {
	case editable.ContextCommandPalette:
		return "> "
	case editable.ContextGotoLine:
		return "goto: "
	case editable.ContextFindQuery:
		return "find: "
	case editable.ContextReplaceQuery:
		return "replace: "
	default:
		return "? "
	}
}

// requestRedraw signals the drawing loop without blocking.
func (a *App) requestRedraw() {
	select {
	case a.redrawRequest <- struct{}{}:
	default:
	}
}
