// Package clipboard stores copied text, mirroring it to the system clipboard
// when that is available and enabled.
package clipboard

import (
	"sync"

	"github.com/atotto/clipboard"

	"github.com/quellen/quill/internal/event"
	"github.com/quellen/quill/internal/logger"
)

// Manager holds an internal register and optionally mirrors it to the system
// clipboard. The internal register is always authoritative for reads within
// the session, so copy/paste keeps working on systems without clipboard
// support (headless terminals, missing xclip).
type Manager struct {
	mu       sync.Mutex
	register string

	useSystem bool
	events    *event.Manager
}

// NewManager creates a clipboard manager. useSystem enables mirroring to the
// OS clipboard; events may be nil.
func NewManager(useSystem bool, events *event.Manager) *Manager {
	if useSystem && clipboard.Unsupported {
		logger.Infof("system clipboard unsupported on this platform, using internal register only")
		useSystem = false
	}
	return &Manager{useSystem: useSystem, events: events}
}

// Write stores text in the register and mirrors it to the system clipboard.
func (m *Manager) Write(text string) error {
	m.mu.Lock()
	m.register = text
	m.mu.Unlock()

	if m.useSystem {
		if err := clipboard.WriteAll(text); err != nil {
			logger.Warnf("system clipboard write failed: %v", err)
			return err
		}
	}
	if m.events != nil {
		m.events.Dispatch(event.TypeClipboardSet, event.ClipboardSetData{Text: text})
	}
	logger.DebugTagf("clipboard", "stored %d bytes", len(text))
	return nil
}

// Read returns the clipboard text, preferring the system clipboard so pastes
// from other applications work. Falls back to the internal register.
func (m *Manager) Read() (string, error) {
	if m.useSystem {
		text, err := clipboard.ReadAll()
		if err == nil && text != "" {
			return text, nil
		}
		if err != nil {
			logger.DebugTagf("clipboard", "system clipboard read failed: %v", err)
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.register, nil
}
