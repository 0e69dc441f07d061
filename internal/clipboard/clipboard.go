// Package clipboard provides the text clipboard capability used by the
// editing commands. The engine never touches a process-wide clipboard; a
// Clipboard is passed to the operations that need one.
package clipboard

import (
	"strings"
	"sync"
)

// Reader reads the current clipboard text.
type Reader interface {
	// Text returns the clipboard text and whether the clipboard holds any.
	Text() (string, bool)
}

// Writer replaces the clipboard text.
type Writer interface {
	SetText(text string) error
}

// Clipboard is a readable and writable text slot.
type Clipboard interface {
	Reader
	Writer
}

// Join joins clipboard lines with "\n".
func Join(lines []string) string {
	return strings.Join(lines, "\n")
}

// Memory is an in-process clipboard.
type Memory struct {
	mu   sync.Mutex
	text string
	set  bool
}

// NewMemory creates an empty in-process clipboard.
func NewMemory() *Memory {
	return &Memory{}
}

// Text implements Reader. An empty clipboard holds no text.
func (m *Memory) Text() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, m.set && m.text != ""
}

// SetText implements Writer.
func (m *Memory) SetText(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	m.set = true
	return nil
}
