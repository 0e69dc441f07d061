package clipboard

import (
	"github.com/atotto/clipboard"
)

// System is backed by the operating system clipboard. When the platform has
// no clipboard utility it behaves like Memory.
type System struct {
	fallback *Memory
}

// NewSystem creates a system clipboard.
func NewSystem() *System {
	return &System{fallback: NewMemory()}
}

// Available reports whether an OS clipboard utility was found.
func (s *System) Available() bool {
	return !clipboard.Unsupported
}

// Text implements Reader.
func (s *System) Text() (string, bool) {
	if !s.Available() {
		return s.fallback.Text()
	}
	text, err := clipboard.ReadAll()
	if err != nil || text == "" {
		return s.fallback.Text()
	}
	return text, true
}

// SetText implements Writer. The text is always kept in the fallback slot so
// a failing OS clipboard does not lose it.
func (s *System) SetText(text string) error {
	_ = s.fallback.SetText(text)
	if !s.Available() {
		return nil
	}
	return clipboard.WriteAll(text)
}
