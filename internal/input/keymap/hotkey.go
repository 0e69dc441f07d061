package keymap

import (
	"github.com/dshills/sabre/internal/engine/buffer"
	"github.com/dshills/sabre/internal/input/key"
)

// Action is the work a hotkey performs. The buffer is nil when no buffer is
// open and the hotkey does not require one.
type Action func(b *buffer.Buffer)

// Hotkey binds a modifier+key chord to an action.
type Hotkey struct {
	// Modifiers are the generic modifiers that must be held.
	Modifiers key.Modifier

	// Code is the key that must be pressed.
	Code key.Code

	Action Action

	// ClearsSelection drops the selection after the action unless Shift
	// is held.
	ClearsSelection bool

	// RequiresBuffer skips the hotkey when no buffer is open.
	RequiresBuffer bool

	// Name is the command name, used for logging and export.
	Name string
}

// Priority is the number of Ctrl, Shift and Alt modifiers required.
func (h Hotkey) Priority() int {
	return h.Modifiers.Count()
}

// Matches reports whether ev presses this hotkey's key with every required
// modifier held. Extra held modifiers do not prevent a match.
func (h Hotkey) Matches(ev key.Event) bool {
	return h.Code == ev.Code() && ev.Modifiers.Satisfies(h.Modifiers)
}

// Keys returns the key specification of the hotkey, e.g. "Ctrl+Home".
func (h Hotkey) Keys() string {
	return key.FormatBinding(h.Modifiers, h.Code)
}

// BindOption configures a hotkey at bind time.
type BindOption func(*Hotkey)

// ClearsSelection marks the hotkey as clearing the selection.
func ClearsSelection() BindOption {
	return func(h *Hotkey) {
		h.ClearsSelection = true
	}
}

// RequiresBuffer marks the hotkey as needing an open buffer.
func RequiresBuffer() BindOption {
	return func(h *Hotkey) {
		h.RequiresBuffer = true
	}
}

// Named sets the command name of the hotkey.
func Named(name string) BindOption {
	return func(h *Hotkey) {
		h.Name = name
	}
}
