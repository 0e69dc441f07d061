package key

import (
	"strings"
	"unicode"
)

// Event represents a single key press event.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Modifiers: mods}
}

// Code returns the modifier-independent key code of the event.
func (e Event) Code() Code {
	if e.Key == KeyRune {
		return RuneCode(e.Rune)
	}
	return SpecialCode(e.Key)
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true if this is a printable character.
func (e Event) IsChar() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune)
}

// IsModified returns true if any modifier is pressed.
// For character events Shift alone does not count, since it only changes
// the character.
func (e Event) IsModified() bool {
	if e.IsRune() {
		return e.Modifiers.HasCtrl() || e.Modifiers.HasAlt() || e.Modifiers.HasMeta()
	}
	return e.Modifiers.Generic() != ModNone
}

// ShiftHeld reports whether either Shift key was held.
func (e Event) ShiftHeld() bool {
	return e.Modifiers.HasShift()
}

// String returns a canonical string representation like "Ctrl+Home".
func (e Event) String() string {
	var sb strings.Builder
	if mods := e.Modifiers.String(); mods != "" {
		sb.WriteString(mods)
		sb.WriteByte('+')
	}
	if e.Key == KeyRune {
		if e.Rune == ' ' {
			sb.WriteString("Space")
		} else {
			sb.WriteRune(e.Rune)
		}
	} else {
		sb.WriteString(e.Key.String())
	}
	return sb.String()
}
