// Package key provides key event types and key-specification parsing.
//
// This package defines the types the hotkey dispatcher matches on:
//
//   - Key: identifies a keyboard key (special keys or KeyRune)
//   - Code: a Key plus, for KeyRune, the lower-cased character
//   - Modifier: generic modifiers (Ctrl, Alt, Shift, Meta) and the sided
//     variants a host may report (LeftCtrl, RightShift, ...)
//   - Event: a single key press with the modifiers held at the time
//
// # Key Specifications
//
// Key specifications can be written as:
//
//   - Simple keys: "a", "Enter", "Home", "KPEnter"
//   - With modifiers: "Ctrl+Home", "Alt+Up", "Ctrl+Shift+End"
//   - Vim-style: "<C-x>", "<A-Up>", "<CR>"
//
// # Sided Modifiers
//
// A binding requires generic modifiers. An event satisfies a generic
// requirement when it reports either side of that modifier, or the generic
// bit itself when the host cannot tell the sides apart.
package key
