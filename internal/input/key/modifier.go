package key

import "strings"

// Modifier represents keyboard modifier keys.
//
// The generic bits (ModShift, ModCtrl, ModAlt, ModMeta) are what bindings
// require. Hosts that can distinguish the left and right keys report the
// sided bits instead of, or in addition to, the generic ones.
type Modifier uint16

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModShift indicates the Shift key.
	ModShift Modifier = 1 << iota

	// ModCtrl indicates the Control key.
	ModCtrl

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt

	// ModMeta indicates the Meta key (Cmd on macOS, Win on Windows).
	ModMeta

	ModLeftShift
	ModRightShift
	ModLeftCtrl
	ModRightCtrl
	ModLeftAlt
	ModRightAlt
)

// sides maps each generic modifier to the bits that satisfy it.
var sides = map[Modifier]Modifier{
	ModShift: ModShift | ModLeftShift | ModRightShift,
	ModCtrl:  ModCtrl | ModLeftCtrl | ModRightCtrl,
	ModAlt:   ModAlt | ModLeftAlt | ModRightAlt,
	ModMeta:  ModMeta,
}

// Has returns true if m contains the specified modifier bit.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// Held reports whether a generic modifier is held on either side.
// Sided arguments are tested as plain bits.
func (m Modifier) Held(mod Modifier) bool {
	if mask, ok := sides[mod]; ok {
		return m&mask != 0
	}
	return m.Has(mod)
}

// HasShift returns true if Shift is held on either side.
func (m Modifier) HasShift() bool {
	return m.Held(ModShift)
}

// HasCtrl returns true if Control is held on either side.
func (m Modifier) HasCtrl() bool {
	return m.Held(ModCtrl)
}

// HasAlt returns true if Alt is held on either side.
func (m Modifier) HasAlt() bool {
	return m.Held(ModAlt)
}

// HasMeta returns true if Meta is pressed.
func (m Modifier) HasMeta() bool {
	return m.Held(ModMeta)
}

// Generic folds sided bits into their generic modifier.
func (m Modifier) Generic() Modifier {
	var out Modifier
	for generic := range sides {
		if m.Held(generic) {
			out |= generic
		}
	}
	return out
}

// Satisfies reports whether every generic modifier in required is held in m.
func (m Modifier) Satisfies(required Modifier) bool {
	for generic := range sides {
		if required.Has(generic) && !m.Held(generic) {
			return false
		}
	}
	return true
}

// Count returns how many of Ctrl, Shift and Alt are set.
func (m Modifier) Count() int {
	n := 0
	for _, mod := range []Modifier{ModCtrl, ModShift, ModAlt} {
		if m.Held(mod) {
			n++
		}
	}
	return n
}

// With returns a new Modifier with the specified modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns a new Modifier with the specified modifier removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// IsEmpty returns true if no modifiers are set.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// String returns a human-readable representation like "Ctrl+Alt".
// Sided bits are reported by their generic name.
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}

	var parts []string
	if m.HasCtrl() {
		parts = append(parts, "Ctrl")
	}
	if m.HasAlt() {
		parts = append(parts, "Alt")
	}
	if m.HasShift() {
		parts = append(parts, "Shift")
	}
	if m.HasMeta() {
		parts = append(parts, "Meta")
	}
	return strings.Join(parts, "+")
}

// ShortString returns a compact representation like "C-A-S".
func (m Modifier) ShortString() string {
	if m == ModNone {
		return ""
	}

	var parts []string
	if m.HasCtrl() {
		parts = append(parts, "C")
	}
	if m.HasAlt() {
		parts = append(parts, "A")
	}
	if m.HasShift() {
		parts = append(parts, "S")
	}
	if m.HasMeta() {
		parts = append(parts, "M")
	}
	return strings.Join(parts, "-")
}

var modifierNameMap = map[string]Modifier{
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"c":       ModCtrl,
	"alt":     ModAlt,
	"a":       ModAlt,
	"option":  ModAlt,
	"opt":     ModAlt,
	"shift":   ModShift,
	"s":       ModShift,
	"meta":    ModMeta,
	"m":       ModMeta,
	"cmd":     ModMeta,
	"super":   ModMeta,
	"lctrl":   ModLeftCtrl,
	"rctrl":   ModRightCtrl,
	"lshift":  ModLeftShift,
	"rshift":  ModRightShift,
	"lalt":    ModLeftAlt,
	"ralt":    ModRightAlt,
}

// ModifierFromName returns the Modifier for a given name (case-insensitive).
// Returns ModNone if the name is not recognized.
func ModifierFromName(name string) Modifier {
	if m, ok := modifierNameMap[strings.ToLower(strings.TrimSpace(name))]; ok {
		return m
	}
	return ModNone
}

// ParseModifiers parses a modifier string like "Ctrl+Alt" or "C-A".
// Unknown names are ignored.
func ParseModifiers(s string) Modifier {
	var parts []string
	switch {
	case strings.Contains(s, "+"):
		parts = strings.Split(s, "+")
	case strings.Contains(s, "-"):
		parts = strings.Split(s, "-")
	default:
		parts = []string{s}
	}

	var result Modifier
	for _, part := range parts {
		result = result.With(ModifierFromName(part))
	}
	return result
}
