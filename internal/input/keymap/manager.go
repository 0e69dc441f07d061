package keymap

import (
	"sort"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/dshills/sabre/internal/engine/buffer"
	"github.com/dshills/sabre/internal/input/key"
)

// Manager holds hotkeys and dispatches key events to them.
type Manager struct {
	mu      sync.RWMutex
	hotkeys []*Hotkey
	log     logrus.FieldLogger
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithLogger sets the logger dispatch is reported to.
func WithLogger(l logrus.FieldLogger) ManagerOption {
	return func(m *Manager) {
		m.log = l
	}
}

// NewManager creates an empty hotkey manager.
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{}
	for _, opt := range opts {
		opt(m)
	}
	if m.log == nil {
		l := logrus.New()
		l.SetLevel(logrus.WarnLevel)
		m.log = l
	}
	m.log = m.log.WithField("component", "keymap")
	return m
}

// Bind adds a hotkey. Hotkeys are kept in descending priority order; among
// equal priorities earlier bindings come first. A nil action is ignored.
func (m *Manager) Bind(mods key.Modifier, code key.Code, action Action, opts ...BindOption) {
	if action == nil {
		m.log.WithField("keys", key.FormatBinding(mods, code)).Warn("ignoring binding with nil action")
		return
	}

	h := &Hotkey{
		Modifiers: mods.Generic(),
		Code:      code,
		Action:    action,
	}
	for _, opt := range opts {
		opt(h)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.hotkeys = append(m.hotkeys, h)
	sort.SliceStable(m.hotkeys, func(i, j int) bool {
		return m.hotkeys[i].Priority() > m.hotkeys[j].Priority()
	})
}

// BindSpec parses spec and binds it to action.
func (m *Manager) BindSpec(spec string, action Action, opts ...BindOption) error {
	mods, code, err := key.ParseBinding(spec)
	if err != nil {
		return err
	}
	m.Bind(mods, code, action, opts...)
	return nil
}

// Unbind removes the first hotkey with exactly these modifiers and key.
// Returns false if none was bound.
func (m *Manager) Unbind(mods key.Modifier, code key.Code) bool {
	mods = mods.Generic()

	m.mu.Lock()
	defer m.mu.Unlock()

	for i, h := range m.hotkeys {
		if h.Modifiers == mods && h.Code == code {
			m.hotkeys = append(m.hotkeys[:i], m.hotkeys[i+1:]...)
			return true
		}
	}
	return false
}

// UnbindAll removes every hotkey.
func (m *Manager) UnbindAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hotkeys = nil
}

// Len returns the number of bound hotkeys.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.hotkeys)
}

// Hotkeys returns a snapshot of the hotkeys in match order.
func (m *Manager) Hotkeys() []Hotkey {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Hotkey, len(m.hotkeys))
	for i, h := range m.hotkeys {
		out[i] = *h
	}
	return out
}

// Match returns the hotkey ev would trigger.
func (m *Manager) Match(ev key.Event) (Hotkey, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, h := range m.hotkeys {
		if h.Matches(ev) {
			return *h, true
		}
	}
	return Hotkey{}, false
}

// KeyPressed dispatches ev against buf, which may be nil when no buffer is
// open. It reports whether a hotkey ran.
func (m *Manager) KeyPressed(ev key.Event, buf *buffer.Buffer) bool {
	h, ok := m.Match(ev)
	if !ok {
		return false
	}

	log := m.log.WithFields(logrus.Fields{
		"keys":    ev.String(),
		"command": h.Name,
	})

	if h.RequiresBuffer && buf == nil {
		log.Debug("dropping hotkey: no buffer open")
		return false
	}

	shift := ev.ShiftHeld()
	if shift && buf != nil {
		buf.UpdateSelection()
	}

	h.Action(buf)

	if h.ClearsSelection && !shift && buf != nil {
		buf.ClearSelection()
	}

	log.Debug("hotkey dispatched")
	return true
}
