package keymap

import (
	"errors"
	"testing"

	"github.com/dshills/sabre/internal/clipboard"
	"github.com/dshills/sabre/internal/engine/buffer"
	"github.com/dshills/sabre/internal/engine/cursor"
	"github.com/dshills/sabre/internal/input/key"
)

func newDefaultManager(t *testing.T, s Services) (*Manager, *Commands) {
	t.Helper()
	cmds := NewCommands(s)
	m := NewManager()
	if err := BindDefaults(m, cmds); err != nil {
		t.Fatalf("BindDefaults: %v", err)
	}
	return m, cmds
}

func TestDefaultBindingsResolve(t *testing.T) {
	m, _ := newDefaultManager(t, Services{})
	if m.Len() != len(DefaultBindings) {
		t.Errorf("expected %d hotkeys, got %d", len(DefaultBindings), m.Len())
	}

	tests := []struct {
		ev   key.Event
		want string
	}{
		{key.NewSpecialEvent(key.KeyHome, key.ModNone), "home"},
		{key.NewSpecialEvent(key.KeyHome, key.ModCtrl), "firstLine"},
		{key.NewSpecialEvent(key.KeyEnd, key.ModCtrl), "lastLine"},
		{key.NewSpecialEvent(key.KeyEnter, key.ModNone), "newLineAfter"},
		{key.NewSpecialEvent(key.KeyKPEnter, key.ModNone), "newLineAfter"},
		{key.NewSpecialEvent(key.KeyEnter, key.ModCtrl), "newLineBefore"},
		{key.NewSpecialEvent(key.KeyUp, key.ModAlt), "moveLineUp"},
		{key.NewSpecialEvent(key.KeyUp, key.ModNone), "up"},
		{key.NewSpecialEvent(key.KeyUp, key.ModShift), "up"},
		{key.NewRuneEvent('x', key.ModCtrl), "cut"},
		{key.NewRuneEvent('a', key.ModLeftCtrl), "selectAll"},
	}

	for _, tt := range tests {
		h, ok := m.Match(tt.ev)
		if !ok {
			t.Errorf("%s: expected a match", tt.ev)
			continue
		}
		if h.Name != tt.want {
			t.Errorf("%s: expected %s, got %s", tt.ev, tt.want, h.Name)
		}
	}
}

func TestDefaultSelectionFlags(t *testing.T) {
	cmds := NewCommands(Services{})
	keep := map[string]bool{"copy": true, "selectAll": true}

	for _, name := range cmds.Names() {
		cmd, _ := cmds.Lookup(name)
		if cmd.ClearsSelection == keep[name] {
			t.Errorf("%s: unexpected ClearsSelection=%v", name, cmd.ClearsSelection)
		}
		if cmd.RequiresBuffer {
			t.Errorf("%s: editing commands should not require a buffer", name)
		}
	}
}

func TestShiftEndSelectsToLineEnd(t *testing.T) {
	m, _ := newDefaultManager(t, Services{})
	var shift buffer.ShiftState = true
	b := buffer.NewFromString("hello world", buffer.WithModifierState(&shift))
	b.CurrentLine().SetCaret(6)

	m.KeyPressed(key.NewSpecialEvent(key.KeyEnd, key.ModShift), b)

	if want := cursor.NewSelection(0, 6, 0, 11); b.Selection() != want {
		t.Errorf("expected %v, got %v", want, b.Selection())
	}
}

func TestCutCopyPasteCommands(t *testing.T) {
	cb := clipboard.NewMemory()
	m, _ := newDefaultManager(t, Services{Clipboard: cb})

	b := buffer.NewFromString("abc\ndef")
	b.SetSelection(cursor.NewSelection(0, 1, 1, 2))

	m.KeyPressed(key.NewRuneEvent('c', key.ModCtrl), b)
	if text, _ := cb.Text(); text != "bc\nde" {
		t.Errorf("copy: expected %q, got %q", "bc\nde", text)
	}

	m.KeyPressed(key.NewRuneEvent('x', key.ModCtrl), b)
	if b.Text() != "af" {
		t.Errorf("cut: expected %q, got %q", "af", b.Text())
	}
	if b.HasSelection() {
		t.Error("cut should leave no selection")
	}

	m.KeyPressed(key.NewRuneEvent('v', key.ModCtrl), b)
	if b.Text() != "abc\ndef" {
		t.Errorf("paste: expected %q, got %q", "abc\ndef", b.Text())
	}
}

func TestCopyWithoutSelectionKeepsClipboard(t *testing.T) {
	cb := clipboard.NewMemory()
	_ = cb.SetText("keep")
	m, _ := newDefaultManager(t, Services{Clipboard: cb})

	m.KeyPressed(key.NewRuneEvent('c', key.ModCtrl), buffer.NewFromString("abc"))

	if text, _ := cb.Text(); text != "keep" {
		t.Errorf("expected clipboard untouched, got %q", text)
	}
}

func TestIndentUsesConfiguredSize(t *testing.T) {
	size := 4
	m, _ := newDefaultManager(t, Services{IndentSize: func() int { return size }})

	b := buffer.New()
	m.KeyPressed(key.NewSpecialEvent(key.KeyTab, key.ModNone), b)
	if b.Text() != "    " {
		t.Errorf("expected 4 spaces, got %q", b.Text())
	}

	size = 0
	b = buffer.New()
	m.KeyPressed(key.NewSpecialEvent(key.KeyTab, key.ModNone), b)
	if b.Text() != "  " {
		t.Errorf("expected default indent, got %q", b.Text())
	}
}

func TestCommandsIgnoreNilBuffer(t *testing.T) {
	m, _ := newDefaultManager(t, Services{Clipboard: clipboard.NewMemory()})
	for _, b := range DefaultBindings {
		ev := key.MustParse(b.Keys)
		m.KeyPressed(ev, nil)
	}
}

func TestBindUnknownCommand(t *testing.T) {
	cmds := NewCommands(Services{})
	err := cmds.Bind(NewManager(), "Ctrl+D", "nope")
	if !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("expected ErrUnknownCommand, got %v", err)
	}
}

func TestRegisterReplaces(t *testing.T) {
	cmds := NewCommands(Services{})
	var ran bool
	cmds.Register(Command{Name: "up", Action: func(*buffer.Buffer) { ran = true }})

	m := NewManager()
	if err := cmds.Bind(m, "Up", "up"); err != nil {
		t.Fatal(err)
	}
	m.KeyPressed(key.NewSpecialEvent(key.KeyUp, key.ModNone), nil)
	if !ran {
		t.Error("expected the replacement command to run")
	}
}
