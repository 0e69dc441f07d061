package backend

import (
	"testing"

	"github.com/dshills/sabre/internal/config"
	"github.com/dshills/sabre/internal/input/key"
	"github.com/dshills/sabre/internal/renderer"
)

func TestNullBackendSetContent(t *testing.T) {
	b := NewNullBackend(10, 3)

	style := renderer.DefaultStyle().WithForeground(renderer.ColorWhite)
	b.SetContent(2, 1, 'X', style)

	got := b.Cell(2, 1)
	if got.Rune != 'X' || !got.Style.Equals(style) {
		t.Errorf("unexpected cell %+v", got)
	}
	if b.Row(1) != "  X       " {
		t.Errorf("unexpected row %q", b.Row(1))
	}
}

func TestNullBackendCursor(t *testing.T) {
	b := NewNullBackend(80, 24)

	b.ShowCursor(15, 10)
	x, y, visible := b.CursorPosition()
	if x != 15 || y != 10 || !visible {
		t.Errorf("cursor position: expected (15, 10, true), got (%d, %d, %v)", x, y, visible)
	}

	b.HideCursor()
	if _, _, visible = b.CursorPosition(); visible {
		t.Error("cursor should be hidden")
	}
}

func TestNullBackendCursorStyle(t *testing.T) {
	b := NewNullBackend(80, 24)

	b.SetCursorStyle(CursorBar)
	if b.CursorStyleValue() != CursorBar {
		t.Error("cursor style should be bar")
	}
}

func TestNullBackendResize(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Resize(100, 40)

	w, h := b.Size()
	if w != 100 || h != 40 {
		t.Errorf("expected size (100, 40), got (%d, %d)", w, h)
	}

	ev := b.PollEvent()
	if ev.Type != EventResize || ev.Width != 100 || ev.Height != 40 {
		t.Errorf("unexpected event %+v", ev)
	}
}

func TestNullBackendPostEvent(t *testing.T) {
	b := NewNullBackend(80, 24)

	want := Event{Type: EventKey, Key: key.NewRuneEvent('q', key.ModCtrl)}
	b.PostEvent(want)

	if got := b.PollEvent(); got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestCursorStyleFromShape(t *testing.T) {
	tests := []struct {
		shape string
		want  CursorStyle
	}{
		{config.CursorBlock, CursorBlock},
		{config.CursorBar, CursorBar},
		{config.CursorUnderline, CursorUnderline},
		{"", CursorUnderline},
	}

	for _, tt := range tests {
		if got := CursorStyleFromShape(tt.shape); got != tt.want {
			t.Errorf("CursorStyleFromShape(%q): expected %d, got %d", tt.shape, tt.want, got)
		}
	}
}
