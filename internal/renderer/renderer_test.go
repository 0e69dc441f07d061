package renderer

import (
	"strings"
	"testing"

	"github.com/dshills/sabre/internal/app"
	"github.com/dshills/sabre/internal/config"
	"github.com/dshills/sabre/internal/engine/cursor"
	"github.com/dshills/sabre/internal/input/key"
)

func newEditor(t *testing.T, path, content string) *app.Editor {
	t.Helper()
	ed, err := app.New(app.Options{
		Config:     config.Default(),
		FileExists: func(string) bool { return true },
	})
	if err != nil {
		t.Fatalf("app.New: %v", err)
	}
	ed.Open(path, content)
	return ed
}

func plainOptions() Options {
	return Options{Theme: "monokai"}
}

func TestRenderPaintsTextAndStatus(t *testing.T) {
	ed := newEditor(t, "notes.txt", "alpha\nbeta")
	g := NewMemoryGrid(20, 4)

	cur := Render(g, ed, plainOptions())

	if got := g.Row(0); got != "alpha               " {
		t.Errorf("row 0: got %q", got)
	}
	if got := g.Row(1); got != "beta                " {
		t.Errorf("row 1: got %q", got)
	}
	if got := strings.TrimSpace(g.Row(2)); got != "" {
		t.Errorf("row 2 should be blank, got %q", got)
	}
	if got := g.Row(3); !strings.HasPrefix(got, " - | notes.txt") {
		t.Errorf("status row: got %q", got)
	}
	if cur != (Cursor{X: 0, Y: 0, Visible: true}) {
		t.Errorf("unexpected cursor %+v", cur)
	}
}

func TestRenderStartsAtTop(t *testing.T) {
	ed := newEditor(t, "", "0\n1\n2\n3\n4")
	b := ed.CurrentBuffer()
	b.SetCurrentLineIndex(3)
	b.SetTop(2)

	g := NewMemoryGrid(5, 3)
	cur := Render(g, ed, plainOptions())

	if g.Row(0) != "2    " || g.Row(1) != "3    " {
		t.Errorf("unexpected rows %q, %q", g.Row(0), g.Row(1))
	}
	if cur.Y != 1 || !cur.Visible {
		t.Errorf("expected cursor on row 1, got %+v", cur)
	}
}

func TestRenderHiddenCursorBelowView(t *testing.T) {
	ed := newEditor(t, "", "0\n1\n2\n3\n4")
	ed.CurrentBuffer().SetCurrentLineIndex(4)

	cur := Render(NewMemoryGrid(5, 3), ed, plainOptions())
	if cur.Visible {
		t.Errorf("cursor outside the text rows should be hidden, got %+v", cur)
	}
}

func TestRenderClipsLongLines(t *testing.T) {
	ed := newEditor(t, "", "abcdefghij")
	ed.CurrentBuffer().End()

	g := NewMemoryGrid(4, 2)
	cur := Render(g, ed, plainOptions())

	if got := g.Row(0); got != "hij " {
		t.Errorf("expected clipped tail, got %q", got)
	}
	if cur.X != 3 || cur.Y != 0 {
		t.Errorf("expected cursor (3, 0), got %+v", cur)
	}
}

func TestRenderWideRunes(t *testing.T) {
	ed := newEditor(t, "", "中a")
	ed.CurrentBuffer().End()

	g := NewMemoryGrid(6, 2)
	cur := Render(g, ed, plainOptions())

	if c := g.Cell(0, 0); c.Rune != '中' || c.Width != 2 {
		t.Errorf("unexpected first cell %+v", c)
	}
	if !g.Cell(1, 0).IsContinuation() {
		t.Error("second cell should continue the wide rune")
	}
	if g.Cell(2, 0).Rune != 'a' {
		t.Errorf("expected 'a' at column 2, got %q", g.Cell(2, 0).Rune)
	}
	if cur.X != 3 {
		t.Errorf("expected cursor column 3, got %d", cur.X)
	}
}

func TestRenderSelection(t *testing.T) {
	ed := newEditor(t, "", "abcdef")
	ed.CurrentBuffer().SetSelection(cursor.NewSelection(0, 1, 0, 3))

	r := New(plainOptions())
	g := NewMemoryGrid(8, 2)
	r.Render(g, ed)

	sel := r.Palette().Selection
	for x := 0; x < 6; x++ {
		want := x >= 1 && x < 3
		got := g.Cell(x, 0).Style.Equals(sel)
		if got != want {
			t.Errorf("column %d: selected=%v, want %v", x, got, want)
		}
	}
	if sel.Background.IsDefault() {
		t.Error("selection needs a concrete background")
	}
}

func TestRenderCurrentLine(t *testing.T) {
	ed := newEditor(t, "", "one\ntwo")
	ed.CurrentBuffer().SetCurrentLineIndex(1)

	opts := plainOptions()
	opts.HighlightCurrentLine = true
	r := New(opts)
	g := NewMemoryGrid(6, 3)
	r.Render(g, ed)

	hl := r.Palette().CurrentLine
	if !g.Cell(5, 1).Style.Background.Equals(hl) {
		t.Error("current line should be shaded to the right edge")
	}
	if g.Cell(0, 0).Style.Background.Equals(hl) {
		t.Error("other lines should not be shaded")
	}
}

func TestRenderSyntaxHighlighting(t *testing.T) {
	ed := newEditor(t, "main.go", "package main")

	opts := plainOptions()
	opts.HighlightSyntax = true
	r := New(opts)
	g := NewMemoryGrid(20, 2)
	r.Render(g, ed)

	kw := g.Cell(0, 0).Style
	name := g.Cell(8, 0).Style
	if kw.Foreground.Equals(name.Foreground) {
		t.Errorf("keyword and identifier should differ, both %s", kw.Foreground)
	}
	if !kw.Background.Equals(NewHighlighter("monokai").Background()) {
		t.Errorf("expected theme background, got %s", kw.Background)
	}
}

func TestRenderPromptCursor(t *testing.T) {
	ed := newEditor(t, "", "text")
	ed.KeyPressed(key.NewRuneEvent('o', key.ModCtrl))
	ed.TextInput("a")
	ed.TextInput("b")

	g := NewMemoryGrid(20, 3)
	cur := Render(g, ed, plainOptions())

	if got := g.Row(2); !strings.HasPrefix(got, app.PathPrompt+"ab") {
		t.Errorf("status row should show the prompt, got %q", got)
	}
	want := Cursor{X: len(app.PathPrompt) + 2, Y: 2, Visible: true}
	if cur != want {
		t.Errorf("expected %+v, got %+v", want, cur)
	}
}

func TestRenderNoBuffer(t *testing.T) {
	ed := newEditor(t, "", "x")
	ed.Close()

	g := NewMemoryGrid(24, 2)
	cur := Render(g, ed, plainOptions())

	if cur.Visible {
		t.Error("cursor should be hidden without a buffer")
	}
	if got := strings.TrimSpace(g.Row(1)); got != app.NoBuffersText {
		t.Errorf("unexpected status %q", got)
	}
}

func TestRenderZeroSize(t *testing.T) {
	ed := newEditor(t, "", "x")
	if cur := Render(NewMemoryGrid(0, 0), ed, plainOptions()); cur.Visible {
		t.Error("nothing to show on an empty grid")
	}
}
