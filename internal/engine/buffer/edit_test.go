package buffer

import (
	"reflect"
	"testing"

	"github.com/dshills/sabre/internal/clipboard"
	"github.com/dshills/sabre/internal/engine/cursor"
)

func TestTextInput(t *testing.T) {
	b := NewFromString("ac")
	place(b, 0, 1)

	b.TextInput('b')

	assertLines(t, b, "abc")
	assertCaret(t, b, 0, 2)
}

func TestTextInputReplacesSelection(t *testing.T) {
	b := NewFromString("abcdef")
	b.SetSelection(cursor.NewSelection(0, 1, 0, 4))

	b.TextInput('X')

	assertLines(t, b, "aXef")
	assertCaret(t, b, 0, 2)
}

func TestTextInputWidthGuard(t *testing.T) {
	b := NewFromString("abcd", WithViewport(FixedViewport{RowCount: 10, ColumnCount: 4}))
	b.CurrentLine().End()
	b.SetSelection(cursor.NewSelection(0, 0, 0, 2))

	b.TextInput('e')

	assertLines(t, b, "abcd")
	if !b.HasSelection() {
		t.Error("rejected input should leave the selection alone")
	}
}

func TestIndent(t *testing.T) {
	b := NewFromString("x")
	b.Indent(2)
	assertLines(t, b, "  x")
	assertCaret(t, b, 0, 2)
}

func TestBackspaceJoinsLines(t *testing.T) {
	b := NewFromString("ab\ncd")
	place(b, 1, 0)

	b.Backspace()

	assertLines(t, b, "abcd")
	assertCaret(t, b, 0, 2)
}

func TestBackspaceInLine(t *testing.T) {
	b := NewFromString("abc")
	place(b, 0, 2)

	b.Backspace()

	assertLines(t, b, "ac")
	assertCaret(t, b, 0, 1)
}

func TestBackspaceAtDocumentStart(t *testing.T) {
	b := NewFromString("abc\ndef")
	place(b, 0, 0)

	b.Backspace()

	assertLines(t, b, "abc", "def")
	assertCaret(t, b, 0, 0)
}

func TestBackspaceRemovesSelection(t *testing.T) {
	b := NewFromString("ab\ncd")
	place(b, 1, 0)
	b.SetSelection(cursor.NewSelection(0, 1, 1, 1))

	b.Backspace()

	assertLines(t, b, "ad")
	assertCaret(t, b, 0, 1)
}

func TestDeleteJoinsLines(t *testing.T) {
	b := NewFromString("ab\ncd")
	place(b, 0, 2)

	b.Delete()

	assertLines(t, b, "abcd")
	assertCaret(t, b, 0, 2)
}

func TestDeleteInLine(t *testing.T) {
	b := NewFromString("abc")
	place(b, 0, 0)

	b.Delete()

	assertLines(t, b, "bc")
	assertCaret(t, b, 0, 0)
}

func TestDeleteAtDocumentEnd(t *testing.T) {
	b := NewFromString("ab\ncd")
	place(b, 1, 2)

	b.Delete()

	assertLines(t, b, "ab", "cd")
}

func TestDeleteRemovesSelection(t *testing.T) {
	b := NewFromString("abcd")
	b.SetSelection(cursor.NewSelection(0, 0, 0, 2))

	b.Delete()

	assertLines(t, b, "cd")
}

func TestNewLineAfterCurrentSplits(t *testing.T) {
	b := NewFromString("hello world")
	place(b, 0, 5)

	b.NewLineAfterCurrent(true)

	assertLines(t, b, "hello", " world")
	assertCaret(t, b, 1, 0)
}

func TestNewLineAfterCurrentNoAdvance(t *testing.T) {
	b := NewFromString("abc")
	place(b, 0, 1)

	b.NewLineAfterCurrent(false)

	assertLines(t, b, "abc", "")
	assertCaret(t, b, 0, 1)
}

func TestNewLineAfterCurrentRemovesSelection(t *testing.T) {
	b := NewFromString("abcdef")
	place(b, 0, 4)
	b.SetSelection(cursor.NewSelection(0, 2, 0, 4))

	b.NewLineAfterCurrent(true)

	assertLines(t, b, "ab", "ef")
	assertCaret(t, b, 1, 0)
}

func TestNewLineBeforeCurrent(t *testing.T) {
	b := NewFromString("a\nb")
	place(b, 1, 1)

	b.NewLineBeforeCurrent()

	assertLines(t, b, "a", "", "b")
	assertCaret(t, b, 1, 0)
}

func TestCutLine(t *testing.T) {
	b := NewFromString("one\ntwo\nthree")
	place(b, 1, 2)

	text := b.CutLine()

	if text != "two" {
		t.Errorf("expected %q, got %q", "two", text)
	}
	assertLines(t, b, "one", "three")
	if b.CurrentLineIndex() != 1 {
		t.Errorf("expected current line 1, got %d", b.CurrentLineIndex())
	}
}

func TestCutLastLineMovesUp(t *testing.T) {
	b := NewFromString("one\ntwo")
	place(b, 1, 0)

	b.CutLine()

	assertLines(t, b, "one")
	if b.CurrentLineIndex() != 0 {
		t.Errorf("expected current line 0, got %d", b.CurrentLineIndex())
	}
}

func TestCutOnlyLineClearsIt(t *testing.T) {
	b := NewFromString("solo")
	b.CurrentLine().End()

	text := b.CutLine()

	if text != "solo" {
		t.Errorf("expected %q, got %q", "solo", text)
	}
	assertLines(t, b, "")
	assertCaret(t, b, 0, 0)
}

func TestCutLineScrollsBackAtTopRow(t *testing.T) {
	b := NewFromString("0\n1\n2\n3", WithViewport(FixedViewport{RowCount: 3, ColumnCount: 80}))
	place(b, 3, 0)
	b.SetTop(3)

	b.CutLine()

	if b.CurrentLineIndex() != 2 {
		t.Errorf("expected current line 2, got %d", b.CurrentLineIndex())
	}
	if b.Top() != 2 {
		t.Errorf("expected top 2, got %d", b.Top())
	}
}

func TestCutWithSelection(t *testing.T) {
	b := NewFromString("abc\ndef")
	b.SetSelection(cursor.NewSelection(0, 1, 1, 2))

	got := b.Cut()

	if want := []string{"bc", "de"}; !reflect.DeepEqual(got, want) {
		t.Errorf("expected %q, got %q", want, got)
	}
	assertLines(t, b, "af")
}

func TestCutWithoutSelection(t *testing.T) {
	b := NewFromString("abc\ndef")

	got := b.Cut()

	if want := []string{"abc"}; !reflect.DeepEqual(got, want) {
		t.Errorf("expected %q, got %q", want, got)
	}
	assertLines(t, b, "def")
}

func TestCopyDoesNotMutate(t *testing.T) {
	b := NewFromString("abc\ndef")
	b.SetSelection(cursor.NewSelection(0, 1, 1, 2))

	got := b.Copy()

	if want := []string{"bc", "de"}; !reflect.DeepEqual(got, want) {
		t.Errorf("expected %q, got %q", want, got)
	}
	assertLines(t, b, "abc", "def")
	if !b.HasSelection() {
		t.Error("copy should keep the selection")
	}
}

func TestPaste(t *testing.T) {
	cb := clipboard.NewMemory()
	_ = cb.SetText("one  \r\n\ttwo\nthree")

	b := NewFromString("[]")
	place(b, 0, 1)
	b.Paste(cb)

	assertLines(t, b, "[one", "  two", "three]")
	assertCaret(t, b, 2, 5)
}

func TestPasteEmptyClipboard(t *testing.T) {
	b := NewFromString("abc")
	b.SetSelection(cursor.NewSelection(0, 0, 0, 3))

	b.Paste(clipboard.NewMemory())
	b.Paste(nil)

	assertLines(t, b, "abc")
	if !b.HasSelection() {
		t.Error("pasting nothing should keep the selection")
	}
}

func TestPasteReplacesSelection(t *testing.T) {
	b := NewFromString("abcdef")
	b.SetSelection(cursor.NewSelection(0, 1, 0, 5))

	b.PasteText("XY")

	assertLines(t, b, "aXYf")
	assertCaret(t, b, 0, 3)
}

func TestCutPasteRoundTrip(t *testing.T) {
	src := NewFromString("abc\ndef")
	src.SelectAll()

	cb := clipboard.NewMemory()
	_ = cb.SetText(clipboard.Join(src.Cut()))

	assertLines(t, src, "")

	dst := New()
	dst.Paste(cb)
	assertLines(t, dst, "abc", "def")
}

func TestMoveLineUp(t *testing.T) {
	b := NewFromString("a\nb\nc")
	place(b, 2, 0)
	b.BeginSelection()

	b.MoveLineUp()

	assertLines(t, b, "a", "c", "b")
	if b.CurrentLineIndex() != 1 {
		t.Errorf("expected current line 1, got %d", b.CurrentLineIndex())
	}
	if b.HasSelection() {
		t.Error("moving a line should clear the selection")
	}

	place(b, 0, 0)
	b.MoveLineUp()
	assertLines(t, b, "a", "c", "b")
}

func TestMoveLineDown(t *testing.T) {
	b := NewFromString("a\nb\nc")
	place(b, 0, 0)

	b.MoveLineDown()

	assertLines(t, b, "b", "a", "c")
	if b.CurrentLineIndex() != 1 {
		t.Errorf("expected current line 1, got %d", b.CurrentLineIndex())
	}

	place(b, 2, 0)
	b.MoveLineDown()
	assertLines(t, b, "b", "a", "c")
}
