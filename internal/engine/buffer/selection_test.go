package buffer

import (
	"reflect"
	"testing"

	"github.com/dshills/sabre/internal/engine/cursor"
)

func TestBeginUpdateSelection(t *testing.T) {
	b := NewFromString("abcdef\nghijkl")
	place(b, 0, 2)

	b.BeginSelection()
	if b.Selection() != cursor.NewCaretSelection(0, 2) {
		t.Errorf("unexpected selection %+v", b.Selection())
	}

	place(b, 1, 4)
	b.UpdateSelection()
	if b.Selection() != cursor.NewSelection(0, 2, 1, 4) {
		t.Errorf("unexpected selection %+v", b.Selection())
	}
}

func TestUpdateSelectionBeginsWhenNone(t *testing.T) {
	b := NewFromString("abc")
	place(b, 0, 1)

	b.UpdateSelection()
	if b.Selection() != cursor.NewCaretSelection(0, 1) {
		t.Errorf("expected caret selection, got %+v", b.Selection())
	}
}

func TestSelectAll(t *testing.T) {
	b := NewFromString("abc\nde\nfghi")
	place(b, 1, 1)

	b.SelectAll()

	if b.Selection() != cursor.NewSelection(0, 0, 2, 4) {
		t.Errorf("unexpected selection %+v", b.Selection())
	}
	assertCaret(t, b, 2, 4)
}

func TestSelectionTextSingleLine(t *testing.T) {
	b := NewFromString("abcdef")
	b.SetSelection(cursor.NewSelection(0, 4, 0, 1))

	want := []string{"bcd"}
	if got := b.SelectionText(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestSelectionTextMultiLine(t *testing.T) {
	b := NewFromString("abcdef\nghijkl\nmnopqr")
	b.SetSelection(cursor.NewSelection(2, 3, 0, 2))

	want := []string{"cdef", "ghijkl", "mno"}
	if got := b.SelectionText(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestSelectionTextNone(t *testing.T) {
	b := NewFromString("abc")
	if got := b.SelectionText(); len(got) != 0 {
		t.Errorf("expected no text, got %q", got)
	}
}

func TestSelectionTextClampsStalePositions(t *testing.T) {
	b := NewFromString("abc\nde")
	b.SetSelection(cursor.NewSelection(0, 1, 7, 9))

	want := []string{"bc", "de"}
	if got := b.SelectionText(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRemoveSelectionSingleLine(t *testing.T) {
	b := NewFromString("abcdef")
	place(b, 0, 5)
	b.SetSelection(cursor.NewSelection(0, 5, 0, 2))

	b.RemoveSelection()

	assertLines(t, b, "abf")
	assertCaret(t, b, 0, 2)
	if b.HasSelection() {
		t.Error("selection should be cleared")
	}
}

func TestRemoveSelectionMultiLine(t *testing.T) {
	b := NewFromString("abcdef\nghijkl\nmnopqr\nstu")
	place(b, 2, 3)
	b.SetSelection(cursor.NewSelection(0, 2, 2, 3))

	b.RemoveSelection()

	assertLines(t, b, "abpqr", "stu")
	assertCaret(t, b, 0, 2)
	if b.HasSelection() {
		t.Error("selection should be cleared")
	}
}

func TestRemoveSelectionNoneIsNoOp(t *testing.T) {
	b := NewFromString("abc\ndef")
	place(b, 1, 1)

	b.RemoveSelection()

	assertLines(t, b, "abc", "def")
	assertCaret(t, b, 1, 1)
}

func TestRemoveEmptySelection(t *testing.T) {
	b := NewFromString("abc")
	place(b, 0, 1)
	b.BeginSelection()

	b.RemoveSelection()

	assertLines(t, b, "abc")
	if b.HasSelection() {
		t.Error("empty selection should still be cleared")
	}
}

func TestClearSelection(t *testing.T) {
	b := NewFromString("abc")
	b.SelectAll()
	b.ClearSelection()

	if b.Selection() != cursor.None {
		t.Errorf("expected None, got %+v", b.Selection())
	}
}
