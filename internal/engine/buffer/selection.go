package buffer

import "github.com/dshills/sabre/internal/engine/cursor"

// Selection returns the current selection; cursor.None when nothing is selected.
func (b *Buffer) Selection() cursor.Selection {
	return b.selection
}

// HasSelection returns true if a selection is active.
func (b *Buffer) HasSelection() bool {
	return !b.selection.IsNone()
}

// SetSelection replaces the selection. Positions are clamped to the
// document when the selection is used.
func (b *Buffer) SetSelection(sel cursor.Selection) {
	b.selection = sel
}

// BeginSelection anchors a zero-width selection at the caret.
func (b *Buffer) BeginSelection() {
	line, col := b.Caret()
	b.selection = cursor.NewCaretSelection(line, col)
}

// UpdateSelection moves the live selection end to the caret, beginning a
// selection first if none exists.
func (b *Buffer) UpdateSelection() {
	if b.selection.IsNone() {
		b.BeginSelection()
	}
	line, col := b.Caret()
	b.selection = b.selection.WithEnd(line, col)
}

// SelectAll selects the whole document and leaves the caret at its end.
func (b *Buffer) SelectAll() {
	b.selection = cursor.NewCaretSelection(0, 0)
	b.lastLine()
	line, col := b.Caret()
	b.selection = b.selection.WithEnd(line, col)
}

// ClearSelection drops the selection.
func (b *Buffer) ClearSelection() {
	b.selection = cursor.None
}

// absoluteSelection returns the selection in document order with every
// position clamped to the current content.
func (b *Buffer) absoluteSelection() cursor.Selection {
	sel := b.selection.ToAbsolute()

	clampLine := func(i int) int {
		if i < 0 {
			return 0
		}
		if i >= len(b.lines) {
			return len(b.lines) - 1
		}
		return i
	}
	clampCol := func(line, col int) int {
		if col < 0 {
			return 0
		}
		if n := b.lines[line].Len(); col > n {
			return n
		}
		return col
	}

	sel.StartLine = clampLine(sel.StartLine)
	sel.EndLine = clampLine(sel.EndLine)
	sel.StartColumn = clampCol(sel.StartLine, sel.StartColumn)
	sel.EndColumn = clampCol(sel.EndLine, sel.EndColumn)

	if sel.StartLine == sel.EndLine && sel.StartColumn > sel.EndColumn {
		sel.StartColumn = sel.EndColumn
	}
	return sel
}

// SelectionText returns the selected text, one element per selected line.
// The first element is the suffix of the first line from the start column,
// the last the prefix of the last line up to the end column; lines in
// between are returned whole. It returns nil when nothing is selected.
func (b *Buffer) SelectionText() []string {
	if b.selection.IsNone() {
		return nil
	}

	sel := b.absoluteSelection()
	count := sel.SelectedLineCount()
	out := make([]string, count)

	if count == 1 {
		out[0] = b.lines[sel.StartLine].TextBetween(sel.StartColumn, sel.EndColumn)
		return out
	}

	out[0] = b.lines[sel.StartLine].TextAfter(sel.StartColumn)
	for i := 1; i < count-1; i++ {
		out[i] = b.lines[sel.StartLine+i].Text()
	}
	out[count-1] = b.lines[sel.EndLine].TextBefore(sel.EndColumn)
	return out
}

// RemoveSelection deletes the selected text. The remainder of the first
// line is joined with the remainder of the last, lines in between are
// removed, the caret lands at the selection start and the selection is
// cleared. No-op when nothing is selected.
func (b *Buffer) RemoveSelection() {
	if b.selection.IsNone() {
		return
	}

	sel := b.absoluteSelection()
	first := b.lines[sel.StartLine]

	if sel.StartLine == sel.EndLine {
		first.SetText(first.TextOutside(sel.StartColumn, sel.EndColumn))
	} else {
		last := b.lines[sel.EndLine]
		first.SetText(first.TextBefore(sel.StartColumn) + last.TextAfter(sel.EndColumn))
		b.lines = append(b.lines[:sel.StartLine+1], b.lines[sel.EndLine+1:]...)
	}

	b.current = sel.StartLine
	first.SetCaret(sel.StartColumn)
	b.ClearSelection()
	b.clampTop()
}
