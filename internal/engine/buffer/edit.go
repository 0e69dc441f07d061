package buffer

import (
	"strings"
	"unicode"

	"github.com/dshills/sabre/internal/clipboard"
)

// TextInput inserts r at the caret, replacing any selection. The input is
// dropped when the current line is already as wide as the viewport.
func (b *Buffer) TextInput(r rune) {
	if b.viewport != nil {
		if cols := b.viewport.Columns(); cols > 0 && b.CurrentLine().Len()+1 > cols {
			return
		}
	}

	b.RemoveSelection()
	b.CurrentLine().InsertRuneAtCaret(r, true)
}

// Indent inserts width spaces through TextInput.
func (b *Buffer) Indent(width int) {
	for i := 0; i < width; i++ {
		b.TextInput(' ')
	}
}

// Backspace removes the selection if there is one. Otherwise it deletes
// the rune before the caret, or joins the line onto the previous one when
// the caret is at column 0.
func (b *Buffer) Backspace() {
	if b.HasSelection() {
		b.RemoveSelection()
		return
	}

	line := b.CurrentLine()
	if !line.IsCaretAtStart() {
		line.Backspace()
		return
	}
	if b.current == 0 {
		return
	}

	text := line.Text()
	b.up()
	prev := b.CurrentLine()
	join := prev.Len()
	b.removeLine(b.current + 1)
	prev.SetText(prev.Text() + text)
	prev.SetCaret(join)
}

// Delete removes the selection if there is one. Otherwise it deletes the
// rune under the caret, or joins the next line onto this one when the
// caret is at end of line.
func (b *Buffer) Delete() {
	if b.HasSelection() {
		b.RemoveSelection()
		return
	}

	line := b.CurrentLine()
	if !line.IsCaretAtEnd() {
		line.Delete()
		return
	}
	if b.current+1 >= len(b.lines) {
		return
	}

	next := b.lines[b.current+1].Text()
	b.removeLine(b.current + 1)
	line.SetText(line.Text() + next)
}

// NewLineBeforeCurrent removes any selection and inserts an empty line
// above the current one. The caret moves onto the new line.
func (b *Buffer) NewLineBeforeCurrent() {
	b.RemoveSelection()
	b.insertLine(b.current, NewLine(""))
}

// NewLineAfterCurrent removes any selection and inserts an empty line below
// the current one. With advance, the current line is split at the caret:
// the text after the caret moves to the new line and the caret moves to its
// start.
func (b *Buffer) NewLineAfterCurrent(advance bool) {
	b.RemoveSelection()

	line := b.CurrentLine()
	next := NewLine("")
	b.insertLine(b.current+1, next)

	if !advance {
		return
	}

	next.SetText(line.TextAfterCaret())
	line.SetText(line.TextBeforeCaret())
	b.down()
	b.CurrentLine().Home()
}

// CutLine removes the current line and returns its text. The last
// remaining line is emptied instead of removed.
func (b *Buffer) CutLine() string {
	b.ClearSelection()

	line := b.CurrentLine()
	text := line.Text()

	if len(b.lines) == 1 {
		line.Home()
		line.SetText("")
		return text
	}

	atTopRow := b.cursorRow() == 0
	b.removeLine(b.current)
	if b.current >= len(b.lines) {
		b.current = len(b.lines) - 1
		if atTopRow && b.top > 0 {
			b.top--
		}
	}
	b.clampTop()
	return text
}

// Cut removes and returns the selected lines, or the current line when
// nothing is selected.
func (b *Buffer) Cut() []string {
	if b.HasSelection() {
		lines := b.SelectionText()
		b.RemoveSelection()
		return lines
	}
	return []string{b.CutLine()}
}

// Copy returns the selected lines without modifying the buffer.
func (b *Buffer) Copy() []string {
	return b.SelectionText()
}

// Paste inserts the clipboard text at the caret. See PasteText.
func (b *Buffer) Paste(cb clipboard.Reader) {
	if cb == nil {
		return
	}
	text, ok := cb.Text()
	if !ok {
		return
	}
	b.PasteText(text)
}

// PasteText replaces any selection with text. Each pasted line has its
// trailing whitespace and leading carriage return removed and tabs
// expanded to two spaces; a new line is opened between pasted lines.
func (b *Buffer) PasteText(text string) {
	if text == "" {
		return
	}

	b.RemoveSelection()

	lines := strings.Split(text, "\n")
	for i, l := range lines {
		l = strings.TrimRightFunc(l, unicode.IsSpace)
		l = strings.TrimLeft(l, "\r")
		lines[i] = strings.ReplaceAll(l, "\t", "  ")
	}

	for i, l := range lines {
		b.CurrentLine().InsertAtCaret(l, true)
		if i+1 < len(lines) {
			b.NewLineAfterCurrent(true)
		}
	}
}

// MoveLineUp swaps the current line with the one above. No-op on the
// first line.
func (b *Buffer) MoveLineUp() {
	if b.current == 0 {
		return
	}

	b.ClearSelection()
	b.lines[b.current-1], b.lines[b.current] = b.lines[b.current], b.lines[b.current-1]
	b.current--
	b.clampTop()
}

// MoveLineDown swaps the current line with the one below. No-op on the
// last line.
func (b *Buffer) MoveLineDown() {
	if b.current == len(b.lines)-1 {
		return
	}

	b.ClearSelection()
	b.lines[b.current+1], b.lines[b.current] = b.lines[b.current], b.lines[b.current+1]
	b.current++
	b.scrollIntoView()
}

func (b *Buffer) insertLine(at int, l *Line) {
	b.lines = append(b.lines, nil)
	copy(b.lines[at+1:], b.lines[at:])
	b.lines[at] = l
}

// removeLine drops the line at index i. The buffer keeps at least one line.
func (b *Buffer) removeLine(i int) {
	if len(b.lines) == 1 {
		b.lines[0].SetText("")
		return
	}
	b.lines = append(b.lines[:i], b.lines[i+1:]...)
}
