package buffer

// Line is a single mutable text row with its own caret.
// The caret is a rune offset and always satisfies 0 <= caret <= Len().
type Line struct {
	text  []rune
	caret int
}

// NewLine creates a line holding text with the caret at column 0.
func NewLine(text string) *Line {
	return &Line{text: []rune(text)}
}

// Text returns the line content.
func (l *Line) Text() string {
	return string(l.text)
}

// SetText replaces the line content, clamping the caret to the new length.
func (l *Line) SetText(text string) {
	l.text = []rune(text)
	l.SetCaret(l.caret)
}

// Len returns the line length in runes.
func (l *Line) Len() int {
	return len(l.text)
}

// Caret returns the caret column.
func (l *Line) Caret() int {
	return l.caret
}

// SetCaret moves the caret, clamping it to [0, Len()].
func (l *Line) SetCaret(col int) {
	switch {
	case col < 0:
		l.caret = 0
	case col > len(l.text):
		l.caret = len(l.text)
	default:
		l.caret = col
	}
}

// IsCaretAtStart returns true if the caret is at column 0.
func (l *Line) IsCaretAtStart() bool {
	return l.caret == 0
}

// IsCaretAtEnd returns true if the caret is past the last rune.
func (l *Line) IsCaretAtEnd() bool {
	return l.caret >= len(l.text)
}

// TextBeforeCaret returns the text left of the caret.
func (l *Line) TextBeforeCaret() string {
	return l.TextBefore(l.caret)
}

// TextAfterCaret returns the text from the caret on.
func (l *Line) TextAfterCaret() string {
	return l.TextAfter(l.caret)
}

// TextBefore returns text[:index]. Callers pass 0 <= index <= Len().
func (l *Line) TextBefore(index int) string {
	return string(l.text[:index])
}

// TextAfter returns text[index:]. Callers pass 0 <= index <= Len().
func (l *Line) TextAfter(index int) string {
	return string(l.text[index:])
}

// TextBetween returns text[start:end].
func (l *Line) TextBetween(start, end int) string {
	return string(l.text[start:end])
}

// TextOutside returns the text with [start, end) cut out.
func (l *Line) TextOutside(start, end int) string {
	return l.TextBefore(start) + l.TextAfter(end)
}

// InsertAtCaret splices text at the caret. The caret advances past the
// inserted text when advance is true.
func (l *Line) InsertAtCaret(text string, advance bool) {
	ins := []rune(text)
	if len(ins) == 0 {
		return
	}

	out := make([]rune, 0, len(l.text)+len(ins))
	out = append(out, l.text[:l.caret]...)
	out = append(out, ins...)
	out = append(out, l.text[l.caret:]...)
	l.text = out

	if advance {
		l.caret += len(ins)
	}
}

// InsertRuneAtCaret splices a single rune at the caret.
func (l *Line) InsertRuneAtCaret(r rune, advance bool) {
	l.InsertAtCaret(string(r), advance)
}

// Left moves the caret one column left. No-op at column 0.
func (l *Line) Left() {
	if l.caret > 0 {
		l.caret--
	}
}

// Right moves the caret one column right. No-op at end of line.
func (l *Line) Right() {
	if l.caret < len(l.text) {
		l.caret++
	}
}

// Home moves the caret to column 0.
func (l *Line) Home() {
	l.caret = 0
}

// End moves the caret past the last rune.
func (l *Line) End() {
	l.caret = len(l.text)
}

// Delete removes the rune under the caret. No-op at end of line.
func (l *Line) Delete() {
	if l.caret >= len(l.text) {
		return
	}
	l.text = append(l.text[:l.caret:l.caret], l.text[l.caret+1:]...)
}

// Backspace removes the rune before the caret and moves the caret left.
// No-op at column 0.
func (l *Line) Backspace() {
	if l.caret == 0 {
		return
	}
	l.text = append(l.text[:l.caret-1:l.caret-1], l.text[l.caret:]...)
	l.caret--
}
