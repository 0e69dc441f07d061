package buffer

// Motion describes the result of a caret motion: the caret position after
// the move and how many rows the viewport scrolled (negative is up).
// Hosts that keep their own viewport state apply Scroll to it.
type Motion struct {
	Line   int
	Column int
	Scroll int
}

// Scrolled reports whether the motion changed the viewport.
func (m Motion) Scrolled() bool {
	return m.Scroll != 0
}

func (b *Buffer) motion(startTop int) Motion {
	return Motion{
		Line:   b.current,
		Column: b.CurrentLine().Caret(),
		Scroll: b.top - startTop,
	}
}

// beginShiftMotion anchors a selection at the pre-motion caret when Shift
// is held and no selection exists yet.
func (b *Buffer) beginShiftMotion() {
	if b.shiftHeld() && b.selection.IsNone() {
		b.BeginSelection()
	}
}

// endShiftMotion moves the live selection end to the caret when Shift is held.
func (b *Buffer) endShiftMotion() {
	if b.shiftHeld() {
		b.UpdateSelection()
	}
}

// moveWindowUp scrolls up one row when the caret sits on the first visible row.
func (b *Buffer) moveWindowUp() {
	if b.cursorRow() == 0 && b.top > 0 {
		b.top--
	}
}

// scrollIntoView adjusts Top so the caret is on a text row.
func (b *Buffer) scrollIntoView() {
	b.clampTop()

	rows := b.rows()
	if rows <= 0 {
		return
	}
	maxRow := rows - 2
	if maxRow < 0 {
		maxRow = 0
	}
	if b.cursorRow() > maxRow {
		b.top = b.current - maxRow
	}
}

// up moves to the previous line without touching the selection.
func (b *Buffer) up() {
	if b.current == 0 {
		return
	}

	b.moveWindowUp()

	col := b.CurrentLine().Caret()
	prev := b.lines[b.current-1]
	if prev.Len() > col {
		prev.SetCaret(col)
	} else {
		prev.End()
	}
	b.current--
}

// down moves to the next line without touching the selection.
func (b *Buffer) down() {
	if b.current >= len(b.lines)-1 {
		return
	}

	if rows := b.rows(); rows > 0 && b.cursorRow() >= rows-2 {
		b.top++
	}

	col := b.CurrentLine().Caret()
	next := b.lines[b.current+1]
	if next.Len() > col {
		next.SetCaret(col)
	} else {
		next.End()
	}
	b.current++
}

// Up moves the caret to the previous line, keeping its column when the
// target line is long enough and snapping to end of line otherwise.
func (b *Buffer) Up() Motion {
	start := b.top
	if b.current == 0 {
		return b.motion(start)
	}

	b.beginShiftMotion()
	b.up()
	b.endShiftMotion()
	return b.motion(start)
}

// Down moves the caret to the next line. See Up for column handling.
func (b *Buffer) Down() Motion {
	start := b.top
	if b.current >= len(b.lines)-1 {
		return b.motion(start)
	}

	b.beginShiftMotion()
	b.down()
	b.endShiftMotion()
	return b.motion(start)
}

// Left moves the caret one column left, wrapping to the end of the
// previous line at column 0.
func (b *Buffer) Left() Motion {
	start := b.top
	line := b.CurrentLine()

	if line.IsCaretAtStart() {
		if b.current == 0 {
			return b.motion(start)
		}
		b.beginShiftMotion()
		b.up()
		b.CurrentLine().End()
	} else {
		b.beginShiftMotion()
		line.Left()
	}

	b.endShiftMotion()
	return b.motion(start)
}

// Right moves the caret one column right, wrapping to the start of the
// next line at end of line.
func (b *Buffer) Right() Motion {
	start := b.top
	line := b.CurrentLine()

	if line.IsCaretAtEnd() {
		if b.current >= len(b.lines)-1 {
			return b.motion(start)
		}
		b.beginShiftMotion()
		b.down()
		b.CurrentLine().Home()
	} else {
		b.beginShiftMotion()
		line.Right()
	}

	b.endShiftMotion()
	return b.motion(start)
}

// Home moves the caret to column 0.
func (b *Buffer) Home() Motion {
	start := b.top
	b.beginShiftMotion()
	b.CurrentLine().Home()
	b.endShiftMotion()
	return b.motion(start)
}

// End moves the caret to the end of the line.
func (b *Buffer) End() Motion {
	start := b.top
	b.beginShiftMotion()
	b.CurrentLine().End()
	b.endShiftMotion()
	return b.motion(start)
}

// FirstLine moves the caret to the start of the document.
func (b *Buffer) FirstLine() Motion {
	start := b.top
	b.beginShiftMotion()
	for b.current != 0 {
		b.up()
	}
	b.CurrentLine().Home()
	b.endShiftMotion()
	return b.motion(start)
}

// LastLine moves the caret to the end of the document.
func (b *Buffer) LastLine() Motion {
	start := b.top
	b.beginShiftMotion()
	b.lastLine()
	b.endShiftMotion()
	return b.motion(start)
}

func (b *Buffer) lastLine() {
	for b.current < len(b.lines)-1 {
		b.down()
	}
	b.CurrentLine().End()
}
