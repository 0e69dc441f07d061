package cursor

import "fmt"

// Selection represents a span of selected text across lines and columns.
// Start is the anchor where the selection began; End is the live endpoint
// that follows the caret. Start and End are not ordered; use ToAbsolute for
// the document-order form.
//
// Selection is a value type. The all -1 value None means "no selection".
type Selection struct {
	StartLine   int
	StartColumn int
	EndLine     int
	EndColumn   int
}

// None is the canonical "no selection" value.
var None = Selection{StartLine: -1, StartColumn: -1, EndLine: -1, EndColumn: -1}

// NewSelection creates a selection anchored at (startLine, startCol) with its
// live end at (endLine, endCol).
func NewSelection(startLine, startCol, endLine, endCol int) Selection {
	return Selection{
		StartLine:   startLine,
		StartColumn: startCol,
		EndLine:     endLine,
		EndColumn:   endCol,
	}
}

// NewCaretSelection creates a zero-width selection at the given position.
func NewCaretSelection(line, col int) Selection {
	return NewSelection(line, col, line, col)
}

// IsNone reports whether s is exactly the None sentinel.
// A selection with only some negative fields is not None.
func (s Selection) IsNone() bool {
	return s == None
}

// IsEmpty returns true if the selection is active but spans no text.
func (s Selection) IsEmpty() bool {
	return !s.IsNone() && s.StartLine == s.EndLine && s.StartColumn == s.EndColumn
}

// ToAbsolute returns the selection with start and end ordered so that
// (StartLine, StartColumn) <= (EndLine, EndColumn). Equal lines are ordered
// by column. None is returned unchanged.
func (s Selection) ToAbsolute() Selection {
	switch {
	case s.StartLine < s.EndLine:
		return s
	case s.StartLine > s.EndLine:
		return Selection{
			StartLine:   s.EndLine,
			StartColumn: s.EndColumn,
			EndLine:     s.StartLine,
			EndColumn:   s.StartColumn,
		}
	case s.StartColumn > s.EndColumn:
		return Selection{
			StartLine:   s.StartLine,
			StartColumn: s.EndColumn,
			EndLine:     s.EndLine,
			EndColumn:   s.StartColumn,
		}
	default:
		return s
	}
}

// IsForward returns true if the live end does not precede the anchor.
func (s Selection) IsForward() bool {
	return s.ToAbsolute() == s
}

// SelectedLineCount returns the number of lines the selection touches.
func (s Selection) SelectedLineCount() int {
	if s.IsNone() {
		return 0
	}
	abs := s.ToAbsolute()
	return abs.EndLine - abs.StartLine + 1
}

// WithEnd returns a copy with the live end moved to (line, col).
func (s Selection) WithEnd(line, col int) Selection {
	s.EndLine = line
	s.EndColumn = col
	return s
}

// IsInSelectionRange reports whether the cell at (col, line) is selected.
//
// Single-line selections cover the half-open column range [start, end).
// For multi-line selections the first line is selected from the start
// column on, the last line up to (not including) the end column, and
// interior lines entirely.
func (s Selection) IsInSelectionRange(col, line int) bool {
	if s.IsNone() {
		return false
	}

	abs := s.ToAbsolute()
	if line < abs.StartLine || line > abs.EndLine {
		return false
	}

	if abs.StartLine == abs.EndLine {
		return col >= abs.StartColumn && col < abs.EndColumn
	}

	switch line {
	case abs.StartLine:
		return col >= abs.StartColumn
	case abs.EndLine:
		return col < abs.EndColumn
	default:
		return true
	}
}

// String returns "startLine:startCol -> endLine:endCol" in document order.
func (s Selection) String() string {
	if s.IsNone() {
		return "none"
	}
	abs := s.ToAbsolute()
	return fmt.Sprintf("%d:%d -> %d:%d", abs.StartLine, abs.StartColumn, abs.EndLine, abs.EndColumn)
}
