package buffer

import (
	"bytes"
	"crypto/sha256"
	"strings"

	"github.com/google/uuid"

	"github.com/dshills/sabre/internal/engine/cursor"
)

// Viewport supplies the host window geometry.
type Viewport interface {
	// Rows is the number of text rows, including the status row.
	Rows() int
	// Columns is the maximum number of runes a line may hold.
	Columns() int
}

// ModifierState reports the host's modifier-key state.
type ModifierState interface {
	ShiftHeld() bool
}

// Buffer is an ordered, never-empty sequence of lines with a current line,
// a viewport scroll offset and a selection.
//
// A Buffer is owned by a single editing session and is not safe for
// concurrent use.
type Buffer struct {
	id        string
	lines     []*Line
	current   int
	top       int
	selection cursor.Selection
	filePath  string

	savedHash [sha256.Size]byte

	viewport  Viewport
	modifiers ModifierState
}

// New creates a buffer holding one empty line.
func New(opts ...Option) *Buffer {
	return NewFromLines(nil, opts...)
}

// NewFromString creates a buffer by splitting text on "\n".
// A trailing "\r" on each line is dropped.
func NewFromString(text string, opts ...Option) *Buffer {
	parts := strings.Split(text, "\n")
	for i, p := range parts {
		parts[i] = strings.TrimSuffix(p, "\r")
	}
	return NewFromLines(parts, opts...)
}

// NewFromLines creates a buffer with one line per element.
// An empty slice yields a single empty line.
func NewFromLines(lines []string, opts ...Option) *Buffer {
	b := &Buffer{
		id:        uuid.New().String(),
		selection: cursor.None,
	}

	for _, opt := range opts {
		opt(b)
	}

	if len(lines) == 0 {
		b.lines = []*Line{NewLine("")}
	} else {
		b.lines = make([]*Line, len(lines))
		for i, s := range lines {
			b.lines[i] = NewLine(s)
		}
	}

	b.MarkSaved()
	return b
}

// ID returns the buffer's unique identifier.
func (b *Buffer) ID() string {
	return b.id
}

// Lines returns the buffer's lines. Callers must not modify the slice;
// mutate through Buffer operations instead.
func (b *Buffer) Lines() []*Line {
	return b.lines
}

// LineCount returns the number of lines. It is always at least 1.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns the line at index i, or nil if out of range.
func (b *Buffer) Line(i int) *Line {
	if i < 0 || i >= len(b.lines) {
		return nil
	}
	return b.lines[i]
}

// LineText returns the text of line i, or "" if out of range.
func (b *Buffer) LineText(i int) string {
	if l := b.Line(i); l != nil {
		return l.Text()
	}
	return ""
}

// CurrentLineIndex returns the index of the line holding the caret.
func (b *Buffer) CurrentLineIndex() int {
	return b.current
}

// SetCurrentLineIndex moves to line i, clamping to [0, LineCount()-1].
func (b *Buffer) SetCurrentLineIndex(i int) {
	switch {
	case i >= len(b.lines):
		b.current = len(b.lines) - 1
	case i < 0:
		b.current = 0
	default:
		b.current = i
	}
}

// CurrentLine returns the line holding the caret.
func (b *Buffer) CurrentLine() *Line {
	return b.lines[b.current]
}

// Caret returns the current (line, column) position.
func (b *Buffer) Caret() (line, col int) {
	return b.current, b.CurrentLine().Caret()
}

// Top returns the first visible line index.
func (b *Buffer) Top() int {
	return b.top
}

// SetTop sets the first visible line index, clamped to the line range.
func (b *Buffer) SetTop(top int) {
	b.top = top
	b.clampTop()
}

// FilePath returns the path the buffer is associated with, if any.
func (b *Buffer) FilePath() string {
	return b.filePath
}

// SetFilePath associates the buffer with a path.
func (b *Buffer) SetFilePath(path string) {
	b.filePath = path
}

// SetViewport replaces the viewport geometry source.
func (b *Buffer) SetViewport(v Viewport) {
	b.viewport = v
}

// SetModifierState replaces the modifier-key state source.
func (b *Buffer) SetModifierState(m ModifierState) {
	b.modifiers = m
}

// Text returns the buffer content with lines joined by "\n".
func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, l := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(l.Text())
	}
	return sb.String()
}

// Dirty reports whether the content differs from the last saved snapshot.
// The content hash is recomputed on every call.
func (b *Buffer) Dirty() bool {
	h := b.contentHash()
	return !bytes.Equal(h[:], b.savedHash[:])
}

// MarkSaved snapshots the current content hash as the saved state.
func (b *Buffer) MarkSaved() {
	b.savedHash = b.contentHash()
}

func (b *Buffer) contentHash() [sha256.Size]byte {
	return sha256.Sum256([]byte(b.Text()))
}

// Clear replaces the content with a single empty line.
func (b *Buffer) Clear() {
	b.ClearSelection()
	b.lines = []*Line{NewLine("")}
	b.current = 0
	b.top = 0
}

func (b *Buffer) shiftHeld() bool {
	return b.modifiers != nil && b.modifiers.ShiftHeld()
}

func (b *Buffer) rows() int {
	if b.viewport == nil {
		return 0
	}
	return b.viewport.Rows()
}

// cursorRow is the caret's row inside the viewport.
func (b *Buffer) cursorRow() int {
	return b.current - b.top
}

func (b *Buffer) clampTop() {
	if b.top > b.current {
		b.top = b.current
	}
	if b.top > len(b.lines)-1 {
		b.top = len(b.lines) - 1
	}
	if b.top < 0 {
		b.top = 0
	}
}
