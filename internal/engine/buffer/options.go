package buffer

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithViewport sets the window geometry used for scrolling and the line
// width guard. Without a viewport the buffer never scrolls and accepts
// lines of any length.
func WithViewport(v Viewport) Option {
	return func(b *Buffer) {
		b.viewport = v
	}
}

// WithModifierState sets the source consulted by motion operations to
// decide whether Shift extends the selection.
func WithModifierState(m ModifierState) Option {
	return func(b *Buffer) {
		b.modifiers = m
	}
}

// WithFilePath associates the buffer with a file path.
func WithFilePath(path string) Option {
	return func(b *Buffer) {
		b.filePath = path
	}
}

// WithID overrides the generated buffer identifier.
func WithID(id string) Option {
	return func(b *Buffer) {
		if id != "" {
			b.id = id
		}
	}
}

// FixedViewport is a Viewport with constant geometry.
type FixedViewport struct {
	RowCount    int
	ColumnCount int
}

// Rows implements Viewport.
func (v FixedViewport) Rows() int { return v.RowCount }

// Columns implements Viewport.
func (v FixedViewport) Columns() int { return v.ColumnCount }

// ShiftState is a ModifierState backed by a bool.
type ShiftState bool

// ShiftHeld implements ModifierState.
func (s *ShiftState) ShiftHeld() bool {
	return s != nil && bool(*s)
}
