// Package backend provides terminal backend abstraction for the renderer.
package backend

import (
	"sync"

	"github.com/dshills/sabre/internal/config"
	"github.com/dshills/sabre/internal/input/key"
	"github.com/dshills/sabre/internal/renderer"
)

// CursorStyle defines how the cursor appears.
type CursorStyle int

const (
	CursorBlock CursorStyle = iota
	CursorUnderline
	CursorBar
	CursorHidden
)

// CursorStyleFromShape maps a configured cursor shape to a CursorStyle.
// Unknown shapes give CursorUnderline.
func CursorStyleFromShape(shape string) CursorStyle {
	switch shape {
	case config.CursorBlock:
		return CursorBlock
	case config.CursorBar:
		return CursorBar
	default:
		return CursorUnderline
	}
}

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
	// EventInterrupt wakes a blocked PollEvent without input.
	EventInterrupt
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	Key key.Event

	// Resize event fields
	Width, Height int
}

// Backend is a display surface that also produces input events.
type Backend interface {
	renderer.Grid

	Init() error
	Shutdown()

	// Show flushes pending cell changes to the display.
	Show()
	ShowCursor(x, y int)
	HideCursor()
	SetCursorStyle(style CursorStyle)

	// PollEvent blocks until an event is available.
	PollEvent() Event
	PostEvent(ev Event)
}

// NullBackend is an in-memory backend for testing.
type NullBackend struct {
	mu            sync.Mutex
	grid          *renderer.MemoryGrid
	cursorX       int
	cursorY       int
	cursorVisible bool
	cursorStyle   CursorStyle
	shows         int
	events        chan Event
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	return &NullBackend{
		grid:   renderer.NewMemoryGrid(width, height),
		events: make(chan Event, 100),
	}
}

func (b *NullBackend) Init() error { return nil }
func (b *NullBackend) Shutdown()   {}

func (b *NullBackend) Size() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.grid.Size()
}

func (b *NullBackend) SetContent(x, y int, r rune, style renderer.Style) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.grid.SetContent(x, y, r, style)
}

func (b *NullBackend) Show() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.shows++
}

func (b *NullBackend) ShowCursor(x, y int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursorX = x
	b.cursorY = y
	b.cursorVisible = true
}

func (b *NullBackend) HideCursor() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursorVisible = false
}

func (b *NullBackend) SetCursorStyle(style CursorStyle) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursorStyle = style
}

func (b *NullBackend) PollEvent() Event {
	return <-b.events
}

func (b *NullBackend) PostEvent(event Event) {
	select {
	case b.events <- event:
	default:
		// Event dropped if queue is full (non-blocking for testing)
	}
}

// Row returns the text of screen row y.
func (b *NullBackend) Row(y int) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.grid.Row(y)
}

// Cell returns the cell at (x, y).
func (b *NullBackend) Cell(x, y int) renderer.Cell {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.grid.Cell(x, y)
}

// Shows returns how many frames were flushed.
func (b *NullBackend) Shows() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.shows
}

// CursorPosition returns the current cursor position for testing.
func (b *NullBackend) CursorPosition() (x, y int, visible bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cursorX, b.cursorY, b.cursorVisible
}

// CursorStyleValue returns the current cursor style for testing.
func (b *NullBackend) CursorStyleValue() CursorStyle {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cursorStyle
}

// Resize simulates a terminal resize: the grid is cleared and a resize
// event is queued.
func (b *NullBackend) Resize(width, height int) {
	b.mu.Lock()
	b.grid = renderer.NewMemoryGrid(width, height)
	b.mu.Unlock()
	b.PostEvent(Event{Type: EventResize, Width: width, Height: height})
}
