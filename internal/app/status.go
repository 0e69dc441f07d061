package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/sabre/internal/engine/buffer"
	"github.com/dshills/sabre/internal/input/key"
)

// MessageDuration is how long a status message stays visible.
const MessageDuration = 3 * time.Second

// Status line texts.
const (
	NoBuffersText  = "no buffers opened"
	UntitledText   = "<untitled>"
	InvalidPathMsg = "The path provided was invalid."
)

// StatusLine shows buffer state, transient messages and a one-line prompt.
type StatusLine struct {
	editor *Editor
	now    func() time.Time

	message string
	shownAt time.Time

	taking   bool
	prompt   string
	input    *buffer.Line
	callback func(string)
}

func newStatusLine(e *Editor, now func() time.Time) *StatusLine {
	if now == nil {
		now = time.Now
	}
	return &StatusLine{editor: e, now: now}
}

// TakingInput reports whether a prompt is reading input.
func (s *StatusLine) TakingInput() bool {
	return s.taking
}

// Prompt returns the active prompt text.
func (s *StatusLine) Prompt() string {
	return s.prompt
}

// Input returns the text typed into the active prompt.
func (s *StatusLine) Input() string {
	if s.input == nil {
		return ""
	}
	return s.input.Text()
}

// Caret returns the caret column within the prompt input.
func (s *StatusLine) Caret() int {
	if s.input == nil {
		return 0
	}
	return s.input.Caret()
}

// ReadLine starts a prompt. cb receives the input when the prompt is
// accepted. It is ignored while another prompt is active.
func (s *StatusLine) ReadLine(prompt string, cb func(string)) error {
	if cb == nil {
		return ErrNilCallback
	}
	if s.taking {
		return nil
	}

	s.prompt = prompt
	s.input = buffer.NewLine("")
	s.callback = cb
	s.taking = true
	return nil
}

// EndInput closes the prompt, passing the input to the callback if accept.
func (s *StatusLine) EndInput(accept bool) {
	if !s.taking {
		return
	}

	cb, text := s.callback, s.input.Text()
	s.taking = false
	s.input = nil
	s.callback = nil

	if accept {
		cb(text)
	}
}

// KeyPressed edits the prompt input. Any key clears the current message
// before it is handled, so a message set by the prompt callback stays.
func (s *StatusLine) KeyPressed(ev key.Event) {
	if !s.taking {
		return
	}
	s.ClearMessage()

	switch ev.Key {
	case key.KeyEscape:
		s.EndInput(false)
	case key.KeyEnter, key.KeyKPEnter:
		s.EndInput(true)
	case key.KeyLeft:
		s.input.Left()
	case key.KeyRight:
		s.input.Right()
	case key.KeyUp, key.KeyHome:
		s.input.Home()
	case key.KeyDown, key.KeyEnd:
		s.input.End()
	case key.KeyBackspace:
		s.input.Backspace()
	case key.KeyDelete:
		s.input.Delete()
	}
}

// TextInput inserts r into the prompt input.
func (s *StatusLine) TextInput(r rune) {
	if !s.taking {
		return
	}
	s.input.InsertRuneAtCaret(r, true)
}

// SetMessage shows msg for MessageDuration.
func (s *StatusLine) SetMessage(msg string) {
	s.message = msg
	s.shownAt = s.now()
}

// ClearMessage removes the current message.
func (s *StatusLine) ClearMessage() {
	s.message = ""
	s.shownAt = time.Time{}
}

// Message returns the current message, clearing it first if it expired.
func (s *StatusLine) Message() string {
	if s.message != "" && s.now().Sub(s.shownAt) > MessageDuration {
		s.ClearMessage()
	}
	return s.message
}

// Text returns the unpadded status text.
func (s *StatusLine) Text() string {
	if s.taking {
		return s.prompt + s.input.Text()
	}
	if msg := s.Message(); msg != "" {
		return msg
	}

	b := s.editor.CurrentBuffer()
	if b == nil {
		return NoBuffersText
	}

	var sb strings.Builder
	if b.Dirty() || s.editor.FileMissing(b) {
		sb.WriteString(" * | ")
	} else {
		sb.WriteString(" - | ")
	}

	if b.FilePath() == "" {
		sb.WriteString(UntitledText)
	} else {
		sb.WriteString(b.FilePath())
	}

	line, col := b.Caret()
	fmt.Fprintf(&sb, " | Ln %d : Col %d", line+1, col+1)

	if b.HasSelection() {
		fmt.Fprintf(&sb, " | SEL %s", b.Selection().ToAbsolute())
	}
	return sb.String()
}

// Render returns the status text clipped or padded to width cells.
func (s *StatusLine) Render(width int) string {
	if width <= 0 {
		return ""
	}
	text := runewidth.Truncate(s.Text(), width, "")
	return runewidth.FillRight(text, width)
}
