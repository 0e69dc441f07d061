package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/dshills/sabre/internal/app"
	"github.com/dshills/sabre/internal/engine/buffer"
	"github.com/dshills/sabre/internal/input/key"
	"github.com/dshills/sabre/internal/renderer"
	"github.com/dshills/sabre/internal/renderer/backend"
)

// session drives an editor from backend events until the editor quits or
// the context is cancelled.
type session struct {
	be  backend.Backend
	ed  *app.Editor
	r   *renderer.Renderer
	log logrus.FieldLogger
}

// run paints the first frame and then handles events, repainting after
// each one.
func (s *session) run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		s.be.PostEvent(backend.Event{Type: backend.EventInterrupt})
	})
	defer stop()

	s.be.SetCursorStyle(backend.CursorStyleFromShape(s.ed.Config().Editor.CursorShape))
	s.resize()
	s.draw()

	for ctx.Err() == nil {
		ev := s.be.PollEvent()
		switch ev.Type {
		case backend.EventResize:
			s.resize()
		case backend.EventKey:
			s.handleKey(ev.Key)
		}
		if ctx.Err() != nil {
			break
		}
		s.draw()
	}
	return nil
}

// handleKey offers the key to the hotkeys and types unbound printable
// characters.
func (s *session) handleKey(ev key.Event) {
	if s.ed.KeyPressed(ev) {
		return
	}
	if ev.IsChar() && !ev.IsModified() {
		s.ed.TextInput(string(ev.Rune))
		return
	}
	s.log.WithField("key", ev.String()).Debug("unbound key")
}

func (s *session) resize() {
	w, h := s.be.Size()
	s.ed.SetViewport(buffer.FixedViewport{RowCount: h, ColumnCount: w})
}

func (s *session) draw() {
	cur := s.r.Render(s.be, s.ed)
	if cur.Visible {
		s.be.ShowCursor(cur.X, cur.Y)
	} else {
		s.be.HideCursor()
	}
	s.be.Show()
}

// writeFile is the editor's save function. It returns 0 on success and 1
// when the file could not be written.
func writeFile(log logrus.FieldLogger) app.SaveFunc {
	return func(path, text string) int {
		if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
			log.WithError(err).WithField("path", path).Error("save failed")
			return 1
		}
		return 0
	}
}
