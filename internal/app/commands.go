package app

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/sirupsen/logrus"

	"github.com/dshills/sabre/internal/engine/buffer"
	"github.com/dshills/sabre/internal/input/keymap"
)

// Editor command names.
const (
	CommandSave = "save"
	CommandQuit = "quit"
)

// PathPrompt is shown when saving a buffer that has no path.
const PathPrompt = "Path: "

func (e *Editor) registerCommands() {
	e.commands.Register(keymap.Command{
		Name:           CommandSave,
		Action:         e.saveCommand,
		RequiresBuffer: true,
		Description:    "Save the buffer",
	})
	e.commands.Register(keymap.Command{
		Name:            CommandQuit,
		Action:          func(*buffer.Buffer) { e.Close() },
		ClearsSelection: true,
		RequiresBuffer:  true,
		Description:     "Close the session",
	})
}

func (e *Editor) bindEditorCommands() error {
	for _, b := range []keymap.Binding{
		{Keys: "Ctrl+O", Command: CommandSave},
		{Keys: "Ctrl+Q", Command: CommandQuit},
	} {
		if err := e.commands.Bind(e.hotkeys, b.Keys, b.Command); err != nil {
			return err
		}
	}
	return nil
}

func (e *Editor) saveCommand(b *buffer.Buffer) {
	if b.FilePath() != "" {
		e.Save(b)
		return
	}

	err := e.status.ReadLine(PathPrompt, func(path string) {
		if !ValidPath(path) {
			e.status.SetMessage(InvalidPathMsg)
			return
		}
		b.SetFilePath(path)
		e.Save(b)
	})
	if err != nil {
		e.log.WithError(err).Error("save prompt")
	}
}

// Save writes b through the host save function. Returns an error wrapping
// ErrSaveFailed when the host reports a non-zero status.
func (e *Editor) Save(b *buffer.Buffer) error {
	if b == nil {
		return ErrNoBuffer
	}
	path := b.FilePath()
	log := e.log.WithField("path", path)

	if e.save == nil {
		log.Warn("no save handler")
		return NewOperationError("save", path, ErrSaveFailed)
	}

	if status := e.save(path, b.Text()); status != 0 {
		err := NewOperationError("save", path, fmt.Errorf("%w (status %d)", ErrSaveFailed, status))
		log.WithError(err).Error("save failed")
		e.status.SetMessage(fmt.Sprintf("Save failed (status %d)", status))
		return err
	}

	b.MarkSaved()
	e.watch(path)
	log.WithFields(logrus.Fields{"lines": b.LineCount()}).Info("buffer saved")
	e.status.SetMessage("Saved " + path)
	return nil
}

// ValidPath reports whether path can name a file: it must not be blank
// and must not contain NUL or other control characters.
func ValidPath(path string) bool {
	if strings.TrimSpace(path) == "" {
		return false
	}
	return strings.IndexFunc(path, unicode.IsControl) < 0
}
