package app

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dshills/sabre/internal/clipboard"
	"github.com/dshills/sabre/internal/config"
	"github.com/dshills/sabre/internal/engine/buffer"
	"github.com/dshills/sabre/internal/input/key"
	"github.com/dshills/sabre/internal/input/keymap"
)

// SaveFunc writes text to path and returns a status; zero means success.
type SaveFunc func(path, text string) int

// ExistsFunc reports whether a file exists at path.
type ExistsFunc func(path string) bool

// Options configure an Editor.
type Options struct {
	Config config.Options

	// Logger defaults to a logger that discards output.
	Logger logrus.FieldLogger

	// Clipboard defaults to an in-process clipboard.
	Clipboard clipboard.Clipboard

	Viewport buffer.Viewport

	Save SaveFunc

	// FileExists defaults to the watcher when one is set, else os.Stat.
	FileExists ExistsFunc

	// Watcher, when set, is told about every opened or saved path.
	Watcher *FileWatcher

	// Quit is called when the session closes.
	Quit func()

	// Now is the clock used for status message expiry.
	Now func() time.Time
}

// Editor is an editing session over one or more buffers.
type Editor struct {
	config config.Options

	buffers []*buffer.Buffer
	current int

	hotkeys  *keymap.Manager
	commands *keymap.Commands
	status   *StatusLine

	clipboard clipboard.Clipboard
	viewport  buffer.Viewport
	shift     buffer.ShiftState

	save    SaveFunc
	exists  ExistsFunc
	watcher *FileWatcher
	quit    func()

	log logrus.FieldLogger
}

// New creates an editor with one empty buffer, the default bindings and
// any user keymap or binding script named in the configuration.
func New(opts Options) (*Editor, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}

	log := opts.Logger
	if log == nil {
		l, _ := NewLogger("info", nil)
		log = l
	}

	e := &Editor{
		config:    opts.Config,
		clipboard: opts.Clipboard,
		viewport:  opts.Viewport,
		save:      opts.Save,
		exists:    opts.FileExists,
		watcher:   opts.Watcher,
		quit:      opts.Quit,
		log:       log.WithField("component", "editor"),
	}
	if e.clipboard == nil {
		e.clipboard = clipboard.NewMemory()
	}
	if e.exists == nil {
		if e.watcher != nil {
			e.exists = e.watcher.Exists
		} else {
			e.exists = statExists
		}
	}
	e.status = newStatusLine(e, opts.Now)

	e.commands = keymap.NewCommands(keymap.Services{
		Clipboard:  e.clipboard,
		IndentSize: func() int { return e.config.Editor.IndentationSize },
		Log:        e.log,
	})
	e.registerCommands()

	e.hotkeys = keymap.NewManager(keymap.WithLogger(log))
	if err := keymap.BindDefaults(e.hotkeys, e.commands); err != nil {
		return nil, err
	}
	if err := e.bindEditorCommands(); err != nil {
		return nil, err
	}
	e.loadUserKeys()

	e.buffers = []*buffer.Buffer{e.newBuffer("", "")}
	return e, nil
}

// loadUserKeys applies the configured keymap file and binding script.
// Failures are logged and leave the bindings loaded so far in place.
func (e *Editor) loadUserKeys() {
	if path := e.config.Keys.KeymapFile; path != "" {
		if _, err := keymap.LoadFile(e.hotkeys, e.commands, path); err != nil {
			e.log.WithError(err).Warn("keymap file not loaded")
		}
	}
	if path := e.config.Keys.ScriptFile; path != "" {
		src, err := os.ReadFile(path)
		if err == nil {
			err = keymap.RunScript(e.hotkeys, e.commands, string(src))
		}
		if err != nil {
			e.log.WithError(err).WithField("path", path).Warn("binding script not run")
		}
	}
}

func (e *Editor) newBuffer(path, content string) *buffer.Buffer {
	opts := []buffer.Option{
		buffer.WithModifierState(&e.shift),
		buffer.WithFilePath(path),
	}
	if e.viewport != nil {
		opts = append(opts, buffer.WithViewport(e.viewport))
	}
	if content == "" {
		return buffer.New(opts...)
	}
	return buffer.NewFromString(content, opts...)
}

// Open replaces the open buffers with a single buffer holding content.
func (e *Editor) Open(path, content string) *buffer.Buffer {
	b := e.newBuffer(path, content)
	e.buffers = []*buffer.Buffer{b}
	e.current = 0
	e.watch(path)

	e.log.WithFields(logrus.Fields{
		"path":  path,
		"lines": b.LineCount(),
	}).Info("buffer opened")
	return b
}

// Close drops every buffer and asks the host to quit.
func (e *Editor) Close() {
	e.buffers = nil
	e.current = 0
	if e.status.TakingInput() {
		e.status.EndInput(false)
	}
	if e.quit != nil {
		e.quit()
	}
}

// CurrentBuffer returns the active buffer, or nil when none is open.
func (e *Editor) CurrentBuffer() *buffer.Buffer {
	if e.current < len(e.buffers) {
		return e.buffers[e.current]
	}
	return nil
}

// Buffers returns the open buffers.
func (e *Editor) Buffers() []*buffer.Buffer {
	return e.buffers
}

// Hotkeys returns the hotkey manager.
func (e *Editor) Hotkeys() *keymap.Manager {
	return e.hotkeys
}

// Commands returns the command table.
func (e *Editor) Commands() *keymap.Commands {
	return e.commands
}

// StatusLine returns the status line.
func (e *Editor) StatusLine() *StatusLine {
	return e.status
}

// Config returns the editor settings.
func (e *Editor) Config() config.Options {
	return e.config
}

// Clipboard returns the clipboard the editing commands use.
func (e *Editor) Clipboard() clipboard.Clipboard {
	return e.clipboard
}

// SetViewport changes the viewport of every open buffer, e.g. after a
// terminal resize.
func (e *Editor) SetViewport(v buffer.Viewport) {
	e.viewport = v
	for _, b := range e.buffers {
		b.SetViewport(v)
	}
}

// ShiftHeld reports whether Shift was held on the last key press.
func (e *Editor) ShiftHeld() bool {
	return e.shift.ShiftHeld()
}

// FileMissing reports whether b's file is absent from disk.
func (e *Editor) FileMissing(b *buffer.Buffer) bool {
	if b == nil || e.exists == nil {
		return false
	}
	return !e.exists(b.FilePath())
}

// KeyPressed routes a key press to the prompt when it is reading input
// and to the hotkeys otherwise. Reports whether the key was consumed.
func (e *Editor) KeyPressed(ev key.Event) bool {
	e.shift = buffer.ShiftState(ev.ShiftHeld())

	if e.status.TakingInput() {
		e.status.KeyPressed(ev)
		return true
	}
	return e.hotkeys.KeyPressed(ev, e.CurrentBuffer())
}

// TextInput types the first rune of text into the prompt or the current
// buffer. Empty text is ignored.
func (e *Editor) TextInput(text string) {
	if text == "" {
		return
	}
	r := []rune(text)[0]

	if e.status.TakingInput() {
		e.status.TextInput(r)
		return
	}
	if b := e.CurrentBuffer(); b != nil {
		b.TextInput(r)
	}
}

func (e *Editor) watch(path string) {
	if e.watcher == nil || path == "" {
		return
	}
	if err := e.watcher.Watch(path); err != nil {
		e.log.WithError(err).WithField("path", path).Debug("not watching file")
	}
}

func statExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
