package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
)

// Cursor shapes.
const (
	CursorUnderline = "underline"
	CursorBlock     = "block"
	CursorBar       = "bar"
)

// Clipboard backends.
const (
	ClipboardSystem = "system"
	ClipboardMemory = "memory"
)

// Options holds every editor setting.
type Options struct {
	Editor  EditorOptions  `toml:"editor"`
	Logging LoggingOptions `toml:"logging"`
	Keys    KeyOptions     `toml:"keys"`
}

// EditorOptions configure editing and display.
type EditorOptions struct {
	// IndentationSize is the number of spaces Tab inserts.
	IndentationSize      int    `toml:"indentation_size"`
	HighlightSyntax      bool   `toml:"highlight_syntax"`
	HighlightCurrentLine bool   `toml:"highlight_current_line"`
	CursorShape          string `toml:"cursor_shape"`
	// Theme is a chroma style name.
	Theme string `toml:"theme"`
	// Clipboard selects "system" or "memory".
	Clipboard string `toml:"clipboard"`
}

// LoggingOptions configure the logger.
type LoggingOptions struct {
	Level string `toml:"level"`
	// File is the log destination; empty discards log output.
	File string `toml:"file"`
}

// KeyOptions name user keymap sources.
type KeyOptions struct {
	// KeymapFile is a JSON keymap loaded after the default bindings.
	KeymapFile string `toml:"keymap_file"`
	// ScriptFile is a Lua binding script run after KeymapFile.
	ScriptFile string `toml:"script_file"`
}

// Default returns the built-in settings.
func Default() Options {
	return Options{
		Editor: EditorOptions{
			IndentationSize:      2,
			HighlightSyntax:      false,
			HighlightCurrentLine: true,
			CursorShape:          CursorUnderline,
			Theme:                "monokai",
			Clipboard:            ClipboardSystem,
		},
		Logging: LoggingOptions{
			Level: "info",
		},
	}
}

// Load reads the TOML file at path over the defaults. An empty path or a
// missing file yields the defaults.
func Load(path string) (Options, error) {
	opts := Default()
	if path == "" {
		return opts, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return opts, nil
		}
		return opts, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := opts.decode(path, data); err != nil {
		return Default(), err
	}
	return opts, nil
}

// Parse decodes TOML data over the defaults.
func Parse(data []byte) (Options, error) {
	opts := Default()
	if err := opts.decode("<input>", data); err != nil {
		return Default(), err
	}
	return opts, nil
}

func (o *Options) decode(source string, data []byte) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	if err := dec.Decode(o); err != nil {
		perr := &ParseError{Path: source, Message: err.Error(), Err: err}

		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			perr.Line, perr.Column = derr.Position()
		}
		var serr *toml.StrictMissingError
		if errors.As(err, &serr) && len(serr.Errors) > 0 {
			perr.Line, perr.Column = serr.Errors[0].Position()
			perr.Message = "unknown setting " + strings.Join(serr.Errors[0].Key(), ".")
		}
		return perr
	}
	return nil
}

// Validate checks the settings for values the editor cannot use.
func (o Options) Validate() error {
	if o.Editor.IndentationSize < 1 {
		return invalid("editor.indentation_size", o.Editor.IndentationSize, "must be at least 1")
	}
	switch o.Editor.CursorShape {
	case CursorUnderline, CursorBlock, CursorBar:
	default:
		return invalid("editor.cursor_shape", o.Editor.CursorShape, "must be underline, block or bar")
	}
	switch o.Editor.Clipboard {
	case ClipboardSystem, ClipboardMemory:
	default:
		return invalid("editor.clipboard", o.Editor.Clipboard, "must be system or memory")
	}
	if _, err := logrus.ParseLevel(o.Logging.Level); err != nil {
		return invalid("logging.level", o.Logging.Level, err.Error())
	}
	return nil
}

// Marshal renders the settings as TOML.
func (o Options) Marshal() ([]byte, error) {
	return toml.Marshal(o)
}
