package keymap

import (
	"errors"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/dshills/sabre/internal/clipboard"
	"github.com/dshills/sabre/internal/engine/buffer"
)

// ErrUnknownCommand is returned when a binding names a command that is not
// registered.
var ErrUnknownCommand = errors.New("unknown command")

// DefaultIndentSize is used when Services.IndentSize is not set.
const DefaultIndentSize = 2

// Command is a named action that can be bound to keys.
type Command struct {
	Name            string
	Action          Action
	ClearsSelection bool
	RequiresBuffer  bool
	Description     string
}

// options returns the bind options the command carries.
func (c Command) options() []BindOption {
	opts := []BindOption{Named(c.Name)}
	if c.ClearsSelection {
		opts = append(opts, ClearsSelection())
	}
	if c.RequiresBuffer {
		opts = append(opts, RequiresBuffer())
	}
	return opts
}

// Commands is a table of named commands.
type Commands struct {
	byName map[string]Command
}

// Services are the host capabilities the built-in commands use.
type Services struct {
	// Clipboard receives cut and copied text and feeds paste. Nil disables
	// clipboard commands.
	Clipboard clipboard.Clipboard

	// IndentSize returns the number of spaces Tab inserts.
	IndentSize func() int

	Log logrus.FieldLogger
}

func (s Services) indentSize() int {
	if s.IndentSize == nil {
		return DefaultIndentSize
	}
	if n := s.IndentSize(); n > 0 {
		return n
	}
	return DefaultIndentSize
}

func (s Services) writeClipboard(lines []string) {
	if s.Clipboard == nil || len(lines) == 0 {
		return
	}
	if err := s.Clipboard.SetText(clipboard.Join(lines)); err != nil && s.Log != nil {
		s.Log.WithError(err).Warn("clipboard write failed")
	}
}

// onBuffer adapts a buffer operation into an Action that ignores a nil buffer.
func onBuffer(fn func(b *buffer.Buffer)) Action {
	return func(b *buffer.Buffer) {
		if b != nil {
			fn(b)
		}
	}
}

// NewCommands returns a table holding the built-in editing commands.
func NewCommands(s Services) *Commands {
	c := &Commands{byName: make(map[string]Command)}

	motion := func(name, desc string, fn func(b *buffer.Buffer) buffer.Motion) {
		c.Register(Command{
			Name:            name,
			Action:          onBuffer(func(b *buffer.Buffer) { fn(b) }),
			ClearsSelection: true,
			Description:     desc,
		})
	}
	edit := func(name, desc string, fn func(b *buffer.Buffer)) {
		c.Register(Command{
			Name:            name,
			Action:          onBuffer(fn),
			ClearsSelection: true,
			Description:     desc,
		})
	}

	motion("left", "Move left", (*buffer.Buffer).Left)
	motion("right", "Move right", (*buffer.Buffer).Right)
	motion("up", "Move up", (*buffer.Buffer).Up)
	motion("down", "Move down", (*buffer.Buffer).Down)
	motion("home", "Move to line start", (*buffer.Buffer).Home)
	motion("end", "Move to line end", (*buffer.Buffer).End)
	motion("firstLine", "Go to document start", (*buffer.Buffer).FirstLine)
	motion("lastLine", "Go to document end", (*buffer.Buffer).LastLine)

	edit("backspace", "Delete backward", (*buffer.Buffer).Backspace)
	edit("delete", "Delete forward", (*buffer.Buffer).Delete)
	edit("newLineBefore", "Open a line above", (*buffer.Buffer).NewLineBeforeCurrent)
	edit("newLineAfter", "Split the line", func(b *buffer.Buffer) { b.NewLineAfterCurrent(true) })
	edit("moveLineUp", "Move line up", (*buffer.Buffer).MoveLineUp)
	edit("moveLineDown", "Move line down", (*buffer.Buffer).MoveLineDown)
	edit("indent", "Insert indentation", func(b *buffer.Buffer) { b.Indent(s.indentSize()) })
	edit("cut", "Cut selection or line", func(b *buffer.Buffer) { s.writeClipboard(b.Cut()) })
	edit("cutLine", "Cut current line", func(b *buffer.Buffer) {
		s.writeClipboard([]string{b.CutLine()})
	})
	edit("paste", "Paste clipboard", func(b *buffer.Buffer) {
		if s.Clipboard != nil {
			b.Paste(s.Clipboard)
		}
	})

	c.Register(Command{
		Name:        "copy",
		Action:      onBuffer(func(b *buffer.Buffer) { s.writeClipboard(b.Copy()) }),
		Description: "Copy selection",
	})
	c.Register(Command{
		Name:        "selectAll",
		Action:      onBuffer((*buffer.Buffer).SelectAll),
		Description: "Select the whole buffer",
	})

	return c
}

// Register adds cmd, replacing any command with the same name.
func (c *Commands) Register(cmd Command) {
	c.byName[cmd.Name] = cmd
}

// Lookup returns the command registered under name.
func (c *Commands) Lookup(name string) (Command, bool) {
	cmd, ok := c.byName[name]
	return cmd, ok
}

// Names returns the registered command names in sorted order.
func (c *Commands) Names() []string {
	names := make([]string, 0, len(c.byName))
	for name := range c.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Bind binds the key specification keys to the command called name.
func (c *Commands) Bind(m *Manager, keys, name string) error {
	cmd, ok := c.Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	if err := m.BindSpec(keys, cmd.Action, cmd.options()...); err != nil {
		return fmt.Errorf("binding %q: %w", keys, err)
	}
	return nil
}

// Binding pairs a key specification with a command name.
type Binding struct {
	Keys    string
	Command string
}

// DefaultBindings are the stock key bindings.
var DefaultBindings = []Binding{
	{"Left", "left"},
	{"Right", "right"},
	{"Up", "up"},
	{"Down", "down"},
	{"Home", "home"},
	{"End", "end"},
	{"Ctrl+Home", "firstLine"},
	{"Ctrl+End", "lastLine"},
	{"Backspace", "backspace"},
	{"Delete", "delete"},
	{"Ctrl+Enter", "newLineBefore"},
	{"Enter", "newLineAfter"},
	{"KPEnter", "newLineAfter"},
	{"Alt+Up", "moveLineUp"},
	{"Alt+Down", "moveLineDown"},
	{"Tab", "indent"},
	{"Ctrl+X", "cut"},
	{"Ctrl+C", "copy"},
	{"Ctrl+V", "paste"},
	{"Ctrl+A", "selectAll"},
	{"Ctrl+K", "cutLine"},
}

// BindDefaults binds DefaultBindings through cmds.
func BindDefaults(m *Manager, cmds *Commands) error {
	for _, b := range DefaultBindings {
		if err := cmds.Bind(m, b.Keys, b.Command); err != nil {
			return err
		}
	}
	return nil
}
