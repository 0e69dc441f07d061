package keymap

import (
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/sabre/internal/input/key"
)

// ErrInvalidKeymap is returned for malformed keymap documents.
var ErrInvalidKeymap = errors.New("invalid keymap")

// LoadJSON binds the keymap document data through cmds. The document has
// the form:
//
//	{
//	  "clear": false,
//	  "bindings": [
//	    {"keys": "Ctrl+D", "command": "cutLine"}
//	  ]
//	}
//
// Every entry is validated before anything is bound, so a bad document
// leaves m unchanged. When "clear" is true existing hotkeys are removed
// first. Returns the number of bindings added.
func LoadJSON(m *Manager, cmds *Commands, data []byte) (int, error) {
	if !gjson.ValidBytes(data) {
		return 0, fmt.Errorf("%w: malformed JSON", ErrInvalidKeymap)
	}

	doc := gjson.ParseBytes(data)
	list := doc.Get("bindings")
	if list.Exists() && !list.IsArray() {
		return 0, fmt.Errorf("%w: bindings must be an array", ErrInvalidKeymap)
	}

	var pending []Binding
	var err error
	list.ForEach(func(idx, entry gjson.Result) bool {
		keys := entry.Get("keys").String()
		name := entry.Get("command").String()
		if keys == "" || name == "" {
			err = fmt.Errorf("%w: binding %d needs keys and command", ErrInvalidKeymap, idx.Int())
			return false
		}
		if _, ok := cmds.Lookup(name); !ok {
			err = fmt.Errorf("binding %d: %w: %q", idx.Int(), ErrUnknownCommand, name)
			return false
		}
		pending = append(pending, Binding{Keys: keys, Command: name})
		return true
	})
	if err != nil {
		return 0, err
	}

	// Parse all specs up front so a bad one binds nothing.
	for i, b := range pending {
		if _, _, err := key.ParseBinding(b.Keys); err != nil {
			return 0, fmt.Errorf("binding %d: %w", i, err)
		}
	}

	if doc.Get("clear").Bool() {
		m.UnbindAll()
	}
	for _, b := range pending {
		if err := cmds.Bind(m, b.Keys, b.Command); err != nil {
			return 0, err
		}
	}
	return len(pending), nil
}

// LoadFile reads a keymap document from path and binds it.
func LoadFile(m *Manager, cmds *Commands, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading keymap file: %w", err)
	}
	n, err := LoadJSON(m, cmds, data)
	if err != nil {
		return 0, fmt.Errorf("loading keymap %s: %w", path, err)
	}
	m.log.WithField("path", path).WithField("bindings", n).Info("keymap loaded")
	return n, nil
}

// ExportJSON renders the named hotkeys of m as a keymap document that
// LoadJSON accepts. Hotkeys bound without a command name are skipped.
func ExportJSON(m *Manager) ([]byte, error) {
	out := []byte(`{"bindings":[]}`)

	for _, h := range m.Hotkeys() {
		if h.Name == "" {
			continue
		}
		entry, err := sjson.SetBytes([]byte(`{}`), "keys", h.Keys())
		if err != nil {
			return nil, err
		}
		if entry, err = sjson.SetBytes(entry, "command", h.Name); err != nil {
			return nil, err
		}
		if out, err = sjson.SetRawBytes(out, "bindings.-1", entry); err != nil {
			return nil, err
		}
	}
	return out, nil
}
