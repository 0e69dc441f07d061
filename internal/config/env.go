package config

import (
	"os"
	"strconv"
)

// DefaultEnvPrefix is the prefix of environment overrides.
const DefaultEnvPrefix = "SABRE_"

// ApplyEnv overrides settings from environment variables named prefix
// followed by the setting name, e.g. SABRE_INDENTATION_SIZE or
// SABRE_LOG_LEVEL. Returns ErrInvalidOption for values that do not parse.
func (o *Options) ApplyEnv(prefix string) error {
	return o.applyEnv(prefix, os.LookupEnv)
}

func (o *Options) applyEnv(prefix string, lookup func(string) (string, bool)) error {
	str := map[string]*string{
		"CURSOR_SHAPE": &o.Editor.CursorShape,
		"THEME":        &o.Editor.Theme,
		"CLIPBOARD":    &o.Editor.Clipboard,
		"LOG_LEVEL":    &o.Logging.Level,
		"LOG_FILE":     &o.Logging.File,
		"KEYMAP_FILE":  &o.Keys.KeymapFile,
		"SCRIPT_FILE":  &o.Keys.ScriptFile,
	}
	for name, dst := range str {
		if v, ok := lookup(prefix + name); ok {
			*dst = v
		}
	}

	flags := map[string]*bool{
		"HIGHLIGHT_SYNTAX":       &o.Editor.HighlightSyntax,
		"HIGHLIGHT_CURRENT_LINE": &o.Editor.HighlightCurrentLine,
	}
	for name, dst := range flags {
		v, ok := lookup(prefix + name)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return invalid(prefix+name, v, "expected a boolean")
		}
		*dst = b
	}

	if v, ok := lookup(prefix + "INDENTATION_SIZE"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return invalid(prefix+"INDENTATION_SIZE", v, "expected an integer")
		}
		o.Editor.IndentationSize = n
	}
	return nil
}
