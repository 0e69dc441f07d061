// Package config provides the editor settings.
//
// Settings are resolved in layers, later layers overriding earlier ones:
//
//  1. Built-in defaults (Default)
//  2. A TOML file (Load)
//  3. Environment variables (ApplyEnv)
//
// # File Format
//
//	[editor]
//	indentation_size = 4
//	highlight_syntax = true
//	highlight_current_line = true
//	cursor_shape = "block"
//	theme = "monokai"
//	clipboard = "system"
//
//	[logging]
//	level = "debug"
//	file = "/tmp/sabre.log"
//
//	[keys]
//	keymap_file = "~/.config/sabre/keys.json"
//	script_file = "~/.config/sabre/keys.lua"
//
// A missing file is not an error; the defaults are used.
package config
