// Package keymap maps modifier+key chords to buffer actions.
//
// A Manager holds Hotkeys ordered by priority: the number of Ctrl, Shift
// and Alt modifiers the hotkey requires. When a key is pressed the first
// hotkey whose key code matches and whose required modifiers are all held
// runs, so "Ctrl+Home" wins over "Home" when Ctrl is down.
//
// # Commands
//
// Actions are registered by name in a Commands table. Bindings refer to
// commands by name, which lets keymaps come from JSON files or Lua scripts:
//
//	cmds := keymap.NewCommands(keymap.Services{Clipboard: cb})
//	m := keymap.NewManager()
//	keymap.BindDefaults(m, cmds)
//
//	// {"bindings":[{"keys":"Ctrl+D","command":"cutLine"}]}
//	keymap.LoadJSON(m, cmds, data)
//
//	// bind("Ctrl+D", "cutLine")
//	keymap.RunScript(m, cmds, src)
//
// # Dispatch
//
// KeyPressed extends the selection before the action runs when Shift is
// held, and clears it afterwards when the hotkey clears selection and Shift
// is not held. Hotkeys that require a buffer are skipped when none is open.
package keymap
