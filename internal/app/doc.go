// Package app ties buffers, hotkeys and the status line into an editor
// session.
//
// The Editor owns the open buffers and routes host input: key presses go
// to the status line while it is reading a prompt and to the hotkey
// manager otherwise; typed text goes to the prompt or the current buffer.
// The host supplies the capabilities the engine cannot provide itself:
// the viewport size, a clipboard, a save function and a file-exists
// predicate.
package app
