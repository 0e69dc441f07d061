// Package buffer provides the line-oriented text buffer at the core of the
// editor. It decides what the text becomes in response to editing commands;
// painting, clipboards and files belong to the host.
//
// The buffer package provides:
//
//   - Line: a mutable text row with its own caret
//   - Buffer: a never-empty list of lines with a current line, a viewport
//     scroll offset and a selection
//   - Caret motion with Shift-extended selection and scroll hints
//   - Selection-aware editing: input, backspace/delete with line joins,
//     line splitting, line reordering, cut/copy/paste
//   - A content-hash dirty flag
//
// Basic usage:
//
//	buf := buffer.NewFromString("hello\nworld")
//	buf.End()           // caret to end of "hello"
//	buf.TextInput('!')  // "hello!"
//	buf.Delete()        // joins: "hello!world"
//	buf.Dirty()         // true
//
// Clamping:
//
// Operations never fail. Caret and line indices are clamped and operations
// at structural boundaries (first or last line, no selection) are no-ops.
// A buffer always holds at least one line.
//
// Host capabilities:
//
// The host injects its window geometry (Viewport) and modifier-key state
// (ModifierState) through options. Motion operations return a Motion that
// reports the caret position and the scroll they applied so the host can
// mirror it.
//
// Thread Safety:
//
// A Buffer is not safe for concurrent use. Editing is driven by one event
// at a time from the owning session.
package buffer
