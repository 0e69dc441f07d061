// Package cursor provides the selection model used by the editing engine.
//
// A Selection is an anchor (Start) and a live endpoint (End) expressed as
// line/column pairs. The live endpoint follows the caret while a selection
// is being extended, so Start may come after End in the document:
//
//	sel := cursor.NewSelection(3, 4, 1, 0) // selected "upwards"
//	abs := sel.ToAbsolute()                // (1,0) -> (3,4)
//
// The all -1 value None means no selection is active. It is compared by
// exact equality; a Selection with some negative fields is not None.
//
// Columns are rune offsets into a line.
package cursor
