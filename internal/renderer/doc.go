// Package renderer paints an editor session onto a cell grid.
//
// Each frame draws the current buffer's visible lines starting at its top
// line, shades the current line and the selection, optionally colours
// tokens with a chroma style, and puts the status line on the last row.
// Cell widths follow East Asian width rules, so wide runes take two cells.
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	r := renderer.New(renderer.OptionsFromConfig(cfg.Editor))
//	cur := r.Render(term, editor)
package renderer
