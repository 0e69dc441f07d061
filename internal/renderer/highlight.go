package renderer

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Highlighter assigns chroma token styles to buffer text.
type Highlighter struct {
	style  *chroma.Style
	lexers map[string]chroma.Lexer
}

// NewHighlighter creates a highlighter for the named chroma style.
// Unknown names fall back to chroma's default style.
func NewHighlighter(theme string) *Highlighter {
	return &Highlighter{
		style:  styles.Get(theme),
		lexers: make(map[string]chroma.Lexer),
	}
}

// Background returns the theme background color.
func (h *Highlighter) Background() Color {
	return colorFromChroma(h.style.Get(chroma.Background).Background)
}

// Foreground returns the theme text color.
func (h *Highlighter) Foreground() Color {
	return colorFromChroma(h.style.Get(chroma.Text).Colour)
}

func (h *Highlighter) lexer(path string) chroma.Lexer {
	if l, ok := h.lexers[path]; ok {
		return l
	}
	l := lexers.Match(path)
	if l == nil {
		l = lexers.Fallback
	}
	l = chroma.Coalesce(l)
	h.lexers[path] = l
	return l
}

// Lines tokenises text as a whole and returns one style per rune for each
// line. The lexer is chosen from the file name in path.
func (h *Highlighter) Lines(path, text string) ([][]Style, error) {
	it, err := h.lexer(path).Tokenise(nil, text)
	if err != nil {
		return nil, err
	}

	lineCount := strings.Count(text, "\n") + 1
	out := make([][]Style, 0, lineCount)
	var cur []Style
	for _, tok := range it.Tokens() {
		st := styleFromChroma(h.style.Get(tok.Type))
		for _, r := range tok.Value {
			if r == '\n' {
				out = append(out, cur)
				cur = nil
				continue
			}
			cur = append(cur, st)
		}
	}
	out = append(out, cur)

	// Lexers may append a trailing newline of their own.
	if len(out) > lineCount {
		out = out[:lineCount]
	}
	return out, nil
}
