package renderer

import (
	"github.com/sirupsen/logrus"

	"github.com/dshills/sabre/internal/app"
	"github.com/dshills/sabre/internal/config"
	"github.com/dshills/sabre/internal/engine/buffer"
)

// Selection and current-line shading, as blend amounts toward the
// contrasting end of the background.
const (
	selectionShade   = 0.35
	currentLineShade = 0.08
)

// Options configure a Renderer.
type Options struct {
	HighlightSyntax      bool
	HighlightCurrentLine bool
	Theme                string
	Log                  logrus.FieldLogger
}

// OptionsFromConfig builds renderer options from editor options.
func OptionsFromConfig(cfg config.EditorOptions) Options {
	return Options{
		HighlightSyntax:      cfg.HighlightSyntax,
		HighlightCurrentLine: cfg.HighlightCurrentLine,
		Theme:                cfg.Theme,
	}
}

// Palette holds the colors a frame is painted with.
type Palette struct {
	Text        Style
	CurrentLine Color
	Selection   Style
	Status      Style
}

// Cursor is where the terminal cursor goes after a frame.
type Cursor struct {
	X, Y    int
	Visible bool
}

// Renderer paints an editor onto a Grid.
type Renderer struct {
	opts        Options
	palette     Palette
	highlighter *Highlighter
	log         logrus.FieldLogger
}

// New creates a renderer.
func New(opts Options) *Renderer {
	h := NewHighlighter(opts.Theme)

	bg := ColorDefault
	fg := ColorDefault
	if opts.HighlightSyntax {
		bg = h.Background()
		fg = h.Foreground()
	}
	sel := bg.Shade(selectionShade)

	log := opts.Log
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.WarnLevel)
		log = l
	}

	return &Renderer{
		opts: opts,
		palette: Palette{
			Text:        Style{Foreground: fg, Background: bg},
			CurrentLine: bg.Shade(currentLineShade),
			Selection:   Style{Foreground: sel.Contrast(), Background: sel},
			Status:      Style{Foreground: fg, Background: bg, Attributes: AttrReverse},
		},
		highlighter: h,
		log:         log.WithField("component", "renderer"),
	}
}

// Palette returns the colors frames are painted with.
func (r *Renderer) Palette() Palette {
	return r.palette
}

// Render paints one frame: buffer text from the buffer's top line, then
// the status line on the last row.
func Render(g Grid, ed *app.Editor, opts Options) Cursor {
	return New(opts).Render(g, ed)
}

// Render paints one frame of ed onto g and returns the cursor position.
func (r *Renderer) Render(g Grid, ed *app.Editor) Cursor {
	width, height := g.Size()
	if width <= 0 || height <= 0 {
		return Cursor{}
	}

	for y := 0; y < height; y++ {
		r.fillRow(g, y, width, r.palette.Text)
	}

	var cur Cursor
	if b := ed.CurrentBuffer(); b != nil && height > 1 {
		cur = r.paintBuffer(g, b, width, height-1)
	}

	status := ed.StatusLine()
	r.paintString(g, 0, height-1, status.Render(width), r.palette.Status)

	if status.TakingInput() {
		x := StringWidth(status.Prompt()) + columnWidth(status.Input(), status.Caret())
		cur = Cursor{X: min(x, width-1), Y: height - 1, Visible: true}
	}
	return cur
}

func (r *Renderer) paintBuffer(g Grid, b *buffer.Buffer, width, rows int) Cursor {
	line, col := b.Caret()
	top := b.Top()
	sel := b.Selection()
	selecting := b.HasSelection()

	caretX := columnWidth(b.LineText(line), col)
	clip := 0
	if caretX >= width {
		clip = caretX - width + 1
	}

	var styles [][]Style
	if r.opts.HighlightSyntax {
		var err error
		styles, err = r.highlighter.Lines(b.FilePath(), b.Text())
		if err != nil {
			r.log.WithError(err).Debug("highlight failed")
			styles = nil
		}
	}

	for row := 0; row < rows; row++ {
		i := top + row
		if i >= b.LineCount() {
			break
		}

		base := r.palette.Text
		if r.opts.HighlightCurrentLine && i == line {
			base = base.WithBackground(r.palette.CurrentLine)
			r.fillRow(g, row, width, base)
		}

		var lineStyles []Style
		if i < len(styles) {
			lineStyles = styles[i]
		}

		x := -clip
		for c, ch := range []rune(b.LineText(i)) {
			w := RuneWidth(ch)
			if w == 0 {
				continue
			}

			st := base
			if c < len(lineStyles) {
				st = st.Merge(lineStyles[c])
			}
			if selecting && sel.IsInSelectionRange(c, i) {
				st = r.palette.Selection
			}

			if x >= 0 && x+w <= width {
				g.SetContent(x, row, ch, st)
			}
			x += w
			if x >= width {
				break
			}
		}
	}

	y := line - top
	return Cursor{X: caretX - clip, Y: y, Visible: y >= 0 && y < rows}
}

func (r *Renderer) fillRow(g Grid, y, width int, st Style) {
	for x := 0; x < width; x++ {
		g.SetContent(x, y, ' ', st)
	}
}

func (r *Renderer) paintString(g Grid, x, y int, s string, st Style) {
	for _, ch := range s {
		w := RuneWidth(ch)
		if w == 0 {
			continue
		}
		g.SetContent(x, y, ch, st)
		x += w
	}
}
