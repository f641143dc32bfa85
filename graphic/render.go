// Package graphic draws spectrum bars onto a terminal.
package graphic

import "context"

// Terminal is the set of output primitives the renderer needs.
type Terminal interface {
	// ClearToEnd erases from the cursor to the end of the screen.
	ClearToEnd()
	// LineStart moves the cursor to the start of the current line.
	LineStart()
	NewLine()
	// Blank writes n empty cells.
	Blank(n int)
	DefaultColor()
	SetColor(Color)
	WriteRune(rune)
	Flush() error
}

// Controls is what a display drives from user input.
type Controls interface {
	TogglePause()
}

// Display is a terminal the application can own.
type Display interface {
	Terminal

	Init() error
	Close() error
	// Size returns the drawable width and height in cells.
	Size() (width, height int)
	// Start begins handling input. The returned context is cancelled when
	// the user quits.
	Start(ctx context.Context, ctl Controls) context.Context
}

// Frame is one block of bars to draw.
type Frame struct {
	Rows             int
	Bars             []float64
	Color            Color
	Indent           int
	Frozen           bool
	UseProfileColors bool
}

// Renderer draws frames onto a terminal.
type Renderer struct {
	term    Terminal
	unicode bool
}

func NewRenderer(term Terminal, unicode bool) *Renderer {
	return &Renderer{term: term, unicode: unicode}
}

// Unicode reports whether partial blocks are drawn.
func (r *Renderer) Unicode() bool {
	return r.unicode
}

// Draw writes the frame top row first. A frozen frame draws every row with
// blank cells.
func (r *Renderer) Draw(f Frame) error {
	t := r.term

	t.NewLine()
	t.ClearToEnd()

	tint := !f.Color.IsBlack() && !f.UseProfileColors

	for j := f.Rows; j > 0; j-- {
		t.LineStart()
		t.Blank(f.Indent)

		if tint {
			t.SetColor(f.Color.Brighten(j * f.Rows * 4))
		} else {
			t.DefaultColor()
		}

		for _, v := range f.Bars {
			t.Blank(1)

			if f.Frozen {
				t.WriteRune(BlankRune)
				continue
			}

			t.WriteRune(Glyph(v, j, r.unicode))
		}

		t.NewLine()
	}

	t.LineStart()

	return t.Flush()
}
