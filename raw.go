package specbar

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/noriah/specbar/graphic"
)

// RawOutput prints the bar heights of every frame as a line of numbers
// instead of drawing them. Heights are scaled to [0, 100].
type RawOutput struct {
	w     *bufio.Writer
	width int
	rows  int
}

var _ graphic.Display = &RawOutput{}

// NewRawOutput creates a raw output of bars bars and rows rows.
func NewRawOutput(w io.Writer, bars, rows int) *RawOutput {
	return &RawOutput{
		w:     bufio.NewWriter(w),
		width: bars * 2,
		rows:  rows,
	}
}

// Init initializes the display.
func (d *RawOutput) Init() error {
	return nil
}

// Close flushes anything left.
func (d *RawOutput) Close() error {
	return d.w.Flush()
}

// Size reports the frame size that yields the configured bars and rows.
func (d *RawOutput) Size() (int, int) {
	return d.width, d.rows + 1
}

func (d *RawOutput) Start(ctx context.Context, _ graphic.Controls) context.Context {
	return ctx
}

// WriteBars prints one line.
func (d *RawOutput) WriteBars(bars []float64, rows int) error {
	scale := 100.0
	if rows > 0 {
		scale /= float64(rows)
	}

	for _, v := range bars {
		fmt.Fprintf(d.w, "%6.3f ", v*scale)
	}

	fmt.Fprintln(d.w)

	return d.w.Flush()
}

// The terminal primitives draw nothing.

func (d *RawOutput) ClearToEnd()            {}
func (d *RawOutput) LineStart()             {}
func (d *RawOutput) NewLine()               {}
func (d *RawOutput) Blank(int)              {}
func (d *RawOutput) DefaultColor()          {}
func (d *RawOutput) SetColor(graphic.Color) {}
func (d *RawOutput) WriteRune(rune)         {}
func (d *RawOutput) Flush() error           { return nil }
