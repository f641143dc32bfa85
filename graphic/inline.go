package graphic

import (
	"context"
	"os"

	"github.com/muesli/termenv"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

// Inline draws below the shell prompt on stdout without taking over the
// screen.
type Inline struct {
	*ANSI

	out      *os.File
	in       *os.File
	rawKeys  bool
	oldState *term.State
	rows     int
}

// NewInline creates an inline display. When rawKeys is set and stdin is a
// terminal, key presses are read from it.
func NewInline(rawKeys bool) *Inline {
	return &Inline{
		ANSI:    NewANSI(os.Stdout, termenv.EnvColorProfile()),
		out:     os.Stdout,
		in:      os.Stdin,
		rawKeys: rawKeys,
	}
}

func (d *Inline) Init() error {
	if !term.IsTerminal(int(d.out.Fd())) {
		return errors.New("stdout is not a terminal")
	}

	d.csi(termenv.HideCursorSeq)

	return d.w.Flush()
}

func (d *Inline) Close() error {
	if d.oldState != nil {
		term.Restore(int(d.in.Fd()), d.oldState)
		d.oldState = nil
	}

	d.csi(termenv.ShowCursorSeq)

	return d.Finish(d.rows + 1)
}

func (d *Inline) Size() (int, int) {
	w, h, err := term.GetSize(int(d.out.Fd()))
	if err != nil {
		return 0, 0
	}

	return w, frameHeight(h)
}

// frameHeight is the height handed to the renderer for a terminal of h
// lines. A frame spans its rows plus a leading and a trailing line, so a full
// height frame would scroll the terminal every time it is drawn.
func frameHeight(h int) int {
	return h - 1
}

// Flush records the height of the frame so Close can step past it.
func (d *Inline) Flush() error {
	if d.lines > d.rows {
		d.rows = d.lines
	}

	return d.ANSI.Flush()
}

func (d *Inline) Start(ctx context.Context, ctl Controls) context.Context {
	if !d.rawKeys || !term.IsTerminal(int(d.in.Fd())) {
		return ctx
	}

	state, err := term.MakeRaw(int(d.in.Fd()))
	if err != nil {
		return ctx
	}

	d.oldState = state

	dispCtx, dispCancel := context.WithCancel(ctx)

	go keyPoller(dispCtx, dispCancel, d.in, ctl)

	return dispCtx
}

// keyPoller reads raw key presses until the user quits or ctx ends.
func keyPoller(ctx context.Context, fn context.CancelFunc, in *os.File, ctl Controls) {
	defer fn()

	buf := make([]byte, 1)

	for {
		if _, err := in.Read(buf); err != nil {
			return
		}

		select {
		case <-ctx.Done():
			return
		default:
		}

		switch buf[0] {
		case 'q', 'Q', 0x1b, 0x03:
			return

		case ' ', 'p', 'P':
			ctl.TogglePause()
		}
	}
}
