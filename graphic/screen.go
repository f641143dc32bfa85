package graphic

import (
	"context"
	"os"
	"strings"

	"github.com/nsf/termbox-go"
	"github.com/pkg/errors"
)

// Screen is a full screen display backed by termbox. Frames are drawn into
// the back buffer through a cursor and shown on Flush.
type Screen struct {
	x, y    int
	fg      termbox.Attribute
	restore func()
}

func (s *Screen) Init() error {
	restore, err := dropTmuxTerminfo()
	if err != nil {
		return errors.Wrap(err, "failed to adjust terminal env")
	}

	if err := termbox.Init(); err != nil {
		restore()
		return errors.Wrap(err, "failed to init termbox")
	}

	s.restore = restore

	termbox.SetOutputMode(termbox.Output256)
	termbox.HideCursor()
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)

	s.fg = termbox.ColorDefault

	return nil
}

// dropTmuxTerminfo unsets TERMINFO inside tmux, where some TERMINFO and TERM
// pairs make termbox fail to start. The returned func puts it back.
func dropTmuxTerminfo() (func(), error) {
	prev, set := os.LookupEnv("TERMINFO")

	if !set || !strings.HasPrefix(os.Getenv("TERM"), "tmux") {
		return func() {}, nil
	}

	if err := os.Unsetenv("TERMINFO"); err != nil {
		return nil, err
	}

	return func() { os.Setenv("TERMINFO", prev) }, nil
}

func (s *Screen) Close() error {
	termbox.Close()

	if s.restore != nil {
		s.restore()
	}

	return nil
}

func (s *Screen) Size() (int, int) {
	return termbox.Size()
}

func (s *Screen) Start(ctx context.Context, ctl Controls) context.Context {
	dispCtx, dispCancel := context.WithCancel(ctx)
	go eventPoller(dispCtx, dispCancel, ctl)
	return dispCtx
}

// eventPoller will take events and do things with them
func eventPoller(ctx context.Context, fn context.CancelFunc, ctl Controls) {
	defer fn()

	for {
		ev := termbox.PollEvent()

		// first check if we need to exit
		select {
		case <-ctx.Done():
			return
		default:
		}

		switch ev.Type {
		case termbox.EventKey:
			switch ev.Key {
			case termbox.KeyCtrlC, termbox.KeyEsc:
				return

			case termbox.KeySpace:
				ctl.TogglePause()

			default:
				switch ev.Ch {
				case 'q', 'Q':
					return

				case 'p', 'P':
					ctl.TogglePause()
				}
			}

		case termbox.EventInterrupt, termbox.EventError:
			return
		}
	}
}

func (s *Screen) ClearToEnd() {
	w, h := termbox.Size()

	for y := s.y; y < h; y++ {
		x := 0
		if y == s.y {
			x = s.x
		}

		for ; x < w; x++ {
			termbox.SetCell(x, y, BlankRune, termbox.ColorDefault, termbox.ColorDefault)
		}
	}
}

func (s *Screen) LineStart() {
	s.x = 0
}

func (s *Screen) NewLine() {
	s.y++
}

func (s *Screen) Blank(n int) {
	for i := 0; i < n; i++ {
		s.WriteRune(BlankRune)
	}
}

func (s *Screen) DefaultColor() {
	s.fg = termbox.ColorDefault
}

func (s *Screen) SetColor(c Color) {
	// In 256 color mode attribute n selects palette entry n-1.
	s.fg = termbox.Attribute(c.Index256() + 1)
}

func (s *Screen) WriteRune(r rune) {
	termbox.SetCell(s.x, s.y, r, s.fg, termbox.ColorDefault)
	s.x++
}

// Flush shows the back buffer and homes the cursor for the next frame.
func (s *Screen) Flush() error {
	s.x, s.y = 0, 0
	return termbox.Flush()
}
