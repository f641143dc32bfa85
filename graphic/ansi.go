package graphic

import (
	"bufio"
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

const defaultForegroundSeq = "39"

// ANSI is a Terminal that writes escape sequences to a stream. Flush moves
// the cursor back to where the frame started, so each frame overwrites the
// last one in place.
type ANSI struct {
	w       *bufio.Writer
	profile termenv.Profile
	lines   int
	last    string
}

// NewANSI creates an ANSI terminal writing colors for profile.
func NewANSI(w io.Writer, profile termenv.Profile) *ANSI {
	return &ANSI{
		w:       bufio.NewWriter(w),
		profile: profile,
	}
}

func (a *ANSI) csi(seq string) {
	a.w.WriteString(termenv.CSI)
	a.w.WriteString(seq)
}

func (a *ANSI) ClearToEnd() {
	a.csi(fmt.Sprintf(termenv.EraseDisplaySeq, 0))
}

func (a *ANSI) LineStart() {
	a.w.WriteByte('\r')
}

func (a *ANSI) NewLine() {
	a.w.WriteByte('\n')
	a.lines++
}

func (a *ANSI) Blank(n int) {
	for i := 0; i < n; i++ {
		a.w.WriteByte(' ')
	}
}

func (a *ANSI) DefaultColor() {
	if a.profile == termenv.Ascii || a.last == defaultForegroundSeq {
		return
	}

	a.csi(defaultForegroundSeq + "m")
	a.last = defaultForegroundSeq
}

func (a *ANSI) SetColor(c Color) {
	seq := a.profile.Color(c.Hex()).Sequence(false)
	if seq == "" || seq == a.last {
		return
	}

	a.csi(seq + "m")
	a.last = seq
}

func (a *ANSI) WriteRune(r rune) {
	a.w.WriteRune(r)
}

// Flush writes the frame and rewinds the cursor to its first line.
func (a *ANSI) Flush() error {
	if a.lines > 0 {
		a.csi(fmt.Sprintf(termenv.CursorUpSeq, a.lines))
	}

	a.lines = 0

	return a.w.Flush()
}

// Finish moves the cursor below a frame of rows lines and resets the
// terminal attributes.
func (a *ANSI) Finish(rows int) error {
	for i := 0; i < rows; i++ {
		a.w.WriteByte('\n')
	}

	a.csi(termenv.ResetSeq + "m")
	a.last = ""

	return a.w.Flush()
}
