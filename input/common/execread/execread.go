// Package execread provides a shared struct that wraps around cmd.
package execread

import (
	"context"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/noriah/specbar/input"
	"github.com/pkg/errors"
)

// Session is a session that reads raw little-endian PCM from a Cmd.
type Session struct {
	*input.SampleBuffer

	// OnStart is called when the session starts. Nil by default.
	OnStart func(ctx context.Context, cmd *exec.Cmd) error

	// prevents cmd.Stderr from poiting to os.Stderr. false by default.
	DisconnectedStderr bool

	argv []string
	cfg  input.SessionConfig
}

// NewSession creates a new execread session. It never returns an error.
func NewSession(argv []string, cfg input.SessionConfig) *Session {
	if len(argv) < 1 {
		panic("argv has no arg0")
	}

	return &Session{
		SampleBuffer: input.NewSampleBuffer(cfg.SampleSize, cfg.Format),
		argv:         argv,
		cfg:          cfg,
	}
}

// Argv returns the command line the session runs.
func (s *Session) Argv() []string {
	return s.argv
}

func (s *Session) Start(ctx context.Context) error {
	defer s.Stop()

	cmd := exec.CommandContext(ctx, s.argv[0], s.argv[1:]...)

	if !s.DisconnectedStderr {
		cmd.Stderr = os.Stderr
	}

	o, err := cmd.StdoutPipe()
	if err != nil {
		return errors.Wrap(err, "failed to get stdout pipe")
	}
	defer o.Close()

	// We need o as an *os.File for SetReadDeadline.
	of, ok := o.(*os.File)
	if !ok {
		return errors.New("stdout pipe is not an *os.File (bug)")
	}

	if err := cmd.Start(); err != nil {
		return errors.Wrap(err, "failed to start "+s.argv[0])
	}
	defer cmd.Wait()

	if s.OnStart != nil {
		if err := s.OnStart(ctx, cmd); err != nil {
			return err
		}
	}

	raw := make([]byte, s.cfg.SampleSize*s.cfg.Format.FrameBytes())
	block := make([]int32, s.cfg.SampleSize)

	// We double this as a workaround because sampleDuration is less than the
	// actual time that ReadFull blocks for some reason, probably because the
	// process decides to discard audio when it overflows.
	sampleDuration := time.Duration(float64(time.Second) / s.cfg.BlockRate())
	// We also keep track of whether the deadline was hit once so we can half
	// the sample duration. This smooths out the jitter.
	var readExpired bool

	for {
		// Set us a read deadline. If the deadline is reached, we'll write zeros
		// to the buffer.
		timeout := sampleDuration
		if !readExpired {
			timeout *= 6
		}
		if err := of.SetReadDeadline(time.Now().Add(timeout)); err != nil {
			return errors.Wrap(err, "failed to set read deadline")
		}

		_, err := io.ReadFull(o, raw)
		if err != nil {
			switch {
			case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
				return nil
			case errors.Is(err, os.ErrDeadlineExceeded):
				readExpired = true
			default:
				return err
			}
		} else {
			readExpired = false
		}

		if readExpired {
			s.Clear()
		} else {
			n := input.DecodePCM(block, raw, s.cfg.Format)
			s.Write(block[:n])
		}

		if err := ctx.Err(); err != nil {
			return err
		}
	}
}
