package stdinput

import (
	"context"
	"io"
	"os"

	"github.com/noriah/specbar/input"
	"github.com/pkg/errors"
)

func init() {
	input.RegisterBackend("stdin", StdinBackend{})
}

type StdinBackend struct{}

func (b StdinBackend) Init() error {
	return nil
}

func (b StdinBackend) Close() error {
	return nil
}

func (b StdinBackend) Devices() ([]input.Device, error) {
	return []input.Device{StdInputDevice{}}, nil
}

func (b StdinBackend) DefaultDevice() (input.Device, error) {
	return StdInputDevice{}, nil
}

func (b StdinBackend) Start(config input.SessionConfig) (input.Session, error) {
	if config.Format.FrameBytes() == 0 {
		return nil, errors.Errorf("stdin cannot read %s samples", config.Format)
	}

	return NewSession(os.Stdin, config), nil
}

type StdInputDevice struct{}

func (d StdInputDevice) String() string {
	return "stdin"
}

// Session reads raw little-endian PCM from a reader, one block at a time.
type Session struct {
	*input.SampleBuffer

	r   io.Reader
	cfg input.SessionConfig
}

func NewSession(r io.Reader, cfg input.SessionConfig) *Session {
	return &Session{
		SampleBuffer: input.NewSampleBuffer(cfg.SampleSize, cfg.Format),
		r:            r,
		cfg:          cfg,
	}
}

func (s *Session) Start(ctx context.Context) error {
	defer s.Stop()

	raw := make([]byte, s.cfg.SampleSize*s.cfg.Format.FrameBytes())
	block := make([]int32, s.cfg.SampleSize)

	for {
		n, err := io.ReadFull(s.r, raw)
		if n > 0 {
			read := input.DecodePCM(block, raw[:n], s.cfg.Format)
			s.Write(block[:read])
		}

		if err != nil {
			switch {
			case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
				return nil
			default:
				return errors.Wrap(err, "failed to read stdin")
			}
		}

		if err := ctx.Err(); err != nil {
			return err
		}
	}
}
