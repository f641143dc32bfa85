// Package ffmpeg captures audio by running ffmpeg and reading raw PCM from its
// standard output.
package ffmpeg

import (
	"fmt"

	"github.com/noriah/specbar/input"
	"github.com/noriah/specbar/input/common/execread"
	"github.com/pkg/errors"
)

type FFmpegBackend interface {
	InputArgs() []string
}

// Args builds the ffmpeg command line for device b.
func Args(b FFmpegBackend, cfg input.SessionConfig) ([]string, error) {
	format, err := wireFormat(cfg.Format)
	if err != nil {
		return nil, err
	}

	args := []string{"ffmpeg", "-hide_banner", "-loglevel", "panic"}
	args = append(args, b.InputArgs()...)
	args = append(args,
		"-ar", fmt.Sprintf("%.0f", cfg.SampleRate),
		"-ac", fmt.Sprintf("%d", cfg.Channels),
		"-f", format,
		"-",
	)

	return args, nil
}

func NewSession(b FFmpegBackend, cfg input.SessionConfig) (*execread.Session, error) {
	args, err := Args(b, cfg)
	if err != nil {
		return nil, err
	}

	return execread.NewSession(args, cfg), nil
}

func wireFormat(f input.Format) (string, error) {
	switch f {
	case input.FormatU8:
		return "u8", nil
	case input.FormatS16:
		return "s16le", nil
	case input.FormatS24:
		return "s24le", nil
	case input.FormatS32:
		return "s32le", nil
	case input.FormatF32:
		return "f32le", nil
	default:
		return "", errors.Errorf("ffmpeg cannot output %s", f)
	}
}
