// Package wav plays a WAV file as an input source, paced at the file's own
// sample rate.
package wav

import (
	"context"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/noriah/specbar/input"
	"github.com/noriah/specbar/input/common/timer"
	"github.com/pkg/errors"
)

// Format tags from the fmt chunk. Extensible files carry the real format in
// a sub-format GUID that the decoder does not expose; the bit depth decides.
const (
	wavFormatPCM        = 1
	wavFormatExtensible = 0xFFFE
)

func init() {
	input.RegisterBackend("wav", Backend{})
}

type Backend struct{}

func (b Backend) Init() error {
	return nil
}

func (b Backend) Close() error {
	return nil
}

func (b Backend) Devices() ([]input.Device, error) {
	return nil, nil
}

func (b Backend) DefaultDevice() (input.Device, error) {
	return nil, errors.New("wav needs a file path as the device")
}

// ParseDevice treats the device name as a file path.
func (b Backend) ParseDevice(name string) (input.Device, error) {
	if _, err := os.Stat(name); err != nil {
		return nil, errors.Wrap(err, "failed to stat wav file")
	}

	return File(name), nil
}

func (b Backend) Start(cfg input.SessionConfig) (input.Session, error) {
	path, ok := cfg.Device.(File)
	if !ok {
		return nil, errors.Errorf("invalid device type %T", cfg.Device)
	}

	return Open(string(path), cfg)
}

// File is the path of a WAV file.
type File string

func (f File) String() string {
	return string(f)
}

// Session plays decoded PCM data.
type Session struct {
	*input.SampleBuffer

	cfg    input.SessionConfig
	data   []int
	cursor int
	block  []int32
}

// Open decodes the whole file at path. The sample rate, channel count and
// format of cfg are replaced by those of the file.
func Open(path string, cfg input.SessionConfig) (*Session, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open wav file")
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, errors.Errorf("%s is not a valid wav file", path)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode wav file")
	}

	if !integerPCM(dec.WavAudioFormat) {
		return nil, errors.Errorf("wav audio format %d not supported, integer PCM only",
			dec.WavAudioFormat)
	}

	format, err := FormatForDepth(int(dec.BitDepth))
	if err != nil {
		return nil, err
	}

	cfg.Format = format
	cfg.SampleRate = float64(dec.SampleRate)
	cfg.Channels = int(dec.NumChans)

	return NewSession(buf, cfg), nil
}

func integerPCM(tag uint16) bool {
	return tag == wavFormatPCM || tag == wavFormatExtensible
}

// NewSession plays an already decoded buffer.
func NewSession(buf *audio.IntBuffer, cfg input.SessionConfig) *Session {
	if buf.Format != nil {
		if buf.Format.SampleRate > 0 {
			cfg.SampleRate = float64(buf.Format.SampleRate)
		}
		if buf.Format.NumChannels > 0 {
			cfg.Channels = buf.Format.NumChannels
		}
	}

	if cfg.Format == input.FormatUnknown {
		if f, err := FormatForDepth(buf.SourceBitDepth); err == nil {
			cfg.Format = f
		}
	}

	return &Session{
		SampleBuffer: input.NewSampleBuffer(cfg.SampleSize, cfg.Format),
		cfg:          cfg,
		data:         buf.Data,
		block:        make([]int32, cfg.SampleSize),
	}
}

// FormatForDepth maps a WAV bit depth to the matching sample format.
func FormatForDepth(depth int) (input.Format, error) {
	switch depth {
	case 8:
		return input.FormatU8, nil
	case 16:
		return input.FormatS16, nil
	case 24:
		return input.FormatS24, nil
	case 32:
		return input.FormatS32, nil
	default:
		return input.FormatUnknown, errors.Errorf("wav bit depth %d not supported", depth)
	}
}

// Config returns the effective session configuration.
func (s *Session) Config() input.SessionConfig {
	return s.cfg
}

func (s *Session) Start(ctx context.Context) error {
	defer s.Stop()
	return timer.Process(ctx, s.cfg, s, s.next)
}

// next writes the following block, which may be short at the end of the file.
func (s *Session) next() error {
	if s.cursor >= len(s.data) {
		return io.EOF
	}

	n := copy32(s.block, s.data[s.cursor:])
	s.cursor += n
	s.Write(s.block[:n])

	return nil
}

func copy32(dst []int32, src []int) int {
	n := len(src)
	if n > len(dst) {
		n = len(dst)
	}

	for i := 0; i < n; i++ {
		dst[i] = int32(src[i])
	}

	return n
}
