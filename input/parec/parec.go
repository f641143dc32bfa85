package parec

import (
	"fmt"

	"github.com/lawl/pulseaudio"
	"github.com/noriah/specbar/input"
	"github.com/noriah/specbar/input/common/execread"
	"github.com/pkg/errors"
)

func init() {
	input.RegisterBackend("parec", Backend{})
}

type Backend struct{}

func (p Backend) Init() error {
	return nil
}

func (p Backend) Close() error {
	return nil
}

func (p Backend) Devices() ([]input.Device, error) {
	c, err := pulseaudio.NewClient()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create client")
	}
	defer c.Close()

	s, err := c.Sources()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sources")
	}

	var devices = make([]input.Device, len(s))
	for i, source := range s {
		devices[i] = PulseDevice(source.Name)
	}

	return devices, nil
}

// DefaultDevice returns the monitor of the server's default sink, so the
// bars follow whatever is playing.
func (p Backend) DefaultDevice() (input.Device, error) {
	info, err := serverInfo()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get server info")
	}

	return monitorOf(info.DefaultSink)
}

var serverInfo = func() (*pulseaudio.Server, error) {
	c, err := pulseaudio.NewClient()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create client")
	}
	defer c.Close()

	return c.ServerInfo()
}

func monitorOf(sink string) (input.Device, error) {
	if sink == "" {
		return nil, errors.New("server has no default sink")
	}

	return PulseDevice(sink + ".monitor"), nil
}

func (p Backend) Start(cfg input.SessionConfig) (input.Session, error) {
	return NewSession(cfg)
}

type PulseDevice string

func (d PulseDevice) String() string {
	return string(d)
}

// Args builds the parec command line for cfg.
func Args(cfg input.SessionConfig) ([]string, error) {
	dv, ok := cfg.Device.(PulseDevice)
	if !ok {
		return nil, fmt.Errorf("invalid device type %T", cfg.Device)
	}

	if cfg.Channels > 2 {
		return nil, errors.New("channel count not supported, mono/stereo only")
	}

	format, err := wireFormat(cfg.Format)
	if err != nil {
		return nil, err
	}

	return []string{
		"parec",
		"--raw",
		"--format=" + format,
		fmt.Sprintf("--rate=%.0f", cfg.SampleRate),
		fmt.Sprintf("--channels=%d", cfg.Channels),
		"-d", dv.String(),
	}, nil
}

func NewSession(cfg input.SessionConfig) (*execread.Session, error) {
	argv, err := Args(cfg)
	if err != nil {
		return nil, err
	}

	return execread.NewSession(argv, cfg), nil
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
		return "float32le", nil
	default:
		return "", errors.Errorf("parec cannot record %s", f)
	}
}
