package input

import (
	"strings"

	"github.com/pkg/errors"
)

// Format is the sample layout a source delivers.
type Format int

const (
	FormatUnknown Format = iota
	FormatU8
	FormatS16
	FormatS24
	FormatF32
	FormatS32
)

var formatNames = [...]string{
	FormatUnknown: "unknown",
	FormatU8:      "u8",
	FormatS16:     "s16",
	FormatS24:     "s24",
	FormatF32:     "f32",
	FormatS32:     "s32",
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return formatNames[FormatUnknown]
	}
	return formatNames[f]
}

// BitDepth returns the number of significant bits per sample. Float samples
// are delivered scaled to the 32-bit integer range.
func (f Format) BitDepth() int {
	switch f {
	case FormatU8:
		return 8
	case FormatS16:
		return 16
	case FormatS24:
		return 24
	case FormatF32, FormatS32:
		return 32
	default:
		return 0
	}
}

// FrameBytes returns the number of bytes one sample occupies on the wire.
func (f Format) FrameBytes() int {
	switch f {
	case FormatU8:
		return 1
	case FormatS16:
		return 2
	case FormatS24:
		return 3
	case FormatF32, FormatS32:
		return 4
	default:
		return 0
	}
}

// ParseFormat parses a format name such as "s16" or "s16le".
func ParseFormat(name string) (Format, error) {
	name = strings.TrimSuffix(strings.ToLower(name), "le")

	for f, n := range formatNames {
		if f != int(FormatUnknown) && n == name {
			return Format(f), nil
		}
	}

	return FormatUnknown, errors.Errorf("unknown sample format %q", name)
}
