package graphic

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// Color is an RGB tint for the bars. The zero value is black, which means
// "use the terminal's default color".
type Color struct {
	R, G, B uint8
}

// ParseColor parses a "#rrggbb" string. An empty string is black.
func ParseColor(hex string) (Color, error) {
	if hex == "" {
		return Color{}, nil
	}

	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, errors.Wrapf(err, "invalid color %q", hex)
	}

	r, g, b := c.RGB255()

	return Color{R: r, G: g, B: b}, nil
}

func (c Color) IsBlack() bool {
	return c.R == 0 && c.G == 0 && c.B == 0
}

// Brighten adds amount to every channel, saturating at 255.
func (c Color) Brighten(amount int) Color {
	return Color{
		R: addSat(c.R, amount),
		G: addSat(c.G, amount),
		B: addSat(c.B, amount),
	}
}

func addSat(v uint8, amount int) uint8 {
	sum := int(v) + amount
	switch {
	case sum > 255:
		return 255
	case sum < 0:
		return 0
	default:
		return uint8(sum)
	}
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

// Index256 maps the color onto the 6x6x6 cube of the xterm 256-color palette.
func (c Color) Index256() int {
	r := int(c.R) * 5 / 255
	g := int(c.G) * 5 / 255
	b := int(c.B) * 5 / 255

	return 16 + 36*r + 6*g + b
}
