package graphic

import "math"

// FullBlock is drawn for rows a bar fills completely.
const FullBlock rune = '█'

// BlankRune is drawn where there is no bar.
const BlankRune rune = ' '

// barRunes is the partial block ramp, from empty to full in eighths.
var barRunes = [...]rune{
	BlankRune,
	'▁',
	'▂',
	'▃',
	'▄',
	'▅',
	'▆',
	'▇',
	FullBlock,
}

// Glyph returns the cell for a bar of height value at row (1 is the bottom
// row). Rows the bar covers get a full block; the row just above the bar
// gets a partial block picked by the first decimal digit of value when
// unicode is on.
func Glyph(value float64, row int, unicode bool) rune {
	r := float64(row)

	switch {
	case value >= r:
		if unicode {
			return barRunes[len(barRunes)-1]
		}
		return FullBlock

	case unicode && value+1 >= r:
		level := int(math.Mod(value*10, 10))
		if level < 0 || level >= len(barRunes) {
			level = len(barRunes) - 1
		}
		return barRunes[level]

	default:
		return BlankRune
	}
}
