package icon

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Theme is the set of colors the icon is painted with.
type Theme struct {
	Fill    color.NRGBA // circle background, spine, left-to-right arrow
	Outline color.NRGBA // circle outline
	Accent  color.NRGBA // right-to-left arrow
	Paper   color.NRGBA // book
	Ink     color.NRGBA // text lines
}

// DefaultTheme is the extension's purple palette.
var DefaultTheme = Theme{
	Fill:    color.NRGBA{102, 126, 234, 255},
	Outline: color.NRGBA{90, 77, 159, 255},
	Accent:  color.NRGBA{118, 75, 162, 255},
	Paper:   color.NRGBA{255, 255, 255, 230},
	Ink:     color.NRGBA{100, 100, 100, 200},
}

// ParseHex parses "#RRGGBB" or "#RRGGBBAA". The leading '#' is optional.
func ParseHex(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: want #RRGGBB or #RRGGBBAA", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(h) == 6 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// Hex formats c as "#rrggbb", or "#rrggbbaa" when it is not opaque.
func Hex(c color.NRGBA) string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
