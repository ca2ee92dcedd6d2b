// Package icon draws the Manga Translator placeholder icon: a purple disc
// with an open book and two translation arrows.
package icon

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
)

// MaxSupersample bounds Options.Supersample.
const MaxSupersample = 8

// ErrUnavailable is returned by Render when the binary was built without
// the drawing backend (-tags nogg).
var ErrUnavailable = errors.New("icon renderer unavailable")

// Options controls how an icon is rendered. The zero value renders with
// DefaultTheme and no supersampling.
type Options struct {
	Theme       *Theme
	Supersample int
}

func (o Options) theme() Theme {
	if o.Theme == nil {
		return DefaultTheme
	}
	return *o.Theme
}

func (o Options) scale() (int, error) {
	switch {
	case o.Supersample == 0:
		return 1, nil
	case o.Supersample < 1 || o.Supersample > MaxSupersample:
		return 0, fmt.Errorf("supersample must be 1-%d, got %d", MaxSupersample, o.Supersample)
	}
	return o.Supersample, nil
}

// Encode writes img to w as PNG. Output is deterministic for a given image.
func Encode(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.DefaultCompression}
	return enc.Encode(w, img)
}
