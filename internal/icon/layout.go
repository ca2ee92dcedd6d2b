package icon

import (
	"errors"
	"fmt"
	"math"
)

// Size limits accepted by Render.
const (
	MinSize = 16
	MaxSize = 1024
)

// Stroke widths and fixed pixel offsets, in output pixels.
const (
	OutlineWidth = 2
	SpineWidth   = 2
	TextWidth    = 1
	ArrowWidth   = 2

	textInset  = 4 // text lines keep this far from the spine and the book edges
	arrowGap   = 6 // arrow shaft stops this far from the spine
	arrowTip   = 2 // arrowhead tip distance from the spine
	arrowHalf  = 3 // half height of the arrowhead
	textLines  = 3
	bookAspect = 1.6
)

// ErrInvalidSize is returned for sizes outside [MinSize, MaxSize].
var ErrInvalidSize = errors.New("invalid icon size")

// Layout holds every coordinate of the icon, derived from its size.
type Layout struct {
	Size        int
	Center      int
	Radius      int
	BookX       int
	BookY       float64
	BookWidth   int
	BookHeight  float64
	LineY       float64
	LineSpacing int
	ArrowY1     float64
	ArrowY2     float64
}

// CheckSize reports whether size can be rendered.
func CheckSize(size int) error {
	if size < MinSize || size > MaxSize {
		return fmt.Errorf("%w: %d (must be %d-%d)", ErrInvalidSize, size, MinSize, MaxSize)
	}
	return nil
}

// NewLayout computes the geometry for a size×size icon. It does not
// validate size; see CheckSize.
func NewLayout(size int) Layout {
	bookW := size / 2
	bookH := float64(size) / bookAspect
	bookY := math.Floor((float64(size) - bookH) / 2)
	return Layout{
		Size:        size,
		Center:      size / 2,
		Radius:      size/2 - 2,
		BookX:       (size - bookW) / 2,
		BookY:       bookY,
		BookWidth:   bookW,
		BookHeight:  bookH,
		LineY:       bookY + float64(size/8),
		LineSpacing: size / 10,
		ArrowY1:     bookY + float64(size/6),
		ArrowY2:     bookY + bookH - float64(size/6),
	}
}

// TextLineY returns the vertical position of the i-th pair of text lines.
func (l Layout) TextLineY(i int) float64 {
	return l.LineY + float64(i*l.LineSpacing)
}

// BookRight is the x coordinate of the book's right edge.
func (l Layout) BookRight() int {
	return l.BookX + l.BookWidth
}
