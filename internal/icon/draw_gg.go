//go:build !nogg

package icon

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"
)

// Available reports whether this build can render icons.
func Available() bool { return true }

// Render draws a size×size icon with a transparent background.
// Steps are painted in order; each shape replaces the pixels it covers.
func Render(size int, opts Options) (*image.RGBA, error) {
	if err := CheckSize(size); err != nil {
		return nil, err
	}
	k, err := opts.scale()
	if err != nil {
		return nil, err
	}

	l := NewLayout(size)
	th := opts.theme()
	img := image.NewRGBA(image.Rect(0, 0, size*k, size*k))
	c := newCanvas(img, float64(k))

	drawCircle(c, l, th)
	drawBook(c, l, th)
	drawTextLines(c, l, th)
	drawArrows(c, l, th)

	if k == 1 {
		return img, nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Rect, img, img.Bounds(), xdraw.Src, nil)
	return dst, nil
}

// Coordinates are inclusive: a shape from x0 to x1 covers pixel x1 too,
// so every far edge is pushed out by one pixel.

func drawCircle(c *canvas, l Layout, th Theme) {
	cx := float64(l.Center) + 0.5
	r := float64(l.Radius) + 0.5
	c.circle(cx, cx, r, th.Fill)
	// Stroke centered half a width inside so the outline stays within r.
	c.ring(cx, cx, r-OutlineWidth/2.0, OutlineWidth, th.Outline)
}

func drawBook(c *canvas, l Layout, th Theme) {
	c.rect(float64(l.BookX), l.BookY, float64(l.BookWidth+1), l.BookHeight+1, th.Paper)
	x := float64(l.Center)
	c.line(x, l.BookY, x, l.BookY+l.BookHeight+1, SpineWidth, th.Fill)
}

func drawTextLines(c *canvas, l Layout, th Theme) {
	left, right := float64(l.BookX), float64(l.BookRight())
	mid := float64(l.Center)
	for i := 0; i < textLines; i++ {
		// Width-1 strokes sit on the pixel row, not its top edge.
		y := l.TextLineY(i) + 0.5
		c.line(left+textInset, y, mid-textInset+1, y, TextWidth, th.Ink)
		c.line(mid+textInset, y, right-textInset+1, y, TextWidth, th.Ink)
	}
}

func drawArrows(c *canvas, l Layout, th Theme) {
	left, right := float64(l.BookX), float64(l.BookRight())
	mid := float64(l.Center)

	y1 := l.ArrowY1
	c.line(left+textInset, y1, mid-arrowGap+1, y1, ArrowWidth, th.Fill)
	c.polygon(th.Fill,
		mid-arrowGap, y1-arrowHalf,
		mid-arrowGap, y1+arrowHalf,
		mid-arrowTip, y1,
	)

	y2 := l.ArrowY2
	c.line(mid+arrowGap, y2, right-textInset+1, y2, ArrowWidth, th.Accent)
	c.polygon(th.Accent,
		mid+arrowGap, y2-arrowHalf,
		mid+arrowGap, y2+arrowHalf,
		mid+arrowTip, y2,
	)
}

// canvas rasterizes one shape at a time into a coverage buffer with gg,
// then writes the shape's color into dst wherever at least half a pixel
// is covered. Colors replace what is underneath instead of blending,
// and edges are hard; supersampling is what smooths them.
type canvas struct {
	dst *image.RGBA
	cov *image.RGBA
	dc  *gg.Context // draws into cov
	k   float64
}

func newCanvas(dst *image.RGBA, k float64) *canvas {
	cov := image.NewRGBA(dst.Bounds())
	dc := gg.NewContextForRGBA(cov)
	dc.SetLineCapButt()
	dc.SetColor(color.White)
	return &canvas{dst: dst, cov: cov, dc: dc, k: k}
}

// paint copies col into every pixel the pending shape covers and resets
// the coverage buffer. dst and cov share bounds, so their Pix line up.
func (c *canvas) paint(col color.Color) {
	px := color.RGBAModel.Convert(col).(color.RGBA)
	for i := 3; i < len(c.cov.Pix); i += 4 {
		if c.cov.Pix[i] >= 0x80 {
			c.dst.Pix[i-3] = px.R
			c.dst.Pix[i-2] = px.G
			c.dst.Pix[i-1] = px.B
			c.dst.Pix[i] = px.A
		}
	}
	clear(c.cov.Pix)
}

func (c *canvas) circle(x, y, r float64, col color.Color) {
	c.dc.DrawCircle(x*c.k, y*c.k, r*c.k)
	c.dc.Fill()
	c.paint(col)
}

func (c *canvas) ring(x, y, r, width float64, col color.Color) {
	c.dc.DrawCircle(x*c.k, y*c.k, r*c.k)
	c.dc.SetLineWidth(width * c.k)
	c.dc.Stroke()
	c.paint(col)
}

func (c *canvas) rect(x, y, w, h float64, col color.Color) {
	c.dc.DrawRectangle(x*c.k, y*c.k, w*c.k, h*c.k)
	c.dc.Fill()
	c.paint(col)
}

func (c *canvas) line(x1, y1, x2, y2, width float64, col color.Color) {
	c.dc.DrawLine(x1*c.k, y1*c.k, x2*c.k, y2*c.k)
	c.dc.SetLineWidth(width * c.k)
	c.dc.Stroke()
	c.paint(col)
}

// polygon fills the closed path through the given x,y pairs.
func (c *canvas) polygon(col color.Color, pts ...float64) {
	for i := 0; i+1 < len(pts); i += 2 {
		c.dc.LineTo(pts[i]*c.k, pts[i+1]*c.k)
	}
	c.dc.ClosePath()
	c.dc.Fill()
	c.paint(col)
}
