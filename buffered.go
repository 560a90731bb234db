package ist7920

import (
	"image"
	"image/color"
	"image/draw"
	"iter"

	"github.com/flavioheleno/ist7920/image1bit"
	"periph.io/x/conn/v3/display"
)

// Pixel is a single pixel event produced by an external rendering layer.
type Pixel struct {
	image.Point
	On bool
}

// Buffered is a Dev with a full frame buffer in memory.
//
// Pixel changes only touch the buffer; Flush sends the whole frame. Every
// Flush is a complete resync, so the display ends up matching the buffer no
// matter what was written before.
type Buffered struct {
	*Dev
	img *image1bit.VerticalLSB
}

var (
	_ draw.Image     = (*Buffered)(nil)
	_ display.Drawer = (*Buffered)(nil)
)

// Clear turns every pixel of the buffer off. Call Flush for any effect on
// the screen.
func (b *Buffered) Clear() {
	b.img.Clear()
}

// SetPixel turns a pixel on or off. Coordinates outside the display are
// ignored.
func (b *Buffered) SetPixel(x, y int, on bool) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return
	}
	idx := (y/8)*Width + x
	bit := byte(1) << uint(y%8)
	if on {
		b.img.Pix[idx] |= bit
	} else {
		b.img.Pix[idx] &^= bit
	}
}

// Pixel reports whether the pixel at (x, y) is on in the buffer.
func (b *Buffered) Pixel(x, y int) bool {
	return bool(b.img.BitAt(x, y))
}

// DrawPixels applies a sequence of pixel events to the buffer. Events
// outside the display are dropped.
func (b *Buffered) DrawPixels(pixels iter.Seq[Pixel]) {
	bounds := b.Bounds()
	for p := range pixels {
		if !p.In(bounds) {
			continue
		}
		b.SetPixel(p.X, p.Y, p.On)
	}
}

// Flush sends the whole buffer to the display.
func (b *Buffered) Flush() error {
	if err := b.SetDrawArea(image.Point{}, image.Pt(Width-1, Height-1)); err != nil {
		return err
	}
	return b.writeChunks(b.img.Pix)
}

// Buffer returns the frame buffer. It is only valid until the next call
// that modifies the buffer.
func (b *Buffered) Buffer() []byte {
	return b.img.Pix
}

// At returns the color of the pixel at (x, y) in the buffer.
func (b *Buffered) At(x, y int) color.Color {
	return b.img.BitAt(x, y)
}

// Set sets the pixel at (x, y) in the buffer, converting c with
// image1bit.BitModel.
func (b *Buffered) Set(x, y int, c color.Color) {
	b.SetPixel(x, y, bool(image1bit.BitModel.Convert(c).(image1bit.Bit)))
}

// Draw paints src into the buffer and flushes it.
// The dst rectangle specifies the destination region on the display.
// The src image is positioned at src point sp within the destination.
func (b *Buffered) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if b.halted {
		return errHalted
	}
	dst = dst.Intersect(b.Bounds())
	if dst.Empty() {
		return nil
	}
	draw.Draw(b.img, dst, src, sp, draw.Src)
	return b.Flush()
}
