// Package image1bit provides a 1-bit image format matching the IST7920 display RAM.
//
// Pixels are packed 8 rows per byte, least significant bit on top.
// This package provides the Bit color type and VerticalLSB image implementation.
package image1bit

import (
	"image"
	"image/color"
)

// Bit represents a monochrome pixel: true is a lit dot, false is blank.
type Bit bool

const (
	On  = Bit(true)
	Off = Bit(false)
)

// RGBA converts the Bit to standard RGBA. On is white, Off is black.
func (b Bit) RGBA() (r, g, bl, a uint32) {
	if b {
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	}
	return 0, 0, 0, 0xFFFF
}

func (b Bit) String() string {
	if b {
		return "On"
	}
	return "Off"
}

// toBit converts any color.Color to Bit.
func toBit(c color.Color) color.Color {
	if b, ok := c.(Bit); ok {
		return b
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Off
	}
	// Same luma weights as image/color.GrayModel, thresholded at half scale.
	y := (19595*r + 38470*g + 7471*b + 1<<15) >> 16
	return Bit(y >= 0x8000)
}

// BitModel converts colors to Bit.
var BitModel = color.ModelFunc(toBit)

// VerticalLSB is a 1-bit image where each byte holds 8 vertically adjacent pixels.
// Bit 0 is the top pixel of the band.
type VerticalLSB struct {
	Pix    []byte          // Pixel data (8 pixels per byte)
	Stride int             // Bytes per band, equal to the width
	Rect   image.Rectangle // Image bounds
}

// NewVerticalLSB creates a new VerticalLSB image with the specified bounds.
// The height must be a multiple of 8.
func NewVerticalLSB(r image.Rectangle) *VerticalLSB {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &VerticalLSB{Rect: r}
	}
	if h%8 != 0 {
		panic("image1bit: height must be a multiple of 8")
	}
	return &VerticalLSB{
		Pix:    make([]byte, w*h/8),
		Stride: w,
		Rect:   r,
	}
}

// ColorModel returns the color model of the image.
func (p *VerticalLSB) ColorModel() color.Model {
	return BitModel
}

// Bounds returns the image bounds.
func (p *VerticalLSB) Bounds() image.Rectangle {
	return p.Rect
}

// At returns the color of the pixel at (x, y).
// It implements the image.Image interface.
func (p *VerticalLSB) At(x, y int) color.Color {
	return p.BitAt(x, y)
}

// BitAt returns the Bit of the pixel at (x, y).
func (p *VerticalLSB) BitAt(x, y int) Bit {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Off
	}
	offset, mask := p.pixOffset(x, y)
	return p.Pix[offset]&mask != 0
}

// Set sets the color of the pixel at (x, y).
func (p *VerticalLSB) Set(x, y int, c color.Color) {
	p.SetBit(x, y, BitModel.Convert(c).(Bit))
}

// SetBit sets the Bit of the pixel at (x, y), leaving the other pixels of
// the byte untouched.
func (p *VerticalLSB) SetBit(x, y int, b Bit) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	offset, mask := p.pixOffset(x, y)
	if b {
		p.Pix[offset] |= mask
	} else {
		p.Pix[offset] &^= mask
	}
}

// Clear turns every pixel off.
func (p *VerticalLSB) Clear() {
	clear(p.Pix)
}

// pixOffset returns the byte offset and bit mask for the pixel at (x, y).
func (p *VerticalLSB) pixOffset(x, y int) (offset int, mask byte) {
	x, y = x-p.Rect.Min.X, y-p.Rect.Min.Y
	offset = (y/8)*p.Stride + x
	mask = 1 << uint(y&7)
	return
}
