// Package image1bit provides a 1-bit monochrome image format for the IST7920 display controller.
//
// The IST7920 stores pixels in vertical bands of 8 rows. Each byte holds one
// column of a band, least significant bit on top.
//
// Memory layout example for the first band of a 4-pixel wide image:
//
//	        x=0  x=1  x=2  x=3
//	y=0      1    0    0    1     bit 0
//	y=1      1    0    0    0     bit 1
//	...
//	y=7      0    0    0    1     bit 7
//	Bytes:  0x03 0x00 0x00 0x81
//
// Byte index for pixel (x, y) is (y/8)*width + x and the bit index is y%8.
//
// This package provides:
//
// - Bit: A color type representing a pixel that is either on or off
// - BitModel: A color model for converting standard Go colors to Bit
// - VerticalLSB: An image.Image implementation matching the controller RAM
//
// Example usage:
//
//	// Create a 128x128 image
//	img := image1bit.NewVerticalLSB(image.Rect(0, 0, 128, 128))
//
//	// Turn a pixel on
//	img.SetBit(10, 20, image1bit.On)
//
//	// Use with standard Go image operations
//	draw.Draw(img, img.Bounds(), image.NewUniform(image1bit.On), image.Point{}, draw.Src)
package image1bit
