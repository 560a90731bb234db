// Package ist7920 controls an IST7920 monochrome LCD controller via SPI.
//
// The IST7920 is a 128×128 dot matrix LCD controller with one bit per pixel.
// This driver implements the display.Drawer interface from periph.io in
// buffered mode.
//
// # Display Characteristics
//
// - 1-bit monochrome, 128×128 pixels
// - RAM organized in 16 bands of 8 rows, one byte per column per band
// - Addressing windows limit where data writes land
// - Adjustable contrast (0-255)
// - Display inversion and vertical start line offset
//
// # Hardware Connection
//
// Connect the IST7920 module to your system via SPI:
//
//	Display Pin → System Pin
//	GND         → GND
//	VDD         → 3.3V
//	SCK         → SPI Clock (SCLK)
//	SDA         → SPI Data (MOSI)
//	A0 (D/C)    → GPIO (any available pin)
//	CS          → SPI Chip Select
//	RST         → Optional: GPIO for hardware reset
//
// # Basic Usage
//
// Example of creating and using the display:
//
//	package main
//
//	import (
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/conn/v3/spi/spireg"
//		"github.com/flavioheleno/ist7920"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Open SPI bus
//		spiBus, _ := spireg.Open("")
//
//		// Get Data/Command and reset GPIO pins
//		dcPin := gpioreg.ByName("GPIO25")
//		rstPin := gpioreg.ByName("GPIO24")
//
//		// Create, reset and initialize the device
//		dev, _ := ist7920.NewSPI(spiBus, dcPin, &ist7920.Opts{RST: rstPin})
//		defer dev.Halt()
//
//		// Draw a diagonal line and send it
//		buf := dev.Buffered()
//		for i := 0; i < 128; i++ {
//			buf.SetPixel(i, i, true)
//		}
//		buf.Flush()
//	}
//
// # Reset and Initialization
//
// Reset pulses RST high, low, high with waits of 1ms, 10ms and 20ms. Init
// then sends the power-up sequence, waiting between the stages of the charge
// pump so the bias voltages can settle. Both abort on the first error and
// leave the controller in an undefined state; run Reset and Init again.
//
// # Drawing Modes
//
// The driver supports two drawing modes:
//
// ## Basic Mode
//
// Configure a window and write raw bytes into it. Each byte is one column
// of an 8 pixel band, least significant bit on top:
//
//	dev.SetDrawArea(image.Pt(0, 0), image.Pt(127, 127))
//	dev.Write(pixels)
//
// ## Buffered Mode
//
// Keep a full frame in memory, change pixels, then send the whole frame:
//
//	buf := dev.Buffered()
//	buf.Clear()
//	buf.SetPixel(10, 20, true)
//	buf.Flush()
//
// Pixels outside the display are ignored. Flush always sends the complete
// frame, split into transfers no larger than the SPI driver accepts.
//
// Buffered implements draw.Image, so standard Go drawing code (image/draw,
// golang.org/x/image/font) can paint into it. Rendering libraries that emit
// individual pixels can feed them through DrawPixels.
//
// # Concurrency
//
// A Dev owns its transport. It is not safe for concurrent use; guard it
// with a mutex if several goroutines draw.
//
// # Compatibility with periph.io
//
// Buffered implements the display.Drawer interface from periph.io:
// https://pkg.go.dev/periph.io/x/conn/v3/display
//
// The D/C and RST pins can be any periph.io gpio.PinOut, or a cdevpin.Pin on
// systems served only by the GPIO character device.
package ist7920
