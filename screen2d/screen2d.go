// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package screen2d implements a small monochrome display.Drawer that outputs
// to terminal (stdout) using ANSI color codes.
//
// Useful to develop animations for a PCD8544 panel before the hardware comes
// by mail, or on a machine without one. It accepts the same framebuffer
// format as the panel, so code can switch between the two by swapping the
// Drawer.
package screen2d

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3/display"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// Opts represents the options available for this display.
type Opts struct {
	// X and Y are the emulated panel size in pixels. Y must be a multiple of
	// 8. Both default to the PCD8544 panel size of 84x48.
	X int
	Y int
	// Palette selects the terminal color rendition. Defaults to
	// ansi256.Default.
	Palette *ansi256.Palette

	_ struct{}
}

// Dev is a monochrome panel emulator that outputs to the console.
type Dev struct {
	w       io.Writer
	rect    image.Rectangle
	palette ansi256.Palette

	fb    *image1bit.VerticalLSB
	buf   bytes.Buffer
	drawn bool
}

// New returns a Dev that displays at the console.
//
// Permits to do local testing of display output.
func New(opts *Opts) *Dev {
	x, y := opts.X, opts.Y
	if x == 0 {
		x = 84
	}
	if y == 0 {
		y = 48
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	r := image.Rect(0, 0, x, y)
	return &Dev{
		w:       colorable.NewColorableStdout(),
		rect:    r,
		palette: *p,
		fb:      image1bit.NewVerticalLSB(r),
	}
}

func (d *Dev) String() string {
	return fmt.Sprintf("Screen2D{%dx%d}", d.rect.Max.X, d.rect.Max.Y)
}

// Halt implements conn.Resource.
//
// It resets the terminal attributes so the shell is not corrupted.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\033[0m\n"))
	return err
}

// Write accepts a raw framebuffer, one byte per 8 vertical pixels with the
// LSB on top, and renders it to the console. This is the PCD8544 DDRAM
// layout and the content of image1bit.VerticalLSB.Pix.
func (d *Dev) Write(pixels []byte) (int, error) {
	if len(pixels) != len(d.fb.Pix) {
		return 0, fmt.Errorf("screen2d: invalid pixel stream length; expected %d bytes, got %d bytes", len(d.fb.Pix), len(pixels))
	}
	copy(d.fb.Pix, pixels)
	if err := d.refresh(); err != nil {
		return 0, err
	}
	return len(pixels), nil
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds implements display.Drawer.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Draw implements display.Drawer.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	if img, ok := src.(*image1bit.VerticalLSB); ok && r == d.rect && img.Rect == d.rect && sp.X == 0 && sp.Y == 0 {
		copy(d.fb.Pix, img.Pix)
	} else {
		draw.Src.Draw(d.fb, r, src, sp)
	}
	return d.refresh()
}

func (d *Dev) refresh() error {
	// This code is designed to minimize the amount of memory allocated per
	// call.
	d.buf.Reset()
	if d.drawn {
		// Move back over the previous frame so animation stays in place.
		fmt.Fprintf(&d.buf, "\033[%dA", d.rect.Max.Y)
	}
	for y := 0; y < d.rect.Max.Y; y++ {
		_, _ = d.buf.WriteString("\r\033[0m")
		for x := 0; x < d.rect.Max.X; x++ {
			_, _ = io.WriteString(&d.buf, d.palette.Block(pixelColor(d.fb.BitAt(x, y))))
		}
		_, _ = d.buf.WriteString("\033[0m\n")
	}
	d.drawn = true
	_, err := d.buf.WriteTo(d.w)
	return err
}

func pixelColor(b image1bit.Bit) color.NRGBA {
	if b {
		return color.NRGBA{255, 255, 255, 255}
	}
	return color.NRGBA{0, 0, 0, 255}
}

var _ display.Drawer = &Dev{}
var _ fmt.Stringer = &Dev{}
