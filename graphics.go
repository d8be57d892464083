// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pcd8544

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"periph.io/x/conn/v3/display"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// Graphics is a pixel addressable view of the display, layered on a Dev.
//
// Drawing happens in an in-memory framebuffer with the exact DDRAM layout
// (an image1bit.VerticalLSB: 6 bands of 84 bytes, LSB on top) and only
// reaches the panel on Flush. SetPixel and Clear never touch the hardware,
// so arbitrary amounts of drawing cost a single 504 byte transfer.
//
// Graphics implements display.Drawer, which makes the display a target for
// image/draw and any library producing an image.Image.
type Graphics struct {
	d  *Dev
	fb *image1bit.VerticalLSB
}

// NewGraphics returns a framebuffer view over d. The buffer starts blank.
func NewGraphics(d *Dev) *Graphics {
	return &Graphics{
		d:  d,
		fb: image1bit.NewVerticalLSB(image.Rect(0, 0, Width, Height)),
	}
}

func (g *Graphics) String() string {
	return fmt.Sprintf("pcd8544.Graphics{%s, %dx%d}", g.d.c, Width, Height)
}

// ColorModel implements display.Drawer. It is the one bit color model of
// image1bit.Bit.
func (g *Graphics) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds implements display.Drawer. Min is guaranteed to be {0, 0}.
func (g *Graphics) Bounds() image.Rectangle {
	return image.Rect(0, 0, Width, Height)
}

// Draw implements display.Drawer. It rasterizes src into the framebuffer
// and flushes; once it returns, the panel is updated.
func (g *Graphics) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	if img, ok := src.(*image1bit.VerticalLSB); ok && r == g.Bounds() && img.Rect == g.Bounds() && sp.X == 0 && sp.Y == 0 {
		// Exact size, full frame, matching encoding: skip the rasterizer.
		copy(g.fb.Pix, img.Pix)
	} else {
		draw.Src.Draw(g.fb, r, src, sp)
	}
	return g.Flush()
}

// Write accepts a raw framebuffer, one byte per 8 vertical pixels in DDRAM
// order, and sends it to the panel. It accepts the content of
// image1bit.VerticalLSB.Pix.
func (g *Graphics) Write(pixels []byte) (int, error) {
	if len(pixels) != ddramSize {
		return 0, fmt.Errorf("pcd8544: invalid pixel stream length; expected %d bytes, got %d bytes", ddramSize, len(pixels))
	}
	copy(g.fb.Pix, pixels)
	if err := g.Flush(); err != nil {
		return 0, err
	}
	return len(pixels), nil
}

// SetPixel sets or clears a single pixel in the framebuffer. Off-screen
// coordinates are silently ignored; drawing code routinely clips and that
// should not be fatal. No hardware I/O happens until Flush.
func (g *Graphics) SetPixel(x, y int, on bool) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return
	}
	mask := byte(1 << (y % 8))
	if on {
		g.fb.Pix[(y/8)*Width+x] |= mask
	} else {
		g.fb.Pix[(y/8)*Width+x] &^= mask
	}
}

// Pixel returns the framebuffer state of a single pixel. Off-screen
// coordinates read as off.
func (g *Graphics) Pixel(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	return g.fb.Pix[(y/8)*Width+x]&(1<<(y%8)) != 0
}

// Clear fills the framebuffer with all pixels on or off. No hardware I/O
// happens until Flush.
func (g *Graphics) Clear(on bool) {
	b := byte(0x00)
	if on {
		b = 0xff
	}
	for i := range g.fb.Pix {
		g.fb.Pix[i] = b
	}
}

// Flush homes the hardware address counter and streams the whole
// framebuffer to DDRAM in one pass, bank by bank, columns within a bank,
// the exact order the auto-incrementing address counter expects under
// horizontal addressing.
func (g *Graphics) Flush() error {
	if err := g.d.SetXAddress(0); err != nil {
		return err
	}
	if err := g.d.SetYAddress(0); err != nil {
		return err
	}
	return g.d.WriteData(g.fb.Pix)
}

// Halt implements conn.Resource.
func (g *Graphics) Halt() error {
	return g.d.Halt()
}

var _ display.Drawer = &Graphics{}
