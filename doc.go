// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package pcd8544 controls the PCD8544 48x84 monochrome LCD controller, best
// known from the Nokia 5110 and 3310 phone displays.
//
// The chip is driven over a write-only serial link (SPI compatible, MSB
// first) plus a handful of GPIO lines: D/C selects between command and
// display data, CE gates the serial link, RST performs a hardware reset and
// an optional LIGHT line switches the backlight. Because nothing can be read
// back from the chip, the driver keeps a shadow copy of the chip's mode flags
// and DDRAM address counter and funnels every transfer through a single code
// path so the shadow state cannot drift.
//
// The display memory is 504 bytes: 6 horizontal banks of 84 columns, one
// byte per 8 pixel tall column slice, least significant bit on top. This is
// the same layout as image1bit.VerticalLSB, which the graphics layer uses as
// its framebuffer type.
//
// Two optional views layer on top of the core driver and can be combined
// freely:
//
//   - TextMode writes a built-in 6x8 font on a 14x6 character grid and
//     implements display.TextDisplay as well as io.Writer, so fmt.Fprintf
//     can print straight to the screen.
//   - Graphics keeps an in-memory framebuffer and implements display.Drawer
//     for use with the image/draw and golang.org/x/image packages.
//
// The serial link can be a real SPI port (NewSPI), two bit-banged GPIO lines
// (NewBitBang) or any conn.Conn (New), which is handy for tests.
//
// # Datasheet
//
// https://www.sparkfun.com/datasheets/LCD/Monochrome/Nokia5110.pdf
package pcd8544
