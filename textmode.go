// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pcd8544

import (
	"fmt"
	"io"

	"periph.io/x/conn/v3/display"
)

// Text grid dimensions: the 6x8 font divides the 84x48 panel into 14
// columns of 6 rows.
const (
	TextCols = Width / cellWidth
	TextRows = banks

	cellWidth = 6
)

// TextMode is a teletype style character view of the display, layered on a
// Dev. It keeps its own cursor in character cells (column 0..13, row 0..5),
// in lockstep with the Dev's pixel cursor by construction: a text column
// always starts at pixel column col*6.
//
// Writing past the last column wraps to the next row; writing past the last
// row wraps back to the top, overwriting from there. The viewport is fixed,
// nothing scrolls.
//
// TextMode implements display.TextDisplay and io.Writer, so fmt.Fprintf
// prints straight to the screen.
type TextMode struct {
	d   *Dev
	col uint8
	row uint8
}

// NewTextMode returns a text view over d. The zero cursor assumes the
// display was just Reset; call Clear otherwise.
func NewTextMode(d *Dev) *TextMode {
	return &TextMode{d: d}
}

func (t *TextMode) String() string {
	return fmt.Sprintf("pcd8544.TextMode{%s, %dx%d}", t.d.c, TextCols, TextRows)
}

// Col returns the cursor column, 0..13.
func (t *TextMode) Col() uint8 {
	return t.col
}

// Row returns the cursor row, 0..5.
func (t *TextMode) Row() uint8 {
	return t.row
}

// SetCol moves the cursor to the given column. Out of range columns are
// silently ignored, the same policy as off-screen pixels in the graphics
// view.
func (t *TextMode) SetCol(col uint8) error {
	if col >= TextCols {
		return nil
	}
	if err := t.d.SetXAddress(col * cellWidth); err != nil {
		return err
	}
	t.col = col
	return nil
}

// SetRow moves the cursor to the given row. Out of range rows are silently
// ignored.
func (t *TextMode) SetRow(row uint8) error {
	if row >= TextRows {
		return nil
	}
	if err := t.d.SetYAddress(row); err != nil {
		return err
	}
	t.row = row
	return nil
}

// SetPosition moves the cursor to (col, row). Each coordinate is silently
// ignored independently when out of range.
func (t *TextMode) SetPosition(col, row uint8) error {
	if err := t.SetCol(col); err != nil {
		return err
	}
	return t.SetRow(row)
}

// Write renders p in the built-in font at the cursor, advancing and
// wrapping as it goes. Two control characters are interpreted: '\r' returns
// the cursor to column 0 and '\n' erases to the end of the row, then moves
// to the next one.
//
// Write implements io.Writer. n is the number of bytes of p fully processed
// before any error.
func (t *TextMode) Write(p []byte) (n int, err error) {
	for i, c := range string(p) {
		switch c {
		case '\r':
			err = t.SetCol(0)
		case '\n':
			err = t.lineFeed()
		default:
			err = t.writeCell(c)
		}
		if err != nil {
			return i, err
		}
	}
	return len(p), nil
}

// WriteString implements io.StringWriter.
func (t *TextMode) WriteString(s string) (int, error) {
	return t.Write([]byte(s))
}

// Clear blanks the whole screen and homes the cursor.
func (t *TextMode) Clear() error {
	t.col = 0
	t.row = 0
	// Dev.Clear also homes the hardware address counter.
	return t.d.Clear()
}

// Home implements display.TextDisplay.
func (t *TextMode) Home() error {
	return t.SetPosition(0, 0)
}

// Cols implements display.TextDisplay.
func (t *TextMode) Cols() int {
	return TextCols
}

// Rows implements display.TextDisplay.
func (t *TextMode) Rows() int {
	return TextRows
}

// MinCol implements display.TextDisplay. Coordinates are zero based.
func (t *TextMode) MinCol() int {
	return 0
}

// MinRow implements display.TextDisplay. Coordinates are zero based.
func (t *TextMode) MinRow() int {
	return 0
}

// MoveTo implements display.TextDisplay. Unlike SetPosition it reports out
// of range coordinates as an error, as the interface requires.
func (t *TextMode) MoveTo(row, col int) error {
	if row < 0 || row >= TextRows || col < 0 || col >= TextCols {
		return fmt.Errorf("pcd8544: MoveTo(%d, %d) out of range", row, col)
	}
	return t.SetPosition(uint8(col), uint8(row))
}

// Move implements display.TextDisplay. Forward wraps like writing does;
// Backward stops at the home position. Up and Down are not supported.
func (t *TextMode) Move(dir display.CursorDirection) error {
	cell := int(t.row)*TextCols + int(t.col)
	switch dir {
	case display.Forward:
		cell = (cell + 1) % (TextCols * TextRows)
	case display.Backward:
		if cell == 0 {
			return nil
		}
		cell--
	default:
		return fmt.Errorf("pcd8544: %w", display.ErrNotImplemented)
	}
	return t.SetPosition(uint8(cell%TextCols), uint8(cell/TextCols))
}

// Cursor implements display.TextDisplay. The PCD8544 has no hardware text
// cursor.
func (t *TextMode) Cursor(modes ...display.CursorMode) error {
	return fmt.Errorf("pcd8544: %w", display.ErrNotImplemented)
}

// AutoScroll implements display.TextDisplay. The viewport is fixed; rows
// wrap to the top instead of scrolling.
func (t *TextMode) AutoScroll(enabled bool) error {
	return fmt.Errorf("pcd8544: %w", display.ErrNotImplemented)
}

// Display implements display.TextDisplay by blanking or restoring the
// panel. DDRAM content is preserved while off.
func (t *TextMode) Display(on bool) error {
	if on {
		return t.d.SetDisplayMode(Normal)
	}
	return t.d.SetDisplayMode(DisplayBlank)
}

// Backlight implements display.DisplayBacklight.
func (t *TextMode) Backlight(intensity display.Intensity) error {
	return t.d.Backlight(intensity)
}

// Halt implements conn.Resource.
func (t *TextMode) Halt() error {
	return t.d.Halt()
}

// writeCell sends one 6 byte character cell, 5 font columns plus the blank
// separator, and advances the cursor.
func (t *TextMode) writeCell(c rune) error {
	g := glyph(c)
	cell := [cellWidth]byte{g[0], g[1], g[2], g[3], g[4]}
	if err := t.d.WriteData(cell[:]); err != nil {
		return err
	}
	t.advance()
	return nil
}

// lineFeed zero-fills the rest of the row, then wraps to the next one. The
// data bytes both erase stale content and carry the hardware address counter
// to the start of the next bank, so no addressing command is needed.
func (t *TextMode) lineFeed() error {
	pad := make([]byte, int(TextCols-t.col)*cellWidth)
	if err := t.d.WriteData(pad); err != nil {
		return err
	}
	t.col = TextCols - 1
	t.advance()
	return nil
}

// advance is the only place the text cursor moves forward, mirroring the
// hardware address counter the same way Dev.advance does at the pixel
// level.
func (t *TextMode) advance() {
	t.col++
	if t.col == TextCols {
		t.col = 0
		t.row = (t.row + 1) % TextRows
	}
}

var _ display.TextDisplay = &TextMode{}
var _ display.DisplayBacklight = &TextMode{}
var _ io.Writer = &TextMode{}
var _ io.StringWriter = &TextMode{}
