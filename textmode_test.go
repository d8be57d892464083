// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pcd8544

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/display/displaytest"
)

func testTextMode(t *testing.T) (*TextMode, *fakeLink) {
	d, link, _ := testDev(t, nil)
	if err := d.Reset(); err != nil {
		t.Fatal(err)
	}
	link.ops = nil
	return NewTextMode(d), link
}

func TestTextModeGeometry(t *testing.T) {
	tm, _ := testTextMode(t)
	if tm.Cols() != 14 || tm.Rows() != 6 {
		t.Errorf("grid = %dx%d, want 14x6", tm.Cols(), tm.Rows())
	}
	if tm.MinCol() != 0 || tm.MinRow() != 0 {
		t.Error("coordinates should be zero based")
	}
}

func TestTextModeWrap(t *testing.T) {
	tm, _ := testTextMode(t)
	// 14 characters exactly fill a row; the cursor lands on the next one.
	if _, err := tm.WriteString(strings.Repeat("x", 14)); err != nil {
		t.Fatal(err)
	}
	if tm.Col() != 0 || tm.Row() != 1 {
		t.Errorf("cursor = (%d, %d), want (0, 1)", tm.Col(), tm.Row())
	}
	// Five more full rows wrap back to the top.
	if _, err := tm.WriteString(strings.Repeat("x", 70)); err != nil {
		t.Fatal(err)
	}
	if tm.Col() != 0 || tm.Row() != 0 {
		t.Errorf("cursor = (%d, %d), want (0, 0)", tm.Col(), tm.Row())
	}
}

func TestTextModeCarriageReturn(t *testing.T) {
	tm, link := testTextMode(t)
	if _, err := tm.WriteString("abc\r"); err != nil {
		t.Fatal(err)
	}
	if tm.Col() != 0 || tm.Row() != 0 {
		t.Errorf("cursor = (%d, %d), want (0, 0)", tm.Col(), tm.Row())
	}
	// Three character cells, then a single X address command back to pixel
	// column 0.
	last := link.ops[len(link.ops)-1]
	if !last.cmd || last.data[1] != 0x80 {
		t.Errorf("expected X address reset, got % 02x", last.data)
	}
}

func TestTextModeLineFeed(t *testing.T) {
	tm, link := testTextMode(t)
	if _, err := tm.WriteString("ab\n"); err != nil {
		t.Fatal(err)
	}
	if tm.Col() != 0 || tm.Row() != 1 {
		t.Errorf("cursor = (%d, %d), want (0, 1)", tm.Col(), tm.Row())
	}
	// The line feed pads the remaining 12 cells with blanks, which also
	// carries the hardware address counter to the next bank.
	pad := link.ops[len(link.ops)-1]
	if pad.cmd || len(pad.data) != 12*6 {
		t.Errorf("expected 72 blank data bytes, got cmd=%t len=%d", pad.cmd, len(pad.data))
	}
	for _, b := range pad.data {
		if b != 0 {
			t.Fatalf("line feed padding should be blank, got % 02x", pad.data)
		}
	}
	if x, y := tm.d.Position(); x != 0 || y != 1 {
		t.Errorf("Position() = (%d, %d), want (0, 1)", x, y)
	}
}

func TestTextModeLineFeedAtLastRow(t *testing.T) {
	tm, _ := testTextMode(t)
	if err := tm.SetRow(5); err != nil {
		t.Fatal(err)
	}
	if _, err := tm.WriteString("\n"); err != nil {
		t.Fatal(err)
	}
	if tm.Col() != 0 || tm.Row() != 0 {
		t.Errorf("cursor = (%d, %d), want (0, 0)", tm.Col(), tm.Row())
	}
}

func TestTextModeSetPosition(t *testing.T) {
	tm, _ := testTextMode(t)
	if err := tm.SetPosition(3, 2); err != nil {
		t.Fatal(err)
	}
	if tm.Col() != 3 || tm.Row() != 2 {
		t.Errorf("cursor = (%d, %d), want (3, 2)", tm.Col(), tm.Row())
	}
	// The pixel cursor tracks the text cursor.
	if x, y := tm.d.Position(); x != 18 || y != 2 {
		t.Errorf("Position() = (%d, %d), want (18, 2)", x, y)
	}
	// Out of range coordinates are ignored, not clamped.
	if err := tm.SetPosition(14, 6); err != nil {
		t.Fatal(err)
	}
	if tm.Col() != 3 || tm.Row() != 2 {
		t.Errorf("cursor = (%d, %d) after out of range SetPosition, want (3, 2)", tm.Col(), tm.Row())
	}
}

func TestTextModeMoveTo(t *testing.T) {
	tm, _ := testTextMode(t)
	if err := tm.MoveTo(1, 4); err != nil {
		t.Fatal(err)
	}
	if tm.Col() != 4 || tm.Row() != 1 {
		t.Errorf("cursor = (%d, %d), want (4, 1)", tm.Col(), tm.Row())
	}
	if err := tm.MoveTo(6, 0); err == nil {
		t.Error("MoveTo() past the last row should fail")
	}
	if err := tm.MoveTo(0, -1); err == nil {
		t.Error("MoveTo() with a negative column should fail")
	}
}

func TestTextModeMove(t *testing.T) {
	tm, _ := testTextMode(t)
	if err := tm.Move(display.Backward); err != nil {
		t.Fatal(err)
	}
	if tm.Col() != 0 || tm.Row() != 0 {
		t.Error("Backward at home should stay at home")
	}
	if err := tm.Move(display.Forward); err != nil {
		t.Fatal(err)
	}
	if tm.Col() != 1 || tm.Row() != 0 {
		t.Errorf("cursor = (%d, %d), want (1, 0)", tm.Col(), tm.Row())
	}
	if err := tm.Move(display.Up); !errors.Is(err, display.ErrNotImplemented) {
		t.Errorf("Move(Up) = %v, want ErrNotImplemented", err)
	}
}

func TestTextModeUnknownGlyph(t *testing.T) {
	tm, link := testTextMode(t)
	if _, err := tm.WriteString("\x01"); err != nil {
		t.Fatal(err)
	}
	cell := link.ops[len(link.ops)-1]
	want := []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0x00}
	if fmt.Sprintf("% 02x", cell.data) != fmt.Sprintf("% 02x", want) {
		t.Errorf("unknown glyph cell = % 02x, want % 02x", cell.data, want)
	}
}

func TestTextModeFprintf(t *testing.T) {
	tm, _ := testTextMode(t)
	if _, err := fmt.Fprintf(tm, "T=%d%s", 21, "°"); err != nil {
		t.Fatal(err)
	}
	if tm.Col() != 5 || tm.Row() != 0 {
		t.Errorf("cursor = (%d, %d), want (5, 0)", tm.Col(), tm.Row())
	}
}

func TestTextModeInterface(t *testing.T) {
	tm, _ := testTextMode(t)
	defer func() { _ = tm.Halt() }()
	for _, err := range displaytest.TestTextDisplay(tm, false) {
		if !errors.Is(err, display.ErrNotImplemented) {
			t.Error(err)
		}
	}
}
