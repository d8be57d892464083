// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pcd8544

import (
	"errors"
	"fmt"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
)

// BitBangConn is a half duplex, write-only serial transport over two GPIO
// lines, clock and data in. The PCD8544 never drives data back, so this is
// all the chip needs and it spares a hardware SPI port.
//
// Bits go out MSB first; the data line is held stable while the clock
// pulses high then low, which is what the chip samples on.
type BitBangConn struct {
	clk gpio.PinOut
	din gpio.PinOut
	// halfCycle stretches each clock phase. Zero on most boards; only hosts
	// that can toggle GPIOs faster than the chip's 4MHz limit need it.
	halfCycle time.Duration
}

// NewBitBangConn returns a transport clocking bytes out over clk and din.
//
// halfCycle is the hold time per clock phase; pass 0 to run at whatever
// speed the GPIOs allow, which is the right choice unless the host out-runs
// the chip's 4Mbit/s maximum.
//
// The clock line is driven low as part of construction; the chip expects the
// first rising edge to be a bit clock.
func NewBitBangConn(clk, din gpio.PinOut, halfCycle time.Duration) (*BitBangConn, error) {
	if clk == nil || din == nil {
		return nil, errors.New("pcd8544: clk and din pins are required")
	}
	if err := clk.Out(gpio.Low); err != nil {
		return nil, err
	}
	return &BitBangConn{clk: clk, din: din, halfCycle: halfCycle}, nil
}

func (b *BitBangConn) String() string {
	return fmt.Sprintf("pcd8544.BitBangConn{%s, %s}", b.clk, b.din)
}

// Tx implements conn.Conn. r must be empty: the wire is write-only.
//
// On a pin failure the transfer stops immediately; some bits of the current
// byte may already be on the wire. The caller only learns that the transfer
// failed, not how far it got, and should Reset the display.
func (b *BitBangConn) Tx(w, r []byte) error {
	if len(r) != 0 {
		return errors.New("pcd8544: BitBangConn is write-only")
	}
	for _, v := range w {
		for bit := 0; bit < 8; bit++ {
			if err := b.writeBit(v&0x80 != 0); err != nil {
				return err
			}
			v <<= 1
		}
	}
	return nil
}

// Duplex implements conn.Conn.
func (b *BitBangConn) Duplex() conn.Duplex {
	return conn.Half
}

func (b *BitBangConn) writeBit(high bool) error {
	if err := b.din.Out(gpio.Level(high)); err != nil {
		return err
	}
	if err := b.clk.Out(gpio.High); err != nil {
		return err
	}
	if b.halfCycle != 0 {
		time.Sleep(b.halfCycle)
	}
	if err := b.clk.Out(gpio.Low); err != nil {
		return err
	}
	if b.halfCycle != 0 {
		time.Sleep(b.halfCycle)
	}
	return nil
}

var _ conn.Conn = &BitBangConn{}
