// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pcd8544

import "fmt"

// Display geometry. The DDRAM is organized as 6 banks of 84 columns; one
// byte covers an 8 pixel tall column slice within a bank, LSB on top.
const (
	Width  = 84
	Height = 48

	banks     = Height / 8
	ddramSize = Width * banks
)

// DisplayMode selects how DDRAM content is mapped to the panel.
type DisplayMode byte

// Valid display modes. The two mode bits D and E are not adjacent in the
// command byte, hence the odd looking values.
const (
	// DisplayBlank turns all pixels off regardless of DDRAM content.
	DisplayBlank DisplayMode = 0b000
	// Normal shows DDRAM content, a set bit is a dark pixel.
	Normal DisplayMode = 0b100
	// AllSegmentsOn turns all pixels on regardless of DDRAM content.
	AllSegmentsOn DisplayMode = 0b001
	// InverseVideo shows DDRAM content inverted.
	InverseVideo DisplayMode = 0b101
)

// TemperatureCoefficient selects how much the chip raises the LCD drive
// voltage as temperature drops below 27°C. LCD fluid gets more viscous when
// cold and needs more voltage for the same contrast.
type TemperatureCoefficient byte

// Valid temperature coefficients.
const (
	TC0 TemperatureCoefficient = iota // +1mV/K
	TC1                              // +9mV/K
	TC2                              // +17mV/K
	TC3                              // +24mV/K
)

// BiasMode is the bias voltage system matching the multiplex ratio of the
// LCD glass. The panel's mux ratio is a property of the glass, not of the
// controller; the common Nokia 5110 glass is 1:48.
type BiasMode byte

// Valid bias modes.
const (
	Bias1To100 BiasMode = iota
	Bias1To80
	Bias1To65
	Bias1To48
	Bias1To40
	Bias1To24
	Bias1To18
	Bias1To10
)

// Instruction is a single encoded PCD8544 command byte together with the
// instruction set it must be decoded under. The chip has two mutually
// exclusive command decoders, basic and extended, selected through the H bit
// of the function set register; Dev.WriteCommand uses Extended() to send the
// matching function set byte ahead of the command so callers never have to
// track the chip's current mode.
type Instruction struct {
	opcode   byte
	extended bool
}

// Byte returns the wire encoding of the instruction.
func (i Instruction) Byte() byte {
	return i.opcode
}

// Extended reports whether the instruction is only decoded under the
// extended instruction set. NOP and FunctionSet are decoded under both and
// report false.
func (i Instruction) Extended() bool {
	return i.extended
}

// NOP returns the no-operation instruction.
func NOP() Instruction {
	return Instruction{opcode: 0x00}
}

// FunctionSet returns the function set instruction, the chip's primary mode
// register: power down, vertical (instead of horizontal) DDRAM addressing,
// and extended (instead of basic) instruction set selection. The three flags
// share one register on the chip, so all of them are encoded on every write.
func FunctionSet(powerDown, vertical, extended bool) Instruction {
	op := byte(0x20)
	if powerDown {
		op |= 0x04
	}
	if vertical {
		op |= 0x02
	}
	if extended {
		op |= 0x01
	}
	return Instruction{opcode: op}
}

// Mode returns the display configuration instruction.
func Mode(m DisplayMode) Instruction {
	return Instruction{opcode: 0x08 | byte(m)}
}

// YAddress returns the instruction setting the DDRAM bank (Y address),
// 0 <= bank < 6.
//
// An out of range bank is a bug in the caller's arithmetic, not a runtime
// condition, and panics. Dev.SetYAddress range-reduces before encoding.
func YAddress(bank uint8) Instruction {
	if bank >= banks {
		panic(fmt.Sprintf("pcd8544: Y address %d out of range", bank))
	}
	return Instruction{opcode: 0x40 | bank}
}

// XAddress returns the instruction setting the DDRAM column (X address),
// 0 <= col <= 84.
//
// An out of range column panics, same as YAddress. Dev.SetXAddress
// range-reduces before encoding.
func XAddress(col uint8) Instruction {
	if col > Width {
		panic(fmt.Sprintf("pcd8544: X address %d out of range", col))
	}
	return Instruction{opcode: 0x80 | col}
}

// TempCoefficient returns the temperature coefficient instruction.
// Extended instruction set only.
func TempCoefficient(tc TemperatureCoefficient) Instruction {
	return Instruction{opcode: 0x04 | byte(tc&0x03), extended: true}
}

// Bias returns the bias system instruction. Extended instruction set only.
func Bias(b BiasMode) Instruction {
	return Instruction{opcode: 0x10 | byte(b&0x07), extended: true}
}

// Contrast returns the Vop (operating voltage) instruction which sets the
// display contrast, 0..127. Values above 127 are masked to 7 bits, not
// saturated: the top bit is the opcode. Extended instruction set only.
//
// Vop directly drives the LCD segment voltage. Do not push it much above
// mid-range in cold environments, the temperature compensation adds voltage
// on top and the glass is damaged above roughly 8.5V.
func Contrast(vop uint8) Instruction {
	return Instruction{opcode: 0x80 | (vop & 0x7f), extended: true}
}
