// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pcd8544

import (
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// Opts holds the board specific tuning of the display.
type Opts struct {
	// Contrast is the initial Vop value, 0..127. Values above 127 are masked
	// to 7 bits.
	Contrast uint8
	// TempCoefficient is the temperature compensation curve.
	TempCoefficient TemperatureCoefficient
	// Bias must match the multiplex ratio of the LCD glass.
	Bias BiasMode
	// BacklightActiveHigh marks boards whose backlight transistor switches on
	// a high LIGHT level. The common breakouts switch the backlight on by
	// pulling LIGHT low, which is the default.
	BacklightActiveHigh bool
}

// DefaultOpts works well on most Nokia 5110 modules.
var DefaultOpts = Opts{
	Contrast:        65,
	TempCoefficient: TC2,
	Bias:            Bias1To48,
}

// SparkfunRedOpts is tuned for the red Sparkfun breakout.
var SparkfunRedOpts = Opts{
	Contrast:        49,
	TempCoefficient: TC2,
	Bias:            Bias1To48,
}

// SparkfunBlueOpts is tuned for the blue Sparkfun breakout.
var SparkfunBlueOpts = Opts{
	Contrast:        56,
	TempCoefficient: TC2,
	Bias:            Bias1To48,
}

// Dev is an open handle to a PCD8544.
//
// The chip is write-only, so Dev keeps a shadow copy of the function set
// flags and of the DDRAM address counter. Every command goes through
// WriteCommand and every data byte through WriteData; those two functions
// are the only places shadow state changes, which is what keeps it in sync
// with the hardware.
//
// A Dev must not be shared between goroutines without external locking, and
// the pins and transport passed at construction must not be used for
// anything else for the lifetime of the Dev.
type Dev struct {
	c     conn.Conn
	dc    gpio.PinOut
	ce    gpio.PinOut
	rst   gpio.PinOut
	light gpio.PinOut
	opts  Opts

	// Shadow of the chip's function set register.
	powerDown bool
	vertical  bool
	extended  bool
	// Shadow of the chip's DDRAM address counter.
	x uint8
	y uint8
}

// New returns a Dev driving a PCD8544 over an arbitrary byte transport.
//
// c transmits bytes MSB first; dc, ce and rst are the data/command, chip
// enable and reset lines. light drives the backlight and may be nil if the
// backlight is wired elsewhere.
//
// The returned Dev holds the chip in reset. Call Reset to bring it up; the
// datasheet requires a reset within 100ms of power application.
func New(c conn.Conn, dc, ce, rst, light gpio.PinOut, opts *Opts) (*Dev, error) {
	if dc == nil || ce == nil || rst == nil {
		return nil, fmt.Errorf("pcd8544: dc, ce and rst pins are required")
	}
	if opts == nil {
		opts = &DefaultOpts
	}
	d := &Dev{c: c, dc: dc, ce: ce, rst: rst, light: light, opts: *opts}
	// Deselect the chip and assert reset until Reset releases it.
	if err := ce.Out(gpio.High); err != nil {
		return nil, err
	}
	if err := rst.Out(gpio.Low); err != nil {
		return nil, err
	}
	return d, nil
}

// NewSPI returns a Dev driving a PCD8544 over a hardware SPI port.
//
// Connect SCLK to the port's clock, DIN to MOSI. The chip has no MISO. CE is
// toggled explicitly by the driver rather than by the port, matching boards
// where CE is wired to a plain GPIO.
func NewSPI(p spi.Port, dc, ce, rst, light gpio.PinOut, opts *Opts) (*Dev, error) {
	// 4Mbit/s is the maximum serial clock rate of the chip.
	c, err := p.Connect(4*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("pcd8544: %w", err)
	}
	return New(c, dc, ce, rst, light, opts)
}

// NewBitBang returns a Dev driving a PCD8544 over two bit-banged GPIO lines,
// for boards where no SPI peripheral is available or conveniently routed.
func NewBitBang(clk, din, dc, ce, rst, light gpio.PinOut, opts *Opts) (*Dev, error) {
	c, err := NewBitBangConn(clk, din, 0)
	if err != nil {
		return nil, err
	}
	return New(c, dc, ce, rst, light, opts)
}

func (d *Dev) String() string {
	return fmt.Sprintf("pcd8544.Dev{%s, %s}", d.c, d.dc)
}

// Reset pulses the RST line and reprograms the chip: extended mode on,
// contrast, temperature coefficient and bias from Opts, extended mode off,
// normal display mode, then a full DDRAM clear.
//
// Reset must be called once after New. It can be called again at any time,
// and is the documented recovery path after an I/O error: a failed
// multi-step operation can leave the shadow state out of sync with the
// hardware, and only a full reset re-establishes it.
func (d *Dev) Reset() error {
	if err := d.rst.Out(gpio.Low); err != nil {
		return err
	}
	if err := d.rst.Out(gpio.High); err != nil {
		return err
	}
	d.powerDown = false
	d.vertical = false
	d.extended = false
	d.x = 0
	d.y = 0
	seq := []byte{
		FunctionSet(false, false, true).Byte(),
		Contrast(d.opts.Contrast).Byte(),
		TempCoefficient(d.opts.TempCoefficient).Byte(),
		Bias(d.opts.Bias).Byte(),
		FunctionSet(false, false, false).Byte(),
		Mode(Normal).Byte(),
	}
	if err := d.sendCommands(seq); err != nil {
		return err
	}
	return d.Clear()
}

// Clear zeroes the entire 504 byte DDRAM and moves the address counter back
// to (0, 0).
func (d *Dev) Clear() error {
	if err := d.WriteData(make([]byte, ddramSize)); err != nil {
		return err
	}
	if err := d.SetXAddress(0); err != nil {
		return err
	}
	return d.SetYAddress(0)
}

// WriteCommand sends a single instruction.
//
// Every instruction is preceded by a function set byte carrying the current
// power down and addressing flags plus the instruction set bit the
// instruction requires, so the chip is always in the right decoding mode
// without the caller tracking mode transitions.
func (d *Dev) WriteCommand(ins Instruction) error {
	err := d.sendCommands([]byte{
		FunctionSet(d.powerDown, d.vertical, ins.Extended()).Byte(),
		ins.Byte(),
	})
	if err != nil {
		return err
	}
	d.extended = ins.Extended()
	return nil
}

// WriteData sends bytes straight into DDRAM at the current address counter
// and advances the shadow cursor accordingly: X increments modulo 84 per
// byte, Y increments modulo 6 on X wrap-around, mirroring the chip's
// auto-incrementing address counter in horizontal addressing mode.
func (d *Dev) WriteData(data []byte) error {
	if err := d.dc.Out(gpio.High); err != nil {
		return err
	}
	if err := d.send(data); err != nil {
		return err
	}
	d.advance(len(data))
	return nil
}

// Position returns the shadow copy of the DDRAM address counter as
// (column, bank).
func (d *Dev) Position() (x, y uint8) {
	return d.x, d.y
}

// SetXAddress moves the DDRAM column address. x is reduced modulo 84.
func (d *Dev) SetXAddress(x uint8) error {
	x %= Width
	if err := d.WriteCommand(XAddress(x)); err != nil {
		return err
	}
	d.x = x
	return nil
}

// SetYAddress moves the DDRAM bank address. y is reduced modulo 6.
func (d *Dev) SetYAddress(y uint8) error {
	y %= banks
	if err := d.WriteCommand(YAddress(y)); err != nil {
		return err
	}
	d.y = y
	return nil
}

// SetPowerDown puts the chip in or takes it out of low power standby. DDRAM
// content is preserved.
func (d *Dev) SetPowerDown(powerDown bool) error {
	d.powerDown = powerDown
	return d.writeFunctionSet()
}

// SetVerticalAddressing switches the DDRAM auto-increment between horizontal
// (bank by bank, the default) and vertical (column by column) order.
//
// The shadow cursor only models horizontal addressing; Clear and the
// graphics layer assume it.
func (d *Dev) SetVerticalAddressing(vertical bool) error {
	d.vertical = vertical
	return d.writeFunctionSet()
}

// EnableExtendedCommands switches the chip's instruction decoder. There is
// rarely a reason to call this directly since WriteCommand selects the right
// mode per instruction.
func (d *Dev) EnableExtendedCommands(extended bool) error {
	d.extended = extended
	return d.writeFunctionSet()
}

// SetContrast sets Vop, 0..127. Values above 127 are masked to 7 bits.
func (d *Dev) SetContrast(contrast uint8) error {
	return d.WriteCommand(Contrast(contrast))
}

// SetBiasMode sets the bias voltage system. Fixed at Bias1To48 for the
// standard Nokia 5110 glass, so this is rarely needed after Reset.
func (d *Dev) SetBiasMode(bias BiasMode) error {
	return d.WriteCommand(Bias(bias))
}

// SetTemperatureCoefficient selects the temperature compensation curve.
func (d *Dev) SetTemperatureCoefficient(tc TemperatureCoefficient) error {
	return d.WriteCommand(TempCoefficient(tc))
}

// SetDisplayMode sets how DDRAM is mapped to the panel (normal, inverted,
// all on, all off).
func (d *Dev) SetDisplayMode(mode DisplayMode) error {
	return d.WriteCommand(Mode(mode))
}

// SetLight switches the backlight. A nil light pin is a no-op, for boards
// where the backlight is controlled elsewhere (e.g. by PWM).
func (d *Dev) SetLight(on bool) error {
	if d.light == nil {
		return nil
	}
	// Backlight is active low on the common breakouts.
	return d.light.Out(gpio.Level(on == d.opts.BacklightActiveHigh))
}

// Backlight implements display.DisplayBacklight. Any non-zero intensity
// turns the backlight on; the LIGHT line is a plain switch.
func (d *Dev) Backlight(intensity display.Intensity) error {
	return d.SetLight(intensity > 0)
}

// Contrast implements display.DisplayContrast.
func (d *Dev) Contrast(contrast display.Contrast) error {
	return d.SetContrast(uint8(contrast))
}

// Halt implements conn.Resource. It blanks the display, switches the
// backlight off and puts the chip in power down.
func (d *Dev) Halt() error {
	if err := d.SetDisplayMode(DisplayBlank); err != nil {
		return err
	}
	if err := d.SetLight(false); err != nil {
		return err
	}
	return d.SetPowerDown(true)
}

// writeFunctionSet pushes the full shadow flag state to the chip. The chip
// has a single combined function set register, so a partial update is not
// possible; all three flags go out on every change.
func (d *Dev) writeFunctionSet() error {
	return d.sendCommands([]byte{
		FunctionSet(d.powerDown, d.vertical, d.extended).Byte(),
	})
}

func (d *Dev) sendCommands(cmds []byte) error {
	if err := d.dc.Out(gpio.Low); err != nil {
		return err
	}
	return d.send(cmds)
}

// send frames a transfer with the CE line: the chip only listens while CE is
// low.
func (d *Dev) send(b []byte) error {
	if err := d.ce.Out(gpio.Low); err != nil {
		return err
	}
	if err := d.c.Tx(b, nil); err != nil {
		return err
	}
	return d.ce.Out(gpio.High)
}

// advance moves the shadow cursor as the chip's address counter does after n
// data bytes.
func (d *Dev) advance(n int) {
	p := (int(d.y)*Width + int(d.x) + n) % ddramSize
	d.x = uint8(p % Width)
	d.y = uint8(p / Width)
}

var _ conn.Resource = &Dev{}
var _ display.DisplayBacklight = &Dev{}
var _ display.DisplayContrast = &Dev{}
