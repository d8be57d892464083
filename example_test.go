// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pcd8544_test

import (
	"fmt"
	"image"
	"image/draw"
	"log"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/pcd8544"
	"periph.io/x/devices/v3/ssd1306/image1bit"
	"periph.io/x/host/v3"
)

func Example() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	// Use spireg SPI bus registry to find the first available SPI bus.
	b, err := spireg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer b.Close()

	dc := gpioreg.ByName("25")
	ce := gpioreg.ByName("8")
	rst := gpioreg.ByName("24")
	light := gpioreg.ByName("23")

	dev, err := pcd8544.NewSPI(b, dc, ce, rst, light, &pcd8544.DefaultOpts)
	if err != nil {
		log.Fatalf("failed to initialize driver: %v", err)
	}
	if err := dev.Reset(); err != nil {
		log.Fatalf("failed to initialize display: %v", err)
	}

	lcd := pcd8544.NewTextMode(dev)
	fmt.Fprintf(lcd, "T=%d%sC\n", 21, "°")
	if _, err := lcd.WriteString("Hello!"); err != nil {
		log.Fatal(err)
	}
}

func Example_graphics() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	b, err := spireg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer b.Close()

	dev, err := pcd8544.NewSPI(b, gpioreg.ByName("25"), gpioreg.ByName("8"), gpioreg.ByName("24"), nil, &pcd8544.DefaultOpts)
	if err != nil {
		log.Fatalf("failed to initialize driver: %v", err)
	}
	if err := dev.Reset(); err != nil {
		log.Fatalf("failed to initialize display: %v", err)
	}

	// Draw on it. Dark text on a clear background.
	g := pcd8544.NewGraphics(dev)
	img := image1bit.NewVerticalLSB(g.Bounds())
	draw.Draw(img, img.Bounds(), &image.Uniform{image1bit.Off}, image.Point{}, draw.Src)
	f := basicfont.Face7x13
	drawer := font.Drawer{
		Dst:  img,
		Src:  &image.Uniform{image1bit.On},
		Face: f,
		Dot:  fixed.P(0, img.Bounds().Dy()-1-f.Descent),
	}
	drawer.DrawString("Hello from periph!")

	if err := g.Draw(g.Bounds(), img, image.Point{}); err != nil {
		log.Fatal(err)
	}
}

func Example_bitBang() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	// No SPI peripheral needed; any five GPIOs will do.
	dev, err := pcd8544.NewBitBang(
		gpioreg.ByName("17"), // CLK
		gpioreg.ByName("27"), // DIN
		gpioreg.ByName("25"), // DC
		gpioreg.ByName("8"),  // CE
		gpioreg.ByName("24"), // RST
		nil,
		&pcd8544.SparkfunRedOpts)
	if err != nil {
		log.Fatalf("failed to initialize driver: %v", err)
	}
	if err := dev.Reset(); err != nil {
		log.Fatalf("failed to initialize display: %v", err)
	}

	lcd := pcd8544.NewTextMode(dev)
	if _, err := lcd.WriteString("bit-banged"); err != nil {
		log.Fatal(err)
	}
}
