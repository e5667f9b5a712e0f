package nes

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/pkg/errors"

	"github.com/n-ulricksen/nescore/test"
)

func TestLoadPalette(t *testing.T) {
	data := make([]byte, 192)
	data[3], data[4], data[5] = 0x10, 0x20, 0x30
	data[189], data[190], data[191] = 0xFF, 0xFE, 0xFD

	palette, err := LoadPalette(bytes.NewReader(data))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, palette[0], color.RGBA{0, 0, 0, 255})
	test.ExpectEquality(t, palette[1], color.RGBA{0x10, 0x20, 0x30, 255})
	test.ExpectEquality(t, palette[63], color.RGBA{0xFF, 0xFE, 0xFD, 255})

	// palettes with emphasis variants appended
	long := append(data, make([]byte, 7*192)...)
	palette, err = LoadPalette(bytes.NewReader(long))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, palette[1], color.RGBA{0x10, 0x20, 0x30, 255})
}

func TestLoadPaletteShort(t *testing.T) {
	for _, n := range []int{0, 3, 191} {
		_, err := LoadPalette(bytes.NewReader(make([]byte, n)))
		test.ExpectEquality(t, errors.Cause(err), ErrPaletteFormat, n)
	}
}

func TestSetPalette(t *testing.T) {
	p, b := newTestPpu(t)

	var grey MasterPalette
	for i := range grey {
		grey[i] = color.RGBA{byte(i), byte(i), byte(i), 255}
	}
	p.SetPalette(grey)

	setVramAddr(b, 0x3F00)
	b.Write(0x2007, 0x2A)
	for !p.FrameComplete() {
		p.Run()
	}
	test.ExpectEquality(t, p.Frame().RGBAAt(10, 10), grey[0x2A])
}
