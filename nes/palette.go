package nes

import (
	"image/color"
	"io"

	"github.com/pkg/errors"
)

const paletteSize byte = 0x40

// MasterPalette is the 2C02 colour table indexed by the 6 bit values stored
// in palette RAM.
type MasterPalette [paletteSize]color.RGBA

// DefaultPalette is the NTSC palette used unless another is supplied with
// Ppu.SetPalette.
var DefaultPalette = MasterPalette{
	{84, 84, 84, 255}, {0, 30, 116, 255}, {8, 16, 144, 255}, {48, 0, 136, 255},
	{68, 0, 100, 255}, {92, 0, 48, 255}, {84, 4, 0, 255}, {60, 24, 0, 255},
	{32, 42, 0, 255}, {8, 58, 0, 255}, {0, 64, 0, 255}, {0, 60, 0, 255},
	{0, 50, 60, 255}, {0, 0, 0, 255}, {0, 0, 0, 255}, {0, 0, 0, 255},

	{152, 150, 152, 255}, {8, 76, 196, 255}, {48, 50, 236, 255}, {92, 30, 228, 255},
	{136, 20, 176, 255}, {160, 20, 100, 255}, {152, 34, 32, 255}, {120, 60, 0, 255},
	{84, 90, 0, 255}, {40, 114, 0, 255}, {8, 124, 0, 255}, {0, 118, 40, 255},
	{0, 102, 120, 255}, {0, 0, 0, 255}, {0, 0, 0, 255}, {0, 0, 0, 255},

	{236, 238, 236, 255}, {76, 154, 236, 255}, {120, 124, 236, 255}, {176, 98, 236, 255},
	{228, 84, 236, 255}, {236, 88, 180, 255}, {236, 106, 100, 255}, {212, 136, 32, 255},
	{160, 170, 0, 255}, {116, 196, 0, 255}, {76, 208, 32, 255}, {56, 204, 108, 255},
	{56, 180, 204, 255}, {60, 60, 60, 255}, {0, 0, 0, 255}, {0, 0, 0, 255},

	{236, 238, 236, 255}, {168, 204, 236, 255}, {188, 188, 236, 255}, {212, 178, 236, 255},
	{236, 174, 236, 255}, {236, 174, 212, 255}, {236, 180, 176, 255}, {228, 196, 144, 255},
	{204, 210, 120, 255}, {180, 222, 120, 255}, {168, 226, 144, 255}, {152, 226, 180, 255},
	{160, 214, 228, 255}, {160, 162, 160, 255}, {0, 0, 0, 255}, {0, 0, 0, 255},
}

// LoadPalette reads a .pal file: 64 RGB triplets. Larger files (some tools
// append emphasis variants) are accepted and only the first 64 entries used.
func LoadPalette(r io.Reader) (MasterPalette, error) {
	var palette MasterPalette

	data := make([]byte, int(paletteSize)*3)
	if _, err := io.ReadFull(r, data); err != nil {
		return palette, errors.WithMessage(ErrPaletteFormat, err.Error())
	}

	for i := 0; i < len(data); i += 3 {
		palette[i/3] = color.RGBA{data[i], data[i+1], data[i+2], 255}
	}

	return palette, nil
}
