package nes

import (
	"image"
	"image/color"
)

// Snapshot accessors used for visualisation. They read the PPU address
// space directly and have no effect on emulation.

// PatternTable renders one of the two pattern tables (i is 0 or 1) using one
// of the eight palettes. Pattern tables are 16x16 grids of tiles. Each tile
// is 8x8 pixels and 16 bytes of memory.
func (p *Ppu) PatternTable(i int, palette byte) *image.RGBA {
	rgba := image.NewRGBA(image.Rect(0, 0, 128, 128))
	base := patternTblSize * uint16(i&0x01)

	for tileY := 0; tileY < 16; tileY++ {
		for tileX := 0; tileX < 16; tileX++ {
			// Tile
			memOffset := uint16(tileY*(16*16) + tileX*16)

			for row := 0; row < 8; row++ {
				// 2 bytes represent an 8 pixel row.
				tileLo := p.read(base + memOffset + uint16(row))
				tileHi := p.read(base + memOffset + uint16(row) + 8)

				for col := 0; col < 8; col++ {
					// Calculate each pixel's value (0-3). The LSB represents
					// the last pixel in the row of 8. Use bit shifts to place the
					// required bit in the correct position each iteration.
					pixel := (tileLo & 0x01) + ((tileHi & 0x01) << 1)
					tileLo >>= 1
					tileHi >>= 1

					// Pixel position
					x := tileX*8 + (7 - col) // Invert x-axis
					y := tileY*8 + row

					rgba.SetRGBA(x, y, p.colorFromPalette(palette&0x07, pixel))
				}
			}
		}
	}

	return rgba
}

// Nametable renders one of the four logical nametables (after mirroring) as
// the background would show it with no scrolling.
func (p *Ppu) Nametable(i int) *image.RGBA {
	rgba := image.NewRGBA(image.Rect(0, 0, screenWidth, screenHeight))
	base := nameTblAddr + nameTblSize*uint16(i&0x03)
	patterns := uint16(p.ctrl.getFlag(ctrlBgPatternTbl)) << 12

	for tileY := 0; tileY < 30; tileY++ {
		for tileX := 0; tileX < 32; tileX++ {
			id := p.read(base + uint16(tileY*32+tileX))

			attrib := p.read(base + 0x03C0 + uint16((tileY/4)*8+tileX/4))
			if tileY&0x02 != 0 {
				attrib >>= 4
			}
			if tileX&0x02 != 0 {
				attrib >>= 2
			}
			palette := attrib & 0x03

			for row := 0; row < 8; row++ {
				lo := p.read(patterns + uint16(id)<<4 + uint16(row))
				hi := p.read(patterns + uint16(id)<<4 + uint16(row) + 8)

				for col := 0; col < 8; col++ {
					shift := 7 - col
					pixel := (lo>>shift)&0x01 | ((hi>>shift)&0x01)<<1
					rgba.SetRGBA(tileX*8+col, tileY*8+row, p.colorFromPalette(palette, pixel))
				}
			}
		}
	}

	return rgba
}

// PaletteColors returns the colours currently held in palette RAM. Entries
// 0-15 are the background palettes, 16-31 the sprite palettes.
func (p *Ppu) PaletteColors() [32]color.RGBA {
	var colors [32]color.RGBA
	for i := range colors {
		colors[i] = p.palette[p.read(paletteAddr+uint16(i))&0x3F]
	}
	return colors
}
