// Package debugview renders the PPU's debug snapshots (pattern tables,
// nametables and palette RAM) and the current frame to images, and writes
// them to disk as PNG files.
package debugview

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
	"golang.org/x/image/draw"

	"github.com/n-ulricksen/nescore/nes"
)

const (
	margin  = 8
	caption = 16 // height of a caption line
	swatch  = 16 // size of a palette swatch
)

// Scale enlarges img by an integer factor without smoothing.
func Scale(img image.Image, factor int) *image.RGBA {
	if factor < 1 {
		factor = 1
	}

	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)

	return dst
}

// PatternTables draws both pattern tables side by side using one of the
// eight palettes.
func PatternTables(p *nes.Ppu, palette byte) image.Image {
	const size = 128 * 2

	dc := gg.NewContext(margin*3+size*2, margin*2+caption+size)
	dc.SetColor(colornames.Darkslategray)
	dc.Clear()

	dc.SetColor(colornames.White)
	for i := 0; i < 2; i++ {
		x := margin + i*(size+margin)
		dc.DrawString(fmt.Sprintf("pattern table %d (palette %d)", i, palette&0x07), float64(x), float64(margin+caption-4))
		dc.DrawImage(Scale(p.PatternTable(i, palette), 2), x, margin+caption)
	}

	return dc.Image()
}

// Nametables draws the four logical nametables in a 2x2 grid, arranged as
// they are addressed ($2000 top left, $2C00 bottom right).
func Nametables(p *nes.Ppu) image.Image {
	const w, h = 256, 240

	dc := gg.NewContext(margin*3+w*2, margin*3+h*2)
	dc.SetColor(colornames.Darkslategray)
	dc.Clear()

	for i := 0; i < 4; i++ {
		x := margin + (i%2)*(w+margin)
		y := margin + (i/2)*(h+margin)
		dc.DrawImage(p.Nametable(i), x, y)
	}

	return dc.Image()
}

// Palette draws palette RAM as two rows of swatches: background palettes on
// top, sprite palettes below.
func Palette(p *nes.Ppu) image.Image {
	colors := p.PaletteColors()

	dc := gg.NewContext(margin*2+16*swatch, margin*3+2*swatch)
	dc.SetColor(colornames.Darkslategray)
	dc.Clear()

	for i, c := range colors {
		x := margin + (i%16)*swatch
		y := margin + (i/16)*(swatch+margin)

		dc.SetColor(c)
		dc.DrawRectangle(float64(x), float64(y), swatch-1, swatch-1)
		dc.Fill()
	}

	return dc.Image()
}

// Dump writes the current frame and every debug view to dir. Files are
// named after the console's frame count so consecutive dumps do not
// overwrite each other.
func Dump(c *nes.Console, dir string) ([]string, error) {
	frame := c.Ppu.FrameCount()

	views := []struct {
		name string
		img  image.Image
	}{
		{"frame", Scale(c.Frame(), 2)},
		{"patterns", PatternTables(c.Ppu, 0)},
		{"nametables", Nametables(c.Ppu)},
		{"palette", Palette(c.Ppu)},
	}

	var written []string
	for _, v := range views {
		path := filepath.Join(dir, fmt.Sprintf("%s_%05d.png", v.name, frame))
		if err := gg.SavePNG(path, v.img); err != nil {
			return written, errors.Wrapf(err, "debugview: %s", v.name)
		}
		written = append(written, path)
	}

	return written, nil
}
