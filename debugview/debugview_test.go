package debugview_test

import (
	"image"
	"image/color"
	"os"
	"testing"

	"github.com/n-ulricksen/nescore/debugview"
	"github.com/n-ulricksen/nescore/nes"
	"github.com/n-ulricksen/nescore/test"
)

// an NROM-128 image that loops forever at $8000
func loopRom() []byte {
	rom := make([]byte, 16+0x4000+0x2000)
	copy(rom, []byte{'N', 'E', 'S', 0x1A, 1, 1})

	prg := rom[16:]
	copy(prg, []byte{0x4C, 0x00, 0x80}) // JMP $8000
	prg[0x3FFC] = 0x00
	prg[0x3FFD] = 0x80

	// one solid tile in the first pattern table
	chr := rom[16+0x4000:]
	for i := 0; i < 8; i++ {
		chr[i] = 0xFF
	}

	return rom
}

func TestScale(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(1, 0, color.RGBA{R: 255, A: 255})

	s := debugview.Scale(img, 3)
	test.ExpectEquality(t, s.Bounds().Dx(), 6)
	test.ExpectEquality(t, s.Bounds().Dy(), 3)
	test.ExpectEquality(t, s.RGBAAt(0, 0), color.RGBA{})
	test.ExpectEquality(t, s.RGBAAt(5, 2), color.RGBA{R: 255, A: 255})

	// a factor below one leaves the size unchanged
	test.ExpectEquality(t, debugview.Scale(img, 0).Bounds().Dx(), 2)
}

func TestViews(t *testing.T) {
	c := nes.NewConsole(nil)
	test.DemandSuccess(t, c.LoadBytes(loopRom()))

	test.ExpectEquality(t, debugview.PatternTables(c.Ppu, 0).Bounds().Dx(), 8*3+256*2)
	test.ExpectEquality(t, debugview.Nametables(c.Ppu).Bounds().Dy(), 8*3+240*2)
	test.ExpectEquality(t, debugview.Palette(c.Ppu).Bounds().Dx(), 8*2+16*16)
}

func TestDump(t *testing.T) {
	c := nes.NewConsole(nil)
	test.DemandSuccess(t, c.LoadBytes(loopRom()))
	test.DemandSuccess(t, c.StepFrame())

	dir := t.TempDir()
	files, err := debugview.Dump(c, dir)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(files), 4)

	for _, f := range files {
		_, err := os.Stat(f)
		test.ExpectSuccess(t, err, f)
	}
}
