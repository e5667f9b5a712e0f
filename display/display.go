// Package display presents a running console in a pixelgl window. It owns the
// frame pacing, keyboard input and the optional debug panel; the emulator
// core only exposes its framebuffer and state.
package display

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/n-ulricksen/nescore/logger"
	"github.com/n-ulricksen/nescore/nes"
)

const (
	// Main NES display settings
	nesResW    float64 = 256
	nesResH    float64 = 240
	scale      float64 = 2 // Scale at which to render NES display.
	screenW    float64 = nesResW * scale
	screenH    float64 = nesResH * scale
	screenPosX float64 = 600 // Where to render the display on the user's monitor.
	screenPosY float64 = 400

	// Debug display settings
	debugResW float64 = 256
	debugPadX float64 = 8
	debugLogs int     = 6
)

// Options for the presentation window.
type Options struct {
	Debug bool           // Show the debug panel to the right of the game.
	FPS   float64        // Frames per second. Zero leaves pacing to vsync.
	Log   *logger.Logger // Tail of the log is shown in the debug panel.
}

type Window struct {
	opts Options

	window     *pixelgl.Window
	gameMatrix pixel.Matrix // Scale and position to render the running NES game.

	debugText *text.Text
	keys      *keyboard
}

// New opens the window. It must be called from within pixelgl.Run.
func New(opts Options) (*Window, error) {
	width := screenW
	if opts.Debug {
		width += debugResW
	}

	config := pixelgl.WindowConfig{
		Title:    "NES Emulator",
		Bounds:   pixel.R(0, 0, width, screenH),
		Position: pixel.V(screenPosX, screenPosY),
		VSync:    true,
	}
	window, err := pixelgl.NewWindow(config)
	if err != nil {
		return nil, errors.Wrap(err, "display")
	}

	// Calculate matrix required to render game to display based on the set scale.
	bounds := pixel.R(0, 0, nesResW, nesResH)
	matrix := pixel.IM.Moved(bounds.Center().Scaled(scale))
	matrix = matrix.Scaled(bounds.Center().Scaled(scale), scale)

	atlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)

	return &Window{
		opts:       opts,
		window:     window,
		gameMatrix: matrix,
		debugText:  text.New(pixel.V(screenW+debugPadX, screenH-16), atlas),
		keys:       newKeyboard(),
	}, nil
}

// Run emulates and presents frames until the window is closed. Emulation
// errors end the loop and are returned.
func (w *Window) Run(c *nes.Console) error {
	var ticker *time.Ticker
	if w.opts.FPS > 0 {
		interval := time.Duration(float64(time.Second) / w.opts.FPS)
		ticker = time.NewTicker(interval)
		defer ticker.Stop()
	}

	for !w.window.Closed() {
		w.keys.update(w.window)
		c.Bus.Controller[0].SetButtons(w.keys.state())

		if w.window.JustPressed(pixelgl.KeyR) {
			if err := c.Reset(); err != nil {
				return err
			}
		}

		if err := c.StepFrame(); err != nil {
			return err
		}

		w.draw(c)

		if ticker != nil {
			<-ticker.C
		}
	}

	return nil
}

func (w *Window) draw(c *nes.Console) {
	w.window.Clear(colornames.Black)

	w.drawImage(c.Frame(), w.gameMatrix)

	if w.opts.Debug {
		w.drawDebug(c)
	}

	w.window.Update()
}

func (w *Window) drawImage(img image.Image, matrix pixel.Matrix) {
	pic := pixel.PictureDataFromImage(img)

	sprite := pixel.NewSprite(pic, pic.Bounds())
	sprite.Draw(w.window, matrix)
}

func (w *Window) drawDebug(c *nes.Console) {
	t := w.debugText
	t.Clear()

	cpu := c.Cpu.Registers()
	fmt.Fprintf(t, "Flags: %08b\n", cpu.Status)
	fmt.Fprintf(t, "PC: $%04X\n", cpu.Pc)
	fmt.Fprintf(t, "A: $%02X  X: $%02X  Y: $%02X\n", cpu.A, cpu.X, cpu.Y)
	fmt.Fprintf(t, "SP: $%02X\n", cpu.Sp)
	fmt.Fprintf(t, "Cycle Count: %d\n\n", cpu.Cycles)

	if f, ok := c.Cpu.Fault(); ok {
		fmt.Fprintf(t, "%s\n\n", f)
	}

	ppu := c.Ppu.Registers()
	fmt.Fprintf(t, "CTRL: %08b\n", ppu.Ctrl)
	fmt.Fprintf(t, "MASK: %08b\n", ppu.Mask)
	fmt.Fprintf(t, "STATUS: %08b\n", ppu.Status)
	fmt.Fprintf(t, "v: $%04X  t: $%04X  x: %d\n", ppu.VramAddr, ppu.TempAddr, ppu.FineX)
	fmt.Fprintf(t, "Frame: %d\n", c.Ppu.FrameCount())
	fmt.Fprintf(t, "Pad: %08b\n\n", c.Bus.Controller[0].Buttons())

	if w.opts.Log != nil {
		w.opts.Log.Tail(t, debugLogs)
	}

	t.Draw(w.window, pixel.IM)

	// Palette RAM along the bottom of the panel.
	w.drawImage(paletteStrip(c.Ppu.PaletteColors()), pixel.IM.Moved(pixel.V(screenW+debugResW/2, 8)))
}

// One 8x8 swatch per palette RAM entry.
func paletteStrip(colors [32]color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 8*len(colors), 8))
	for i, c := range colors {
		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				img.SetRGBA(i*8+x, y, c)
			}
		}
	}
	return img
}
