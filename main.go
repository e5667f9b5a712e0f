package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/faiface/pixel/pixelgl"
	"github.com/pkg/errors"

	"github.com/n-ulricksen/nescore/debugview"
	"github.com/n-ulricksen/nescore/display"
	"github.com/n-ulricksen/nescore/logger"
	"github.com/n-ulricksen/nescore/nes"
	"github.com/n-ulricksen/nescore/statsview"
)

// Command line flags
var (
	flagRom       string
	flagDebug     bool
	flagLogging   bool
	flagPalette   string
	flagFrames    int
	flagDump      string
	flagDisasm    bool
	flagStatsview bool
	flagMemviz    string
	flagFPS       float64
)

const maxLogEntries = 256

func main() {
	parseFlags()

	diag := logger.NewLogger(maxLogEntries)
	diag.SetEcho(os.Stderr)

	fmt.Println("Starting NES...")
	console := nes.NewConsole(diag)

	if flagPalette != "" {
		loadPalette(console, flagPalette)
	}

	if flagLogging {
		f := openTraceLog()
		defer f.Close()
		console.Cpu.SetTrace(f)
	}

	if err := console.LoadRom(flagRom); err != nil {
		log.Fatal(describeLoadError(err))
	}

	if flagDisasm {
		printDisassembly(console)
	}

	if flagStatsview {
		statsview.Launch(os.Stdout)
	}

	// Headless: run a fixed number of frames, write any requested dumps and
	// exit.
	if flagFrames > 0 {
		start := time.Now()
		for i := 0; i < flagFrames; i++ {
			if err := console.StepFrame(); err != nil {
				log.Fatal(err)
			}
		}
		fmt.Printf("%d frames in %s\n", flagFrames, time.Since(start))

		writeDumps(console)
		return
	}

	pixelgl.Run(func() {
		w, err := display.New(display.Options{
			Debug: flagDebug,
			FPS:   flagFPS,
			Log:   diag,
		})
		if err != nil {
			log.Fatal(err)
		}

		if err := w.Run(console); err != nil {
			log.Fatal(err)
		}

		writeDumps(console)
	})
}

func parseFlags() {
	flag.StringVar(&flagRom, "rom", "./roms/DK.nes", "iNES ROM to load")
	flag.BoolVar(&flagDebug, "d", false, "enable debug panel")
	flag.BoolVar(&flagLogging, "l", false, "enable CPU trace logging")
	flag.StringVar(&flagPalette, "palette", "", "load master palette from a 192 byte .pal file")
	flag.IntVar(&flagFrames, "frames", 0, "run headless for a number of frames and exit")
	flag.StringVar(&flagDump, "dump", "", "write frame and PPU debug views as PNG files to directory on exit")
	flag.BoolVar(&flagDisasm, "disasm", false, "print disassembly of PRG ROM")
	flag.BoolVar(&flagStatsview, "statsview", false, "launch runtime statistics server")
	flag.StringVar(&flagMemviz, "memviz", "", "write a dot graph of the machine state to file on exit")
	flag.Float64Var(&flagFPS, "fps", 60, "frames per second in windowed mode, 0 to follow vsync")

	flag.Parse()
}

func loadPalette(console *nes.Console, path string) {
	f, err := os.Open(path)
	if err != nil {
		log.Fatal("Unable to open palette file...\n", err)
	}
	defer f.Close()

	palette, err := nes.LoadPalette(f)
	if err != nil {
		log.Fatal(errors.WithMessage(err, path))
	}
	console.Ppu.SetPalette(palette)
}

func openTraceLog() *os.File {
	if err := os.MkdirAll("./logs", 0775); err != nil {
		log.Fatal("Unable to create log directory...\n", err)
	}

	now := time.Now()
	logFile := fmt.Sprintf("./logs/cpu%s.log", now.Format("20060102-150405"))
	f, err := os.OpenFile(logFile, os.O_WRONLY|os.O_CREATE, 0664)
	if err != nil {
		log.Fatal("Unable to create CPU log file...\n", err)
	}

	return f
}

func describeLoadError(err error) string {
	switch errors.Cause(err) {
	case nes.ErrRomOpen:
		return fmt.Sprintf("could not read ROM: %v", err)
	case nes.ErrUnknownFormat, nes.ErrUnsupportedHeader, nes.ErrTruncatedRom:
		return fmt.Sprintf("not a usable iNES file: %v", err)
	case nes.ErrUnsupportedMapper:
		return fmt.Sprintf("cartridge not supported: %v", err)
	}
	return err.Error()
}

func printDisassembly(console *nes.Console) {
	diss := console.Cpu.Disassemble(0x8000, 0xFFFF)

	addrs := make([]int, 0, len(diss))
	for addr := range diss {
		addrs = append(addrs, int(addr))
	}
	sort.Ints(addrs)

	for _, addr := range addrs {
		fmt.Println(diss[uint16(addr)])
	}
}

// Machine state as graphed by -memviz.
type machineState struct {
	Header nes.Header
	Cpu    nes.CpuRegisters
	Ppu    nes.PpuRegisters
	Fault  *nes.Fault
}

func writeDumps(console *nes.Console) {
	if flagDump != "" {
		if err := os.MkdirAll(flagDump, 0775); err != nil {
			log.Fatal(err)
		}
		files, err := debugview.Dump(console, flagDump)
		if err != nil {
			log.Fatal(err)
		}
		for _, f := range files {
			fmt.Println("wrote", filepath.Clean(f))
		}
	}

	if flagMemviz != "" {
		f, err := os.Create(flagMemviz)
		if err != nil {
			log.Fatal("Unable to create memviz file...\n", err)
		}
		defer f.Close()

		state := &machineState{
			Header: console.Bus.Cart.Header,
			Cpu:    console.Cpu.Registers(),
			Ppu:    console.Ppu.Registers(),
		}
		if fault, ok := console.Cpu.Fault(); ok {
			state.Fault = &fault
		}

		memviz.Map(f, state)
		fmt.Println("wrote", flagMemviz)
	}
}
