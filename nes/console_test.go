package nes

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"

	"github.com/n-ulricksen/nescore/test"
)

// A program that enables NMI and spins. The NMI handler counts frames in
// zero page $00.
func nmiCounterRom() *romImage {
	rom := newRom(1, 1)
	rom.load(0x8000,
		0xA9, 0x80,       // LDA #$80
		0x8D, 0x00, 0x20, // STA $2000
		0x4C, 0x05, 0x80, // JMP $8005
	)
	rom.load(0x8010,
		0xE6, 0x00, // INC $00
		0x40,       // RTI
	)
	rom.setVector(nmiVectAddr, 0x8010)
	rom.setVector(resetVectAddr, 0x8000)
	return rom
}

func TestConsoleNoCartridge(t *testing.T) {
	c := NewConsole(nil)

	test.ExpectFailure(t, c.Loaded())
	test.ExpectEquality(t, c.Clock(), ErrNoCartridge)
	test.ExpectEquality(t, c.StepFrame(), ErrNoCartridge)
	test.ExpectEquality(t, c.Reset(), ErrNoCartridge)
	test.ExpectEquality(t, c.ClockCount(), 0)
}

func TestConsoleLoadErrors(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.nes")
	test.DemandSuccess(t, os.WriteFile(garbage, []byte("not a rom at all, honest"), 0644))

	mmc1 := newRom(1, 1)
	mmc1.header[6] = 0x10

	tests := []struct {
		name string
		path string
		want error
	}{
		{"missing", filepath.Join(dir, "missing.nes"), ErrRomOpen},
		{"garbage", garbage, ErrUnknownFormat},
		{"mapper", mmc1.writeFile(t), ErrUnsupportedMapper},
	}

	for _, tt := range tests {
		sink := &recordSink{}
		c := NewConsole(sink)

		// a failed load also ejects whatever was there before
		test.DemandSuccess(t, c.LoadBytes(nmiCounterRom().bytes()), tt.name)

		err := c.LoadRom(tt.path)
		test.ExpectEquality(t, errors.Cause(err), tt.want, tt.name)
		test.ExpectFailure(t, c.Loaded(), tt.name)
		test.ExpectEquality(t, c.StepFrame(), ErrNoCartridge, tt.name)
		test.ExpectInequality(t, len(sink.entries), 0, tt.name)
	}
}

func TestConsoleStepFrame(t *testing.T) {
	c := NewConsole(nil)
	test.DemandSuccess(t, c.LoadRom(nmiCounterRom().writeFile(t)))
	test.ExpectSuccess(t, c.Loaded())

	test.ExpectSuccess(t, c.StepFrame())
	test.ExpectEquality(t, c.ClockCount(), clocksPerFrame)
	test.ExpectEquality(t, c.Ppu.FrameCount(), 1)
	test.ExpectFailure(t, c.Ppu.FrameComplete())

	test.ExpectSuccess(t, c.StepFrame())
	test.ExpectEquality(t, c.ClockCount(), 2*clocksPerFrame)
}

func TestConsoleClockRatio(t *testing.T) {
	c := NewConsole(nil)
	test.DemandSuccess(t, c.LoadBytes(nmiCounterRom().bytes()))

	start := c.Cpu.Cycles()
	for i := 0; i < 3000; i++ {
		test.DemandSuccess(t, c.Clock())
	}

	// instructions are charged in whole, so the CPU may be up to one
	// instruction ahead of the PPU
	cpuCycles := c.Cpu.Cycles() - start
	test.ExpectSuccess(t, cpuCycles >= 1000 && cpuCycles <= 1007, cpuCycles)
}

func TestConsoleNmi(t *testing.T) {
	c := NewConsole(nil)
	test.DemandSuccess(t, c.LoadBytes(nmiCounterRom().bytes()))

	test.DemandSuccess(t, c.StepFrame())
	test.ExpectEquality(t, c.Bus.Read(0x0000), 1)

	test.DemandSuccess(t, c.StepFrame())
	test.ExpectEquality(t, c.Bus.Read(0x0000), 2)

	// the CPU is back in the main loop
	test.ExpectSuccess(t, c.Cpu.Pc >= 0x8005 && c.Cpu.Pc <= 0x8007, c.Cpu.Pc)
}

func TestConsoleReset(t *testing.T) {
	c := NewConsole(nil)
	test.DemandSuccess(t, c.LoadBytes(nmiCounterRom().bytes()))

	for i := 0; i < 3; i++ {
		test.DemandSuccess(t, c.StepFrame())
	}

	test.DemandSuccess(t, c.Reset())
	test.ExpectEquality(t, c.ClockCount(), 0)
	test.ExpectEquality(t, c.Cpu.Pc, 0x8000)
	test.ExpectEquality(t, c.Ppu.Scanline(), -1)
	test.ExpectEquality(t, c.Ppu.Registers().Ctrl, 0x00)

	// memory survives a reset
	test.ExpectEquality(t, c.Bus.Read(0x0000), 3)
}

func TestConsoleFault(t *testing.T) {
	rom := newRom(1, 1)
	rom.load(0x8000, 0x02) // not an instruction
	rom.setVector(resetVectAddr, 0x8000)

	sink := &recordSink{}
	c := NewConsole(sink)
	test.DemandSuccess(t, c.LoadBytes(rom.bytes()))

	// the console keeps running with the CPU stalled
	test.ExpectSuccess(t, c.StepFrame())
	test.ExpectEquality(t, c.Ppu.FrameCount(), 1)
	test.ExpectEquality(t, c.Cpu.Pc, 0x8000)

	f, ok := c.Cpu.Fault()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, f, Fault{Opcode: 0x02, Addr: 0x8000})
}
