package nes

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/n-ulricksen/nescore/test"
)

// Bus with a PPU attached and, if rom is not nil, a cartridge loaded.
func newTestBus(t *testing.T, rom *romImage) *Bus {
	t.Helper()

	b := NewBus(nil)
	p := NewPpu(nil)
	b.ConnectPpu(p)
	p.ConnectBus(b)

	if rom != nil {
		test.DemandSuccess(t, b.LoadBytes(rom.bytes()))
		test.DemandSuccess(t, b.SetupMapper())
	}

	return b
}

func TestRamMirroring(t *testing.T) {
	b := newTestBus(t, nil)

	b.Write(0x0001, 0x42)
	for _, addr := range []uint16{0x0001, 0x0801, 0x1001, 0x1801} {
		test.ExpectEquality(t, b.Read(addr), 0x42, addr)
	}

	b.Write(0x1FFF, 0x24)
	test.ExpectEquality(t, b.Read(0x07FF), 0x24)
}

func TestPpuRegisterMirroring(t *testing.T) {
	b := newTestBus(t, nil)

	// $3456 is register 6, PPUADDR
	b.Write(0x3456, 0x21)
	b.Write(0x2006, 0x08)
	test.ExpectEquality(t, b.ppu.vramAddr.value(), 0x2108)

	// $2008 is register 0, PPUCTRL
	b.Write(0x2008, 0x04)
	test.ExpectEquality(t, byte(b.ppu.ctrl), 0x04)
}

func TestCartridgeWindow(t *testing.T) {
	// without a cartridge the space reads as zero
	b := newTestBus(t, nil)
	test.ExpectSuccess(t, !b.Loaded())
	test.ExpectEquality(t, b.Read(0x8000), 0x00)
	test.ExpectEquality(t, b.PpuRead(0x0000), 0x00)

	// NROM-128 mirrors
	rom := newRom(1, 1)
	rom.prg[0x0000] = 0xAA
	rom.prg[0x3FFF] = 0xBB
	rom.chr[0x1000] = 0xCC

	b = newTestBus(t, rom)
	test.ExpectSuccess(t, b.Loaded())
	test.ExpectEquality(t, b.Read(0x8000), 0xAA)
	test.ExpectEquality(t, b.Read(0xC000), 0xAA)
	test.ExpectEquality(t, b.Read(0xFFFF), 0xBB)
	test.ExpectEquality(t, b.PpuRead(0x1000), 0xCC)

	// NROM-256 does not
	rom = newRom(2, 1)
	rom.prg[0x0000] = 0xAA
	rom.prg[0x4000] = 0xDD

	b = newTestBus(t, rom)
	test.ExpectEquality(t, b.Read(0x8000), 0xAA)
	test.ExpectEquality(t, b.Read(0xC000), 0xDD)

	// cartridge RAM through the bus
	b.Write(0x6000, 0x12)
	test.ExpectEquality(t, b.Read(0x6000), 0x12)
}

func TestIOWindow(t *testing.T) {
	b := newTestBus(t, nil)

	b.Write(0x4000, 0xFF)
	test.ExpectEquality(t, b.Read(0x4000), 0x00)
	test.ExpectEquality(t, b.Read(0x4015), 0x00)
	test.ExpectEquality(t, b.Read(0x401F), 0x00)
}

func TestNametableMirroring(t *testing.T) {
	tests := []struct {
		name      string
		flags6    byte
		addr      uint16
		aliasOf   uint16
		notMirror uint16
	}{
		{"horizontal", 0x00, 0x2000, 0x2400, 0x2800},
		{"horizontal", 0x00, 0x2800, 0x2C00, 0x2400},
		{"vertical", 0x01, 0x2000, 0x2800, 0x2400},
		{"vertical", 0x01, 0x2400, 0x2C00, 0x2800},
	}

	for _, tt := range tests {
		rom := newRom(1, 1)
		rom.header[6] = tt.flags6
		b := newTestBus(t, rom)

		b.PpuWrite(tt.addr+0x0123, 0x5A)
		test.ExpectEquality(t, b.PpuRead(tt.aliasOf+0x0123), 0x5A, tt.name, tt.addr)
		test.ExpectEquality(t, b.PpuRead(tt.notMirror+0x0123), 0x00, tt.name, tt.addr)

		// $3000-$3EFF mirrors $2000-$2EFF
		test.ExpectEquality(t, b.PpuRead(tt.addr+0x1123), 0x5A, tt.name, tt.addr)
	}
}

func TestPaletteMirroring(t *testing.T) {
	b := newTestBus(t, nil)

	// sprite backdrop entries alias the background entries
	for _, addr := range []uint16{0x3F10, 0x3F14, 0x3F18, 0x3F1C} {
		b.PpuWrite(addr, byte(addr))
		test.ExpectEquality(t, b.PpuRead(addr-0x10), byte(addr), addr)
	}

	// other sprite entries do not
	b.PpuWrite(0x3F01, 0x01)
	b.PpuWrite(0x3F11, 0x11)
	test.ExpectEquality(t, b.PpuRead(0x3F01), 0x01)

	// palette RAM repeats every 32 bytes up to $3FFF
	test.ExpectEquality(t, b.PpuRead(0x3F21), 0x01)
	test.ExpectEquality(t, b.PpuRead(0x3FF1), 0x11)
}

func TestPeek(t *testing.T) {
	b := newTestBus(t, nil)
	b.ppu.status.setFlag(statusVBlank)

	b.Peek(0x2002)
	test.ExpectSuccess(t, b.ppu.status.isSet(statusVBlank))

	b.Read(0x2002)
	test.ExpectFailure(t, b.ppu.status.isSet(statusVBlank))

	b.Write(0x0010, 0x99)
	test.ExpectEquality(t, b.Peek(0x0010), 0x99)
}

func TestLoadRomErrors(t *testing.T) {
	b := newTestBus(t, newRom(1, 1))

	err := b.LoadRom("does/not/exist.nes")
	test.ExpectEquality(t, errors.Cause(err), ErrRomOpen)
	test.ExpectSuccess(t, b.Cart == nil)

	// unsupported mapper leaves the bus without a cartridge
	rom := newRom(1, 1)
	rom.header[6] = 0x40
	test.DemandSuccess(t, b.LoadRom(rom.writeFile(t)))
	err = b.SetupMapper()
	test.ExpectEquality(t, errors.Cause(err), ErrUnsupportedMapper)
	test.ExpectSuccess(t, !b.Loaded())

	test.ExpectEquality(t, errors.Cause(b.SetupMapper()), ErrNoCartridge)
}

func TestLoadRomClearsMemory(t *testing.T) {
	b := newTestBus(t, newRom(1, 1))
	b.Write(0x0000, 0x11)
	b.PpuWrite(0x2000, 0x22)
	b.PpuWrite(0x3F00, 0x33)

	test.DemandSuccess(t, b.LoadBytes(newRom(1, 1).bytes()))
	test.ExpectEquality(t, b.Read(0x0000), 0x00)
	test.ExpectEquality(t, b.PpuRead(0x2000), 0x00)
	test.ExpectEquality(t, b.PpuRead(0x3F00), 0x00)
}
