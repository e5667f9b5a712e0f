package nes

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/n-ulricksen/nescore/test"
)

func TestParseHeader(t *testing.T) {
	rom := newRom(2, 1)
	rom.header[6] = 0x10 | flag6Mirroring | flag6Battery // mapper low nibble 1
	rom.header[7] = 0x20                                 // mapper high nibble 2
	rom.header[8] = 1
	rom.header[9] = 1

	h, err := ParseHeader(rom.bytes())
	test.DemandSuccess(t, err)

	tests := []struct {
		got  interface{}
		want interface{}
	}{
		{h.PrgBanks, byte(2)},
		{h.ChrBanks, byte(1)},
		{h.Mirroring, MirrorVertical},
		{h.Battery, true},
		{h.Trainer, false},
		{h.FourScreen, false},
		{h.MapperID, byte(0x21)},
		{h.Console, ConsoleNES},
		{h.Region, RegionPAL},
		{h.PrgRamSize, 8 * 1024},
		{h.Dirty, false},
	}

	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("got %v, want %v\n", test.got, test.want)
		}
	}
}

func TestParseDirtyHeader(t *testing.T) {
	rom := newRom(1, 1)
	rom.header[6] = 0x30
	rom.header[7] = 'D'
	copy(rom.header[7:], "DiskDude!")

	h, err := ParseHeader(rom.bytes())
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, h.Dirty)
	test.ExpectEquality(t, h.MapperID, 0x03)
	test.ExpectEquality(t, h.PrgRamSize, 0)
}

func TestParseHeaderErrors(t *testing.T) {
	nes2 := newRom(1, 1)
	nes2.header[7] = 0x08

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrUnknownFormat},
		{"short", []byte{'N', 'E', 'S', 0x1A}, ErrUnknownFormat},
		{"magic", append([]byte("NES!"), make([]byte, 12)...), ErrUnknownFormat},
		{"nes 2.0", nes2.bytes(), ErrUnsupportedHeader},
	}

	for _, tt := range tests {
		_, err := ParseHeader(tt.data)
		test.ExpectEquality(t, errors.Cause(err), tt.want, tt.name)
	}
}

func TestNewCartridgeErrors(t *testing.T) {
	truncated := newRom(2, 1).bytes()
	truncated = truncated[:len(truncated)-1]

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"no prg", newRom(0, 1).bytes(), ErrUnknownFormat},
		{"truncated", truncated, ErrTruncatedRom},
		{"missing trainer", newRom(1, 0).withTrainer(nil).bytes(), ErrTruncatedRom},
	}

	for _, tt := range tests {
		c, err := NewCartridge(tt.data)
		test.ExpectEquality(t, errors.Cause(err), tt.want, tt.name)
		test.ExpectSuccess(t, c == nil, tt.name)
	}
}

func TestCartridgeTrainer(t *testing.T) {
	trainer := make([]byte, trainerSize)
	trainer[0] = 0xAB
	trainer[trainerSize-1] = 0xCD

	rom := newRom(1, 1).withTrainer(trainer)
	rom.prg[0] = 0x11

	c, err := NewCartridge(rom.bytes())
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, c.setupMapper())

	// trainer appears at $7000-$71FF and does not displace PRG ROM
	test.ExpectEquality(t, c.cpuRead(0x7000), 0xAB)
	test.ExpectEquality(t, c.cpuRead(0x71FF), 0xCD)
	test.ExpectEquality(t, c.cpuRead(0x8000), 0x11)
}

func TestCartridgePrgRam(t *testing.T) {
	c, err := NewCartridge(newRom(1, 1).bytes())
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, c.setupMapper())

	c.cpuWrite(0x6000, 0x42)
	c.cpuWrite(0x7FFF, 0x43)
	test.ExpectEquality(t, c.cpuRead(0x6000), 0x42)
	test.ExpectEquality(t, c.cpuRead(0x7FFF), 0x43)

	// PRG ROM is read only
	c.cpuWrite(0x8000, 0x99)
	test.ExpectEquality(t, c.cpuRead(0x8000), 0x00)
}

func TestCartridgeChrMemory(t *testing.T) {
	// CHR ROM
	rom := newRom(1, 1)
	rom.chr[0x0010] = 0x5A

	c, err := NewCartridge(rom.bytes())
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, c.setupMapper())

	test.ExpectEquality(t, c.ppuRead(0x0010), 0x5A)
	c.ppuWrite(0x0010, 0x00)
	test.ExpectEquality(t, c.ppuRead(0x0010), 0x5A)

	// CHR RAM
	c, err = NewCartridge(newRom(1, 0).bytes())
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, c.setupMapper())

	test.ExpectEquality(t, len(c.chrMem), chrRamSize)
	c.ppuWrite(0x1FFF, 0x77)
	test.ExpectEquality(t, c.ppuRead(0x1FFF), 0x77)
}

func TestSetupMapperUnsupported(t *testing.T) {
	rom := newRom(1, 1)
	rom.header[6] = 0x10 // MMC1

	c, err := NewCartridge(rom.bytes())
	test.DemandSuccess(t, err)

	err = c.setupMapper()
	test.ExpectEquality(t, errors.Cause(err), ErrUnsupportedMapper)
	test.ExpectEquality(t, err.Error(), "mapper 1: unsupported mapper")
}
