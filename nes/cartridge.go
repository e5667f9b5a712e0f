package nes

import (
	"fmt"

	"github.com/pkg/errors"
)

const (
	headerSize  = 16
	trainerSize = 512

	prgBankSize = 16 * 1024 // PRG ROM is counted in 16KB units
	chrBankSize = 8 * 1024  // CHR ROM is counted in 8KB units
	chrRamSize  = 8 * 1024
	prgRamSize  = 8 * 1024

	prgRamMinAddr uint16 = 0x6000
	prgRamMaxAddr uint16 = 0x7FFF
	trainerAddr   uint16 = 0x7000
)

// Mirroring is the nametable arrangement wired by the cartridge board.
type Mirroring byte

const (
	MirrorHorizontal Mirroring = iota
	MirrorVertical
)

func (m Mirroring) String() string {
	if m == MirrorVertical {
		return "vertical"
	}
	return "horizontal"
}

// ConsoleType is taken from the low bits of header byte 7.
type ConsoleType byte

const (
	ConsoleNES ConsoleType = iota
	ConsoleVsSystem
	ConsolePlaychoice
	ConsoleExtended
)

// Region is taken from bit 0 of header byte 9.
type Region byte

const (
	RegionNTSC Region = iota
	RegionPAL
)

// Flags 6 bits.
const (
	flag6Mirroring  = 1 << 0
	flag6Battery    = 1 << 1
	flag6Trainer    = 1 << 2
	flag6FourScreen = 1 << 3
)

// Header is the metadata parsed from an iNES container. It is populated once
// at load and never modified afterwards.
//
// Layout reference: https://www.nesdev.org/wiki/INES
type Header struct {
	PrgBanks   byte // 16KB units
	ChrBanks   byte // 8KB units, 0 means the board has 8KB of CHR RAM
	Mirroring  Mirroring
	Battery    bool
	Trainer    bool
	FourScreen bool
	MapperID   byte

	Console    ConsoleType
	Region     Region
	PrgRamSize int

	// Bytes 11-15 held garbage, so everything after byte 6 was ignored.
	Dirty bool
}

func (h Header) String() string {
	return fmt.Sprintf("mapper %d, prg %dx16KB, chr %dx8KB, %s mirroring, battery %v, trainer %v",
		h.MapperID, h.PrgBanks, h.ChrBanks, h.Mirroring, h.Battery, h.Trainer)
}

// ParseHeader decodes the 16 byte iNES header at the start of data.
func ParseHeader(data []byte) (Header, error) {
	var h Header

	if len(data) < headerSize {
		return h, errors.Wrapf(ErrUnknownFormat, "%d bytes is too short for a header", len(data))
	}
	if data[0] != 'N' || data[1] != 'E' || data[2] != 'S' || data[3] != 0x1A {
		return h, errors.Wrapf(ErrUnknownFormat, "bad magic % x", data[0:4])
	}

	// Byte 7 bits 2-3 equal to 2 identify the NES 2.0 revision.
	if (data[7]>>2)&0x03 == 0x02 {
		return h, ErrUnsupportedHeader
	}

	flags6 := data[6]
	h.PrgBanks = data[4]
	h.ChrBanks = data[5]
	h.Mirroring = Mirroring(flags6 & flag6Mirroring)
	h.Battery = flags6&flag6Battery != 0
	h.Trainer = flags6&flag6Trainer != 0
	h.FourScreen = flags6&flag6FourScreen != 0

	// Some dumping tools wrote their name over bytes 7-15. If the tail of
	// the header is not clean only the low mapper nibble can be trusted.
	for _, b := range data[11:16] {
		if b != 0 {
			h.Dirty = true
			break
		}
	}

	if h.Dirty {
		h.MapperID = flags6 >> 4
		return h, nil
	}

	h.MapperID = (data[7] & 0xF0) | (flags6 >> 4)
	h.Console = ConsoleType(data[7] & 0x03)
	h.PrgRamSize = int(data[8]) * prgRamSize
	h.Region = Region(data[9] & 0x01)

	return h, nil
}

// Cartridge holds the memory found on the cartridge board. Address
// translation is delegated to the board's mapper.
type Cartridge struct {
	Header Header

	prgRom   []byte
	prgRam   []byte
	chrMem   []byte
	chrIsRam bool

	mapper Mapper
}

// NewCartridge builds a cartridge from a complete iNES image. The mapper is
// not selected here, see Cartridge.setupMapper.
func NewCartridge(data []byte) (*Cartridge, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	if h.PrgBanks == 0 {
		return nil, errors.Wrap(ErrUnknownFormat, "header describes no PRG ROM")
	}

	c := &Cartridge{
		Header: h,
		prgRam: make([]byte, prgRamSize),
	}

	offset := headerSize
	need := headerSize + int(h.PrgBanks)*prgBankSize + int(h.ChrBanks)*chrBankSize
	if h.Trainer {
		need += trainerSize
	}
	if len(data) < need {
		return nil, errors.Wrapf(ErrTruncatedRom, "have %d bytes, header describes %d", len(data), need)
	}

	if h.Trainer {
		copy(c.prgRam[trainerAddr-prgRamMinAddr:], data[offset:offset+trainerSize])
		offset += trainerSize
	}

	prgLen := int(h.PrgBanks) * prgBankSize
	c.prgRom = make([]byte, prgLen)
	copy(c.prgRom, data[offset:offset+prgLen])
	offset += prgLen

	if h.ChrBanks == 0 {
		c.chrMem = make([]byte, chrRamSize)
		c.chrIsRam = true
	} else {
		chrLen := int(h.ChrBanks) * chrBankSize
		c.chrMem = make([]byte, chrLen)
		copy(c.chrMem, data[offset:offset+chrLen])
	}

	return c, nil
}

func (c *Cartridge) setupMapper() error {
	m, err := newMapper(c.Header.MapperID, c.Header.PrgBanks, c.Header.ChrBanks)
	if err != nil {
		return err
	}
	c.mapper = m
	return nil
}

// Communicate with main (CPU) bus.
func (c *Cartridge) cpuRead(addr uint16) byte {
	if addr >= prgRamMinAddr && addr <= prgRamMaxAddr {
		return c.prgRam[addr-prgRamMinAddr]
	}
	if mapped, ok := c.mapper.CpuMapRead(addr); ok {
		return c.prgRom[int(mapped)%len(c.prgRom)]
	}
	return 0
}

func (c *Cartridge) cpuWrite(addr uint16, data byte) {
	if addr >= prgRamMinAddr && addr <= prgRamMaxAddr {
		c.prgRam[addr-prgRamMinAddr] = data
		return
	}
	if mapped, ok := c.mapper.CpuMapWrite(addr); ok {
		c.prgRom[int(mapped)%len(c.prgRom)] = data
	}
}

// Communicate with PPU bus.
func (c *Cartridge) ppuRead(addr uint16) byte {
	if mapped, ok := c.mapper.PpuMapRead(addr); ok {
		return c.chrMem[int(mapped)%len(c.chrMem)]
	}
	return 0
}

func (c *Cartridge) ppuWrite(addr uint16, data byte) {
	if !c.chrIsRam {
		return
	}
	if mapped, ok := c.mapper.PpuMapWrite(addr); ok {
		c.chrMem[int(mapped)%len(c.chrMem)] = data
	}
}
