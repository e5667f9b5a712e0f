package nes

import (
	"os"
	"time"

	"github.com/pkg/errors"
)

// Bus connects the CPU and PPU to memory. It decodes the CPU address space
// (internal RAM, the PPU register window, the IO window and cartridge space)
// and the PPU address space (pattern memory, nametables and palette RAM).
type Bus struct {
	Cart *Cartridge // NES Cartridge.

	ppu *Ppu // Owner of the register window at $2000-$3FFF.

	ram     [2 * 1024]byte // 2KB internal RAM.
	vram    [2 * 1024]byte // 2KB nametable RAM, arranged by the cartridge mirroring.
	palette [32]byte

	Controller [2]Controller // Standard controllers on $4016 and $4017.

	sink Sink
}

const (
	// RAM
	ramMinAddr uint16 = 0x0000
	ramMaxAddr uint16 = 0x1FFF
	ramMirror  uint16 = 0x07FF // mirror every 2KB.

	// PPU
	ppuMinAddr uint16 = 0x2000
	ppuMaxAddr uint16 = 0x3FFF
	ppuMirror  uint16 = 0x0007 // mirror every 8 bytes.

	// APU and IO. Only the controller ports are implemented.
	ioMinAddr   uint16 = 0x4000
	ioMaxAddr   uint16 = 0x401F
	joypad1Addr uint16 = 0x4016
	joypad2Addr uint16 = 0x4017

	// Cartridge
	cartMinAddr uint16 = 0x4020
	cartMaxAddr uint16 = 0xFFFF

	// PPU address space
	patternTblAddr    uint16 = 0x0000
	patternTblAddrEnd uint16 = 0x1FFF
	patternTblSize    uint16 = 0x1000 // Single pattern table - size in bytes

	nameTblAddr    uint16 = 0x2000
	nameTblAddrEnd uint16 = 0x3EFF
	nameTblSize    uint16 = 0x0400

	paletteAddr    uint16 = 0x3F00
	paletteAddrEnd uint16 = 0x3FFF

	ppuAddrMask uint16 = 0x3FFF
)

func NewBus(sink Sink) *Bus {
	return &Bus{
		sink: sinkOrDiscard(sink),
	}
}

// Connect the PPU register window.
func (b *Bus) ConnectPpu(p *Ppu) { b.ppu = p }

// Loaded is true once a cartridge has been loaded and its mapper set up.
func (b *Bus) Loaded() bool {
	return b.Cart != nil && b.Cart.mapper != nil
}

// Used by the CPU to read data from the main bus at a specified address.
func (b *Bus) Read(addr uint16) byte {
	var data byte

	switch {
	case addr <= ramMaxAddr:
		data = b.ram[addr&ramMirror]
	case addr <= ppuMaxAddr:
		if b.ppu != nil {
			data = b.ppu.ReadRegister(addr & ppuMirror)
		}
	case addr == joypad1Addr:
		data = b.Controller[0].read()
	case addr == joypad2Addr:
		data = b.Controller[1].read()
	case addr <= ioMaxAddr:
		// APU registers read as zero.
	default:
		if b.Loaded() {
			data = b.Cart.cpuRead(addr)
		}
	}

	return data
}

// Used by the CPU to write data to the main bus at a specified address.
func (b *Bus) Write(addr uint16, data byte) {
	switch {
	case addr <= ramMaxAddr:
		b.ram[addr&ramMirror] = data
	case addr <= ppuMaxAddr:
		if b.ppu != nil {
			b.ppu.WriteRegister(addr&ppuMirror, data)
		}
	case addr == joypad1Addr:
		// One strobe line is shared by both ports.
		b.Controller[0].write(data)
		b.Controller[1].write(data)
	case addr <= ioMaxAddr:
	default:
		if b.Loaded() {
			b.Cart.cpuWrite(addr, data)
		}
	}
}

// Peek reads the CPU address space without side effects. Reads of the PPU
// register window return the PPU's open bus value instead of disturbing its
// state.
func (b *Bus) Peek(addr uint16) byte {
	switch {
	case addr >= ppuMinAddr && addr <= ppuMaxAddr:
		if b.ppu != nil {
			return b.ppu.openBus
		}
		return 0
	case addr == joypad1Addr:
		return b.Controller[0].peek()
	case addr == joypad2Addr:
		return b.Controller[1].peek()
	}
	return b.Read(addr)
}

// Communicate with PPU bus.
func (b *Bus) PpuRead(addr uint16) byte {
	addr &= ppuAddrMask

	switch {
	case addr <= patternTblAddrEnd:
		if b.Loaded() {
			return b.Cart.ppuRead(addr)
		}
		return 0
	case addr <= nameTblAddrEnd:
		return b.vram[b.nametableIndex(addr)]
	default:
		return b.palette[paletteIndex(addr)]
	}
}

func (b *Bus) PpuWrite(addr uint16, data byte) {
	addr &= ppuAddrMask

	switch {
	case addr <= patternTblAddrEnd:
		if b.Loaded() {
			b.Cart.ppuWrite(addr, data)
		}
	case addr <= nameTblAddrEnd:
		b.vram[b.nametableIndex(addr)] = data
	default:
		b.palette[paletteIndex(addr)] = data
	}
}

// Nametable mirroring. Addresses $3000-$3EFF mirror $2000-$2EFF.
//
//   horizontal: $2000 = $2400 (A),  $2800 = $2C00 (B)
//   vertical:   $2000 = $2800 (A),  $2400 = $2C00 (B)
func (b *Bus) nametableIndex(addr uint16) uint16 {
	addr &= 0x0FFF
	table := addr / nameTblSize

	mirroring := MirrorHorizontal
	if b.Cart != nil {
		mirroring = b.Cart.Header.Mirroring
	}

	var physical uint16
	switch mirroring {
	case MirrorVertical:
		physical = table & 0x01
	default:
		physical = (table >> 1) & 0x01
	}

	return physical*nameTblSize + addr%nameTblSize
}

// The backdrop entries of the sprite palettes ($3F10, $3F14, $3F18, $3F1C)
// alias the entries of the background palettes.
func paletteIndex(addr uint16) uint16 {
	addr &= 0x1F
	if addr&0x13 == 0x10 {
		addr &^= 0x10
	}
	return addr
}

// LoadRom reads and parses an iNES file. The mapper is not selected until
// SetupMapper is called; until then the bus treats cartridge space as empty.
// On failure any previously loaded cartridge is discarded.
func (b *Bus) LoadRom(path string) error {
	defer timeTrack(b.sink, time.Now(), "rom load")

	data, err := os.ReadFile(path)
	if err != nil {
		b.Cart = nil
		b.sink.Log("bus", err.Error())
		return errors.WithMessagef(ErrRomOpen, "%s: %v", path, err)
	}

	if err := b.LoadBytes(data); err != nil {
		return errors.WithMessage(err, path)
	}

	return nil
}

// LoadBytes loads an in-memory iNES image. See LoadRom.
func (b *Bus) LoadBytes(rom []byte) error {
	cart, err := NewCartridge(rom)
	if err != nil {
		b.Cart = nil
		b.sink.Log("cart", err.Error())
		return err
	}

	b.Cart = cart
	b.ram = [2 * 1024]byte{}
	b.vram = [2 * 1024]byte{}
	b.palette = [32]byte{}

	b.sink.Log("cart", cart.Header.String())

	return nil
}

// SetupMapper selects the mapper named by the loaded cartridge's header.
func (b *Bus) SetupMapper() error {
	if b.Cart == nil {
		return ErrNoCartridge
	}

	if err := b.Cart.setupMapper(); err != nil {
		b.sink.Log("cart", err.Error())
		b.Cart = nil
		return err
	}

	return nil
}
