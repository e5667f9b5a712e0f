package nes

import (
	"image"
	"image/color"
)

const (
	screenWidth  = 256
	screenHeight = 240

	cyclesPerScanline = 341
	lastScanline      = 260 // scanlines run -1 (pre-render) to 260
	vblankScanline    = 241
)

// PpuBus is the PPU's view of its 14 bit address space.
type PpuBus interface {
	PpuRead(addr uint16) byte
	PpuWrite(addr uint16, data byte)
}

// PpuRegisters is a snapshot of the PPU's register state.
type PpuRegisters struct {
	Ctrl     byte
	Mask     byte
	Status   byte
	OamAddr  byte
	VramAddr uint16
	TempAddr uint16
	FineX    byte
	Latch    bool
	Scanline int
	Cycle    int
}

// References:
// http://wiki.nesdev.com/w/index.php/PPU_registers
// http://wiki.nesdev.com/w/index.php/PPU_rendering
// https://www.youtube.com/watch?v=xdzOvpYPmGE (javidx9)
type Ppu struct {
	bus  PpuBus
	sink Sink

	ctrl   PpuReg
	mask   PpuReg
	status PpuReg

	oam     objectAttributeMemory
	oamAddr byte

	vramAddr     PpuLoopyReg // Live address used for background fetches and $2007
	tempVramAddr PpuLoopyReg // Written through $2000, $2005 and $2006
	fineX        byte
	addressLatch bool // Write toggle shared by $2005 and $2006
	dataBuffer   byte // $2007 read delay
	openBus      byte // Last value driven onto the register data lines

	// Internal PPU variables
	scanline      int  // Scanline count in the current frame
	cycle         int  // Cycle count in the current scanline
	frameComplete bool // Whether or not the current frame is finished rendering
	frameCount    uint64
	nmi           bool // Raised on entering vblank, consumed by the console

	// Background fetch pipeline
	bgNextTileId     byte
	bgNextTileAttrib byte
	bgNextTileLsb    byte
	bgNextTileMsb    byte

	bgShifterPatternLo uint16
	bgShifterPatternHi uint16
	bgShifterAttribLo  uint16
	bgShifterAttribHi  uint16

	palette MasterPalette
	frame   *image.RGBA
}

func NewPpu(sink Sink) *Ppu {
	p := &Ppu{
		sink:    sinkOrDiscard(sink),
		palette: DefaultPalette,
		frame:   image.NewRGBA(image.Rect(0, 0, screenWidth, screenHeight)),
	}
	p.Reset()
	return p
}

func (p *Ppu) ConnectBus(b PpuBus) {
	p.bus = b
}

// SetPalette replaces the master colour table.
func (p *Ppu) SetPalette(palette MasterPalette) {
	p.palette = palette
}

// Reset returns the PPU to its power up state with the beam at the start of
// the pre-render scanline.
func (p *Ppu) Reset() {
	p.ctrl = 0
	p.mask = 0
	p.status = 0
	p.oamAddr = 0
	p.oam.clear()

	p.vramAddr = 0
	p.tempVramAddr = 0
	p.fineX = 0
	p.addressLatch = false
	p.dataBuffer = 0
	p.openBus = 0

	p.scanline = -1
	p.cycle = 0
	p.frameComplete = false
	p.frameCount = 0
	p.nmi = false

	p.bgNextTileId = 0
	p.bgNextTileAttrib = 0
	p.bgNextTileLsb = 0
	p.bgNextTileMsb = 0
	p.bgShifterPatternLo = 0
	p.bgShifterPatternHi = 0
	p.bgShifterAttribLo = 0
	p.bgShifterAttribHi = 0
}

func (p *Ppu) read(addr uint16) byte {
	return p.bus.PpuRead(addr)
}

func (p *Ppu) write(addr uint16, data byte) {
	p.bus.PpuWrite(addr, data)
}

func (p *Ppu) renderingEnabled() bool {
	return p.mask.isSet(maskBgShow) || p.mask.isSet(maskSpriteShow)
}

// Run advances the PPU by one clock.
// 1 frame = 262 scanlines
// 1 scanline = 341 PPU clock cycles
// The short pre-render line of odd frames is not emulated.
func (p *Ppu) Run() {
	if p.scanline >= -1 && p.scanline < 240 {
		if p.scanline == -1 && p.cycle == 1 {
			// New frame.
			p.status.clearFlag(statusVBlank)
			p.status.clearFlag(statusSprite0Hit)
			p.status.clearFlag(statusSpriteOverflow)
		}

		if (p.cycle >= 2 && p.cycle < 258) || (p.cycle >= 321 && p.cycle < 338) {
			p.updateShifters()

			switch (p.cycle - 1) % 8 {
			case 0:
				p.loadBackgroundShifters()
				p.fetchTileId()
			case 2:
				p.fetchTileAttrib()
			case 4:
				p.bgNextTileLsb = p.read(p.patternAddr())
			case 6:
				p.bgNextTileMsb = p.read(p.patternAddr() + 8)
			case 7:
				p.incrementScrollX()
			}
		}

		if p.cycle == 256 {
			p.incrementScrollY()
		}

		if p.cycle == 257 {
			p.loadBackgroundShifters()
			p.transferAddressX()
		}

		// Unused nametable fetches at the end of the scanline.
		if p.cycle == 338 || p.cycle == 340 {
			p.fetchTileId()
		}

		if p.scanline == -1 && p.cycle >= 280 && p.cycle < 305 {
			p.transferAddressY()
		}
	}

	if p.scanline == vblankScanline && p.cycle == 1 {
		p.status.setFlag(statusVBlank)
		if p.ctrl.isSet(ctrlNmi) {
			p.nmi = true
		}
	}

	pixel, palette := p.backgroundPixel()
	if p.scanline >= 0 && p.scanline < screenHeight && p.cycle >= 1 && p.cycle <= screenWidth {
		p.frame.SetRGBA(p.cycle-1, p.scanline, p.colorFromPalette(palette, pixel))
	}

	p.cycle++
	if p.cycle >= cyclesPerScanline {
		p.cycle = 0
		p.scanline++

		if p.scanline > lastScanline {
			p.scanline = -1
			p.frameComplete = true
			p.frameCount++
		}
	}
}

func (p *Ppu) fetchTileId() {
	p.bgNextTileId = p.read(nameTblAddr | (p.vramAddr.value() & 0x0FFF))
}

// Each attribute byte covers a 4x4 tile area, two bits for each 2x2 quadrant.
func (p *Ppu) fetchTileAttrib() {
	v := p.vramAddr
	addr := 0x23C0 |
		uint16(v.getNametableY())<<11 |
		uint16(v.getNametableX())<<10 |
		uint16(v.getCoarseY()>>2)<<3 |
		uint16(v.getCoarseX()>>2)

	attrib := p.read(addr)
	if v.getCoarseY()&0x02 != 0 {
		attrib >>= 4
	}
	if v.getCoarseX()&0x02 != 0 {
		attrib >>= 2
	}
	p.bgNextTileAttrib = attrib & 0x03
}

// Address of the low bitplane of the current row of the next tile.
func (p *Ppu) patternAddr() uint16 {
	return uint16(p.ctrl.getFlag(ctrlBgPatternTbl))<<12 +
		uint16(p.bgNextTileId)<<4 +
		uint16(p.vramAddr.getFineY())
}

func (p *Ppu) incrementScrollX() {
	if p.renderingEnabled() {
		p.vramAddr.incrementX()
	}
}

func (p *Ppu) incrementScrollY() {
	if p.renderingEnabled() {
		p.vramAddr.incrementY()
	}
}

func (p *Ppu) transferAddressX() {
	if p.renderingEnabled() {
		p.vramAddr.transfer(p.tempVramAddr, loopyHorizontal)
	}
}

func (p *Ppu) transferAddressY() {
	if p.renderingEnabled() {
		p.vramAddr.transfer(p.tempVramAddr, loopyVertical)
	}
}

// Prime the low byte of the shifters with the latched tile data. The
// attribute shifters are filled with a whole byte of the palette bits so they
// shift in step with the pattern shifters.
func (p *Ppu) loadBackgroundShifters() {
	p.bgShifterPatternLo = (p.bgShifterPatternLo & 0xFF00) | uint16(p.bgNextTileLsb)
	p.bgShifterPatternHi = (p.bgShifterPatternHi & 0xFF00) | uint16(p.bgNextTileMsb)

	p.bgShifterAttribLo &= 0xFF00
	if p.bgNextTileAttrib&0x01 != 0 {
		p.bgShifterAttribLo |= 0x00FF
	}
	p.bgShifterAttribHi &= 0xFF00
	if p.bgNextTileAttrib&0x02 != 0 {
		p.bgShifterAttribHi |= 0x00FF
	}
}

func (p *Ppu) updateShifters() {
	if !p.mask.isSet(maskBgShow) {
		return
	}
	p.bgShifterPatternLo <<= 1
	p.bgShifterPatternHi <<= 1
	p.bgShifterAttribLo <<= 1
	p.bgShifterAttribHi <<= 1
}

// Select the bit under fine X from the shifters. With background rendering
// disabled the backdrop colour is produced.
func (p *Ppu) backgroundPixel() (pixel, palette byte) {
	if !p.mask.isSet(maskBgShow) {
		return 0, 0
	}

	mux := uint16(0x8000) >> p.fineX

	if p.bgShifterPatternLo&mux != 0 {
		pixel |= 0x01
	}
	if p.bgShifterPatternHi&mux != 0 {
		pixel |= 0x02
	}
	if p.bgShifterAttribLo&mux != 0 {
		palette |= 0x01
	}
	if p.bgShifterAttribHi&mux != 0 {
		palette |= 0x02
	}

	return pixel, palette
}

func (p *Ppu) colorFromPalette(palette, pixel byte) color.RGBA {
	idx := p.read(paletteAddr+uint16(palette)<<2+uint16(pixel)) & 0x3F
	if p.mask.isSet(maskGreyscale) {
		idx &= 0x30
	}
	return p.palette[idx]
}

// Communicate with main (CPU) bus - used for PPU register access. The
// register is selected by the low three bits of the address.
func (p *Ppu) ReadRegister(reg uint16) byte {
	data := p.openBus

	switch reg & ppuMirror {
	case regStatus:
		// Only the top three bits are driven, the rest is stale bus.
		data = byte(p.status&0xE0) | (p.openBus & 0x1F)
		p.status.clearFlag(statusVBlank)
		p.addressLatch = false
	case regOamData:
		data = p.oam.read(p.oamAddr)
	case regData:
		addr := p.vramAddr.value() & ppuAddrMask

		// Reads are delayed by one through the buffer, except palette
		// reads which are immediate. The buffer is then filled from the
		// nametable underneath the palette.
		data = p.dataBuffer
		p.dataBuffer = p.read(addr)
		if addr >= paletteAddr {
			data = p.dataBuffer
			p.dataBuffer = p.read(addr - 0x1000)
		}

		p.incrementVramAddr()
	default:
		// Write only registers.
	}

	p.openBus = data
	return data
}

func (p *Ppu) WriteRegister(reg uint16, data byte) {
	p.openBus = data

	switch reg & ppuMirror {
	case regCtrl:
		wasEnabled := p.ctrl.isSet(ctrlNmi)
		p.ctrl = PpuReg(data)
		p.tempVramAddr.setNametableX(p.ctrl.getFlag(ctrlNameTblX))
		p.tempVramAddr.setNametableY(p.ctrl.getFlag(ctrlNameTblY))

		// Enabling NMI during vblank raises one immediately.
		if !wasEnabled && p.ctrl.isSet(ctrlNmi) && p.status.isSet(statusVBlank) {
			p.nmi = true
		}
	case regMask:
		p.mask = PpuReg(data)
	case regStatus:
	case regOamAddr:
		p.oamAddr = data
	case regOamData:
		p.oam.write(p.oamAddr, data)
		p.oamAddr++
	case regScroll:
		if !p.addressLatch {
			p.fineX = data & 0x07
			p.tempVramAddr.setCoarseX(data >> 3)
			p.addressLatch = true
		} else {
			p.tempVramAddr.setFineY(data & 0x07)
			p.tempVramAddr.setCoarseY(data >> 3)
			p.addressLatch = false
		}
	case regAddr:
		if !p.addressLatch {
			// High byte first. Only 14 bits are writable, bit 14 (the top
			// bit of fine Y) is cleared.
			p.tempVramAddr = PpuLoopyReg(uint16(data&0x3F)<<8) | (p.tempVramAddr & 0x00FF)
			p.addressLatch = true
		} else {
			p.tempVramAddr = (p.tempVramAddr & 0xFF00) | PpuLoopyReg(data)
			p.vramAddr = p.tempVramAddr
			p.addressLatch = false
		}
	case regData:
		p.write(p.vramAddr.value()&ppuAddrMask, data)
		p.incrementVramAddr()
	}
}

// Advance by one (across) or 32 (down) depending on PPUCTRL.
func (p *Ppu) incrementVramAddr() {
	if p.ctrl.isSet(ctrlVramInc) {
		p.vramAddr += 32
	} else {
		p.vramAddr++
	}
	p.vramAddr &= loopyMask
}

// ConsumeNmi reports whether an NMI has been raised since the last call and
// lowers the signal.
func (p *Ppu) ConsumeNmi() bool {
	nmi := p.nmi
	p.nmi = false
	return nmi
}

// FrameComplete is true once the last scanline of a frame has been clocked.
// It stays set until ClearFrameComplete is called.
func (p *Ppu) FrameComplete() bool { return p.frameComplete }

func (p *Ppu) ClearFrameComplete() { p.frameComplete = false }

// FrameCount is the number of frames completed since the last reset.
func (p *Ppu) FrameCount() uint64 { return p.frameCount }

// Frame is the framebuffer. It is updated in place as the PPU runs.
func (p *Ppu) Frame() *image.RGBA { return p.frame }

func (p *Ppu) Scanline() int { return p.scanline }
func (p *Ppu) Cycle() int    { return p.cycle }

func (p *Ppu) Registers() PpuRegisters {
	return PpuRegisters{
		Ctrl:     byte(p.ctrl),
		Mask:     byte(p.mask),
		Status:   byte(p.status),
		OamAddr:  p.oamAddr,
		VramAddr: p.vramAddr.value(),
		TempAddr: p.tempVramAddr.value(),
		FineX:    p.fineX,
		Latch:    p.addressLatch,
		Scanline: p.scanline,
		Cycle:    p.cycle,
	}
}
