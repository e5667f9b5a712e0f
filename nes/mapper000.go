package nes

// Mapper000 is the NROM board. It has no bank switching; the only board
// configuration is whether 16KB of PRG ROM is mirrored into the upper half of
// cartridge space.
type Mapper000 struct {
	PrgBanks byte
	ChrBanks byte
}

func NewMapper000(prgRomChunks, chrRomChunks byte) Mapper000 {
	return Mapper000{
		PrgBanks: prgRomChunks,
		ChrBanks: chrRomChunks,
	}
}

// Address Mapping
//
// if 16KB ROM size (NROM-128):
//   0x8000-0xBFFF -> 0x0000-0x3FFF
//   0xC000-0xFFFF -> 0x0000-0x3FFF (mirror)
//
// if 32KB ROM size (NROM-256):
//   0x8000-0xFFFF -> 0x0000-0x7FFF

func (m Mapper000) CpuMapRead(addr uint16) (uint32, bool) {
	if addr < 0x8000 {
		return 0, false
	}
	if m.PrgBanks > 1 {
		return uint32(addr & 0x7FFF), true
	}
	return uint32(addr & 0x3FFF), true
}

// PRG ROM is read only.
func (m Mapper000) CpuMapWrite(addr uint16) (uint32, bool) {
	return 0, false
}

// Pattern memory is not banked.
func (m Mapper000) PpuMapRead(addr uint16) (uint32, bool) {
	if addr <= 0x1FFF {
		return uint32(addr), true
	}
	return 0, false
}

// Only meaningful when the board carries CHR RAM, the cartridge drops writes
// to CHR ROM.
func (m Mapper000) PpuMapWrite(addr uint16) (uint32, bool) {
	if addr <= 0x1FFF {
		return uint32(addr), true
	}
	return 0, false
}
