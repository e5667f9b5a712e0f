package nes

import "github.com/pkg/errors"

// Mapper translates CPU and PPU bus addresses into offsets within the
// cartridge's PRG and CHR memory. Each method reports whether the address
// belongs to the cartridge for that kind of access; a mapper never touches
// memory itself.
type Mapper interface {
	CpuMapRead(addr uint16) (uint32, bool)
	CpuMapWrite(addr uint16) (uint32, bool)
	PpuMapRead(addr uint16) (uint32, bool)
	PpuMapWrite(addr uint16) (uint32, bool)
}

// newMapper selects the mapper implementation for the iNES mapper number.
// Boards other than NROM are not implemented yet.
func newMapper(id byte, prgBanks, chrBanks byte) (Mapper, error) {
	switch id {
	case 0:
		return NewMapper000(prgBanks, chrBanks), nil
	}
	return nil, errors.Wrapf(ErrUnsupportedMapper, "mapper %d", id)
}
