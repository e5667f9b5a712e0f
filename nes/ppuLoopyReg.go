package nes

// Loopy registers are 15 bit internal PPU registers used for implementing
// scrolling. The PPU holds two of them: the live VRAM address used by
// background fetches, and the temporary address written by software.
// Loopy register layout:
//   yyy N N YYYYY XXXXX
//
//   yyy   - fine Y scroll
//   N N   - nametable select (Y, X)
//   YYYYY - coarse Y scroll
//   XXXXX - coarse X scroll
type PpuLoopyReg uint16

const (
	loopyCoarseX    PpuLoopyReg = 0b11111
	loopyCoarseY    PpuLoopyReg = 0b11111 << 5
	loopyNametableX PpuLoopyReg = 0b1 << 10
	loopyNametableY PpuLoopyReg = 0b1 << 11
	loopyFineY      PpuLoopyReg = 0b111 << 12

	loopyMask PpuLoopyReg = 0x7FFF

	// Horizontal and vertical components, copied from the temporary
	// register into the live register while rendering.
	loopyHorizontal = loopyCoarseX | loopyNametableX
	loopyVertical   = loopyCoarseY | loopyNametableY | loopyFineY
)

// Returns the value of the loopy register as an unsigned 16-bit integer.
func (r PpuLoopyReg) value() uint16 {
	return uint16(r)
}

func (r *PpuLoopyReg) set(bits PpuLoopyReg, shift uint, val byte) {
	*r &^= bits
	*r |= (PpuLoopyReg(val) << shift) & bits
}

// Sets coarse X (bits 0-4) with the low 5 bits of the given value.
func (r *PpuLoopyReg) setCoarseX(val byte) { r.set(loopyCoarseX, 0, val) }

// Sets coarse Y (bits 5-9) with the low 5 bits of the given value.
func (r *PpuLoopyReg) setCoarseY(val byte) { r.set(loopyCoarseY, 5, val) }

// Sets the horizontal nametable bit (bit 10).
func (r *PpuLoopyReg) setNametableX(val byte) { r.set(loopyNametableX, 10, val) }

// Sets the vertical nametable bit (bit 11).
func (r *PpuLoopyReg) setNametableY(val byte) { r.set(loopyNametableY, 11, val) }

// Sets fine Y (bits 12-14) with the low 3 bits of the given value.
func (r *PpuLoopyReg) setFineY(val byte) { r.set(loopyFineY, 12, val) }

func (r PpuLoopyReg) getCoarseX() byte    { return byte(r & loopyCoarseX) }
func (r PpuLoopyReg) getCoarseY() byte    { return byte((r & loopyCoarseY) >> 5) }
func (r PpuLoopyReg) getNametableX() byte { return byte((r & loopyNametableX) >> 10) }
func (r PpuLoopyReg) getNametableY() byte { return byte((r & loopyNametableY) >> 11) }
func (r PpuLoopyReg) getFineY() byte      { return byte((r & loopyFineY) >> 12) }

// Increment coarse X, wrapping into the horizontally adjacent nametable.
func (r *PpuLoopyReg) incrementX() {
	if r.getCoarseX() == 31 {
		r.setCoarseX(0)
		*r ^= loopyNametableX
		return
	}
	*r++
}

// Increment fine Y, carrying into coarse Y. Row 29 is the last row of a
// nametable so it wraps into the vertically adjacent nametable. Rows 30 and
// 31 are attribute memory; software may still set them, in which case coarse
// Y wraps at 31 without switching nametable.
func (r *PpuLoopyReg) incrementY() {
	if fineY := r.getFineY(); fineY < 7 {
		r.setFineY(fineY + 1)
		return
	}

	r.setFineY(0)

	switch y := r.getCoarseY(); y {
	case 29:
		r.setCoarseY(0)
		*r ^= loopyNametableY
	case 31:
		r.setCoarseY(0)
	default:
		r.setCoarseY(y + 1)
	}
}

// Copy the bits selected by mask from another loopy register.
func (r *PpuLoopyReg) transfer(from PpuLoopyReg, mask PpuLoopyReg) {
	*r = (*r &^ mask) | (from & mask)
}
