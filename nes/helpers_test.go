package nes

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// flatBus is 64KB of RAM with no mirroring or devices. Used to test the CPU
// in isolation.
type flatBus struct {
	mem [64 * 1024]byte
}

func (b *flatBus) Read(addr uint16) byte        { return b.mem[addr] }
func (b *flatBus) Write(addr uint16, data byte) { b.mem[addr] = data }
func (b *flatBus) Peek(addr uint16) byte        { return b.mem[addr] }

func (b *flatBus) load(addr uint16, program ...byte) {
	copy(b.mem[addr:], program)
}

func (b *flatBus) setVector(vector, target uint16) {
	b.mem[vector] = byte(target)
	b.mem[vector+1] = byte(target >> 8)
}

// recordSink keeps every diagnostic event.
type recordSink struct {
	entries []string
}

func (s *recordSink) Log(tag, detail string) {
	s.entries = append(s.entries, fmt.Sprintf("%s: %s", tag, detail))
}

// Returns a powered up CPU with program loaded at addr and the reset vector
// pointing at it.
func newTestCpu(addr uint16, program ...byte) (*Cpu6502, *flatBus) {
	bus := &flatBus{}
	bus.load(addr, program...)
	bus.setVector(resetVectAddr, addr)

	cpu := NewCpu6502(nil)
	cpu.ConnectBus(bus)
	cpu.Power()

	return cpu, bus
}

// romImage builds iNES images for tests.
type romImage struct {
	header  [16]byte
	trainer []byte
	prg     []byte
	chr     []byte
}

func newRom(prgBanks, chrBanks byte) *romImage {
	r := &romImage{
		prg: make([]byte, int(prgBanks)*prgBankSize),
		chr: make([]byte, int(chrBanks)*chrBankSize),
	}
	copy(r.header[:], []byte{'N', 'E', 'S', 0x1A, prgBanks, chrBanks})
	return r
}

// Place a program in PRG ROM as seen by the CPU at addr (>= $8000).
func (r *romImage) load(addr uint16, program ...byte) {
	copy(r.prg[int(addr-0x8000)%len(r.prg):], program)
}

func (r *romImage) setVector(vector, target uint16) {
	r.load(vector, byte(target), byte(target>>8))
}

func (r *romImage) withTrainer(trainer []byte) *romImage {
	r.header[6] |= flag6Trainer
	r.trainer = trainer
	return r
}

func (r *romImage) bytes() []byte {
	data := append([]byte{}, r.header[:]...)
	data = append(data, r.trainer...)
	data = append(data, r.prg...)
	data = append(data, r.chr...)
	return data
}

func (r *romImage) writeFile(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.nes")
	if err := os.WriteFile(path, r.bytes(), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}
