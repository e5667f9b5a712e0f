package nes

import (
	"image"
)

// Console wires the CPU, PPU and bus together and drives them from a single
// master clock.
type Console struct {
	Bus *Bus
	Cpu *Cpu6502
	Ppu *Ppu

	sink Sink

	clockCount uint64 // PPU clocks since reset
	stall      int    // CPU cycles left before the next instruction starts
}

func NewConsole(sink Sink) *Console {
	sink = sinkOrDiscard(sink)

	c := &Console{
		Bus:  NewBus(sink),
		Cpu:  NewCpu6502(sink),
		Ppu:  NewPpu(sink),
		sink: sink,
	}

	c.Bus.ConnectPpu(c.Ppu)
	c.Cpu.ConnectBus(c.Bus)
	c.Ppu.ConnectBus(c.Bus)

	return c
}

// LoadRom loads an iNES file and powers the console up. On failure the
// console is left without a cartridge and every stepping call returns
// ErrNoCartridge.
func (c *Console) LoadRom(path string) error {
	if err := c.Bus.LoadRom(path); err != nil {
		return err
	}
	return c.insert()
}

// LoadBytes is LoadRom for an in-memory image.
func (c *Console) LoadBytes(rom []byte) error {
	if err := c.Bus.LoadBytes(rom); err != nil {
		return err
	}
	return c.insert()
}

func (c *Console) insert() error {
	if err := c.Bus.SetupMapper(); err != nil {
		return err
	}

	c.Ppu.Reset()
	c.Cpu.Power()
	c.clockCount = 0
	c.stall = 0

	return nil
}

// Loaded is true once a cartridge has been loaded successfully.
func (c *Console) Loaded() bool {
	return c.Bus.Loaded()
}

// Reset presses the reset button.
func (c *Console) Reset() error {
	if !c.Loaded() {
		return ErrNoCartridge
	}

	c.Ppu.Reset()
	c.Cpu.Reset()
	c.clockCount = 0
	c.stall = 0

	return nil
}

// Clock advances the system by one PPU clock. The CPU runs 3 times slower
// than the PPU: every third clock is a CPU cycle, and a new instruction is
// started once the cycles of the previous one have been paid for.
func (c *Console) Clock() error {
	if !c.Loaded() {
		return ErrNoCartridge
	}

	c.Ppu.Run()

	if c.clockCount%3 == 0 {
		if c.stall == 0 {
			c.stall = c.Cpu.Run()
		}
		if c.stall > 0 {
			c.stall--
		}
	}

	// The NMI is taken after the PPU clock that raised it.
	if c.Ppu.ConsumeNmi() {
		c.Cpu.NMI()
		c.stall += 8
	}

	c.clockCount++

	return nil
}

// StepFrame clocks the console until the PPU finishes the current frame.
func (c *Console) StepFrame() error {
	if !c.Loaded() {
		return ErrNoCartridge
	}

	for !c.Ppu.FrameComplete() {
		if err := c.Clock(); err != nil {
			return err
		}
	}
	c.Ppu.ClearFrameComplete()

	return nil
}

// Frame is the PPU's framebuffer.
func (c *Console) Frame() *image.RGBA {
	return c.Ppu.Frame()
}

// ClockCount is the number of PPU clocks since power up or reset.
func (c *Console) ClockCount() uint64 {
	return c.clockCount
}
