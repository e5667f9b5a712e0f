package nes

// Standard controller, read serially through $4016 (port 1) and $4017
// (port 2).
//
// Button bits, as shifted out to the CPU starting with bit 7:
/*
	7: A
	6: B
	5: Select
	4: Start
	3: Up
	2: Down
	1: Left
	0: Right
*/
const (
	ButtonRight byte = 1 << iota
	ButtonLeft
	ButtonDown
	ButtonUp
	ButtonStart
	ButtonSelect
	ButtonB
	ButtonA
)

type Controller struct {
	buttons byte // Live button state, set by the frontend
	shift   byte // Snapshot being shifted out to the CPU
	strobe  bool // While set the snapshot is reloaded continuously
}

// SetButtons replaces the state of all eight buttons.
func (c *Controller) SetButtons(state byte) {
	c.buttons = state
}

// Buttons returns the state last set by SetButtons.
func (c *Controller) Buttons() byte {
	return c.buttons
}

// Writing 1 to bit 0 of $4016 latches the button state, writing 0 starts the
// serial read.
func (c *Controller) write(data byte) {
	if c.strobe || data&0x01 != 0 {
		c.shift = c.buttons
	}
	c.strobe = data&0x01 != 0
}

func (c *Controller) read() byte {
	if c.strobe {
		c.shift = c.buttons
	}

	data := (c.shift & 0x80) >> 7
	// Official controllers read 1 once all eight buttons are shifted out.
	c.shift = c.shift<<1 | 0x01

	return data
}

// Current bit without shifting.
func (c *Controller) peek() byte {
	if c.strobe {
		return (c.buttons & 0x80) >> 7
	}
	return (c.shift & 0x80) >> 7
}
