package display

import (
	"github.com/faiface/pixel/pixelgl"

	"github.com/n-ulricksen/nescore/nes"
)

// Keyboard binds for controller 1:
/*
	Right  ---> D
	Left   ---> A
	Down   ---> S
	Up     ---> W
	Start  ---> Enter
	Select ---> Right Shift
	B      ---> K
	A      ---> J
*/
var controllerKeys = map[byte]pixelgl.Button{
	nes.ButtonRight:  pixelgl.KeyD,
	nes.ButtonLeft:   pixelgl.KeyA,
	nes.ButtonDown:   pixelgl.KeyS,
	nes.ButtonUp:     pixelgl.KeyW,
	nes.ButtonStart:  pixelgl.KeyEnter,
	nes.ButtonSelect: pixelgl.KeyRightShift,
	nes.ButtonB:      pixelgl.KeyK,
	nes.ButtonA:      pixelgl.KeyJ,
}

type keyboard struct {
	buttonState map[byte]bool // Key press state: on/off
}

func newKeyboard() *keyboard {
	return &keyboard{
		buttonState: make(map[byte]bool, len(controllerKeys)),
	}
}

// state returns a byte, with each bit representing the state of a button on
// the controller.
func (k *keyboard) state() byte {
	var state byte

	for button, s := range k.buttonState {
		if s {
			state |= button
		}
	}

	return state
}

func (k *keyboard) update(win *pixelgl.Window) {
	for button, key := range controllerKeys {
		// Key down
		if win.JustPressed(key) {
			k.buttonState[button] = true
		}
		// Key up
		if win.JustReleased(key) {
			k.buttonState[button] = false
		}
	}
}
