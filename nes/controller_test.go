package nes

import (
	"testing"

	"github.com/n-ulricksen/nescore/test"
)

func TestControllerSerialRead(t *testing.T) {
	b := newTestBus(t, nil)
	b.Controller[0].SetButtons(ButtonA | ButtonStart | ButtonRight)

	// strobe
	b.Write(0x4016, 0x01)
	b.Write(0x4016, 0x00)

	// A, B, Select, Start, Up, Down, Left, Right
	want := []byte{1, 0, 0, 1, 0, 0, 0, 1}
	for i, w := range want {
		test.ExpectEquality(t, b.Read(0x4016), w, i)
	}

	// official controllers report 1 after the eighth read
	test.ExpectEquality(t, b.Read(0x4016), 0x01)

	// port 2 is independent
	test.ExpectEquality(t, b.Read(0x4017), 0x00)
}

func TestControllerStrobeHeld(t *testing.T) {
	b := newTestBus(t, nil)
	b.Controller[0].SetButtons(ButtonA)
	b.Write(0x4016, 0x01)

	// while strobe is high the A button is read repeatedly
	for i := 0; i < 3; i++ {
		test.ExpectEquality(t, b.Read(0x4016), 0x01, i)
	}

	// peeking does not shift
	b.Write(0x4016, 0x00)
	test.ExpectEquality(t, b.Peek(0x4016), 0x01)
	test.ExpectEquality(t, b.Peek(0x4016), 0x01)
	test.ExpectEquality(t, b.Read(0x4016), 0x01)
	test.ExpectEquality(t, b.Read(0x4016), 0x00)
}
