package logger_test

import (
	"fmt"
	"testing"

	"github.com/n-ulricksen/nescore/logger"
	"github.com/n-ulricksen/nescore/nes"
	"github.com/n-ulricksen/nescore/test"
)

// the Logger is handed to the emulator core as a Sink
var _ nes.Sink = (*logger.Logger)(nil)

func TestLogger(t *testing.T) {
	log := logger.NewLogger(100)
	tw := &test.Writer{}

	log.Write(tw)
	test.ExpectEquality(t, tw.String(), "")

	log.Log("test", "this is a test")
	log.Write(tw)
	test.ExpectEquality(t, tw.String(), "test: this is a test\n")

	// clear the test.Writer buffer before continuing, makes comparisons easier
	// to manage
	tw.Clear()

	log.Log("test2", "this is another test")
	log.Write(tw)
	test.ExpectEquality(t, tw.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	tw.Clear()
	log.Tail(tw, 100)
	test.ExpectEquality(t, tw.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for exactly the correct number of entries is okay
	tw.Clear()
	log.Tail(tw, 2)
	test.ExpectEquality(t, tw.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for fewer entries is okay too
	tw.Clear()
	log.Tail(tw, 1)
	test.ExpectEquality(t, tw.String(), "test2: this is another test\n")

	// and no entries
	tw.Clear()
	log.Tail(tw, 0)
	test.ExpectEquality(t, tw.String(), "")
}

func TestRepeats(t *testing.T) {
	log := logger.NewLogger(100)
	tw := &test.Writer{}

	log.Log("cpu", "unimplemented opcode $02 at $8000")
	log.Log("cpu", "unimplemented opcode $02 at $8000")
	log.Log("cpu", "unimplemented opcode $02 at $8000")
	log.Write(tw)
	test.ExpectEquality(t, tw.String(), "cpu: unimplemented opcode $02 at $8000 (repeat x3)\n")

	// same detail under a different tag is a new entry
	log.Log("ppu", "unimplemented opcode $02 at $8000")
	test.ExpectEquality(t, len(log.Entries()), 2)
}

func TestMaxEntries(t *testing.T) {
	log := logger.NewLogger(3)

	for i := 0; i < 10; i++ {
		log.Logf("tag", "entry %d", i)
	}

	e := log.Entries()
	test.DemandEquality(t, len(e), 3)
	test.ExpectEquality(t, e[0].Detail, "entry 7")
	test.ExpectEquality(t, e[2].Detail, "entry 9")

	log.Clear()
	test.ExpectEquality(t, len(log.Entries()), 0)
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(10)
	tw := &test.Writer{}

	log.SetEcho(tw)
	log.Log("cart", "mapper 0")
	log.Log("cart", "mapper 0")
	test.ExpectEquality(t, tw.String(), "cart: mapper 0\n")

	log.SetEcho(nil)
	log.Log("cart", fmt.Sprintf("mapper %d", 1))
	test.ExpectEquality(t, tw.String(), "cart: mapper 0\n")
}
