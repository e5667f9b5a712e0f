package test_test

import (
	"errors"
	"testing"

	"github.com/n-ulricksen/nescore/test"
)

func TestExpectFailure(t *testing.T) {
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("test"))
}

func TestExpectSuccess(t *testing.T) {
	var err error
	test.ExpectSuccess(t, true)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, nil)
}

func TestExpectEquality(t *testing.T) {
	test.ExpectEquality(t, 10, 10)
	test.ExpectEquality(t, "foo", "foo")
	test.ExpectEquality(t, uint16(0x3F00), 0x3F00)
}

func TestExpectInequality(t *testing.T) {
	test.ExpectInequality(t, 10, 11)
	test.ExpectInequality(t, "foo", "bar")
}

func TestWriter(t *testing.T) {
	w := &test.Writer{}
	test.ExpectSuccess(t, w.Compare(""))

	_, _ = w.Write([]byte("foo"))
	test.ExpectSuccess(t, w.Compare("foo"))

	w.Clear()
	test.ExpectEquality(t, w.String(), "")
}
