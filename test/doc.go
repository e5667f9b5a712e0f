// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect functions report a failure and let the test continue. The Demand
// functions stop the test. Success and failure are judged by the type of the
// value:
//
//	bool  -> true is success
//	error -> nil is success
//
// An untyped nil is treated as success because that is how a nil error
// arrives when passed as an interface.
package test
