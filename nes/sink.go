package nes

// Sink receives diagnostic events from the emulation core. The tag names the
// emitting component ("cpu", "ppu", "bus", "cart") and detail is a single
// line of text.
type Sink interface {
	Log(tag, detail string)
}

type discard struct{}

func (discard) Log(tag, detail string) {}

func sinkOrDiscard(s Sink) Sink {
	if s == nil {
		return discard{}
	}
	return s
}
