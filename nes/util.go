package nes

import (
	"fmt"
	"time"
)

// Report how long an operation took. Intended to be deferred:
//
//	defer timeTrack(sink, time.Now(), "rom load")
func timeTrack(sink Sink, start time.Time, what string) {
	sink.Log("time", fmt.Sprintf("%s took %s", what, time.Since(start)))
}
